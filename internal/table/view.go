package table

import (
	"context"
	"fmt"

	"github.com/shenikar/incident_admin/internal/filter"
	"github.com/shenikar/incident_admin/internal/models"
	"github.com/shenikar/incident_admin/internal/period"
)

type State string

const (
	StateIdle     State = "idle"
	StateLoading  State = "loading"
	StateRendered State = "rendered"
)

type Action string

const (
	ActionHide   Action = "hide"
	ActionUnhide Action = "unhide"
	ActionDelete Action = "delete"
)

var statusMessages = map[Action]string{
	ActionHide:   "Selected incidents have been hidden.",
	ActionUnhide: "Selected incidents have been unhidden.",
	ActionDelete: "Selected incidents have been deleted from the database and the remote store.",
}

// StatusMessage возвращает сообщение о результате массового действия
func StatusMessage(a Action) string {
	return statusMessages[a]
}

// Loader загружает страницу по запросу
type Loader interface {
	Page(ctx context.Context, q Query) (*Page, error)
}

// BulkActor выполняет массовые действия над выбранными инцидентами
type BulkActor interface {
	HideIncidents(ctx context.Context, ids []int64) (int64, error)
	UnhideIncidents(ctx context.Context, ids []int64) (int64, error)
	DeleteIncidents(ctx context.Context, ids []int64) (*models.DeletionResult, error)
}

// Criteria - пользовательские фильтры таблицы
type Criteria struct {
	Type          string `json:"type_filter"`
	Status        string `json:"status_filter"`
	Search        string `json:"search"`
	ShowHidden    bool   `json:"show_hidden"`
	Period        string `json:"period"`
	AnchorDate    string `json:"anchor_date"`
	YearSelection string `json:"year_selection"`
}

// View - состояние интерактивной таблицы одного источника: Idle -> Loading -> Rendered.
// Флаг SelectAll производный: любой ручной выбор его сбрасывает.
type View struct {
	Source    string   `json:"source"`
	Criteria  Criteria `json:"criteria"`
	Sort      Sort     `json:"sort"`
	Page      int      `json:"page"`
	PerPage   int      `json:"per_page"`
	Selected  []int64  `json:"selected"`
	SelectAll bool     `json:"select_all"`
	PageIDs   []int64  `json:"page_ids"`
	State     State    `json:"state"`
	Status    string   `json:"status,omitempty"`
}

// NewView создает таблицу с настройками по умолчанию; anchorDate - "сегодня" на стороне вызывающего
func NewView(source, anchorDate string) *View {
	return &View{
		Source: source,
		Criteria: Criteria{
			Period:        string(period.Day),
			AnchorDate:    anchorDate,
			YearSelection: period.YearAll,
		},
		Sort:     DefaultSort(source),
		Page:     1,
		PerPage:  DefaultPerPage,
		Selected: []int64{},
		State:    StateIdle,
	}
}

// Query строит запрос страницы из текущего состояния
func (v *View) Query() (Query, error) {
	p, err := period.Parse(v.Criteria.Period)
	if err != nil {
		return Query{}, err
	}
	w, err := period.Resolve(p, v.Criteria.AnchorDate, v.Criteria.YearSelection)
	if err != nil {
		return Query{}, err
	}
	q := Query{
		Criteria: filter.Criteria{
			Source: v.Source,
			Type:   v.Criteria.Type,
			Status: v.Criteria.Status,
			Hidden: v.Criteria.ShowHidden,
			Search: v.Criteria.Search,
			Window: w,
		},
		Sort:    v.Sort,
		Page:    v.Page,
		PerPage: v.PerPage,
	}
	return q.Normalize(), nil
}

// OnCriteriaChanged применяет новые фильтры, сбрасывает пагинацию и перерисовывает таблицу
func (v *View) OnCriteriaChanged(ctx context.Context, loader Loader, c Criteria) (*Page, error) {
	if c.ShowHidden != v.Criteria.ShowHidden {
		v.ClearSelection()
	}
	v.Criteria = c
	v.Page = 1
	return v.Render(ctx, loader)
}

// Render загружает текущую страницу и запоминает id отображаемых строк
func (v *View) Render(ctx context.Context, loader Loader) (*Page, error) {
	q, err := v.Query()
	if err != nil {
		v.State = StateIdle
		return nil, err
	}
	v.State = StateLoading
	page, err := loader.Page(ctx, q)
	if err != nil {
		v.State = StateIdle
		return nil, fmt.Errorf("table: could not load page: %w", err)
	}
	v.Page = page.Page
	v.PerPage = page.PerPage
	v.PageIDs = page.IDs()
	v.State = StateRendered
	return page, nil
}

// SortBy переключает направление для того же поля, иначе сортирует по новому полю по возрастанию
func (v *View) SortBy(field string) {
	if v.Sort.Field == field {
		if v.Sort.Direction == Asc {
			v.Sort.Direction = Desc
		} else {
			v.Sort.Direction = Asc
		}
	} else {
		v.Sort = Sort{Field: field, Direction: Asc}
	}
	v.Page = 1
}

// SetPage переходит на страницу n. Выбранные строки сохраняются, флаг "выбрать все" снимается.
func (v *View) SetPage(n int) {
	if n < 1 {
		n = 1
	}
	v.Page = n
	v.SelectAll = false
}

// SetPerPage меняет размер страницы и возвращает на первую страницу.
// Выбранные строки сохраняются, флаг "выбрать все" снимается: он относился к прежней странице.
func (v *View) SetPerPage(n int) {
	v.PerPage = n
	v.Page = 1
	v.SelectAll = false
}

// ToggleShowHidden переключает просмотр скрытых инцидентов и сбрасывает выбор
func (v *View) ToggleShowHidden() {
	v.Criteria.ShowHidden = !v.Criteria.ShowHidden
	v.Page = 1
	v.ClearSelection()
}

// SetSelectAll выбирает только строки текущей отображаемой страницы
func (v *View) SetSelectAll(on bool) {
	if !on {
		v.ClearSelection()
		return
	}
	v.Selected = append([]int64{}, v.PageIDs...)
	v.SelectAll = true
}

// SetSelected заменяет выбор вручную
func (v *View) SetSelected(ids []int64) {
	v.Selected = append([]int64{}, ids...)
	v.SelectAll = false
}

// Select добавляет строку к выбору
func (v *View) Select(id int64) {
	for _, s := range v.Selected {
		if s == id {
			v.SelectAll = false
			return
		}
	}
	v.Selected = append(v.Selected, id)
	v.SelectAll = false
}

// Deselect убирает строку из выбора
func (v *View) Deselect(id int64) {
	kept := v.Selected[:0]
	for _, s := range v.Selected {
		if s != id {
			kept = append(kept, s)
		}
	}
	v.Selected = kept
	v.SelectAll = false
}

// RunBulk выполняет массовое действие над выбранными строками, сбрасывает выбор и
// сохраняет сообщение о статусе
func (v *View) RunBulk(ctx context.Context, actor BulkActor, action Action) error {
	msg, ok := statusMessages[action]
	if !ok {
		return fmt.Errorf("table: unknown action %q", action)
	}
	if len(v.Selected) == 0 {
		return models.ErrNoSelection
	}

	var err error
	switch action {
	case ActionHide:
		_, err = actor.HideIncidents(ctx, v.Selected)
	case ActionUnhide:
		_, err = actor.UnhideIncidents(ctx, v.Selected)
	case ActionDelete:
		_, err = actor.DeleteIncidents(ctx, v.Selected)
	}
	if err != nil {
		return err
	}

	v.ClearSelection()
	v.Status = msg
	return nil
}

// ClearSelection сбрасывает выбор и флаг "выбрать все"
func (v *View) ClearSelection() {
	v.Selected = []int64{}
	v.SelectAll = false
}
