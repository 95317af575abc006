package table

import (
	"github.com/shenikar/incident_admin/internal/filter"
	"github.com/shenikar/incident_admin/internal/models"
)

const (
	DefaultPerPage = 10
	MaxPerPage     = 100
	// MaxPage ограничивает номер страницы, чтобы смещение не переполнялось
	MaxPage = 1_000_000
)

// Query - запрос страницы таблицы
type Query struct {
	Criteria filter.Criteria
	Sort     Sort
	Page     int
	PerPage  int
}

// Normalize приводит страницу и размер страницы к допустимым значениям
func (q Query) Normalize() Query {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Page > MaxPage {
		q.Page = MaxPage
	}
	if q.PerPage < 1 || q.PerPage > MaxPerPage {
		q.PerPage = DefaultPerPage
	}
	q.Sort = q.Sort.Normalize(q.Criteria.Source)
	return q
}

// Offset возвращает смещение первой строки страницы
func (q Query) Offset() int {
	return (q.Page - 1) * q.PerPage
}

// Page - отображаемая страница таблицы
type Page struct {
	Rows     []*models.Incident `json:"rows"`
	Total    int                `json:"total"`
	Page     int                `json:"page"`
	PerPage  int                `json:"per_page"`
	LastPage int                `json:"last_page"`
	Types    []string           `json:"types"`
	Years    []int              `json:"years"`
}

// NewPage заполняет метаданные пагинации
func NewPage(q Query, rows []*models.Incident, total int) *Page {
	last := 1
	if total > 0 {
		last = (total + q.PerPage - 1) / q.PerPage
	}
	return &Page{
		Rows:     rows,
		Total:    total,
		Page:     q.Page,
		PerPage:  q.PerPage,
		LastPage: last,
	}
}

// IDs возвращает числовые id строк страницы в порядке отображения
func (p *Page) IDs() []int64 {
	ids := make([]int64, 0, len(p.Rows))
	for _, r := range p.Rows {
		ids = append(ids, r.ID)
	}
	return ids
}
