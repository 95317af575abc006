package v1

import (
	"time"

	"github.com/shenikar/incident_admin/internal/table"
)

// ListQuery параметры фильтрации и пагинации таблицы инцидентов
// @Description параметры фильтрации и пагинации таблицы инцидентов
type ListQuery struct {
	Source        string `form:"source" validate:"required,oneof=mobile cctv"`
	Period        string `form:"period" validate:"omitempty,oneof=day week month year"`
	Date          string `form:"date"`
	YearSelection string `form:"yearSelection"`
	AllYears      bool   `form:"allYears"`
	TypeFilter    string `form:"typeFilter" validate:"max=100"`
	StatusFilter  string `form:"statusFilter" validate:"max=100"`
	Search        string `form:"search" validate:"max=255"`
	ShowHidden    bool   `form:"showHidden"`
	SortField     string `form:"sortField" validate:"max=50"`
	SortDirection string `form:"sortDirection" validate:"omitempty,oneof=asc desc"`
	Page          int    `form:"page" validate:"gte=0,lte=1000000"`
	PerPage       int    `form:"perPage" validate:"gte=0,lte=100"`
}

// IncidentResponse DTO строки таблицы инцидентов
// @Description DTO строки таблицы инцидентов
type IncidentResponse struct {
	ID           int64      `json:"id"`
	FirebaseID   string     `json:"firebase_id,omitempty"`
	Source       string     `json:"source"`
	Type         string     `json:"type"`
	Status       string     `json:"status"`
	Severity     string     `json:"severity,omitempty"`
	Priority     string     `json:"priority,omitempty"`
	Location     string     `json:"location,omitempty"`
	CameraName   string     `json:"camera_name,omitempty"`
	Timestamp    time.Time  `json:"timestamp"`
	ResolvedAt   *time.Time `json:"resolved_at,omitempty"`
	ReporterName string     `json:"reporter_name,omitempty"`
	Department   string     `json:"department,omitempty"`
	Description  string     `json:"incident_description,omitempty"`
	ImageURL     string     `json:"proof_image_url,omitempty"`
	Hidden       bool       `json:"hidden"`
}

// PageResponse DTO страницы таблицы
// @Description DTO страницы таблицы
type PageResponse struct {
	Rows     []*IncidentResponse `json:"rows"`
	Total    int                 `json:"total"`
	Page     int                 `json:"page"`
	PerPage  int                 `json:"per_page"`
	LastPage int                 `json:"last_page"`
	Types    []string            `json:"types"`
	Years    []int               `json:"years"`
}

// BulkRequest DTO массового действия
// @Description DTO массового действия
type BulkRequest struct {
	IDs []int64 `json:"ids" validate:"required,min=1,dive,gt=0"`
}

// BulkResponse DTO ответа на скрытие/показ
// @Description DTO ответа на скрытие/показ
type BulkResponse struct {
	Affected int64  `json:"affected"`
	Message  string `json:"message"`
}

// DeletionResponse DTO ответа на удаление
// @Description DTO ответа на удаление
type DeletionResponse struct {
	Requested     int      `json:"requested"`
	Deleted       int64    `json:"deleted"`
	RemoteDeleted []string `json:"remote_deleted"`
	RemoteFailed  []string `json:"remote_failed"`
	Message       string   `json:"message"`
}

// SummaryResponse DTO сводки для графиков
// @Description DTO сводки для графиков
type SummaryResponse struct {
	Source   string         `json:"source"`
	Period   string         `json:"period"`
	Labels   []string       `json:"labels"`
	Counts   []int          `json:"counts"`
	Severity map[string]int `json:"severity,omitempty"`
	Status   map[string]int `json:"status"`
	Type     map[string]int `json:"type"`
	Total    int            `json:"total"`
}

// TableCriteriaRequest DTO фильтров сессионной таблицы
// @Description DTO фильтров сессионной таблицы
type TableCriteriaRequest struct {
	Type          string `json:"type_filter" validate:"max=100"`
	Status        string `json:"status_filter" validate:"max=100"`
	Search        string `json:"search" validate:"max=255"`
	ShowHidden    bool   `json:"show_hidden"`
	Period        string `json:"period" validate:"required,oneof=day week month year"`
	AnchorDate    string `json:"anchor_date" validate:"required"`
	YearSelection string `json:"year_selection"`
}

// SortRequest DTO смены сортировки
// @Description DTO смены сортировки
type SortRequest struct {
	Field string `json:"field" validate:"required,max=50"`
}

// PageRequest DTO смены страницы
// @Description DTO смены страницы
type PageRequest struct {
	Page    int `json:"page" validate:"omitempty,gte=1,lte=1000000"`
	PerPage int `json:"per_page" validate:"omitempty,gte=1,lte=100"`
}

// SelectAllRequest DTO "выбрать все"
// @Description DTO "выбрать все"
type SelectAllRequest struct {
	On bool `json:"on"`
}

// SelectionRequest DTO ручного выбора строк
// @Description DTO ручного выбора строк
type SelectionRequest struct {
	IDs []int64 `json:"ids" validate:"dive,gt=0"`
}

// ViewResponse DTO состояния сессионной таблицы
// @Description DTO состояния сессионной таблицы
type ViewResponse struct {
	View *table.View   `json:"view"`
	Page *PageResponse `json:"page"`
}
