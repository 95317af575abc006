package v1

import (
	"github.com/shenikar/incident_admin/internal/aggregate"
	"github.com/shenikar/incident_admin/internal/filter"
	"github.com/shenikar/incident_admin/internal/models"
	"github.com/shenikar/incident_admin/internal/period"
	"github.com/shenikar/incident_admin/internal/table"
)

// QueryToCriteria преобразует параметры запроса в критерии фильтра.
// today подставляется, если дата не передана; пустой период означает день.
func QueryToCriteria(q ListQuery, today string) (filter.Criteria, error) {
	date := q.Date
	if date == "" {
		date = today
	}
	p := period.Day
	if q.Period != "" {
		var err error
		if p, err = period.Parse(q.Period); err != nil {
			return filter.Criteria{}, err
		}
	}
	w, err := period.Resolve(p, date, period.YearSelection(q.AllYears, q.YearSelection, date))
	if err != nil {
		return filter.Criteria{}, err
	}
	return filter.Criteria{
		Source: q.Source,
		Type:   q.TypeFilter,
		Status: q.StatusFilter,
		Hidden: q.ShowHidden,
		Search: q.Search,
		Window: w,
	}, nil
}

// QueryToSort возвращает запрошенную сортировку; значения по умолчанию подставляет сервис
func QueryToSort(q ListQuery) table.Sort {
	return table.Sort{Field: q.SortField, Direction: q.SortDirection}
}

// RequestToTableCriteria преобразует DTO фильтров в состояние таблицы
func RequestToTableCriteria(r TableCriteriaRequest) table.Criteria {
	return table.Criteria{
		Type:          r.Type,
		Status:        r.Status,
		Search:        r.Search,
		ShowHidden:    r.ShowHidden,
		Period:        r.Period,
		AnchorDate:    r.AnchorDate,
		YearSelection: r.YearSelection,
	}
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:           model.ID,
		FirebaseID:   model.FirebaseID,
		Source:       model.Source,
		Type:         model.Type,
		Status:       model.Status,
		Severity:     model.Severity,
		Priority:     model.Priority,
		Location:     model.Location,
		CameraName:   model.CameraName,
		Timestamp:    model.Timestamp,
		ResolvedAt:   model.ResolvedAt,
		ReporterName: model.ReporterName,
		Department:   model.Department,
		Description:  model.Description,
		ImageURL:     model.ImageURL,
		Hidden:       model.Hidden,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(models []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}

// PageToResponse преобразует страницу таблицы в DTO
func PageToResponse(page *table.Page) *PageResponse {
	if page == nil {
		return nil
	}
	types := page.Types
	if types == nil {
		types = []string{}
	}
	years := page.Years
	if years == nil {
		years = []int{}
	}
	return &PageResponse{
		Rows:     ModelsToIncidentResponses(page.Rows),
		Total:    page.Total,
		Page:     page.Page,
		PerPage:  page.PerPage,
		LastPage: page.LastPage,
		Types:    types,
		Years:    years,
	}
}

// DeletionToResponse преобразует итог удаления в DTO
func DeletionToResponse(result *models.DeletionResult, message string) *DeletionResponse {
	return &DeletionResponse{
		Requested:     result.Requested,
		Deleted:       result.Deleted,
		RemoteDeleted: result.RemoteDeleted,
		RemoteFailed:  result.RemoteFailed,
		Message:       message,
	}
}

// ReportToSummaryResponse преобразует сводку в DTO для графиков
func ReportToSummaryResponse(r *aggregate.Report) *SummaryResponse {
	resp := &SummaryResponse{
		Source: r.Source,
		Period: string(r.Window.Period),
		Labels: r.Series.Labels,
		Counts: r.Series.Counts,
		Status: r.Histograms.Status,
		Type:   r.Histograms.Type,
		Total:  r.Total,
	}
	if r.Source == models.SourceMobile {
		resp.Severity = r.Histograms.Severity
	}
	return resp
}
