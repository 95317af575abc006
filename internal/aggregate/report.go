package aggregate

import (
	"github.com/shenikar/incident_admin/internal/models"
	"github.com/shenikar/incident_admin/internal/period"
)

// Report - сводка по отфильтрованному набору: ряд, гистограммы и сами инциденты
type Report struct {
	Source     string             `json:"source"`
	Window     period.Window      `json:"window"`
	Total      int                `json:"total"`
	Series     Series             `json:"series"`
	Histograms Histograms         `json:"histograms"`
	Incidents  []*models.Incident `json:"-"`
}

// Build собирает сводку по уже отфильтрованному набору
func Build(incidents []*models.Incident, source string, w period.Window) *Report {
	return &Report{
		Source:     source,
		Window:     w,
		Total:      len(incidents),
		Series:     BuildSeries(incidents, w),
		Histograms: BuildHistograms(incidents, source),
		Incidents:  incidents,
	}
}
