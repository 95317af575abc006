package service

import (
	"context"
	"fmt"

	"github.com/shenikar/incident_admin/internal/aggregate"
	"github.com/shenikar/incident_admin/internal/filter"
	"github.com/shenikar/incident_admin/internal/report"
	"github.com/shenikar/incident_admin/internal/table"
	"github.com/sirupsen/logrus"
)

// Summarize собирает сводку по всем инцидентам, подходящим под критерии
func (s *incidentService) Summarize(ctx context.Context, c filter.Criteria, sort table.Sort) (*aggregate.Report, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "Summarize",
		"source":  c.Source,
		"period":  c.Window.Kind,
	})

	incidents, err := s.repo.FindIncidents(ctx, filter.Build(c))
	if err != nil {
		log.WithError(err).Error("Failed to find incidents")
		return nil, fmt.Errorf("service: could not find incidents: %w", err)
	}

	if sort.Field == "" {
		sort = table.Sort{Field: table.FieldTimestamp, Direction: table.Desc}
	}
	table.SortIncidents(incidents, sort.Normalize(c.Source))

	r := aggregate.Build(incidents, c.Source, c.Window)
	log.WithField("total", r.Total).Debug("Summary built")
	return r, nil
}

// GenerateReport строит сводку и отдает ее генератору документов
func (s *incidentService) GenerateReport(ctx context.Context, c filter.Criteria, sort table.Sort) (*report.Document, error) {
	r, err := s.Summarize(ctx, c, sort)
	if err != nil {
		return nil, err
	}

	doc, err := s.emitter.Summary(ctx, r)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "incident",
			"method":  "GenerateReport",
		}).WithError(err).Error("Failed to render summary report")
		return nil, fmt.Errorf("service: could not render report: %w", err)
	}
	return doc, nil
}

// GenerateSingleReport строит документ по одному инциденту
func (s *incidentService) GenerateSingleReport(ctx context.Context, identifier string) (*report.Document, error) {
	n, err := s.ResolveIncident(ctx, identifier)
	if err != nil {
		return nil, err
	}

	doc, err := s.emitter.Single(ctx, n)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service":    "incident",
			"method":     "GenerateSingleReport",
			"identifier": identifier,
		}).WithError(err).Error("Failed to render incident report")
		return nil, fmt.Errorf("service: could not render incident report: %w", err)
	}
	return doc, nil
}
