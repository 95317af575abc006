package service

import (
	"context"
	"fmt"

	"github.com/shenikar/incident_admin/internal/filter"
	"github.com/shenikar/incident_admin/internal/models"
	"github.com/shenikar/incident_admin/internal/reconcile"
	"github.com/sirupsen/logrus"
)

// ListRemoteIncidents возвращает документы удаленного хранилища, еще не перенесенные в БД,
// отфильтрованные тем же предикатом, что и таблица.
func (s *incidentService) ListRemoteIncidents(ctx context.Context, c filter.Criteria) ([]*models.NormalizedIncident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ListRemoteIncidents",
		"source":  c.Source,
	})

	docs, err := s.remote.ListIncidents(ctx, s.cfg.RemoteListLimit)
	if err != nil {
		log.WithError(err).Warn("Failed to list remote incidents")
		return nil, fmt.Errorf("service: could not list remote incidents: %w", err)
	}

	normalized := make([]*models.NormalizedIncident, 0, len(docs))
	refs := make([]string, 0, len(docs))
	for _, doc := range docs {
		n := reconcile.Normalize(reconcile.FromDocument(doc.Fields), doc.ID)
		normalized = append(normalized, n)
		refs = append(refs, n.Ref.FirebaseID)
	}

	migrated, err := s.repo.ExistingFirebaseIDs(ctx, refs)
	if err != nil {
		log.WithError(err).Error("Failed to check migrated incidents")
		return nil, fmt.Errorf("service: could not check migrated incidents: %w", err)
	}

	p := filter.Build(c)
	result := make([]*models.NormalizedIncident, 0, len(normalized))
	for _, n := range normalized {
		if migrated[n.Ref.FirebaseID] {
			continue
		}
		if p.Match(reconcile.ToIncident(n)) {
			result = append(result, n)
		}
	}

	log.WithFields(logrus.Fields{
		"fetched": len(docs),
		"matched": len(result),
	}).Debug("Remote incidents listed")
	return result, nil
}
