package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shenikar/incident_admin/internal/models"
	"github.com/shenikar/incident_admin/internal/reconcile"
	"github.com/sirupsen/logrus"
)

// ResolveIncident находит инцидент сначала в БД, затем в удаленном хранилище,
// нормализует его и присоединяет реагирующих, заметки и хронологию.
func (s *incidentService) ResolveIncident(ctx context.Context, identifier string) (*models.NormalizedIncident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "incident",
		"method":     "ResolveIncident",
		"identifier": identifier,
	})
	if identifier == "" {
		return nil, models.ErrNotFound
	}

	var rec reconcile.RawRecord
	inc, err := s.repo.GetByIdentifier(ctx, identifier)
	switch {
	case err == nil:
		rec = reconcile.FromIncident(inc)
	case errors.Is(err, models.ErrNotFound):
		fields, err := s.remoteIncident(ctx, identifier)
		if err != nil {
			log.WithError(err).Info("Incident not found in any store")
			return nil, models.ErrNotFound
		}
		rec = reconcile.FromDocument(fields)
	default:
		log.WithError(err).Error("Failed to get incident from repository")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}

	n := reconcile.Normalize(rec, identifier)

	var responders []models.Responder
	if n.Ref.Resolvable() {
		responders, err = s.repo.ListResponders(ctx, n.Ref)
		if err != nil {
			log.WithError(err).Error("Failed to list responders")
			return nil, fmt.Errorf("service: could not list responders: %w", err)
		}
	}

	var notes []models.IncidentNote
	var timeline []models.TimelineEntry
	if n.Ref.HasID() {
		if notes, err = s.repo.ListNotes(ctx, n.Ref.ID); err != nil {
			log.WithError(err).Error("Failed to list notes")
			return nil, fmt.Errorf("service: could not list notes: %w", err)
		}
		if timeline, err = s.repo.ListTimeline(ctx, n.Ref.ID); err != nil {
			log.WithError(err).Error("Failed to list timeline")
			return nil, fmt.Errorf("service: could not list timeline: %w", err)
		}
	}

	reconcile.Attach(n, responders, notes, timeline)
	n.MapURL = reconcile.MapURL(n, s.cfg.MapboxToken)

	log.WithFields(logrus.Fields{
		"origin":     n.Origin,
		"responders": len(n.Responders),
	}).Debug("Incident resolved")
	return n, nil
}

// remoteIncident читает документ через кеш. Ошибки кеша не фатальны.
func (s *incidentService) remoteIncident(ctx context.Context, id string) (map[string]any, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "remoteIncident",
		"id":      id,
	})

	fields, err := s.repo.GetRemoteFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get remote incident from cache")
	}
	if fields != nil {
		log.Debug("Cache hit")
		return fields, nil
	}

	fields, err = s.remote.GetIncident(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.SetRemoteCache(ctx, id, fields); err != nil {
		log.WithError(err).Warn("Failed to cache remote incident")
	}
	return fields, nil
}
