package service

import (
	"context"
	"fmt"

	"github.com/shenikar/incident_admin/internal/models"
	"github.com/sirupsen/logrus"
)

// DeleteIncidents удаляет инциденты из удаленного хранилища (по возможности) и из БД (атомарно).
// Ошибки удаленного хранилища только логируются и попадают в RemoteFailed.
func (s *incidentService) DeleteIncidents(ctx context.Context, ids []int64) (*models.DeletionResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "DeleteIncidents",
		"count":   len(ids),
	})
	if len(ids) == 0 {
		return nil, models.ErrNoSelection
	}

	refs, err := s.repo.GetRefs(ctx, ids)
	if err != nil {
		log.WithError(err).Error("Failed to get incident references")
		return nil, fmt.Errorf("service: could not get incident references: %w", err)
	}

	result := &models.DeletionResult{
		Requested:     len(ids),
		RemoteDeleted: []string{},
		RemoteFailed:  []string{},
	}
	existing := make([]int64, 0, len(refs))
	firebaseIDs := make([]string, 0, len(refs))
	for _, ref := range refs {
		existing = append(existing, ref.ID)
		if !ref.HasFirebaseID() {
			continue
		}
		firebaseIDs = append(firebaseIDs, ref.FirebaseID)

		if err := s.remote.DeleteIncident(ctx, ref.FirebaseID); err != nil {
			log.WithError(err).WithField("firebase_id", ref.FirebaseID).Warn("Failed to delete incident from remote store")
			result.RemoteFailed = append(result.RemoteFailed, ref.FirebaseID)
		} else {
			result.RemoteDeleted = append(result.RemoteDeleted, ref.FirebaseID)
		}
		if err := s.repo.InvalidateRemoteCache(ctx, ref.FirebaseID); err != nil {
			log.WithError(err).WithField("firebase_id", ref.FirebaseID).Warn("Failed to invalidate remote incident cache")
		}
	}

	if len(existing) == 0 {
		log.Info("No matching incidents to delete")
		return result, nil
	}

	deleted, err := s.repo.DeleteIncidentsTx(ctx, existing, firebaseIDs)
	if err != nil {
		log.WithError(err).Error("Deletion transaction rolled back")
		return nil, fmt.Errorf("service: could not delete incidents: %w: %w", models.ErrTransactionFailed, err)
	}
	result.Deleted = deleted

	// Документы, которые не удалось удалить, дочищаются фоновым воркером
	if len(result.RemoteFailed) > 0 {
		if err := s.cleanup.Enqueue(ctx, result.RemoteFailed); err != nil {
			log.WithError(err).Warn("Failed to enqueue remote cleanup")
		}
	}

	log.WithFields(logrus.Fields{
		"deleted":        deleted,
		"remote_deleted": len(result.RemoteDeleted),
		"remote_failed":  len(result.RemoteFailed),
	}).Info("Incidents deleted")
	return result, nil
}
