package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/shenikar/incident_admin/internal/models"
	"github.com/shenikar/incident_admin/internal/service"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// RemoteIncidentStore читает и удаляет документы инцидентов в Firestore
type RemoteIncidentStore struct {
	db         *firestore.Client
	collection string
	timeout    time.Duration
}

func NewRemoteIncidentStore(db *firestore.Client, collection string, timeout time.Duration) service.RemoteStore {
	return &RemoteIncidentStore{
		db:         db,
		collection: collection,
		timeout:    timeout,
	}
}

// GetIncident возвращает поля документа по id
func (r *RemoteIncidentStore) GetIncident(ctx context.Context, id string) (map[string]any, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	doc, err := r.db.Collection(r.collection).Doc(id).Get(ctx)
	if err != nil {
		return nil, remoteError(err, "get", id)
	}
	return doc.Data(), nil
}

// ListIncidents возвращает не более limit документов коллекции
func (r *RemoteIncidentStore) ListIncidents(ctx context.Context, limit int) ([]models.RemoteDocument, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	iter := r.db.Collection(r.collection).Limit(limit).Documents(ctx)
	defer iter.Stop()

	docs := make([]models.RemoteDocument, 0)
	for {
		doc, err := iter.Next()
		if err != nil {
			if errors.Is(err, iterator.Done) {
				break
			}
			return nil, remoteError(err, "list", r.collection)
		}
		docs = append(docs, models.RemoteDocument{ID: doc.Ref.ID, Fields: doc.Data()})
	}
	return docs, nil
}

// DeleteIncident удаляет документ; отсутствие документа не считается ошибкой
func (r *RemoteIncidentStore) DeleteIncident(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if _, err := r.db.Collection(r.collection).Doc(id).Delete(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil
		}
		return remoteError(err, "delete", id)
	}
	return nil
}

func remoteError(err error, op, id string) error {
	if status.Code(err) == codes.NotFound {
		return fmt.Errorf("remote %s %s: %w", op, id, models.ErrNotFound)
	}
	return fmt.Errorf("remote %s %s: %w: %w", op, id, models.ErrRemoteStoreUnavailable, err)
}

// DisabledRemoteStore используется, когда Firestore не настроен
type DisabledRemoteStore struct{}

func NewDisabledRemoteStore() service.RemoteStore {
	return DisabledRemoteStore{}
}

func (DisabledRemoteStore) GetIncident(context.Context, string) (map[string]any, error) {
	return nil, models.ErrRemoteStoreUnavailable
}

func (DisabledRemoteStore) ListIncidents(context.Context, int) ([]models.RemoteDocument, error) {
	return nil, models.ErrRemoteStoreUnavailable
}

func (DisabledRemoteStore) DeleteIncident(context.Context, string) error {
	return models.ErrRemoteStoreUnavailable
}
