package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/shenikar/incident_admin/internal/models"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestRemoteError(t *testing.T) {
	notFound := remoteError(status.Error(codes.NotFound, "no document"), "get", "fb1")
	assert.ErrorIs(t, notFound, models.ErrNotFound)
	assert.NotErrorIs(t, notFound, models.ErrRemoteStoreUnavailable)

	unavailable := remoteError(status.Error(codes.Unavailable, "connection refused"), "delete", "fb1")
	assert.ErrorIs(t, unavailable, models.ErrRemoteStoreUnavailable)

	timeout := remoteError(context.DeadlineExceeded, "list", "incidents")
	assert.ErrorIs(t, timeout, models.ErrRemoteStoreUnavailable)
	assert.True(t, errors.Is(timeout, context.DeadlineExceeded))
}

func TestDisabledRemoteStore(t *testing.T) {
	store := NewDisabledRemoteStore()
	ctx := context.Background()

	_, err := store.GetIncident(ctx, "fb1")
	assert.ErrorIs(t, err, models.ErrRemoteStoreUnavailable)

	_, err = store.ListIncidents(ctx, 10)
	assert.ErrorIs(t, err, models.ErrRemoteStoreUnavailable)

	assert.ErrorIs(t, store.DeleteIncident(ctx, "fb1"), models.ErrRemoteStoreUnavailable)
}
