package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shenikar/incident_admin/internal/models"
	"github.com/shenikar/incident_admin/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestResolveIncident_FromDB(t *testing.T) {
	// Подготовка
	service, deps := newTestIncidentService(t)
	ctx := context.Background()
	lat, lng := 14.66, 120.95
	incident := &models.Incident{
		ID:         7,
		FirebaseID: "fb-7",
		Source:     models.SourceMobile,
		Type:       "fire",
		Status:     "resolved",
		Severity:   "high",
		Location:   "Baritan Hall",
		Timestamp:  time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC),
		Latitude:   &lat,
		Longitude:  &lng,
	}
	responders := []models.Responder{{DispatchID: 1, Name: "Juan"}, {DispatchID: 2, Name: "Maria"}, {DispatchID: 3, Name: "Pedro"}}
	notes := []models.IncidentNote{{ID: 1, IncidentID: 7, Note: "on scene"}}
	timeline := []models.TimelineEntry{{ID: 1, IncidentID: 7, Event: "dispatched"}}

	// Ожидания
	deps.repo.EXPECT().GetByIdentifier(ctx, "7").Return(incident, nil).Times(1)
	deps.repo.EXPECT().ListResponders(ctx, models.IncidentRef{ID: 7, FirebaseID: "fb-7"}).Return(responders, nil).Times(1)
	deps.repo.EXPECT().ListNotes(ctx, int64(7)).Return(notes, nil).Times(1)
	deps.repo.EXPECT().ListTimeline(ctx, int64(7)).Return(timeline, nil).Times(1)

	// Действие
	n, err := service.ResolveIncident(ctx, "7")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "fb-7", n.ID)
	assert.Equal(t, "relational", n.Origin)
	assert.Equal(t, "fire", n.Type)
	require.NotNil(t, n.LeadResponder)
	assert.Equal(t, "Juan", n.LeadResponder.Name)
	assert.Len(t, n.AdditionalResponders, 2)
	assert.Equal(t, notes, n.Notes)
	assert.Equal(t, timeline, n.Timeline)
	assert.Contains(t, n.MapURL, "pin-s+ff0000(120.95,14.66)")
	assert.Contains(t, n.MapURL, "access_token=pk.test")
}

func TestResolveIncident_FromRemoteStore(t *testing.T) {
	service, deps := newTestIncidentService(t)
	ctx := context.Background()
	fields := map[string]any{
		"event":       "intrusion",
		"camera_name": "Gate 2",
		"datetime":    "2024-03-15 21:04:00",
	}

	deps.repo.EXPECT().GetByIdentifier(ctx, "doc-42").Return(nil, models.ErrNotFound).Times(1)
	deps.repo.EXPECT().GetRemoteFromCache(ctx, "doc-42").Return(nil, nil).Times(1)
	deps.remote.EXPECT().GetIncident(ctx, "doc-42").Return(fields, nil).Times(1)
	deps.repo.EXPECT().SetRemoteCache(ctx, "doc-42", fields).Return(nil).Times(1)
	deps.repo.EXPECT().ListResponders(ctx, models.IncidentRef{FirebaseID: "doc-42"}).Return([]models.Responder{}, nil).Times(1)

	n, err := service.ResolveIncident(ctx, "doc-42")

	require.NoError(t, err)
	assert.Equal(t, "doc-42", n.ID)
	assert.Equal(t, models.SourceCCTV, n.Source)
	assert.Equal(t, "intrusion", n.Type)
	assert.Equal(t, "Gate 2", n.Location)
	assert.Equal(t, "unknown", n.Status)
	require.NotNil(t, n.Timestamp)
	assert.Equal(t, 21, n.Timestamp.Hour())
	assert.Nil(t, n.LeadResponder)
	assert.Empty(t, n.Notes)
	assert.Empty(t, n.MapURL)
}

func TestResolveIncident_FromCache(t *testing.T) {
	service, deps := newTestIncidentService(t)
	ctx := context.Background()
	cached := map[string]any{"incident_id": "fb-9", "type": "flood"}

	deps.repo.EXPECT().GetByIdentifier(ctx, "fb-9").Return(nil, models.ErrNotFound).Times(1)
	deps.repo.EXPECT().GetRemoteFromCache(ctx, "fb-9").Return(cached, nil).Times(1)
	deps.remote.EXPECT().GetIncident(gomock.Any(), gomock.Any()).Times(0)
	deps.repo.EXPECT().ListResponders(ctx, models.IncidentRef{FirebaseID: "fb-9"}).Return(nil, nil).Times(1)

	n, err := service.ResolveIncident(ctx, "fb-9")

	require.NoError(t, err)
	assert.Equal(t, "flood", n.Type)
	assert.Equal(t, models.SourceMobile, n.Source)
	assert.NotNil(t, n.Responders)
}

func TestResolveIncident_CacheErrorIsIgnored(t *testing.T) {
	service, deps := newTestIncidentService(t)
	ctx := context.Background()
	fields := map[string]any{"type": "fire"}

	deps.repo.EXPECT().GetByIdentifier(ctx, "fb-1").Return(nil, models.ErrNotFound).Times(1)
	deps.repo.EXPECT().GetRemoteFromCache(ctx, "fb-1").Return(nil, errors.New("redis down")).Times(1)
	deps.remote.EXPECT().GetIncident(ctx, "fb-1").Return(fields, nil).Times(1)
	deps.repo.EXPECT().SetRemoteCache(ctx, "fb-1", fields).Return(errors.New("redis down")).Times(1)
	deps.repo.EXPECT().ListResponders(ctx, gomock.Any()).Return(nil, nil).Times(1)

	n, err := service.ResolveIncident(ctx, "fb-1")

	require.NoError(t, err)
	assert.Equal(t, "fire", n.Type)
	assert.Contains(t, deps.logs.String(), "Failed to get remote incident from cache")
}

func TestResolveIncident_NotFound(t *testing.T) {
	cases := map[string]error{
		"missing document":   models.ErrNotFound,
		"remote unavailable": models.ErrRemoteStoreUnavailable,
		"timeout":            context.DeadlineExceeded,
	}
	for name, remoteErr := range cases {
		t.Run(name, func(t *testing.T) {
			service, deps := newTestIncidentService(t)
			ctx := context.Background()

			deps.repo.EXPECT().GetByIdentifier(ctx, "nope").Return(nil, models.ErrNotFound).Times(1)
			deps.repo.EXPECT().GetRemoteFromCache(ctx, "nope").Return(nil, nil).Times(1)
			deps.remote.EXPECT().GetIncident(ctx, "nope").Return(nil, remoteErr).Times(1)

			n, err := service.ResolveIncident(ctx, "nope")

			assert.Nil(t, n)
			assert.ErrorIs(t, err, models.ErrNotFound)
		})
	}
}

func TestResolveIncident_RepositoryError(t *testing.T) {
	service, deps := newTestIncidentService(t)
	ctx := context.Background()
	dbErr := errors.New("too many connections")

	deps.repo.EXPECT().GetByIdentifier(ctx, "5").Return(nil, dbErr).Times(1)

	_, err := service.ResolveIncident(ctx, "5")

	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, models.ErrNotFound)
}

func TestGenerateSingleReport(t *testing.T) {
	service, deps := newTestIncidentService(t)
	ctx := context.Background()
	incident := &models.Incident{ID: 3, Source: models.SourceMobile, Type: "fire", Status: "pending", Timestamp: time.Now()}
	doc := &report.Document{Filename: "incident-3-20240315_100000.pdf"}

	deps.repo.EXPECT().GetByIdentifier(ctx, "3").Return(incident, nil).Times(1)
	deps.repo.EXPECT().ListResponders(ctx, models.IncidentRef{ID: 3}).Return(nil, nil).Times(1)
	deps.repo.EXPECT().ListNotes(ctx, int64(3)).Return(nil, nil).Times(1)
	deps.repo.EXPECT().ListTimeline(ctx, int64(3)).Return(nil, nil).Times(1)
	deps.emitter.EXPECT().Single(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, n *models.NormalizedIncident) (*report.Document, error) {
			assert.Equal(t, "3", n.ID)
			return doc, nil
		}).Times(1)

	got, err := service.GenerateSingleReport(ctx, "3")

	require.NoError(t, err)
	assert.Equal(t, doc, got)
}
