package repository

import (
	"context"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/incident_admin/internal/filter"
	"github.com/shenikar/incident_admin/internal/models"
	"github.com/shenikar/incident_admin/internal/period"
	"github.com/shenikar/incident_admin/internal/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Интеграционные тесты запускаются только при заданном TEST_DATABASE_URL
func setupDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	schema, err := os.ReadFile("../../migrations/000001_init.up.sql")
	require.NoError(t, err)
	_, err = pool.Exec(ctx, string(schema))
	require.NoError(t, err)

	_, err = pool.Exec(ctx, `TRUNCATE incident_timelines, incident_notes, dispatches, incidents, users RESTART IDENTITY CASCADE;`)
	require.NoError(t, err)
	return pool
}

func insertIncident(t *testing.T, pool *pgxpool.Pool, firebaseID, severity string, ts time.Time) int64 {
	t.Helper()
	var fb any
	if firebaseID != "" {
		fb = firebaseID
	}
	var id int64
	err := pool.QueryRow(context.Background(), `
		INSERT INTO incidents (firebase_id, source, type, status, severity, location, "timestamp")
		VALUES ($1, 'mobile', 'fire', 'pending', $2, 'Quezon City', $3) RETURNING id;`,
		fb, severity, ts).Scan(&id)
	require.NoError(t, err)
	return id
}

func countRows(t *testing.T, pool *pgxpool.Pool, query string, args ...any) int {
	t.Helper()
	var n int
	require.NoError(t, pool.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
}

func TestIncidentRepository_ListIncidents(t *testing.T) {
	pool := setupDB(t)
	repo := NewIncidentRepository(pool, nil, time.Minute, time.Minute)
	ctx := context.Background()

	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	low := insertIncident(t, pool, "", "low", day.Add(9*time.Hour))
	critical := insertIncident(t, pool, "", "critical", day.Add(8*time.Hour))
	high := insertIncident(t, pool, "", "high", day.Add(10*time.Hour))
	insertIncident(t, pool, "", "critical", day.AddDate(0, 0, -1))

	w, err := period.Resolve(period.Day, "2024-03-15", "")
	require.NoError(t, err)
	q := table.Query{
		Criteria: filter.Criteria{Source: models.SourceMobile, Window: w},
		Sort:     table.Sort{Field: table.FieldSeverity, Direction: table.Asc},
		Page:     1,
		PerPage:  2,
	}.Normalize()

	rows, total, err := repo.ListIncidents(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, rows, 2)
	assert.Equal(t, critical, rows[0].ID)
	assert.Equal(t, high, rows[1].ID)

	q.Page = 2
	rows, _, err = repo.ListIncidents(ctx, q)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, low, rows[0].ID)

	years, err := repo.DistinctYears(ctx, models.SourceMobile)
	require.NoError(t, err)
	assert.Equal(t, []int{2024}, years)
}

func TestIncidentRepository_ListIncidents_FallsBackToCreatedAt(t *testing.T) {
	pool := setupDB(t)
	repo := NewIncidentRepository(pool, nil, time.Minute, time.Minute)
	ctx := context.Background()

	day := time.Date(2023, 7, 4, 0, 0, 0, 0, time.UTC)
	stamped := insertIncident(t, pool, "", "low", day.Add(9*time.Hour))
	var undated int64
	err := pool.QueryRow(ctx, `
		INSERT INTO incidents (source, type, status, severity, location, created_at)
		VALUES ('mobile', 'fire', 'pending', 'Critical', 'Pasig', $1) RETURNING id;`,
		day.Add(7*time.Hour)).Scan(&undated)
	require.NoError(t, err)

	w, err := period.Resolve(period.Day, "2023-07-04", "")
	require.NoError(t, err)
	criteria := filter.Criteria{Source: models.SourceMobile, Window: w}
	q := table.Query{
		Criteria: criteria,
		Sort:     table.Sort{Field: table.FieldSeverity, Direction: table.Asc},
		Page:     1,
		PerPage:  10,
	}.Normalize()

	rows, total, err := repo.ListIncidents(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, rows, 2)
	assert.Equal(t, undated, rows[0].ID)
	assert.Equal(t, stamped, rows[1].ID)

	pred := filter.Build(criteria)
	for _, inc := range rows {
		assert.True(t, pred.Match(inc), inc.ID)
	}

	years, err := repo.DistinctYears(ctx, models.SourceMobile)
	require.NoError(t, err)
	assert.Equal(t, []int{2023}, years)
}

func TestIncidentRepository_DeleteIncidentsTx(t *testing.T) {
	pool := setupDB(t)
	repo := NewIncidentRepository(pool, nil, time.Minute, time.Minute)
	ctx := context.Background()

	ts := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	first := insertIncident(t, pool, "fb-1", "high", ts)
	second := insertIncident(t, pool, "", "low", ts)
	kept := insertIncident(t, pool, "fb-3", "low", ts)

	_, err := pool.Exec(ctx, `
		INSERT INTO dispatches (incident_id, status) VALUES ($1, 'dispatched'), ('fb-1', 'dispatched'), ($2, 'dispatched'), ('fb-3', 'dispatched');`,
		strconv.FormatInt(first, 10), strconv.FormatInt(second, 10))
	require.NoError(t, err)
	_, err = pool.Exec(ctx, `INSERT INTO incident_notes (incident_id, note) VALUES ($1, 'on scene');`, first)
	require.NoError(t, err)

	deleted, err := repo.DeleteIncidentsTx(ctx, []int64{first, second}, []string{"fb-1"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	assert.Equal(t, 1, countRows(t, pool, `SELECT COUNT(*) FROM incidents;`))
	assert.Equal(t, 1, countRows(t, pool, `SELECT COUNT(*) FROM dispatches WHERE incident_id = 'fb-3';`))
	assert.Equal(t, 1, countRows(t, pool, `SELECT COUNT(*) FROM dispatches;`))
	assert.Equal(t, 0, countRows(t, pool, `SELECT COUNT(*) FROM incident_notes;`))
	assert.Equal(t, 1, countRows(t, pool, `SELECT COUNT(*) FROM incidents WHERE id = $1;`, kept))
}

func TestIncidentRepository_DeleteIncidentsTx_RollsBack(t *testing.T) {
	pool := setupDB(t)
	repo := NewIncidentRepository(pool, nil, time.Minute, time.Minute)
	ctx := context.Background()

	_, err := pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS incident_holds (incident_id BIGINT REFERENCES incidents (id) ON DELETE RESTRICT);`)
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(), `DROP TABLE IF EXISTS incident_holds;`)
	})

	ts := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	first := insertIncident(t, pool, "", "high", ts)
	second := insertIncident(t, pool, "", "low", ts)
	_, err = pool.Exec(ctx, `INSERT INTO dispatches (incident_id, status) VALUES ($1, 'dispatched');`, strconv.FormatInt(first, 10))
	require.NoError(t, err)
	_, err = pool.Exec(ctx, `INSERT INTO incident_holds (incident_id) VALUES ($1);`, second)
	require.NoError(t, err)

	_, err = repo.DeleteIncidentsTx(ctx, []int64{first, second}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "incident_holds")

	assert.Equal(t, 2, countRows(t, pool, `SELECT COUNT(*) FROM incidents;`))
	assert.Equal(t, 1, countRows(t, pool, `SELECT COUNT(*) FROM dispatches;`))
}

func TestIncidentRepository_ViewState(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR is not set")
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = rdb.Close() })
	repo := NewIncidentRepository(nil, rdb, time.Minute, time.Minute)
	ctx := context.Background()

	view := table.NewView(models.SourceCCTV, "2024-03-15")
	view.SetSelected([]int64{4, 7})
	require.NoError(t, repo.SaveView(ctx, "session-1", view))

	loaded, err := repo.LoadView(ctx, "session-1", models.SourceCCTV)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, []int64{4, 7}, loaded.Selected)

	missing, err := repo.LoadView(ctx, "session-2", models.SourceCCTV)
	require.NoError(t, err)
	assert.Nil(t, missing)

	fields := map[string]any{"type": "fire", "coords": map[string]any{"lat": 14.5}}
	require.NoError(t, repo.SetRemoteCache(ctx, "fb-1", fields))
	cached, err := repo.GetRemoteFromCache(ctx, "fb-1")
	require.NoError(t, err)
	assert.Equal(t, "fire", cached["type"])
	require.NoError(t, repo.InvalidateRemoteCache(ctx, "fb-1"))
	cached, err = repo.GetRemoteFromCache(ctx, "fb-1")
	require.NoError(t, err)
	assert.Nil(t, cached)
}
