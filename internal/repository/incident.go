package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/incident_admin/internal/filter"
	"github.com/shenikar/incident_admin/internal/models"
	"github.com/shenikar/incident_admin/internal/service"
	"github.com/shenikar/incident_admin/internal/table"
)

type IncidentRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
	viewTTL     time.Duration
}

func NewIncidentRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL, viewTTL time.Duration) service.IncidentRepository {
	return &IncidentRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
		viewTTL:     viewTTL,
	}
}

const incidentColumns = `
	id,
	COALESCE(firebase_id, ''),
	source,
	type,
	status,
	COALESCE(severity, ''),
	COALESCE(priority, ''),
	COALESCE(location, ''),
	COALESCE(camera_name, ''),
	COALESCE("timestamp", created_at),
	resolved_at,
	COALESCE(reporter_name, ''),
	COALESCE(department, ''),
	COALESCE(incident_description, ''),
	COALESCE(proof_image_url, ''),
	latitude,
	longitude,
	hidden,
	created_at`

func scanIncident(row pgx.Row) (*models.Incident, error) {
	incident := &models.Incident{}
	err := row.Scan(
		&incident.ID,
		&incident.FirebaseID,
		&incident.Source,
		&incident.Type,
		&incident.Status,
		&incident.Severity,
		&incident.Priority,
		&incident.Location,
		&incident.CameraName,
		&incident.Timestamp,
		&incident.ResolvedAt,
		&incident.ReporterName,
		&incident.Department,
		&incident.Description,
		&incident.ImageURL,
		&incident.Latitude,
		&incident.Longitude,
		&incident.Hidden,
		&incident.CreatedAt,
	)
	return incident, err
}

func collectIncidents(rows pgx.Rows) ([]*models.Incident, error) {
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return incidents, nil
}

// ListIncidents возвращает страницу инцидентов и общее число подходящих строк
func (r *IncidentRepository) ListIncidents(ctx context.Context, q table.Query) ([]*models.Incident, int, error) {
	where, args := filter.Build(q.Criteria).SQL(1)

	var total int
	countQuery := `SELECT COUNT(*) FROM incidents WHERE ` + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count incidents: %w", err)
	}

	n := len(args)
	query := fmt.Sprintf(`SELECT %s FROM incidents WHERE %s ORDER BY %s LIMIT $%d OFFSET $%d;`,
		incidentColumns, where, q.Sort.OrderBy(), n+1, n+2)
	rows, err := r.db.Query(ctx, query, append(args, q.PerPage, q.Offset())...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list incidents: %w", err)
	}
	incidents, err := collectIncidents(rows)
	if err != nil {
		return nil, 0, err
	}
	return incidents, total, nil
}

// FindIncidents возвращает все инциденты, подходящие под предикат
func (r *IncidentRepository) FindIncidents(ctx context.Context, p filter.Predicate) ([]*models.Incident, error) {
	where, args := p.SQL(1)
	query := fmt.Sprintf(`SELECT %s FROM incidents WHERE %s ORDER BY %s DESC, id DESC;`, incidentColumns, where, filter.TimestampColumn)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to find incidents: %w", err)
	}
	return collectIncidents(rows)
}

// DistinctTypes возвращает различные типы инцидентов источника
func (r *IncidentRepository) DistinctTypes(ctx context.Context, source string) ([]string, error) {
	query := `SELECT DISTINCT type FROM incidents WHERE source = $1 ORDER BY type;`
	rows, err := r.db.Query(ctx, query, source)
	if err != nil {
		return nil, fmt.Errorf("failed to list incident types: %w", err)
	}
	types, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to scan incident types: %w", err)
	}
	return types, nil
}

// DistinctYears возвращает годы, в которых есть инциденты источника, по убыванию
func (r *IncidentRepository) DistinctYears(ctx context.Context, source string) ([]int, error) {
	query := `
		SELECT DISTINCT EXTRACT(YEAR FROM ` + filter.TimestampColumn + `)::int AS year
		FROM incidents
		WHERE source = $1
		ORDER BY year DESC;
	`
	rows, err := r.db.Query(ctx, query, source)
	if err != nil {
		return nil, fmt.Errorf("failed to list incident years: %w", err)
	}
	years, err := pgx.CollectRows(rows, pgx.RowTo[int])
	if err != nil {
		return nil, fmt.Errorf("failed to scan incident years: %w", err)
	}
	return years, nil
}

// GetByIdentifier ищет инцидент по числовому id или по firebase_id; совпадение по id приоритетнее
func (r *IncidentRepository) GetByIdentifier(ctx context.Context, identifier string) (*models.Incident, error) {
	var row pgx.Row
	if id, err := strconv.ParseInt(identifier, 10, 64); err == nil {
		query := fmt.Sprintf(`
			SELECT %s FROM incidents
			WHERE id = $1 OR firebase_id = $2
			ORDER BY (id = $1) DESC
			LIMIT 1;`, incidentColumns)
		row = r.db.QueryRow(ctx, query, id, identifier)
	} else {
		query := fmt.Sprintf(`SELECT %s FROM incidents WHERE firebase_id = $1 LIMIT 1;`, incidentColumns)
		row = r.db.QueryRow(ctx, query, identifier)
	}

	incident, err := scanIncident(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incident %s: %w", identifier, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get incident by identifier: %w", err)
	}
	return incident, nil
}

// ListResponders возвращает назначения инцидента по любой форме id в порядке создания
func (r *IncidentRepository) ListResponders(ctx context.Context, ref models.IncidentRef) ([]models.Responder, error) {
	query := `
		SELECT d.id, COALESCE(u.name, ''), COALESCE(u.responder_type, ''), d.status, d.created_at
		FROM dispatches d
		LEFT JOIN users u ON u.id = d.responder_id
		WHERE d.incident_id = ANY($1)
		ORDER BY d.created_at, d.id;
	`
	rows, err := r.db.Query(ctx, query, ref.References())
	if err != nil {
		return nil, fmt.Errorf("failed to list responders: %w", err)
	}
	defer rows.Close()

	responders := make([]models.Responder, 0)
	for rows.Next() {
		var resp models.Responder
		if err := rows.Scan(&resp.DispatchID, &resp.Name, &resp.ResponderType, &resp.Status, &resp.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan responder row: %w", err)
		}
		responders = append(responders, resp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error responders iteration: %w", err)
	}
	return responders, nil
}

// ListNotes возвращает заметки инцидента
func (r *IncidentRepository) ListNotes(ctx context.Context, incidentID int64) ([]models.IncidentNote, error) {
	query := `
		SELECT n.id, n.incident_id, COALESCE(u.name, ''), n.note, n.created_at
		FROM incident_notes n
		LEFT JOIN users u ON u.id = n.user_id
		WHERE n.incident_id = $1
		ORDER BY n.created_at, n.id;
	`
	rows, err := r.db.Query(ctx, query, incidentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	notes := make([]models.IncidentNote, 0)
	for rows.Next() {
		var note models.IncidentNote
		if err := rows.Scan(&note.ID, &note.IncidentID, &note.UserName, &note.Note, &note.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan note row: %w", err)
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error notes iteration: %w", err)
	}
	return notes, nil
}

// ListTimeline возвращает хронологию инцидента
func (r *IncidentRepository) ListTimeline(ctx context.Context, incidentID int64) ([]models.TimelineEntry, error) {
	query := `
		SELECT t.id, t.incident_id, COALESCE(u.name, ''), t.event, COALESCE(t.details, ''), t.created_at
		FROM incident_timelines t
		LEFT JOIN users u ON u.id = t.user_id
		WHERE t.incident_id = $1
		ORDER BY t.created_at, t.id;
	`
	rows, err := r.db.Query(ctx, query, incidentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list timeline: %w", err)
	}
	defer rows.Close()

	timeline := make([]models.TimelineEntry, 0)
	for rows.Next() {
		var entry models.TimelineEntry
		if err := rows.Scan(&entry.ID, &entry.IncidentID, &entry.UserName, &entry.Event, &entry.Details, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan timeline row: %w", err)
		}
		timeline = append(timeline, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error timeline iteration: %w", err)
	}
	return timeline, nil
}

// ExistingFirebaseIDs сообщает, какие внешние id уже перенесены в БД
func (r *IncidentRepository) ExistingFirebaseIDs(ctx context.Context, firebaseIDs []string) (map[string]bool, error) {
	existing := make(map[string]bool)
	if len(firebaseIDs) == 0 {
		return existing, nil
	}

	rows, err := r.db.Query(ctx, `SELECT firebase_id FROM incidents WHERE firebase_id = ANY($1);`, firebaseIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to check firebase ids: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to scan firebase ids: %w", err)
	}
	for _, id := range ids {
		existing[id] = true
	}
	return existing, nil
}

// SetHidden меняет флаг hidden у выбранных инцидентов одним запросом
func (r *IncidentRepository) SetHidden(ctx context.Context, ids []int64, hidden bool) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `UPDATE incidents SET hidden = $1 WHERE id = ANY($2);`, hidden, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to update hidden flag: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// GetRefs возвращает пары (id, firebase_id) существующих инцидентов
func (r *IncidentRepository) GetRefs(ctx context.Context, ids []int64) ([]models.IncidentRef, error) {
	rows, err := r.db.Query(ctx, `SELECT id, COALESCE(firebase_id, '') FROM incidents WHERE id = ANY($1) ORDER BY id;`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get incident refs: %w", err)
	}
	defer rows.Close()

	refs := make([]models.IncidentRef, 0, len(ids))
	for rows.Next() {
		var ref models.IncidentRef
		if err := rows.Scan(&ref.ID, &ref.FirebaseID); err != nil {
			return nil, fmt.Errorf("failed to scan incident ref: %w", err)
		}
		refs = append(refs, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error refs iteration: %w", err)
	}
	return refs, nil
}

// DeleteIncidentsTx удаляет назначения, заметки, хронологию и сами инциденты в одной транзакции
func (r *IncidentRepository) DeleteIncidentsTx(ctx context.Context, ids []int64, firebaseIDs []string) (int64, error) {
	refs := make([]string, 0, len(ids)+len(firebaseIDs))
	for _, id := range ids {
		refs = append(refs, strconv.FormatInt(id, 10))
	}
	refs = append(refs, firebaseIDs...)

	var deleted int64
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM dispatches WHERE incident_id = ANY($1);`, refs); err != nil {
			return fmt.Errorf("failed to delete dispatches: %w", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM incident_notes WHERE incident_id = ANY($1);`, ids); err != nil {
			return fmt.Errorf("failed to delete notes: %w", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM incident_timelines WHERE incident_id = ANY($1);`, ids); err != nil {
			return fmt.Errorf("failed to delete timeline: %w", err)
		}
		cmdTag, err := tx.Exec(ctx, `DELETE FROM incidents WHERE id = ANY($1);`, ids)
		if err != nil {
			return fmt.Errorf("failed to delete incidents: %w", err)
		}
		deleted = cmdTag.RowsAffected()
		return nil
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return 0, fmt.Errorf("incidents are still referenced by %s: %w", pgErr.TableName, err)
		}
		return 0, err
	}
	return deleted, nil
}
