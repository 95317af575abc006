package service

import (
	"context"
	"fmt"

	"github.com/shenikar/incident_admin/internal/aggregate"
	"github.com/shenikar/incident_admin/internal/config"
	"github.com/shenikar/incident_admin/internal/filter"
	"github.com/shenikar/incident_admin/internal/models"
	"github.com/shenikar/incident_admin/internal/report"
	"github.com/shenikar/incident_admin/internal/table"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=incident.go -destination=mocks/mocks.go -package=mocks

// IncidentRepository определяет контракт для работы с бд инцидентов и кешем
type IncidentRepository interface {
	ListIncidents(ctx context.Context, q table.Query) ([]*models.Incident, int, error)
	FindIncidents(ctx context.Context, p filter.Predicate) ([]*models.Incident, error)
	DistinctTypes(ctx context.Context, source string) ([]string, error)
	DistinctYears(ctx context.Context, source string) ([]int, error)
	GetByIdentifier(ctx context.Context, identifier string) (*models.Incident, error)
	ListResponders(ctx context.Context, ref models.IncidentRef) ([]models.Responder, error)
	ListNotes(ctx context.Context, incidentID int64) ([]models.IncidentNote, error)
	ListTimeline(ctx context.Context, incidentID int64) ([]models.TimelineEntry, error)
	ExistingFirebaseIDs(ctx context.Context, firebaseIDs []string) (map[string]bool, error)
	SetHidden(ctx context.Context, ids []int64, hidden bool) (int64, error)
	GetRefs(ctx context.Context, ids []int64) ([]models.IncidentRef, error)
	DeleteIncidentsTx(ctx context.Context, ids []int64, firebaseIDs []string) (int64, error)

	GetRemoteFromCache(ctx context.Context, id string) (map[string]any, error)
	SetRemoteCache(ctx context.Context, id string, fields map[string]any) error
	InvalidateRemoteCache(ctx context.Context, id string) error
	LoadView(ctx context.Context, session, source string) (*table.View, error)
	SaveView(ctx context.Context, session string, view *table.View) error
}

// RemoteStore - удаленное хранилище документов: только чтение и удаление.
// Ошибки: models.ErrNotFound или models.ErrRemoteStoreUnavailable.
type RemoteStore interface {
	GetIncident(ctx context.Context, id string) (map[string]any, error)
	ListIncidents(ctx context.Context, limit int) ([]models.RemoteDocument, error)
	DeleteIncident(ctx context.Context, id string) error
}

// ReportEmitter превращает сводку или одиночный инцидент в документ
type ReportEmitter interface {
	Summary(ctx context.Context, r *aggregate.Report) (*report.Document, error)
	Single(ctx context.Context, n *models.NormalizedIncident) (*report.Document, error)
}

// IncidentService определяет контракт бизнес-логики админки инцидентов
type IncidentService interface {
	Page(ctx context.Context, q table.Query) (*table.Page, error)
	HideIncidents(ctx context.Context, ids []int64) (int64, error)
	UnhideIncidents(ctx context.Context, ids []int64) (int64, error)
	DeleteIncidents(ctx context.Context, ids []int64) (*models.DeletionResult, error)
	ResolveIncident(ctx context.Context, identifier string) (*models.NormalizedIncident, error)
	Summarize(ctx context.Context, c filter.Criteria, sort table.Sort) (*aggregate.Report, error)
	GenerateReport(ctx context.Context, c filter.Criteria, sort table.Sort) (*report.Document, error)
	GenerateSingleReport(ctx context.Context, identifier string) (*report.Document, error)
	ListRemoteIncidents(ctx context.Context, c filter.Criteria) ([]*models.NormalizedIncident, error)
	LoadView(ctx context.Context, session, source, today string) (*table.View, error)
	SaveView(ctx context.Context, session string, view *table.View) error
}

// RemoteCleanupQueue ставит в очередь повторное удаление документов, которые не удалось удалить сразу
type RemoteCleanupQueue interface {
	Enqueue(ctx context.Context, firebaseIDs []string) error
}

type incidentService struct {
	repo    IncidentRepository
	remote  RemoteStore
	emitter ReportEmitter
	cleanup RemoteCleanupQueue
	logger  *logrus.Logger
	cfg     *config.Config
}

func NewIncidentService(repo IncidentRepository, remote RemoteStore, emitter ReportEmitter, logger *logrus.Logger, cfg *config.Config, cleanup RemoteCleanupQueue) IncidentService {
	return &incidentService{
		repo:    repo,
		remote:  remote,
		emitter: emitter,
		cleanup: cleanup,
		logger:  logger,
		cfg:     cfg,
	}
}

// Page возвращает страницу таблицы вместе со списками типов и лет источника
func (s *incidentService) Page(ctx context.Context, q table.Query) (*table.Page, error) {
	q = q.Normalize()
	log := s.logger.WithFields(logrus.Fields{
		"service":   "incident",
		"method":    "Page",
		"source":    q.Criteria.Source,
		"period":    q.Criteria.Window.Kind,
		"page":      q.Page,
		"page_size": q.PerPage,
	})
	log.Debug("Listing incidents page")

	rows, total, err := s.repo.ListIncidents(ctx, q)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}
	types, err := s.repo.DistinctTypes(ctx, q.Criteria.Source)
	if err != nil {
		log.WithError(err).Error("Failed to list incident types")
		return nil, fmt.Errorf("service: could not list incident types: %w", err)
	}
	years, err := s.repo.DistinctYears(ctx, q.Criteria.Source)
	if err != nil {
		log.WithError(err).Error("Failed to list incident years")
		return nil, fmt.Errorf("service: could not list incident years: %w", err)
	}

	page := table.NewPage(q, rows, total)
	page.Types = types
	page.Years = years

	log.WithField("count", len(rows)).Debug("Incidents page listed successfully")
	return page, nil
}

// HideIncidents скрывает выбранные инциденты одной пакетной записью
func (s *incidentService) HideIncidents(ctx context.Context, ids []int64) (int64, error) {
	return s.setHidden(ctx, ids, true)
}

// UnhideIncidents возвращает выбранные инциденты в видимые
func (s *incidentService) UnhideIncidents(ctx context.Context, ids []int64) (int64, error) {
	return s.setHidden(ctx, ids, false)
}

func (s *incidentService) setHidden(ctx context.Context, ids []int64, hidden bool) (int64, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "SetHidden",
		"hidden":  hidden,
		"count":   len(ids),
	})
	if len(ids) == 0 {
		return 0, models.ErrNoSelection
	}

	affected, err := s.repo.SetHidden(ctx, ids, hidden)
	if err != nil {
		log.WithError(err).Error("Failed to update hidden flag")
		return 0, fmt.Errorf("service: could not update hidden flag: %w", err)
	}

	log.WithField("affected", affected).Info("Hidden flag updated")
	return affected, nil
}

// LoadView возвращает сохраненное состояние таблицы или новое с датой today
func (s *incidentService) LoadView(ctx context.Context, session, source, today string) (*table.View, error) {
	view, err := s.repo.LoadView(ctx, session, source)
	if err != nil {
		return nil, fmt.Errorf("service: could not load table view: %w", err)
	}
	if view == nil {
		view = table.NewView(source, today)
	}
	return view, nil
}

// SaveView сохраняет состояние таблицы
func (s *incidentService) SaveView(ctx context.Context, session string, view *table.View) error {
	if err := s.repo.SaveView(ctx, session, view); err != nil {
		return fmt.Errorf("service: could not save table view: %w", err)
	}
	return nil
}
