package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/shenikar/incident_admin/internal/cleanup"
	"github.com/shenikar/incident_admin/internal/config"
	v1 "github.com/shenikar/incident_admin/internal/handler/http/v1"
	"github.com/shenikar/incident_admin/internal/report"
	"github.com/shenikar/incident_admin/internal/repository"
	"github.com/shenikar/incident_admin/internal/service"
	firestoreclient "github.com/shenikar/incident_admin/pkg/firestore"
	"github.com/shenikar/incident_admin/pkg/logger"
	"github.com/shenikar/incident_admin/pkg/postgres"
	redisclient "github.com/shenikar/incident_admin/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/incident_admin/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Incident Admin API
// @version 1.0
// @description Administrative back end for mobile and CCTV incident reports.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(cfg.MigrationsPath, migrationURL)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

// newRemoteStore подключает Firestore, если он настроен; иначе инциденты ищутся только в БД.
// enabled=false означает заглушку, которая всегда возвращает ErrRemoteStoreUnavailable.
func newRemoteStore(ctx context.Context, cfg *config.Config, log *logrus.Logger) (store service.RemoteStore, enabled bool, closeFn func()) {
	if cfg.FirestoreProjectID == "" {
		log.Warn("FIRESTORE_PROJECT_ID is not set, remote store disabled")
		return repository.NewDisabledRemoteStore(), false, func() {}
	}

	client, err := firestoreclient.NewFirestoreClient(ctx, cfg.FirestoreProjectID, cfg.FirestoreDatabaseID, cfg.FirestoreCredentialsFile)
	if err != nil {
		log.WithError(err).Warn("Remote store unavailable, continuing without it")
		return repository.NewDisabledRemoteStore(), false, func() {}
	}
	log.WithField("project", cfg.FirestoreProjectID).Info("Successfully connected to Firestore")

	return repository.NewRemoteIncidentStore(client, cfg.FirestoreCollection, cfg.RemoteTimeout), true, func() {
		if err := client.Close(); err != nil {
			log.WithError(err).Warn("Failed to close Firestore client")
		}
	}
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "X-API-Key", "X-Session-ID", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Disposition", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.CORSOrigins) == 0 {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.CORSOrigins
	}
	return c
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Удаленное хранилище
	remoteStore, remoteEnabled, closeRemote := newRemoteStore(ctx, cfg, log)
	defer closeRemote()

	// Очередь повторного удаления; без Firestore задачи ждут в Redis до его подключения
	cleanupQueue := cleanup.NewRedisQueue(redisClient)
	var cleanupWorker *cleanup.Worker
	if remoteEnabled {
		cleanupWorker = cleanup.NewWorker(redisClient, remoteStore, log, cfg)
		cleanupWorker.Start(ctx)
	}

	// Генератор PDF отчетов
	emitter, err := report.NewEmitter(report.NewChromeConverter(cfg.ChromePath, cfg.ReportTimeout), log)
	if err != nil {
		log.Fatalf("Failed to initialize report emitter: %v", err)
	}

	// Инициализация репозиториев
	incidentRepo := repository.NewIncidentRepository(dbpool, redisClient, cfg.CacheTTL, cfg.TableStateTTL)

	// Инициализация сервисов
	incidentService := service.NewIncidentService(incidentRepo, remoteStore, emitter, log, cfg, cleanupQueue)

	// Инициализация хэндлеров
	handler := v1.NewHandler(incidentService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	router.Use(cors.New(corsConfig(cfg)))
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	// Отчеты рендерятся дольше обычного запроса
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ReportTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	// Останавливаем воркер до закрытия Redis
	cancel()
	if cleanupWorker != nil {
		<-cleanupWorker.Done()
	}

	log.Info("Server gracefully stopped")
}
