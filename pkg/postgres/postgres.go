package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/incident_admin/internal/config"
)

const pingTimeout = 5 * time.Second

// NewPostgresDB создает новый пул соединений PostgreSQL
func NewPostgresDB(ctx context.Context, appCfg *config.Config) (*pgxpool.Pool, error) {
	cfgPool, err := pgxpool.ParseConfig(appCfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("ошибка при разборе конфигурации postgres: %w", err)
	}

	// Время "timestamp without time zone" читается как UTC, независимо от настроек сервера
	cfgPool.ConnConfig.RuntimeParams["timezone"] = "UTC"

	dbpool, err := pgxpool.NewWithConfig(ctx, cfgPool)
	if err != nil {
		return nil, fmt.Errorf("не удалось создать пул соединений: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := dbpool.Ping(pingCtx); err != nil {
		dbpool.Close()
		return nil, fmt.Errorf("не удалось выполнить ping к postgres: %w", err)
	}

	return dbpool, nil
}
