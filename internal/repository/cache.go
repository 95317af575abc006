package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/incident_admin/internal/table"
)

func remoteIncidentKey(id string) string {
	return fmt.Sprintf("remote_incident:%s", id)
}

func tableViewKey(session, source string) string {
	return fmt.Sprintf("table_view:%s:%s", session, source)
}

// GetRemoteFromCache пытается получить документ удаленного хранилища из Redis
func (r *IncidentRepository) GetRemoteFromCache(ctx context.Context, id string) (map[string]any, error) {
	val, err := r.redisClient.Get(ctx, remoteIncidentKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get remote incident from cache: %w", err)
	}

	fields := make(map[string]any)
	if err := json.Unmarshal(val, &fields); err != nil {
		return nil, fmt.Errorf("failed to unmarshal remote incident from cache: %w", err)
	}
	return fields, nil
}

// SetRemoteCache сохраняет документ удаленного хранилища в Redis
func (r *IncidentRepository) SetRemoteCache(ctx context.Context, id string, fields map[string]any) error {
	val, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("failed to marshal remote incident for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, remoteIncidentKey(id), val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set remote incident in cache: %w", err)
	}
	return nil
}

// InvalidateRemoteCache удаляет документ из Redis кэша
func (r *IncidentRepository) InvalidateRemoteCache(ctx context.Context, id string) error {
	if err := r.redisClient.Del(ctx, remoteIncidentKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate remote incident cache: %w", err)
	}
	return nil
}

// LoadView возвращает сохраненное состояние таблицы сессии; nil, если его нет
func (r *IncidentRepository) LoadView(ctx context.Context, session, source string) (*table.View, error) {
	val, err := r.redisClient.Get(ctx, tableViewKey(session, source)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get table view: %w", err)
	}

	view := &table.View{}
	if err := json.Unmarshal(val, view); err != nil {
		return nil, fmt.Errorf("failed to unmarshal table view: %w", err)
	}
	return view, nil
}

// SaveView сохраняет состояние таблицы сессии, продлевая TTL
func (r *IncidentRepository) SaveView(ctx context.Context, session string, view *table.View) error {
	val, err := json.Marshal(view)
	if err != nil {
		return fmt.Errorf("failed to marshal table view: %w", err)
	}
	if err := r.redisClient.Set(ctx, tableViewKey(session, view.Source), val, r.viewTTL).Err(); err != nil {
		return fmt.Errorf("failed to save table view: %w", err)
	}
	return nil
}
