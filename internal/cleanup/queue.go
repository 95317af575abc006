package cleanup

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	cleanupQueueKey = "remote_cleanup_tasks"
)

// Task - документ удаленного хранилища, который нужно удалить повторно
type Task struct {
	FirebaseID string    `json:"firebase_id"`
	QueuedAt   time.Time `json:"queued_at"`
}

// RedisQueue - очередь задач повторного удаления в Redis
type RedisQueue struct {
	redisClient *redis.Client
	now         func() time.Time
}

// NewRedisQueue создает новый RedisQueue
func NewRedisQueue(client *redis.Client) *RedisQueue {
	return &RedisQueue{
		redisClient: client,
		now:         time.Now,
	}
}

// Enqueue добавляет задачи в очередь одной командой
func (q *RedisQueue) Enqueue(ctx context.Context, firebaseIDs []string) error {
	if len(firebaseIDs) == 0 {
		return nil
	}

	queuedAt := q.now().UTC()
	payloads := make([]any, 0, len(firebaseIDs))
	for _, id := range firebaseIDs {
		payload, err := json.Marshal(Task{FirebaseID: id, QueuedAt: queuedAt})
		if err != nil {
			return fmt.Errorf("failed to marshal cleanup task: %w", err)
		}
		payloads = append(payloads, payload)
	}

	// LPUSH в левую часть, воркер забирает из правой
	if err := q.redisClient.LPush(ctx, cleanupQueueKey, payloads...).Err(); err != nil {
		return fmt.Errorf("failed to enqueue cleanup tasks: %w", err)
	}
	return nil
}
