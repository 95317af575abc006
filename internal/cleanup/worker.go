package cleanup

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/incident_admin/internal/config"
	"github.com/shenikar/incident_admin/internal/models"
	"github.com/sirupsen/logrus"
)

const requeueTimeout = 3 * time.Second

// Deleter удаляет документ из удаленного хранилища
type Deleter interface {
	DeleteIncident(ctx context.Context, id string) error
}

// Worker дочищает документы удаленного хранилища, которые не удалось удалить при массовом удалении
type Worker struct {
	redisClient *redis.Client
	remote      Deleter
	logger      *logrus.Logger
	maxRetries  int
	baseDelay   time.Duration
	done        chan struct{}
}

// NewWorker создает новый Worker
func NewWorker(redisClient *redis.Client, remote Deleter, logger *logrus.Logger, cfg *config.Config) *Worker {
	return &Worker{
		redisClient: redisClient,
		remote:      remote,
		logger:      logger,
		maxRetries:  cfg.CleanupMaxRetries,
		baseDelay:   cfg.CleanupBaseDelay,
		done:        make(chan struct{}),
	}
}

// Done закрывается, когда воркер остановлен
func (w *Worker) Done() <-chan struct{} {
	return w.done
}

// Start запускает горутину обработки очереди
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting remote cleanup worker...")
	go func() {
		defer close(w.done)
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping remote cleanup worker.")
				return
			default:
				// 0 означает бесконечное ожидание
				result, err := w.redisClient.BRPop(ctx, 0, cleanupQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue
					}
					w.logger.WithError(err).Error("Failed to pop cleanup task from Redis")
					_ = sleep(ctx, w.baseDelay)
					continue
				}

				// result[0] - ключ, result[1] - значение
				var task Task
				if err := json.Unmarshal([]byte(result[1]), &task); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal cleanup task")
					continue
				}

				if !w.process(ctx, task) && ctx.Err() != nil {
					w.requeue(result[1])
				}
			}
		}
	}()
}

// process повторяет удаление с экспоненциальной задержкой; возвращает true при успехе
func (w *Worker) process(ctx context.Context, task Task) bool {
	log := w.logger.WithFields(logrus.Fields{
		"firebase_id": task.FirebaseID,
		"queued_at":   task.QueuedAt,
	})
	log.Debug("Processing cleanup task...")

	delay := w.baseDelay
	for i := 0; i < w.maxRetries; i++ {
		err := w.remote.DeleteIncident(ctx, task.FirebaseID)
		if err == nil || errors.Is(err, models.ErrNotFound) {
			log.Info("Remote incident deleted by cleanup worker.")
			return true
		}

		log.WithError(err).Warnf("Cleanup attempt failed. Retrying in %v. Retries left: %d", delay, w.maxRetries-1-i)
		if sleep(ctx, delay) != nil {
			return false
		}
		delay *= 2 // Экспоненциальная задержка
	}

	log.Errorf("Failed to delete remote incident after %d retries.", w.maxRetries)
	return false
}

// requeue возвращает прерванную задачу в правую часть очереди, откуда ее заберут первой
func (w *Worker) requeue(payload string) {
	ctx, cancel := context.WithTimeout(context.Background(), requeueTimeout)
	defer cancel()
	if err := w.redisClient.RPush(ctx, cleanupQueueKey, payload).Err(); err != nil {
		w.logger.WithError(err).Error("Failed to requeue interrupted cleanup task")
		return
	}
	w.logger.Info("Interrupted cleanup task returned to queue.")
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
