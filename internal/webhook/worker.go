package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/hive_reporting_system/internal/config"
	"github.com/shenikar/hive_reporting_system/internal/metrics"
	"github.com/sirupsen/logrus"
)

// Worker - доставляет уведомления из очереди во внешний push-шлюз
type Worker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
}

// NewWorker создает новый Worker
func NewWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *Worker {
	return &Worker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.PushGatewayTimeout,
		},
	}
}

// Start запускает горутину для обработки очереди уведомлений
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting notification worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping notification worker.")
				return
			default:
				// BRPOP - блокирующее извлечение из хвоста списка, 0 означает бесконечное ожидание
				result, err := w.redisClient.BRPop(ctx, 0, notificationQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue
					}
					w.logger.WithError(err).Error("Failed to pop notification from Redis")
					time.Sleep(w.cfg.PushGatewayTimeout)
					continue
				}

				// result[0] - ключ, result[1] - значение
				payload := result[1]
				var n Notification
				if err := json.Unmarshal([]byte(payload), &n); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal notification from Redis")
					continue
				}

				w.deliver(ctx, n, payload)
			}
		}
	}()
}

// deliver отправляет уведомление в шлюз. Недоставленные уведомления только логируются
func (w *Worker) deliver(ctx context.Context, n Notification, rawPayload string) bool {
	log := w.logger.WithFields(logrus.Fields{
		"notification_id": n.ID,
		"member_id":       n.MemberID,
	})
	log.Debug("Delivering notification...")

	if w.cfg.PushGatewayURL == "" {
		log.Warn("Push gateway URL is not configured. Skipping delivery.")
		metrics.NotificationsTotal.WithLabelValues("deliver", "skipped").Inc()
		return false
	}

	attempts := w.cfg.PushMaxAttempts
	delay := w.cfg.PushBaseDelay

	for i := 0; i < attempts; i++ {
		if i > 0 {
			time.Sleep(delay)
			delay *= 2 // Экспоненциальная задержка
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.PushGatewayURL, bytes.NewBufferString(rawPayload))
		if err != nil {
			log.WithError(err).Error("Failed to create push gateway request")
			break
		}
		req.Header.Set("Content-Type", "application/json")

		// HMAC подпись, если PUSH_GATEWAY_SECRET задан
		if w.cfg.PushGatewaySecret != "" {
			req.Header.Set("X-Signature", generateHMACSHA256(rawPayload, w.cfg.PushGatewaySecret))
		}

		resp, err := w.httpClient.Do(req)
		if err != nil {
			log.WithError(err).Warnf("Failed to send notification. Attempts left: %d", attempts-1-i)
			continue
		}
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			log.Info("Notification delivered successfully.")
			metrics.NotificationsTotal.WithLabelValues("deliver", "ok").Inc()
			return true
		}
		log.Warnf("Push gateway responded with status code %d. Attempts left: %d", resp.StatusCode, attempts-1-i)
	}

	log.Errorf("Failed to deliver notification after %d attempts.", attempts)
	metrics.NotificationsTotal.WithLabelValues("deliver", "failed").Inc()
	return false
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
