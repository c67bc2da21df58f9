// Package classifier - HTTP-клиент сервиса определения вида насекомых по фото
package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shenikar/hive_reporting_system/internal/config"
	"github.com/shenikar/hive_reporting_system/internal/models"
	"github.com/shenikar/hive_reporting_system/internal/service"
	"github.com/sirupsen/logrus"
)

const maxResponseBytes = 64 << 10

type classifyRequest struct {
	ImageURL string `json:"image_url"`
}

// verdict - ожидаемая схема ответа. Указатели отличают отсутствующее поле от нулевого значения
type verdict struct {
	Species    string   `json:"species" validate:"required,oneof=WASP HONEYBEE NONE"`
	Confidence *float64 `json:"confidence" validate:"required,gte=0,lte=1"`
	Reason     *string  `json:"reason" validate:"required"`
}

type Client struct {
	endpoint   string
	httpClient *http.Client
	validate   *validator.Validate
	logger     *logrus.Logger
}

func NewClient(cfg *config.Config, logger *logrus.Logger) service.ImageClassifier {
	endpoint := ""
	if cfg.ClassifierURL != "" {
		endpoint = strings.TrimRight(cfg.ClassifierURL, "/") + "/classify"
	}
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: cfg.ClassifierTimeout},
		validate:   validator.New(),
		logger:     logger,
	}
}

// Classify отправляет URL изображения и проверяет ответ по схеме
func (c *Client) Classify(ctx context.Context, imageURL string) (*service.Classification, error) {
	log := c.logger.WithFields(logrus.Fields{
		"service":   "classifier",
		"method":    "Classify",
		"image_url": imageURL,
	})
	if c.endpoint == "" {
		return nil, fmt.Errorf("%w: CLASSIFIER_URL is not configured", service.ErrClassifierUnavailable)
	}

	body, err := json.Marshal(classifyRequest{ImageURL: imageURL})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal classify request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create classify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Warn("Classifier request failed")
		return nil, fmt.Errorf("%w: %w", service.ErrClassifierUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %w", service.ErrClassifierUnavailable, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.WithField("status_code", resp.StatusCode).Warn("Classifier returned non-2xx status")
		return nil, fmt.Errorf("%w: status %d", service.ErrClassifierUnavailable, resp.StatusCode)
	}

	var v verdict
	if err := json.Unmarshal(raw, &v); err != nil {
		log.WithError(err).Warn("Classifier returned malformed JSON")
		return nil, fmt.Errorf("%w: %w", service.ErrSchemaMismatch, err)
	}
	if err := c.validate.Struct(v); err != nil {
		log.WithError(err).Warn("Classifier response failed schema validation")
		return nil, fmt.Errorf("%w: %w", service.ErrSchemaMismatch, err)
	}

	return &service.Classification{
		Species:    models.Species(v.Species),
		Confidence: *v.Confidence,
		Reason:     *v.Reason,
	}, nil
}
