// Package region разрешает код района в город и район с кэшированием в Redis
package region

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/hive_reporting_system/internal/models"
	"github.com/shenikar/hive_reporting_system/internal/service"
	"github.com/sirupsen/logrus"
)

// Source - справочник районов. Отсутствующий код возвращает service.ErrNotFound
type Source interface {
	LookupRegion(ctx context.Context, code string) (*models.Region, error)
}

type Resolver struct {
	source Source
	cache  *redis.Client
	ttl    time.Duration
	logger *logrus.Logger
}

// NewResolver создает резолвер. cache может быть nil, тогда каждый запрос идет в source
func NewResolver(source Source, cache *redis.Client, ttl time.Duration, logger *logrus.Logger) service.RegionResolver {
	return &Resolver{
		source: source,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

// ResolveDistrict возвращает район по пятизначному коду или service.ErrInvalidDistrict
func (r *Resolver) ResolveDistrict(ctx context.Context, code string) (*models.Region, error) {
	log := r.logger.WithFields(logrus.Fields{
		"service":       "region",
		"method":        "ResolveDistrict",
		"district_code": code,
	})
	if !validCode(code) {
		return nil, fmt.Errorf("%w: %q", service.ErrInvalidDistrict, code)
	}

	cached, err := r.getFromCache(ctx, code)
	if err != nil {
		log.WithError(err).Warn("Failed to get region from cache")
	}
	if cached != nil {
		return cached, nil
	}

	reg, err := r.source.LookupRegion(ctx, code)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return nil, fmt.Errorf("%w: %q", service.ErrInvalidDistrict, code)
		}
		return nil, fmt.Errorf("region: could not look up district: %w", err)
	}

	if err := r.setCache(ctx, reg); err != nil {
		log.WithError(err).Warn("Failed to set region cache")
	}
	return reg, nil
}

func validCode(code string) bool {
	if len(code) != 5 {
		return false
	}
	for _, c := range code {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func cacheKey(code string) string {
	return fmt.Sprintf("region:%s", code)
}

// getFromCache возвращает nil без ошибки при промахе
func (r *Resolver) getFromCache(ctx context.Context, code string) (*models.Region, error) {
	if r.cache == nil {
		return nil, nil
	}
	val, err := r.cache.Get(ctx, cacheKey(code)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get region from cache: %w", err)
	}

	reg := &models.Region{}
	if err := json.Unmarshal(val, reg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal region from cache: %w", err)
	}
	return reg, nil
}

func (r *Resolver) setCache(ctx context.Context, reg *models.Region) error {
	if r.cache == nil {
		return nil
	}
	val, err := json.Marshal(reg)
	if err != nil {
		return fmt.Errorf("failed to marshal region for cache: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey(reg.Code), val, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set region in cache: %w", err)
	}
	return nil
}
