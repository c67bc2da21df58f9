package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/hive_reporting_system/internal/models"
	"github.com/shenikar/hive_reporting_system/internal/region"
	"github.com/shenikar/hive_reporting_system/internal/service"
)

type RegionRepository struct {
	db *pgxpool.Pool
}

func NewRegionRepository(db *pgxpool.Pool) region.Source {
	return &RegionRepository{db: db}
}

// LookupRegion возвращает район из справочника regions
func (r *RegionRepository) LookupRegion(ctx context.Context, code string) (*models.Region, error) {
	reg := &models.Region{}
	err := r.db.QueryRow(ctx, `SELECT code, city, district FROM regions WHERE code = $1;`, code).
		Scan(&reg.Code, &reg.City, &reg.District)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("region %q: %w", code, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get region by code: %w", classify(err))
	}
	return reg, nil
}
