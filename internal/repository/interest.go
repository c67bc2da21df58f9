package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shenikar/hive_reporting_system/internal/models"
)

// ReplaceInterestAreas удаляет районы вне набора и добавляет недостающие в одной транзакции
func (r *HiveRepository) ReplaceInterestAreas(ctx context.Context, memberID uuid.UUID, districtCodes []string) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", classify(err))
	}
	defer func() {
		_ = tx.Rollback(context.WithoutCancel(ctx))
	}()

	if _, err := tx.Exec(ctx,
		`DELETE FROM interest_areas WHERE member_id = $1 AND NOT (district_code = ANY($2::text[]));`,
		memberID, districtCodes,
	); err != nil {
		return fmt.Errorf("failed to remove interest areas: %w", classify(err))
	}
	if _, err := tx.Exec(ctx, `
		INSERT INTO interest_areas (member_id, district_code)
		SELECT $1, code FROM unnest($2::text[]) AS code
		ON CONFLICT (member_id, district_code) DO NOTHING;
	`, memberID, districtCodes); err != nil {
		return fmt.Errorf("failed to add interest areas: %w", classify(err))
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", classify(err))
	}
	return nil
}

func (q *queries) ListInterestAreas(ctx context.Context, memberID uuid.UUID) ([]models.Region, error) {
	query := `
		SELECT r.code, r.city, r.district
		FROM interest_areas ia
		JOIN regions r ON r.code = ia.district_code
		WHERE ia.member_id = $1
		ORDER BY r.code;
	`
	rows, err := q.db.Query(ctx, query, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to list interest areas: %w", classify(err))
	}
	defer rows.Close()

	areas := make([]models.Region, 0)
	for rows.Next() {
		var reg models.Region
		if err := rows.Scan(&reg.Code, &reg.City, &reg.District); err != nil {
			return nil, fmt.Errorf("failed to scan interest area: %w", err)
		}
		areas = append(areas, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate interest areas: %w", classify(err))
	}
	return areas, nil
}

// ListInterestedMembers возвращает участников, подписанных на район
func (q *queries) ListInterestedMembers(ctx context.Context, districtCode string) ([]models.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members
		WHERE id IN (SELECT member_id FROM interest_areas WHERE district_code = $1)
		ORDER BY id;`
	rows, err := q.db.Query(ctx, query, districtCode)
	if err != nil {
		return nil, fmt.Errorf("failed to list interested members: %w", classify(err))
	}
	defer rows.Close()

	members := make([]models.Member, 0)
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate interested members: %w", classify(err))
	}
	return members, nil
}
