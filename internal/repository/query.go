package repository

import (
	"context"
	"fmt"

	"github.com/shenikar/hive_reporting_system/internal/models"
	"github.com/shenikar/hive_reporting_system/internal/service"
)

// FindPins возвращает открытые отчеты в области. NULL-границы не ограничивают выборку
func (q *queries) FindPins(ctx context.Context, box models.BoundingBox) ([]models.Pin, error) {
	query := `
		SELECT id, species, latitude::float8, longitude::float8
		FROM hive_reports
		WHERE status IN ('REPORTED', 'RESERVED')
			AND ($1::float8 IS NULL OR latitude >= $1::float8)
			AND ($2::float8 IS NULL OR latitude <= $2::float8)
			AND ($3::float8 IS NULL OR longitude >= $3::float8)
			AND ($4::float8 IS NULL OR longitude <= $4::float8)
		ORDER BY created_at;
	`
	rows, err := q.db.Query(ctx, query, box.MinLat, box.MaxLat, box.MinLng, box.MaxLng)
	if err != nil {
		return nil, fmt.Errorf("failed to find pins: %w", classify(err))
	}
	defer rows.Close()

	pins := make([]models.Pin, 0)
	for rows.Next() {
		var (
			p       models.Pin
			species string
		)
		if err := rows.Scan(&p.ID, &species, &p.Latitude, &p.Longitude); err != nil {
			return nil, fmt.Errorf("failed to scan pin: %w", err)
		}
		p.Species = models.Species(species)
		pins = append(pins, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate pins: %w", classify(err))
	}
	return pins, nil
}

// memberReportsFrom - отчеты, где у участника есть не отмененное действие одного из типов
const memberReportsFrom = `
	FROM hive_reports r
	WHERE r.status IS NOT NULL
		AND ($3::text = '' OR r.species = $3::text)
		AND ($4::text = '' OR r.status = $4::text)
		AND EXISTS (
			SELECT 1 FROM hive_actions a
			WHERE a.hive_report_id = r.id
				AND a.member_id = $1
				AND a.action_type = ANY($2::text[])
				AND NOT EXISTS (
					SELECT 1 FROM hive_actions c
					WHERE c.action_type = 'CANCEL_RESERVE' AND c.ref_action_id = a.id
				)
		)`

func (q *queries) ListMemberReports(ctx context.Context, mq service.MyReportsQuery) ([]service.MyReportRow, int, error) {
	types := make([]string, len(mq.ActionTypes))
	for i, t := range mq.ActionTypes {
		types[i] = string(t)
	}
	args := []any{mq.MemberID, types, string(mq.Species), string(mq.Status)}

	var total int
	if err := q.db.QueryRow(ctx, `SELECT COUNT(*)`+memberReportsFrom+`;`, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count member reports: %w", classify(err))
	}

	query := `
		SELECT r.id, r.species, r.status, COALESCE(r.road_address, ''), r.created_at,
			(
				SELECT a.id FROM hive_actions a
				WHERE a.hive_report_id = r.id
					AND a.member_id = $1
					AND a.action_type = 'RESERVE'
					AND r.status = 'RESERVED'
					AND NOT EXISTS (
						SELECT 1 FROM hive_actions c
						WHERE c.action_type = 'CANCEL_RESERVE' AND c.ref_action_id = a.id
					)
				ORDER BY a.seq DESC
				LIMIT 1
			)` + memberReportsFrom + `
		ORDER BY r.created_at DESC, r.id DESC
		LIMIT $5 OFFSET $6;
	`
	rows, err := q.db.Query(ctx, query, append(args, mq.Limit, mq.Offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list member reports: %w", classify(err))
	}
	defer rows.Close()

	result := make([]service.MyReportRow, 0)
	for rows.Next() {
		var (
			row             service.MyReportRow
			species, status string
		)
		if err := rows.Scan(&row.ReportID, &species, &status, &row.RoadAddress, &row.CreatedAt, &row.ReserveActionID); err != nil {
			return nil, 0, fmt.Errorf("failed to scan member report: %w", err)
		}
		row.Species = models.Species(species)
		row.Status = models.ReportStatus(status)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate member reports: %w", classify(err))
	}
	return result, total, nil
}
