package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shenikar/hive_reporting_system/internal/models"
)

func (q *queries) SaveNotification(ctx context.Context, n *models.Notification) error {
	query := `
		INSERT INTO notifications (member_id, hive_report_id, type, title, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at;
	`
	err := q.db.QueryRow(ctx, query, n.MemberID, n.HiveReportID, string(n.Type), n.Title, n.Message).
		Scan(&n.ID, &n.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save notification: %w", classify(err))
	}
	return nil
}

func scanNotification(row pgx.Row) (models.Notification, error) {
	var (
		n     models.Notification
		nType string
	)
	if err := row.Scan(&n.ID, &n.MemberID, &n.HiveReportID, &nType, &n.Title, &n.Message, &n.ReadAt, &n.CreatedAt); err != nil {
		return models.Notification{}, err
	}
	n.Type = models.NotificationType(nType)
	return n, nil
}

// ListNotifications возвращает историю участника, новые первыми
func (q *queries) ListNotifications(ctx context.Context, memberID uuid.UUID, limit, offset int) ([]models.Notification, int, error) {
	var total int
	if err := q.db.QueryRow(ctx, `SELECT COUNT(*) FROM notifications WHERE member_id = $1;`, memberID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", classify(err))
	}

	query := `
		SELECT id, member_id, hive_report_id, type, title, message, read_at, created_at
		FROM notifications
		WHERE member_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := q.db.Query(ctx, query, memberID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list notifications: %w", classify(err))
	}
	defer rows.Close()

	result := make([]models.Notification, 0)
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan notification: %w", err)
		}
		result = append(result, n)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate notifications: %w", classify(err))
	}
	return result, total, nil
}
