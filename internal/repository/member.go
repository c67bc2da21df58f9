package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shenikar/hive_reporting_system/internal/models"
	"github.com/shenikar/hive_reporting_system/internal/service"
)

const memberColumns = `id, role, nickname, points, notify_address`

func scanMember(row pgx.Row) (models.Member, error) {
	var (
		m             models.Member
		role          string
		notifyAddress *string
	)
	if err := row.Scan(&m.ID, &role, &m.Nickname, &m.Points, &notifyAddress); err != nil {
		return models.Member{}, err
	}
	m.Role = models.MemberRole(role)
	// notify_address NULL, пока участник не зарегистрировал push-токен
	m.NotifyAddress = textOrEmpty(notifyAddress)
	return m, nil
}

func (q *queries) GetMember(ctx context.Context, id uuid.UUID) (*models.Member, error) {
	m, err := scanMember(q.db.QueryRow(ctx, `SELECT `+memberColumns+` FROM members WHERE id = $1;`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("member with id %s: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get member by id: %w", classify(err))
	}
	return &m, nil
}

// GetMembers возвращает найденных участников; отсутствующие id пропускаются
func (q *queries) GetMembers(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.Member, error) {
	out := make(map[uuid.UUID]models.Member, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = id.String()
	}

	rows, err := q.db.Query(ctx, `SELECT `+memberColumns+` FROM members WHERE id = ANY($1::uuid[]);`, keys)
	if err != nil {
		return nil, fmt.Errorf("failed to get members: %w", classify(err))
	}
	defer rows.Close()

	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		out[m.ID] = m
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members: %w", classify(err))
	}
	return out, nil
}
