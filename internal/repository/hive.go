package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/hive_reporting_system/internal/models"
	"github.com/shenikar/hive_reporting_system/internal/service"
)

// dbtx - общий интерфейс пула и транзакции pgx
type dbtx interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type HiveRepository struct {
	queries
	pool *pgxpool.Pool
}

func NewHiveRepository(db *pgxpool.Pool) service.HiveStore {
	return &HiveRepository{
		queries: queries{db: db},
		pool:    db,
	}
}

// WithinTx выполняет fn в транзакции READ COMMITTED. Гонки разрешают блокировки строк и условные UPDATE
func (r *HiveRepository) WithinTx(ctx context.Context, fn func(tx service.HiveTx) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", classify(err))
	}
	defer func() {
		// после Commit возвращает pgx.ErrTxClosed
		_ = tx.Rollback(context.WithoutCancel(ctx))
	}()

	if err := fn(&queries{db: tx}); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", classify(err))
	}
	return nil
}

// queries реализует service.HiveTx и чтение для проекций поверх пула или транзакции
type queries struct {
	db dbtx
}

const reportColumns = `
	id, species, status, latitude::float8, longitude::float8, road_address, district_code,
	image_url, ai_species, ai_confidence, ai_reason, created_at, updated_at`

func scanReport(row pgx.Row) (*models.HiveReport, error) {
	var (
		report                     models.HiveReport
		species, status, aiSpecies *string
		roadAddress, districtCode  *string
		latitude, longitude        *float64
	)
	err := row.Scan(
		&report.ID,
		&species,
		&status,
		&latitude,
		&longitude,
		&roadAddress,
		&districtCode,
		&report.ImageURL,
		&aiSpecies,
		&report.AIConfidence,
		&report.AIReason,
		&report.CreatedAt,
		&report.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	report.Species = models.Species(textOrEmpty(species))
	report.Status = models.ReportStatus(textOrEmpty(status))
	report.AISpecies = models.Species(textOrEmpty(aiSpecies))
	report.Latitude = floatOrZero(latitude)
	report.Longitude = floatOrZero(longitude)
	report.RoadAddress = textOrEmpty(roadAddress)
	report.DistrictCode = textOrEmpty(districtCode)
	return &report, nil
}

// CreateReport создает нефинализированный отчет с вердиктом классификатора
func (q *queries) CreateReport(ctx context.Context, report *models.HiveReport) error {
	query := `
		INSERT INTO hive_reports (image_url, ai_species, ai_confidence, ai_reason)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at;
	`
	err := q.db.QueryRow(ctx, query,
		report.ImageURL,
		nullableText(string(report.AISpecies)),
		report.AIConfidence,
		report.AIReason,
	).Scan(&report.ID, &report.CreatedAt, &report.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create hive report: %w", classify(err))
	}
	return nil
}

func (q *queries) GetReport(ctx context.Context, id uuid.UUID) (*models.HiveReport, error) {
	return q.getReport(ctx, `SELECT`+reportColumns+` FROM hive_reports WHERE id = $1;`, id)
}

// GetReportForUpdate блокирует строку отчета до конца транзакции
func (q *queries) GetReportForUpdate(ctx context.Context, id uuid.UUID) (*models.HiveReport, error) {
	return q.getReport(ctx, `SELECT`+reportColumns+` FROM hive_reports WHERE id = $1 FOR UPDATE;`, id)
}

func (q *queries) getReport(ctx context.Context, query string, id uuid.UUID) (*models.HiveReport, error) {
	report, err := scanReport(q.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("hive report with id %s: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get hive report by id: %w", classify(err))
	}
	return report, nil
}

// FinalizeReport записывает поля финализации, только если статус еще не задан
func (q *queries) FinalizeReport(ctx context.Context, report *models.HiveReport) error {
	query := `
		UPDATE hive_reports SET
			species = $2,
			latitude = $3,
			longitude = $4,
			road_address = $5,
			district_code = $6,
			status = 'REPORTED',
			updated_at = NOW()
		WHERE id = $1 AND status IS NULL
		RETURNING updated_at;
	`
	err := q.db.QueryRow(ctx, query,
		report.ID,
		string(report.Species),
		report.Latitude,
		report.Longitude,
		nullableText(report.RoadAddress),
		report.DistrictCode,
	).Scan(&report.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("hive report %s: %w", report.ID, service.ErrAlreadyFinalized)
		}
		if isConstraint(err, "hive_reports_district_code_fkey") {
			return fmt.Errorf("%w: %s", service.ErrInvalidDistrict, report.DistrictCode)
		}
		return fmt.Errorf("failed to finalize hive report: %w", classify(err))
	}
	report.Status = models.StatusReported
	return nil
}

// TransitionStatus - условный UPDATE. Проверка статуса и запись атомарны
func (q *queries) TransitionStatus(ctx context.Context, t service.StatusTransition) (bool, error) {
	query := `
		UPDATE hive_reports SET status = $3, updated_at = NOW()
		WHERE id = $1 AND status = $2 AND ($4::text = '' OR species = $4::text);
	`
	cmdTag, err := q.db.Exec(ctx, query, t.ReportID, string(t.From), string(t.To), string(t.Species))
	if err != nil {
		return false, fmt.Errorf("failed to transition hive report status: %w", classify(err))
	}
	return cmdTag.RowsAffected() == 1, nil
}

func (q *queries) AppendAction(ctx context.Context, action *models.HiveAction) error {
	query := `
		INSERT INTO hive_actions (hive_report_id, member_id, action_type, image_url, latitude, longitude, ref_action_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, seq, created_at;
	`
	err := q.db.QueryRow(ctx, query,
		action.HiveReportID,
		action.MemberID,
		string(action.ActionType),
		nullableText(action.ImageURL),
		action.Latitude,
		action.Longitude,
		action.RefActionID,
	).Scan(&action.ID, &action.Seq, &action.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to append hive action: %w", classify(err))
	}
	return nil
}

// ListActions возвращает журнал отчета в порядке записи
func (q *queries) ListActions(ctx context.Context, reportID uuid.UUID) ([]models.HiveAction, error) {
	query := `
		SELECT id, seq, hive_report_id, member_id, action_type, image_url,
			latitude::float8, longitude::float8, ref_action_id, created_at
		FROM hive_actions
		WHERE hive_report_id = $1
		ORDER BY seq;
	`
	rows, err := q.db.Query(ctx, query, reportID)
	if err != nil {
		return nil, fmt.Errorf("failed to list hive actions: %w", classify(err))
	}
	defer rows.Close()

	var actions []models.HiveAction
	for rows.Next() {
		var (
			a          models.HiveAction
			actionType string
			imageURL   *string
		)
		if err := rows.Scan(
			&a.ID,
			&a.Seq,
			&a.HiveReportID,
			&a.MemberID,
			&actionType,
			&imageURL,
			&a.Latitude,
			&a.Longitude,
			&a.RefActionID,
			&a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan hive action: %w", err)
		}
		a.ActionType = models.ActionType(actionType)
		a.ImageURL = textOrEmpty(imageURL)
		actions = append(actions, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate hive actions: %w", classify(err))
	}
	return actions, nil
}

// InsertReward полагается на UNIQUE (action_id): повтор не вставляет строку
func (q *queries) InsertReward(ctx context.Context, reward *models.Reward) error {
	query := `
		INSERT INTO rewards (action_id, member_id, points)
		VALUES ($1, $2, $3)
		ON CONFLICT (action_id) DO NOTHING
		RETURNING id, created_at;
	`
	err := q.db.QueryRow(ctx, query, reward.ActionID, reward.MemberID, reward.Points).
		Scan(&reward.ID, &reward.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("reward for action %s: %w", reward.ActionID, service.ErrDuplicateAction)
		}
		return fmt.Errorf("failed to insert reward: %w", classify(err))
	}
	return nil
}

func (q *queries) IncrementPoints(ctx context.Context, memberID uuid.UUID, amount int) error {
	cmdTag, err := q.db.Exec(ctx, `UPDATE members SET points = points + $2 WHERE id = $1;`, memberID, amount)
	if err != nil {
		return fmt.Errorf("failed to increment member points: %w", classify(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("member %s: %w", memberID, service.ErrNotFound)
	}
	return nil
}
