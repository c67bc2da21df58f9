package repository

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/hive_reporting_system/internal/models"
	"github.com/shenikar/hive_reporting_system/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testPool подключается к HIVE_TEST_DATABASE_URL и применяет миграции. Без переменной тест пропускается
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("HIVE_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("HIVE_TEST_DATABASE_URL is not set")
	}

	m, err := migrate.New("file://../../migrations", strings.Replace(dsn, "postgres://", "pgx5://", 1))
	require.NoError(t, err)
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		require.NoError(t, err)
	}
	srcErr, dbErr := m.Close()
	require.NoError(t, srcErr)
	require.NoError(t, dbErr)

	pool, err := pgxpool.New(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func insertMember(t *testing.T, pool *pgxpool.Pool, role models.MemberRole, notifyAddress *string) uuid.UUID {
	t.Helper()
	var id uuid.UUID
	err := pool.QueryRow(context.Background(),
		`INSERT INTO members (role, nickname, notify_address) VALUES ($1, $2, $3) RETURNING id;`,
		string(role), "it-"+uuid.NewString()[:8], notifyAddress,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func TestPostgres_GetMemberWithoutNotifyAddress(t *testing.T) {
	pool := testPool(t)
	repo := NewHiveRepository(pool)
	id := insertMember(t, pool, models.RoleBeekeeper, nil)

	m, err := repo.GetMember(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, models.RoleBeekeeper, m.Role)
	assert.Empty(t, m.NotifyAddress)

	members, err := repo.GetMembers(context.Background(), []uuid.UUID{id, uuid.New()})
	require.NoError(t, err)
	assert.Len(t, members, 1)

	_, err = repo.GetMember(context.Background(), uuid.New())
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestPostgres_ReportLifecycle(t *testing.T) {
	pool := testPool(t)
	repo := NewHiveRepository(pool)
	ctx := context.Background()
	reporter := insertMember(t, pool, models.RoleReporter, nil)

	report := &models.HiveReport{ImageURL: "https://img.example/nest.jpg", AISpecies: models.SpeciesHoneybee, AIConfidence: 0.9}
	var reportAction models.HiveAction
	require.NoError(t, repo.WithinTx(ctx, func(tx service.HiveTx) error {
		if err := tx.CreateReport(ctx, report); err != nil {
			return err
		}
		reportAction = models.HiveAction{HiveReportID: report.ID, MemberID: reporter, ActionType: models.ActionReport}
		return tx.AppendAction(ctx, &reportAction)
	}))

	got, err := repo.GetReport(ctx, report.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusUnfinalized, got.Status)

	report.Species = models.SpeciesHoneybee
	report.Latitude, report.Longitude = 37.5665, 126.978
	report.DistrictCode = "00000"
	err = repo.WithinTx(ctx, func(tx service.HiveTx) error { return tx.FinalizeReport(ctx, report) })
	assert.ErrorIs(t, err, service.ErrInvalidDistrict)

	report.DistrictCode = "11140"
	require.NoError(t, repo.WithinTx(ctx, func(tx service.HiveTx) error { return tx.FinalizeReport(ctx, report) }))
	err = repo.WithinTx(ctx, func(tx service.HiveTx) error { return tx.FinalizeReport(ctx, report) })
	assert.ErrorIs(t, err, service.ErrAlreadyFinalized)

	var moved bool
	require.NoError(t, repo.WithinTx(ctx, func(tx service.HiveTx) error {
		// вид не совпадает, строка не обновляется
		moved, err = tx.TransitionStatus(ctx, service.StatusTransition{
			ReportID: report.ID, From: models.StatusReported, To: models.StatusReserved, Species: models.SpeciesWasp,
		})
		return err
	}))
	assert.False(t, moved)
	require.NoError(t, repo.WithinTx(ctx, func(tx service.HiveTx) error {
		moved, err = tx.TransitionStatus(ctx, service.StatusTransition{
			ReportID: report.ID, From: models.StatusReported, To: models.StatusReserved, Species: models.SpeciesHoneybee,
		})
		return err
	}))
	assert.True(t, moved)

	reward := &models.Reward{ActionID: reportAction.ID, MemberID: reporter, Points: 100}
	require.NoError(t, repo.WithinTx(ctx, func(tx service.HiveTx) error { return tx.InsertReward(ctx, reward) }))
	err = repo.WithinTx(ctx, func(tx service.HiveTx) error {
		return tx.InsertReward(ctx, &models.Reward{ActionID: reportAction.ID, MemberID: reporter, Points: 100})
	})
	assert.ErrorIs(t, err, service.ErrDuplicateAction)

	err = repo.WithinTx(ctx, func(tx service.HiveTx) error {
		return tx.AppendAction(ctx, &models.HiveAction{HiveReportID: report.ID, MemberID: uuid.New(), ActionType: models.ActionReserve})
	})
	assert.ErrorIs(t, err, service.ErrNotFound)

	actions, err := repo.ListActions(ctx, report.ID)
	require.NoError(t, err)
	require.Len(t, actions, 1)
	assert.Equal(t, reporter, actions[0].MemberID)
}

func TestPostgres_NotificationsAndInterestAreas(t *testing.T) {
	pool := testPool(t)
	repo := NewHiveRepository(pool)
	ctx := context.Background()
	keeper := insertMember(t, pool, models.RoleBeekeeper, nil)

	for _, title := range []string{"first", "second"} {
		require.NoError(t, repo.SaveNotification(ctx, &models.Notification{
			MemberID: keeper, Type: models.NotificationNewReport, Title: title, Message: "body",
		}))
	}
	items, total, err := repo.ListNotifications(ctx, keeper, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, items, 1)
	assert.Nil(t, items[0].HiveReportID)

	require.NoError(t, repo.ReplaceInterestAreas(ctx, keeper, []string{"11140", "11110"}))
	require.NoError(t, repo.ReplaceInterestAreas(ctx, keeper, []string{"11140"}))
	areas, err := repo.ListInterestAreas(ctx, keeper)
	require.NoError(t, err)
	require.Len(t, areas, 1)
	assert.Equal(t, "11140", areas[0].Code)

	interested, err := repo.ListInterestedMembers(ctx, "11140")
	require.NoError(t, err)
	ids := make([]uuid.UUID, 0, len(interested))
	for _, m := range interested {
		ids = append(ids, m.ID)
	}
	assert.Contains(t, ids, keeper)

	err = repo.ReplaceInterestAreas(ctx, uuid.New(), []string{"11140"})
	assert.ErrorIs(t, err, service.ErrNotFound)
}
