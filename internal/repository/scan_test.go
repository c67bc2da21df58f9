package repository

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shenikar/hive_reporting_system/internal/models"
	"github.com/shenikar/hive_reporting_system/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// column - значение колонки в текстовом формате протокола, nil означает NULL
type column struct {
	oid  uint32
	text *string
}

func val(oid uint32, s string) column { return column{oid: oid, text: &s} }

func null(oid uint32) column { return column{oid: oid} }

// textRow декодирует колонки теми же планами pgtype, что и pgx.Rows
type textRow struct {
	m    *pgtype.Map
	cols []column
}

func newTextRow(cols ...column) *textRow {
	return &textRow{m: pgtype.NewMap(), cols: cols}
}

func (r *textRow) Scan(dest ...any) error {
	if len(dest) != len(r.cols) {
		return fmt.Errorf("expected %d destinations, got %d", len(r.cols), len(dest))
	}
	for i, c := range r.cols {
		var src []byte
		if c.text != nil {
			src = []byte(*c.text)
		}
		if err := r.m.Scan(c.oid, pgtype.TextFormatCode, src, dest[i]); err != nil {
			return fmt.Errorf("column %d: %w", i, err)
		}
	}
	return nil
}

func TestScanMember_NullNotifyAddress(t *testing.T) {
	id := uuid.New()
	row := newTextRow(
		val(pgtype.UUIDOID, id.String()),
		val(pgtype.TextOID, "BEEKEEPER"),
		val(pgtype.TextOID, "keeper"),
		val(pgtype.Int4OID, "300"),
		null(pgtype.TextOID),
	)

	m, err := scanMember(row)

	require.NoError(t, err)
	assert.Equal(t, id, m.ID)
	assert.Equal(t, models.RoleBeekeeper, m.Role)
	assert.Equal(t, 300, m.Points)
	assert.Empty(t, m.NotifyAddress)
}

func TestScanMember_NotifyAddress(t *testing.T) {
	row := newTextRow(
		val(pgtype.UUIDOID, uuid.NewString()),
		val(pgtype.TextOID, "REPORTER"),
		val(pgtype.TextOID, "citizen"),
		val(pgtype.Int4OID, "0"),
		val(pgtype.TextOID, "fcm-token"),
	)

	m, err := scanMember(row)

	require.NoError(t, err)
	assert.Equal(t, "fcm-token", m.NotifyAddress)
}

func TestScanReport_Unfinalized(t *testing.T) {
	id := uuid.New()
	row := newTextRow(
		val(pgtype.UUIDOID, id.String()),
		null(pgtype.TextOID), // species
		null(pgtype.TextOID), // status
		null(pgtype.Float8OID),
		null(pgtype.Float8OID),
		null(pgtype.TextOID), // road_address
		null(pgtype.BPCharOID),
		val(pgtype.TextOID, "https://img.example/nest.jpg"),
		null(pgtype.TextOID), // ai_species
		val(pgtype.Float8OID, "0"),
		val(pgtype.TextOID, ""),
		val(pgtype.TimestamptzOID, "2024-05-01 09:00:00+00"),
		val(pgtype.TimestamptzOID, "2024-05-01 09:00:00+00"),
	)

	r, err := scanReport(row)

	require.NoError(t, err)
	assert.Equal(t, id, r.ID)
	assert.Equal(t, models.StatusUnfinalized, r.Status)
	assert.Empty(t, r.Species)
	assert.Empty(t, r.DistrictCode)
	assert.Zero(t, r.Latitude)
	assert.True(t, r.CreatedAt.Equal(time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)))
}

func TestScanReport_Finalized(t *testing.T) {
	row := newTextRow(
		val(pgtype.UUIDOID, uuid.NewString()),
		val(pgtype.TextOID, "HONEYBEE"),
		val(pgtype.TextOID, "RESERVED"),
		val(pgtype.Float8OID, "37.5665"),
		val(pgtype.Float8OID, "126.978"),
		val(pgtype.TextOID, "세종대로 110"),
		val(pgtype.BPCharOID, "11140"),
		val(pgtype.TextOID, "https://img.example/nest.jpg"),
		val(pgtype.TextOID, "HONEYBEE"),
		val(pgtype.Float8OID, "0.93"),
		val(pgtype.TextOID, "striped abdomen"),
		val(pgtype.TimestamptzOID, "2024-05-01 09:00:00+00"),
		val(pgtype.TimestamptzOID, "2024-05-01 10:30:00+00"),
	)

	r, err := scanReport(row)

	require.NoError(t, err)
	assert.Equal(t, models.SpeciesHoneybee, r.Species)
	assert.Equal(t, models.StatusReserved, r.Status)
	assert.InDelta(t, 37.5665, r.Latitude, 1e-9)
	assert.Equal(t, "11140", r.DistrictCode)
	assert.InDelta(t, 0.93, r.AIConfidence, 1e-9)
}

func TestScanNotification_Unread(t *testing.T) {
	row := newTextRow(
		val(pgtype.UUIDOID, uuid.NewString()),
		val(pgtype.UUIDOID, uuid.NewString()),
		null(pgtype.UUIDOID), // отчет удален
		val(pgtype.TextOID, "REMOVED"),
		val(pgtype.VarcharOID, "Hive removed"),
		val(pgtype.VarcharOID, "You earned 100 points"),
		null(pgtype.TimestamptzOID),
		val(pgtype.TimestamptzOID, "2024-05-01 09:00:00+00"),
	)

	n, err := scanNotification(row)

	require.NoError(t, err)
	assert.Equal(t, models.NotificationRemoved, n.Type)
	assert.Nil(t, n.HiveReportID)
	assert.Nil(t, n.ReadAt)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"serialization failure", &pgconn.PgError{Code: pgerrcode.SerializationFailure}, service.ErrTransient},
		{"deadlock", &pgconn.PgError{Code: pgerrcode.DeadlockDetected}, service.ErrTransient},
		{"lock not available", &pgconn.PgError{Code: pgerrcode.LockNotAvailable}, service.ErrTransient},
		{"foreign key", &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "hive_actions_member_id_fkey"}, service.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classify(fmt.Errorf("exec: %w", tt.err))

			assert.ErrorIs(t, err, tt.want)
			var pgErr *pgconn.PgError
			assert.True(t, errors.As(err, &pgErr), "original error must stay in the chain")
		})
	}
}

func TestClassify_PassThrough(t *testing.T) {
	unique := &pgconn.PgError{Code: pgerrcode.UniqueViolation}
	plain := errors.New("connection reset")

	assert.Same(t, unique, classify(unique))
	assert.Equal(t, plain, classify(plain))
	assert.NotErrorIs(t, classify(unique), service.ErrTransient)
}

func TestIsConstraint(t *testing.T) {
	err := fmt.Errorf("update: %w", &pgconn.PgError{
		Code:           pgerrcode.ForeignKeyViolation,
		ConstraintName: "hive_reports_district_code_fkey",
	})

	assert.True(t, isConstraint(err, "hive_reports_district_code_fkey"))
	assert.False(t, isConstraint(err, "hive_actions_cancel_ref_check"))
	assert.False(t, isConstraint(errors.New("plain"), "hive_reports_district_code_fkey"))
}

func TestNullableHelpers(t *testing.T) {
	assert.Nil(t, nullableText(""))
	require.NotNil(t, nullableText("x"))
	assert.Equal(t, "x", *nullableText("x"))

	s := "addr"
	assert.Equal(t, "addr", textOrEmpty(&s))
	assert.Empty(t, textOrEmpty(nil))

	f := 1.5
	assert.InDelta(t, 1.5, floatOrZero(&f), 1e-9)
	assert.Zero(t, floatOrZero(nil))
}
