package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/hive_reporting_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func action(member uuid.UUID, typ models.ActionType) models.HiveAction {
	return models.HiveAction{ID: uuid.New(), MemberID: member, ActionType: typ}
}

func cancelOf(member uuid.UUID, reserve models.HiveAction) models.HiveAction {
	a := action(member, models.ActionCancelReserve)
	ref := reserve.ID
	a.RefActionID = &ref
	return a
}

func TestActiveReservation(t *testing.T) {
	reporter, x, y := uuid.New(), uuid.New(), uuid.New()
	report := action(reporter, models.ActionReport)
	first := action(x, models.ActionReserve)
	second := action(y, models.ActionReserve)

	tests := []struct {
		name    string
		actions []models.HiveAction
		want    *models.HiveAction
	}{
		{"no reservation", []models.HiveAction{report}, nil},
		{"active", []models.HiveAction{report, first}, &first},
		{"cancelled", []models.HiveAction{report, first, cancelOf(x, first)}, nil},
		{"re-reserved after cancel", []models.HiveAction{report, first, cancelOf(x, first), second}, &second},
		{"cancel of a stale reserve is ignored", []models.HiveAction{report, first, cancelOf(x, first), second, cancelOf(x, first)}, &second},
		{"closed by proof", []models.HiveAction{report, first, action(x, models.ActionHoneybeeProof)}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ActiveReservation(tt.actions)
			if tt.want == nil {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.want.ID, got.ID)
		})
	}
}

func TestLedger_HasActive(t *testing.T) {
	reporter, keeper := uuid.New(), uuid.New()
	reserve := action(keeper, models.ActionReserve)
	l := LedgerOf(uuid.New(), []models.HiveAction{action(reporter, models.ActionReport), reserve})

	assert.True(t, l.HasActive(reporter, models.ActionReport))
	assert.False(t, l.HasActive(keeper, models.ActionReport))
	assert.True(t, l.HasActive(keeper, models.ActionReserve))
	assert.False(t, l.HasActive(reporter, models.ActionReserve))
	assert.False(t, l.HasActive(keeper, models.ActionHoneybeeProof))

	found, ok := l.Find(reserve.ID)
	require.True(t, ok)
	assert.Equal(t, keeper, found.MemberID)
	_, ok = l.Find(uuid.New())
	assert.False(t, ok)
}

func TestLedger_ReadOnlyAppend(t *testing.T) {
	l := LedgerOf(uuid.New(), nil)

	err := l.Append(t.Context(), &models.HiveAction{ActionType: models.ActionReport})

	assert.ErrorContains(t, err, "read-only")
	assert.Empty(t, l.Actions())
}
