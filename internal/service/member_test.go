package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/hive_reporting_system/internal/models"
	"github.com/shenikar/hive_reporting_system/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetInterestAreas_Validation(t *testing.T) {
	tests := []struct {
		name    string
		member  func(f *fixture) uuid.UUID
		codes   []string
		wantErr error
	}{
		{
			name:    "Empty",
			member:  func(f *fixture) uuid.UUID { return f.beekeeper },
			codes:   nil,
			wantErr: service.ErrInvalidInput,
		},
		{
			name:    "Too many",
			member:  func(f *fixture) uuid.UUID { return f.beekeeper },
			codes:   []string{"11110", "11140", "11170", "11200"},
			wantErr: service.ErrInvalidInput,
		},
		{
			name:    "Duplicate",
			member:  func(f *fixture) uuid.UUID { return f.beekeeper },
			codes:   []string{testDistrict, testDistrict},
			wantErr: service.ErrInvalidInput,
		},
		{
			name:    "Unknown district",
			member:  func(f *fixture) uuid.UUID { return f.beekeeper },
			codes:   []string{badDistrict},
			wantErr: service.ErrInvalidDistrict,
		},
		{
			name:    "Reporter",
			member:  func(f *fixture) uuid.UUID { return f.reporter },
			codes:   []string{testDistrict},
			wantErr: service.ErrPermissionDenied,
		},
		{
			name:    "Unknown member",
			member:  func(*fixture) uuid.UUID { return uuid.New() },
			codes:   []string{testDistrict},
			wantErr: service.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			err := f.members.SetInterestAreas(context.Background(), tt.member(f), tt.codes)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestInterestAreas_GroupedByCity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	groups, err := f.members.InterestAreas(ctx, f.beekeeper)
	require.NoError(t, err)
	assert.Empty(t, groups)

	require.NoError(t, f.members.SetInterestAreas(ctx, f.beekeeper, []string{testDistrict}))
	// повторная замена тем же набором не дублирует районы
	require.NoError(t, f.members.SetInterestAreas(ctx, f.beekeeper, []string{testDistrict}))

	groups, err = f.members.InterestAreas(ctx, f.beekeeper)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, junggu.City, groups[0].City)
	assert.Equal(t, []models.Region{*junggu}, groups[0].Districts)
}

func TestNotifications_Pagination(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for i := 1; i <= 3; i++ {
		require.NoError(t, f.store.SaveNotification(ctx, &models.Notification{
			MemberID: f.beekeeper,
			Type:     models.NotificationNewReport,
			Title:    fmt.Sprintf("report %d", i),
		}))
	}

	first, err := f.members.Notifications(ctx, f.beekeeper, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, first.Total)
	require.Len(t, first.Results, 2)
	assert.Equal(t, "report 3", first.Results[0].Title)
	assert.Equal(t, "report 2", first.Results[1].Title)

	second, err := f.members.Notifications(ctx, f.beekeeper, 2, 2)
	require.NoError(t, err)
	require.Len(t, second.Results, 1)
	assert.Equal(t, "report 1", second.Results[0].Title)

	defaults, err := f.members.Notifications(ctx, f.beekeeper, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, defaults.Page)
	assert.Equal(t, 20, defaults.Size)
	assert.Len(t, defaults.Results, 3)

	empty, err := f.members.Notifications(ctx, f.rival, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Total)
	assert.Empty(t, empty.Results)
}
