package v1

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/hive_reporting_system/internal/models"
	"github.com/shenikar/hive_reporting_system/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNotifications(t *testing.T) {
	env := newTestHandler(t)
	reportID := uuid.New()
	createdAt := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	env.profile.EXPECT().Notifications(gomock.Any(), env.reporter.ID, 2, 5).Return(&service.NotificationsPage{
		Results: []models.Notification{{
			ID:           uuid.New(),
			MemberID:     env.reporter.ID,
			HiveReportID: &reportID,
			Type:         models.NotificationReserved,
			Title:        "Your report was reserved",
			CreatedAt:    createdAt,
		}},
		Page:  2,
		Size:  5,
		Total: 6,
	}, nil)

	w := makeRequest(env.router, http.MethodGet, "/api/v1/members/me/notifications?page=2&size=5", nil, as(env.reporter))

	require.Equal(t, http.StatusOK, w.Code)
	var resp NotificationsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 6, resp.Total)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "RESERVED", resp.Results[0].Type)
	assert.Equal(t, reportID, *resp.Results[0].HiveReportID)
	assert.Nil(t, resp.Results[0].ReadAt)
}

func TestSetInterestAreas(t *testing.T) {
	url := "/api/v1/members/me/interest-areas"

	t.Run("success", func(t *testing.T) {
		env := newTestHandler(t)
		env.profile.EXPECT().SetInterestAreas(gomock.Any(), env.beekeeper.ID, []string{"11140", "11110"}).Return(nil)

		body := InterestAreasRequest{Areas: []InterestAreaItem{{DistrictCode: "11140"}, {DistrictCode: "11110"}}}
		w := makeRequest(env.router, http.MethodPut, url, jsonBody(t, body), as(env.beekeeper))

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("reporter forbidden", func(t *testing.T) {
		env := newTestHandler(t)
		body := InterestAreasRequest{Areas: []InterestAreaItem{{DistrictCode: "11140"}}}
		w := makeRequest(env.router, http.MethodPut, url, jsonBody(t, body), as(env.reporter))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	invalid := map[string]InterestAreasRequest{
		"empty":      {},
		"too many":   {Areas: []InterestAreaItem{{"11110"}, {"11140"}, {"11170"}, {"11200"}}},
		"bad code":   {Areas: []InterestAreaItem{{"1114"}}},
		"alpha code": {Areas: []InterestAreaItem{{"1114x"}}},
	}
	for name, body := range invalid {
		t.Run(name, func(t *testing.T) {
			env := newTestHandler(t)
			w := makeRequest(env.router, http.MethodPut, url, jsonBody(t, body), as(env.beekeeper))
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}

	serviceErrors := []struct {
		err  error
		code int
	}{
		{service.ErrInvalidDistrict, http.StatusBadRequest},
		{service.ErrInvalidInput, http.StatusBadRequest},
		{service.ErrPermissionDenied, http.StatusForbidden},
	}
	for _, tt := range serviceErrors {
		t.Run(tt.err.Error(), func(t *testing.T) {
			env := newTestHandler(t)
			env.profile.EXPECT().SetInterestAreas(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(fmt.Errorf("set interest areas: %w", tt.err))
			body := InterestAreasRequest{Areas: []InterestAreaItem{{DistrictCode: "11140"}}}
			w := makeRequest(env.router, http.MethodPut, url, jsonBody(t, body), as(env.beekeeper))
			assert.Equal(t, tt.code, w.Code)
		})
	}
}

func TestInterestAreas(t *testing.T) {
	env := newTestHandler(t)
	env.profile.EXPECT().InterestAreas(gomock.Any(), env.beekeeper.ID).Return([]service.RegionGroup{{
		City:      "서울특별시",
		Districts: []models.Region{{Code: "11140", City: "서울특별시", District: "중구"}},
	}}, nil)

	w := makeRequest(env.router, http.MethodGet, "/api/v1/members/me/interest-areas", nil, as(env.beekeeper))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`[{"city":"서울특별시","districts":[{"district_code":"11140","district":"중구"}]}]`,
		w.Body.String())
}
