package v1

import (
	"time"

	"github.com/google/uuid"
)

// VerifyImageRequest DTO для проверки фото гнезда
// @Description DTO для проверки фото гнезда
type VerifyImageRequest struct {
	ImageURL string `json:"image_url" validate:"required,url"`
}

// VerifyImageResponse DTO с вердиктом классификатора
// @Description DTO с вердиктом классификатора
type VerifyImageResponse struct {
	HiveReportID uuid.UUID `json:"hive_report_id"`
	ImageURL     string    `json:"image_url"`
	Species      string    `json:"species"`
	Confidence   float64   `json:"confidence"`
	Reason       string    `json:"reason"`
}

// FinalizeReportRequest DTO для финализации отчета. Координаты - указатели, чтобы 0 отличался от отсутствия поля
// @Description DTO для финализации отчета
type FinalizeReportRequest struct {
	HiveReportID string   `json:"hive_report_id" validate:"required,uuid"`
	Species      string   `json:"species" validate:"required,oneof=WASP HONEYBEE NONE"`
	Latitude     *float64 `json:"latitude" validate:"required,latitude"`
	Longitude    *float64 `json:"longitude" validate:"required,longitude"`
	RoadAddress  string   `json:"road_address" validate:"max=255"`
	DistrictCode string   `json:"district_code" validate:"required,len=5,numeric"`
}

// FinalizeReportResponse DTO с адресом и районом финализированного отчета
// @Description DTO с адресом и районом финализированного отчета
type FinalizeReportResponse struct {
	HiveReportID uuid.UUID `json:"hive_report_id"`
	RoadAddress  string    `json:"road_address"`
	City         string    `json:"city"`
	District     string    `json:"district"`
}

// ReserveResponse DTO с идентификатором действия RESERVE
// @Description DTO с идентификатором действия RESERVE
type ReserveResponse struct {
	HiveReportID uuid.UUID `json:"hive_report_id"`
	HiveActionID uuid.UUID `json:"hive_action_id"`
	Status       string    `json:"status"`
}

// ProofRequest DTO для подтверждения удаления гнезда
// @Description DTO для подтверждения удаления гнезда
type ProofRequest struct {
	ActionType string   `json:"action_type" validate:"required,oneof=WASP_PROOF HONEYBEE_PROOF"`
	Latitude   *float64 `json:"latitude" validate:"required,latitude"`
	Longitude  *float64 `json:"longitude" validate:"required,longitude"`
	ImageURL   string   `json:"image_url" validate:"required,url"`
}

// ProofResponse DTO с результатом подтверждения и начислением
// @Description DTO с результатом подтверждения и начислением
type ProofResponse struct {
	HiveReportID uuid.UUID `json:"hive_report_id"`
	HiveActionID uuid.UUID `json:"hive_action_id"`
	RewardID     uuid.UUID `json:"reward_id"`
	Points       int       `json:"points"`
	Status       string    `json:"status"`
	ImageURL     string    `json:"image_url"`
}

// PinResponse DTO точки на карте
// @Description DTO точки на карте
type PinResponse struct {
	HiveReportID uuid.UUID `json:"hive_report_id"`
	Species      string    `json:"species"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
}

// ActorResponse DTO участника в детальном просмотре
type ActorResponse struct {
	MemberID uuid.UUID `json:"member_id"`
	Nickname string    `json:"nickname"`
}

// ReportDetailResponse DTO детального просмотра отчета
// @Description DTO детального просмотра отчета
type ReportDetailResponse struct {
	HiveReportID uuid.UUID      `json:"hive_report_id"`
	IsMe         bool           `json:"is_me"`
	Reporter     *ActorResponse `json:"reporter"`
	Beekeeper    *ActorResponse `json:"beekeeper"`
	ImageURL     string         `json:"image_url"`
	Species      string         `json:"species"`
	Latitude     float64        `json:"latitude"`
	Longitude    float64        `json:"longitude"`
	RoadAddress  string         `json:"road_address"`
	Status       string         `json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
}

// MyReportResponse DTO строки списка "мои отчеты"
type MyReportResponse struct {
	HiveReportID uuid.UUID  `json:"hive_report_id"`
	HiveActionID *uuid.UUID `json:"hive_action_id,omitempty"`
	Species      string     `json:"species"`
	Status       string     `json:"status"`
	RoadAddress  string     `json:"road_address"`
	CreatedAt    time.Time  `json:"created_at"`
}

// MyReportsResponse DTO страницы "мои отчеты"
// @Description DTO страницы "мои отчеты"
type MyReportsResponse struct {
	Results []MyReportResponse `json:"results"`
	Page    int                `json:"page"`
	Size    int                `json:"size"`
	Total   int                `json:"total"`
	Meta    MyReportsMeta      `json:"meta"`
}

type MyReportsMeta struct {
	Points int `json:"points"`
}

// GeofenceErrorResponse DTO ошибки геозоны
// @Description DTO ошибки геозоны
type GeofenceErrorResponse struct {
	Error          string  `json:"error"`
	DistanceMeters float64 `json:"distance_meters"`
	AllowedMeters  float64 `json:"allowed_meters"`
}

// NotificationResponse DTO записи истории уведомлений
type NotificationResponse struct {
	ID           uuid.UUID  `json:"id"`
	HiveReportID *uuid.UUID `json:"hive_report_id,omitempty"`
	Type         string     `json:"type"`
	Title        string     `json:"title"`
	Message      string     `json:"message"`
	ReadAt       *time.Time `json:"read_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// NotificationsResponse DTO страницы истории уведомлений
// @Description DTO страницы истории уведомлений
type NotificationsResponse struct {
	Results []NotificationResponse `json:"results"`
	Page    int                    `json:"page"`
	Size    int                    `json:"size"`
	Total   int                    `json:"total"`
}

type InterestAreaItem struct {
	DistrictCode string `json:"district_code" validate:"required,len=5,numeric"`
}

// InterestAreasRequest DTO для замены районов интереса пчеловода
// @Description DTO для замены районов интереса пчеловода
type InterestAreasRequest struct {
	Areas []InterestAreaItem `json:"areas" validate:"required,min=1,max=3,dive"`
}

type DistrictResponse struct {
	DistrictCode string `json:"district_code"`
	District     string `json:"district"`
}

// InterestAreaGroupResponse DTO районов интереса одного города
// @Description DTO районов интереса одного города
type InterestAreaGroupResponse struct {
	City      string             `json:"city"`
	Districts []DistrictResponse `json:"districts"`
}
