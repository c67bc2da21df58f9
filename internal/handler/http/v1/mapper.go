package v1

import (
	"github.com/shenikar/hive_reporting_system/internal/models"
	"github.com/shenikar/hive_reporting_system/internal/service"
)

func VerificationToResponse(v *service.VerificationResult) *VerifyImageResponse {
	return &VerifyImageResponse{
		HiveReportID: v.ReportID,
		ImageURL:     v.ImageURL,
		Species:      string(v.AISpecies),
		Confidence:   v.AIConfidence,
		Reason:       v.AIReason,
	}
}

func FinalizeToResponse(r *service.FinalizeResult) *FinalizeReportResponse {
	return &FinalizeReportResponse{
		HiveReportID: r.ReportID,
		RoadAddress:  r.RoadAddress,
		City:         r.Region.City,
		District:     r.Region.District,
	}
}

func ProofToResponse(r *service.ProofResult) *ProofResponse {
	return &ProofResponse{
		HiveReportID: r.ReportID,
		HiveActionID: r.ActionID,
		RewardID:     r.RewardID,
		Points:       r.Points,
		Status:       string(r.Status),
		ImageURL:     r.ImageURL,
	}
}

// PinsToResponses преобразует слайс точек в слайс DTO
func PinsToResponses(pins []models.Pin) []PinResponse {
	responses := make([]PinResponse, len(pins))
	for i, p := range pins {
		responses[i] = PinResponse{
			HiveReportID: p.ID,
			Species:      string(p.Species),
			Latitude:     p.Latitude,
			Longitude:    p.Longitude,
		}
	}
	return responses
}

func actorToResponse(a *models.ActorSummary) *ActorResponse {
	if a == nil {
		return nil
	}
	return &ActorResponse{MemberID: a.MemberID, Nickname: a.Nickname}
}

func DetailToResponse(d *service.ReportDetail) *ReportDetailResponse {
	return &ReportDetailResponse{
		HiveReportID: d.ReportID,
		IsMe:         d.IsMe,
		Reporter:     actorToResponse(d.Reporter),
		Beekeeper:    actorToResponse(d.Beekeeper),
		ImageURL:     d.ImageURL,
		Species:      string(d.Species),
		Latitude:     d.Latitude,
		Longitude:    d.Longitude,
		RoadAddress:  d.RoadAddress,
		Status:       string(d.Status),
		CreatedAt:    d.CreatedAt,
	}
}

func MyReportsToResponse(p *service.MyReportsPage) *MyReportsResponse {
	results := make([]MyReportResponse, len(p.Results))
	for i, r := range p.Results {
		results[i] = MyReportResponse{
			HiveReportID: r.ReportID,
			HiveActionID: r.HiveActionID,
			Species:      string(r.Species),
			Status:       string(r.Status),
			RoadAddress:  r.RoadAddress,
			CreatedAt:    r.CreatedAt,
		}
	}
	return &MyReportsResponse{
		Results: results,
		Page:    p.Page,
		Size:    p.Size,
		Total:   p.Total,
		Meta:    MyReportsMeta{Points: p.Meta.Points},
	}
}

func NotificationsToResponse(p *service.NotificationsPage) *NotificationsResponse {
	results := make([]NotificationResponse, len(p.Results))
	for i, n := range p.Results {
		results[i] = NotificationResponse{
			ID:           n.ID,
			HiveReportID: n.HiveReportID,
			Type:         string(n.Type),
			Title:        n.Title,
			Message:      n.Message,
			ReadAt:       n.ReadAt,
			CreatedAt:    n.CreatedAt,
		}
	}
	return &NotificationsResponse{Results: results, Page: p.Page, Size: p.Size, Total: p.Total}
}

// InterestAreasToResponse преобразует группы районов в DTO
func InterestAreasToResponse(groups []service.RegionGroup) []InterestAreaGroupResponse {
	responses := make([]InterestAreaGroupResponse, len(groups))
	for i, g := range groups {
		districts := make([]DistrictResponse, len(g.Districts))
		for j, d := range g.Districts {
			districts[j] = DistrictResponse{DistrictCode: d.Code, District: d.District}
		}
		responses[i] = InterestAreaGroupResponse{City: g.City, Districts: districts}
	}
	return responses
}
