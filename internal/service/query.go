package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/hive_reporting_system/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	defaultPageSize = 100
	maxPageSize     = 100
)

// QueryService - проекции чтения без побочных эффектов
type QueryService interface {
	Pins(ctx context.Context, box models.BoundingBox) ([]models.Pin, error)
	Detail(ctx context.Context, reportID, viewerID uuid.UUID) (*ReportDetail, error)
	MyReports(ctx context.Context, memberID uuid.UUID, page, size int, status models.ReportStatus) (*MyReportsPage, error)
}

// ReportDetail - отчет вместе с автором и пчеловодом
type ReportDetail struct {
	ReportID    uuid.UUID            `json:"hive_report_id"`
	IsMe        bool                 `json:"is_me"`
	Reporter    *models.ActorSummary `json:"reporter"`
	Beekeeper   *models.ActorSummary `json:"beekeeper"`
	ImageURL    string               `json:"image_url"`
	Species     models.Species       `json:"species"`
	Latitude    float64              `json:"latitude"`
	Longitude   float64              `json:"longitude"`
	RoadAddress string               `json:"road_address"`
	Status      models.ReportStatus  `json:"status"`
	CreatedAt   time.Time            `json:"created_at"`
}

type MyReportItem struct {
	ReportID     uuid.UUID           `json:"hive_report_id"`
	HiveActionID *uuid.UUID          `json:"hive_action_id,omitempty"`
	Species      models.Species      `json:"species"`
	Status       models.ReportStatus `json:"status"`
	RoadAddress  string              `json:"road_address"`
	CreatedAt    time.Time           `json:"created_at"`
}

type MyReportsMeta struct {
	Points int `json:"points"`
}

type MyReportsPage struct {
	Results []MyReportItem `json:"results"`
	Page    int            `json:"page"`
	Size    int            `json:"size"`
	Total   int            `json:"total"`
	Meta    MyReportsMeta  `json:"meta"`
}

type queryService struct {
	store  HiveStore
	logger *logrus.Logger
}

func NewQueryService(store HiveStore, logger *logrus.Logger) QueryService {
	return &queryService{store: store, logger: logger}
}

// Pins возвращает финализированные и не удаленные отчеты в области
func (s *queryService) Pins(ctx context.Context, box models.BoundingBox) ([]models.Pin, error) {
	pins, err := s.store.FindPins(ctx, box)
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"service": "query",
			"method":  "Pins",
		}).Error("Failed to find pins")
		return nil, fmt.Errorf("service: could not find pins: %w", err)
	}
	return pins, nil
}

// Detail собирает детальный просмотр по журналу действий отчета
func (s *queryService) Detail(ctx context.Context, reportID, viewerID uuid.UUID) (*ReportDetail, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":        "query",
		"method":         "Detail",
		"hive_report_id": reportID,
	})

	report, err := s.store.GetReport(ctx, reportID)
	if err != nil {
		log.WithError(err).Warn("Failed to get hive report")
		return nil, fmt.Errorf("service: could not get hive report: %w", err)
	}
	actions, err := s.store.ListActions(ctx, reportID)
	if err != nil {
		log.WithError(err).Error("Failed to list hive actions")
		return nil, fmt.Errorf("service: could not list hive actions: %w", err)
	}
	ledger := LedgerOf(reportID, actions)

	reporter, ok := ledger.Reporter()
	if !ok {
		return nil, fmt.Errorf("service: %w: report %s has no reporter", ErrNotFound, reportID)
	}
	ids := []uuid.UUID{reporter.MemberID}
	beekeeper, hasBeekeeper := ledger.ActiveReservation()
	if !hasBeekeeper {
		if proof, ok := ledger.Proof(); ok && proof.ActionType == models.ActionHoneybeeProof {
			beekeeper, hasBeekeeper = proof, true
		}
	}
	if hasBeekeeper {
		ids = append(ids, beekeeper.MemberID)
	}

	members, err := s.store.GetMembers(ctx, ids)
	if err != nil {
		log.WithError(err).Error("Failed to get members")
		return nil, fmt.Errorf("service: could not get members: %w", err)
	}

	detail := &ReportDetail{
		ReportID:    report.ID,
		IsMe:        reporter.MemberID == viewerID,
		Reporter:    summary(members, reporter.MemberID),
		ImageURL:    report.ImageURL,
		Species:     report.Species,
		Latitude:    report.Latitude,
		Longitude:   report.Longitude,
		RoadAddress: report.RoadAddress,
		Status:      report.Status,
		CreatedAt:   report.CreatedAt,
	}
	if hasBeekeeper {
		detail.Beekeeper = summary(members, beekeeper.MemberID)
	}
	return detail, nil
}

func summary(members map[uuid.UUID]models.Member, id uuid.UUID) *models.ActorSummary {
	s := &models.ActorSummary{MemberID: id}
	if m, ok := members[id]; ok {
		s.Nickname = m.Nickname
	}
	return s
}

// MyReports возвращает страницу отчетов участника по действиям, соответствующим его роли
func (s *queryService) MyReports(ctx context.Context, memberID uuid.UUID, page, size int, status models.ReportStatus) (*MyReportsPage, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "query",
		"method":    "MyReports",
		"member_id": memberID,
	})

	if page < 1 {
		page = 1
	}
	if size < 1 || size > maxPageSize {
		size = defaultPageSize
	}
	if status != models.StatusUnfinalized && !status.Valid() {
		return nil, fmt.Errorf("service: %w: unknown status %q", ErrInvalidInput, status)
	}

	member, err := s.store.GetMember(ctx, memberID)
	if err != nil {
		log.WithError(err).Warn("Failed to get member")
		return nil, fmt.Errorf("service: could not get member: %w", err)
	}

	q := MyReportsQuery{
		MemberID: memberID,
		Status:   status,
		Limit:    size,
		Offset:   (page - 1) * size,
	}
	switch member.Role {
	case models.RoleBeekeeper:
		q.ActionTypes = []models.ActionType{models.ActionReserve, models.ActionHoneybeeProof}
		q.Species = models.SpeciesHoneybee
	default:
		q.ActionTypes = []models.ActionType{models.ActionReport, models.ActionWaspProof}
	}

	rows, total, err := s.store.ListMemberReports(ctx, q)
	if err != nil {
		log.WithError(err).Error("Failed to list member reports")
		return nil, fmt.Errorf("service: could not list member reports: %w", err)
	}

	results := make([]MyReportItem, 0, len(rows))
	for _, row := range rows {
		item := MyReportItem{
			ReportID:    row.ReportID,
			Species:     row.Species,
			Status:      row.Status,
			RoadAddress: row.RoadAddress,
			CreatedAt:   row.CreatedAt,
		}
		if member.Role == models.RoleBeekeeper && row.Status == models.StatusReserved {
			item.HiveActionID = row.ReserveActionID
		}
		results = append(results, item)
	}

	return &MyReportsPage{
		Results: results,
		Page:    page,
		Size:    size,
		Total:   total,
		Meta:    MyReportsMeta{Points: member.Points},
	}, nil
}
