package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shenikar/hive_reporting_system/internal/models"
	"github.com/sirupsen/logrus"
)

const defaultNotificationPageSize = 20

// MemberService - профиль участника: история уведомлений и районы интереса пчеловода
type MemberService interface {
	Notifications(ctx context.Context, memberID uuid.UUID, page, size int) (*NotificationsPage, error)
	SetInterestAreas(ctx context.Context, memberID uuid.UUID, districtCodes []string) error
	InterestAreas(ctx context.Context, memberID uuid.UUID) ([]RegionGroup, error)
}

type NotificationsPage struct {
	Results []models.Notification `json:"results"`
	Page    int                   `json:"page"`
	Size    int                   `json:"size"`
	Total   int                   `json:"total"`
}

// RegionGroup - районы интереса одного города
type RegionGroup struct {
	City      string          `json:"city"`
	Districts []models.Region `json:"districts"`
}

type memberService struct {
	store   HiveStore
	regions RegionResolver
	logger  *logrus.Logger
}

func NewMemberService(store HiveStore, regions RegionResolver, logger *logrus.Logger) MemberService {
	return &memberService{store: store, regions: regions, logger: logger}
}

// Notifications возвращает страницу истории уведомлений, новые первыми
func (s *memberService) Notifications(ctx context.Context, memberID uuid.UUID, page, size int) (*NotificationsPage, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 || size > maxPageSize {
		size = defaultNotificationPageSize
	}

	items, total, err := s.store.ListNotifications(ctx, memberID, size, (page-1)*size)
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"service":   "member",
			"method":    "Notifications",
			"member_id": memberID,
		}).Error("Failed to list notifications")
		return nil, fmt.Errorf("service: could not list notifications: %w", err)
	}
	return &NotificationsPage{Results: items, Page: page, Size: size, Total: total}, nil
}

// SetInterestAreas заменяет районы интереса пчеловода. Допускается от 1 до MaxInterestAreas различных районов
func (s *memberService) SetInterestAreas(ctx context.Context, memberID uuid.UUID, districtCodes []string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "member",
		"method":    "SetInterestAreas",
		"member_id": memberID,
	})

	if len(districtCodes) == 0 || len(districtCodes) > models.MaxInterestAreas {
		return fmt.Errorf("service: %w: expected 1 to %d interest areas, got %d", ErrInvalidInput, models.MaxInterestAreas, len(districtCodes))
	}
	seen := make(map[string]struct{}, len(districtCodes))
	for _, code := range districtCodes {
		if _, dup := seen[code]; dup {
			return fmt.Errorf("service: %w: duplicate interest area %q", ErrInvalidInput, code)
		}
		seen[code] = struct{}{}
		if _, err := s.regions.ResolveDistrict(ctx, code); err != nil {
			log.WithError(err).WithField("district_code", code).Warn("Failed to resolve interest area")
			return fmt.Errorf("service: could not resolve interest area: %w", err)
		}
	}

	member, err := s.store.GetMember(ctx, memberID)
	if err != nil {
		log.WithError(err).Warn("Failed to get member")
		return fmt.Errorf("service: could not get member: %w", err)
	}
	if member.Role != models.RoleBeekeeper {
		return fmt.Errorf("service: %w: only beekeepers have interest areas", ErrPermissionDenied)
	}

	if err := s.store.ReplaceInterestAreas(ctx, memberID, districtCodes); err != nil {
		log.WithError(err).Error("Failed to replace interest areas")
		return fmt.Errorf("service: could not replace interest areas: %w", err)
	}
	log.WithField("count", len(districtCodes)).Info("Interest areas updated")
	return nil
}

// InterestAreas возвращает районы интереса, сгруппированные по городу
func (s *memberService) InterestAreas(ctx context.Context, memberID uuid.UUID) ([]RegionGroup, error) {
	areas, err := s.store.ListInterestAreas(ctx, memberID)
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"service":   "member",
			"method":    "InterestAreas",
			"member_id": memberID,
		}).Warn("Failed to list interest areas")
		return nil, fmt.Errorf("service: could not list interest areas: %w", err)
	}

	byCity := make(map[string]*RegionGroup)
	groups := make([]RegionGroup, 0)
	cities := make([]string, 0)
	for _, r := range areas {
		g, ok := byCity[r.City]
		if !ok {
			g = &RegionGroup{City: r.City}
			byCity[r.City] = g
			cities = append(cities, r.City)
		}
		g.Districts = append(g.Districts, r)
	}
	sort.Strings(cities)
	for _, city := range cities {
		groups = append(groups, *byCity[city])
	}
	return groups, nil
}
