package memory

import (
	"context"
	"fmt"
	"slices"
	"sort"

	"github.com/google/uuid"
	"github.com/shenikar/hive_reporting_system/internal/models"
	"github.com/shenikar/hive_reporting_system/internal/service"
)

func (s *Store) SaveNotification(ctx context.Context, n *models.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.state.member(n.MemberID); err != nil {
		return err
	}
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	n.CreatedAt = s.now()
	s.notifications = append(s.notifications, *n)
	return nil
}

func (s *Store) ListNotifications(ctx context.Context, memberID uuid.UUID, limit, offset int) ([]models.Notification, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]models.Notification, 0)
	for i := len(s.notifications) - 1; i >= 0; i-- {
		if s.notifications[i].MemberID == memberID {
			matched = append(matched, s.notifications[i])
		}
	}
	total := len(matched)
	if offset >= total {
		return []models.Notification{}, total, nil
	}
	end := total
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return matched[offset:end], total, nil
}

func (s *Store) ReplaceInterestAreas(ctx context.Context, memberID uuid.UUID, districtCodes []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.state.member(memberID); err != nil {
		return err
	}
	for _, code := range districtCodes {
		if _, ok := s.state.regions[code]; !ok {
			return fmt.Errorf("region %q: %w", code, service.ErrNotFound)
		}
	}
	s.interests[memberID] = slices.Clone(districtCodes)
	return nil
}

func (s *Store) ListInterestAreas(ctx context.Context, memberID uuid.UUID) ([]models.Region, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, err := s.state.member(memberID); err != nil {
		return nil, err
	}
	areas := make([]models.Region, 0, len(s.interests[memberID]))
	for _, code := range s.interests[memberID] {
		areas = append(areas, s.state.regions[code])
	}
	sort.Slice(areas, func(i, j int) bool { return areas[i].Code < areas[j].Code })
	return areas, nil
}

func (s *Store) ListInterestedMembers(ctx context.Context, districtCode string) ([]models.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	members := make([]models.Member, 0)
	for id, codes := range s.interests {
		if slices.Contains(codes, districtCode) {
			members = append(members, s.state.members[id])
		}
	}
	sort.Slice(members, func(i, j int) bool { return members[i].ID.String() < members[j].ID.String() })
	return members, nil
}
