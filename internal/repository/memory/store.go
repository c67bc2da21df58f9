// Package memory - хранилище отчетов в памяти процесса для локального запуска и тестов.
// Транзакции сериализуются мьютексом и работают с копией состояния, которая заменяет
// текущее только при успешном завершении.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/hive_reporting_system/internal/models"
	"github.com/shenikar/hive_reporting_system/internal/service"
)

type state struct {
	members map[uuid.UUID]models.Member
	reports map[uuid.UUID]models.HiveReport
	order   []uuid.UUID
	actions map[uuid.UUID][]models.HiveAction
	rewards map[uuid.UUID]models.Reward
	regions map[string]models.Region
	seq     int64
}

func newState() state {
	return state{
		members: map[uuid.UUID]models.Member{},
		reports: map[uuid.UUID]models.HiveReport{},
		actions: map[uuid.UUID][]models.HiveAction{},
		rewards: map[uuid.UUID]models.Reward{},
		regions: map[string]models.Region{},
	}
}

func (s state) clone() state {
	c := state{
		members: make(map[uuid.UUID]models.Member, len(s.members)),
		reports: make(map[uuid.UUID]models.HiveReport, len(s.reports)),
		order:   append([]uuid.UUID(nil), s.order...),
		actions: make(map[uuid.UUID][]models.HiveAction, len(s.actions)),
		rewards: make(map[uuid.UUID]models.Reward, len(s.rewards)),
		regions: s.regions,
		seq:     s.seq,
	}
	for k, v := range s.members {
		c.members[k] = v
	}
	for k, v := range s.reports {
		c.reports[k] = v
	}
	for k, v := range s.actions {
		c.actions[k] = append([]models.HiveAction(nil), v...)
	}
	for k, v := range s.rewards {
		c.rewards[k] = v
	}
	return c
}

var _ service.HiveStore = (*Store)(nil)

// Store реализует service.HiveStore поверх состояния в памяти
type Store struct {
	mu    sync.RWMutex
	state state
	now   func() time.Time

	// история уведомлений и районы интереса пишутся вне транзакций жизненного цикла
	notifications []models.Notification
	interests     map[uuid.UUID][]string
}

func NewStore() *Store {
	return &Store{state: newState(), now: time.Now, interests: map[uuid.UUID][]string{}}
}

// AddMember регистрирует участника внешнего каталога
func (s *Store) AddMember(m models.Member) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.members[m.ID] = m
}

// AddRegions заполняет справочник районов
func (s *Store) AddRegions(regions ...models.Region) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range regions {
		s.state.regions[r.Code] = r
	}
}

// Rewards возвращает все начисления
func (s *Store) Rewards() []models.Reward {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Reward, 0, len(s.state.rewards))
	for _, r := range s.state.rewards {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

func (s *Store) WithinTx(ctx context.Context, fn func(tx service.HiveTx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	working := s.state.clone()
	if err := fn(&tx{state: &working, now: s.now}); err != nil {
		return err
	}
	s.state = working
	return nil
}

func (s *Store) GetMember(ctx context.Context, id uuid.UUID) (*models.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.member(id)
}

func (s *Store) GetMembers(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[uuid.UUID]models.Member, len(ids))
	for _, id := range ids {
		if m, ok := s.state.members[id]; ok {
			out[id] = m
		}
	}
	return out, nil
}

func (s *Store) GetReport(ctx context.Context, id uuid.UUID) (*models.HiveReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.report(id)
}

func (s *Store) ListActions(ctx context.Context, reportID uuid.UUID) ([]models.HiveAction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.HiveAction(nil), s.state.actions[reportID]...), nil
}

func (s *Store) FindPins(ctx context.Context, box models.BoundingBox) ([]models.Pin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pins := make([]models.Pin, 0)
	for _, id := range s.state.order {
		r := s.state.reports[id]
		if r.Status != models.StatusReported && r.Status != models.StatusReserved {
			continue
		}
		if !box.Contains(r.Latitude, r.Longitude) {
			continue
		}
		pins = append(pins, models.Pin{ID: r.ID, Species: r.Species, Latitude: r.Latitude, Longitude: r.Longitude})
	}
	return pins, nil
}

func (s *Store) ListMemberReports(ctx context.Context, q service.MyReportsQuery) ([]service.MyReportRow, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]service.MyReportRow, 0)
	for i := len(s.state.order) - 1; i >= 0; i-- {
		r := s.state.reports[s.state.order[i]]
		if !r.Finalized() {
			continue
		}
		if q.Species != "" && r.Species != q.Species {
			continue
		}
		if q.Status != models.StatusUnfinalized && r.Status != q.Status {
			continue
		}
		actions := s.state.actions[r.ID]
		if !touchedBy(actions, q.MemberID, q.ActionTypes) {
			continue
		}
		row := service.MyReportRow{
			ReportID:    r.ID,
			Species:     r.Species,
			Status:      r.Status,
			RoadAddress: r.RoadAddress,
			CreatedAt:   r.CreatedAt,
		}
		if active, ok := service.ActiveReservation(actions); ok && active.MemberID == q.MemberID {
			id := active.ID
			row.ReserveActionID = &id
		}
		matched = append(matched, row)
	}

	total := len(matched)
	if q.Offset >= total {
		return []service.MyReportRow{}, total, nil
	}
	end := total
	if q.Limit > 0 && q.Offset+q.Limit < end {
		end = q.Offset + q.Limit
	}
	return matched[q.Offset:end], total, nil
}

// LookupRegion ищет район по коду
func (s *Store) LookupRegion(ctx context.Context, code string) (*models.Region, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.state.regions[code]
	if !ok {
		return nil, fmt.Errorf("region %q: %w", code, service.ErrNotFound)
	}
	return &r, nil
}

// touchedBy сообщает, есть ли у участника действие одного из типов. Отмененный RESERVE не учитывается
func touchedBy(actions []models.HiveAction, memberID uuid.UUID, types []models.ActionType) bool {
	cancelled := make(map[uuid.UUID]bool)
	for _, a := range actions {
		if a.ActionType == models.ActionCancelReserve && a.RefActionID != nil {
			cancelled[*a.RefActionID] = true
		}
	}
	for _, a := range actions {
		if a.MemberID != memberID || cancelled[a.ID] {
			continue
		}
		for _, t := range types {
			if a.ActionType == t {
				return true
			}
		}
	}
	return false
}

func (st *state) member(id uuid.UUID) (*models.Member, error) {
	m, ok := st.members[id]
	if !ok {
		return nil, fmt.Errorf("member %s: %w", id, service.ErrNotFound)
	}
	return &m, nil
}

func (st *state) report(id uuid.UUID) (*models.HiveReport, error) {
	r, ok := st.reports[id]
	if !ok {
		return nil, fmt.Errorf("hive report %s: %w", id, service.ErrNotFound)
	}
	return &r, nil
}
