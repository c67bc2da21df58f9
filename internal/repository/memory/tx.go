package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/hive_reporting_system/internal/models"
	"github.com/shenikar/hive_reporting_system/internal/service"
)

// tx работает с рабочей копией состояния, принадлежащей одной транзакции
type tx struct {
	state *state
	now   func() time.Time
}

func (t *tx) GetMember(ctx context.Context, id uuid.UUID) (*models.Member, error) {
	return t.state.member(id)
}

func (t *tx) CreateReport(ctx context.Context, report *models.HiveReport) error {
	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	if _, exists := t.state.reports[report.ID]; exists {
		return fmt.Errorf("hive report %s already exists", report.ID)
	}
	now := t.now()
	report.CreatedAt = now
	report.UpdatedAt = now
	t.state.reports[report.ID] = *report
	t.state.order = append(t.state.order, report.ID)
	return nil
}

func (t *tx) GetReport(ctx context.Context, id uuid.UUID) (*models.HiveReport, error) {
	return t.state.report(id)
}

// GetReportForUpdate совпадает с GetReport: транзакции уже сериализованы
func (t *tx) GetReportForUpdate(ctx context.Context, id uuid.UUID) (*models.HiveReport, error) {
	return t.state.report(id)
}

func (t *tx) FinalizeReport(ctx context.Context, report *models.HiveReport) error {
	current, ok := t.state.reports[report.ID]
	if !ok {
		return fmt.Errorf("hive report %s: %w", report.ID, service.ErrNotFound)
	}
	if current.Finalized() {
		return fmt.Errorf("hive report %s: %w", report.ID, service.ErrAlreadyFinalized)
	}
	current.Species = report.Species
	current.Latitude = report.Latitude
	current.Longitude = report.Longitude
	current.RoadAddress = report.RoadAddress
	current.DistrictCode = report.DistrictCode
	current.Status = models.StatusReported
	current.UpdatedAt = t.now()
	t.state.reports[report.ID] = current
	*report = current
	return nil
}

func (t *tx) TransitionStatus(ctx context.Context, st service.StatusTransition) (bool, error) {
	current, ok := t.state.reports[st.ReportID]
	if !ok || current.Status != st.From {
		return false, nil
	}
	if st.Species != "" && current.Species != st.Species {
		return false, nil
	}
	current.Status = st.To
	current.UpdatedAt = t.now()
	t.state.reports[st.ReportID] = current
	return true, nil
}

func (t *tx) AppendAction(ctx context.Context, action *models.HiveAction) error {
	if _, ok := t.state.reports[action.HiveReportID]; !ok {
		return fmt.Errorf("hive report %s: %w", action.HiveReportID, service.ErrNotFound)
	}
	if _, ok := t.state.members[action.MemberID]; !ok {
		return fmt.Errorf("member %s: %w", action.MemberID, service.ErrNotFound)
	}
	t.state.seq++
	action.ID = uuid.New()
	action.Seq = t.state.seq
	action.CreatedAt = t.now()
	t.state.actions[action.HiveReportID] = append(t.state.actions[action.HiveReportID], *action)
	return nil
}

func (t *tx) ListActions(ctx context.Context, reportID uuid.UUID) ([]models.HiveAction, error) {
	return append([]models.HiveAction(nil), t.state.actions[reportID]...), nil
}

func (t *tx) InsertReward(ctx context.Context, reward *models.Reward) error {
	if _, exists := t.state.rewards[reward.ActionID]; exists {
		return fmt.Errorf("reward for action %s: %w", reward.ActionID, service.ErrDuplicateAction)
	}
	reward.ID = uuid.New()
	reward.CreatedAt = t.now()
	t.state.rewards[reward.ActionID] = *reward
	return nil
}

func (t *tx) IncrementPoints(ctx context.Context, memberID uuid.UUID, amount int) error {
	m, ok := t.state.members[memberID]
	if !ok {
		return fmt.Errorf("member %s: %w", memberID, service.ErrNotFound)
	}
	m.Points += amount
	t.state.members[memberID] = m
	return nil
}
