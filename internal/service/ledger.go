package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/hive_reporting_system/internal/models"
)

// ActionLedger - журнал действий одного отчета, прочитанный в той же транзакции, что и изменение.
// Записи только добавляются; бронирование отзывается записью CANCEL_RESERVE.
type ActionLedger struct {
	store    ActionStore
	reportID uuid.UUID
	actions  []models.HiveAction
}

// LoadLedger читает журнал отчета. Вызывать после блокировки строки отчета
func LoadLedger(ctx context.Context, store ActionStore, reportID uuid.UUID) (*ActionLedger, error) {
	actions, err := store.ListActions(ctx, reportID)
	if err != nil {
		return nil, fmt.Errorf("ledger: could not list actions of report %s: %w", reportID, err)
	}
	return &ActionLedger{store: store, reportID: reportID, actions: actions}, nil
}

// NewLedger создает пустой журнал для только что созданного отчета
func NewLedger(store ActionStore, reportID uuid.UUID) *ActionLedger {
	return &ActionLedger{store: store, reportID: reportID}
}

// LedgerOf оборачивает уже прочитанные действия для проекций чтения; Append для него недоступен
func LedgerOf(reportID uuid.UUID, actions []models.HiveAction) *ActionLedger {
	return &ActionLedger{reportID: reportID, actions: actions}
}

// Append добавляет действие в журнал; ID, Seq и CreatedAt заполняет хранилище
func (l *ActionLedger) Append(ctx context.Context, action *models.HiveAction) error {
	if l.store == nil {
		return fmt.Errorf("ledger: report %s is read-only", l.reportID)
	}
	action.HiveReportID = l.reportID
	if err := l.store.AppendAction(ctx, action); err != nil {
		return fmt.Errorf("ledger: could not append %s action: %w", action.ActionType, err)
	}
	l.actions = append(l.actions, *action)
	return nil
}

func (l *ActionLedger) Actions() []models.HiveAction {
	out := make([]models.HiveAction, len(l.actions))
	copy(out, l.actions)
	return out
}

// Reporter возвращает действие REPORT автора отчета
func (l *ActionLedger) Reporter() (models.HiveAction, bool) {
	for _, a := range l.actions {
		if a.ActionType == models.ActionReport {
			return a, true
		}
	}
	return models.HiveAction{}, false
}

func (l *ActionLedger) Find(actionID uuid.UUID) (models.HiveAction, bool) {
	for _, a := range l.actions {
		if a.ID == actionID {
			return a, true
		}
	}
	return models.HiveAction{}, false
}

// ActiveReservation возвращает RESERVE, не отмененный и не закрытый последующим подтверждением
func (l *ActionLedger) ActiveReservation() (models.HiveAction, bool) {
	return ActiveReservation(l.actions)
}

// Proof возвращает итоговое подтверждение удаления, если оно есть
func (l *ActionLedger) Proof() (models.HiveAction, bool) {
	for _, a := range l.actions {
		if a.ActionType.IsProof() {
			return a, true
		}
	}
	return models.HiveAction{}, false
}

// HasActive сообщает, есть ли у участника действующее действие указанного типа
func (l *ActionLedger) HasActive(memberID uuid.UUID, actionType models.ActionType) bool {
	switch actionType {
	case models.ActionReport:
		a, ok := l.Reporter()
		return ok && a.MemberID == memberID
	case models.ActionReserve:
		a, ok := l.ActiveReservation()
		return ok && a.MemberID == memberID
	case models.ActionWaspProof, models.ActionHoneybeeProof:
		a, ok := l.Proof()
		return ok && a.ActionType == actionType && a.MemberID == memberID
	}
	return false
}

// ActiveReservation вычисляет действующее бронирование по журналу в порядке записи
func ActiveReservation(actions []models.HiveAction) (models.HiveAction, bool) {
	var active *models.HiveAction
	for i := range actions {
		a := &actions[i]
		switch {
		case a.ActionType == models.ActionReserve:
			active = a
		case a.ActionType == models.ActionCancelReserve:
			if active != nil && a.RefActionID != nil && *a.RefActionID == active.ID {
				active = nil
			}
		case a.ActionType.IsProof():
			active = nil
		}
	}
	if active == nil {
		return models.HiveAction{}, false
	}
	return *active, true
}
