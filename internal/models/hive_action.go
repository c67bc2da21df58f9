package models

import (
	"time"

	"github.com/google/uuid"
)

type ActionType string

const (
	ActionReport        ActionType = "REPORT"
	ActionReserve       ActionType = "RESERVE"
	ActionCancelReserve ActionType = "CANCEL_RESERVE"
	ActionWaspProof     ActionType = "WASP_PROOF"
	ActionHoneybeeProof ActionType = "HONEYBEE_PROOF"
)

func (t ActionType) IsProof() bool {
	return t == ActionWaspProof || t == ActionHoneybeeProof
}

// HiveAction - неизменяемая запись журнала действий по отчету
type HiveAction struct {
	ID           uuid.UUID  `json:"id"`
	Seq          int64      `json:"-"`
	HiveReportID uuid.UUID  `json:"hive_report_id"`
	MemberID     uuid.UUID  `json:"member_id"`
	ActionType   ActionType `json:"action_type"`
	ImageURL     string     `json:"image_url,omitempty"`
	Latitude     *float64   `json:"latitude,omitempty"`
	Longitude    *float64   `json:"longitude,omitempty"`
	// RefActionID указывает на RESERVE, который отменяется записью CANCEL_RESERVE
	RefActionID *uuid.UUID `json:"ref_action_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
