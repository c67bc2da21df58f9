package models

import (
	"time"

	"github.com/google/uuid"
)

// Reward - начисление баллов за квалифицирующее действие, не более одного на действие
type Reward struct {
	ID        uuid.UUID `json:"id"`
	ActionID  uuid.UUID `json:"action_id"`
	MemberID  uuid.UUID `json:"member_id"`
	Points    int       `json:"points"`
	CreatedAt time.Time `json:"created_at"`
}
