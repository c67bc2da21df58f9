package models

import "github.com/google/uuid"

type MemberRole string

const (
	RoleReporter  MemberRole = "REPORTER"
	RoleBeekeeper MemberRole = "BEEKEEPER"
)

// Member - участник из внешнего каталога идентификации
type Member struct {
	ID            uuid.UUID  `json:"id"`
	Role          MemberRole `json:"role"`
	Nickname      string     `json:"nickname"`
	Points        int        `json:"points"`
	NotifyAddress string     `json:"notify_address,omitempty"`
}

// ActorSummary - краткие сведения об участнике для детального просмотра отчета
type ActorSummary struct {
	MemberID uuid.UUID `json:"member_id"`
	Nickname string    `json:"nickname"`
}
