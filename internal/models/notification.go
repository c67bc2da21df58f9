package models

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationNewReport       NotificationType = "NEW_REPORT"
	NotificationReserved        NotificationType = "RESERVED"
	NotificationReserveCanceled NotificationType = "RESERVE_CANCELED"
	NotificationRemoved         NotificationType = "REMOVED"
)

// Notification - запись истории уведомлений участника
type Notification struct {
	ID           uuid.UUID        `json:"id"`
	MemberID     uuid.UUID        `json:"member_id"`
	HiveReportID *uuid.UUID       `json:"hive_report_id,omitempty"`
	Type         NotificationType `json:"type"`
	Title        string           `json:"title"`
	Message      string           `json:"message"`
	ReadAt       *time.Time       `json:"read_at,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
}

// MaxInterestAreas - предельное число районов интереса участника
const MaxInterestAreas = 3
