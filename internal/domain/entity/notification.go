package entity

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationTypeAppointment NotificationType = "appointment"
	NotificationTypeReview      NotificationType = "review"
	NotificationTypeGeneral     NotificationType = "general"
)

// Notification lives in Redis, not in the relational store.
type Notification struct {
	ID        uuid.UUID        `json:"id"`
	UserID    uuid.UUID        `json:"user_id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"created_at"`
}
