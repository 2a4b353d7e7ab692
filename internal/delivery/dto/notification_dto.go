package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateNotificationRequest struct {
	UserID  string `json:"user_id" validate:"required,uuid"`
	Type    string `json:"type" validate:"omitempty,oneof=appointment review general"`
	Title   string `json:"title" validate:"required,max=200"`
	Message string `json:"message" validate:"required,max=2000"`
}

// Response DTOs

type NotificationResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Total         int                    `json:"total"`
	Unread        int                    `json:"unread"`
}
