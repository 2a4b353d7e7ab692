package repository

import (
	"context"

	"medicare-api/internal/domain/entity"

	"github.com/google/uuid"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Notification, error)
	FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Notification, error)
	Update(ctx context.Context, notification *entity.Notification) error
}
