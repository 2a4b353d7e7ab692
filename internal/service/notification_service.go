package service

import (
	"context"
	"time"

	"medicare-api/internal/domain/entity"
	"medicare-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const notifyTimeout = 5 * time.Second

// NotificationService pushes system notifications to a user's inbox.
type NotificationService interface {
	Notify(ctx context.Context, userID uuid.UUID, notificationType entity.NotificationType, title, message string)
}

type notificationService struct {
	notificationRepo repository.NotificationRepository
	log              *logrus.Logger
}

func NewNotificationService(notificationRepo repository.NotificationRepository, log *logrus.Logger) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		log:              log,
	}
}

// Notify is best effort; a Redis failure never fails the calling operation.
func (s *notificationService) Notify(ctx context.Context, userID uuid.UUID, notificationType entity.NotificationType, title, message string) {
	notifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
	defer cancel()

	notification := &entity.Notification{
		UserID:  userID,
		Type:    notificationType,
		Title:   title,
		Message: message,
	}
	if err := s.notificationRepo.Create(notifyCtx, notification); err != nil {
		s.log.Warnf("Failed to notify user %s: %+v", userID, err)
	}
}
