package usecase

import (
	"context"
	"errors"

	"medicare-api/internal/converter"
	"medicare-api/internal/delivery/dto"
	"medicare-api/internal/domain/entity"
	"medicare-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")
)

type NotificationUsecase interface {
	CreateNotification(ctx context.Context, req *dto.CreateNotificationRequest) (*dto.NotificationResponse, error)
	GetUserNotifications(ctx context.Context, userID uuid.UUID) (*dto.NotificationListResponse, error)
	MarkAsRead(ctx context.Context, userID, notificationID uuid.UUID) (*dto.NotificationResponse, error)
}

type notificationUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	notificationRepo repository.NotificationRepository
	userRepo         repository.UserRepository
}

func NewNotificationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	notificationRepo repository.NotificationRepository,
	userRepo repository.UserRepository,
) NotificationUsecase {
	return &notificationUsecase{
		db:               db,
		log:              log,
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
	}
}

func (u *notificationUsecase) CreateNotification(ctx context.Context, req *dto.CreateNotificationRequest) (*dto.NotificationResponse, error) {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if err := u.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	notificationType := entity.NotificationType(req.Type)
	if notificationType == "" {
		notificationType = entity.NotificationTypeGeneral
	}

	notification := &entity.Notification{
		UserID:  userID,
		Type:    notificationType,
		Title:   req.Title,
		Message: req.Message,
	}
	if err := u.notificationRepo.Create(ctx, notification); err != nil {
		u.log.Warnf("Failed to create notification: %+v", err)
		return nil, err
	}

	return converter.NotificationToResponse(notification), nil
}

func (u *notificationUsecase) GetUserNotifications(ctx context.Context, userID uuid.UUID) (*dto.NotificationListResponse, error) {
	if err := u.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	notifications, err := u.notificationRepo.FindByUserID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find notifications for user %s: %+v", userID, err)
		return nil, err
	}

	unread := 0
	for _, n := range notifications {
		if !n.Read {
			unread++
		}
	}

	return &dto.NotificationListResponse{
		Notifications: converter.NotificationsToResponses(notifications),
		Total:         len(notifications),
		Unread:        unread,
	}, nil
}

func (u *notificationUsecase) MarkAsRead(ctx context.Context, userID, notificationID uuid.UUID) (*dto.NotificationResponse, error) {
	notification, err := u.notificationRepo.FindByID(ctx, userID, notificationID)
	if err != nil {
		u.log.Warnf("Failed to find notification %s: %+v", notificationID, err)
		return nil, err
	}
	if notification == nil {
		return nil, ErrNotificationNotFound
	}

	if !notification.Read {
		notification.Read = true
		if err := u.notificationRepo.Update(ctx, notification); err != nil {
			u.log.Warnf("Failed to mark notification %s as read: %+v", notificationID, err)
			return nil, err
		}
	}

	return converter.NotificationToResponse(notification), nil
}

func (u *notificationUsecase) ensureUser(ctx context.Context, userID uuid.UUID) error {
	user, err := u.userRepo.FindByID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return nil
}
