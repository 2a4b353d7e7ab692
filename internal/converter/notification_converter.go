package converter

import (
	"medicare-api/internal/delivery/dto"
	"medicare-api/internal/domain/entity"
)

func NotificationToResponse(notification *entity.Notification) *dto.NotificationResponse {
	if notification == nil {
		return nil
	}

	return &dto.NotificationResponse{
		ID:        notification.ID,
		UserID:    notification.UserID,
		Type:      string(notification.Type),
		Title:     notification.Title,
		Message:   notification.Message,
		Read:      notification.Read,
		CreatedAt: notification.CreatedAt,
	}
}

func NotificationsToResponses(notifications []entity.Notification) []dto.NotificationResponse {
	responses := make([]dto.NotificationResponse, len(notifications))
	for i := range notifications {
		if resp := NotificationToResponse(&notifications[i]); resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
