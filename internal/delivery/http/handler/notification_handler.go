package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"medicare-api/internal/delivery/dto"
	"medicare-api/internal/usecase"
	"medicare-api/pkg/response"
	"medicare-api/pkg/validator"
)

type NotificationHandler struct {
	notificationUsecase usecase.NotificationUsecase
	validator           *validator.CustomValidator
}

func NewNotificationHandler(notificationUsecase usecase.NotificationUsecase, validator *validator.CustomValidator) *NotificationHandler {
	return &NotificationHandler{
		notificationUsecase: notificationUsecase,
		validator:           validator,
	}
}

func (h *NotificationHandler) CreateNotification(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateNotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	notification, err := h.notificationUsecase.CreateNotification(r.Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			response.NotFound(w, "User not found")
			return
		}
		response.InternalServerError(w, "Failed to create notification", err)
		return
	}

	response.Success(w, http.StatusCreated, "Notification created successfully", notification)
}

func (h *NotificationHandler) GetUserNotifications(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUUIDVar(w, r, "userId", "Invalid user ID")
	if !ok {
		return
	}

	notifications, err := h.notificationUsecase.GetUserNotifications(r.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			response.NotFound(w, "User not found")
			return
		}
		response.InternalServerError(w, "Failed to get notifications", err)
		return
	}

	response.Success(w, http.StatusOK, "Notifications retrieved successfully", notifications)
}

func (h *NotificationHandler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUUIDVar(w, r, "userId", "Invalid user ID")
	if !ok {
		return
	}
	notificationID, ok := parseUUIDVar(w, r, "id", "Invalid notification ID")
	if !ok {
		return
	}

	notification, err := h.notificationUsecase.MarkAsRead(r.Context(), userID, notificationID)
	if err != nil {
		if errors.Is(err, usecase.ErrNotificationNotFound) {
			response.NotFound(w, "Notification not found")
			return
		}
		response.InternalServerError(w, "Failed to update notification", err)
		return
	}

	response.Success(w, http.StatusOK, "Notification marked as read", notification)
}
