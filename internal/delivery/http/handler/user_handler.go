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

type UserHandler struct {
	userUsecase usecase.UserUsecase
	validator   *validator.CustomValidator
}

func NewUserHandler(userUsecase usecase.UserUsecase, validator *validator.CustomValidator) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		validator:   validator,
	}
}

func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.userUsecase.CreateUser(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserEmailExists):
			response.Conflict(w, "Email already exists")
		case errors.Is(err, usecase.ErrInvalidBirthDate), errors.Is(err, usecase.ErrInvalidDiagnosedDate):
			response.BadRequest(w, "Invalid date", err)
		default:
			response.InternalServerError(w, "Failed to create user", err)
		}
		return
	}

	response.Success(w, http.StatusCreated, "User created successfully", user)
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUUIDVar(w, r, "id", "Invalid user ID")
	if !ok {
		return
	}

	user, err := h.userUsecase.GetUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			response.NotFound(w, "User not found")
			return
		}
		response.InternalServerError(w, "Failed to get user", err)
		return
	}

	response.Success(w, http.StatusOK, "User retrieved successfully", user)
}

func (h *UserHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userUsecase.GetAllUsers(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get users", err)
		return
	}

	response.Success(w, http.StatusOK, "Users retrieved successfully", users)
}

func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUUIDVar(w, r, "id", "Invalid user ID")
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.userUsecase.UpdateUser(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			response.NotFound(w, "User not found")
		case errors.Is(err, usecase.ErrInvalidBirthDate), errors.Is(err, usecase.ErrInvalidDiagnosedDate):
			response.BadRequest(w, "Invalid date", err)
		default:
			response.InternalServerError(w, "Failed to update user", err)
		}
		return
	}

	response.Success(w, http.StatusOK, "User updated successfully", user)
}
