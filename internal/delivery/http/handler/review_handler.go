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

type ReviewHandler struct {
	reviewUsecase usecase.ReviewUsecase
	validator     *validator.CustomValidator
}

func NewReviewHandler(reviewUsecase usecase.ReviewUsecase, validator *validator.CustomValidator) *ReviewHandler {
	return &ReviewHandler{
		reviewUsecase: reviewUsecase,
		validator:     validator,
	}
}

func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	review, err := h.reviewUsecase.CreateReview(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDoctorNotFound):
			response.NotFound(w, "Doctor not found")
		case errors.Is(err, usecase.ErrAppointmentNotFound):
			response.NotFound(w, "Appointment not found")
		case errors.Is(err, usecase.ErrReviewAppointmentMismatch), errors.Is(err, usecase.ErrInvalidReviewReference):
			response.BadRequest(w, "Invalid review", err)
		default:
			response.InternalServerError(w, "Failed to create review", err)
		}
		return
	}

	response.Success(w, http.StatusCreated, "Review created successfully", review)
}

func (h *ReviewHandler) GetDoctorReviews(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := parseUUIDVar(w, r, "doctorId", "Invalid doctor ID")
	if !ok {
		return
	}

	reviews, err := h.reviewUsecase.GetDoctorReviews(r.Context(), doctorID)
	if err != nil {
		if errors.Is(err, usecase.ErrDoctorNotFound) {
			response.NotFound(w, "Doctor not found")
			return
		}
		response.InternalServerError(w, "Failed to get reviews", err)
		return
	}

	response.Success(w, http.StatusOK, "Reviews retrieved successfully", reviews)
}
