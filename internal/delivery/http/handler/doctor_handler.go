package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"medicare-api/internal/delivery/dto"
	"medicare-api/internal/domain/entity"
	"medicare-api/internal/usecase"
	"medicare-api/pkg/response"
	"medicare-api/pkg/validator"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	validator     *validator.CustomValidator
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		validator:     validator,
	}
}

func (h *DoctorHandler) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.doctorUsecase.CreateDoctor(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create doctor", err)
		return
	}

	response.Success(w, http.StatusCreated, "Doctor created successfully", doctor)
}

func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := parseUUIDVar(w, r, "id", "Invalid doctor ID")
	if !ok {
		return
	}

	doctor, err := h.doctorUsecase.GetDoctor(r.Context(), doctorID)
	if err != nil {
		if errors.Is(err, usecase.ErrDoctorNotFound) {
			response.NotFound(w, "Doctor not found")
			return
		}
		response.InternalServerError(w, "Failed to get doctor", err)
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}

// GetAllDoctors lists doctors, optionally filtered by ?specialty=.
func (h *DoctorHandler) GetAllDoctors(w http.ResponseWriter, r *http.Request) {
	filter := &entity.DoctorFilter{
		Specialty: r.URL.Query().Get("specialty"),
	}

	doctors, err := h.doctorUsecase.GetAllDoctors(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to get doctors", err)
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

func (h *DoctorHandler) UpdateDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := parseUUIDVar(w, r, "id", "Invalid doctor ID")
	if !ok {
		return
	}

	var req dto.UpdateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.doctorUsecase.UpdateDoctor(r.Context(), doctorID, &req)
	if err != nil {
		if errors.Is(err, usecase.ErrDoctorNotFound) {
			response.NotFound(w, "Doctor not found")
			return
		}
		response.InternalServerError(w, "Failed to update doctor", err)
		return
	}

	response.Success(w, http.StatusOK, "Doctor updated successfully", doctor)
}
