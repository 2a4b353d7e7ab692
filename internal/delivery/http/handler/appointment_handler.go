package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"medicare-api/internal/delivery/dto"
	"medicare-api/internal/usecase"
	"medicare-api/pkg/response"
	"medicare-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

// CreateAppointment books an appointment. Any failure inside the booking
// transaction other than an unknown doctor is reported as 400.
func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.CreateAppointment(r.Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrDoctorNotFound) {
			response.NotFound(w, "Doctor not found in the system")
			return
		}
		response.BadRequest(w, "Failed to create appointment", err)
		return
	}

	response.Success(w, http.StatusCreated, "Appointment created successfully", appointment)
}

func (h *AppointmentHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID, ok := parseUUIDVar(w, r, "id", "Invalid appointment ID")
	if !ok {
		return
	}

	appointment, err := h.appointmentUsecase.GetAppointment(r.Context(), appointmentID)
	if err != nil {
		if errors.Is(err, usecase.ErrAppointmentNotFound) {
			response.NotFound(w, "Appointment not found")
			return
		}
		response.InternalServerError(w, "Failed to get appointment", err)
		return
	}

	response.Success(w, http.StatusOK, "Appointment retrieved successfully", appointment)
}

func (h *AppointmentHandler) GetAllAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.GetAllAppointments(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get appointments", err)
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) GetPatientAppointments(w http.ResponseWriter, r *http.Request) {
	patientID, ok := parseUUIDVar(w, r, "patientId", "Invalid patient ID")
	if !ok {
		return
	}

	appointments, err := h.appointmentUsecase.GetPatientAppointments(r.Context(), patientID)
	if err != nil {
		response.InternalServerError(w, "Failed to get appointments", err)
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) GetDoctorAppointments(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := parseUUIDVar(w, r, "doctorId", "Invalid doctor ID")
	if !ok {
		return
	}

	appointments, err := h.appointmentUsecase.GetDoctorAppointments(r.Context(), doctorID)
	if err != nil {
		response.InternalServerError(w, "Failed to get appointments", err)
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	appointmentID, ok := parseUUIDVar(w, r, "id", "Invalid appointment ID")
	if !ok {
		return
	}

	var req dto.UpdateAppointmentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.UpdateStatus(r.Context(), appointmentID, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAppointmentNotFound):
			response.NotFound(w, "Appointment not found")
		case errors.Is(err, usecase.ErrInvalidAppointmentStatus):
			response.BadRequest(w, "Invalid status", err)
		default:
			response.InternalServerError(w, "Failed to update appointment status", err)
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment status updated successfully", appointment)
}

func (h *AppointmentHandler) UpdateConsultation(w http.ResponseWriter, r *http.Request) {
	appointmentID, ok := parseUUIDVar(w, r, "id", "Invalid appointment ID")
	if !ok {
		return
	}

	var req dto.UpdateConsultationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.UpdateConsultation(r.Context(), appointmentID, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAppointmentNotFound):
			response.NotFound(w, "Appointment not found")
		case errors.Is(err, usecase.ErrInvalidFollowUpDate):
			response.BadRequest(w, "Invalid follow-up date", err)
		default:
			response.InternalServerError(w, "Failed to update consultation", err)
		}
		return
	}

	response.Success(w, http.StatusOK, "Consultation updated successfully", appointment)
}

func (h *AppointmentHandler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID, ok := parseUUIDVar(w, r, "id", "Invalid appointment ID")
	if !ok {
		return
	}

	appointment, err := h.appointmentUsecase.CancelAppointment(r.Context(), appointmentID)
	if err != nil {
		if errors.Is(err, usecase.ErrAppointmentNotFound) {
			response.NotFound(w, "Appointment not found")
			return
		}
		response.InternalServerError(w, "Failed to cancel appointment", err)
		return
	}

	response.Success(w, http.StatusOK, "Appointment cancelled successfully", appointment)
}

// parseUUIDVar reads a UUID path variable, writing a 400 when it is malformed.
func parseUUIDVar(w http.ResponseWriter, r *http.Request, name, message string) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)[name])
	if err != nil {
		response.BadRequest(w, message, nil)
		return uuid.Nil, false
	}
	return id, true
}
