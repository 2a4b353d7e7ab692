package dto

import (
	"encoding/json"
	"time"

	"medicare-api/internal/domain/entity"

	"github.com/google/uuid"
)

// Request DTOs

// CreateAppointmentRequest books an appointment. DoctorID is preferred; Doctor
// accepts the "<Doctor Name> - <Specialty>" label sent by the web client.
type CreateAppointmentRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
	DoctorID string `json:"doctor_id" validate:"omitempty,uuid"`
	Doctor   string `json:"doctor" validate:"required_without=DoctorID"`
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
	Time     string `json:"time" validate:"required,datetime=15:04"`
	Reason   string `json:"reason" validate:"required"`
}

type UpdateAppointmentStatusRequest struct {
	Status      string `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
	DoctorNotes string `json:"doctorNotes" validate:"omitempty"`
}

// UnmarshalJSON also accepts doctor_notes; doctorNotes wins when both are set.
func (r *UpdateAppointmentStatusRequest) UnmarshalJSON(data []byte) error {
	type plain UpdateAppointmentStatusRequest
	aux := struct {
		*plain
		DoctorNotesAlias string `json:"doctor_notes"`
	}{plain: (*plain)(r)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if r.DoctorNotes == "" {
		r.DoctorNotes = aux.DoctorNotesAlias
	}
	return nil
}

type UpdateConsultationRequest struct {
	Symptoms      []string              `json:"symptoms" validate:"omitempty,dive,required"`
	Diagnosis     *string               `json:"diagnosis" validate:"omitempty"`
	Prescriptions []PrescriptionRequest `json:"prescriptions" validate:"omitempty,dive"`
	FollowUp      *FollowUpRequest      `json:"follow_up" validate:"omitempty"`
	Vitals        *VitalsRequest        `json:"vitals" validate:"omitempty"`
}

type PrescriptionRequest struct {
	Medicine string `json:"medicine" validate:"required"`
	Dosage   string `json:"dosage" validate:"omitempty"`
	Duration string `json:"duration" validate:"omitempty"`
	Notes    string `json:"notes" validate:"omitempty"`
}

type FollowUpRequest struct {
	Required bool   `json:"required"`
	Date     string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

type VitalsRequest struct {
	BloodPressure   *string  `json:"blood_pressure" validate:"omitempty,max=20"`
	Temperature     *float64 `json:"temperature" validate:"omitempty,gt=25,lt=45"`
	HeartRate       *int     `json:"heart_rate" validate:"omitempty,gt=0,lt=300"`
	RespiratoryRate *int     `json:"respiratory_rate" validate:"omitempty,gt=0,lt=100"`
}

// Response DTOs

type PatientSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Phone string    `json:"phone"`
}

type DoctorSummary struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Specialty string    `json:"specialty"`
}

type AppointmentResponse struct {
	ID              uuid.UUID               `json:"id"`
	PatientID       uuid.UUID               `json:"patient_id"`
	DoctorID        uuid.UUID               `json:"doctor_id"`
	Patient         *PatientSummary         `json:"patient,omitempty"`
	Doctor          *DoctorSummary          `json:"doctor,omitempty"`
	AppointmentDate time.Time               `json:"appointment_date"`
	AppointmentTime string                  `json:"appointment_time"`
	Reason          string                  `json:"reason"`
	Status          string                  `json:"status"`
	Symptoms        []string                `json:"symptoms"`
	Diagnosis       *string                 `json:"diagnosis"`
	Prescriptions   []entity.Prescription   `json:"prescriptions"`
	FollowUp        entity.FollowUp         `json:"follow_up"`
	Notes           entity.AppointmentNotes `json:"notes"`
	Vitals          *entity.Vitals          `json:"vitals,omitempty"`
	CreatedAt       time.Time               `json:"created_at"`
	UpdatedAt       time.Time               `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
