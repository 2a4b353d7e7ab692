package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateReviewRequest struct {
	AppointmentID string `json:"appointment_id" validate:"required,uuid"`
	PatientID     string `json:"patient_id" validate:"required,uuid"`
	DoctorID      string `json:"doctor_id" validate:"required,uuid"`
	Rating        int    `json:"rating" validate:"required,min=1,max=5"`
	Comment       string `json:"comment" validate:"omitempty,max=2000"`
}

// Response DTOs

type ReviewResponse struct {
	ID            uuid.UUID `json:"id"`
	AppointmentID uuid.UUID `json:"appointment_id"`
	PatientID     uuid.UUID `json:"patient_id"`
	DoctorID      uuid.UUID `json:"doctor_id"`
	PatientName   string    `json:"patient_name,omitempty"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type DoctorRatingResponse struct {
	DoctorID      uuid.UUID `json:"doctor_id"`
	AverageRating float64   `json:"average_rating"`
	TotalReviews  int       `json:"total_reviews"`
}

type CreateReviewResponse struct {
	Review       ReviewResponse       `json:"review"`
	DoctorRating DoctorRatingResponse `json:"doctor_rating"`
}

type ReviewListResponse struct {
	Reviews []ReviewResponse `json:"reviews"`
	Total   int              `json:"total"`
}
