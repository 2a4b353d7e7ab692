package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

type CreateDoctorRequest struct {
	Name           string                    `json:"name" validate:"required,min=2"`
	Email          string                    `json:"email" validate:"required,email"`
	Phone          string                    `json:"phone" validate:"omitempty"`
	Specialty      string                    `json:"specialty" validate:"required"`
	Experience     int                       `json:"experience" validate:"gte=0,lte=80"`
	Qualifications []QualificationRequest    `json:"qualifications" validate:"omitempty,dive"`
	AvailableSlots []AvailabilitySlotRequest `json:"available_slots" validate:"omitempty,dive"`
}

// UpdateDoctorRequest never carries rating fields; those are derived from reviews.
type UpdateDoctorRequest struct {
	Name           string                    `json:"name" validate:"omitempty,min=2"`
	Email          string                    `json:"email" validate:"omitempty,email"`
	Phone          string                    `json:"phone" validate:"omitempty"`
	Specialty      string                    `json:"specialty" validate:"omitempty"`
	Experience     *int                      `json:"experience" validate:"omitempty,gte=0,lte=80"`
	Qualifications []QualificationRequest    `json:"qualifications" validate:"omitempty,dive"`
	AvailableSlots []AvailabilitySlotRequest `json:"available_slots" validate:"omitempty,dive"`
}

type QualificationRequest struct {
	Degree      string `json:"degree" validate:"required"`
	Institution string `json:"institution" validate:"required"`
	Year        int    `json:"year" validate:"required,gte=1900,lte=2100"`
}

type AvailabilitySlotRequest struct {
	Day       string `json:"day" validate:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	StartTime string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime   string `json:"end_time" validate:"required,datetime=15:04"`
}

// Response DTOs

type QualificationResponse struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        int    `json:"year"`
}

type AvailabilitySlotResponse struct {
	Day       string `json:"day"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type DoctorResponse struct {
	ID             uuid.UUID                  `json:"id"`
	Name           string                     `json:"name"`
	Email          string                     `json:"email"`
	Phone          string                     `json:"phone"`
	Specialty      string                     `json:"specialty"`
	Experience     int                        `json:"experience"`
	Qualifications []QualificationResponse    `json:"qualifications"`
	AvailableSlots []AvailabilitySlotResponse `json:"available_slots"`
	AverageRating  float64                    `json:"average_rating"`
	TotalReviews   int                        `json:"total_reviews"`
}

type DoctorDetailResponse struct {
	DoctorResponse
	Reviews []ReviewResponse `json:"reviews"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
