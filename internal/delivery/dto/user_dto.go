package dto

import (
	"time"

	"medicare-api/internal/domain/entity"

	"github.com/google/uuid"
)

// Request DTOs

type CreateUserRequest struct {
	Name             string                   `json:"name" validate:"required,min=2"`
	Email            string                   `json:"email" validate:"required,email"`
	Phone            string                   `json:"phone" validate:"required"`
	DateOfBirth      string                   `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	BloodType        string                   `json:"blood_type" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Allergies        []string                 `json:"allergies" validate:"omitempty,dive,required"`
	Medications      []string                 `json:"medications" validate:"omitempty,dive,required"`
	MedicalHistory   []MedicalHistoryRequest  `json:"medical_history" validate:"omitempty,dive"`
	EmergencyContact *EmergencyContactRequest `json:"emergency_contact" validate:"omitempty"`
}

// UpdateUserRequest replaces only the fields that are present.
type UpdateUserRequest struct {
	Name             string                   `json:"name" validate:"omitempty,min=2"`
	Phone            string                   `json:"phone" validate:"omitempty"`
	DateOfBirth      string                   `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	BloodType        string                   `json:"blood_type" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Allergies        []string                 `json:"allergies" validate:"omitempty,dive,required"`
	Medications      []string                 `json:"medications" validate:"omitempty,dive,required"`
	MedicalHistory   []MedicalHistoryRequest  `json:"medical_history" validate:"omitempty,dive"`
	EmergencyContact *EmergencyContactRequest `json:"emergency_contact" validate:"omitempty"`
}

type MedicalHistoryRequest struct {
	Condition     string `json:"condition" validate:"required"`
	DiagnosedDate string `json:"diagnosed_date" validate:"omitempty,datetime=2006-01-02"`
	Notes         string `json:"notes" validate:"omitempty"`
}

type EmergencyContactRequest struct {
	Name         string `json:"name" validate:"required"`
	Phone        string `json:"phone" validate:"required"`
	Relationship string `json:"relationship" validate:"omitempty"`
}

// Response DTOs

type UserResponse struct {
	ID               uuid.UUID                    `json:"id"`
	Name             string                       `json:"name"`
	Email            string                       `json:"email"`
	Phone            string                       `json:"phone"`
	DateOfBirth      string                       `json:"date_of_birth"`
	BloodType        string                       `json:"blood_type,omitempty"`
	Allergies        []string                     `json:"allergies"`
	Medications      []string                     `json:"medications"`
	MedicalHistory   []entity.MedicalHistoryEntry `json:"medical_history"`
	EmergencyContact entity.EmergencyContact      `json:"emergency_contact"`
	CreatedAt        time.Time                    `json:"created_at"`
	UpdatedAt        time.Time                    `json:"updated_at"`
}

type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int            `json:"total"`
}
