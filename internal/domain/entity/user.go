package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// EmergencyContact is stored inline on the users table.
type EmergencyContact struct {
	Name         string `gorm:"type:varchar(255)" json:"name,omitempty"`
	Phone        string `gorm:"type:varchar(50)" json:"phone,omitempty"`
	Relationship string `gorm:"type:varchar(100)" json:"relationship,omitempty"`
}

// MedicalHistoryEntry is a single free-text condition record.
type MedicalHistoryEntry struct {
	Condition     string     `json:"condition"`
	DiagnosedDate *time.Time `json:"diagnosed_date,omitempty"`
	Notes         string     `json:"notes,omitempty"`
}

// User represents a patient
type User struct {
	ID               uuid.UUID                                `gorm:"type:uuid;primaryKey" json:"id"`
	Name             string                                   `gorm:"type:varchar(255);not null" json:"name"`
	Email            string                                   `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Phone            string                                   `gorm:"type:varchar(50);not null" json:"phone"`
	DateOfBirth      time.Time                                `gorm:"type:date;not null" json:"date_of_birth"`
	BloodType        string                                   `gorm:"type:varchar(5)" json:"blood_type,omitempty"`
	Allergies        datatypes.JSONSlice[string]              `json:"allergies"`
	Medications      datatypes.JSONSlice[string]              `json:"medications"`
	MedicalHistory   datatypes.JSONSlice[MedicalHistoryEntry] `json:"medical_history"`
	EmergencyContact EmergencyContact                         `gorm:"embedded;embeddedPrefix:emergency_contact_" json:"emergency_contact"`
	CreatedAt        time.Time                                `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time                                `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
