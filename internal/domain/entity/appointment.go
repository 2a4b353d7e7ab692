package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// IsValid reports whether s is one of the known statuses.
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusConfirmed, AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

type Prescription struct {
	Medicine string `json:"medicine"`
	Dosage   string `json:"dosage,omitempty"`
	Duration string `json:"duration,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

type FollowUp struct {
	Required bool       `gorm:"not null;default:false" json:"required"`
	Date     *time.Time `json:"date,omitempty"`
}

type AppointmentNotes struct {
	DoctorNotes  string `gorm:"type:text" json:"doctor_notes,omitempty"`
	PatientNotes string `gorm:"type:text" json:"patient_notes,omitempty"`
}

type Vitals struct {
	BloodPressure   *string  `gorm:"type:varchar(20)" json:"blood_pressure,omitempty"`
	Temperature     *float64 `json:"temperature,omitempty"`
	HeartRate       *int     `json:"heart_rate,omitempty"`
	RespiratoryRate *int     `json:"respiratory_rate,omitempty"`
}

// Appointment links one patient to one doctor at a point in time.
// Appointments are never deleted; cancellation is a status change.
type Appointment struct {
	ID              uuid.UUID                         `gorm:"type:uuid;primaryKey" json:"id"`
	PatientID       uuid.UUID                         `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID        uuid.UUID                         `gorm:"type:uuid;not null;index" json:"doctor_id"`
	AppointmentDate time.Time                         `gorm:"not null;index" json:"appointment_date"`
	AppointmentTime string                            `gorm:"type:varchar(5);not null" json:"appointment_time"`
	Reason          string                            `gorm:"type:text;not null" json:"reason"`
	Status          AppointmentStatus                 `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Symptoms        datatypes.JSONSlice[string]       `json:"symptoms"`
	Diagnosis       *string                           `gorm:"type:text" json:"diagnosis,omitempty"`
	Prescriptions   datatypes.JSONSlice[Prescription] `json:"prescriptions"`
	FollowUp        FollowUp                          `gorm:"embedded;embeddedPrefix:follow_up_" json:"follow_up"`
	Notes           AppointmentNotes                  `gorm:"embedded;embeddedPrefix:notes_" json:"notes"`
	Vitals          Vitals                            `gorm:"embedded;embeddedPrefix:vitals_" json:"vitals"`
	CreatedAt       time.Time                         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time                         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient *User   `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  *Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
