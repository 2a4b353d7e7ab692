package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review is a patient's rating of a doctor for a given appointment
type Review struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AppointmentID uuid.UUID `gorm:"type:uuid;not null;index" json:"appointment_id"`
	PatientID     uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID      uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id"`
	Rating        int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment       string    `gorm:"type:text" json:"comment,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime;index" json:"created_at"`

	// Relationships
	Appointment *Appointment `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
	Patient     *User        `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor      *Doctor      `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Review) TableName() string {
	return "reviews"
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// RatingAggregate is the aggregate of all reviews of a doctor
type RatingAggregate struct {
	Sum   int64 `gorm:"column:rating_sum"`
	Count int64 `gorm:"column:review_count"`
}
