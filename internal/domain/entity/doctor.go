package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Qualification struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        int    `json:"year"`
}

// AvailabilitySlot is a weekly availability window, e.g. Monday 09:00-17:00.
type AvailabilitySlot struct {
	Day       string `json:"day"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// Doctor represents a practitioner that can be booked.
// AverageRating and TotalReviews are maintained by the rating service only.
type Doctor struct {
	ID             uuid.UUID                             `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string                                `gorm:"type:varchar(255);not null;index" json:"name"`
	Email          string                                `gorm:"type:varchar(255);not null" json:"email"`
	Phone          string                                `gorm:"type:varchar(50)" json:"phone"`
	Specialty      string                                `gorm:"type:varchar(100);not null;index" json:"specialty"`
	Experience     int                                   `gorm:"not null;default:0" json:"experience"`
	Qualifications datatypes.JSONSlice[Qualification]    `json:"qualifications"`
	AvailableSlots datatypes.JSONSlice[AvailabilitySlot] `json:"available_slots"`
	AverageRating  decimal.Decimal                       `gorm:"type:decimal(3,1);not null;default:0" json:"average_rating"`
	TotalReviews   int                                   `gorm:"not null;default:0" json:"total_reviews"`
	CreatedAt      time.Time                             `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time                             `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Doctor) TableName() string {
	return "doctors"
}

func (d *Doctor) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// DoctorFilter is a domain-level filter for listing doctors.
type DoctorFilter struct {
	Specialty string // exact match, case-insensitive
}
