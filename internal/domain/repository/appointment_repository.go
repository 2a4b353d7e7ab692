package repository

import (
	"context"

	"medicare-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Appointment, error)
	FindByPatientID(ctx context.Context, db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error)
	FindByDoctorID(ctx context.Context, db *gorm.DB, doctorID uuid.UUID) ([]entity.Appointment, error)
	UpdateStatus(ctx context.Context, db *gorm.DB, id uuid.UUID, status entity.AppointmentStatus, doctorNotes string) (int64, error)
	UpdateConsultation(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error
}
