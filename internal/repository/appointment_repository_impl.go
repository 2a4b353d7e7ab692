package repository

import (
	"context"
	"errors"

	"medicare-api/internal/domain/entity"
	domainRepo "medicare-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
	return db.WithContext(ctx).Omit(clause.Associations).Create(appointment).Error
}

func (r *appointmentRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.WithContext(ctx).
		Preload("Patient").Preload("Doctor").
		Where("id = ?", id).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.WithContext(ctx).
		Preload("Patient").Preload("Doctor").
		Order("appointment_date DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByPatientID(ctx context.Context, db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.WithContext(ctx).
		Preload("Doctor").
		Where("patient_id = ?", patientID).
		Order("appointment_date DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByDoctorID(ctx context.Context, db *gorm.DB, doctorID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.WithContext(ctx).
		Preload("Patient").
		Where("doctor_id = ?", doctorID).
		Order("appointment_date DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// UpdateStatus overwrites the status unconditionally; doctor notes are only
// replaced when non-empty. Returns affected rows: 0 = appointment not found.
func (r *appointmentRepository) UpdateStatus(ctx context.Context, db *gorm.DB, id uuid.UUID, status entity.AppointmentStatus, doctorNotes string) (int64, error) {
	updates := map[string]interface{}{
		"status": status,
	}
	if doctorNotes != "" {
		updates["notes_doctor_notes"] = doctorNotes
	}

	result := db.WithContext(ctx).Model(&entity.Appointment{}).
		Where("id = ?", id).
		Updates(updates)
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) UpdateConsultation(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
	return db.WithContext(ctx).Model(&entity.Appointment{}).
		Where("id = ?", appointment.ID).
		Updates(map[string]interface{}{
			"symptoms":                appointment.Symptoms,
			"diagnosis":               appointment.Diagnosis,
			"prescriptions":           appointment.Prescriptions,
			"follow_up_required":      appointment.FollowUp.Required,
			"follow_up_date":          appointment.FollowUp.Date,
			"vitals_blood_pressure":   appointment.Vitals.BloodPressure,
			"vitals_temperature":      appointment.Vitals.Temperature,
			"vitals_heart_rate":       appointment.Vitals.HeartRate,
			"vitals_respiratory_rate": appointment.Vitals.RespiratoryRate,
		}).Error
}
