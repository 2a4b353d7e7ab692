package entity

import (
	"time"

	"gorm.io/datatypes"
)

// AuditLog represents a system audit trail entry
type AuditLog struct {
	ID         int64             `gorm:"primaryKey;autoIncrement" json:"id"`
	Action     string            `gorm:"type:varchar(100);not null;index" json:"action"`
	EntityName string            `gorm:"column:entity;type:varchar(50);not null" json:"entity"`
	EntityID   string            `gorm:"type:varchar(64);not null;index" json:"entity_id"`
	Metadata   datatypes.JSONMap `json:"metadata,omitempty"`
	CreatedAt  time.Time         `gorm:"autoCreateTime;index" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// Common audit actions
const (
	AuditActionUserCreate              = "user.create"
	AuditActionUserUpdate              = "user.update"
	AuditActionDoctorCreate            = "doctor.create"
	AuditActionDoctorUpdate            = "doctor.update"
	AuditActionAppointmentCreate       = "appointment.create"
	AuditActionAppointmentStatus       = "appointment.status_update"
	AuditActionAppointmentCancel       = "appointment.cancel"
	AuditActionAppointmentConsultation = "appointment.consultation_update"
	AuditActionReviewCreate            = "review.create"
)
