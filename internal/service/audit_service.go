package service

import (
	"context"

	"medicare-api/internal/domain/entity"
	"medicare-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AuditService writes audit entries inside the caller's transaction.
type AuditService interface {
	LogCreate(ctx context.Context, tx *gorm.DB, action string, entityName string, entityID string, newValue interface{}) error
	LogUpdate(ctx context.Context, tx *gorm.DB, action string, entityName string, entityID string, oldValue, newValue interface{}) error
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

// LogCreate logs a create action
func (s *auditService) LogCreate(ctx context.Context, tx *gorm.DB, action string, entityName string, entityID string, newValue interface{}) error {
	return s.write(ctx, tx, action, entityName, entityID, nil, newValue)
}

// LogUpdate logs an update action with old and new values
func (s *auditService) LogUpdate(ctx context.Context, tx *gorm.DB, action string, entityName string, entityID string, oldValue, newValue interface{}) error {
	return s.write(ctx, tx, action, entityName, entityID, oldValue, newValue)
}

func (s *auditService) write(ctx context.Context, tx *gorm.DB, action, entityName, entityID string, oldValue, newValue interface{}) error {
	auditLog := &entity.AuditLog{
		Action:     action,
		EntityName: entityName,
		EntityID:   entityID,
		Metadata: datatypes.JSONMap{
			"old_value": oldValue,
			"new_value": newValue,
		},
	}

	if err := s.auditRepo.Create(ctx, tx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}

	return nil
}
