package database

import (
	"medicare-api/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AutoMigrate creates or updates the schema. Order matters: referenced
// tables first.
func AutoMigrate(db *gorm.DB) error {
	logrus.Info("Running migrations...")
	return db.AutoMigrate(
		&entity.User{},
		&entity.Doctor{},
		&entity.Appointment{},
		&entity.Review{},
		&entity.AuditLog{},
	)
}
