// Package testutil provides an in-memory store for tests.
package testutil

import (
	"context"
	"fmt"
	"testing"

	"medicare-api/internal/domain/entity"
	"medicare-api/internal/infrastructure/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB opens a private in-memory SQLite database with the full schema.
// A single connection is used, so callers must not query outside an open
// transaction until it ends.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.AutoMigrate(db))
	return db
}

// CreateDoctor inserts a doctor with the given name and specialty.
func CreateDoctor(t *testing.T, db *gorm.DB, name, specialty string) *entity.Doctor {
	t.Helper()

	doctor := &entity.Doctor{
		Name:       name,
		Email:      fmt.Sprintf("%s@medicare.test", uuid.NewString()[:8]),
		Phone:      "+1 (555) 000-0000",
		Specialty:  specialty,
		Experience: 10,
		Qualifications: datatypes.JSONSlice[entity.Qualification]{
			{Degree: "MD", Institution: "Test Medical School", Year: 2010},
		},
		AvailableSlots: datatypes.JSONSlice[entity.AvailabilitySlot]{
			{Day: "Monday", StartTime: "09:00", EndTime: "17:00"},
		},
	}
	require.NoError(t, db.WithContext(context.Background()).Create(doctor).Error)
	return doctor
}

// CountRows returns the number of rows stored for model.
func CountRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(model).Count(&count).Error)
	return count
}
