package repository

import (
	"context"

	"medicare-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(ctx context.Context, db *gorm.DB, doctor *entity.Doctor) error
	CreateBatch(ctx context.Context, db *gorm.DB, doctors []entity.Doctor) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Doctor, error)
	FindByIDForUpdate(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Doctor, error)
	FindByName(ctx context.Context, db *gorm.DB, name string) (*entity.Doctor, error)
	FindAll(ctx context.Context, db *gorm.DB, filter *entity.DoctorFilter) ([]entity.Doctor, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)
	Update(ctx context.Context, db *gorm.DB, doctor *entity.Doctor) error
	UpdateRating(ctx context.Context, db *gorm.DB, id uuid.UUID, average decimal.Decimal, total int) error
}
