package repository

import (
	"context"

	"medicare-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(ctx context.Context, db *gorm.DB, review *entity.Review) error
	FindByDoctorID(ctx context.Context, db *gorm.DB, doctorID uuid.UUID) ([]entity.Review, error)
	AggregateByDoctorID(ctx context.Context, db *gorm.DB, doctorID uuid.UUID) (*entity.RatingAggregate, error)
}
