package repository

import (
	"context"

	"medicare-api/internal/domain/entity"
	domainRepo "medicare-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type reviewRepository struct{}

func NewReviewRepository() domainRepo.ReviewRepository {
	return &reviewRepository{}
}

func (r *reviewRepository) Create(ctx context.Context, db *gorm.DB, review *entity.Review) error {
	return db.WithContext(ctx).Omit(clause.Associations).Create(review).Error
}

func (r *reviewRepository) FindByDoctorID(ctx context.Context, db *gorm.DB, doctorID uuid.UUID) ([]entity.Review, error) {
	var reviews []entity.Review
	err := db.WithContext(ctx).
		Preload("Patient").
		Where("doctor_id = ?", doctorID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// AggregateByDoctorID sums and counts every review of the doctor.
func (r *reviewRepository) AggregateByDoctorID(ctx context.Context, db *gorm.DB, doctorID uuid.UUID) (*entity.RatingAggregate, error) {
	var agg entity.RatingAggregate
	err := db.WithContext(ctx).Model(&entity.Review{}).
		Select("COALESCE(SUM(rating), 0) AS rating_sum, COUNT(*) AS review_count").
		Where("doctor_id = ?", doctorID).
		Scan(&agg).Error
	if err != nil {
		return nil, err
	}
	return &agg, nil
}
