package service

import (
	"context"
	"errors"

	"medicare-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrRatingDoctorNotFound = errors.New("doctor not found for rating recompute")

// RatingService maintains a doctor's average rating and review count.
type RatingService interface {
	RecomputeDoctorRating(ctx context.Context, doctorID uuid.UUID) (decimal.Decimal, int, error)
}

type ratingService struct {
	db         *gorm.DB
	log        *logrus.Logger
	doctorRepo repository.DoctorRepository
	reviewRepo repository.ReviewRepository
}

func NewRatingService(db *gorm.DB, log *logrus.Logger, doctorRepo repository.DoctorRepository, reviewRepo repository.ReviewRepository) RatingService {
	return &ratingService{
		db:         db,
		log:        log,
		doctorRepo: doctorRepo,
		reviewRepo: reviewRepo,
	}
}

// AverageRating returns sum/count rounded to one decimal place, 0 for no reviews.
func AverageRating(sum, count int64) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(sum).DivRound(decimal.NewFromInt(count), 1)
}

// RecomputeDoctorRating rebuilds the aggregate from every review of the
// doctor. The doctor row is locked first so the aggregate query sees all
// reviews committed before the lock was granted.
func (s *ratingService) RecomputeDoctorRating(ctx context.Context, doctorID uuid.UUID) (decimal.Decimal, int, error) {
	tx := s.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := s.doctorRepo.FindByIDForUpdate(ctx, tx, doctorID)
	if err != nil {
		s.log.Warnf("Failed to lock doctor %s: %+v", doctorID, err)
		return decimal.Zero, 0, err
	}
	if doctor == nil {
		return decimal.Zero, 0, ErrRatingDoctorNotFound
	}

	agg, err := s.reviewRepo.AggregateByDoctorID(ctx, tx, doctorID)
	if err != nil {
		s.log.Warnf("Failed to aggregate reviews for doctor %s: %+v", doctorID, err)
		return decimal.Zero, 0, err
	}

	average := AverageRating(agg.Sum, agg.Count)
	total := int(agg.Count)

	if err := s.doctorRepo.UpdateRating(ctx, tx, doctorID, average, total); err != nil {
		s.log.Warnf("Failed to update rating for doctor %s: %+v", doctorID, err)
		return decimal.Zero, 0, err
	}

	if err := tx.Commit().Error; err != nil {
		s.log.Warnf("Failed commit transaction: %+v", err)
		return decimal.Zero, 0, err
	}

	s.log.Infof("Doctor rating recomputed: doctor=%s, average=%s, total=%d", doctorID, average.StringFixed(1), total)
	return average, total, nil
}
