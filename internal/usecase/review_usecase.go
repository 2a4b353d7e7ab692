package usecase

import (
	"context"
	"errors"

	"medicare-api/internal/converter"
	"medicare-api/internal/delivery/dto"
	"medicare-api/internal/domain/entity"
	"medicare-api/internal/domain/repository"
	"medicare-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrReviewAppointmentMismatch = errors.New("appointment does not belong to this patient and doctor")
	ErrInvalidReviewReference    = errors.New("invalid appointment, patient or doctor ID")
)

type ReviewUsecase interface {
	CreateReview(ctx context.Context, req *dto.CreateReviewRequest) (*dto.CreateReviewResponse, error)
	GetDoctorReviews(ctx context.Context, doctorID uuid.UUID) (*dto.ReviewListResponse, error)
}

type reviewUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	reviewRepo      repository.ReviewRepository
	doctorRepo      repository.DoctorRepository
	appointmentRepo repository.AppointmentRepository
	auditService    service.AuditService
	ratingService   service.RatingService
	eventService    service.EventService
}

func NewReviewUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	reviewRepo repository.ReviewRepository,
	doctorRepo repository.DoctorRepository,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
	ratingService service.RatingService,
	eventService service.EventService,
) ReviewUsecase {
	return &reviewUsecase{
		db:              db,
		log:             log,
		reviewRepo:      reviewRepo,
		doctorRepo:      doctorRepo,
		appointmentRepo: appointmentRepo,
		auditService:    auditService,
		ratingService:   ratingService,
		eventService:    eventService,
	}
}

// CreateReview stores the review, then rebuilds the doctor's rating from the
// full review set once the review is committed.
func (u *reviewUsecase) CreateReview(ctx context.Context, req *dto.CreateReviewRequest) (*dto.CreateReviewResponse, error) {
	appointmentID, err1 := uuid.Parse(req.AppointmentID)
	patientID, err2 := uuid.Parse(req.PatientID)
	doctorID, err3 := uuid.Parse(req.DoctorID)
	if err := errors.Join(err1, err2, err3); err != nil {
		return nil, ErrInvalidReviewReference
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(ctx, tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	appointment, err := u.appointmentRepo.FindByID(ctx, tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if appointment.DoctorID != doctorID || appointment.PatientID != patientID {
		return nil, ErrReviewAppointmentMismatch
	}

	review := &entity.Review{
		AppointmentID: appointmentID,
		PatientID:     patientID,
		DoctorID:      doctorID,
		Rating:        req.Rating,
		Comment:       req.Comment,
	}
	if err := u.reviewRepo.Create(ctx, tx, review); err != nil {
		u.log.Warnf("Failed to create review: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, entity.AuditActionReviewCreate, "review", review.ID.String(), converter.ReviewToResponse(review)); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	average, total, err := u.ratingService.RecomputeDoctorRating(ctx, doctorID)
	if err != nil {
		u.log.Errorf("Review %s saved but rating recompute failed for doctor %s: %+v", review.ID, doctorID, err)
		return nil, err
	}

	resp := &dto.CreateReviewResponse{
		Review: *converter.ReviewToResponse(review),
		DoctorRating: dto.DoctorRatingResponse{
			DoctorID:      doctorID,
			AverageRating: average.InexactFloat64(),
			TotalReviews:  total,
		},
	}

	u.eventService.Publish(ctx, service.EventReviewCreated, review.ID.String(), resp)

	return resp, nil
}

func (u *reviewUsecase) GetDoctorReviews(ctx context.Context, doctorID uuid.UUID) (*dto.ReviewListResponse, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, u.db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	reviews, err := u.reviewRepo.FindByDoctorID(ctx, u.db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find reviews for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	return &dto.ReviewListResponse{
		Reviews: converter.ReviewsToResponses(reviews),
		Total:   len(reviews),
	}, nil
}
