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
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrDoctorNotFound = errors.New("doctor not found")
)

type DoctorUsecase interface {
	CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorDetailResponse, error)
	GetAllDoctors(ctx context.Context, filter *entity.DoctorFilter) (*dto.DoctorListResponse, error)
	UpdateDoctor(ctx context.Context, doctorID uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
}

type doctorUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	doctorRepo   repository.DoctorRepository
	reviewRepo   repository.ReviewRepository
	auditService service.AuditService
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	reviewRepo repository.ReviewRepository,
	auditService service.AuditService,
) DoctorUsecase {
	return &doctorUsecase{
		db:           db,
		log:          log,
		doctorRepo:   doctorRepo,
		reviewRepo:   reviewRepo,
		auditService: auditService,
	}
}

// CreateDoctor registers a doctor. Ratings always start empty.
func (u *doctorUsecase) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	doctor := &entity.Doctor{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Specialty:      req.Specialty,
		Experience:     req.Experience,
		Qualifications: toQualifications(req.Qualifications),
		AvailableSlots: toAvailabilitySlots(req.AvailableSlots),
		AverageRating:  decimal.Zero,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.doctorRepo.Create(ctx, tx, doctor); err != nil {
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, entity.AuditActionDoctorCreate, "doctor", doctor.ID.String(), converter.DoctorToResponse(doctor)); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DoctorToResponse(doctor), nil
}

// GetDoctor loads the doctor and its reviews concurrently.
func (u *doctorUsecase) GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorDetailResponse, error) {
	var (
		doctor  *entity.Doctor
		reviews []entity.Review
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		doctor, err = u.doctorRepo.FindByID(gctx, u.db, doctorID)
		return err
	})
	g.Go(func() error {
		var err error
		reviews, err = u.reviewRepo.FindByDoctorID(gctx, u.db, doctorID)
		return err
	})
	if err := g.Wait(); err != nil {
		u.log.Warnf("Failed to load doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToDetailResponse(doctor, reviews), nil
}

func (u *doctorUsecase) GetAllDoctors(ctx context.Context, filter *entity.DoctorFilter) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindAll(ctx, u.db, filter)
	if err != nil {
		u.log.Warnf("Failed to find all doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

func (u *doctorUsecase) UpdateDoctor(ctx context.Context, doctorID uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
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

	oldValue := converter.DoctorToResponse(doctor)

	if req.Name != "" {
		doctor.Name = req.Name
	}
	if req.Email != "" {
		doctor.Email = req.Email
	}
	if req.Phone != "" {
		doctor.Phone = req.Phone
	}
	if req.Specialty != "" {
		doctor.Specialty = req.Specialty
	}
	if req.Experience != nil {
		doctor.Experience = *req.Experience
	}
	if req.Qualifications != nil {
		doctor.Qualifications = toQualifications(req.Qualifications)
	}
	if req.AvailableSlots != nil {
		doctor.AvailableSlots = toAvailabilitySlots(req.AvailableSlots)
	}

	if err := u.doctorRepo.Update(ctx, tx, doctor); err != nil {
		u.log.Warnf("Failed to update doctor: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, entity.AuditActionDoctorUpdate, "doctor", doctorID.String(), oldValue, converter.DoctorToResponse(doctor)); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DoctorToResponse(doctor), nil
}

func toQualifications(reqs []dto.QualificationRequest) datatypes.JSONSlice[entity.Qualification] {
	qualifications := make(datatypes.JSONSlice[entity.Qualification], len(reqs))
	for i, q := range reqs {
		qualifications[i] = entity.Qualification{
			Degree:      q.Degree,
			Institution: q.Institution,
			Year:        q.Year,
		}
	}
	return qualifications
}

func toAvailabilitySlots(reqs []dto.AvailabilitySlotRequest) datatypes.JSONSlice[entity.AvailabilitySlot] {
	slots := make(datatypes.JSONSlice[entity.AvailabilitySlot], len(reqs))
	for i, s := range reqs {
		slots[i] = entity.AvailabilitySlot{
			Day:       s.Day,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
		}
	}
	return slots
}
