package usecase

import (
	"context"
	"errors"
	"time"

	"medicare-api/internal/converter"
	"medicare-api/internal/delivery/dto"
	"medicare-api/internal/domain/entity"
	"medicare-api/internal/domain/repository"
	"medicare-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrUserEmailExists      = errors.New("email already exists")
	ErrInvalidBirthDate     = errors.New("invalid date of birth")
	ErrInvalidDiagnosedDate = errors.New("invalid diagnosed date")
)

type UserUsecase interface {
	CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
	GetAllUsers(ctx context.Context) (*dto.UserListResponse, error)
	UpdateUser(ctx context.Context, userID uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
}

type userUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	auditService service.AuditService
}

func NewUserUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	auditService service.AuditService,
) UserUsecase {
	return &userUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		auditService: auditService,
	}
}

func (u *userUsecase) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	dateOfBirth, err := time.ParseInLocation(appointmentDateLayout, req.DateOfBirth, time.Local)
	if err != nil {
		return nil, ErrInvalidBirthDate
	}

	history, err := toMedicalHistory(req.MedicalHistory)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		DateOfBirth:    dateOfBirth,
		BloodType:      req.BloodType,
		Allergies:      datatypes.JSONSlice[string](nonNil(req.Allergies)),
		Medications:    datatypes.JSONSlice[string](nonNil(req.Medications)),
		MedicalHistory: history,
	}
	if req.EmergencyContact != nil {
		user.EmergencyContact = toEmergencyContact(req.EmergencyContact)
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := u.userRepo.FindByEmail(ctx, tx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserEmailExists
	}

	if err := u.userRepo.Create(ctx, tx, user); err != nil {
		u.log.Warnf("Failed to create user: %+v", err)
		if isDuplicateKeyError(err, "email") {
			return nil, ErrUserEmailExists
		}
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, entity.AuditActionUserCreate, "user", user.ID.String(), converter.UserToResponse(user)); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

func (u *userUsecase) GetUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user), nil
}

func (u *userUsecase) GetAllUsers(ctx context.Context) (*dto.UserListResponse, error) {
	users, err := u.userRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find all users: %+v", err)
		return nil, err
	}

	return &dto.UserListResponse{
		Users: converter.UsersToResponses(users),
		Total: len(users),
	}, nil
}

// UpdateUser edits the profile. Email is the patient's identity for booking
// and cannot be changed here.
func (u *userUsecase) UpdateUser(ctx context.Context, userID uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(ctx, tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	oldValue := converter.UserToResponse(user)

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if req.DateOfBirth != "" {
		dateOfBirth, err := time.ParseInLocation(appointmentDateLayout, req.DateOfBirth, time.Local)
		if err != nil {
			return nil, ErrInvalidBirthDate
		}
		user.DateOfBirth = dateOfBirth
	}
	if req.BloodType != "" {
		user.BloodType = req.BloodType
	}
	if req.Allergies != nil {
		user.Allergies = req.Allergies
	}
	if req.Medications != nil {
		user.Medications = req.Medications
	}
	if req.MedicalHistory != nil {
		history, err := toMedicalHistory(req.MedicalHistory)
		if err != nil {
			return nil, err
		}
		user.MedicalHistory = history
	}
	if req.EmergencyContact != nil {
		user.EmergencyContact = toEmergencyContact(req.EmergencyContact)
	}

	if err := u.userRepo.Update(ctx, tx, user); err != nil {
		u.log.Warnf("Failed to update user: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, entity.AuditActionUserUpdate, "user", userID.String(), oldValue, converter.UserToResponse(user)); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

func toMedicalHistory(entries []dto.MedicalHistoryRequest) (datatypes.JSONSlice[entity.MedicalHistoryEntry], error) {
	history := make(datatypes.JSONSlice[entity.MedicalHistoryEntry], len(entries))
	for i, e := range entries {
		history[i] = entity.MedicalHistoryEntry{
			Condition: e.Condition,
			Notes:     e.Notes,
		}
		if e.DiagnosedDate != "" {
			date, err := time.ParseInLocation(appointmentDateLayout, e.DiagnosedDate, time.Local)
			if err != nil {
				return nil, ErrInvalidDiagnosedDate
			}
			history[i].DiagnosedDate = &date
		}
	}
	return history, nil
}

func toEmergencyContact(req *dto.EmergencyContactRequest) entity.EmergencyContact {
	return entity.EmergencyContact{
		Name:         req.Name,
		Phone:        req.Phone,
		Relationship: req.Relationship,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
