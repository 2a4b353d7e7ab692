package repository

import (
	"context"
	"errors"

	"medicare-api/internal/domain/entity"
	domainRepo "medicare-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const seedBatchSize = 100

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) Create(ctx context.Context, db *gorm.DB, doctor *entity.Doctor) error {
	return db.WithContext(ctx).Create(doctor).Error
}

func (r *doctorRepository) CreateBatch(ctx context.Context, db *gorm.DB, doctors []entity.Doctor) error {
	return db.WithContext(ctx).CreateInBatches(doctors, seedBatchSize).Error
}

func (r *doctorRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Doctor, error) {
	return r.first(db.WithContext(ctx).Where("id = ?", id))
}

// FindByIDForUpdate locks the doctor row until the surrounding transaction ends.
func (r *doctorRepository) FindByIDForUpdate(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Doctor, error) {
	return r.first(db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id))
}

// FindByName matches the display name exactly.
func (r *doctorRepository) FindByName(ctx context.Context, db *gorm.DB, name string) (*entity.Doctor, error) {
	return r.first(db.WithContext(ctx).Where("name = ?", name))
}

func (r *doctorRepository) first(query *gorm.DB) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := query.First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindAll(ctx context.Context, db *gorm.DB, filter *entity.DoctorFilter) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	query := db.WithContext(ctx)
	if filter != nil && filter.Specialty != "" {
		query = query.Where("LOWER(specialty) = LOWER(?)", filter.Specialty)
	}

	err := query.Order("name ASC").Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.Doctor{}).Count(&count).Error
	return count, err
}

// Update saves the editable fields; rating aggregates are never touched here.
func (r *doctorRepository) Update(ctx context.Context, db *gorm.DB, doctor *entity.Doctor) error {
	return db.WithContext(ctx).Omit("AverageRating", "TotalReviews", "CreatedAt").Save(doctor).Error
}

func (r *doctorRepository) UpdateRating(ctx context.Context, db *gorm.DB, id uuid.UUID, average decimal.Decimal, total int) error {
	return db.WithContext(ctx).Model(&entity.Doctor{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"average_rating": average,
			"total_reviews":  total,
		}).Error
}
