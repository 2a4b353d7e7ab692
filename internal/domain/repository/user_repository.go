package repository

import (
	"context"

	"medicare-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, db *gorm.DB, user *entity.User) error
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.User, error)
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.User, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.User, error)
	Update(ctx context.Context, db *gorm.DB, user *entity.User) error
}
