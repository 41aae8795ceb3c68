package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "gobarber-api/internal/domain/user"
	"gobarber-api/internal/httperr"
	"gobarber-api/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) FindByID(
	ctx context.Context,
	id uuid.UUID,
) (*models.User, error) {

	var u models.User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserGormRepository) FindByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var u models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserGormRepository) ListProviders(
	ctx context.Context,
	excludeID uuid.UUID,
) ([]models.User, error) {

	var users []models.User
	if err := r.db.WithContext(ctx).
		Where("id <> ? AND address IS NOT NULL AND is_active = ?", excludeID, true).
		Order("name ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}

func (r *UserGormRepository) Create(ctx context.Context, u *models.User) error {
	// índice único em email; dois registros simultâneos com o mesmo
	// e-mail passam pelo pré-check e só um insert vence
	return translateDuplicate(
		r.db.WithContext(ctx).Create(u).Error,
		httperr.CodeEmailTaken,
	)
}

func (r *UserGormRepository) Update(ctx context.Context, u *models.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

// Compile-time check
var _ domain.Repository = (*UserGormRepository)(nil)
