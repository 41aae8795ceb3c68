package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "gobarber-api/internal/domain/appointment"
	"gobarber-api/internal/httperr"
	"gobarber-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Lookup pontual
// --------------------------------------------------

func (r *AppointmentGormRepository) FindByProviderAndDate(
	ctx context.Context,
	providerID uuid.UUID,
	date time.Time,
) (*models.Appointment, error) {

	var ap models.Appointment
	err := r.db.WithContext(ctx).
		Where("provider_id = ? AND date = ?", providerID, date).
		First(&ap).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ap, nil
}

// --------------------------------------------------
// Disponibilidade
// --------------------------------------------------

func (r *AppointmentGormRepository) ListByProviderMonth(
	ctx context.Context,
	providerID uuid.UUID,
	month time.Month,
	year int,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"provider_id = ? AND EXTRACT(MONTH FROM date) = ? AND EXTRACT(YEAR FROM date) = ?",
			providerID, int(month), year,
		).
		Order("date ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *AppointmentGormRepository) ListByProviderDay(
	ctx context.Context,
	providerID uuid.UUID,
	day int,
	month time.Month,
	year int,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"provider_id = ? AND EXTRACT(DAY FROM date) = ? AND EXTRACT(MONTH FROM date) = ? AND EXTRACT(YEAR FROM date) = ?",
			providerID, day, int(month), year,
		).
		Order("date ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// --------------------------------------------------
// Listagens
// --------------------------------------------------

func (r *AppointmentGormRepository) ListUpcomingByUser(
	ctx context.Context,
	userID uuid.UUID,
	now time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, now).
		Order("date ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// --------------------------------------------------
// Invalidação por relacionamento
// --------------------------------------------------

func (r *AppointmentGormRepository) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("provider_id", "user_id").
		Where("user_id = ?", userID).
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *AppointmentGormRepository) ListByProvider(
	ctx context.Context,
	providerID uuid.UUID,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("provider_id", "user_id").
		Where("provider_id = ?", providerID).
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// --------------------------------------------------
// Escrita
// --------------------------------------------------

func (r *AppointmentGormRepository) Create(
	ctx context.Context,
	ap *models.Appointment,
) error {

	// índice único (provider_id, date)
	return translateDuplicate(
		r.db.WithContext(ctx).Create(ap).Error,
		httperr.CodeSlotTaken,
	)
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
