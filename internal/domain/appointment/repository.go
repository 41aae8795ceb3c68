package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gobarber-api/internal/models"
)

type Repository interface {
	// -------- Lookup pontual --------
	FindByProviderAndDate(
		ctx context.Context,
		providerID uuid.UUID,
		date time.Time,
	) (*models.Appointment, error)

	// -------- Disponibilidade --------
	ListByProviderMonth(
		ctx context.Context,
		providerID uuid.UUID,
		month time.Month,
		year int,
	) ([]models.Appointment, error)

	ListByProviderDay(
		ctx context.Context,
		providerID uuid.UUID,
		day int,
		month time.Month,
		year int,
	) ([]models.Appointment, error)

	// -------- Listagens --------
	ListUpcomingByUser(
		ctx context.Context,
		userID uuid.UUID,
		now time.Time,
	) ([]models.Appointment, error)

	// -------- Invalidação por relacionamento --------
	ListByUser(
		ctx context.Context,
		userID uuid.UUID,
	) ([]models.Appointment, error)

	ListByProvider(
		ctx context.Context,
		providerID uuid.UUID,
	) ([]models.Appointment, error)

	// -------- Escrita --------
	Create(
		ctx context.Context,
		ap *models.Appointment,
	) error
}
