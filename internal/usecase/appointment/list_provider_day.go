package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gobarber-api/internal/cache"
	domain "gobarber-api/internal/domain/appointment"
	"gobarber-api/internal/dto"
)

// ListProviderDayAppointments lista a agenda de um dia do prestador,
// read-through em providers-appointments:{id}:{ano}:{mês}:{dia}.
type ListProviderDayAppointments struct {
	repo  domain.Repository
	cache *cache.Cache
}

func NewListProviderDayAppointments(
	repo domain.Repository,
	c *cache.Cache,
) *ListProviderDayAppointments {
	return &ListProviderDayAppointments{repo: repo, cache: c}
}

func (uc *ListProviderDayAppointments) Execute(
	ctx context.Context,
	providerID uuid.UUID,
	day int,
	month time.Month,
	year int,
) ([]dto.AppointmentDTO, error) {

	key := cache.ProviderAppointmentsDayKey(providerID, day, month, year)

	var cached []dto.AppointmentDTO
	if uc.cache.Get(ctx, key, &cached) {
		return cached, nil
	}

	apps, err := uc.repo.ListByProviderDay(ctx, providerID, day, month, year)
	if err != nil {
		return nil, err
	}

	out := dto.FromAppointments(apps)
	uc.cache.Set(ctx, key, out)

	return out, nil
}
