package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gobarber-api/internal/cache"
	domain "gobarber-api/internal/domain/appointment"
	"gobarber-api/internal/dto"
)

// ListUpcomingAppointments lista os agendamentos futuros do usuário,
// read-through em user-appointments:{id}.
type ListUpcomingAppointments struct {
	repo  domain.Repository
	cache *cache.Cache

	now func() time.Time
}

func NewListUpcomingAppointments(
	repo domain.Repository,
	c *cache.Cache,
) *ListUpcomingAppointments {
	return &ListUpcomingAppointments{
		repo:  repo,
		cache: c,
		now:   time.Now,
	}
}

func (uc *ListUpcomingAppointments) Execute(
	ctx context.Context,
	userID uuid.UUID,
) ([]dto.AppointmentDTO, error) {

	key := cache.UserAppointmentsKey(userID)

	var cached []dto.AppointmentDTO
	if uc.cache.Get(ctx, key, &cached) {
		return cached, nil
	}

	apps, err := uc.repo.ListUpcomingByUser(ctx, userID, uc.now().UTC())
	if err != nil {
		return nil, err
	}

	out := dto.FromAppointments(apps)
	uc.cache.Set(ctx, key, out)

	return out, nil
}
