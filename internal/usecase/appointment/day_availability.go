package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "gobarber-api/internal/domain/appointment"
)

type GetDayAvailability struct {
	repo domain.Repository

	now func() time.Time
}

func NewGetDayAvailability(repo domain.Repository) *GetDayAvailability {
	return &GetDayAvailability{
		repo: repo,
		now:  time.Now,
	}
}

// Execute aceita tanto o id de um prestador quanto o do próprio usuário
// atuando como contexto de prestador ("minha agenda do dia").
func (uc *GetDayAvailability) Execute(
	ctx context.Context,
	providerID uuid.UUID,
	day int,
	month time.Month,
	year int,
) ([]domain.HourAvailability, error) {

	apps, err := uc.repo.ListByProviderDay(ctx, providerID, day, month, year)
	if err != nil {
		return nil, err
	}

	return domain.DayAvailabilityHours(apps, year, month, day, uc.now()), nil
}
