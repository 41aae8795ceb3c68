package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "gobarber-api/internal/domain/appointment"
)

// Disponibilidade é sempre recalculada por requisição; só as listagens
// de agendamentos passam pelo cache.
type GetMonthAvailability struct {
	repo domain.Repository

	now func() time.Time
}

func NewGetMonthAvailability(repo domain.Repository) *GetMonthAvailability {
	return &GetMonthAvailability{
		repo: repo,
		now:  time.Now,
	}
}

func (uc *GetMonthAvailability) Execute(
	ctx context.Context,
	providerID uuid.UUID,
	month time.Month,
	year int,
) ([]domain.DayAvailability, error) {

	apps, err := uc.repo.ListByProviderMonth(ctx, providerID, month, year)
	if err != nil {
		return nil, err
	}

	return domain.MonthAvailability(apps, year, month, uc.now()), nil
}
