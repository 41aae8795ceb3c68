package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"gobarber-api/internal/cache"
	"gobarber-api/internal/models"
)

func TestListUpcomingAppointments_ReadThrough(t *testing.T) {
	userID := uuid.New()
	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

	calls := 0
	repo := &fakeApptRepo{
		listUpcomingByUser: func(ctx context.Context, id uuid.UUID, n time.Time) ([]models.Appointment, error) {
			calls++
			return []models.Appointment{
				{ID: uuid.New(), ProviderID: uuid.New(), UserID: id, Date: n.Add(24 * time.Hour)},
			}, nil
		},
	}

	c := cache.New(newMemBackend())
	uc := NewListUpcomingAppointments(repo, c)
	uc.now = func() time.Time { return now }

	ctx := context.Background()

	first, err := uc.Execute(ctx, userID)
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	second, err := uc.Execute(ctx, userID)
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	if calls != 1 {
		t.Fatalf("repo calls = %d, want 1 (second read served from cache)", calls)
	}
	if len(first) != 1 || len(second) != 1 || first[0].ID != second[0].ID {
		t.Fatalf("cached read differs: %+v vs %+v", first, second)
	}
}

func TestListProviderDayAppointments_ReadThrough(t *testing.T) {
	providerID := uuid.New()

	calls := 0
	repo := &fakeApptRepo{
		listByProviderDay: func(ctx context.Context, id uuid.UUID, day int, month time.Month, year int) ([]models.Appointment, error) {
			calls++
			return []models.Appointment{
				{ID: uuid.New(), ProviderID: id, UserID: uuid.New(),
					Date: time.Date(year, month, day, 14, 0, 0, 0, time.UTC)},
			}, nil
		},
	}

	backend := newMemBackend()
	c := cache.New(backend)
	uc := NewListProviderDayAppointments(repo, c)

	ctx := context.Background()

	if _, err := uc.Execute(ctx, providerID, 15, time.June, 2024); err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if _, err := uc.Execute(ctx, providerID, 15, time.June, 2024); err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	if calls != 1 {
		t.Fatalf("repo calls = %d, want 1", calls)
	}

	key := cache.ProviderAppointmentsDayKey(providerID, 15, time.June, 2024)
	if _, ok := backend.data[key]; !ok {
		t.Fatalf("expected cache entry under %q", key)
	}

	// dia diferente, chave diferente
	if _, err := uc.Execute(ctx, providerID, 16, time.June, 2024); err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if calls != 2 {
		t.Fatalf("repo calls = %d, want 2", calls)
	}
}

func TestGetMonthAvailability_DelegatesToPolicy(t *testing.T) {
	providerID := uuid.New()
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	repo := &fakeApptRepo{
		listByProviderMonth: func(ctx context.Context, id uuid.UUID, month time.Month, year int) ([]models.Appointment, error) {
			return nil, nil
		},
	}

	uc := NewGetMonthAvailability(repo)
	uc.now = func() time.Time { return now }

	got, err := uc.Execute(context.Background(), providerID, time.June, 2024)
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if len(got) != 30 {
		t.Fatalf("entries = %d, want 30", len(got))
	}
}

func TestGetDayAvailability_DelegatesToPolicy(t *testing.T) {
	providerID := uuid.New()
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	repo := &fakeApptRepo{
		listByProviderDay: func(ctx context.Context, id uuid.UUID, day int, month time.Month, year int) ([]models.Appointment, error) {
			return nil, nil
		},
	}

	uc := NewGetDayAvailability(repo)
	uc.now = func() time.Time { return now }

	got, err := uc.Execute(context.Background(), providerID, 17, time.June, 2024)
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if len(got) != 10 {
		t.Fatalf("entries = %d, want 10", len(got))
	}
}
