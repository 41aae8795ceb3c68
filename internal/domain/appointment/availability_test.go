package appointment

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"gobarber-api/internal/models"
)

func apptAt(providerID uuid.UUID, date time.Time) models.Appointment {
	return models.Appointment{
		ID:         uuid.New(),
		ProviderID: providerID,
		UserID:     uuid.New(),
		Date:       date,
	}
}

func TestMonthAvailability_OneEntryPerDayAscending(t *testing.T) {
	now := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		year  int
		month time.Month
		days  int
	}{
		{2024, time.February, 29}, // bissexto
		{2023, time.February, 28},
		{2024, time.June, 30},
		{2024, time.December, 31},
	}

	for _, tc := range cases {
		got := MonthAvailability(nil, tc.year, tc.month, now)
		if len(got) != tc.days {
			t.Fatalf("%d-%02d: entries = %d, want %d", tc.year, tc.month, len(got), tc.days)
		}
		for i, day := range got {
			if day.Day != i+1 {
				t.Fatalf("%d-%02d: entry %d has day %d", tc.year, tc.month, i, day.Day)
			}
		}
	}
}

func TestMonthAvailability_FullDayIsClosed(t *testing.T) {
	provider := uuid.New()
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	var apps []models.Appointment
	for hour := 8; hour < 18; hour++ { // 10 agendamentos no dia 15
		apps = append(apps, apptAt(provider, time.Date(2024, time.June, 15, hour+3, 0, 0, 0, time.UTC)))
	}
	apps = append(apps, apptAt(provider, time.Date(2024, time.June, 16, 11, 0, 0, 0, time.UTC)))

	got := MonthAvailability(apps, 2024, time.June, now)

	if got[14].Available {
		t.Fatal("day 15 has 10 bookings, want unavailable")
	}
	if !got[15].Available {
		t.Fatal("day 16 has 1 booking, want available")
	}
	if !got[16].Available {
		t.Fatal("day 17 has no bookings, want available")
	}
}

func TestMonthAvailability_PastDaysAreClosed(t *testing.T) {
	now := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)

	got := MonthAvailability(nil, 2024, time.June, now)

	// fim do dia 9 (23:59:59 UTC) já passou; o dia 10 ainda não acabou
	if got[8].Available {
		t.Fatal("day 9 is in the past, want unavailable")
	}
	if !got[9].Available {
		t.Fatal("day 10 has not ended, want available")
	}
	if !got[29].Available {
		t.Fatal("day 30 is in the future, want available")
	}
}

func TestDayAvailabilityHours_TenSlotsAscending(t *testing.T) {
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	got := DayAvailabilityHours(nil, 2024, time.June, 17, now)

	if len(got) != 10 {
		t.Fatalf("entries = %d, want 10", len(got))
	}
	for i, slot := range got {
		if slot.Hour != 8+i {
			t.Fatalf("entry %d has hour %d, want %d", i, slot.Hour, 8+i)
		}
	}
}

func TestDayAvailabilityHours_BlockedByBookings(t *testing.T) {
	provider := uuid.New()
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	// UTC 11, 14 e 16 = horas locais 8, 11 e 13
	apps := []models.Appointment{
		apptAt(provider, time.Date(2024, time.June, 17, 11, 0, 0, 0, time.UTC)),
		apptAt(provider, time.Date(2024, time.June, 17, 14, 0, 0, 0, time.UTC)),
		apptAt(provider, time.Date(2024, time.June, 17, 16, 0, 0, 0, time.UTC)),
	}

	// 2024-06-17 é segunda-feira
	got := DayAvailabilityHours(apps, 2024, time.June, 17, now)

	want := map[int]bool{
		8: false, 9: true, 10: true, 11: false, 12: true,
		13: false, 14: true, 15: true, 16: true, 17: true,
	}
	for _, slot := range got {
		if slot.Available != want[slot.Hour] {
			t.Fatalf("hour %d available = %v, want %v", slot.Hour, slot.Available, want[slot.Hour])
		}
	}
}

func TestDayAvailabilityHours_WeekendNeverAvailable(t *testing.T) {
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	// 2024-06-15 é sábado, 2024-06-16 é domingo
	for _, day := range []int{15, 16} {
		got := DayAvailabilityHours(nil, 2024, time.June, day, now)
		for _, slot := range got {
			if slot.Available {
				t.Fatalf("day %d hour %d is on a weekend, want unavailable", day, slot.Hour)
			}
		}
	}
}

func TestDayAvailabilityHours_PastSlotsAreClosed(t *testing.T) {
	// meio-dia UTC de uma segunda: slots cujo instante UTC (hora local +3)
	// já passou ficam indisponíveis
	now := time.Date(2024, time.June, 17, 12, 0, 0, 0, time.UTC)

	got := DayAvailabilityHours(nil, 2024, time.June, 17, now)

	for _, slot := range got {
		instant := SlotInstant(2024, time.June, 17, slot.Hour)
		wantAvailable := now.Before(instant)
		if slot.Available != wantAvailable {
			t.Fatalf("hour %d available = %v, want %v", slot.Hour, slot.Available, wantAvailable)
		}
	}
}

func TestFixedOffsetRoundTrip(t *testing.T) {
	date := time.Date(2024, time.June, 17, 11, 0, 0, 0, time.UTC)

	if got := LocalHour(date); got != 8 {
		t.Fatalf("LocalHour = %d, want 8", got)
	}
	if got := SlotInstant(2024, time.June, 17, 8); !got.Equal(date) {
		t.Fatalf("SlotInstant = %v, want %v", got, date)
	}
}
