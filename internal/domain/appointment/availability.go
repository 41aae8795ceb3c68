package appointment

import (
	"time"

	"gobarber-api/internal/models"
)

// ===============================
// Política de disponibilidade
// ===============================

const (
	// limite de agendamentos por dia antes de fechar o dia no calendário
	MaxBookingsPerDay = 10

	// janela de atendimento, horas locais inclusivas
	DayStartHour = 8
	DayEndHour   = 17
)

// Deslocamento fixo entre UTC (persistido) e o horário local assumido.
// Sem tabela de timezone e sem horário de verão: o legado sempre aplicou
// exatamente -3/+3, o ano inteiro. Qualquer revisão dessa política deve
// acontecer aqui, nunca nos pontos de uso.
const fixedUTCOffsetHours = 3

// LocalHour converte o horário persistido (UTC) para a hora local assumida.
func LocalHour(date time.Time) int {
	return date.UTC().Hour() - fixedUTCOffsetHours
}

// SlotInstant reconstrói o instante UTC de um slot a partir da hora local.
func SlotInstant(year int, month time.Month, day, localHour int) time.Time {
	return time.Date(year, month, day, localHour+fixedUTCOffsetHours, 0, 0, 0, time.UTC)
}

// ===============================
// Tipos derivados (nunca persistidos)
// ===============================

type DayAvailability struct {
	Day       int  `json:"day"`
	Available bool `json:"available"`
}

type HourAvailability struct {
	Hour      int  `json:"hour"`
	Available bool `json:"available"`
}

// ===============================
// Cálculo
// ===============================

// MonthAvailability enumera todos os dias do mês e marca cada um como
// disponível enquanto houver menos de MaxBookingsPerDay agendamentos e o
// fim do dia (23:59:59, comparação ingênua em UTC) ainda não passou.
func MonthAvailability(
	apps []models.Appointment,
	year int,
	month time.Month,
	now time.Time,
) []DayAvailability {

	perDay := make(map[int]int, len(apps))
	for _, ap := range apps {
		perDay[ap.Date.UTC().Day()]++
	}

	nowUTC := now.UTC()
	days := daysInMonth(year, month)

	out := make([]DayAvailability, 0, days)
	for day := 1; day <= days; day++ {
		endOfDay := time.Date(year, month, day, 23, 59, 59, 0, time.UTC)
		out = append(out, DayAvailability{
			Day:       day,
			Available: perDay[day] < MaxBookingsPerDay && nowUTC.Before(endOfDay),
		})
	}

	return out
}

// DayAvailabilityHours enumera os slots de DayStartHour..DayEndHour.
// Um agendamento bloqueia o slot cuja hora local coincide com a sua;
// slots no passado e em fins de semana nunca ficam disponíveis,
// independente de haver agendamento.
func DayAvailabilityHours(
	apps []models.Appointment,
	year int,
	month time.Month,
	day int,
	now time.Time,
) []HourAvailability {

	blocked := make(map[int]bool, len(apps))
	for _, ap := range apps {
		blocked[LocalHour(ap.Date)] = true
	}

	nowUTC := now.UTC()

	out := make([]HourAvailability, 0, DayEndHour-DayStartHour+1)
	for hour := DayStartHour; hour <= DayEndHour; hour++ {
		instant := SlotInstant(year, month, day, hour)
		available := !blocked[hour] &&
			nowUTC.Before(instant) &&
			isBusinessDay(instant)

		out = append(out, HourAvailability{Hour: hour, Available: available})
	}

	return out
}

func isBusinessDay(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

func daysInMonth(year int, month time.Month) int {
	// dia 0 do mês seguinte = último dia deste mês
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
