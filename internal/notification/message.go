package notification

import (
	"fmt"
	"time"

	"gobarber-api/internal/timezone"
)

var monthNames = [...]string{
	time.January:   "Janeiro",
	time.February:  "Fevereiro",
	time.March:     "Março",
	time.April:     "Abril",
	time.May:       "Maio",
	time.June:      "Junho",
	time.July:      "Julho",
	time.August:    "Agosto",
	time.September: "Setembro",
	time.October:   "Outubro",
	time.November:  "Novembro",
	time.December:  "Dezembro",
}

// FormatBookingMessage monta a mensagem enviada ao prestador quando um
// agendamento é criado. A hora é exibida em America/Sao_Paulo.
func FormatBookingMessage(name, surname string, date time.Time) string {
	local := date.In(timezone.Location(timezone.DefaultTimezone))

	return fmt.Sprintf(
		"Novo agendamento de %s %s para o dia %02d de %s, às %02d:%02dh",
		name,
		surname,
		date.Day(),
		monthNames[date.Month()],
		local.Hour(),
		local.Minute(),
	)
}
