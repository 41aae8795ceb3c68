package cache

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Chaves de cache centralizadas num lugar só. Os formatos são contrato
// externo: dados já cacheados por versões anteriores usam exatamente
// estes nomes, então nada aqui pode mudar de forma.

func ProviderAppointmentsDayKey(providerID uuid.UUID, day int, month time.Month, year int) string {
	return fmt.Sprintf(
		"providers-appointments:%s:%d:%d:%d",
		providerID, year, int(month), day,
	)
}

func ProviderAppointmentsPrefix(providerID uuid.UUID) string {
	return fmt.Sprintf("providers-appointments:%s", providerID)
}

func UserAppointmentsKey(userID uuid.UUID) string {
	return fmt.Sprintf("user-appointments:%s", userID)
}

func ProvidersListKey(userID uuid.UUID) string {
	return fmt.Sprintf("providers-list:%s", userID)
}

const ProvidersListPrefix = "providers-list"
