package user

import (
	"context"
	"log"

	"github.com/google/uuid"

	"gobarber-api/internal/cache"
	apptdomain "gobarber-api/internal/domain/appointment"
	"gobarber-api/internal/models"
)

// ProfileCacheInvalidator derruba as entradas de cache que dependem de um
// perfil. As relações são resolvidas por consultas explícitas ao
// repositório; o cache só recebe listas de ids.
type ProfileCacheInvalidator struct {
	appointments apptdomain.Repository
	cache        *cache.Cache
}

func NewProfileCacheInvalidator(
	appointments apptdomain.Repository,
	c *cache.Cache,
) *ProfileCacheInvalidator {
	return &ProfileCacheInvalidator{appointments: appointments, cache: c}
}

// Execute roda após qualquer mudança de perfil. Como cliente, o usuário
// aparece no calendário de cada prestador com quem já agendou; como
// prestador, aparece na lista de agendamentos de cada cliente e no
// diretório de prestadores. Falha aqui nunca derruba a operação: o TTL
// converge o que sobrar.
func (inv *ProfileCacheInvalidator) Execute(ctx context.Context, u *models.User) {
	asCustomer, err := inv.appointments.ListByUser(ctx, u.ID)
	if err != nil {
		log.Println("cache invalidation query error:", err)
	} else {
		providerIDs := make([]uuid.UUID, 0, len(asCustomer))
		for _, ap := range asCustomer {
			providerIDs = append(providerIDs, ap.ProviderID)
		}
		inv.cache.InvalidateProviderCaches(ctx, providerIDs)
	}

	if !u.IsProvider() {
		return
	}

	asProvider, err := inv.appointments.ListByProvider(ctx, u.ID)
	if err != nil {
		log.Println("cache invalidation query error:", err)
	} else {
		userIDs := make([]uuid.UUID, 0, len(asProvider))
		for _, ap := range asProvider {
			userIDs = append(userIDs, ap.UserID)
		}
		inv.cache.InvalidateUserCaches(ctx, userIDs)
	}

	// o diretório de prestadores mudou
	inv.cache.DeletePrefix(ctx, cache.ProvidersListPrefix)
}
