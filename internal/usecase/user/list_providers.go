package user

import (
	"context"

	"github.com/google/uuid"

	"gobarber-api/internal/cache"
	domain "gobarber-api/internal/domain/user"
	"gobarber-api/internal/dto"
)

// ListProviders lista o diretório de prestadores visível para um usuário,
// read-through em providers-list:{id}.
type ListProviders struct {
	users domain.Repository
	cache *cache.Cache
}

func NewListProviders(users domain.Repository, c *cache.Cache) *ListProviders {
	return &ListProviders{users: users, cache: c}
}

func (uc *ListProviders) Execute(
	ctx context.Context,
	userID uuid.UUID,
) ([]dto.ProviderDTO, error) {

	key := cache.ProvidersListKey(userID)

	var cached []dto.ProviderDTO
	if uc.cache.Get(ctx, key, &cached) {
		return cached, nil
	}

	providers, err := uc.users.ListProviders(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := dto.FromProviders(providers)
	uc.cache.Set(ctx, key, out)

	return out, nil
}
