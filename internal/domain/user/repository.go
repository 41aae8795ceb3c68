package user

import (
	"context"

	"github.com/google/uuid"

	"gobarber-api/internal/models"
)

type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// ListProviders retorna usuários ativos com endereço preenchido,
	// excluindo o próprio solicitante.
	ListProviders(ctx context.Context, excludeID uuid.UUID) ([]models.User, error)

	Create(ctx context.Context, u *models.User) error
	Update(ctx context.Context, u *models.User) error
}
