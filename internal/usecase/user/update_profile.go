package user

import (
	"context"

	"github.com/google/uuid"

	domain "gobarber-api/internal/domain/user"
	"gobarber-api/internal/httperr"
	"gobarber-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type UpdateProfileInput struct {
	UserID  uuid.UUID
	Name    string
	Surname string
	Email   string

	// nil ou vazio mantém o endereço atual; preencher endereço é o que
	// torna o usuário um prestador
	Address *string
}

// ======================================================
// USE CASE
// ======================================================

type UpdateProfile struct {
	users       domain.Repository
	invalidator *ProfileCacheInvalidator
}

func NewUpdateProfile(
	users domain.Repository,
	invalidator *ProfileCacheInvalidator,
) *UpdateProfile {
	return &UpdateProfile{
		users:       users,
		invalidator: invalidator,
	}
}

func (uc *UpdateProfile) Execute(
	ctx context.Context,
	in UpdateProfileInput,
) (*models.User, error) {

	byEmail, err := uc.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if byEmail != nil && byEmail.ID != in.UserID {
		return nil, httperr.ErrBusiness(httperr.CodeEmailTaken)
	}

	u, err := uc.users.FindByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, httperr.ErrBusiness(httperr.CodeUserNotFound)
	}

	u.Name = in.Name
	u.Surname = in.Surname
	u.Email = in.Email
	if in.Address != nil && *in.Address != "" {
		u.Address = in.Address
	}
	// avatar e is_active não são editáveis por aqui

	if err := uc.users.Update(ctx, u); err != nil {
		return nil, err
	}

	uc.invalidator.Execute(ctx, u)

	return u, nil
}
