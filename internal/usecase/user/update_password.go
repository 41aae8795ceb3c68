package user

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	domain "gobarber-api/internal/domain/user"
	"gobarber-api/internal/httperr"
)

// ======================================================
// INPUT
// ======================================================

type UpdatePasswordInput struct {
	UserID      uuid.UUID
	OldPassword string
	NewPassword string
}

// ======================================================
// USE CASE
// ======================================================

type UpdatePassword struct {
	users domain.Repository
}

func NewUpdatePassword(users domain.Repository) *UpdatePassword {
	return &UpdatePassword{users: users}
}

// Execute troca a senha do usuário após conferir a senha atual.
// Nenhum cache depende da senha, então não há invalidação aqui.
func (uc *UpdatePassword) Execute(
	ctx context.Context,
	in UpdatePasswordInput,
) error {

	u, err := uc.users.FindByID(ctx, in.UserID)
	if err != nil {
		return err
	}
	if u == nil {
		return httperr.ErrBusiness(httperr.CodeUserNotFound)
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.OldPassword)) != nil {
		return httperr.ErrBusiness(httperr.CodeInvalidPassword)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u.PasswordHash = string(hashed)
	return uc.users.Update(ctx, u)
}
