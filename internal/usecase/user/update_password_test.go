package user

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"gobarber-api/internal/httperr"
	"gobarber-api/internal/models"
)

func userWithPassword(t *testing.T, password string) *models.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return &models.User{
		ID: uuid.New(), Name: "Ana", Surname: "Lima",
		Email: "ana@example.com", PasswordHash: string(hashed),
	}
}

func TestUpdatePassword_WrongCurrentPassword(t *testing.T) {
	target := userWithPassword(t, "senha-atual")
	users := &fakeUserRepo{users: map[uuid.UUID]*models.User{target.ID: target}}

	err := NewUpdatePassword(users).Execute(context.Background(), UpdatePasswordInput{
		UserID:      target.ID,
		OldPassword: "senha-errada",
		NewPassword: "senha-nova",
	})
	if httperr.BusinessCode(err) != httperr.CodeInvalidPassword {
		t.Fatalf("error = %v, want %s", err, httperr.CodeInvalidPassword)
	}
	if users.updated != nil {
		t.Fatal("password must not be persisted when the current one is wrong")
	}
}

func TestUpdatePassword_UserNotFound(t *testing.T) {
	users := &fakeUserRepo{users: map[uuid.UUID]*models.User{}}

	err := NewUpdatePassword(users).Execute(context.Background(), UpdatePasswordInput{
		UserID:      uuid.New(),
		OldPassword: "senha-atual",
		NewPassword: "senha-nova",
	})
	if httperr.BusinessCode(err) != httperr.CodeUserNotFound {
		t.Fatalf("error = %v, want %s", err, httperr.CodeUserNotFound)
	}
}

func TestUpdatePassword_Success(t *testing.T) {
	target := userWithPassword(t, "senha-atual")
	oldHash := target.PasswordHash
	users := &fakeUserRepo{users: map[uuid.UUID]*models.User{target.ID: target}}

	err := NewUpdatePassword(users).Execute(context.Background(), UpdatePasswordInput{
		UserID:      target.ID,
		OldPassword: "senha-atual",
		NewPassword: "senha-nova",
	})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if users.updated == nil {
		t.Fatal("expected the user to be persisted")
	}
	if users.updated.PasswordHash == oldHash {
		t.Fatal("hash should have been replaced")
	}
	if bcrypt.CompareHashAndPassword([]byte(users.updated.PasswordHash), []byte("senha-nova")) != nil {
		t.Fatal("new password should verify against the stored hash")
	}
}
