package dto

import (
	"github.com/google/uuid"

	"gobarber-api/internal/models"
)

type ProviderDTO struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Surname string    `json:"surname"`
	Email   string    `json:"email"`
	Address string    `json:"address"`
	Avatar  string    `json:"avatar"`
}

func FromProviders(users []models.User) []ProviderDTO {
	out := make([]ProviderDTO, 0, len(users))
	for _, u := range users {
		address := ""
		if u.Address != nil {
			address = *u.Address
		}
		out = append(out, ProviderDTO{
			ID:      u.ID,
			Name:    u.Name,
			Surname: u.Surname,
			Email:   u.Email,
			Address: address,
			Avatar:  u.Avatar,
		})
	}
	return out
}
