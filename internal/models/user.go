package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Surname string `gorm:"size:100;not null" json:"surname"`

	// Address preenchido = usuário é prestador (aparece na lista de providers)
	Address *string `gorm:"size:255" json:"address"`

	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Avatar       string `gorm:"size:255" json:"avatar"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	IsActive     bool   `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

func (u *User) IsProvider() bool {
	return u.Address != nil && *u.Address != ""
}
