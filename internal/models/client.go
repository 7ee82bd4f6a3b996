package models

import (
	"time"

	"github.com/google/uuid"
)

// Cliente da barbearia, sem login próprio
type Client struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:20;not null" json:"phone"`
	Email string `gorm:"size:100" json:"email"`

	BirthDate   *time.Time `json:"birth_date"`
	Preferences string     `gorm:"type:text" json:"preferences"`

	// acumulado mas nunca creditado; mantido para compatibilidade de dados
	LoyaltyPoints int `gorm:"default:0" json:"loyalty_points"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
