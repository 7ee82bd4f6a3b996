package models

import (
	"time"

	"github.com/google/uuid"
)

// Cupom de aniversário: uso único, janela de 30 dias
type DiscountCode struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`

	Code    string `gorm:"size:20;uniqueIndex;not null" json:"code"`
	Percent int    `gorm:"not null" json:"percent"`

	ClientID uuid.UUID `gorm:"type:uuid;not null" json:"client_id"`
	Client   Client    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	UsedAt    *time.Time `json:"used_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Registra qual agendamento consumiu qual cupom.
type DiscountUsage struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`

	AppointmentID  uuid.UUID `gorm:"type:uuid;not null" json:"appointment_id"`
	DiscountCodeID uuid.UUID `gorm:"type:uuid;not null" json:"discount_code_id"`

	CreatedAt time.Time `json:"created_at"`
}
