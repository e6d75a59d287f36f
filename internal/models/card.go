package models

import (
	"time"

	"github.com/google/uuid"
)

// CardDB represents a kiosk card record in the database
type CardDB struct {
	CardID     uuid.UUID `json:"card_id" db:"card_id"`         // Primary key
	CardNumber string    `json:"card_number" db:"card_number"` // Luhn-valid card number
	PinHash    string    `json:"-" db:"pin_hash"`              // bcrypt hash of the six digit PIN
	HolderName string    `json:"holder_name" db:"holder_name"` // Name printed on the card
	CreatedAt  time.Time `json:"created_at" db:"created_at"`   // Creation timestamp
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`   // Last update timestamp
}
