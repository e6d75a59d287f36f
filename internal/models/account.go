package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CurrencySGD is the currency every kiosk account is held and dispensed in.
const CurrencySGD = "SGD"

// AccountDB represents the cash account behind a card
type AccountDB struct {
	CardID    uuid.UUID       `json:"card_id" db:"card_id"`       // Owner card
	Currency  string          `json:"currency" db:"currency"`     // Always SGD
	Balance   decimal.Decimal `json:"balance" db:"balance"`       // Current balance
	CreatedAt time.Time       `json:"created_at" db:"created_at"` // Timestamp when the account was opened
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"` // Timestamp of the last balance change
}
