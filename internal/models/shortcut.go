package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Shortcut types offered on the shortcuts screen.
const (
	ShortcutCashWithdrawal = "Cash Withdrawal"
	ShortcutFundTransfer   = "Fund Transfer"
)

// MaxShortcuts is how many shortcuts a card may keep.
const MaxShortcuts = 3

// ShortcutDB represents a saved shortcut transaction.
type ShortcutDB struct {
	ShortcutID uuid.UUID       `json:"shortcut_id" db:"shortcut_id"`
	CardID     uuid.UUID       `json:"card_id" db:"card_id"`
	Type       string          `json:"type" db:"type"`
	Amount     decimal.Decimal `json:"amount" db:"amount"`
	CreatedAt  time.Time       `json:"created_at" db:"created_at"`
}
