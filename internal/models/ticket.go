package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Event is one entry of the ticketing catalogue.
type Event struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url"`
}

// TicketDB represents a ticket booking.
type TicketDB struct {
	Reference string          `json:"reference" db:"reference"` // ULID booking reference
	CardID    uuid.UUID       `json:"card_id" db:"card_id"`
	EventID   string          `json:"event_id" db:"event_id"`
	Quantity  int             `json:"quantity" db:"quantity"`
	Email     string          `json:"email" db:"email"`
	Total     decimal.Decimal `json:"total" db:"total"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
}
