package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// HoldingDB represents units of one stock held by a card.
type HoldingDB struct {
	CardID    uuid.UUID `json:"card_id" db:"card_id"`
	Symbol    string    `json:"symbol" db:"symbol"`
	Name      string    `json:"name" db:"name"`
	Units     int       `json:"units" db:"units"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Holding is a HoldingDB valued at the latest quote.
type Holding struct {
	Symbol   string          `json:"symbol"`
	Name     string          `json:"name"`
	Units    int             `json:"units"`
	PriceUSD decimal.Decimal `json:"price_usd"`
	ValueSGD decimal.Decimal `json:"value_sgd"`
}

// StockMatch is one hit of a symbol search.
type StockMatch struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}
