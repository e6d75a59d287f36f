package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Operations recorded in the transaction history.
const (
	OperationWithdrawal         = "withdrawal"
	OperationExchangeWithdrawal = "exchange_withdrawal"
	OperationTransfer           = "transfer"
	OperationLiquidation        = "liquidation"
	OperationTicket             = "ticket"
)

// TransactionDB represents one row of a card's transaction history.
type TransactionDB struct {
	TransactionID uuid.UUID       `json:"transaction_id" db:"transaction_id"`
	CardID        uuid.UUID       `json:"card_id" db:"card_id"`
	Operation     string          `json:"operation" db:"operation"`
	Amount        decimal.Decimal `json:"amount" db:"amount"`
	Currency      string          `json:"currency" db:"currency"`
	AccountNo     *string         `json:"account_no,omitempty" db:"account_no"` // Destination account for transfers
	Details       []byte          `json:"details,omitempty" db:"details"`       // JSON payload, e.g. the note breakdown
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
}

// TransactionEvent is published to Kafka for every completed transaction.
type TransactionEvent struct {
	TransactionID string  `json:"transaction_id"` // TransactionID is a unique identifier for the transaction.
	Timestamp     int64   `json:"timestamp"`      // Timestamp is the Unix timestamp (in seconds) when the transaction occurred.
	Amount        float64 `json:"amount"`         // Amount is the monetary value of the transaction.
	Currency      string  `json:"currency"`       // Currency of the amount.
	CardID        string  `json:"card_id"`        // CardID identifies the card that initiated the transaction.
	Operation     string  `json:"operation"`      // Operation is one of the Operation* constants.
}
