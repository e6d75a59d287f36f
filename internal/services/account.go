package services

//go:generate mockgen -source=account.go -destination=account_mock.go -package=services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/logger"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/models"
	"github.com/shopspring/decimal"
)

const (
	defaultHistoryLimit = 10
	maxHistoryLimit     = 50
)

var (
	// ErrInsufficientFunds is returned when a card tries to take out more than its balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// AccountStore reads and changes the card's SGD balance.
type AccountStore interface {
	Credit(ctx context.Context, cardID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error)
	Debit(ctx context.Context, cardID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error)
	GetBalance(ctx context.Context, cardID uuid.UUID) (decimal.Decimal, error)
}

// TransactionReader lists the card's transaction history.
type TransactionReader interface {
	ListByCardID(ctx context.Context, cardID uuid.UUID, limit int) ([]models.TransactionDB, error)
}

// TransactionRecorder records a completed transaction.
type TransactionRecorder interface {
	Record(ctx context.Context, txn *models.TransactionDB) error
}

// AccountService answers balance and history queries.
type AccountService struct {
	accounts AccountStore
	history  TransactionReader
}

func NewAccountService(accounts AccountStore, history TransactionReader) *AccountService {
	return &AccountService{accounts: accounts, history: history}
}

// Balance returns the card's SGD balance.
func (s *AccountService) Balance(ctx context.Context, cardID uuid.UUID) (decimal.Decimal, error) {
	balance, err := s.accounts.GetBalance(ctx, cardID)
	if err != nil {
		logger.Log.Errorw("failed to get balance", "cardID", cardID, "error", err)
		return decimal.Zero, err
	}
	return balance, nil
}

// History returns up to limit of the newest transactions; limit falls back to 10 and is capped at 50.
func (s *AccountService) History(ctx context.Context, cardID uuid.UUID, limit int) ([]models.TransactionDB, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	txns, err := s.history.ListByCardID(ctx, cardID, limit)
	if err != nil {
		logger.Log.Errorw("failed to list transactions", "cardID", cardID, "error", err)
		return nil, err
	}
	return txns, nil
}

// debit takes amount off the card, mapping a refused update to ErrInsufficientFunds.
func debit(ctx context.Context, accounts AccountStore, cardID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error) {
	balance, err := accounts.Debit(ctx, cardID, amount)
	if errors.Is(err, sql.ErrNoRows) {
		logger.Log.Infow("insufficient funds", "cardID", cardID, "amount", amount)
		return decimal.Zero, ErrInsufficientFunds
	}
	if err != nil {
		logger.Log.Errorw("failed to debit account", "cardID", cardID, "amount", amount, "error", err)
		return decimal.Zero, err
	}
	return balance, nil
}

// newTransaction builds a history row; details is marshalled to JSON when not nil.
func newTransaction(cardID uuid.UUID, operation string, amount decimal.Decimal, details any) (*models.TransactionDB, error) {
	txn := &models.TransactionDB{
		TransactionID: uuid.New(),
		CardID:        cardID,
		Operation:     operation,
		Amount:        amount,
		Currency:      models.CurrencySGD,
		CreatedAt:     time.Now().UTC(),
	}
	if details != nil {
		data, err := json.Marshal(details)
		if err != nil {
			return nil, err
		}
		txn.Details = data
	}
	return txn, nil
}
