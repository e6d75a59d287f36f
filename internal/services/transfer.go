package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/logger"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/models"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/money"
	"github.com/shopspring/decimal"
)

var ErrInvalidAccountNumber = errors.New("invalid account number")

// accountPattern matches account numbers such as 123-456786-001.
var accountPattern = regexp.MustCompile(`^\d{3}-\d{5}6-001$`)

// Transfer is a completed fund transfer.
type Transfer struct {
	TransactionID uuid.UUID
	AccountNumber string
	Amount        decimal.Decimal
	Balance       decimal.Decimal
	Message       string
}

// TransferService moves money from the card account to an external account.
type TransferService struct {
	accounts AccountStore
	ledger   TransactionRecorder
}

func NewTransferService(accounts AccountStore, ledger TransactionRecorder) *TransferService {
	return &TransferService{accounts: accounts, ledger: ledger}
}

func (s *TransferService) Transfer(ctx context.Context, cardID uuid.UUID, accountNumber string, amount decimal.Decimal) (*Transfer, error) {
	if !accountPattern.MatchString(accountNumber) {
		return nil, ErrInvalidAccountNumber
	}
	amount, err := money.Positive(amount)
	if err != nil {
		return nil, err
	}

	balance, err := debit(ctx, s.accounts, cardID, amount)
	if err != nil {
		return nil, err
	}

	txn, err := newTransaction(cardID, models.OperationTransfer, amount, nil)
	if err != nil {
		return nil, err
	}
	txn.AccountNo = &accountNumber
	if err := s.ledger.Record(ctx, txn); err != nil {
		return nil, err
	}

	logger.Log.Infow("funds transferred", "cardID", cardID, "account", accountNumber, "amount", amount)

	return &Transfer{
		TransactionID: txn.TransactionID,
		AccountNumber: accountNumber,
		Amount:        amount,
		Balance:       balance,
		Message:       fmt.Sprintf("Your transfer of %s to account %s has been successfully processed.", money.Format(amount), accountNumber),
	}, nil
}
