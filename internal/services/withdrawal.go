package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/denominations"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/logger"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/models"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/money"
	"github.com/shopspring/decimal"
)

// Withdrawal is a completed cash withdrawal.
type Withdrawal struct {
	TransactionID uuid.UUID
	Amount        int
	Selection     denominations.Selection
	Balance       decimal.Decimal
	Message       string
}

// WithdrawalService resolves note breakdowns and pays cash out of the card account.
type WithdrawalService struct {
	accounts     AccountStore
	ledger       TransactionRecorder
	quickAmounts []int
}

func NewWithdrawalService(accounts AccountStore, ledger TransactionRecorder, quickAmounts []int) *WithdrawalService {
	return &WithdrawalService{accounts: accounts, ledger: ledger, quickAmounts: quickAmounts}
}

// QuickAmounts returns the preset amounts offered on the withdraw screen.
func (s *WithdrawalService) QuickAmounts() []int {
	out := make([]int, len(s.quickAmounts))
	copy(out, s.quickAmounts)
	return out
}

// Validate checks a selection against amount.
func (s *WithdrawalService) Validate(amount int, sel denominations.Selection) (denominations.Result, error) {
	return denominations.Validate(amount, sel)
}

// Suggest proposes a breakdown of amount.
func (s *WithdrawalService) Suggest(amount int) (denominations.Selection, error) {
	return denominations.Suggest(amount)
}

// Withdraw debits amount and records the withdrawal with its note breakdown.
// A nil sel takes the suggested breakdown. A selection that does not add up
// to amount fails with *denominations.MismatchError before the account is touched.
func (s *WithdrawalService) Withdraw(ctx context.Context, cardID uuid.UUID, amount int, sel denominations.Selection) (*Withdrawal, error) {
	var err error
	if sel == nil {
		sel, err = denominations.Suggest(amount)
		if err != nil {
			return nil, err
		}
	}

	res, err := denominations.Validate(amount, sel)
	if err != nil {
		return nil, err
	}
	if err := res.Err(); err != nil {
		return nil, err
	}

	total := money.FromUnits(amount)
	balance, err := debit(ctx, s.accounts, cardID, total)
	if err != nil {
		return nil, err
	}

	txn, err := newTransaction(cardID, models.OperationWithdrawal, total, res.Selection)
	if err != nil {
		return nil, err
	}
	if err := s.ledger.Record(ctx, txn); err != nil {
		return nil, err
	}

	logger.Log.Infow("cash withdrawn", "cardID", cardID, "amount", amount, "notes", res.Selection)

	return &Withdrawal{
		TransactionID: txn.TransactionID,
		Amount:        amount,
		Selection:     res.Selection,
		Balance:       balance,
		Message:       fmt.Sprintf("Your withdrawal of %s has been successfully processed.", money.Format(total)),
	}, nil
}
