package services

//go:generate mockgen -source=exchange.go -destination=exchange_mock.go -package=services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/logger"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/models"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/money"
	"github.com/shopspring/decimal"
)

var ErrUnsupportedCurrency = errors.New("unsupported currency")

// RatesProvider fetches conversion rates for a base currency.
type RatesProvider interface {
	GetRates(ctx context.Context, base string) (map[string]float64, error)
}

// RatesCache caches conversion rates per base currency.
type RatesCache interface {
	GetRates(ctx context.Context, base string) (map[string]float64, error)
	SetRates(ctx context.Context, base string, rates map[string]float64) error
}

// ExchangeWithdrawal is a completed SGD withdrawal meant for conversion.
type ExchangeWithdrawal struct {
	TransactionID uuid.UUID
	Currency      string
	SGDAmount     decimal.Decimal
	Converted     decimal.Decimal
	Balance       decimal.Decimal
	Message       string
}

// ExchangeService quotes SGD conversions and withdraws the SGD side.
type ExchangeService struct {
	provider RatesProvider
	cache    RatesCache
	accounts AccountStore
	ledger   TransactionRecorder
}

func NewExchangeService(provider RatesProvider, cache RatesCache, accounts AccountStore, ledger TransactionRecorder) *ExchangeService {
	return &ExchangeService{provider: provider, cache: cache, accounts: accounts, ledger: ledger}
}

// Rates returns SGD-based rates, from the cache when it has them.
func (s *ExchangeService) Rates(ctx context.Context) (map[string]float64, error) {
	rates, err := s.cache.GetRates(ctx, models.CurrencySGD)
	if err == nil {
		return rates, nil
	}

	rates, err = s.provider.GetRates(ctx, models.CurrencySGD)
	if err != nil {
		logger.Log.Errorw("failed to get exchange rates", "base", models.CurrencySGD, "error", err)
		return nil, err
	}

	if err := s.cache.SetRates(ctx, models.CurrencySGD, rates); err != nil {
		logger.Log.Errorw("failed to cache exchange rates", "base", models.CurrencySGD, "error", err)
	}
	return rates, nil
}

func (s *ExchangeService) rate(ctx context.Context, currency string) (float64, error) {
	rates, err := s.Rates(ctx)
	if err != nil {
		return 0, err
	}
	rate, ok := rates[strings.ToUpper(currency)]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedCurrency, currency)
	}
	return rate, nil
}

// Convert returns sgdAmount in currency, rounded to cents.
func (s *ExchangeService) Convert(ctx context.Context, currency string, sgdAmount decimal.Decimal) (decimal.Decimal, error) {
	amount, err := money.Positive(sgdAmount)
	if err != nil {
		return decimal.Zero, err
	}
	rate, err := s.rate(ctx, currency)
	if err != nil {
		return decimal.Zero, err
	}
	return money.Convert(amount, rate), nil
}

// Withdraw debits sgdAmount for conversion into currency.
func (s *ExchangeService) Withdraw(ctx context.Context, cardID uuid.UUID, currency string, sgdAmount decimal.Decimal) (*ExchangeWithdrawal, error) {
	amount, err := money.Positive(sgdAmount)
	if err != nil {
		return nil, err
	}
	currency = strings.ToUpper(currency)
	rate, err := s.rate(ctx, currency)
	if err != nil {
		return nil, err
	}
	converted := money.Convert(amount, rate)

	balance, err := debit(ctx, s.accounts, cardID, amount)
	if err != nil {
		return nil, err
	}

	txn, err := newTransaction(cardID, models.OperationExchangeWithdrawal, amount, map[string]any{
		"currency":  currency,
		"rate":      rate,
		"converted": converted,
	})
	if err != nil {
		return nil, err
	}
	if err := s.ledger.Record(ctx, txn); err != nil {
		return nil, err
	}

	return &ExchangeWithdrawal{
		TransactionID: txn.TransactionID,
		Currency:      currency,
		SGDAmount:     amount,
		Converted:     converted,
		Balance:       balance,
		Message:       fmt.Sprintf("Your withdrawal of %s has been successfully processed.", money.Format(amount)),
	}, nil
}
