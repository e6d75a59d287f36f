package services

//go:generate mockgen -source=investment.go -destination=investment_mock.go -package=services

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
	"golang.org/x/sync/errgroup"
)

// USDToSGD is the fixed conversion applied to USD quotes.
var USDToSGD = decimal.RequireFromString("1.35")

const quoteConcurrency = 4

var (
	ErrHoldingNotFound = errors.New("holding not found")
	ErrInvalidUnits    = errors.New("invalid number of units")
	ErrInvalidSymbol   = errors.New("invalid symbol")
)

// HoldingStore persists investment holdings.
type HoldingStore interface {
	ListByCardID(ctx context.Context, cardID uuid.UUID) ([]models.HoldingDB, error)
	Get(ctx context.Context, cardID uuid.UUID, symbol string) (*models.HoldingDB, error)
	AddUnits(ctx context.Context, cardID uuid.UUID, symbol, name string, units int) (int, error)
	SetUnits(ctx context.Context, cardID uuid.UUID, symbol string, units int) error
}

// QuoteProvider reads stock prices in USD.
type QuoteProvider interface {
	LatestClose(ctx context.Context, symbol string) (decimal.Decimal, error)
	Search(ctx context.Context, keywords string) ([]models.StockMatch, error)
}

// QuoteCache caches the latest close per symbol.
type QuoteCache interface {
	GetQuote(ctx context.Context, symbol string) (decimal.Decimal, error)
	SetQuote(ctx context.Context, symbol string, price decimal.Decimal) error
}

// Liquidation is a completed sale of units paid out in cash.
type Liquidation struct {
	TransactionID  uuid.UUID
	Symbol         string
	Units          int
	RemainingUnits int
	PriceUSD       decimal.Decimal
	Amount         decimal.Decimal
	Message        string
}

// InvestmentService values, buys and liquidates stock holdings.
type InvestmentService struct {
	holdings HoldingStore
	quotes   QuoteProvider
	cache    QuoteCache
	ledger   TransactionRecorder
}

func NewInvestmentService(holdings HoldingStore, quotes QuoteProvider, cache QuoteCache, ledger TransactionRecorder) *InvestmentService {
	return &InvestmentService{holdings: holdings, quotes: quotes, cache: cache, ledger: ledger}
}

func (s *InvestmentService) quote(ctx context.Context, symbol string) (decimal.Decimal, error) {
	if price, err := s.cache.GetQuote(ctx, symbol); err == nil {
		return price, nil
	}

	price, err := s.quotes.LatestClose(ctx, symbol)
	if err != nil {
		logger.Log.Errorw("failed to get quote", "symbol", symbol, "error", err)
		return decimal.Zero, err
	}

	if err := s.cache.SetQuote(ctx, symbol, price); err != nil {
		logger.Log.Errorw("failed to cache quote", "symbol", symbol, "error", err)
	}
	return price, nil
}

// Portfolio returns every holding valued at its latest close.
func (s *InvestmentService) Portfolio(ctx context.Context, cardID uuid.UUID) ([]models.Holding, error) {
	rows, err := s.holdings.ListByCardID(ctx, cardID)
	if err != nil {
		logger.Log.Errorw("failed to list holdings", "cardID", cardID, "error", err)
		return nil, err
	}

	out := make([]models.Holding, len(rows))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(quoteConcurrency)
	for i, h := range rows {
		g.Go(func() error {
			price, err := s.quote(gctx, h.Symbol)
			if err != nil {
				return fmt.Errorf("quote %s: %w", h.Symbol, err)
			}
			out[i] = models.Holding{
				Symbol:   h.Symbol,
				Name:     h.Name,
				Units:    h.Units,
				PriceUSD: price,
				ValueSGD: money.Cents(price.Mul(USDToSGD).Mul(decimal.NewFromInt(int64(h.Units)))),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Search looks up symbols by keywords.
func (s *InvestmentService) Search(ctx context.Context, keywords string) ([]models.StockMatch, error) {
	keywords = strings.TrimSpace(keywords)
	if keywords == "" {
		return []models.StockMatch{}, nil
	}
	return s.quotes.Search(ctx, keywords)
}

// Buy adds units of symbol to the card's holdings and returns the units now held.
func (s *InvestmentService) Buy(ctx context.Context, cardID uuid.UUID, symbol, name string, units int) (int, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return 0, ErrInvalidSymbol
	}
	if units <= 0 {
		return 0, ErrInvalidUnits
	}

	total, err := s.holdings.AddUnits(ctx, cardID, symbol, name, units)
	if err != nil {
		logger.Log.Errorw("failed to add units", "cardID", cardID, "symbol", symbol, "error", err)
		return 0, err
	}
	return total, nil
}

// Liquidate sells units of symbol and pays out close × 1.35 × units SGD rounded to one decimal.
func (s *InvestmentService) Liquidate(ctx context.Context, cardID uuid.UUID, symbol string, units int) (*Liquidation, error) {
	symbol = strings.ToUpper(symbol)

	holding, err := s.holdings.Get(ctx, cardID, symbol)
	if err != nil {
		logger.Log.Errorw("failed to get holding", "cardID", cardID, "symbol", symbol, "error", err)
		return nil, err
	}
	if holding == nil {
		return nil, ErrHoldingNotFound
	}
	if units <= 0 || units > holding.Units {
		return nil, fmt.Errorf("%w: %d of %d held", ErrInvalidUnits, units, holding.Units)
	}

	price, err := s.quote(ctx, symbol)
	if err != nil {
		return nil, err
	}
	amount := money.Tenths(price.Mul(USDToSGD).Mul(decimal.NewFromInt(int64(units))))

	remaining := holding.Units - units
	if err := s.holdings.SetUnits(ctx, cardID, symbol, remaining); err != nil {
		logger.Log.Errorw("failed to update holding", "cardID", cardID, "symbol", symbol, "error", err)
		return nil, err
	}

	txn, err := newTransaction(cardID, models.OperationLiquidation, amount, map[string]any{
		"symbol":    symbol,
		"units":     units,
		"price_usd": price,
	})
	if err != nil {
		return nil, err
	}
	if err := s.ledger.Record(ctx, txn); err != nil {
		return nil, err
	}

	return &Liquidation{
		TransactionID:  txn.TransactionID,
		Symbol:         symbol,
		Units:          units,
		RemainingUnits: remaining,
		PriceUSD:       price,
		Amount:         amount,
		Message:        fmt.Sprintf("Please wait while we dispense SGD %s cash.", amount.StringFixed(2)),
	}, nil
}
