package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/models"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/repositories"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type investmentMocks struct {
	holdings *services.MockHoldingStore
	quotes   *services.MockQuoteProvider
	cache    *services.MockQuoteCache
	ledger   *services.MockTransactionRecorder
}

func newInvestmentService(t *testing.T) (*services.InvestmentService, investmentMocks) {
	ctrl := gomock.NewController(t)
	m := investmentMocks{
		holdings: services.NewMockHoldingStore(ctrl),
		quotes:   services.NewMockQuoteProvider(ctrl),
		cache:    services.NewMockQuoteCache(ctrl),
		ledger:   services.NewMockTransactionRecorder(ctrl),
	}
	return services.NewInvestmentService(m.holdings, m.quotes, m.cache, m.ledger), m
}

func TestInvestmentService_Portfolio(t *testing.T) {
	ctx := context.Background()
	cardID := uuid.New()
	svc, m := newInvestmentService(t)

	m.holdings.EXPECT().ListByCardID(ctx, cardID).Return([]models.HoldingDB{
		{CardID: cardID, Symbol: "AAPL", Name: "Apple Inc", Units: 3},
		{CardID: cardID, Symbol: "MSFT", Name: "Microsoft", Units: 1},
	}, nil)

	// AAPL is cached, MSFT is fetched and cached
	m.cache.EXPECT().GetQuote(gomock.Any(), "AAPL").Return(decimal.RequireFromString("187.5"), nil)
	m.cache.EXPECT().GetQuote(gomock.Any(), "MSFT").Return(decimal.Zero, repositories.ErrCacheMiss)
	m.quotes.EXPECT().LatestClose(gomock.Any(), "MSFT").Return(decimal.RequireFromString("400"), nil)
	m.cache.EXPECT().SetQuote(gomock.Any(), "MSFT", decEq("400")).Return(nil)

	holdings, err := svc.Portfolio(ctx, cardID)
	require.NoError(t, err)
	require.Len(t, holdings, 2)

	assert.Equal(t, "AAPL", holdings[0].Symbol)
	assert.Equal(t, "759.38", holdings[0].ValueSGD.StringFixed(2))
	assert.Equal(t, "MSFT", holdings[1].Symbol)
	assert.Equal(t, "540.00", holdings[1].ValueSGD.StringFixed(2))
}

func TestInvestmentService_Portfolio_QuoteError(t *testing.T) {
	ctx := context.Background()
	cardID := uuid.New()
	svc, m := newInvestmentService(t)

	m.holdings.EXPECT().ListByCardID(ctx, cardID).Return([]models.HoldingDB{{Symbol: "AAPL", Units: 1}}, nil)
	m.cache.EXPECT().GetQuote(gomock.Any(), "AAPL").Return(decimal.Zero, repositories.ErrCacheMiss)
	m.quotes.EXPECT().LatestClose(gomock.Any(), "AAPL").Return(decimal.Zero, errors.New("rate limited"))

	_, err := svc.Portfolio(ctx, cardID)
	assert.ErrorContains(t, err, "quote AAPL")
}

func TestInvestmentService_Buy(t *testing.T) {
	ctx := context.Background()
	cardID := uuid.New()
	svc, m := newInvestmentService(t)

	m.holdings.EXPECT().AddUnits(ctx, cardID, "TSLA", "Tesla Inc", 2).Return(5, nil)

	units, err := svc.Buy(ctx, cardID, " tsla ", "Tesla Inc", 2)
	require.NoError(t, err)
	assert.Equal(t, 5, units)

	_, err = svc.Buy(ctx, cardID, "TSLA", "Tesla Inc", 0)
	assert.ErrorIs(t, err, services.ErrInvalidUnits)

	_, err = svc.Buy(ctx, cardID, "  ", "", 1)
	assert.ErrorIs(t, err, services.ErrInvalidSymbol)
}

func TestInvestmentService_Liquidate(t *testing.T) {
	ctx := context.Background()
	cardID := uuid.New()
	held := &models.HoldingDB{CardID: cardID, Symbol: "AAPL", Name: "Apple Inc", Units: 5}

	t.Run("partial sale", func(t *testing.T) {
		svc, m := newInvestmentService(t)

		m.holdings.EXPECT().Get(ctx, cardID, "AAPL").Return(held, nil)
		m.cache.EXPECT().GetQuote(ctx, "AAPL").Return(decimal.RequireFromString("187.5"), nil)
		m.holdings.EXPECT().SetUnits(ctx, cardID, "AAPL", 2).Return(nil)
		m.ledger.EXPECT().Record(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, txn *models.TransactionDB) error {
			assert.Equal(t, models.OperationLiquidation, txn.Operation)
			assert.True(t, txn.Amount.Equal(decimal.RequireFromString("759.4")))
			return nil
		})

		// 187.5 × 1.35 × 3 = 759.375
		l, err := svc.Liquidate(ctx, cardID, "aapl", 3)
		require.NoError(t, err)
		assert.Equal(t, "759.4", l.Amount.String())
		assert.Equal(t, 2, l.RemainingUnits)
		assert.Equal(t, "Please wait while we dispense SGD 759.40 cash.", l.Message)
	})

	t.Run("full sale", func(t *testing.T) {
		svc, m := newInvestmentService(t)

		m.holdings.EXPECT().Get(ctx, cardID, "AAPL").Return(held, nil)
		m.cache.EXPECT().GetQuote(ctx, "AAPL").Return(decimal.RequireFromString("100"), nil)
		m.holdings.EXPECT().SetUnits(ctx, cardID, "AAPL", 0).Return(nil)
		m.ledger.EXPECT().Record(ctx, gomock.Any()).Return(nil)

		l, err := svc.Liquidate(ctx, cardID, "AAPL", 5)
		require.NoError(t, err)
		assert.Equal(t, 0, l.RemainingUnits)
		assert.Equal(t, "675", l.Amount.String())
	})

	t.Run("more than held", func(t *testing.T) {
		svc, m := newInvestmentService(t)
		m.holdings.EXPECT().Get(ctx, cardID, "AAPL").Return(held, nil)

		_, err := svc.Liquidate(ctx, cardID, "AAPL", 6)
		assert.ErrorIs(t, err, services.ErrInvalidUnits)
	})

	t.Run("zero units", func(t *testing.T) {
		svc, m := newInvestmentService(t)
		m.holdings.EXPECT().Get(ctx, cardID, "AAPL").Return(held, nil)

		_, err := svc.Liquidate(ctx, cardID, "AAPL", 0)
		assert.ErrorIs(t, err, services.ErrInvalidUnits)
	})

	t.Run("not held", func(t *testing.T) {
		svc, m := newInvestmentService(t)
		m.holdings.EXPECT().Get(ctx, cardID, "NVDA").Return(nil, nil)

		_, err := svc.Liquidate(ctx, cardID, "NVDA", 1)
		assert.ErrorIs(t, err, services.ErrHoldingNotFound)
	})
}

func TestInvestmentService_Search(t *testing.T) {
	ctx := context.Background()
	svc, m := newInvestmentService(t)

	matches := []models.StockMatch{{Symbol: "TSLA", Name: "Tesla Inc"}}
	m.quotes.EXPECT().Search(ctx, "tesla").Return(matches, nil)

	got, err := svc.Search(ctx, " tesla ")
	require.NoError(t, err)
	assert.Equal(t, matches, got)

	got, err = svc.Search(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, got)
}
