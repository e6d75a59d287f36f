package services_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/models"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountService_Balance(t *testing.T) {
	ctx := context.Background()
	cardID := uuid.New()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accounts := services.NewMockAccountStore(ctrl)
	accounts.EXPECT().GetBalance(ctx, cardID).Return(decimal.RequireFromString("1234.50"), nil)

	balance, err := services.NewAccountService(accounts, services.NewMockTransactionReader(ctrl)).Balance(ctx, cardID)
	require.NoError(t, err)
	assert.Equal(t, "1234.5", balance.String())
}

func TestAccountService_History_Limit(t *testing.T) {
	ctx := context.Background()
	cardID := uuid.New()

	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{name: "default", limit: 0, want: 10},
		{name: "negative", limit: -5, want: 10},
		{name: "as asked", limit: 25, want: 25},
		{name: "capped", limit: 500, want: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			history := services.NewMockTransactionReader(ctrl)
			history.EXPECT().ListByCardID(ctx, cardID, tt.want).Return([]models.TransactionDB{}, nil)

			txns, err := services.NewAccountService(services.NewMockAccountStore(ctrl), history).History(ctx, cardID, tt.limit)
			require.NoError(t, err)
			assert.Empty(t, txns)
		})
	}
}
