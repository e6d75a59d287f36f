package services_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/models"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicketService_Events(t *testing.T) {
	svc := services.NewTicketService(nil, nil, nil)

	events := svc.Events()
	require.Len(t, events, 4)

	prices := make([]string, 0, len(events))
	for _, e := range events {
		prices = append(prices, e.Price.String())
	}
	assert.Equal(t, []string{"59", "148", "44", "98"}, prices)
}

func TestTicketService_Book(t *testing.T) {
	ctx := context.Background()
	cardID := uuid.New()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tickets := services.NewMockTicketWriter(ctrl)
		accounts := services.NewMockAccountStore(ctrl)
		ledger := services.NewMockTransactionRecorder(ctrl)

		accounts.EXPECT().Debit(ctx, cardID, decEq("296")).Return(decimal.NewFromInt(704), nil)
		tickets.EXPECT().Save(ctx, gomock.Any()).Return(nil)
		ledger.EXPECT().Record(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, txn *models.TransactionDB) error {
			assert.Equal(t, models.OperationTicket, txn.Operation)
			return nil
		})

		ticket, err := services.NewTicketService(tickets, accounts, ledger).Book(ctx, cardID, "2", 2, " Alice <alice@example.com> ")
		require.NoError(t, err)
		assert.Equal(t, "296", ticket.Total.String())
		assert.Equal(t, "alice@example.com", ticket.Email)
		_, err = ulid.Parse(ticket.Reference)
		assert.NoError(t, err)
	})

	tests := []struct {
		name     string
		eventID  string
		quantity int
		email    string
		wantErr  error
	}{
		{name: "unknown event", eventID: "9", quantity: 1, email: "a@b.co", wantErr: services.ErrEventNotFound},
		{name: "no tickets", eventID: "1", quantity: 0, email: "a@b.co", wantErr: services.ErrInvalidQuantity},
		{name: "bad email", eventID: "1", quantity: 1, email: "not-an-email", wantErr: services.ErrInvalidEmail},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := services.NewTicketService(services.NewMockTicketWriter(ctrl), services.NewMockAccountStore(ctrl), services.NewMockTransactionRecorder(ctrl))

			_, err := svc.Book(ctx, cardID, tt.eventID, tt.quantity, tt.email)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("insufficient funds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		accounts := services.NewMockAccountStore(ctrl)
		accounts.EXPECT().Debit(ctx, cardID, decEq("59")).Return(decimal.Zero, sql.ErrNoRows)

		svc := services.NewTicketService(services.NewMockTicketWriter(ctrl), accounts, services.NewMockTransactionRecorder(ctrl))
		_, err := svc.Book(ctx, cardID, "1", 1, "a@b.co")
		assert.ErrorIs(t, err, services.ErrInsufficientFunds)
	})
}
