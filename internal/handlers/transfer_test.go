package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/money"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransferHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cardID := uuid.New()
	txnID := uuid.New()
	svc := NewMockTransferer(ctrl)
	handler := NewTransferHandler(svc, newTokener(ctrl, cardID))

	const account = "123-456786-001"

	tests := []struct {
		name       string
		reqBody    string
		mock       func()
		wantStatus int
		wantErr    string
	}{
		{
			name:    "transferred",
			reqBody: `{"account_number":"123-456786-001","amount":250.5}`,
			mock: func() {
				svc.EXPECT().Transfer(gomock.Any(), cardID, account, decEq("250.5")).Return(&services.Transfer{
					TransactionID: txnID,
					AccountNumber: account,
					Amount:        decimal.RequireFromString("250.5"),
					Balance:       decimal.RequireFromString("749.5"),
					Message:       "Your transfer of $250.50 to account 123-456786-001 has been successfully processed.",
				}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:    "bad account",
			reqBody: `{"account_number":"123-456785-001","amount":10}`,
			mock: func() {
				svc.EXPECT().Transfer(gomock.Any(), cardID, "123-456785-001", gomock.Any()).Return(nil, services.ErrInvalidAccountNumber)
			},
			wantStatus: http.StatusBadRequest,
			wantErr:    "invalid account number",
		},
		{
			name:    "zero amount",
			reqBody: `{"account_number":"123-456786-001","amount":0}`,
			mock: func() {
				svc.EXPECT().Transfer(gomock.Any(), cardID, account, gomock.Any()).Return(nil, money.ErrNonPositiveAmount)
			},
			wantStatus: http.StatusBadRequest,
			wantErr:    "amount must be positive",
		},
		{
			name:    "insufficient funds",
			reqBody: `{"account_number":"123-456786-001","amount":99999}`,
			mock: func() {
				svc.EXPECT().Transfer(gomock.Any(), cardID, account, gomock.Any()).Return(nil, services.ErrInsufficientFunds)
			},
			wantStatus: http.StatusBadRequest,
			wantErr:    "Insufficient funds",
		},
		{
			name:    "ledger failure",
			reqBody: `{"account_number":"123-456786-001","amount":10}`,
			mock: func() {
				svc.EXPECT().Transfer(gomock.Any(), cardID, account, gomock.Any()).Return(nil, errors.New("insert failed"))
			},
			wantStatus: http.StatusInternalServerError,
			wantErr:    "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mock()

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/transfers", body(tt.reqBody)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantErr != "" {
				assert.Equal(t, tt.wantErr, errorMessage(t, rec.Body))
				return
			}
			var got TransferResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, txnID, got.TransactionID)
			assert.Equal(t, account, got.AccountNumber)
			assert.Equal(t, "749.5", got.NewBalance.String())
			assert.Contains(t, got.Message, "$250.50")
		})
	}
}
