package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueCardHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockCardIssuer(ctrl)
	handler := NewIssueCardHandler(svc)

	cardID := uuid.New()
	const card = "4111111111111111"
	reqBody := `{"card_number":"4111111111111111","pin":"123456","holder_name":"Alice Tan","opening_balance":1000}`

	tests := []struct {
		name       string
		reqBody    any
		mock       func()
		wantStatus int
		wantErr    string
	}{
		{
			name:    "issued",
			reqBody: reqBody,
			mock: func() {
				svc.EXPECT().IssueCard(gomock.Any(), card, "123456", "Alice Tan", decEq("1000")).Return(cardID, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:    "duplicate",
			reqBody: reqBody,
			mock: func() {
				svc.EXPECT().IssueCard(gomock.Any(), card, "123456", "Alice Tan", gomock.Any()).Return(uuid.Nil, services.ErrCardAlreadyExists)
			},
			wantStatus: http.StatusConflict,
			wantErr:    "Card already exists",
		},
		{
			name:    "negative opening balance",
			reqBody: `{"card_number":"4111111111111111","pin":"123456","opening_balance":-1}`,
			mock: func() {
				svc.EXPECT().IssueCard(gomock.Any(), card, "123456", "", decEq("-1")).Return(uuid.Nil, services.ErrNegativeBalance)
			},
			wantStatus: http.StatusBadRequest,
			wantErr:    services.ErrNegativeBalance.Error(),
		},
		{
			name:       "invalid json",
			reqBody:    "{",
			wantStatus: http.StatusBadRequest,
			wantErr:    "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.mock != nil {
				tt.mock()
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/cards", body(tt.reqBody))
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantErr != "" {
				assert.Equal(t, tt.wantErr, errorMessage(t, rec.Body))
				return
			}
			var got IssueCardResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, cardID, got.CardID)
		})
	}
}
