package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockLoginer(ctrl)
	handler := NewLoginHandler(svc)

	const card = "4111111111111111"

	tests := []struct {
		name       string
		reqBody    any
		mock       func()
		wantStatus int
		wantToken  string
		wantErr    string
	}{
		{
			name:    "success",
			reqBody: LoginRequest{CardNumber: card, PIN: "123456"},
			mock: func() {
				svc.EXPECT().Login(gomock.Any(), card, "123456").Return("JWT_TOKEN", nil)
			},
			wantStatus: http.StatusOK,
			wantToken:  "JWT_TOKEN",
		},
		{
			name:       "invalid json",
			reqBody:    "not-json",
			wantStatus: http.StatusBadRequest,
			wantErr:    "invalid request body",
		},
		{
			name:    "card fails luhn",
			reqBody: LoginRequest{CardNumber: "4111111111111112", PIN: "123456"},
			mock: func() {
				svc.EXPECT().Login(gomock.Any(), "4111111111111112", "123456").Return("", services.ErrInvalidCardNumber)
			},
			wantStatus: http.StatusBadRequest,
			wantErr:    services.ErrInvalidCardNumber.Error(),
		},
		{
			name:    "short pin",
			reqBody: LoginRequest{CardNumber: card, PIN: "123"},
			mock: func() {
				svc.EXPECT().Login(gomock.Any(), card, "123").Return("", services.ErrInvalidPIN)
			},
			wantStatus: http.StatusBadRequest,
			wantErr:    "pin must be 6 digits",
		},
		{
			name:    "wrong pin",
			reqBody: LoginRequest{CardNumber: card, PIN: "654321"},
			mock: func() {
				svc.EXPECT().Login(gomock.Any(), card, "654321").Return("", services.ErrInvalidCredentials)
			},
			wantStatus: http.StatusUnauthorized,
			wantErr:    "Invalid card number or PIN",
		},
		{
			name:    "internal error",
			reqBody: LoginRequest{CardNumber: card, PIN: "123456"},
			mock: func() {
				svc.EXPECT().Login(gomock.Any(), card, "123456").Return("", errors.New("db down"))
			},
			wantStatus: http.StatusInternalServerError,
			wantErr:    "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.mock != nil {
				tt.mock()
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/login", body(tt.reqBody))
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantErr != "" {
				assert.Equal(t, tt.wantErr, errorMessage(t, rec.Body))
				return
			}
			var got LoginResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tt.wantToken, got.Token)
		})
	}
}
