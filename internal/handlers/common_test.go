package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/facades"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/jwt"
	"github.com/stretchr/testify/assert"
)

func TestCardIDFromRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cardID := uuid.New()

	tests := []struct {
		name       string
		setup      func(m *MockTokener)
		wantOK     bool
		wantStatus int
	}{
		{
			name: "valid token",
			setup: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("tok", nil)
				m.EXPECT().GetClaims(gomock.Any(), "tok").Return(&jwt.Claims{CardID: cardID}, nil)
			},
			wantOK:     true,
			wantStatus: http.StatusOK,
		},
		{
			name: "missing header",
			setup: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", jwt.ErrMissingHeader)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "bad token",
			setup: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("tok", nil)
				m.EXPECT().GetClaims(gomock.Any(), "tok").Return(nil, jwt.ErrInvalidToken)
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokener := NewMockTokener(ctrl)
			tt.setup(tokener)

			req := httptest.NewRequest(http.MethodGet, "/balance", nil)
			rec := httptest.NewRecorder()

			got, ok := cardIDFromRequest(rec, req, tokener)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantOK {
				assert.Equal(t, cardID, got)
				return
			}
			assert.Equal(t, "Unauthorized", errorMessage(t, rec.Body))
		})
	}
}

func TestWriteUpstreamError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"breaker open", fmt.Errorf("rates: %w", facades.ErrUnavailable), http.StatusServiceUnavailable, "Service temporarily unavailable"},
		{"no quote", facades.ErrNoQuote, http.StatusNotFound, "Quote not available"},
		{"anything else", errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeUpstreamError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Equal(t, tt.wantMsg, errorMessage(t, rec.Body))
		})
	}
}
