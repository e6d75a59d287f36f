package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/models"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListShortcutsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cardID := uuid.New()
	svc := NewMockShortcutManager(ctrl)
	svc.EXPECT().List(gomock.Any(), cardID).Return([]models.ShortcutDB{
		{ShortcutID: uuid.New(), CardID: cardID, Type: models.ShortcutCashWithdrawal, Amount: decimal.NewFromInt(100)},
	}, nil)

	rec := httptest.NewRecorder()
	NewListShortcutsHandler(svc, newTokener(ctrl, cardID)).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/shortcuts", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got ShortcutsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Shortcuts, 1)
	assert.Equal(t, models.ShortcutCashWithdrawal, got.Shortcuts[0].Type)
}

func TestCreateShortcutHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cardID := uuid.New()
	svc := NewMockShortcutManager(ctrl)
	handler := NewCreateShortcutHandler(svc, newTokener(ctrl, cardID))

	tests := []struct {
		name       string
		reqBody    string
		mock       func()
		wantStatus int
		wantErr    string
	}{
		{
			name:    "created",
			reqBody: `{"type":"Fund Transfer","amount":50}`,
			mock: func() {
				svc.EXPECT().Create(gomock.Any(), cardID, models.ShortcutFundTransfer, decEq("50")).
					Return(&models.ShortcutDB{ShortcutID: uuid.New(), CardID: cardID, Type: models.ShortcutFundTransfer, Amount: decimal.NewFromInt(50)}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:    "fourth shortcut",
			reqBody: `{"type":"Cash Withdrawal","amount":20}`,
			mock: func() {
				svc.EXPECT().Create(gomock.Any(), cardID, models.ShortcutCashWithdrawal, gomock.Any()).Return(nil, services.ErrShortcutLimit)
			},
			wantStatus: http.StatusConflict,
			wantErr:    "Shortcut limit reached",
		},
		{
			name:    "unknown type",
			reqBody: `{"type":"Bill Payment","amount":20}`,
			mock: func() {
				svc.EXPECT().Create(gomock.Any(), cardID, "Bill Payment", gomock.Any()).Return(nil, services.ErrInvalidShortcutType)
			},
			wantStatus: http.StatusBadRequest,
			wantErr:    "invalid shortcut type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mock()

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/shortcuts", body(tt.reqBody)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantErr != "" {
				assert.Equal(t, tt.wantErr, errorMessage(t, rec.Body))
			}
		})
	}
}
