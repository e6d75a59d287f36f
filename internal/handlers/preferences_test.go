package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPreferencesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cardID := uuid.New()
	svc := NewMockPreferencesManager(ctrl)
	svc.EXPECT().Get(gomock.Any(), cardID).Return(models.DefaultPreferences(), nil)

	rec := httptest.NewRecorder()
	NewGetPreferencesHandler(svc, newTokener(ctrl, cardID)).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/preferences", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"theme":"light","font":"Inter","font_weight":"normal","icon_size":"medium","text_to_speech":false}`,
		rec.Body.String())
}

func TestSavePreferencesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cardID := uuid.New()
	svc := NewMockPreferencesManager(ctrl)
	handler := NewSavePreferencesHandler(svc, newTokener(ctrl, cardID))

	t.Run("saved", func(t *testing.T) {
		prefs := models.Preferences{Theme: "dark", Font: "Georgia", FontWeight: "bold", IconSize: "large", TextToSpeech: true}
		svc.EXPECT().Save(gomock.Any(), cardID, prefs).Return(nil)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/v1/preferences", body(prefs)))

		require.Equal(t, http.StatusOK, rec.Code)
		var got models.Preferences
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, prefs, got)
	})

	t.Run("rejected", func(t *testing.T) {
		svc.EXPECT().Save(gomock.Any(), cardID, gomock.Any()).
			Return(fmt.Errorf("%w: theme %q", models.ErrInvalidPreferences, "neon"))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/v1/preferences", body(`{"theme":"neon"}`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, `invalid preferences: theme "neon"`, errorMessage(t, rec.Body))
	})
}
