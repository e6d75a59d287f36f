package handlers

//go:generate mockgen -source=preferences.go -destination=preferences_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/models"
)

// PreferencesManager defines the interface that the preferences service must implement.
type PreferencesManager interface {
	Get(ctx context.Context, cardID uuid.UUID) (models.Preferences, error)
	Save(ctx context.Context, cardID uuid.UUID, prefs models.Preferences) error
}

// NewGetPreferencesHandler returns the saved preferences, or the defaults.
// @Summary Get preferences
// @Tags preferences
// @Produce json
// @Success 200 {object} models.Preferences
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /preferences [get]
// @Security BearerAuth
func NewGetPreferencesHandler(svc PreferencesManager, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cardID, ok := cardIDFromRequest(w, r, tokener)
		if !ok {
			return
		}

		prefs, err := svc.Get(r.Context(), cardID)
		if err != nil {
			writeInternalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, prefs)
	}
}

// NewSavePreferencesHandler stores the card's preferences.
// @Summary Save preferences
// @Tags preferences
// @Accept json
// @Produce json
// @Param request body models.Preferences true "Preferences"
// @Success 200 {object} models.Preferences
// @Failure 400 {object} handlers.ErrorResponse "Invalid preferences"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /preferences [put]
// @Security BearerAuth
func NewSavePreferencesHandler(svc PreferencesManager, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cardID, ok := cardIDFromRequest(w, r, tokener)
		if !ok {
			return
		}

		var prefs models.Preferences
		if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		if err := svc.Save(r.Context(), cardID, prefs); err != nil {
			if errors.Is(err, models.ErrInvalidPreferences) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			writeInternalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, prefs)
	}
}
