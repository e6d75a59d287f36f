package handlers

//go:generate mockgen -source=shortcut.go -destination=shortcut_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/models"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/money"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/services"
	"github.com/shopspring/decimal"
)

// ShortcutManager defines the interface that the shortcut service must implement.
type ShortcutManager interface {
	List(ctx context.Context, cardID uuid.UUID) ([]models.ShortcutDB, error)
	Create(ctx context.Context, cardID uuid.UUID, kind string, amount decimal.Decimal) (*models.ShortcutDB, error)
}

// ShortcutsResponse lists saved shortcuts
// swagger:model ShortcutsResponse
type ShortcutsResponse struct {
	Shortcuts []models.ShortcutDB `json:"shortcuts"`
}

// CreateShortcutRequest represents the JSON body of a new shortcut
// swagger:model CreateShortcutRequest
type CreateShortcutRequest struct {
	// Cash Withdrawal or Fund Transfer
	// required: true
	// default: Cash Withdrawal
	Type string `json:"type"`

	// Amount in SGD
	// required: true
	// default: 100
	Amount decimal.Decimal `json:"amount" swaggertype:"number"`
}

// NewListShortcutsHandler lists the card's shortcuts.
// @Summary List shortcuts
// @Tags shortcuts
// @Produce json
// @Success 200 {object} handlers.ShortcutsResponse
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /shortcuts [get]
// @Security BearerAuth
func NewListShortcutsHandler(svc ShortcutManager, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cardID, ok := cardIDFromRequest(w, r, tokener)
		if !ok {
			return
		}

		shortcuts, err := svc.List(r.Context(), cardID)
		if err != nil {
			writeInternalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ShortcutsResponse{Shortcuts: shortcuts})
	}
}

// NewCreateShortcutHandler saves a shortcut; a card keeps at most three.
// @Summary Create shortcut
// @Tags shortcuts
// @Accept json
// @Produce json
// @Param request body handlers.CreateShortcutRequest true "Shortcut"
// @Success 201 {object} models.ShortcutDB
// @Failure 400 {object} handlers.ErrorResponse "Invalid type or amount"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 409 {object} handlers.ErrorResponse "Shortcut limit reached"
// @Router /shortcuts [post]
// @Security BearerAuth
func NewCreateShortcutHandler(svc ShortcutManager, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cardID, ok := cardIDFromRequest(w, r, tokener)
		if !ok {
			return
		}

		var req CreateShortcutRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		shortcut, err := svc.Create(r.Context(), cardID, req.Type, req.Amount)
		if err != nil {
			if errors.Is(err, services.ErrShortcutLimit) {
				writeError(w, http.StatusConflict, "Shortcut limit reached")
				return
			}
			if badRequestFor(w, err, services.ErrInvalidShortcutType, money.ErrNonPositiveAmount) {
				return
			}
			writeInternalError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, shortcut)
	}
}
