package handlers

//go:generate mockgen -source=balance.go -destination=balance_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/models"
	"github.com/shopspring/decimal"
)

// BalanceReader defines the interface that the account service must implement.
type BalanceReader interface {
	Balance(ctx context.Context, cardID uuid.UUID) (decimal.Decimal, error)
}

// BalanceResponse represents the card balance
// swagger:model BalanceResponse
type BalanceResponse struct {
	// Balance
	// default: 1000.00
	Balance decimal.Decimal `json:"balance" swaggertype:"string"`

	// Currency
	// default: SGD
	Currency string `json:"currency"`
}

// NewGetBalanceHandler returns an HTTP handler for fetching the card balance.
// @Summary Get card balance
// @Description Returns the SGD balance of the card account
// @Tags account
// @Produce json
// @Success 200 {object} handlers.BalanceResponse "Card balance"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /balance [get]
// @Security BearerAuth
func NewGetBalanceHandler(reader BalanceReader, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cardID, ok := cardIDFromRequest(w, r, tokener)
		if !ok {
			return
		}

		balance, err := reader.Balance(r.Context(), cardID)
		if err != nil {
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, BalanceResponse{
			Balance:  balance.Round(2),
			Currency: models.CurrencySGD,
		})
	}
}
