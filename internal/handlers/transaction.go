package handlers

//go:generate mockgen -source=transaction.go -destination=transaction_mock.go -package=handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/models"
)

// HistoryReader defines the interface that the account service must implement for history.
type HistoryReader interface {
	History(ctx context.Context, cardID uuid.UUID, limit int) ([]models.TransactionDB, error)
}

// TransactionsResponse lists recent transactions, newest first
// swagger:model TransactionsResponse
type TransactionsResponse struct {
	Transactions []models.TransactionDB `json:"transactions"`
}

// NewTransactionsHandler returns the card's recent transactions.
// @Summary Transaction history
// @Tags account
// @Produce json
// @Param limit query int false "Number of transactions, at most 50" default(10)
// @Success 200 {object} handlers.TransactionsResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid limit"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /transactions [get]
// @Security BearerAuth
func NewTransactionsHandler(reader HistoryReader, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cardID, ok := cardIDFromRequest(w, r, tokener)
		if !ok {
			return
		}

		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 {
				writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
				return
			}
			limit = n
		}

		txns, err := reader.History(r.Context(), cardID, limit)
		if err != nil {
			writeInternalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, TransactionsResponse{Transactions: txns})
	}
}
