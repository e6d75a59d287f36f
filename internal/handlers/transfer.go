package handlers

//go:generate mockgen -source=transfer.go -destination=transfer_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/money"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/services"
	"github.com/shopspring/decimal"
)

// Transferer defines the interface that the transfer service must implement.
type Transferer interface {
	Transfer(ctx context.Context, cardID uuid.UUID, accountNumber string, amount decimal.Decimal) (*services.Transfer, error)
}

// TransferRequest represents the JSON body of a fund transfer
// swagger:model TransferRequest
type TransferRequest struct {
	// Destination account
	// required: true
	// default: 123-456786-001
	AccountNumber string `json:"account_number"`

	// Amount in SGD
	// required: true
	// default: 250.5
	Amount decimal.Decimal `json:"amount" swaggertype:"number"`
}

// TransferResponse represents a completed transfer
// swagger:model TransferResponse
type TransferResponse struct {
	TransactionID uuid.UUID       `json:"transaction_id"`
	AccountNumber string          `json:"account_number"`
	Amount        decimal.Decimal `json:"amount" swaggertype:"string"`
	NewBalance    decimal.Decimal `json:"new_balance" swaggertype:"string"`
	Message       string          `json:"message"`
}

// NewTransferHandler moves funds to an external account.
// @Summary Transfer funds
// @Tags transfers
// @Accept json
// @Produce json
// @Param request body handlers.TransferRequest true "Destination and amount"
// @Success 200 {object} handlers.TransferResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid account, amount or insufficient funds"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /transfers [post]
// @Security BearerAuth
func NewTransferHandler(svc Transferer, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cardID, ok := cardIDFromRequest(w, r, tokener)
		if !ok {
			return
		}

		var req TransferRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		res, err := svc.Transfer(r.Context(), cardID, req.AccountNumber, req.Amount)
		if err != nil {
			if errors.Is(err, services.ErrInsufficientFunds) {
				writeError(w, http.StatusBadRequest, "Insufficient funds")
				return
			}
			if badRequestFor(w, err, money.ErrNonPositiveAmount, services.ErrInvalidAccountNumber) {
				return
			}
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, TransferResponse{
			TransactionID: res.TransactionID,
			AccountNumber: res.AccountNumber,
			Amount:        res.Amount,
			NewBalance:    res.Balance,
			Message:       res.Message,
		})
	}
}
