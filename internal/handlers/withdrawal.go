package handlers

//go:generate mockgen -source=withdrawal.go -destination=withdrawal_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/denominations"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/services"
	"github.com/shopspring/decimal"
)

// Withdrawer defines the interface that the withdrawal service must implement.
type Withdrawer interface {
	Validate(amount int, sel denominations.Selection) (denominations.Result, error)
	Suggest(amount int) (denominations.Selection, error)
	Withdraw(ctx context.Context, cardID uuid.UUID, amount int, sel denominations.Selection) (*services.Withdrawal, error)
	QuickAmounts() []int
}

// DenominationsRequest carries a target amount and an optional note selection
// swagger:model DenominationsRequest
type DenominationsRequest struct {
	// Amount to withdraw in whole SGD
	// required: true
	// default: 280
	Amount int `json:"amount"`

	// Count per note value, e.g. {"100": 2, "50": 1, "10": 3}
	Denominations denominations.Selection `json:"denominations,omitempty" swaggertype:"object"`
}

// ValidateDenominationsResponse is the outcome of checking a selection
// swagger:model ValidateDenominationsResponse
type ValidateDenominationsResponse struct {
	Valid   bool   `json:"valid"`
	Total   int    `json:"total"`
	Target  int    `json:"target"`
	Message string `json:"message"`
}

// SuggestDenominationsResponse is a proposed breakdown
// swagger:model SuggestDenominationsResponse
type SuggestDenominationsResponse struct {
	Denominations denominations.Selection `json:"denominations" swaggertype:"object"`
	Message       string                  `json:"message"`
}

// WithdrawResponse represents a completed withdrawal
// swagger:model WithdrawResponse
type WithdrawResponse struct {
	TransactionID uuid.UUID               `json:"transaction_id"`
	Amount        int                     `json:"amount"`
	Denominations denominations.Selection `json:"denominations" swaggertype:"object"`
	NewBalance    decimal.Decimal         `json:"new_balance" swaggertype:"string"`
	Message       string                  `json:"message"`
}

// QuickAmountsResponse lists the preset withdrawal amounts
// swagger:model QuickAmountsResponse
type QuickAmountsResponse struct {
	Amounts []int `json:"amounts"`
}

// denominationStatus maps resolver errors; ok is false for errors it does not know.
func denominationStatus(err error) (int, bool) {
	var (
		invalid  *denominations.InvalidDenominationError
		unsat    *denominations.UnsatisfiableTargetError
		mismatch *denominations.MismatchError
	)
	switch {
	case errors.Is(err, denominations.ErrNonPositiveTarget),
		errors.Is(err, denominations.ErrTotalOverflow),
		errors.As(err, &invalid):
		return http.StatusBadRequest, true
	case errors.As(err, &unsat), errors.As(err, &mismatch):
		return http.StatusUnprocessableEntity, true
	}
	return 0, false
}

// NewValidateDenominationsHandler checks a note selection against an amount.
// @Summary Validate a note selection
// @Description Reports whether the chosen notes add up to exactly the amount
// @Tags withdrawals
// @Accept json
// @Produce json
// @Param request body handlers.DenominationsRequest true "Amount and selection"
// @Success 200 {object} handlers.ValidateDenominationsResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid amount or denomination"
// @Router /withdrawals/denominations/validate [post]
// @Security BearerAuth
func NewValidateDenominationsHandler(svc Withdrawer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req DenominationsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		res, err := svc.Validate(req.Amount, req.Denominations)
		if err != nil {
			if status, ok := denominationStatus(err); ok {
				writeError(w, status, err.Error())
				return
			}
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ValidateDenominationsResponse{
			Valid:   res.Valid(),
			Total:   res.Total,
			Target:  res.Target,
			Message: res.Message(),
		})
	}
}

// NewSuggestDenominationsHandler proposes a note breakdown for an amount.
// @Summary Suggest a note breakdown
// @Description Largest notes first; 422 when the notes cannot make the amount
// @Tags withdrawals
// @Accept json
// @Produce json
// @Param request body handlers.DenominationsRequest true "Amount"
// @Success 200 {object} handlers.SuggestDenominationsResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid amount"
// @Failure 422 {object} handlers.ErrorResponse "Amount cannot be dispensed"
// @Router /withdrawals/denominations/suggest [post]
// @Security BearerAuth
func NewSuggestDenominationsHandler(svc Withdrawer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req DenominationsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		sel, err := svc.Suggest(req.Amount)
		if err != nil {
			if status, ok := denominationStatus(err); ok {
				writeError(w, status, err.Error())
				return
			}
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, SuggestDenominationsResponse{
			Denominations: sel,
			Message:       denominations.Format(denominations.Result{Target: req.Amount, Total: req.Amount, Selection: sel}),
		})
	}
}

// NewWithdrawHandler withdraws cash from the card account.
// @Summary Withdraw cash
// @Description Debits the account and records the note breakdown. Without denominations the suggested breakdown is used.
// @Tags withdrawals
// @Accept json
// @Produce json
// @Param request body handlers.DenominationsRequest true "Amount and optional selection"
// @Success 200 {object} handlers.WithdrawResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid amount, denomination or insufficient funds"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 422 {object} handlers.ErrorResponse "Selection does not match the amount"
// @Router /withdrawals [post]
// @Security BearerAuth
func NewWithdrawHandler(svc Withdrawer, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cardID, ok := cardIDFromRequest(w, r, tokener)
		if !ok {
			return
		}

		var req DenominationsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		wd, err := svc.Withdraw(r.Context(), cardID, req.Amount, req.Denominations)
		if err != nil {
			if status, ok := denominationStatus(err); ok {
				writeError(w, status, err.Error())
				return
			}
			if errors.Is(err, services.ErrInsufficientFunds) {
				writeError(w, http.StatusBadRequest, "Insufficient funds")
				return
			}
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, WithdrawResponse{
			TransactionID: wd.TransactionID,
			Amount:        wd.Amount,
			Denominations: wd.Selection,
			NewBalance:    wd.Balance,
			Message:       wd.Message,
		})
	}
}

// NewQuickAmountsHandler lists the preset amounts of the withdraw screen.
// @Summary Quick withdrawal amounts
// @Tags withdrawals
// @Produce json
// @Success 200 {object} handlers.QuickAmountsResponse
// @Router /withdrawals/quick-amounts [get]
// @Security BearerAuth
func NewQuickAmountsHandler(svc Withdrawer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, QuickAmountsResponse{Amounts: svc.QuickAmounts()})
	}
}
