package handlers

//go:generate mockgen -source=exchange.go -destination=exchange_mock.go -package=handlers

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

// Exchanger defines the interface that the exchange service must implement.
type Exchanger interface {
	Rates(ctx context.Context) (map[string]float64, error)
	Convert(ctx context.Context, currency string, sgdAmount decimal.Decimal) (decimal.Decimal, error)
	Withdraw(ctx context.Context, cardID uuid.UUID, currency string, sgdAmount decimal.Decimal) (*services.ExchangeWithdrawal, error)
}

// ExchangeRatesResponse represents SGD based conversion rates
// swagger:model ExchangeRatesResponse
type ExchangeRatesResponse struct {
	// Base currency
	// default: SGD
	Base string `json:"base"`

	// Units of each currency per one SGD
	Rates map[string]float64 `json:"rates"`
}

// ConvertResponse represents a converted amount
// swagger:model ConvertResponse
type ConvertResponse struct {
	Currency  string          `json:"currency"`
	SGDAmount decimal.Decimal `json:"sgd_amount" swaggertype:"string"`
	Converted decimal.Decimal `json:"converted" swaggertype:"string"`
}

// ExchangeWithdrawRequest represents the JSON body of an exchange withdrawal
// swagger:model ExchangeWithdrawRequest
type ExchangeWithdrawRequest struct {
	// Target currency
	// required: true
	// default: USD
	Currency string `json:"currency"`

	// Amount in SGD taken from the account
	// required: true
	// default: 100
	SGDAmount decimal.Decimal `json:"sgd_amount" swaggertype:"number"`
}

// ExchangeWithdrawResponse represents a completed exchange withdrawal
// swagger:model ExchangeWithdrawResponse
type ExchangeWithdrawResponse struct {
	TransactionID uuid.UUID       `json:"transaction_id"`
	Currency      string          `json:"currency"`
	SGDAmount     decimal.Decimal `json:"sgd_amount" swaggertype:"string"`
	Converted     decimal.Decimal `json:"converted" swaggertype:"string"`
	NewBalance    decimal.Decimal `json:"new_balance" swaggertype:"string"`
	Message       string          `json:"message"`
}

// NewGetExchangeRatesHandler returns the current SGD conversion rates.
// @Summary Get exchange rates
// @Description Returns SGD based rates, served from cache while fresh
// @Tags exchange
// @Produce json
// @Success 200 {object} handlers.ExchangeRatesResponse
// @Failure 503 {object} handlers.ErrorResponse "Rate provider unavailable"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /exchange/rates [get]
// @Security BearerAuth
func NewGetExchangeRatesHandler(svc Exchanger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rates, err := svc.Rates(r.Context())
		if err != nil {
			writeUpstreamError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ExchangeRatesResponse{Base: models.CurrencySGD, Rates: rates})
	}
}

// NewConvertHandler converts an SGD amount without touching the account.
// @Summary Convert SGD
// @Tags exchange
// @Produce json
// @Param currency query string true "Target currency" default(USD)
// @Param amount query number true "Amount in SGD" default(100)
// @Success 200 {object} handlers.ConvertResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid currency or amount"
// @Failure 503 {object} handlers.ErrorResponse "Rate provider unavailable"
// @Router /exchange/convert [get]
// @Security BearerAuth
func NewConvertHandler(svc Exchanger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		currency := q.Get("currency")
		amount, err := decimal.NewFromString(q.Get("amount"))
		if currency == "" || err != nil {
			writeError(w, http.StatusBadRequest, "currency and amount are required")
			return
		}

		converted, err := svc.Convert(r.Context(), currency, amount)
		if err != nil {
			if badRequestFor(w, err, money.ErrNonPositiveAmount, services.ErrUnsupportedCurrency) {
				return
			}
			writeUpstreamError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ConvertResponse{
			Currency:  currency,
			SGDAmount: money.Cents(amount),
			Converted: converted,
		})
	}
}

// NewExchangeWithdrawHandler debits SGD for conversion at the counter.
// @Summary Withdraw for currency exchange
// @Description Debits the SGD amount and records an exchange withdrawal
// @Tags exchange
// @Accept json
// @Produce json
// @Param request body handlers.ExchangeWithdrawRequest true "Currency and SGD amount"
// @Success 200 {object} handlers.ExchangeWithdrawResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid currency, amount or insufficient funds"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 503 {object} handlers.ErrorResponse "Rate provider unavailable"
// @Router /exchange/withdrawals [post]
// @Security BearerAuth
func NewExchangeWithdrawHandler(svc Exchanger, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cardID, ok := cardIDFromRequest(w, r, tokener)
		if !ok {
			return
		}

		var req ExchangeWithdrawRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		res, err := svc.Withdraw(r.Context(), cardID, req.Currency, req.SGDAmount)
		if err != nil {
			if errors.Is(err, services.ErrInsufficientFunds) {
				writeError(w, http.StatusBadRequest, "Insufficient funds")
				return
			}
			if badRequestFor(w, err, money.ErrNonPositiveAmount, services.ErrUnsupportedCurrency) {
				return
			}
			writeUpstreamError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ExchangeWithdrawResponse{
			TransactionID: res.TransactionID,
			Currency:      res.Currency,
			SGDAmount:     res.SGDAmount,
			Converted:     res.Converted,
			NewBalance:    res.Balance,
			Message:       res.Message,
		})
	}
}
