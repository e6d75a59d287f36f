package handlers

//go:generate mockgen -source=investment.go -destination=investment_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/models"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/services"
	"github.com/shopspring/decimal"
)

// Investor defines the interface that the investment service must implement.
type Investor interface {
	Portfolio(ctx context.Context, cardID uuid.UUID) ([]models.Holding, error)
	Search(ctx context.Context, keywords string) ([]models.StockMatch, error)
	Buy(ctx context.Context, cardID uuid.UUID, symbol, name string, units int) (int, error)
	Liquidate(ctx context.Context, cardID uuid.UUID, symbol string, units int) (*services.Liquidation, error)
}

// PortfolioResponse lists the card's holdings
// swagger:model PortfolioResponse
type PortfolioResponse struct {
	Holdings []models.Holding `json:"holdings"`
}

// SearchResponse lists symbols matching the keywords
// swagger:model SearchResponse
type SearchResponse struct {
	Matches []models.StockMatch `json:"matches"`
}

// BuyRequest represents the JSON body for adding units
// swagger:model BuyRequest
type BuyRequest struct {
	// Ticker symbol
	// required: true
	// default: AAPL
	Symbol string `json:"symbol"`

	// Company name
	// default: Apple Inc
	Name string `json:"name"`

	// Units to add
	// required: true
	// default: 10
	Units int `json:"units"`
}

// BuyResponse reports the units now held
// swagger:model BuyResponse
type BuyResponse struct {
	Symbol string `json:"symbol"`
	Units  int    `json:"units"`
}

// LiquidateRequest represents the JSON body for selling units
// swagger:model LiquidateRequest
type LiquidateRequest struct {
	// Units to sell
	// required: true
	// default: 1
	Units int `json:"units"`
}

// LiquidateResponse represents a completed liquidation
// swagger:model LiquidateResponse
type LiquidateResponse struct {
	TransactionID  uuid.UUID       `json:"transaction_id"`
	Symbol         string          `json:"symbol"`
	Units          int             `json:"units"`
	RemainingUnits int             `json:"remaining_units"`
	PriceUSD       decimal.Decimal `json:"price_usd" swaggertype:"string"`
	Amount         decimal.Decimal `json:"amount" swaggertype:"string"`
	Message        string          `json:"message"`
}

// NewPortfolioHandler lists holdings valued at the latest close.
// @Summary Get portfolio
// @Tags investments
// @Produce json
// @Success 200 {object} handlers.PortfolioResponse
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 503 {object} handlers.ErrorResponse "Quote provider unavailable"
// @Router /investments [get]
// @Security BearerAuth
func NewPortfolioHandler(svc Investor, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cardID, ok := cardIDFromRequest(w, r, tokener)
		if !ok {
			return
		}

		holdings, err := svc.Portfolio(r.Context(), cardID)
		if err != nil {
			writeUpstreamError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, PortfolioResponse{Holdings: holdings})
	}
}

// NewSearchSymbolsHandler looks up ticker symbols.
// @Summary Search symbols
// @Tags investments
// @Produce json
// @Param keywords query string true "Search keywords" default(apple)
// @Success 200 {object} handlers.SearchResponse
// @Failure 503 {object} handlers.ErrorResponse "Quote provider unavailable"
// @Router /investments/search [get]
// @Security BearerAuth
func NewSearchSymbolsHandler(svc Investor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matches, err := svc.Search(r.Context(), r.URL.Query().Get("keywords"))
		if err != nil {
			writeUpstreamError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, SearchResponse{Matches: matches})
	}
}

// NewBuyHandler adds units to a holding.
// @Summary Add units
// @Tags investments
// @Accept json
// @Produce json
// @Param request body handlers.BuyRequest true "Symbol and units"
// @Success 200 {object} handlers.BuyResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid symbol or units"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /investments [post]
// @Security BearerAuth
func NewBuyHandler(svc Investor, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cardID, ok := cardIDFromRequest(w, r, tokener)
		if !ok {
			return
		}

		var req BuyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		units, err := svc.Buy(r.Context(), cardID, req.Symbol, req.Name, req.Units)
		if err != nil {
			if badRequestFor(w, err, services.ErrInvalidSymbol, services.ErrInvalidUnits) {
				return
			}
			writeInternalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, BuyResponse{Symbol: req.Symbol, Units: units})
	}
}

// NewLiquidateHandler sells units of a holding for cash.
// @Summary Liquidate a holding
// @Description Pays out close × 1.35 × units SGD rounded to one decimal
// @Tags investments
// @Accept json
// @Produce json
// @Param symbol path string true "Ticker symbol"
// @Param request body handlers.LiquidateRequest true "Units to sell"
// @Success 200 {object} handlers.LiquidateResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid units"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Holding not found"
// @Failure 503 {object} handlers.ErrorResponse "Quote provider unavailable"
// @Router /investments/{symbol}/liquidate [post]
// @Security BearerAuth
func NewLiquidateHandler(svc Investor, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cardID, ok := cardIDFromRequest(w, r, tokener)
		if !ok {
			return
		}

		var req LiquidateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		res, err := svc.Liquidate(r.Context(), cardID, chi.URLParam(r, "symbol"), req.Units)
		if err != nil {
			if errors.Is(err, services.ErrHoldingNotFound) {
				writeError(w, http.StatusNotFound, "Holding not found")
				return
			}
			if badRequestFor(w, err, services.ErrInvalidUnits) {
				return
			}
			writeUpstreamError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, LiquidateResponse{
			TransactionID:  res.TransactionID,
			Symbol:         res.Symbol,
			Units:          res.Units,
			RemainingUnits: res.RemainingUnits,
			PriceUSD:       res.PriceUSD,
			Amount:         res.Amount,
			Message:        res.Message,
		})
	}
}
