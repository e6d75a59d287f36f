package handlers

//go:generate mockgen -source=card.go -destination=card_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/services"
	"github.com/shopspring/decimal"
)

// CardIssuer defines the interface that the card service must implement.
type CardIssuer interface {
	IssueCard(ctx context.Context, cardNumber, pin, holderName string, openingBalance decimal.Decimal) (uuid.UUID, error)
}

// IssueCardRequest represents the JSON body for card issuance
// swagger:model IssueCardRequest
type IssueCardRequest struct {
	// Card number, must pass the Luhn check
	// required: true
	// default: 4111111111111111
	CardNumber string `json:"card_number"`

	// Six digit PIN
	// required: true
	// default: 123456
	PIN string `json:"pin"`

	// Card holder
	// default: Alice Tan
	HolderName string `json:"holder_name"`

	// Opening SGD balance
	// default: 1000
	OpeningBalance decimal.Decimal `json:"opening_balance" swaggertype:"number"`
}

// IssueCardResponse represents a successful issuance
// swagger:model IssueCardResponse
type IssueCardResponse struct {
	CardID uuid.UUID `json:"card_id"`
}

// NewIssueCardHandler returns an HTTP handler that issues a card.
// @Summary Issue a card
// @Description Creates a card with a hashed PIN and opens its SGD account.
// @Tags auth
// @Accept json
// @Produce json
// @Param issueCardRequest body handlers.IssueCardRequest true "Card issuance request"
// @Success 201 {object} handlers.IssueCardResponse "Card issued"
// @Failure 400 {object} handlers.ErrorResponse "Invalid card number, PIN or balance"
// @Failure 409 {object} handlers.ErrorResponse "Card already exists"
// @Router /cards [post]
func NewIssueCardHandler(svc CardIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req IssueCardRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		cardID, err := svc.IssueCard(r.Context(), req.CardNumber, req.PIN, req.HolderName, req.OpeningBalance)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCardNumber),
				errors.Is(err, services.ErrInvalidPIN),
				errors.Is(err, services.ErrNegativeBalance):
				writeError(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, services.ErrCardAlreadyExists):
				writeError(w, http.StatusConflict, "Card already exists")
			default:
				writeInternalError(w, err)
			}
			return
		}

		writeJSON(w, http.StatusCreated, IssueCardResponse{CardID: cardID})
	}
}
