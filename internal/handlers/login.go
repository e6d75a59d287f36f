package handlers

//go:generate mockgen -source=login.go -destination=login_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-atm-kiosk/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, cardNumber, pin string) (string, error)
}

// LoginRequest represents the JSON body for card login
// swagger:model LoginRequest
type LoginRequest struct {
	// Card number
	// required: true
	// default: 4111111111111111
	CardNumber string `json:"card_number"`

	// Six digit PIN
	// required: true
	// default: 123456
	PIN string `json:"pin"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// JWT token
	// default: JWT_TOKEN
	Token string `json:"token"`
}

// NewLoginHandler returns an HTTP handler for card login.
// @Summary Card login
// @Description Checks the card number and PIN and returns a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.LoginResponse "JWT token returned"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body, card number or PIN format"
// @Failure 401 {object} handlers.ErrorResponse "Invalid card number or PIN"
// @Router /login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		token, err := svc.Login(r.Context(), req.CardNumber, req.PIN)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCardNumber),
				errors.Is(err, services.ErrInvalidPIN):
				writeError(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, services.ErrInvalidCredentials):
				writeError(w, http.StatusUnauthorized, "Invalid card number or PIN")
			default:
				writeInternalError(w, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, LoginResponse{
			Token: token,
		})
	}
}
