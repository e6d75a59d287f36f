package handlers

//go:generate mockgen -source=common.go -destination=common_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/facades"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/jwt"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/logger"
)

// Tokener extracts the card from a bearer token.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// ErrorResponse is the body of every failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

const (
	msgInvalidBody = "invalid request body"
	msgInternal    = "Internal server error"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

func writeInternalError(w http.ResponseWriter, err error) {
	logger.Log.Errorw("internal server error", "err", err)
	writeError(w, http.StatusInternalServerError, msgInternal)
}

// cardIDFromRequest reads the card id out of the bearer token and answers 401 when it can't.
func cardIDFromRequest(w http.ResponseWriter, r *http.Request, tokener Tokener) (uuid.UUID, bool) {
	ctx := r.Context()

	tokenStr, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Errorw("unauthorized request: missing or invalid token", "path", r.URL.Path)
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return uuid.Nil, false
	}

	claims, err := tokener.GetClaims(ctx, tokenStr)
	if err != nil {
		logger.Log.Errorw("failed to parse token claims", "error", err)
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return uuid.Nil, false
	}

	return claims.CardID, true
}

// writeUpstreamError answers for failures of the rate and quote providers.
func writeUpstreamError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, facades.ErrUnavailable):
		logger.Log.Warnw("upstream unavailable", "error", err)
		writeError(w, http.StatusServiceUnavailable, "Service temporarily unavailable")
	case errors.Is(err, facades.ErrNoQuote):
		writeError(w, http.StatusNotFound, "Quote not available")
	default:
		writeInternalError(w, err)
	}
}

// badRequestFor answers 400 with err's message when err is one of known.
func badRequestFor(w http.ResponseWriter, err error, known ...error) bool {
	for _, k := range known {
		if errors.Is(err, k) {
			writeError(w, http.StatusBadRequest, err.Error())
			return true
		}
	}
	return false
}
