package handlers

//go:generate mockgen -source=ticket.go -destination=ticket_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/models"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/money"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/services"
)

// TicketBooker defines the interface that the ticket service must implement.
type TicketBooker interface {
	Events() []models.Event
	Book(ctx context.Context, cardID uuid.UUID, eventID string, quantity int, email string) (*models.TicketDB, error)
}

// EventsResponse lists the events on sale
// swagger:model EventsResponse
type EventsResponse struct {
	Events []models.Event `json:"events"`
}

// BookTicketRequest represents the JSON body of a booking
// swagger:model BookTicketRequest
type BookTicketRequest struct {
	// Event id
	// required: true
	// default: 1
	EventID string `json:"event_id"`

	// Number of tickets
	// required: true
	// default: 2
	Quantity int `json:"quantity"`

	// Where the tickets are sent
	// required: true
	// default: jane@example.com
	Email string `json:"email"`
}

// BookTicketResponse represents a confirmed booking
// swagger:model BookTicketResponse
type BookTicketResponse struct {
	Ticket  *models.TicketDB `json:"ticket"`
	Message string           `json:"message"`
}

// NewEventsHandler lists the ticket catalogue.
// @Summary List events
// @Tags tickets
// @Produce json
// @Success 200 {object} handlers.EventsResponse
// @Router /events [get]
// @Security BearerAuth
func NewEventsHandler(svc TicketBooker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, EventsResponse{Events: svc.Events()})
	}
}

// NewBookTicketHandler buys tickets paid from the card account.
// @Summary Book tickets
// @Tags tickets
// @Accept json
// @Produce json
// @Param request body handlers.BookTicketRequest true "Event, quantity and email"
// @Success 201 {object} handlers.BookTicketResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid quantity, email or insufficient funds"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Event not found"
// @Router /tickets [post]
// @Security BearerAuth
func NewBookTicketHandler(svc TicketBooker, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cardID, ok := cardIDFromRequest(w, r, tokener)
		if !ok {
			return
		}

		var req BookTicketRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		ticket, err := svc.Book(r.Context(), cardID, req.EventID, req.Quantity, req.Email)
		if err != nil {
			if errors.Is(err, services.ErrEventNotFound) {
				writeError(w, http.StatusNotFound, "Event not found")
				return
			}
			if errors.Is(err, services.ErrInsufficientFunds) {
				writeError(w, http.StatusBadRequest, "Insufficient funds")
				return
			}
			if badRequestFor(w, err, services.ErrInvalidQuantity, services.ErrInvalidEmail) {
				return
			}
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, BookTicketResponse{
			Ticket:  ticket,
			Message: fmt.Sprintf("Your booking of %s is confirmed. Reference %s.", money.Format(ticket.Total), ticket.Reference),
		})
	}
}
