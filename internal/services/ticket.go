package services

//go:generate mockgen -source=ticket.go -destination=ticket_mock.go -package=services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/logger"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/models"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/money"
	"github.com/shopspring/decimal"
)

var (
	ErrEventNotFound   = errors.New("event not found")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrInvalidEmail    = errors.New("invalid email")
)

// Catalogue is the list of events sold at the kiosk.
var Catalogue = []models.Event{
	{
		ID:          "1",
		Title:       "Harry Potter: Visions of Magic Asia Premiere in Singapore",
		Description: "Harry Potter: Visions of Magic makes its Asia Premiere at Resorts World Sentosa.",
		Date:        "2024-11-22 to 2025-06-30",
		Price:       decimal.NewFromInt(59),
		ImageURL:    "https://static.ticketmaster.sg/images/activity/24sg_harrypotter_a549dd4968a588c90f4ef5d2ec85db4d.png",
	},
	{
		ID:          "2",
		Title:       "Infinite @ The Star Theatre",
		Description: "INFINITE 15th Anniversary Concert: Limited Edition in Singapore.",
		Date:        "2025-02-07",
		Price:       decimal.NewFromInt(148),
		ImageURL:    "https://static.ticketmaster.sg/images/activity/25sg_infinite_f24dc108c343e39e0b2b662096ea7fbb.png",
	},
	{
		ID:          "3",
		Title:       "SASHA FRANK HEADLINES COMEDY MASALA",
		Description: "World class standup comedy live at Hero's.",
		Date:        "2025-02-04",
		Price:       decimal.NewFromInt(44),
		ImageURL:    "https://static.ticketmaster.sg/images/activity/25sg_sashafrank_f2d31317823ef5e7f152a5b6f6971d36.png",
	},
	{
		ID:          "4",
		Title:       "MIXER CircUs World Tour - Singapore",
		Description: "MIXER brings the CircUs world tour to Singapore.",
		Date:        "2025-02-08",
		Price:       decimal.NewFromInt(98),
		ImageURL:    "https://static.ticketmaster.sg/images/activity/25sg_mixer_6cb17ccc9d4b02f3fd0eb563213f27e7.jpg",
	},
}

// TicketWriter stores ticket bookings.
type TicketWriter interface {
	Save(ctx context.Context, ticket *models.TicketDB) error
}

// TicketService sells event tickets paid from the card account.
type TicketService struct {
	tickets  TicketWriter
	accounts AccountStore
	ledger   TransactionRecorder
	events   []models.Event
}

func NewTicketService(tickets TicketWriter, accounts AccountStore, ledger TransactionRecorder) *TicketService {
	return &TicketService{tickets: tickets, accounts: accounts, ledger: ledger, events: Catalogue}
}

// Events returns the catalogue.
func (s *TicketService) Events() []models.Event {
	return s.events
}

func (s *TicketService) event(id string) (models.Event, bool) {
	for _, e := range s.events {
		if e.ID == id {
			return e, true
		}
	}
	return models.Event{}, false
}

// Book buys quantity tickets for eventID and returns the booking.
func (s *TicketService) Book(ctx context.Context, cardID uuid.UUID, eventID string, quantity int, email string) (*models.TicketDB, error) {
	event, ok := s.event(eventID)
	if !ok {
		return nil, ErrEventNotFound
	}
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	addr, err := mail.ParseAddress(strings.TrimSpace(email))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidEmail, email)
	}

	total := event.Price.Mul(decimal.NewFromInt(int64(quantity)))
	if _, err := debit(ctx, s.accounts, cardID, total); err != nil {
		return nil, err
	}

	ticket := &models.TicketDB{
		Reference: ulid.Make().String(),
		CardID:    cardID,
		EventID:   event.ID,
		Quantity:  quantity,
		Email:     addr.Address,
		Total:     total,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.tickets.Save(ctx, ticket); err != nil {
		logger.Log.Errorw("failed to save ticket", "cardID", cardID, "event", event.ID, "error", err)
		return nil, err
	}

	txn, err := newTransaction(cardID, models.OperationTicket, total, map[string]any{
		"reference": ticket.Reference,
		"event_id":  event.ID,
		"quantity":  quantity,
	})
	if err != nil {
		return nil, err
	}
	if err := s.ledger.Record(ctx, txn); err != nil {
		return nil, err
	}

	logger.Log.Infow("tickets booked", "cardID", cardID, "reference", ticket.Reference, "total", money.Format(total))
	return ticket, nil
}
