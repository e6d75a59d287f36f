package services

//go:generate mockgen -source=shortcut.go -destination=shortcut_mock.go -package=services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/logger"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/models"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/money"
	"github.com/shopspring/decimal"
)

var (
	ErrShortcutLimit       = errors.New("shortcut limit reached")
	ErrInvalidShortcutType = errors.New("invalid shortcut type")
)

// ShortcutStore persists saved shortcuts.
type ShortcutStore interface {
	ListByCardID(ctx context.Context, cardID uuid.UUID) ([]models.ShortcutDB, error)
	Save(ctx context.Context, shortcut *models.ShortcutDB, max int) (bool, error)
}

type ShortcutService struct {
	store ShortcutStore
}

func NewShortcutService(store ShortcutStore) *ShortcutService {
	return &ShortcutService{store: store}
}

func (s *ShortcutService) List(ctx context.Context, cardID uuid.UUID) ([]models.ShortcutDB, error) {
	shortcuts, err := s.store.ListByCardID(ctx, cardID)
	if err != nil {
		logger.Log.Errorw("failed to list shortcuts", "cardID", cardID, "error", err)
		return nil, err
	}
	return shortcuts, nil
}

// Create saves a shortcut; a card keeps at most models.MaxShortcuts.
func (s *ShortcutService) Create(ctx context.Context, cardID uuid.UUID, kind string, amount decimal.Decimal) (*models.ShortcutDB, error) {
	if kind != models.ShortcutCashWithdrawal && kind != models.ShortcutFundTransfer {
		return nil, ErrInvalidShortcutType
	}
	amount, err := money.Positive(amount)
	if err != nil {
		return nil, err
	}

	shortcut := &models.ShortcutDB{
		ShortcutID: uuid.New(),
		CardID:     cardID,
		Type:       kind,
		Amount:     amount,
		CreatedAt:  time.Now().UTC(),
	}
	saved, err := s.store.Save(ctx, shortcut, models.MaxShortcuts)
	if err != nil {
		logger.Log.Errorw("failed to save shortcut", "cardID", cardID, "error", err)
		return nil, err
	}
	if !saved {
		return nil, ErrShortcutLimit
	}
	return shortcut, nil
}
