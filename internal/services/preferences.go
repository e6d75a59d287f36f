package services

//go:generate mockgen -source=preferences.go -destination=preferences_mock.go -package=services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/logger"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/models"
)

// PreferencesStore persists per-card preferences.
type PreferencesStore interface {
	Get(ctx context.Context, cardID uuid.UUID) (*models.Preferences, error)
	Save(ctx context.Context, cardID uuid.UUID, prefs models.Preferences) error
}

type PreferencesService struct {
	store PreferencesStore
}

func NewPreferencesService(store PreferencesStore) *PreferencesService {
	return &PreferencesService{store: store}
}

// Get returns the saved preferences or the defaults.
func (s *PreferencesService) Get(ctx context.Context, cardID uuid.UUID) (models.Preferences, error) {
	prefs, err := s.store.Get(ctx, cardID)
	if err != nil {
		logger.Log.Errorw("failed to get preferences", "cardID", cardID, "error", err)
		return models.Preferences{}, err
	}
	if prefs == nil {
		return models.DefaultPreferences(), nil
	}
	return *prefs, nil
}

// Save validates and stores prefs.
func (s *PreferencesService) Save(ctx context.Context, cardID uuid.UUID, prefs models.Preferences) error {
	if err := prefs.Validate(); err != nil {
		return err
	}
	if err := s.store.Save(ctx, cardID, prefs); err != nil {
		logger.Log.Errorw("failed to save preferences", "cardID", cardID, "error", err)
		return err
	}
	return nil
}
