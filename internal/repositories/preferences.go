package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/models"
)

// PreferencesRepository persists per-card display settings.
type PreferencesRepository struct {
	db *sqlx.DB
}

func NewPreferencesRepository(db *sqlx.DB) *PreferencesRepository {
	return &PreferencesRepository{db: db}
}

// Get returns the saved preferences, or nil when the card never saved any.
func (r *PreferencesRepository) Get(ctx context.Context, cardID uuid.UUID) (*models.Preferences, error) {
	const query = `
		SELECT theme, font, font_weight, icon_size, text_to_speech
		FROM preferences
		WHERE card_id = $1
	`

	var prefs models.Preferences
	err := r.db.GetContext(ctx, &prefs, query, cardID)
	logQuery(query, []any{cardID}, prefs, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &prefs, nil
}

// Save overwrites the card's preferences.
func (r *PreferencesRepository) Save(ctx context.Context, cardID uuid.UUID, prefs models.Preferences) error {
	const query = `
		INSERT INTO preferences (card_id, theme, font, font_weight, icon_size, text_to_speech, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (card_id) DO UPDATE
		SET theme = EXCLUDED.theme,
		    font = EXCLUDED.font,
		    font_weight = EXCLUDED.font_weight,
		    icon_size = EXCLUDED.icon_size,
		    text_to_speech = EXCLUDED.text_to_speech,
		    updated_at = NOW()
	`
	args := []any{cardID, prefs.Theme, prefs.Font, prefs.FontWeight, prefs.IconSize, prefs.TextToSpeech}

	_, err := r.db.ExecContext(ctx, query, args...)
	logQuery(query, args, nil, err)

	return err
}
