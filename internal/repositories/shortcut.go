package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/models"
)

type ShortcutRepository struct {
	db *sqlx.DB
}

func NewShortcutRepository(db *sqlx.DB) *ShortcutRepository {
	return &ShortcutRepository{db: db}
}

func (r *ShortcutRepository) ListByCardID(ctx context.Context, cardID uuid.UUID) ([]models.ShortcutDB, error) {
	const query = `
		SELECT shortcut_id, card_id, type, amount, created_at
		FROM shortcuts
		WHERE card_id = $1
		ORDER BY created_at
	`

	var shortcuts []models.ShortcutDB
	err := r.db.SelectContext(ctx, &shortcuts, query, cardID)
	logQuery(query, []any{cardID}, len(shortcuts), err)

	return shortcuts, err
}

// Save inserts a shortcut unless the card already has max of them.
// It returns false without error when the limit is reached.
func (r *ShortcutRepository) Save(ctx context.Context, shortcut *models.ShortcutDB, max int) (bool, error) {
	const query = `
		INSERT INTO shortcuts (shortcut_id, card_id, type, amount, created_at)
		SELECT $1, $2, $3, $4, $5
		WHERE (SELECT COUNT(*) FROM shortcuts WHERE card_id = $2) < $6
	`
	args := []any{shortcut.ShortcutID, shortcut.CardID, shortcut.Type, shortcut.Amount, shortcut.CreatedAt, max}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)

	if err != nil {
		return false, err
	}
	return rowsAffected == 1, nil
}
