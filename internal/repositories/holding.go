package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/models"
)

// HoldingRepository stores investment holdings.
type HoldingRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewHoldingRepository(db *sqlx.DB, txGetter TxGetter) *HoldingRepository {
	return &HoldingRepository{db: db, txGetter: txGetter}
}

// ListByCardID returns the card's holdings ordered by symbol.
func (r *HoldingRepository) ListByCardID(ctx context.Context, cardID uuid.UUID) ([]models.HoldingDB, error) {
	const query = `
		SELECT card_id, symbol, name, units, created_at, updated_at
		FROM holdings
		WHERE card_id = $1
		ORDER BY symbol
	`

	var holdings []models.HoldingDB
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &holdings, query, cardID)
	logQuery(query, []any{cardID}, len(holdings), err)

	return holdings, err
}

// Get locks and returns one holding, or nil when the card holds none of symbol.
func (r *HoldingRepository) Get(ctx context.Context, cardID uuid.UUID, symbol string) (*models.HoldingDB, error) {
	const query = `
		SELECT card_id, symbol, name, units, created_at, updated_at
		FROM holdings
		WHERE card_id = $1 AND symbol = $2
		FOR UPDATE
	`

	var holding models.HoldingDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &holding, query, cardID, symbol)
	logQuery(query, []any{cardID, symbol}, holding.Units, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &holding, nil
}

// AddUnits performs an UPSERT and returns the units now held.
func (r *HoldingRepository) AddUnits(ctx context.Context, cardID uuid.UUID, symbol, name string, units int) (int, error) {
	const query = `
		INSERT INTO holdings (card_id, symbol, name, units, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (card_id, symbol)
		DO UPDATE SET units = holdings.units + EXCLUDED.units, updated_at = NOW()
		RETURNING units
	`

	var total int
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &total, query, cardID, symbol, name, units)
	logQuery(query, []any{cardID, symbol, name, units}, total, err)

	return total, err
}

// SetUnits stores the units left after a sale; zero removes the holding.
func (r *HoldingRepository) SetUnits(ctx context.Context, cardID uuid.UUID, symbol string, units int) error {
	query := `
		UPDATE holdings
		SET units = $3, updated_at = NOW()
		WHERE card_id = $1 AND symbol = $2
	`
	args := []any{cardID, symbol, units}
	if units == 0 {
		query = `
		DELETE FROM holdings
		WHERE card_id = $1 AND symbol = $2
	`
		args = args[:2]
	}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)

	if err == nil && rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return err
}
