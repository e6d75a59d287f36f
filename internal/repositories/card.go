package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/models"
)

type CardReadRepository struct {
	db *sqlx.DB
}

func NewCardReadRepository(db *sqlx.DB) *CardReadRepository {
	return &CardReadRepository{db: db}
}

// GetByNumber returns the card with the given number, or nil when there is none.
func (r *CardReadRepository) GetByNumber(ctx context.Context, cardNumber string) (*models.CardDB, error) {
	const query = `
		SELECT card_id, card_number, pin_hash, holder_name, created_at, updated_at
		FROM cards
		WHERE card_number = $1
		LIMIT 1
	`

	var card models.CardDB
	err := r.db.GetContext(ctx, &card, query, cardNumber)
	// the PIN hash stays out of the logs
	logQuery(query, []any{cardNumber}, card.CardID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &card, nil
}

type CardWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewCardWriteRepository(db *sqlx.DB, txGetter TxGetter) *CardWriteRepository {
	return &CardWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a card and returns its id.
func (r *CardWriteRepository) Save(ctx context.Context, cardNumber, pinHash, holderName string) (uuid.UUID, error) {
	const query = `
		INSERT INTO cards (card_id, card_number, pin_hash, holder_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING card_id
	`

	var cardID uuid.UUID
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &cardID, query, uuid.New(), cardNumber, pinHash, holderName)
	logQuery(query, []any{cardNumber, holderName}, cardID, err)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return uuid.Nil, ErrAlreadyExists
	}
	return cardID, err
}
