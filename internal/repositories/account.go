package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

// AccountRepository keeps the SGD balance behind each card.
type AccountRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(db *sqlx.DB, txGetter TxGetter) *AccountRepository {
	return &AccountRepository{db: db, txGetter: txGetter}
}

// Credit performs an UPSERT: opens the account if needed, otherwise increases the balance.
func (r *AccountRepository) Credit(ctx context.Context, cardID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error) {
	const query = `
		INSERT INTO accounts (card_id, currency, balance, created_at, updated_at)
		VALUES ($1, 'SGD', $2, NOW(), NOW())
		ON CONFLICT (card_id)
		DO UPDATE SET balance = accounts.balance + EXCLUDED.balance, updated_at = NOW()
		RETURNING balance
	`

	var balance decimal.Decimal
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &balance, query, cardID, amount)
	logQuery(query, []any{cardID, amount}, balance, err)

	return balance, err
}

// Debit lowers the balance by amount in a single conditional update.
// It returns sql.ErrNoRows when the account is missing or holds less than amount.
func (r *AccountRepository) Debit(ctx context.Context, cardID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error) {
	const query = `
		UPDATE accounts
		SET balance = balance - $2, updated_at = NOW()
		WHERE card_id = $1 AND balance >= $2
		RETURNING balance
	`

	var balance decimal.Decimal
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &balance, query, cardID, amount)
	logQuery(query, []any{cardID, amount}, balance, err)

	if err != nil {
		return decimal.Zero, err
	}
	return balance, nil
}

// GetBalance returns the card balance; a card without an account has zero.
func (r *AccountRepository) GetBalance(ctx context.Context, cardID uuid.UUID) (decimal.Decimal, error) {
	const query = `
		SELECT balance
		FROM accounts
		WHERE card_id = $1
	`

	var balance decimal.Decimal
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &balance, query, cardID)
	logQuery(query, []any{cardID}, balance, err)

	if errors.Is(err, sql.ErrNoRows) {
		return decimal.Zero, nil
	}
	return balance, err
}
