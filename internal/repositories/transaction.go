package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/models"
)

// TransactionRepository stores the card transaction history.
type TransactionRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewTransactionRepository(db *sqlx.DB, txGetter TxGetter) *TransactionRepository {
	return &TransactionRepository{db: db, txGetter: txGetter}
}

// Save inserts a transaction row.
func (r *TransactionRepository) Save(ctx context.Context, txn *models.TransactionDB) error {
	const query = `
		INSERT INTO transactions (transaction_id, card_id, operation, amount, currency, account_no, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	args := []any{txn.TransactionID, txn.CardID, txn.Operation, txn.Amount, txn.Currency, txn.AccountNo, txn.Details, txn.CreatedAt}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args[:5], rowsAffected, err)

	return err
}

// ListByCardID returns the newest transactions of a card first.
func (r *TransactionRepository) ListByCardID(ctx context.Context, cardID uuid.UUID, limit int) ([]models.TransactionDB, error) {
	const query = `
		SELECT transaction_id, card_id, operation, amount, currency, account_no, details, created_at
		FROM transactions
		WHERE card_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	var txns []models.TransactionDB
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &txns, query, cardID, limit)
	logQuery(query, []any{cardID, limit}, len(txns), err)

	return txns, err
}
