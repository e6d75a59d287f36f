package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/models"
)

type TicketRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewTicketRepository(db *sqlx.DB, txGetter TxGetter) *TicketRepository {
	return &TicketRepository{db: db, txGetter: txGetter}
}

func (r *TicketRepository) Save(ctx context.Context, ticket *models.TicketDB) error {
	const query = `
		INSERT INTO tickets (reference, card_id, event_id, quantity, email, total, created_at)
		VALUES (:reference, :card_id, :event_id, :quantity, :email, :total, :created_at)
	`

	_, err := sqlx.NamedExecContext(ctx, executor(ctx, r.db, r.txGetter), query, ticket)
	logQuery(query, []any{ticket.Reference, ticket.EventID, ticket.Quantity}, nil, err)

	return err
}
