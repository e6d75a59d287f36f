package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardReadRepository_GetByNumber(t *testing.T) {
	cardID := uuid.New()
	query := regexp.QuoteMeta("FROM cards WHERE card_number = $1")
	columns := []string{"card_id", "card_number", "pin_hash", "holder_name", "created_at", "updated_at"}

	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(query).
			WithArgs("4111111111111111").
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(cardID.String(), "4111111111111111", "hash", "Alice Tan", time.Now(), time.Now()))

		card, err := NewCardReadRepository(db).GetByNumber(context.Background(), "4111111111111111")
		require.NoError(t, err)
		require.NotNil(t, card)
		assert.Equal(t, cardID, card.CardID)
		assert.Equal(t, "hash", card.PinHash)
	})

	t.Run("missing", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(query).WithArgs("4000").WillReturnRows(sqlmock.NewRows(columns))

		card, err := NewCardReadRepository(db).GetByNumber(context.Background(), "4000")
		assert.NoError(t, err)
		assert.Nil(t, card)
	})
}

func TestCardWriteRepository_Save(t *testing.T) {
	insert := regexp.QuoteMeta("INSERT INTO cards")

	t.Run("duplicate number", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(insert).
			WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

		id, err := NewCardWriteRepository(db, nil).Save(context.Background(), "4111111111111111", "hash", "")
		assert.ErrorIs(t, err, ErrAlreadyExists)
		assert.Equal(t, uuid.Nil, id)
	})

	t.Run("other errors pass through", func(t *testing.T) {
		db, mock := newMockDB(t)
		boom := errors.New("boom")
		mock.ExpectQuery(insert).WillReturnError(boom)

		_, err := NewCardWriteRepository(db, nil).Save(context.Background(), "4111111111111111", "hash", "")
		assert.ErrorIs(t, err, boom)
	})
}
