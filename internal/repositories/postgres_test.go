package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/logger"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/models"
	"github.com/sbilibin2017/gw-atm-kiosk/migrations"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// --- Setup Postgres ---
func setupPostgres(t *testing.T) (*sqlx.DB, func()) {
	if testing.Short() {
		t.Skip("postgres container tests are skipped in short mode")
	}
	logger.Initialize("debug")
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(30 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:secret@%s:%s/testdb?sslmode=disable", host, port.Port())
	var db *sqlx.DB
	// the port listens before postgres accepts connections
	require.Eventually(t, func() bool {
		db, err = sqlx.Connect("pgx", dsn)
		return err == nil
	}, 15*time.Second, 200*time.Millisecond)

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	require.NoError(t, migrations.Up(db.DB))

	return db, func() {
		db.Close()
		container.Terminate(ctx)
	}
}

// --- Helper ---
func getBalance(t *testing.T, db *sqlx.DB, cardID uuid.UUID) decimal.Decimal {
	var balance decimal.Decimal
	err := db.Get(&balance, `SELECT balance FROM accounts WHERE card_id=$1`, cardID)
	assert.NoError(t, err)
	return balance
}

func TestPostgres_CardsAndAccounts(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	cards := NewCardWriteRepository(db, nil)
	reader := NewCardReadRepository(db)
	accounts := NewAccountRepository(db, nil)

	cardID, err := cards.Save(ctx, "4111111111111111", "hash", "Alice Tan")
	require.NoError(t, err)

	_, err = cards.Save(ctx, "4111111111111111", "hash", "Someone Else")
	assert.ErrorIs(t, err, ErrAlreadyExists)

	card, err := reader.GetByNumber(ctx, "4111111111111111")
	require.NoError(t, err)
	require.NotNil(t, card)
	assert.Equal(t, cardID, card.CardID)

	card, err = reader.GetByNumber(ctx, "5555555555554444")
	assert.NoError(t, err)
	assert.Nil(t, card)

	balance, err := accounts.GetBalance(ctx, cardID)
	require.NoError(t, err)
	assert.True(t, balance.IsZero())

	balance, err = accounts.Credit(ctx, cardID, decimal.NewFromInt(1000))
	require.NoError(t, err)
	assert.Equal(t, "1000", balance.String())

	balance, err = accounts.Debit(ctx, cardID, decimal.RequireFromString("280.50"))
	require.NoError(t, err)
	assert.Equal(t, "719.5", balance.String())

	_, err = accounts.Debit(ctx, cardID, decimal.NewFromInt(720))
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.Equal(t, "719.5", getBalance(t, db, cardID).String())
}

func TestPostgres_DebitConcurrency(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	cardID, err := NewCardWriteRepository(db, nil).Save(ctx, "4111111111111111", "hash", "")
	require.NoError(t, err)

	accounts := NewAccountRepository(db, nil)
	_, err = accounts.Credit(ctx, cardID, decimal.NewFromInt(100))
	require.NoError(t, err)

	// 200 debits of $1 against $100: exactly half succeed and the balance never goes negative.
	const numGoroutines = 200
	var (
		wg sync.WaitGroup
		mu sync.Mutex
		ok int
	)
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			if _, err := accounts.Debit(ctx, cardID, decimal.NewFromInt(1)); err == nil {
				mu.Lock()
				ok++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, ok)
	assert.True(t, getBalance(t, db, cardID).IsZero())
}

func TestPostgres_HoldingsAndHistory(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	cardID, err := NewCardWriteRepository(db, nil).Save(ctx, "4111111111111111", "hash", "")
	require.NoError(t, err)

	holdings := NewHoldingRepository(db, nil)
	units, err := holdings.AddUnits(ctx, cardID, "AAPL", "Apple Inc", 2)
	require.NoError(t, err)
	assert.Equal(t, 2, units)
	units, err = holdings.AddUnits(ctx, cardID, "AAPL", "Apple Inc", 3)
	require.NoError(t, err)
	assert.Equal(t, 5, units)

	require.NoError(t, holdings.SetUnits(ctx, cardID, "AAPL", 1))
	h, err := holdings.Get(ctx, cardID, "AAPL")
	require.NoError(t, err)
	require.NotNil(t, h)
	assert.Equal(t, 1, h.Units)

	require.NoError(t, holdings.SetUnits(ctx, cardID, "AAPL", 0))
	h, err = holdings.Get(ctx, cardID, "AAPL")
	require.NoError(t, err)
	assert.Nil(t, h)

	txns := NewTransactionRepository(db, nil)
	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		require.NoError(t, txns.Save(ctx, &models.TransactionDB{
			TransactionID: uuid.New(),
			CardID:        cardID,
			Operation:     models.OperationWithdrawal,
			Amount:        decimal.NewFromInt(int64(10 * (i + 1))),
			Currency:      models.CurrencySGD,
			Details:       []byte(`{"10":1}`),
			CreatedAt:     base.Add(time.Duration(i) * time.Minute),
		}))
	}

	list, err := txns.ListByCardID(ctx, cardID, 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "30", list[0].Amount.String())
	assert.Equal(t, "20", list[1].Amount.String())
}

func TestPostgres_ShortcutLimit(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	cardID, err := NewCardWriteRepository(db, nil).Save(ctx, "4111111111111111", "hash", "")
	require.NoError(t, err)

	shortcuts := NewShortcutRepository(db)
	for i := 0; i < models.MaxShortcuts+1; i++ {
		saved, err := shortcuts.Save(ctx, &models.ShortcutDB{
			ShortcutID: uuid.New(),
			CardID:     cardID,
			Type:       models.ShortcutCashWithdrawal,
			Amount:     decimal.NewFromInt(50),
			CreatedAt:  time.Now(),
		}, models.MaxShortcuts)
		require.NoError(t, err)
		assert.Equal(t, i < models.MaxShortcuts, saved, "shortcut %d", i)
	}

	list, err := shortcuts.ListByCardID(ctx, cardID)
	require.NoError(t, err)
	assert.Len(t, list, models.MaxShortcuts)
}
