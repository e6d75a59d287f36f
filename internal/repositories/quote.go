package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/logger"
	"github.com/shopspring/decimal"
)

// QuoteCacheRepository caches the latest closing price per stock symbol.
type QuoteCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

func NewQuoteCacheRepository(client *redis.Client, expiration time.Duration) *QuoteCacheRepository {
	return &QuoteCacheRepository{client: client, exp: expiration}
}

// GetQuote returns the cached close for symbol or ErrCacheMiss.
func (r *QuoteCacheRepository) GetQuote(ctx context.Context, symbol string) (decimal.Decimal, error) {
	key := fmt.Sprintf("quote:%s", symbol)

	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		err = ErrCacheMiss
	}
	if err != nil {
		logger.Log.Infow("key", key, "result", val, "error", err)
		return decimal.Zero, err
	}

	price, err := decimal.NewFromString(val)
	logger.Log.Infow("key", key, "value", val, "error", err)

	return price, err
}

// SetQuote caches the close for symbol.
func (r *QuoteCacheRepository) SetQuote(ctx context.Context, symbol string, price decimal.Decimal) error {
	key := fmt.Sprintf("quote:%s", symbol)
	err := r.client.Set(ctx, key, price.String(), r.exp).Err()

	logger.Log.Infow("key", key, "price", price, "error", err)

	return err
}
