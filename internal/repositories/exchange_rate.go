package repositories

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/logger"
)

// ErrCacheMiss is returned when nothing is cached under the key.
var ErrCacheMiss = errors.New("cache miss")

// ExchangeRateCacheRepository caches rate tables in Redis, one hash per base currency.
type ExchangeRateCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached rates
}

// NewExchangeRateCacheRepository creates a new repository instance with the given TTL.
func NewExchangeRateCacheRepository(client *redis.Client, expiration time.Duration) *ExchangeRateCacheRepository {
	return &ExchangeRateCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func ratesKey(base string) string {
	return fmt.Sprintf("exchange_rates:%s", base)
}

// GetRates returns the cached rate table for base or ErrCacheMiss.
func (r *ExchangeRateCacheRepository) GetRates(ctx context.Context, base string) (map[string]float64, error) {
	key := ratesKey(base)

	vals, err := r.client.HGetAll(ctx, key).Result()
	if err == nil && len(vals) == 0 {
		err = ErrCacheMiss
	}
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"result", nil,
			"error", err,
		)
		return nil, err
	}

	rates := make(map[string]float64, len(vals))
	for code, val := range vals {
		rate, err := strconv.ParseFloat(val, 64)
		if err != nil {
			logger.Log.Infow(
				"key", key,
				"field", code,
				"value", val,
				"error", err,
			)
			return nil, err
		}
		rates[code] = rate
	}

	logger.Log.Infow(
		"key", key,
		"result", len(rates),
		"error", nil,
	)

	return rates, nil
}

// SetRates replaces the cached rate table for base and sets its expiration.
func (r *ExchangeRateCacheRepository) SetRates(ctx context.Context, base string, rates map[string]float64) error {
	key := ratesKey(base)

	fields := make(map[string]any, len(rates))
	for code, rate := range rates {
		fields[code] = strconv.FormatFloat(rate, 'f', -1, 64)
	}

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.HSet(ctx, key, fields)
		pipe.Expire(ctx, key, r.exp)
		return nil
	})

	logger.Log.Infow(
		"key", key,
		"rates", len(rates),
		"result", "ok",
		"error", err,
	)

	return err
}
