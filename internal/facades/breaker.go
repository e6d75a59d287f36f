package facades

import (
	"errors"
	"fmt"
	"time"

	"github.com/sbilibin2017/gw-atm-kiosk/internal/logger"
	"github.com/sony/gobreaker"
)

// ErrUnavailable is returned while a provider's circuit breaker rejects calls.
var ErrUnavailable = errors.New("provider unavailable")

// newBreaker trips after five consecutive failures, or when more than half
// of at least ten requests in a minute fail, and probes again after 30s.
func newBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.ConsecutiveFailures >= 5 ||
				(counts.Requests >= 10 && failureRatio > 0.5)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Log.Warnw("circuit breaker state changed",
				"breaker", name, "from", from.String(), "to", to.String())
		},
	})
}

// execute runs fn through cb and turns breaker rejections into ErrUnavailable.
func execute[T any](cb *gobreaker.CircuitBreaker, fn func() (T, error)) (T, error) {
	var zero T

	res, err := cb.Execute(func() (interface{}, error) {
		return fn()
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return zero, fmt.Errorf("%s: %w", cb.Name(), ErrUnavailable)
	}
	if err != nil {
		return zero, err
	}
	v, _ := res.(T)
	return v, nil
}
