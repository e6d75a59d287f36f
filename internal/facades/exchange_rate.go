package facades

import (
	"context"
	"errors"
	"fmt"

	"github.com/sbilibin2017/gw-atm-kiosk/internal/logger"
	pb "github.com/sbilibin2017/proto-exchange/exchange"
)

// ErrUnsupportedBase is returned when the provider has no rate for the base currency.
var ErrUnsupportedBase = errors.New("unsupported base currency")

// ExchangeRatesGRPCFacade reads rate tables from the gw-exchanger service over gRPC.
type ExchangeRatesGRPCFacade struct {
	client pb.ExchangeServiceClient
}

// NewExchangeRatesGRPCFacade creates a new facade with a gRPC client.
func NewExchangeRatesGRPCFacade(client pb.ExchangeServiceClient) *ExchangeRatesGRPCFacade {
	return &ExchangeRatesGRPCFacade{client: client}
}

// GetRates fetches the exchanger's full table and rebases it on base,
// so that rates[X] is the amount of X one unit of base buys.
func (f *ExchangeRatesGRPCFacade) GetRates(ctx context.Context, base string) (map[string]float64, error) {
	resp, err := f.client.GetExchangeRates(ctx, &pb.Empty{})
	if err != nil {
		logger.Log.Errorw("failed to fetch exchange rates via gRPC", "error", err)
		return nil, err
	}

	baseRate, ok := resp.Rates[base]
	if !ok || baseRate <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedBase, base)
	}

	rates := make(map[string]float64, len(resp.Rates))
	for currency, rate := range resp.Rates {
		rates[currency] = float64(rate) / float64(baseRate)
	}
	rates[base] = 1

	return rates, nil
}
