package facades

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/logger"
	"github.com/sony/gobreaker"
)

// ExchangeRatesHTTPFacade reads rate tables from ExchangeRate-API.
type ExchangeRatesHTTPFacade struct {
	client *resty.Client
	apiKey string
	cb     *gobreaker.CircuitBreaker
}

type latestRatesResponse struct {
	Result          string             `json:"result"`
	ErrorType       string             `json:"error-type"`
	BaseCode        string             `json:"base_code"`
	ConversionRates map[string]float64 `json:"conversion_rates"`
}

// NewExchangeRatesHTTPFacade creates a facade against baseURL, e.g. https://v6.exchangerate-api.com/v6.
func NewExchangeRatesHTTPFacade(baseURL, apiKey string, timeout time.Duration) *ExchangeRatesHTTPFacade {
	return &ExchangeRatesHTTPFacade{
		client: resty.New().SetBaseURL(baseURL).SetTimeout(timeout),
		apiKey: apiKey,
		cb:     newBreaker("exchange-rate-api"),
	}
}

// GetRates returns the latest conversion rates for base.
func (f *ExchangeRatesHTTPFacade) GetRates(ctx context.Context, base string) (map[string]float64, error) {
	return execute(f.cb, func() (map[string]float64, error) {
		var out latestRatesResponse

		resp, err := f.client.R().
			SetContext(ctx).
			SetPathParams(map[string]string{"key": f.apiKey, "base": base}).
			SetResult(&out).
			SetError(&out).
			Get("/{key}/latest/{base}")
		if err != nil {
			logger.Log.Errorw("failed to fetch exchange rates", "base", base, "error", err)
			return nil, err
		}

		if resp.IsError() || out.Result != "success" {
			err = fmt.Errorf("exchange rate api: status %d: %s", resp.StatusCode(), out.ErrorType)
			logger.Log.Errorw("exchange rate api rejected request", "base", base, "error", err)
			return nil, err
		}
		if _, ok := out.ConversionRates[base]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedBase, base)
		}

		return out.ConversionRates, nil
	})
}
