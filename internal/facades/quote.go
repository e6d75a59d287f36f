package facades

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/logger"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/models"
	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker"
)

// ErrNoQuote is returned when the provider has no price data for a symbol.
var ErrNoQuote = errors.New("no quote available")

// QuotesHTTPFacade reads stock prices from Alpha Vantage.
type QuotesHTTPFacade struct {
	client  *resty.Client
	baseURL string
	apiKey  string
	cb      *gobreaker.CircuitBreaker
}

// NewQuotesHTTPFacade creates a facade against the query endpoint, e.g. https://www.alphavantage.co/query.
func NewQuotesHTTPFacade(baseURL, apiKey string, timeout time.Duration) *QuotesHTTPFacade {
	return &QuotesHTTPFacade{
		client:  resty.New().SetTimeout(timeout),
		baseURL: baseURL,
		apiKey:  apiKey,
		cb:      newBreaker("alpha-vantage"),
	}
}

// Alpha Vantage answers 200 with one of these keys set when it refuses a call.
type apiNotice struct {
	ErrorMessage string `json:"Error Message"`
	Note         string `json:"Note"`
	Information  string `json:"Information"`
}

func (n apiNotice) err() error {
	for _, msg := range []string{n.ErrorMessage, n.Note, n.Information} {
		if msg != "" {
			return fmt.Errorf("alpha vantage: %s", msg)
		}
	}
	return nil
}

type intradayResponse struct {
	apiNotice
	Series map[string]struct {
		Close string `json:"4. close"`
	} `json:"Time Series (60min)"`
}

type searchResponse struct {
	apiNotice
	BestMatches []struct {
		Symbol string `json:"1. symbol"`
		Name   string `json:"2. name"`
	} `json:"bestMatches"`
}

func (f *QuotesHTTPFacade) get(ctx context.Context, params map[string]string, out any) error {
	params["apikey"] = f.apiKey

	resp, err := f.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(out).
		Get(f.baseURL)
	if err != nil {
		logger.Log.Errorw("alpha vantage request failed", "function", params["function"], "error", err)
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("alpha vantage: status %d", resp.StatusCode())
	}
	return nil
}

// LatestClose returns the most recent hourly close for symbol in USD.
func (f *QuotesHTTPFacade) LatestClose(ctx context.Context, symbol string) (decimal.Decimal, error) {
	return execute(f.cb, func() (decimal.Decimal, error) {
		var out intradayResponse
		err := f.get(ctx, map[string]string{
			"function": "TIME_SERIES_INTRADAY",
			"symbol":   symbol,
			"interval": "60min",
		}, &out)
		if err == nil {
			err = out.err()
		}
		if err != nil {
			return decimal.Zero, err
		}

		if len(out.Series) == 0 {
			return decimal.Zero, fmt.Errorf("%w: %s", ErrNoQuote, symbol)
		}
		// timestamps are "2006-01-02 15:04:05" and sort lexically
		stamps := make([]string, 0, len(out.Series))
		for ts := range out.Series {
			stamps = append(stamps, ts)
		}
		sort.Strings(stamps)
		latest := stamps[len(stamps)-1]

		price, err := decimal.NewFromString(out.Series[latest].Close)
		if err != nil {
			return decimal.Zero, fmt.Errorf("alpha vantage: bad close %q for %s: %w", out.Series[latest].Close, symbol, err)
		}

		logger.Log.Infow("quote fetched", "symbol", symbol, "at", latest, "close", price)
		return price, nil
	})
}

// Search returns the symbols best matching keywords.
func (f *QuotesHTTPFacade) Search(ctx context.Context, keywords string) ([]models.StockMatch, error) {
	return execute(f.cb, func() ([]models.StockMatch, error) {
		var out searchResponse
		err := f.get(ctx, map[string]string{
			"function": "SYMBOL_SEARCH",
			"keywords": keywords,
		}, &out)
		if err == nil {
			err = out.err()
		}
		if err != nil {
			return nil, err
		}

		matches := make([]models.StockMatch, 0, len(out.BestMatches))
		for _, m := range out.BestMatches {
			matches = append(matches, models.StockMatch{Symbol: m.Symbol, Name: m.Name})
		}
		return matches, nil
	})
}
