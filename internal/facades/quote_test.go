package facades

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sbilibin2017/gw-atm-kiosk/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quoteServer(t *testing.T, body string) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "demo", r.URL.Query().Get("apikey"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestLatestClose(t *testing.T) {
	srv := quoteServer(t, `{
		"Meta Data": {"2. Symbol": "AAPL"},
		"Time Series (60min)": {
			"2024-01-05 18:00:00": {"1. open": "181.00", "4. close": "181.10"},
			"2024-01-05 19:00:00": {"1. open": "181.10", "4. close": "181.18"},
			"2024-01-04 19:00:00": {"1. open": "180.00", "4. close": "179.50"}
		}
	}`)

	facade := NewQuotesHTTPFacade(srv.URL, "demo", time.Second)

	price, err := facade.LatestClose(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, "181.18", price.String())
}

func TestLatestClose_Errors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
		wantMsg string
	}{
		{name: "rate limited", body: `{"Note": "Thank you for using Alpha Vantage!"}`, wantMsg: "Thank you"},
		{name: "unknown symbol", body: `{"Error Message": "Invalid API call."}`, wantMsg: "Invalid API call"},
		{name: "empty series", body: `{"Time Series (60min)": {}}`, wantErr: ErrNoQuote},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := quoteServer(t, tt.body)
			facade := NewQuotesHTTPFacade(srv.URL, "demo", time.Second)

			_, err := facade.LatestClose(context.Background(), "ZZZZ")
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestSearch(t *testing.T) {
	srv := quoteServer(t, `{"bestMatches": [
		{"1. symbol": "TSLA", "2. name": "Tesla Inc", "3. type": "Equity"},
		{"1. symbol": "TSLA.LON", "2. name": "Tesla Inc", "3. type": "Equity"}
	]}`)

	facade := NewQuotesHTTPFacade(srv.URL, "demo", time.Second)

	matches, err := facade.Search(context.Background(), "tesla")
	require.NoError(t, err)
	assert.Equal(t, []models.StockMatch{
		{Symbol: "TSLA", Name: "Tesla Inc"},
		{Symbol: "TSLA.LON", Name: "Tesla Inc"},
	}, matches)
}
