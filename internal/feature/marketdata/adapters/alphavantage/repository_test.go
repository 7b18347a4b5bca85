package alphavantage_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock_analyzer/internal/feature/marketdata/adapters/alphavantage"
	"stock_analyzer/internal/feature/marketdata/domain"
	platformhttp "stock_analyzer/internal/platform/http"
)

func testConfig(baseURL string) alphavantage.Config {
	return alphavantage.Config{
		APIKey:  "demo",
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Retry:   platformhttp.RetryPolicy{MaxRetries: 0, BaseDelay: time.Millisecond},
	}
}

// recentSeriesBody builds a two-day series ending today so client-side
// window trimming keeps both rows.
func recentSeriesBody() string {
	d1 := time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")
	d2 := time.Now().UTC().Format("2006-01-02")
	return fmt.Sprintf(`{"Time Series (Daily)":{
		"%s":{"1. open":"185.0","2. high":"186.5","3. low":"184.0","4. close":"186.0","5. volume":"50000000"},
		"%s":{"1. open":"186.0","2. high":"188.0","3. low":"185.5","4. close":"187.5","5. volume":"48000000"}}}`, d1, d2)
}

func TestAlphaVantageProvider_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/query", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "TIME_SERIES_DAILY", q.Get("function"))
		assert.Equal(t, "AAPL", q.Get("symbol"))
		assert.Equal(t, "demo", q.Get("apikey"))
		assert.Equal(t, "full", q.Get("outputsize"), "a 1y window exceeds the compact 100 bars")
		_, _ = w.Write([]byte(recentSeriesBody()))
	}))
	defer srv.Close()

	p := alphavantage.NewAlphaVantageProvider(testConfig(srv.URL), srv.Client())
	points, err := p.Fetch(context.Background(), "aapl", "1y")
	require.NoError(t, err)
	require.Len(t, points, 2)

	assert.True(t, points[0].Date.Before(points[1].Date), "map order normalized to ascending")
	assert.Equal(t, 186.0, points[0].Close)
	assert.Equal(t, 187.5, points[1].Close)
	assert.Equal(t, int64(48000000), points[1].Volume)
}

func TestAlphaVantageProvider_Fetch_CompactForShortWindows(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "compact", r.URL.Query().Get("outputsize"))
		_, _ = w.Write([]byte(recentSeriesBody()))
	}))
	defer srv.Close()

	p := alphavantage.NewAlphaVantageProvider(testConfig(srv.URL), srv.Client())
	_, err := p.Fetch(context.Background(), "AAPL", "3mo")
	require.NoError(t, err)
}

func TestAlphaVantageProvider_Fetch_TrimsOutsideWindow(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		old := time.Now().UTC().AddDate(-3, 0, 0).Format("2006-01-02")
		recent := time.Now().UTC().Format("2006-01-02")
		_, _ = w.Write([]byte(fmt.Sprintf(`{"Time Series (Daily)":{
			"%s":{"1. open":"90.0","2. high":"91.0","3. low":"89.0","4. close":"90.5","5. volume":"1000"},
			"%s":{"1. open":"185.0","2. high":"186.5","3. low":"184.0","4. close":"186.0","5. volume":"50000000"}}}`, old, recent)))
	}))
	defer srv.Close()

	p := alphavantage.NewAlphaVantageProvider(testConfig(srv.URL), srv.Client())
	points, err := p.Fetch(context.Background(), "AAPL", "1y")
	require.NoError(t, err)
	require.Len(t, points, 1, "bars older than the window are dropped")
	assert.Equal(t, 186.0, points[0].Close)
}

func TestAlphaVantageProvider_Fetch_ErrorMessageIsNoData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"Error Message":"Invalid API call."}`))
	}))
	defer srv.Close()

	p := alphavantage.NewAlphaVantageProvider(testConfig(srv.URL), srv.Client())
	_, err := p.Fetch(context.Background(), "NOPE", "1y")
	assert.ErrorIs(t, err, domain.ErrNoData)
}

func TestAlphaVantageProvider_Fetch_RateLimitNoteIsTransient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"Note":"Thank you for using Alpha Vantage! Our standard API rate limit is 25 requests per day."}`))
	}))
	defer srv.Close()

	p := alphavantage.NewAlphaVantageProvider(testConfig(srv.URL), srv.Client())
	_, err := p.Fetch(context.Background(), "AAPL", "1y")
	assert.ErrorIs(t, err, domain.ErrTransient)
}

func TestAlphaVantageProvider_FetchMetadata(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "OVERVIEW", r.URL.Query().Get("function"))
		_, _ = w.Write([]byte(`{"Name":"Apple Inc.","Currency":"USD","Exchange":"NASDAQ",
			"Sector":"TECHNOLOGY","Industry":"ELECTRONIC COMPUTERS","MarketCapitalization":"2900000000000"}`))
	}))
	defer srv.Close()

	p := alphavantage.NewAlphaVantageProvider(testConfig(srv.URL), srv.Client())
	meta := p.FetchMetadata(context.Background(), "AAPL", 186.0)

	assert.Equal(t, "Apple Inc.", meta.Name)
	assert.Equal(t, "NASDAQ", meta.Exchange)
	assert.Equal(t, "TECHNOLOGY", meta.Sector)
	assert.Equal(t, int64(2900000000000), meta.MarketCap)
	assert.Equal(t, 186.0, meta.CurrentPrice)
}

func TestAlphaVantageProvider_FetchMetadata_FallsBackOnFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	p := alphavantage.NewAlphaVantageProvider(testConfig(srv.URL), srv.Client())
	meta := p.FetchMetadata(context.Background(), "aapl", 186.0)

	assert.Equal(t, "AAPL", meta.Name)
	assert.Equal(t, "USD", meta.Currency)
}
