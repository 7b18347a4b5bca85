package alphavantage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"stock_analyzer/internal/feature/marketdata/adapters/alphavantage/dto"
	"stock_analyzer/internal/feature/marketdata/domain"
	"stock_analyzer/internal/feature/marketdata/domain/entity"
	"stock_analyzer/internal/feature/marketdata/usecase"
	platformhttp "stock_analyzer/internal/platform/http"
)

// ProviderName identifies this adapter in acquisition errors and snapshots.
const ProviderName = "alphavantage"

// AlphaVantageProvider fetches daily bars and company fundamentals from
// the Alpha Vantage API.
type AlphaVantageProvider struct {
	cfg    Config
	client *http.Client
}

// Compile-time check that AlphaVantageProvider implements ProviderAdapter.
var _ usecase.ProviderAdapter = (*AlphaVantageProvider)(nil)

// NewAlphaVantageProvider creates a new AlphaVantageProvider with the
// given configuration and HTTP client.
func NewAlphaVantageProvider(cfg Config, client *http.Client) *AlphaVantageProvider {
	return &AlphaVantageProvider{cfg: cfg, client: client}
}

// Name returns the provider identity.
func (p *AlphaVantageProvider) Name() string { return ProviderName }

// Fetch retrieves daily bars for the period. The upstream cannot be
// parameterized by lookback, so the series is filtered client-side to the
// requested window after sorting ascending by date.
func (p *AlphaVantageProvider) Fetch(ctx context.Context, symbol, period string) ([]entity.PricePoint, error) {
	days := entity.LookbackDays(period)

	// The compact output covers only the latest 100 bars.
	outputsize := "compact"
	if days > 100 {
		outputsize = "full"
	}

	q := url.Values{}
	q.Set("function", "TIME_SERIES_DAILY")
	q.Set("symbol", strings.ToUpper(symbol))
	q.Set("outputsize", outputsize)
	q.Set("apikey", p.cfg.APIKey)
	u := fmt.Sprintf("%s/query?%s", p.cfg.BaseURL, q.Encode())

	body, err := platformhttp.GetWithRetry(ctx, p.client, u, p.cfg.Retry)
	if err != nil {
		return nil, domain.Transient(ProviderName, err)
	}

	var res dto.TimeSeriesResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, domain.Malformed(ProviderName, err)
	}
	if res.ErrorMessage != "" {
		return nil, domain.NoData(ProviderName, fmt.Errorf("%s", res.ErrorMessage))
	}
	if res.Note != "" || res.Information != "" {
		// Rate-limit answers arrive with status 200, so the retry helper
		// never saw them; they are terminal for this provider.
		return nil, domain.Transient(ProviderName, fmt.Errorf("api limit: %s%s", res.Note, res.Information))
	}
	if len(res.TimeSeries) == 0 {
		return nil, domain.NoData(ProviderName, fmt.Errorf("no time series for %s", symbol))
	}

	points := make([]entity.PricePoint, 0, len(res.TimeSeries))
	for dateStr, v := range res.TimeSeries {
		d, err := time.Parse(entity.DateFormat, dateStr)
		if err != nil {
			continue
		}
		points = append(points, entity.PricePoint{
			Date:   d.UTC(),
			Open:   parseFloat(v.Open),
			High:   parseFloat(v.High),
			Low:    parseFloat(v.Low),
			Close:  parseFloat(v.Close),
			Volume: parseInt(v.Volume),
		})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })

	// Trim to the requested window; "max" keeps the full history.
	if period != "max" {
		cutoff := time.Now().UTC().AddDate(0, 0, -days)
		for len(points) > 0 && points[0].Date.Before(cutoff) {
			points = points[1:]
		}
	}
	if len(points) == 0 {
		return nil, domain.NoData(ProviderName, fmt.Errorf("no data for %s in period %s", symbol, period))
	}

	slog.Info("fetched US bars", "provider", ProviderName, "symbol", symbol, "bars", len(points))
	return points, nil
}

// FetchMetadata retrieves company info from the OVERVIEW endpoint. Any
// failure is non-fatal: a minimal record built from the symbol and the
// latest close is substituted instead.
func (p *AlphaVantageProvider) FetchMetadata(ctx context.Context, symbol string, lastClose float64) entity.ProviderMetadata {
	sym := strings.ToUpper(symbol)
	meta := entity.ProviderMetadata{
		Symbol:       sym,
		Name:         sym,
		Currency:     "USD",
		CurrentPrice: lastClose,
	}

	q := url.Values{}
	q.Set("function", "OVERVIEW")
	q.Set("symbol", sym)
	q.Set("apikey", p.cfg.APIKey)
	u := fmt.Sprintf("%s/query?%s", p.cfg.BaseURL, q.Encode())

	body, err := platformhttp.GetWithRetry(ctx, p.client, u, platformhttp.RetryPolicy{MaxRetries: 1, BaseDelay: p.cfg.Retry.BaseDelay})
	if err != nil {
		slog.Warn("metadata fetch failed, using fallback", "provider", ProviderName, "symbol", sym, "error", err)
		return meta
	}

	var res dto.OverviewResponse
	if err := json.Unmarshal(body, &res); err != nil || res.Name == "" {
		slog.Warn("metadata decode failed, using fallback", "provider", ProviderName, "symbol", sym)
		return meta
	}

	meta.Name = res.Name
	if res.Currency != "" {
		meta.Currency = res.Currency
	}
	meta.Exchange = res.Exchange
	meta.Sector = res.Sector
	meta.Industry = res.Industry
	if mc, err := strconv.ParseInt(res.MarketCapitalization, 10, 64); err == nil {
		meta.MarketCap = mc
	}
	return meta
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

func parseInt(s string) int64 {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return v
}
