package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"stock_analyzer/internal/feature/marketdata/adapters/yahoo/dto"
	"stock_analyzer/internal/feature/marketdata/domain"
	"stock_analyzer/internal/feature/marketdata/domain/entity"
	"stock_analyzer/internal/feature/marketdata/usecase"
	platformhttp "stock_analyzer/internal/platform/http"
)

// ProviderName identifies this adapter in acquisition errors and snapshots.
const ProviderName = "yahoo"

// validRanges are the period tokens the chart API accepts directly.
var validRanges = map[string]bool{
	"1mo": true, "3mo": true, "6mo": true,
	"1y": true, "2y": true, "5y": true, "max": true,
}

// YahooProvider fetches daily bars from the public Yahoo Finance chart
// API. It needs no API key and serves as the generic fallback for both
// symbol classes (A-shares via the .SS/.SZ suffix).
type YahooProvider struct {
	cfg    Config
	client *http.Client
}

// Compile-time check that YahooProvider implements ProviderAdapter.
var _ usecase.ProviderAdapter = (*YahooProvider)(nil)

// NewYahooProvider creates a new YahooProvider with the given
// configuration and HTTP client.
func NewYahooProvider(cfg Config, client *http.Client) *YahooProvider {
	return &YahooProvider{cfg: cfg, client: client}
}

// Name returns the provider identity.
func (p *YahooProvider) Name() string { return ProviderName }

// Fetch retrieves daily bars for the period. The chart API accepts the
// period enumeration as its range parameter directly; bars that are null
// across all quote fields (holidays) are skipped.
func (p *YahooProvider) Fetch(ctx context.Context, symbol, period string) ([]entity.PricePoint, error) {
	res, err := p.fetchChart(ctx, symbol, period)
	if err != nil {
		return nil, err
	}

	if len(res.Indicators.Quote) == 0 {
		return nil, domain.Malformed(ProviderName, fmt.Errorf("chart result without quote block"))
	}
	quote := res.Indicators.Quote[0]

	points := make([]entity.PricePoint, 0, len(res.Timestamp))
	for i, ts := range res.Timestamp {
		if i >= len(quote.Close) || quote.Close[i] == nil {
			continue // null bar
		}
		day := time.Unix(ts, 0).UTC()
		points = append(points, entity.PricePoint{
			Date:   time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC),
			Open:   deref(quote.Open, i),
			High:   deref(quote.High, i),
			Low:    deref(quote.Low, i),
			Close:  *quote.Close[i],
			Volume: derefInt(quote.Volume, i),
		})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })

	slog.Info("fetched bars", "provider", ProviderName, "symbol", symbol, "bars", len(points))
	return points, nil
}

// FetchMetadata reads the instrument metadata that rides along with a
// one-day chart answer. Any failure is non-fatal: a minimal record built
// from the symbol and the latest close is substituted instead.
func (p *YahooProvider) FetchMetadata(ctx context.Context, symbol string, lastClose float64) entity.ProviderMetadata {
	sym := strings.ToUpper(symbol)
	meta := entity.ProviderMetadata{
		Symbol:       sym,
		Name:         sym,
		Currency:     "USD",
		CurrentPrice: lastClose,
	}

	res, err := p.fetchChart(ctx, symbol, "1mo")
	if err != nil {
		slog.Warn("metadata fetch failed, using fallback", "provider", ProviderName, "symbol", sym, "error", err)
		return meta
	}

	if res.Meta.LongName != "" {
		meta.Name = res.Meta.LongName
	}
	if res.Meta.Currency != "" {
		meta.Currency = res.Meta.Currency
	}
	meta.Exchange = res.Meta.FullExchangeName
	if res.Meta.RegularMarketPrice > 0 {
		meta.CurrentPrice = res.Meta.RegularMarketPrice
	}
	return meta
}

func (p *YahooProvider) fetchChart(ctx context.Context, symbol, period string) (*dto.Result, error) {
	rng := period
	if !validRanges[rng] {
		rng = "2y"
	}

	u := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=%s",
		p.cfg.BaseURL, url.PathEscape(symbol), rng)

	body, err := platformhttp.GetWithRetry(ctx, p.client, u, p.cfg.Retry)
	if err != nil {
		return nil, domain.Transient(ProviderName, err)
	}

	var res dto.ChartResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, domain.Malformed(ProviderName, err)
	}
	if res.Chart.Error != nil {
		return nil, domain.NoData(ProviderName, fmt.Errorf("%s: %s", res.Chart.Error.Code, res.Chart.Error.Description))
	}
	if len(res.Chart.Result) == 0 || len(res.Chart.Result[0].Timestamp) == 0 {
		return nil, domain.NoData(ProviderName, fmt.Errorf("no data returned for %s", symbol))
	}
	return &res.Chart.Result[0], nil
}

func deref(vs []*float64, i int) float64 {
	if i >= len(vs) || vs[i] == nil {
		return 0
	}
	return *vs[i]
}

func derefInt(vs []*int64, i int) int64 {
	if i >= len(vs) || vs[i] == nil {
		return 0
	}
	return *vs[i]
}
