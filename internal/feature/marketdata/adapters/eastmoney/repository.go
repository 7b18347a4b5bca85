package eastmoney

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"stock_analyzer/internal/feature/marketdata/adapters/eastmoney/dto"
	"stock_analyzer/internal/feature/marketdata/domain"
	"stock_analyzer/internal/feature/marketdata/domain/entity"
	"stock_analyzer/internal/feature/marketdata/usecase"
	platformhttp "stock_analyzer/internal/platform/http"
)

// ProviderName identifies this adapter in acquisition errors and snapshots.
const ProviderName = "eastmoney"

// EastMoneyProvider fetches qfq-adjusted daily A-share bars from the
// EastMoney kline API (the same upstream AKShare wraps).
type EastMoneyProvider struct {
	cfg    Config
	client *http.Client
}

// Compile-time check that EastMoneyProvider implements ProviderAdapter.
var _ usecase.ProviderAdapter = (*EastMoneyProvider)(nil)

// NewEastMoneyProvider creates a new EastMoneyProvider with the given
// configuration and HTTP client.
func NewEastMoneyProvider(cfg Config, client *http.Client) *EastMoneyProvider {
	return &EastMoneyProvider{cfg: cfg, client: client}
}

// Name returns the provider identity.
func (p *EastMoneyProvider) Name() string { return ProviderName }

// Fetch retrieves daily bars for the period. Rows whose numeric fields do
// not parse are passed through as NaN so the sanitizer drops them instead
// of repairing them.
func (p *EastMoneyProvider) Fetch(ctx context.Context, symbol, period string) ([]entity.PricePoint, error) {
	code := pureCode(symbol)
	days := entity.LookbackDays(period)
	now := time.Now()

	q := url.Values{}
	q.Set("secid", secID(code))
	q.Set("klt", "101") // daily bars
	q.Set("fqt", "1")   // forward-adjusted (qfq)
	q.Set("beg", now.AddDate(0, 0, -days).Format("20060102"))
	q.Set("end", now.Format("20060102"))
	q.Set("fields1", "f1,f2,f3")
	q.Set("fields2", "f51,f52,f53,f54,f55,f56")

	u := fmt.Sprintf("%s/api/qt/stock/kline/get?%s", p.cfg.BaseURL, q.Encode())

	body, err := platformhttp.GetWithRetry(ctx, p.client, u, p.cfg.Retry)
	if err != nil {
		return nil, domain.Transient(ProviderName, err)
	}

	var res dto.KlineResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, domain.Malformed(ProviderName, err)
	}
	if res.Data == nil || len(res.Data.Klines) == 0 {
		return nil, domain.NoData(ProviderName, fmt.Errorf("no klines for %s", code))
	}

	points := make([]entity.PricePoint, 0, len(res.Data.Klines))
	for _, line := range res.Data.Klines {
		// date,open,close,high,low,volume[,...]
		f := strings.Split(line, ",")
		if len(f) < 6 {
			continue
		}
		d, err := time.Parse(entity.DateFormat, f[0])
		if err != nil {
			continue
		}
		points = append(points, entity.PricePoint{
			Date:   d.UTC(),
			Open:   parseFloat(f[1]),
			Close:  parseFloat(f[2]),
			High:   parseFloat(f[3]),
			Low:    parseFloat(f[4]),
			Volume: parseInt(f[5]),
		})
	}
	slog.Info("fetched A-share bars", "provider", ProviderName, "code", code, "bars", len(points))
	return points, nil
}

// FetchMetadata retrieves instrument info from the quote endpoint. Any
// failure is non-fatal: a minimal record built from the code and the
// latest close is substituted instead.
func (p *EastMoneyProvider) FetchMetadata(ctx context.Context, symbol string, lastClose float64) entity.ProviderMetadata {
	code := pureCode(symbol)
	meta := entity.ProviderMetadata{
		Symbol:       code,
		Name:         code,
		Currency:     "CNY",
		Exchange:     exchangeName(code),
		CurrentPrice: lastClose,
	}

	q := url.Values{}
	q.Set("secid", secID(code))
	q.Set("fields", "f57,f58,f116,f127")
	u := fmt.Sprintf("%s/api/qt/stock/get?%s", p.cfg.QuoteBaseURL, q.Encode())

	body, err := platformhttp.GetWithRetry(ctx, p.client, u, platformhttp.RetryPolicy{MaxRetries: 1, BaseDelay: p.cfg.Retry.BaseDelay})
	if err != nil {
		slog.Warn("metadata fetch failed, using fallback", "provider", ProviderName, "code", code, "error", err)
		return meta
	}

	var res dto.QuoteResponse
	if err := json.Unmarshal(body, &res); err != nil || res.Data == nil {
		slog.Warn("metadata decode failed, using fallback", "provider", ProviderName, "code", code)
		return meta
	}

	if res.Data.Name != "" {
		meta.Name = res.Data.Name
	}
	meta.Sector = res.Data.Industry
	meta.Industry = res.Data.Industry
	if res.Data.MarketCap > 0 && !math.IsInf(res.Data.MarketCap, 0) {
		meta.MarketCap = int64(res.Data.MarketCap)
	}
	return meta
}

// secID builds the EastMoney security id: market prefix 1 for Shanghai
// (codes starting with 6), 0 for Shenzhen.
func secID(code string) string {
	if strings.HasPrefix(code, "6") {
		return "1." + code
	}
	return "0." + code
}

func exchangeName(code string) string {
	if strings.HasPrefix(code, "6") {
		return "上交所"
	}
	return "深交所"
}

// pureCode strips a market suffix like .SS or .SZ from the symbol.
func pureCode(symbol string) string {
	if i := strings.IndexByte(symbol, '.'); i >= 0 {
		return symbol[:i]
	}
	return symbol
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
