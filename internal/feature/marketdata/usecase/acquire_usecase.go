// Package usecase implements the acquisition pipeline: symbol
// classification, provider selection with fallthrough, and snapshot
// assembly.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"stock_analyzer/internal/feature/marketdata/domain"
	"stock_analyzer/internal/feature/marketdata/domain/entity"
	"stock_analyzer/internal/feature/marketdata/indicator"
	"stock_analyzer/internal/feature/marketdata/sanitize"
)

// DefaultPeriod is used when the caller does not specify one.
const DefaultPeriod = "2y"

// ProviderAdapter abstracts one upstream data source. Following Go
// convention, the interface is defined by the consumer (usecase), not the
// provider (adapters).
type ProviderAdapter interface {
	// Name returns the provider identity used in errors and snapshots.
	Name() string
	// Fetch retrieves the raw daily series for the period. Failures are
	// returned as *domain.AcquisitionError.
	Fetch(ctx context.Context, symbol, period string) ([]entity.PricePoint, error)
	// FetchMetadata retrieves instrument metadata. It never fails: on
	// upstream errors a minimal record built from the symbol and the
	// latest close is substituted.
	FetchMetadata(ctx context.Context, symbol string, lastClose float64) entity.ProviderMetadata
}

// Config carries the provider availability knowledge the orchestrator
// needs. A missing key means "provider unavailable": the chain skips to
// the next provider without attempting a call.
type Config struct {
	AlphaVantageAPIKey string
}

// AcquireUsecase runs the sequential acquisition pipeline: classify the
// symbol, try providers strictly in priority order (never in parallel -
// each call may consume rate-limited quota), and assemble one normalized
// snapshot from the first provider that yields a non-empty cleaned series.
type AcquireUsecase struct {
	domestic     ProviderAdapter
	fundamentals ProviderAdapter
	generic      ProviderAdapter
	cfg          Config
}

// NewAcquireUsecase creates an AcquireUsecase over the three providers.
func NewAcquireUsecase(domestic, fundamentals, generic ProviderAdapter, cfg Config) *AcquireUsecase {
	return &AcquireUsecase{domestic: domestic, fundamentals: fundamentals, generic: generic, cfg: cfg}
}

// GetStockData acquires the snapshot for a symbol and period. It always
// returns either a complete snapshot or an error; a half-populated
// snapshot is never produced.
func (u *AcquireUsecase) GetStockData(ctx context.Context, symbol, period string) (*entity.Snapshot, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, errors.New("symbol must not be empty")
	}
	if period == "" {
		period = DefaultPeriod
	}

	if IsAShare(symbol) {
		return u.acquireDomestic(ctx, symbol, period)
	}
	return u.acquireInternational(ctx, symbol, period)
}

// acquireDomestic tries the domestic provider first, then the generic
// provider with the exchange-suffixed symbol.
func (u *AcquireUsecase) acquireDomestic(ctx context.Context, symbol, period string) (*entity.Snapshot, error) {
	snap, err := u.acquire(ctx, u.domestic, symbol, period)
	if err == nil {
		return snap, nil
	}
	slog.Warn("domestic provider failed, falling through", "symbol", symbol, "error", err)

	alt := FallbackSymbol(PureCode(symbol))
	snap, lastErr := u.acquire(ctx, u.generic, alt, period)
	if lastErr != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrAllProvidersFailed, lastErr)
	}
	return snap, nil
}

// acquireInternational tries the fundamentals provider when its key is
// configured, then the generic provider.
func (u *AcquireUsecase) acquireInternational(ctx context.Context, symbol, period string) (*entity.Snapshot, error) {
	if u.cfg.AlphaVantageAPIKey != "" {
		snap, err := u.acquire(ctx, u.fundamentals, symbol, period)
		if err == nil {
			return snap, nil
		}
		slog.Warn("fundamentals provider failed, falling through", "symbol", symbol, "error", err)
	}

	snap, lastErr := u.acquire(ctx, u.generic, symbol, period)
	if lastErr != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrAllProvidersFailed, lastErr)
	}
	return snap, nil
}

// acquire runs the full fetch + clean + metadata + indicator cycle on one
// provider. Providers abandoned by fallthrough are never partially reused.
func (u *AcquireUsecase) acquire(ctx context.Context, p ProviderAdapter, symbol, period string) (*entity.Snapshot, error) {
	raw, err := p.Fetch(ctx, symbol, period)
	if err != nil {
		return nil, err
	}

	series := sanitize.Clean(raw)
	if len(series) == 0 {
		return nil, domain.NoData(p.Name(), errors.New("series empty after cleaning"))
	}

	meta := p.FetchMetadata(ctx, symbol, series.LatestClose())
	cols := indicator.Compute(series)

	return buildSnapshot(symbol, p.Name(), meta, series, cols), nil
}
