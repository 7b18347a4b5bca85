package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock_analyzer/internal/feature/marketdata/domain"
	"stock_analyzer/internal/feature/marketdata/domain/entity"
	"stock_analyzer/internal/feature/marketdata/usecase"
)

// mockProvider is a func-field mock of the ProviderAdapter interface.
type mockProvider struct {
	name              string
	FetchFunc         func(ctx context.Context, symbol, period string) ([]entity.PricePoint, error)
	FetchMetadataFunc func(ctx context.Context, symbol string, lastClose float64) entity.ProviderMetadata
}

func (m *mockProvider) Name() string { return m.name }

func (m *mockProvider) Fetch(ctx context.Context, symbol, period string) ([]entity.PricePoint, error) {
	return m.FetchFunc(ctx, symbol, period)
}

func (m *mockProvider) FetchMetadata(ctx context.Context, symbol string, lastClose float64) entity.ProviderMetadata {
	if m.FetchMetadataFunc != nil {
		return m.FetchMetadataFunc(ctx, symbol, lastClose)
	}
	return entity.ProviderMetadata{Symbol: symbol, Name: "Mock Corp", Currency: "USD", CurrentPrice: lastClose}
}

// untouched returns a provider whose Fetch fails the test when called.
func untouched(t *testing.T, name string) *mockProvider {
	t.Helper()
	return &mockProvider{
		name: name,
		FetchFunc: func(ctx context.Context, symbol, period string) ([]entity.PricePoint, error) {
			t.Errorf("provider %s must not be called", name)
			return nil, domain.NoData(name, nil)
		},
	}
}

// risingPoints builds n daily bars whose close rises by one per day.
func risingPoints(n int, start float64) []entity.PricePoint {
	base := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	out := make([]entity.PricePoint, n)
	for i := range out {
		c := start + float64(i)
		out[i] = entity.PricePoint{
			Date: base.AddDate(0, 0, i), Open: c, High: c + 1, Low: c - 1, Close: c, Volume: 1000,
		}
	}
	return out
}

func TestGetStockData_InternationalWithoutKey(t *testing.T) {
	generic := &mockProvider{
		name: "yahoo",
		FetchFunc: func(ctx context.Context, symbol, period string) ([]entity.PricePoint, error) {
			assert.Equal(t, "AAPL", symbol)
			assert.Equal(t, "2y", period, "empty period falls back to the default")
			return risingPoints(30, 100), nil
		},
	}
	uc := usecase.NewAcquireUsecase(untouched(t, "eastmoney"), untouched(t, "alphavantage"), generic, usecase.Config{})

	snap, err := uc.GetStockData(context.Background(), " aapl ", "")
	require.NoError(t, err)

	assert.Equal(t, "AAPL", snap.Symbol)
	assert.Equal(t, "yahoo", snap.Provider)
	assert.Equal(t, "Mock Corp", snap.Info.Name)
	assert.Len(t, snap.Data, 30)
	assert.Len(t, snap.Series, 30)

	// Close rose from 100 to 129, a 29 percent change.
	assert.InDelta(t, 29.0, snap.Stats.PeriodChange, 1e-9)
	assert.InDelta(t, 129.0, snap.Stats.LatestClose, 1e-9)
	assert.Equal(t, int64(1000), snap.Stats.LatestVolume)

	// 30 bars suffice for the 20-day moving average but not the 200-day.
	last := snap.Data[len(snap.Data)-1]
	assert.NotNil(t, last.MA20)
	assert.Nil(t, last.MA200)
	assert.Equal(t, snap.Indicators, last.IndicatorSet, "snapshot carries the latest values")
}

func TestGetStockData_FundamentalsPreferredWithKey(t *testing.T) {
	fundamentals := &mockProvider{
		name: "alphavantage",
		FetchFunc: func(ctx context.Context, symbol, period string) ([]entity.PricePoint, error) {
			return risingPoints(30, 50), nil
		},
	}
	uc := usecase.NewAcquireUsecase(untouched(t, "eastmoney"), fundamentals, untouched(t, "yahoo"), usecase.Config{AlphaVantageAPIKey: "demo"})

	snap, err := uc.GetStockData(context.Background(), "MSFT", "1y")
	require.NoError(t, err)
	assert.Equal(t, "alphavantage", snap.Provider)
}

func TestGetStockData_DomesticFallsThroughWithSuffix(t *testing.T) {
	domestic := &mockProvider{
		name: "eastmoney",
		FetchFunc: func(ctx context.Context, symbol, period string) ([]entity.PricePoint, error) {
			return nil, domain.NoData("eastmoney", errors.New("no klines"))
		},
	}
	generic := &mockProvider{
		name: "yahoo",
		FetchFunc: func(ctx context.Context, symbol, period string) ([]entity.PricePoint, error) {
			assert.Equal(t, "600519.SS", symbol, "fallback uses the exchange-suffixed code")
			return risingPoints(30, 1500), nil
		},
	}
	uc := usecase.NewAcquireUsecase(domestic, untouched(t, "alphavantage"), generic, usecase.Config{})

	snap, err := uc.GetStockData(context.Background(), "600519", "1y")
	require.NoError(t, err)
	assert.Equal(t, "yahoo", snap.Provider)
}

func TestGetStockData_AllProvidersFailed(t *testing.T) {
	failing := func(name string) *mockProvider {
		return &mockProvider{
			name: name,
			FetchFunc: func(ctx context.Context, symbol, period string) ([]entity.PricePoint, error) {
				return nil, domain.Transient(name, errors.New("connection refused"))
			},
		}
	}
	uc := usecase.NewAcquireUsecase(failing("eastmoney"), failing("alphavantage"), failing("yahoo"), usecase.Config{AlphaVantageAPIKey: "demo"})

	snap, err := uc.GetStockData(context.Background(), "AAPL", "1y")
	assert.Nil(t, snap)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAllProvidersFailed)
	assert.ErrorIs(t, err, domain.ErrTransient, "the last provider error stays inspectable")
}

func TestGetStockData_EmptySeriesAfterCleaningFallsThrough(t *testing.T) {
	domestic := &mockProvider{
		name: "eastmoney",
		FetchFunc: func(ctx context.Context, symbol, period string) ([]entity.PricePoint, error) {
			// Every row is invalid, so the cleaned series is empty.
			return []entity.PricePoint{{Close: -1}}, nil
		},
	}
	generic := &mockProvider{
		name: "yahoo",
		FetchFunc: func(ctx context.Context, symbol, period string) ([]entity.PricePoint, error) {
			return risingPoints(25, 10), nil
		},
	}
	uc := usecase.NewAcquireUsecase(domestic, untouched(t, "alphavantage"), generic, usecase.Config{})

	snap, err := uc.GetStockData(context.Background(), "000001", "6mo")
	require.NoError(t, err)
	assert.Equal(t, "yahoo", snap.Provider)
}

func TestGetStockData_EmptySymbol(t *testing.T) {
	uc := usecase.NewAcquireUsecase(untouched(t, "eastmoney"), untouched(t, "alphavantage"), untouched(t, "yahoo"), usecase.Config{})

	_, err := uc.GetStockData(context.Background(), "   ", "1y")
	assert.Error(t, err)
}
