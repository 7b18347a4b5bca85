// Package di provides dependency injection factories for creating
// application components.
package di

import (
	"stock_analyzer/internal/feature/marketdata/adapters/alphavantage"
	"stock_analyzer/internal/feature/marketdata/adapters/eastmoney"
	"stock_analyzer/internal/feature/marketdata/adapters/yahoo"
	"stock_analyzer/internal/feature/marketdata/usecase"
	infrahttp "stock_analyzer/internal/platform/http"
)

// NewAcquireUsecase creates the fully wired acquisition usecase with all
// three providers behind dedicated HTTP clients.
func NewAcquireUsecase() *usecase.AcquireUsecase {
	emCfg := eastmoney.LoadConfig()
	avCfg := alphavantage.LoadConfig()
	yhCfg := yahoo.LoadConfig()

	domestic := eastmoney.NewEastMoneyProvider(emCfg, infrahttp.NewHTTPClient(emCfg.Timeout))
	fundamentals := alphavantage.NewAlphaVantageProvider(avCfg, infrahttp.NewHTTPClient(avCfg.Timeout))
	generic := yahoo.NewYahooProvider(yhCfg, infrahttp.NewHTTPClient(yhCfg.Timeout))

	return usecase.NewAcquireUsecase(domestic, fundamentals, generic, usecase.Config{
		AlphaVantageAPIKey: avCfg.APIKey,
	})
}
