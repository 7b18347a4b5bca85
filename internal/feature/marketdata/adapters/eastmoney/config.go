// Package eastmoney provides the domestic A-share market data provider
// backed by the EastMoney quote API.
package eastmoney

import (
	"os"
	"time"

	platformhttp "stock_analyzer/internal/platform/http"
)

// Config holds configuration for the EastMoney API client.
type Config struct {
	BaseURL      string                   // kline API base (e.g. "https://push2his.eastmoney.com")
	QuoteBaseURL string                   // quote/info API base (e.g. "https://push2.eastmoney.com")
	Timeout      time.Duration            // HTTP request timeout
	Retry        platformhttp.RetryPolicy // retry budget for transient failures
}

// LoadConfig loads EastMoney configuration from environment variables,
// falling back to the public endpoints.
func LoadConfig() Config {
	cfg := Config{
		BaseURL:      os.Getenv("EASTMONEY_BASE_URL"),
		QuoteBaseURL: os.Getenv("EASTMONEY_QUOTE_BASE_URL"),
		Timeout:      15 * time.Second,
		Retry:        platformhttp.DefaultRetryPolicy,
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://push2his.eastmoney.com"
	}
	if cfg.QuoteBaseURL == "" {
		cfg.QuoteBaseURL = "https://push2.eastmoney.com"
	}
	return cfg
}
