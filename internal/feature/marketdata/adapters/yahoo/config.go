// Package yahoo provides the generic fallback market data provider backed
// by the public Yahoo Finance chart API.
package yahoo

import (
	"os"
	"time"

	platformhttp "stock_analyzer/internal/platform/http"
)

// Config holds configuration for the Yahoo Finance client. The API needs
// no key, so this provider is always available as the last resort.
type Config struct {
	BaseURL string                   // Base URL (e.g. "https://query1.finance.yahoo.com")
	Timeout time.Duration            // HTTP request timeout
	Retry   platformhttp.RetryPolicy // retry budget for transient failures
}

// LoadConfig loads Yahoo Finance configuration from environment variables.
func LoadConfig() Config {
	cfg := Config{
		BaseURL: os.Getenv("YAHOO_BASE_URL"),
		Timeout: 15 * time.Second,
		Retry:   platformhttp.DefaultRetryPolicy,
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://query1.finance.yahoo.com"
	}
	return cfg
}
