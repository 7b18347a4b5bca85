// Package alphavantage provides the fundamentals-oriented US market data
// provider backed by the Alpha Vantage API.
package alphavantage

import (
	"os"
	"time"

	platformhttp "stock_analyzer/internal/platform/http"
)

// Config holds configuration for the Alpha Vantage API client. An empty
// APIKey means the provider is unavailable and the orchestrator skips it.
type Config struct {
	APIKey  string                   // API key for authentication
	BaseURL string                   // Base URL (e.g. "https://www.alphavantage.co")
	Timeout time.Duration            // HTTP request timeout
	Retry   platformhttp.RetryPolicy // retry budget for transient failures
}

// LoadConfig loads Alpha Vantage configuration from environment variables.
func LoadConfig() Config {
	cfg := Config{
		APIKey:  os.Getenv("ALPHA_VANTAGE_API_KEY"),
		BaseURL: os.Getenv("ALPHA_VANTAGE_BASE_URL"),
		Timeout: 15 * time.Second,
		Retry:   platformhttp.DefaultRetryPolicy,
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.alphavantage.co"
	}
	return cfg
}
