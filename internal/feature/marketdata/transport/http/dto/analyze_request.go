// Package dto defines the HTTP request/response shapes of the marketdata
// feature.
package dto

// AnalyzeRequest is the body of POST /api/analyze. Timeframes optionally
// requests resampled series ("weekly", "monthly") alongside the daily one.
type AnalyzeRequest struct {
	Symbol     string   `json:"symbol"`
	Period     string   `json:"period"`
	Timeframes []string `json:"timeframes"`
}
