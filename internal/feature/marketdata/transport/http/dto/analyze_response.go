package dto

import "stock_analyzer/internal/feature/marketdata/domain/entity"

// AnalyzeResponse is the success body of POST /api/analyze. The weekly
// and monthly series are only present when requested.
type AnalyzeResponse struct {
	Success     bool                    `json:"success"`
	Symbol      string                  `json:"symbol"`
	Period      string                  `json:"period"`
	Provider    string                  `json:"provider"`
	StockInfo   entity.ProviderMetadata `json:"stock_info"`
	Indicators  entity.IndicatorSet     `json:"indicators"`
	Stats       entity.Stats            `json:"stats"`
	Data        []entity.SeriesRow      `json:"data"`
	DataWeekly  []entity.SeriesRow      `json:"data_weekly,omitempty"`
	DataMonthly []entity.SeriesRow      `json:"data_monthly,omitempty"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Success bool   `json:"success"`
}

// KeysResponse reports which optional credentials are configured.
type KeysResponse struct {
	AlphaVantage bool `json:"alpha_vantage"`
	ServerChan   bool `json:"serverchan"`
}
