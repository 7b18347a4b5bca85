// Package dto defines the response shapes of the EastMoney quote API.
package dto

// KlineResponse is the envelope of the kline (candlestick) endpoint.
// Data is null when the security does not exist.
type KlineResponse struct {
	Data *KlineData `json:"data"`
}

// KlineData carries the security identity and the raw kline rows.
// Each kline is a comma-joined record: date,open,close,high,low,volume,...
type KlineData struct {
	Code   string   `json:"code"`
	Name   string   `json:"name"`
	Klines []string `json:"klines"`
}

// QuoteResponse is the envelope of the realtime quote/info endpoint.
type QuoteResponse struct {
	Data *QuoteData `json:"data"`
}

// QuoteData carries the instrument fields requested via the fields
// parameter (f58 name, f116 total market cap, f127 industry).
type QuoteData struct {
	Name      string  `json:"f58"`
	MarketCap float64 `json:"f116"`
	Industry  string  `json:"f127"`
}
