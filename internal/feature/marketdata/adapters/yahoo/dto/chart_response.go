// Package dto defines the response shapes of the Yahoo Finance chart API.
package dto

// ChartResponse is the top-level container of /v8/finance/chart.
type ChartResponse struct {
	Chart Chart `json:"chart"`
}

// Chart carries either results or an API-level error.
type Chart struct {
	Result []Result    `json:"result"`
	Error  *ChartError `json:"error"`
}

// ChartError is the API-level error (e.g. "Not Found" for an unknown
// symbol), delivered with HTTP 200.
type ChartError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// Result pairs the bar timestamps with the quote arrays and instrument
// metadata.
type Result struct {
	Meta       Meta       `json:"meta"`
	Timestamp  []int64    `json:"timestamp"`
	Indicators Indicators `json:"indicators"`
}

// Meta describes the instrument; it rides along with every chart answer.
type Meta struct {
	Currency             string  `json:"currency"`
	Symbol               string  `json:"symbol"`
	FullExchangeName     string  `json:"fullExchangeName"`
	LongName             string  `json:"longName"`
	RegularMarketPrice   float64 `json:"regularMarketPrice"`
	ExchangeTimezoneName string  `json:"exchangeTimezoneName"`
}

// Indicators wraps the single quote block of a chart answer.
type Indicators struct {
	Quote []Quote `json:"quote"`
}

// Quote holds the parallel OHLCV arrays. Entries are null for holidays
// and halted sessions, hence the pointer element types.
type Quote struct {
	Open   []*float64 `json:"open"`
	High   []*float64 `json:"high"`
	Low    []*float64 `json:"low"`
	Close  []*float64 `json:"close"`
	Volume []*int64   `json:"volume"`
}
