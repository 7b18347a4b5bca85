// Package dto defines the response shapes of the Alpha Vantage API.
package dto

// TimeSeriesResponse is the TIME_SERIES_DAILY response. Exactly one of
// the error-ish fields or TimeSeries is populated: ErrorMessage for an
// unknown symbol, Note/Information when the API rate limit is reached.
type TimeSeriesResponse struct {
	ErrorMessage string                `json:"Error Message"`
	Note         string                `json:"Note"`
	Information  string                `json:"Information"`
	TimeSeries   map[string]DailyQuote `json:"Time Series (Daily)"`
}

// DailyQuote is one day of OHLCV data, keyed by date in the parent map.
// Alpha Vantage serializes every numeric field as a string.
type DailyQuote struct {
	Open   string `json:"1. open"`
	High   string `json:"2. high"`
	Low    string `json:"3. low"`
	Close  string `json:"4. close"`
	Volume string `json:"5. volume"`
}

// OverviewResponse is the company OVERVIEW response used for metadata.
type OverviewResponse struct {
	Name                 string `json:"Name"`
	Currency             string `json:"Currency"`
	Exchange             string `json:"Exchange"`
	Sector               string `json:"Sector"`
	Industry             string `json:"Industry"`
	MarketCapitalization string `json:"MarketCapitalization"`
}
