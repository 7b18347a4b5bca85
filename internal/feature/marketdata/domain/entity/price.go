// Package entity defines the domain models for the marketdata feature.
package entity

import "time"

// PricePoint represents one daily OHLCV (Open, High, Low, Close, Volume)
// bar for a stock symbol. Date carries the calendar day only; adapters
// normalize it to midnight UTC.
type PricePoint struct {
	Date   time.Time // Calendar day of this bar
	Open   float64   // Opening price
	High   float64   // Highest price during this day
	Low    float64   // Lowest price during this day
	Close  float64   // Closing price
	Volume int64     // Trading volume
}

// PriceSeries is an ordered sequence of PricePoint, strictly increasing
// by date with no duplicate dates once it has passed the sanitizer.
type PriceSeries []PricePoint

// Closes returns the closing prices in series order.
func (s PriceSeries) Closes() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.Close
	}
	return out
}

// LatestClose returns the closing price of the last point, or 0 for an
// empty series.
func (s PriceSeries) LatestClose() float64 {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1].Close
}

// DateFormat is the wire format for bar dates.
const DateFormat = "2006-01-02"

// LookbackDays maps a period token to its calendar-day lookback window.
// Unknown tokens fall back to the two-year window.
func LookbackDays(period string) int {
	switch period {
	case "1mo":
		return 30
	case "3mo":
		return 90
	case "6mo":
		return 180
	case "1y":
		return 365
	case "2y":
		return 730
	case "5y":
		return 1825
	case "max":
		return 3650
	default:
		return 730
	}
}
