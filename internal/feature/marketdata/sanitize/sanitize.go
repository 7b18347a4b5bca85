// Package sanitize validates raw OHLCV series before indicator
// computation and converts derived values into a JSON-safe form.
package sanitize

import (
	"math"

	"stock_analyzer/internal/feature/marketdata/domain/entity"
)

// Clean drops rows whose open/high/low/close are not finite positive
// numbers or whose close is non-positive, preserving the original
// chronological order. Rows that repeat the previous date are dropped as
// duplicates. Gaps are never interpolated or filled.
func Clean(points []entity.PricePoint) entity.PriceSeries {
	out := make(entity.PriceSeries, 0, len(points))
	for _, p := range points {
		if !finitePositive(p.Open) || !finitePositive(p.High) ||
			!finitePositive(p.Low) || !finitePositive(p.Close) {
			continue
		}
		if len(out) > 0 && !p.Date.After(out[len(out)-1].Date) {
			continue
		}
		if p.Volume < 0 {
			p.Volume = 0
		}
		out = append(out, p)
	}
	return out
}

func finitePositive(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

// Round maps NaN/Inf to nil (serialized as JSON null) and otherwise
// rounds to the given number of decimal digits. It is idempotent: feeding
// an already-rounded value back yields the same result.
func Round(v float64, decimals int) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	r := RoundTo(v, decimals)
	return &r
}

// RoundTo rounds v to the given number of decimal digits.
func RoundTo(v float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(v*pow) / pow
}
