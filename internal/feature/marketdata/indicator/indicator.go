// Package indicator computes technical indicators over a cleaned price
// series. All windowed functions return slices aligned with the input and
// use NaN to mark points with insufficient lookback history; the sanitize
// package converts those to absent values before serialization.
package indicator

import (
	"math"

	"stock_analyzer/internal/feature/marketdata/domain/entity"
)

// Default lookback windows for daily bars.
const (
	MAShortWindow  = 20
	MAMidWindow    = 50
	MALongWindow   = 200
	RSIPeriod      = 14
	MACDFastSpan   = 12
	MACDSlowSpan   = 26
	MACDSignalSpan = 9
	BBWindow       = 20
	BBMult         = 2.0
	ATRPeriod      = 14
)

// Columns holds the derived per-point series, index-aligned with the
// price series they were computed from.
type Columns struct {
	MA20, MA50, MA200          []float64
	RSI14                      []float64
	MACD, MACDSignal, MACDHist []float64
	BBUpper, BBMiddle, BBLower []float64
	ATR14                      []float64
}

// Compute derives the full daily indicator set for the series.
func Compute(s entity.PriceSeries) Columns {
	closes := s.Closes()

	macd, signal, hist := MACDSeries(closes)
	upper, middle, lower := Bollinger(closes, BBWindow, BBMult)

	return Columns{
		MA20:       SMA(closes, MAShortWindow),
		MA50:       SMA(closes, MAMidWindow),
		MA200:      SMA(closes, MALongWindow),
		RSI14:      RSI(closes, RSIPeriod),
		MACD:       macd,
		MACDSignal: signal,
		MACDHist:   hist,
		BBUpper:    upper,
		BBMiddle:   middle,
		BBLower:    lower,
		ATR14:      ATR(s, ATRPeriod),
	}
}

// SMA computes the trailing simple moving average. The first window-1
// slots are NaN.
func SMA(values []float64, window int) []float64 {
	out := nanSlice(len(values))
	if window <= 0 || len(values) < window {
		return out
	}
	var sum float64
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		if i >= window-1 {
			out[i] = sum / float64(window)
		}
	}
	return out
}

// EMA computes the exponential moving average with decay k = 2/(span+1),
// seeded with the first value and without early-term weighting correction
// (the adjust=false convention).
func EMA(values []float64, span int) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}
	k := 2.0 / (float64(span) + 1.0)
	out[0] = values[0]
	for i := 1; i < len(values); i++ {
		out[i] = values[i]*k + out[i-1]*(1.0-k)
	}
	return out
}

// MACDSeries returns the MACD line (EMA12 - EMA26), its 9-span signal
// line, and the histogram (MACD - signal).
func MACDSeries(closes []float64) (macd, signal, hist []float64) {
	fast := EMA(closes, MACDFastSpan)
	slow := EMA(closes, MACDSlowSpan)

	macd = make([]float64, len(closes))
	for i := range closes {
		macd[i] = fast[i] - slow[i]
	}
	signal = EMA(macd, MACDSignalSpan)
	hist = make([]float64, len(closes))
	for i := range closes {
		hist[i] = macd[i] - signal[i]
	}
	return macd, signal, hist
}

// RSI computes the relative strength index from rolling means of gains
// and losses over the period. A window with zero mean loss yields exactly
// 100 rather than propagating the infinite relative strength.
func RSI(closes []float64, period int) []float64 {
	out := nanSlice(len(closes))
	if period <= 0 || len(closes) <= period {
		return out
	}
	for i := period; i < len(closes); i++ {
		var gain, loss float64
		for j := i - period + 1; j <= i; j++ {
			delta := closes[j] - closes[j-1]
			if delta > 0 {
				gain += delta
			} else {
				loss -= delta
			}
		}
		meanGain := gain / float64(period)
		meanLoss := loss / float64(period)
		if meanLoss == 0 {
			out[i] = 100.0
			continue
		}
		rs := meanGain / meanLoss
		out[i] = 100.0 - 100.0/(1.0+rs)
	}
	return out
}

// Bollinger computes the middle band (window SMA), and upper/lower bands
// at mult sample standard deviations. Sample (n-1) standard deviation is
// used to match the moving-average convention of the rolling window.
func Bollinger(closes []float64, window int, mult float64) (upper, middle, lower []float64) {
	middle = SMA(closes, window)
	std := RollingStd(closes, window)

	upper = nanSlice(len(closes))
	lower = nanSlice(len(closes))
	for i := range closes {
		if math.IsNaN(middle[i]) || math.IsNaN(std[i]) {
			continue
		}
		upper[i] = middle[i] + std[i]*mult
		lower[i] = middle[i] - std[i]*mult
	}
	return upper, middle, lower
}

// RollingStd computes the trailing sample standard deviation over the
// window. The first window-1 slots are NaN.
func RollingStd(values []float64, window int) []float64 {
	out := nanSlice(len(values))
	if window <= 1 || len(values) < window {
		return out
	}
	for i := window - 1; i < len(values); i++ {
		var sum float64
		for j := i - window + 1; j <= i; j++ {
			sum += values[j]
		}
		mean := sum / float64(window)
		var sq float64
		for j := i - window + 1; j <= i; j++ {
			d := values[j] - mean
			sq += d * d
		}
		out[i] = math.Sqrt(sq / float64(window-1))
	}
	return out
}

// ATR computes the average true range as a simple rolling mean of the
// true range. The first point has no previous close, so its true range
// degenerates to high-low.
func ATR(s entity.PriceSeries, period int) []float64 {
	tr := make([]float64, len(s))
	for i, p := range s {
		if i == 0 {
			tr[i] = p.High - p.Low
			continue
		}
		prevClose := s[i-1].Close
		tr[i] = math.Max(p.High-p.Low,
			math.Max(math.Abs(p.High-prevClose), math.Abs(p.Low-prevClose)))
	}
	return SMA(tr, period)
}

func nanSlice(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}
