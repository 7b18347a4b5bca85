package usecase

import (
	"stock_analyzer/internal/feature/marketdata/domain/entity"
	"stock_analyzer/internal/feature/marketdata/indicator"
	"stock_analyzer/internal/feature/marketdata/sanitize"
)

// Decimal digits for serialized indicator values. MACD-family values are
// small, so they keep four digits.
const (
	priceDecimals = 2
	macdDecimals  = 4
)

// buildSnapshot assembles the normalized output of one acquisition run.
func buildSnapshot(symbol, provider string, meta entity.ProviderMetadata, s entity.PriceSeries, cols indicator.Columns) *entity.Snapshot {
	rows := dailyRows(s, cols)
	return &entity.Snapshot{
		Symbol:     symbol,
		Provider:   provider,
		Info:       meta,
		Indicators: rows[len(rows)-1].IndicatorSet,
		Stats:      buildStats(s),
		Data:       rows,
		Series:     s,
	}
}

// dailyRows zips the cleaned series with its indicator columns,
// normalizing every derived value (NaN/Inf become JSON null).
func dailyRows(s entity.PriceSeries, cols indicator.Columns) []entity.SeriesRow {
	rows := make([]entity.SeriesRow, len(s))
	for i, p := range s {
		rows[i] = entity.SeriesRow{
			Date:   p.Date.Format(entity.DateFormat),
			Open:   p.Open,
			High:   p.High,
			Low:    p.Low,
			Close:  p.Close,
			Volume: p.Volume,
			IndicatorSet: entity.IndicatorSet{
				MA20:       sanitize.Round(cols.MA20[i], priceDecimals),
				MA50:       sanitize.Round(cols.MA50[i], priceDecimals),
				MA200:      sanitize.Round(cols.MA200[i], priceDecimals),
				RSI14:      sanitize.Round(cols.RSI14[i], priceDecimals),
				MACD:       sanitize.Round(cols.MACD[i], macdDecimals),
				MACDSignal: sanitize.Round(cols.MACDSignal[i], macdDecimals),
				MACDHist:   sanitize.Round(cols.MACDHist[i], macdDecimals),
				BBUpper:    sanitize.Round(cols.BBUpper[i], priceDecimals),
				BBMiddle:   sanitize.Round(cols.BBMiddle[i], priceDecimals),
				BBLower:    sanitize.Round(cols.BBLower[i], priceDecimals),
				ATR14:      sanitize.Round(cols.ATR14[i], priceDecimals),
			},
		}
	}
	return rows
}

// buildStats summarizes the analyzed period. The series is non-empty by
// the time this runs, so every statistic is finite.
func buildStats(s entity.PriceSeries) entity.Stats {
	high := s[0].High
	low := s[0].Low
	var volumeSum int64
	for _, p := range s {
		if p.High > high {
			high = p.High
		}
		if p.Low < low {
			low = p.Low
		}
		volumeSum += p.Volume
	}
	first := s[0].Close
	last := s[len(s)-1]
	return entity.Stats{
		PeriodHigh:   sanitize.RoundTo(high, priceDecimals),
		PeriodLow:    sanitize.RoundTo(low, priceDecimals),
		PeriodChange: sanitize.RoundTo((last.Close/first-1)*100, priceDecimals),
		AvgVolume:    volumeSum / int64(len(s)),
		LatestClose:  sanitize.RoundTo(last.Close, priceDecimals),
		LatestVolume: last.Volume,
	}
}

// WeeklyRows resamples the daily series to weekly bars and recomputes the
// 20/50 moving averages over the weekly closes.
func WeeklyRows(s entity.PriceSeries) []entity.SeriesRow {
	w := indicator.ResampleWeekly(s)
	closes := w.Closes()
	ma20 := indicator.SMA(closes, indicator.WeeklyMAShortWindow)
	ma50 := indicator.SMA(closes, indicator.WeeklyMAMidWindow)

	rows := make([]entity.SeriesRow, len(w))
	for i, p := range w {
		rows[i] = barRow(p)
		rows[i].MA20 = sanitize.Round(ma20[i], priceDecimals)
		rows[i].MA50 = sanitize.Round(ma50[i], priceDecimals)
	}
	return rows
}

// MonthlyRows resamples the daily series to month-end bars with a reduced
// 12-bar moving average, carried in the MA20 column like the daily rows.
func MonthlyRows(s entity.PriceSeries) []entity.SeriesRow {
	m := indicator.ResampleMonthly(s)
	ma12 := indicator.SMA(m.Closes(), indicator.MonthlyMAWindow)

	rows := make([]entity.SeriesRow, len(m))
	for i, p := range m {
		rows[i] = barRow(p)
		rows[i].MA20 = sanitize.Round(ma12[i], priceDecimals)
	}
	return rows
}

func barRow(p entity.PricePoint) entity.SeriesRow {
	return entity.SeriesRow{
		Date:   p.Date.Format(entity.DateFormat),
		Open:   p.Open,
		High:   p.High,
		Low:    p.Low,
		Close:  p.Close,
		Volume: p.Volume,
	}
}
