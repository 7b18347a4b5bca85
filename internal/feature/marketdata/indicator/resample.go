package indicator

import (
	"time"

	"stock_analyzer/internal/feature/marketdata/domain/entity"
)

// Reduced moving-average windows for resampled bars: weekly bars keep the
// 20/50 pair, monthly bars use a 12-bar window.
const (
	WeeklyMAShortWindow = 20
	WeeklyMAMidWindow   = 50
	MonthlyMAWindow     = 12
)

// ResampleWeekly aggregates daily bars into weekly bars using the
// week-ending-Sunday convention: open of the first day, max high, min
// low, close of the last day, summed volume. Weeks with no source rows
// are never emitted.
func ResampleWeekly(s entity.PriceSeries) entity.PriceSeries {
	return resample(s, weekEnd)
}

// ResampleMonthly aggregates daily bars into calendar-month bars stamped
// at month end.
func ResampleMonthly(s entity.PriceSeries) entity.PriceSeries {
	return resample(s, monthEnd)
}

// resample groups consecutive daily bars by their bucket-end date. The
// input is already sorted ascending, so a single pass suffices.
func resample(s entity.PriceSeries, bucket func(time.Time) time.Time) entity.PriceSeries {
	out := make(entity.PriceSeries, 0, len(s)/5+1)
	for _, p := range s {
		end := bucket(p.Date)
		if len(out) > 0 && out[len(out)-1].Date.Equal(end) {
			bar := &out[len(out)-1]
			if p.High > bar.High {
				bar.High = p.High
			}
			if p.Low < bar.Low {
				bar.Low = p.Low
			}
			bar.Close = p.Close
			bar.Volume += p.Volume
			continue
		}
		out = append(out, entity.PricePoint{
			Date:   end,
			Open:   p.Open,
			High:   p.High,
			Low:    p.Low,
			Close:  p.Close,
			Volume: p.Volume,
		})
	}
	return out
}

// weekEnd returns the Sunday on or after d.
func weekEnd(d time.Time) time.Time {
	days := (7 - int(d.Weekday())) % 7
	return d.AddDate(0, 0, days)
}

// monthEnd returns the last calendar day of d's month.
func monthEnd(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month()+1, 0, 0, 0, 0, 0, d.Location())
}
