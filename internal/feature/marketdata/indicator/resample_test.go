package indicator_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock_analyzer/internal/feature/marketdata/domain/entity"
	"stock_analyzer/internal/feature/marketdata/indicator"
)

func bar(date string, open, high, low, close float64, volume int64) entity.PricePoint {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return entity.PricePoint{Date: d, Open: open, High: high, Low: low, Close: close, Volume: volume}
}

func TestResampleWeekly(t *testing.T) {
	// 2024-01-01 is a Monday; the first week ends Sunday 2024-01-07.
	s := entity.PriceSeries{
		bar("2024-01-01", 10, 12, 9, 11, 100),
		bar("2024-01-03", 11, 15, 10, 14, 200),
		bar("2024-01-05", 14, 14, 8, 9, 300),
		bar("2024-01-08", 9, 10, 9, 10, 400), // next week
	}

	got := indicator.ResampleWeekly(s)
	require.Len(t, got, 2)

	first := got[0]
	assert.Equal(t, "2024-01-07", first.Date.Format("2006-01-02"))
	assert.Equal(t, 10.0, first.Open, "open of the first day")
	assert.Equal(t, 15.0, first.High, "max high")
	assert.Equal(t, 8.0, first.Low, "min low")
	assert.Equal(t, 9.0, first.Close, "close of the last day")
	assert.Equal(t, int64(600), first.Volume, "summed volume")

	second := got[1]
	assert.Equal(t, "2024-01-14", second.Date.Format("2006-01-02"))
	assert.Equal(t, int64(400), second.Volume)
}

func TestResampleWeekly_SundayStaysInItsWeek(t *testing.T) {
	s := entity.PriceSeries{
		bar("2024-01-07", 10, 11, 9, 10, 100), // Sunday
		bar("2024-01-08", 10, 11, 9, 10, 100), // Monday
	}
	got := indicator.ResampleWeekly(s)
	require.Len(t, got, 2)
	assert.Equal(t, "2024-01-07", got[0].Date.Format("2006-01-02"))
	assert.Equal(t, "2024-01-14", got[1].Date.Format("2006-01-02"))
}

func TestResampleMonthly(t *testing.T) {
	s := entity.PriceSeries{
		bar("2024-01-15", 10, 12, 9, 11, 100),
		bar("2024-01-31", 11, 13, 10, 12, 200),
		bar("2024-02-01", 12, 14, 11, 13, 300),
	}

	got := indicator.ResampleMonthly(s)
	require.Len(t, got, 2)

	assert.Equal(t, "2024-01-31", got[0].Date.Format("2006-01-02"))
	assert.Equal(t, 10.0, got[0].Open)
	assert.Equal(t, 13.0, got[0].High)
	assert.Equal(t, 12.0, got[0].Close)
	assert.Equal(t, int64(300), got[0].Volume)

	// February 2024 is a leap month.
	assert.Equal(t, "2024-02-29", got[1].Date.Format("2006-01-02"))
}

func TestResample_Empty(t *testing.T) {
	assert.Empty(t, indicator.ResampleWeekly(nil))
	assert.Empty(t, indicator.ResampleMonthly(entity.PriceSeries{}))
}
