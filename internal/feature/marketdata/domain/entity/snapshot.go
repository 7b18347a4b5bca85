package entity

// ProviderMetadata describes the instrument as reported by the data
// provider that served the series. When the metadata endpoint fails the
// adapter substitutes a minimal record built from the symbol and the
// latest close instead of failing the acquisition.
type ProviderMetadata struct {
	Symbol       string  `json:"symbol"`
	Name         string  `json:"name"`
	Currency     string  `json:"currency"`
	Exchange     string  `json:"exchange"`
	Sector       string  `json:"sector"`
	Industry     string  `json:"industry"`
	MarketCap    int64   `json:"marketCap"`
	CurrentPrice float64 `json:"currentPrice"`
}

// IndicatorSet holds the derived technical values for one point. A nil
// field means the indicator is absent there (insufficient lookback
// history), which serializes as JSON null rather than NaN.
type IndicatorSet struct {
	MA20       *float64 `json:"ma_20"`
	MA50       *float64 `json:"ma_50"`
	MA200      *float64 `json:"ma_200"`
	RSI14      *float64 `json:"rsi_14"`
	MACD       *float64 `json:"macd"`
	MACDSignal *float64 `json:"macd_signal"`
	MACDHist   *float64 `json:"macd_hist"`
	BBUpper    *float64 `json:"bb_upper"`
	BBMiddle   *float64 `json:"bb_middle"`
	BBLower    *float64 `json:"bb_lower"`
	ATR14      *float64 `json:"atr_14"`
}

// Stats summarizes the analyzed period.
type Stats struct {
	PeriodHigh   float64 `json:"period_high"`
	PeriodLow    float64 `json:"period_low"`
	PeriodChange float64 `json:"period_change"` // percent change first close -> last close
	AvgVolume    int64   `json:"avg_volume"`
	LatestClose  float64 `json:"latest_close"`
	LatestVolume int64   `json:"latest_volume"`
}

// SeriesRow is one bar of the output sequence: the OHLCV values plus the
// indicator columns computed at that point, ready for JSON consumers.
type SeriesRow struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
	IndicatorSet
}

// Snapshot is the unit returned to callers: one normalized result of an
// acquisition run. It is constructed fresh per request and never mutated
// by downstream consumers.
type Snapshot struct {
	Symbol     string           `json:"symbol"`
	Provider   string           `json:"provider"`
	Info       ProviderMetadata `json:"info"`
	Indicators IndicatorSet     `json:"indicators"` // latest values
	Stats      Stats            `json:"stats"`
	Data       []SeriesRow      `json:"data"`
	Series     PriceSeries      `json:"series"` // cleaned daily bars, kept for resampling
}
