package notify

import (
	"fmt"
	"strings"
	"time"

	"stock_analyzer/internal/feature/marketdata/domain/entity"
)

// FormatSnapshot renders a snapshot as a push title and markdown body.
// Values already normalized to nil render as N/A.
func FormatSnapshot(snap *entity.Snapshot, period string, at time.Time) (title, content string) {
	title = fmt.Sprintf("📊 %s 技术指标快照 - %s%.2f", snap.Symbol, currencySign(snap.Info.Currency), snap.Stats.LatestClose)

	ind := snap.Indicators
	var b strings.Builder
	fmt.Fprintf(&b, "## %s (%s)\n", snap.Info.Name, snap.Symbol)
	b.WriteString("\n")
	fmt.Fprintf(&b, "**当前价格**: %.2f %s\n", snap.Stats.LatestClose, snap.Info.Currency)
	fmt.Fprintf(&b, "**区间涨跌**: %.2f%%\n", snap.Stats.PeriodChange)
	fmt.Fprintf(&b, "**区间高低**: %.2f / %.2f\n", snap.Stats.PeriodHigh, snap.Stats.PeriodLow)
	fmt.Fprintf(&b, "**分析周期**: %s\n", period)
	fmt.Fprintf(&b, "**数据来源**: %s\n", snap.Provider)
	fmt.Fprintf(&b, "**生成时间**: %s\n", at.Format("2006-01-02 15:04"))
	b.WriteString("\n---\n")
	b.WriteString("\n### 技术指标（最新值）\n")
	fmt.Fprintf(&b, "- RSI(14): %s\n", fmtVal(ind.RSI14))
	fmt.Fprintf(&b, "- MA20: %s | MA50: %s | MA200: %s\n", fmtVal(ind.MA20), fmtVal(ind.MA50), fmtVal(ind.MA200))
	fmt.Fprintf(&b, "- MACD: %s | Signal: %s | Hist: %s\n", fmtVal(ind.MACD), fmtVal(ind.MACDSignal), fmtVal(ind.MACDHist))
	fmt.Fprintf(&b, "- 布林带: %s / %s / %s\n", fmtVal(ind.BBUpper), fmtVal(ind.BBMiddle), fmtVal(ind.BBLower))
	fmt.Fprintf(&b, "- ATR(14): %s\n", fmtVal(ind.ATR14))
	b.WriteString("\n---\n")
	b.WriteString("*本摘要由程序生成，仅供参考，不构成投资建议*\n")

	return title, b.String()
}

func fmtVal(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%g", *v)
}

func currencySign(currency string) string {
	switch currency {
	case "CNY":
		return "¥"
	case "USD":
		return "$"
	default:
		return ""
	}
}
