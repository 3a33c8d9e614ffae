package notifier

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"StockScreener/internal/calculator"
	"StockScreener/internal/model"
)

// maxListed caps how many matches a single report spells out.
const maxListed = 10

// FormatReport renders the daily screening results for chat delivery. An
// empty result list is a meaningful outcome and gets its own message.
func FormatReport(results []model.SignalResult, stats model.ScanStats) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📊 Equity screening results | %s\n", time.Now().Format("2006-01-02")))

	if len(results) == 0 {
		b.WriteString("\n🔇 No symbols matched today. Staying in cash.\n")
		b.WriteString(formatStats(stats))
		return b.String()
	}

	b.WriteString(fmt.Sprintf("\n🎯 %d symbols matched:\n", len(results)))

	shown := results
	if len(shown) > maxListed {
		shown = shown[:maxListed]
	}
	for _, r := range shown {
		b.WriteString(fmt.Sprintf("\n【%s】%s\n", r.Code, r.Name))
		b.WriteString(fmt.Sprintf("💵 price: ¥%s\n", humanize.CommafWithDigits(r.Price, 0)))
		b.WriteString(fmt.Sprintf("📈 MA200: %s\n", r.TrendLabel))
		b.WriteString(fmt.Sprintf("🔄 bottom cross: %s | ⭐ GC: %s\n", mark(r.BottomCross), mark(r.GoldenCross)))
		b.WriteString(fmt.Sprintf("%s liquidity: ¥%s (30d avg)\n", tierEmoji(r.RiskTier), humanize.Comma(int64(r.AvgTradedValue))))
	}

	if len(results) > maxListed {
		b.WriteString(fmt.Sprintf("\n...and %d more\n", len(results)-maxListed))
	}
	b.WriteString(formatStats(stats))
	return b.String()
}

func formatStats(stats model.ScanStats) string {
	if stats.Skipped == 0 {
		return ""
	}
	return fmt.Sprintf("\n(%d of %d symbols skipped: no usable data)\n", stats.Skipped, stats.Scanned)
}

// FormatBacktest renders a historical win-rate outcome, keeping the
// no-evaluable-signals case distinct from a genuine 0%.
func FormatBacktest(code string, out calculator.Outcome, forwardDays int) string {
	if out.Evaluated == 0 {
		return fmt.Sprintf("📉 %s: no evaluable signal dates", code)
	}
	return fmt.Sprintf("📉 %s: win rate %.1f%% over %d signals (%d-day horizon)",
		code, out.WinRate, out.Evaluated, forwardDays)
}

func mark(set bool) string {
	if set {
		return "✅"
	}
	return "—"
}

func tierEmoji(tier string) string {
	switch calculator.Tier(tier) {
	case calculator.TierStable:
		return "🟢"
	case calculator.TierStandard:
		return "🟡"
	default:
		return "🔴"
	}
}
