package calculator

import "StockScreener/internal/model"

// Tier labels the liquidity risk bucket of a symbol.
type Tier string

const (
	TierStable      Tier = "stable"
	TierStandard    Tier = "standard"
	TierSpeculative Tier = "speculative"
)

// Tier thresholds in currency units of average daily traded value.
const (
	stableThreshold   = 100_000_000
	standardThreshold = 10_000_000
)

// Classify buckets an average traded value into a risk tier. Boundaries are
// inclusive on the lower bound of each tier.
func Classify(avgTradedValue float64) Tier {
	switch {
	case avgTradedValue >= stableThreshold:
		return TierStable
	case avgTradedValue >= standardThreshold:
		return TierStandard
	default:
		return TierSpeculative
	}
}

// AvgTradedValue returns the mean of close times volume over the trailing
// window bars. Shorter series use whatever bars exist.
func AvgTradedValue(bars []model.Bar, window int) float64 {
	if len(bars) == 0 || window <= 0 {
		return 0
	}
	n := len(bars)
	start := n - window
	if start < 0 {
		start = 0
	}
	sum := 0.0
	for i := start; i < n; i++ {
		sum += bars[i].Close * float64(bars[i].Volume)
	}
	return sum / float64(n-start)
}
