package calculator

import (
	"math"
	"testing"
	"time"

	"StockScreener/internal/model"
)

func TestClassify_Boundaries(t *testing.T) {
	tests := []struct {
		value float64
		want  Tier
	}{
		{250_000_000, TierStable},
		{100_000_000, TierStable},
		{99_999_999, TierStandard},
		{10_000_000, TierStandard},
		{9_999_999, TierSpeculative},
		{0, TierSpeculative},
	}
	for _, tt := range tests {
		if got := Classify(tt.value); got != tt.want {
			t.Errorf("Classify(%.0f) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestAvgTradedValue(t *testing.T) {
	base := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	bars := []model.Bar{
		{Date: base, Close: 100, Volume: 1000},                  // 100,000
		{Date: base.AddDate(0, 0, 1), Close: 200, Volume: 1000}, // 200,000
		{Date: base.AddDate(0, 0, 2), Close: 300, Volume: 2000}, // 600,000
	}

	if got := AvgTradedValue(bars, 2); math.Abs(got-400_000) > 1e-6 {
		t.Errorf("trailing 2: expected 400000, got %.0f", got)
	}
	// Window longer than the series uses every bar.
	if got := AvgTradedValue(bars, 30); math.Abs(got-300_000) > 1e-6 {
		t.Errorf("trailing 30 over 3 bars: expected 300000, got %.0f", got)
	}
	if got := AvgTradedValue(nil, 30); got != 0 {
		t.Errorf("empty series: expected 0, got %.0f", got)
	}
}
