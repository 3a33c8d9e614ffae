package calculator

import "testing"

// maOf wraps raw values into an all-valid series.
func maOf(vals []float64) MASeries {
	ma, _ := SMASeries(vals, 1)
	return ma
}

func TestIsTrendingUp(t *testing.T) {
	tests := []struct {
		name     string
		vals     []float64
		lookback int
		want     bool
	}{
		{"strictly increasing", []float64{100, 101, 102, 103, 104}, 5, true},
		{"strictly decreasing", []float64{104, 103, 102, 101, 100}, 5, false},
		{"perfectly flat", []float64{100, 100, 100, 100, 100}, 5, false},
		{"noisy but rising", []float64{100, 102, 101, 104, 103, 106}, 5, true},
		{"rising then collapsing", []float64{100, 110, 120, 90, 80}, 5, false},
		{"too few points", []float64{100, 101, 102}, 5, false},
		{"only tail matters", []float64{500, 400, 100, 101, 102, 103, 104}, 5, true},
	}
	for _, tt := range tests {
		if got := IsTrendingUp(maOf(tt.vals), tt.lookback); got != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestIsTrendingUp_UndefinedPrefixExcluded(t *testing.T) {
	// Period 4 over 6 closes leaves only 3 valid points: not enough for a
	// lookback of 5, even though the series itself is long enough.
	ma, err := SMASeries([]float64{100, 101, 102, 103, 104, 105}, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if IsTrendingUp(ma, 5) {
		t.Error("expected false with only 3 defined points")
	}
	if !IsTrendingUp(ma, 3) {
		t.Error("expected true over the 3 defined rising points")
	}
}
