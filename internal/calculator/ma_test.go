package calculator

import (
	"errors"
	"math"
	"testing"
)

func TestSMASeries_WindowMeans(t *testing.T) {
	closes := []float64{1, 2, 3, 4, 5}
	ma, err := SMASeries(closes, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ma) != len(closes) {
		t.Fatalf("expected length %d, got %d", len(closes), len(ma))
	}
	for i := 0; i < 2; i++ {
		if ma[i].Valid {
			t.Errorf("point %d should be invalid before the window fills", i)
		}
	}
	want := []float64{2, 3, 4}
	for i, w := range want {
		p := ma[i+2]
		if !p.Valid {
			t.Errorf("point %d should be valid", i+2)
		}
		if math.Abs(p.Avg-w) > 1e-9 {
			t.Errorf("point %d: expected %.4f, got %.4f", i+2, w, p.Avg)
		}
	}
}

func TestSMASeries_UndefinedPrefixLength(t *testing.T) {
	closes := make([]float64, 40)
	for i := range closes {
		closes[i] = float64(i + 1)
	}
	for _, period := range []int{1, 5, 20, 40} {
		ma, err := SMASeries(closes, period)
		if err != nil {
			t.Fatalf("period %d: unexpected error: %v", period, err)
		}
		for i, p := range ma {
			if wantValid := i >= period-1; p.Valid != wantValid {
				t.Errorf("period %d point %d: valid=%v, want %v", period, i, p.Valid, wantValid)
			}
		}
	}
}

func TestSMASeries_InvalidPeriod(t *testing.T) {
	for _, period := range []int{0, -1} {
		if _, err := SMASeries([]float64{1, 2, 3}, period); !errors.Is(err, ErrInvalidPeriod) {
			t.Errorf("period %d: expected ErrInvalidPeriod, got %v", period, err)
		}
	}
}

func TestSMASeries_PeriodExceedsLength(t *testing.T) {
	ma, err := SMASeries([]float64{1, 2, 3}, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ma) != 3 {
		t.Fatalf("expected length 3, got %d", len(ma))
	}
	for i, p := range ma {
		if p.Valid {
			t.Errorf("point %d should be invalid when the period exceeds the series", i)
		}
	}
}

func TestTailValid(t *testing.T) {
	ma, err := SMASeries([]float64{1, 2, 3, 4, 5}, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	vals, ok := ma.TailValid(2)
	if !ok {
		t.Fatal("expected 2 trailing valid points")
	}
	if vals[0] != 3 || vals[1] != 4 {
		t.Errorf("expected chronological [3 4], got %v", vals)
	}

	if _, ok := ma.TailValid(4); ok {
		t.Error("expected failure: only 3 valid points exist")
	}
	if _, ok := ma.TailValid(0); ok {
		t.Error("expected failure for n=0")
	}
}
