package calculator

import (
	"errors"
	"math"
	"testing"
	"time"

	"StockScreener/internal/model"
)

var backtestBase = time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

func makeSeries(closes []float64) *model.PriceSeries {
	bars := make([]model.Bar, len(closes))
	for i, c := range closes {
		bars[i] = model.Bar{
			Date:   backtestBase.AddDate(0, 0, i),
			Open:   c,
			High:   c * 1.01,
			Low:    c * 0.99,
			Close:  c,
			Volume: 1000,
		}
	}
	return &model.PriceSeries{Code: "0001", Bars: bars}
}

func day(i int) time.Time { return backtestBase.AddDate(0, 0, i) }

// backtestCloses is a 30-point rising series with a dip at index 15 and a
// stall at index 25, so signals can be steered into wins and losses.
func backtestCloses() []float64 {
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	closes[15] = 105 // exit for a signal at index 10 (entry 110): loss
	closes[25] = 120 // exit for a signal at index 20 (entry 120): flat, not a win
	return closes
}

func TestWinRate_TooRecentExcludedFromDenominator(t *testing.T) {
	series := makeSeries(backtestCloses())
	// Two wins plus a signal 3 days before the series end: the latter has
	// no forward window and must not count as a loss.
	dates := []time.Time{day(2), day(4), day(27)}

	out, err := WinRate(series, dates, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Evaluated != 2 {
		t.Errorf("expected 2 evaluated, got %d", out.Evaluated)
	}
	if out.WinRate != 100.0 {
		t.Errorf("expected 100.0, got %.2f", out.WinRate)
	}
}

func TestWinRate_LossStaysInDenominator(t *testing.T) {
	series := makeSeries(backtestCloses())
	dates := []time.Time{day(2), day(4), day(10)} // win, win, loss

	out, err := WinRate(series, dates, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Evaluated != 3 {
		t.Errorf("expected 3 evaluated, got %d", out.Evaluated)
	}
	if math.Abs(out.WinRate-200.0/3.0) > 1e-9 {
		t.Errorf("expected 66.67, got %.2f", out.WinRate)
	}
}

func TestWinRate_FlatExitIsNotAWin(t *testing.T) {
	series := makeSeries(backtestCloses())
	out, err := WinRate(series, []time.Time{day(20)}, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Evaluated != 1 || out.WinRate != 0 {
		t.Errorf("flat exit: expected 0%% over 1, got %.2f%% over %d", out.WinRate, out.Evaluated)
	}
}

func TestWinRate_UnmatchedDatesSkipped(t *testing.T) {
	series := makeSeries(backtestCloses())
	dates := []time.Time{day(100), day(-3)}

	out, err := WinRate(series, dates, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Evaluated != 0 {
		t.Errorf("expected 0 evaluated, got %d", out.Evaluated)
	}
	if out.WinRate != 0 {
		t.Errorf("expected 0.0 with nothing evaluated, got %.2f", out.WinRate)
	}
}

func TestWinRate_NoSignalDates(t *testing.T) {
	out, err := WinRate(makeSeries(backtestCloses()), nil, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Evaluated != 0 || out.WinRate != 0 {
		t.Errorf("expected zero outcome, got %+v", out)
	}
}

func TestWinRate_InvalidForwardDays(t *testing.T) {
	for _, fd := range []int{0, -5} {
		if _, err := WinRate(makeSeries(backtestCloses()), []time.Time{day(2)}, fd); !errors.Is(err, ErrInvalidForwardDays) {
			t.Errorf("forwardDays %d: expected ErrInvalidForwardDays, got %v", fd, err)
		}
	}
}
