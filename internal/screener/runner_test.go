package screener

import (
	"context"
	"testing"
	"time"

	"StockScreener/internal/collector"
	"StockScreener/internal/model"
	"StockScreener/internal/strategy"
)

// matchingSeries builds a 250-bar uptrend whose final day bottom-crosses
// the 200-day average.
func matchingSeries(code string) *model.PriceSeries {
	base := time.Date(2024, 9, 2, 0, 0, 0, 0, time.UTC)
	bars := make([]model.Bar, 250)
	for i := range bars {
		c := 100 + float64(i)
		bars[i] = model.Bar{
			Date:   base.AddDate(0, 0, i),
			Open:   c * 0.995,
			High:   c * 1.01,
			Low:    c * 0.99,
			Close:  c,
			Volume: int64(50_000_000 / c),
		}
	}
	bars[249].Low = 249
	return &model.PriceSeries{Code: code, Name: code + " Corp", Bars: bars}
}

func shortSeries(code string) *model.PriceSeries {
	base := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	bars := make([]model.Bar, 50)
	for i := range bars {
		bars[i] = model.Bar{Date: base.AddDate(0, 0, i), Open: 100, High: 101, Low: 99, Close: 100, Volume: 100000}
	}
	return &model.PriceSeries{Code: code, Bars: bars}
}

func TestScan_MixedUniverse(t *testing.T) {
	mock := &collector.MockFetcher{Series: map[string]*model.PriceSeries{
		"1001": matchingSeries("1001"),
		"1002": shortSeries("1002"),
	}}
	symbols := []model.Symbol{
		{Code: "1001", Name: "1001"},
		{Code: "1002", Name: "1002"},
		{Code: "1003", Name: "1003"}, // delisted: the fetcher has nothing
	}

	runner := NewRunner(mock, strategy.DefaultParams(), 2, 365)
	results, stats, err := runner.Scan(context.Background(), symbols)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.Scanned != 3 || stats.Matched != 1 || stats.Skipped != 1 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Code != "1001" {
		t.Errorf("expected 1001 accepted, got %s", results[0].Code)
	}
	if results[0].Name != "1001 Corp" {
		t.Errorf("expected provider name kept, got %q", results[0].Name)
	}
}

func TestScan_ResultsSortedByCode(t *testing.T) {
	mock := &collector.MockFetcher{Series: map[string]*model.PriceSeries{
		"1003": matchingSeries("1003"),
		"1001": matchingSeries("1001"),
		"1002": matchingSeries("1002"),
	}}
	symbols := []model.Symbol{
		{Code: "1003"}, {Code: "1001"}, {Code: "1002"},
	}

	runner := NewRunner(mock, strategy.DefaultParams(), 3, 365)
	results, _, err := runner.Scan(context.Background(), symbols)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for i, want := range []string{"1001", "1002", "1003"} {
		if results[i].Code != want {
			t.Errorf("position %d: expected %s, got %s", i, want, results[i].Code)
		}
	}
}

func TestScan_InvalidParams(t *testing.T) {
	runner := NewRunner(&collector.MockFetcher{}, strategy.Params{}, 2, 365)
	if _, _, err := runner.Scan(context.Background(), []model.Symbol{{Code: "1001"}}); err == nil {
		t.Fatal("expected a validation error before any fetch")
	}
}

func TestScan_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mock := &collector.MockFetcher{Series: map[string]*model.PriceSeries{
		"1001": matchingSeries("1001"),
	}}
	runner := NewRunner(mock, strategy.DefaultParams(), 1, 365)
	_, _, err := runner.Scan(ctx, []model.Symbol{{Code: "1001"}})
	if err != nil {
		t.Fatalf("cancellation should not surface an error, got %v", err)
	}
}
