package screener

import (
	"context"
	"log"
	"sort"
	"sync"

	"StockScreener/internal/collector"
	"StockScreener/internal/model"
	"StockScreener/internal/strategy"
)

// Runner screens a symbol universe with a bounded worker pool. Evaluation
// is pure per symbol, so the only shared state is the single collector
// goroutine accumulating accepted results.
type Runner struct {
	Fetcher     collector.Fetcher
	Params      strategy.Params
	Workers     int
	HistoryDays int
}

// NewRunner creates a Runner, applying sane defaults for workers and the
// fetched history length.
func NewRunner(fetcher collector.Fetcher, params strategy.Params, workers, historyDays int) *Runner {
	if workers <= 0 {
		workers = 4
	}
	if historyDays <= 0 {
		historyDays = 365
	}
	return &Runner{
		Fetcher:     fetcher,
		Params:      params,
		Workers:     workers,
		HistoryDays: historyDays,
	}
}

type outcome struct {
	result  *model.SignalResult
	skipped bool
}

// Scan evaluates every symbol and returns accepted results sorted by code.
// One symbol's fetch failure never aborts the run; it only increments the
// skipped count. Cancelling the context stops the scan between symbols and
// returns whatever was accumulated so far.
func (r *Runner) Scan(ctx context.Context, symbols []model.Symbol) ([]model.SignalResult, model.ScanStats, error) {
	if err := r.Params.Validate(); err != nil {
		return nil, model.ScanStats{}, err
	}

	jobs := make(chan model.Symbol)
	outcomes := make(chan outcome)

	var wg sync.WaitGroup
	for w := 0; w < r.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sym := range jobs {
				out := r.screenOne(sym)
				select {
				case outcomes <- out:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, sym := range symbols {
			select {
			case jobs <- sym:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outcomes)
	}()

	var results []model.SignalResult
	var stats model.ScanStats
	for out := range outcomes {
		stats.Scanned++
		if out.skipped {
			stats.Skipped++
		} else if out.result != nil {
			results = append(results, *out.result)
			stats.Matched++
		}
		if stats.Scanned%50 == 0 {
			log.Printf("[INFO] progress: %d/%d symbols processed (%d matched)", stats.Scanned, len(symbols), stats.Matched)
		}
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Code < results[j].Code })
	return results, stats, nil
}

func (r *Runner) screenOne(sym model.Symbol) outcome {
	series, err := r.Fetcher.FetchDailySeries(sym.Code, r.HistoryDays)
	if err != nil {
		// Missing tickers are expected when sweeping whole code ranges.
		return outcome{skipped: true}
	}
	if series.Name == "" {
		series.Name = sym.Name
	}
	result, err := strategy.Screen(series, r.Params)
	if err != nil {
		log.Printf("[WARN] screen %s: %v", sym.Code, err)
		return outcome{skipped: true}
	}
	if result != nil {
		log.Printf("[INFO] %s %s matched", result.Code, result.Name)
	}
	return outcome{result: result}
}
