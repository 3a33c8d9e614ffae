package recorder

import "StockScreener/internal/model"

// ScreenRun summarizes one completed screening pass, identified by the run
// ID assigned when the pass started.
type ScreenRun struct {
	ID      string
	Stats   model.ScanStats
	Results []model.SignalResult
}

// BacktestRecord captures one historical win-rate evaluation.
type BacktestRecord struct {
	Code        string
	ForwardDays int
	Evaluated   int
	WinRate     float64
}

// Recorder persists screening history for later analysis.
type Recorder interface {
	RecordRun(run *ScreenRun) error
	RecordBacktest(rec *BacktestRecord) error
	Close() error
}
