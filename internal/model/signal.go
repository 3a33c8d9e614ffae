package model

import "time"

// SignalResult is the record produced for a symbol that passed every
// screening check. Immutable once created.
type SignalResult struct {
	Code           string
	Name           string
	Price          float64
	TrendLabel     string
	BottomCross    bool
	GoldenCross    bool
	AvgTradedValue float64
	RiskTier       string
	Date           time.Time
}

// ScanStats summarizes one screening pass over the symbol universe.
type ScanStats struct {
	Scanned int
	Matched int
	Skipped int
}
