package strategy

import (
	"fmt"

	"StockScreener/internal/calculator"
	"StockScreener/internal/model"
)

// TrendUp is the trend label carried by every accepted result.
const TrendUp = "uptrend"

// Params configures the screening pipeline for one run.
type Params struct {
	MinTradedValue  float64
	ShortWindow     int
	MidWindow       int
	LongWindow      int
	TrendLookback   int
	LiquidityWindow int
}

// DefaultParams returns the thresholds the screener was tuned with:
// 50/100/200-day averages, a 5-day trend lookback, a 30-day liquidity
// window, and a 1M minimum traded value.
func DefaultParams() Params {
	return Params{
		MinTradedValue:  1_000_000,
		ShortWindow:     50,
		MidWindow:       100,
		LongWindow:      200,
		TrendLookback:   5,
		LiquidityWindow: 30,
	}
}

// Validate rejects operator mistakes up front so a run fails once instead
// of silently rejecting every symbol.
func (p Params) Validate() error {
	if p.ShortWindow <= 0 || p.MidWindow <= 0 || p.LongWindow <= 0 {
		return fmt.Errorf("ma windows must be positive, got %d/%d/%d", p.ShortWindow, p.MidWindow, p.LongWindow)
	}
	if p.ShortWindow >= p.MidWindow || p.MidWindow >= p.LongWindow {
		return fmt.Errorf("ma windows must satisfy short < mid < long, got %d/%d/%d", p.ShortWindow, p.MidWindow, p.LongWindow)
	}
	if p.TrendLookback <= 0 {
		return fmt.Errorf("trend lookback must be positive, got %d", p.TrendLookback)
	}
	if p.LiquidityWindow <= 0 {
		return fmt.Errorf("liquidity window must be positive, got %d", p.LiquidityWindow)
	}
	if p.MinTradedValue < 0 {
		return fmt.Errorf("minimum traded value must not be negative, got %f", p.MinTradedValue)
	}
	return nil
}

// Screen runs one symbol through the acceptance pipeline and returns nil
// for every rejection: too little history, thin liquidity, a flat or
// falling long average, or no cross on the latest bar. Rejection is the
// expected high-frequency outcome, not an error; the error return only
// reports invalid params.
func Screen(series *model.PriceSeries, p Params) (*model.SignalResult, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if series == nil || len(series.Bars) < p.LongWindow {
		return nil, nil
	}

	avgTraded := calculator.AvgTradedValue(series.Bars, p.LiquidityWindow)
	if avgTraded < p.MinTradedValue {
		return nil, nil
	}

	closes := calculator.Closes(series.Bars)
	maShort, err := calculator.SMASeries(closes, p.ShortWindow)
	if err != nil {
		return nil, err
	}
	maMid, err := calculator.SMASeries(closes, p.MidWindow)
	if err != nil {
		return nil, err
	}
	maLong, err := calculator.SMASeries(closes, p.LongWindow)
	if err != nil {
		return nil, err
	}

	if !calculator.IsTrendingUp(maLong, p.TrendLookback) {
		return nil, nil
	}

	latest, ok := series.Latest()
	if !ok {
		return nil, nil
	}
	last := maLong.Last()
	bottomCross := last.Valid && calculator.BottomCross(latest.Low, latest.Close, last.Avg)
	goldenCross := calculator.GoldenCross(maShort, maMid)
	if !bottomCross && !goldenCross {
		return nil, nil
	}

	name := series.Name
	if name == "" {
		name = series.Code
	}
	return &model.SignalResult{
		Code:           series.Code,
		Name:           name,
		Price:          latest.Close,
		TrendLabel:     TrendUp,
		BottomCross:    bottomCross,
		GoldenCross:    goldenCross,
		AvgTradedValue: avgTraded,
		RiskTier:       string(calculator.Classify(avgTraded)),
		Date:           latest.Date,
	}, nil
}
