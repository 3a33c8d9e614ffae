package calculator

import (
	"errors"
	"time"

	"StockScreener/internal/model"
)

// ErrInvalidForwardDays is returned when a backtest horizon is not positive.
var ErrInvalidForwardDays = errors.New("forward days must be positive")

// Outcome is the result of a historical win-rate evaluation. Evaluated
// distinguishes "no evaluable signal dates" from "every evaluated signal
// lost"; both report a zero win rate.
type Outcome struct {
	WinRate   float64
	Evaluated int
}

const dateKey = "2006-01-02"

// WinRate computes the share of signal dates whose close rose strictly over
// the following forwardDays trading days. Dates missing from the series, or
// too close to its end for a full forward window, are skipped entirely:
// they count neither as wins nor as losses.
func WinRate(series *model.PriceSeries, signalDates []time.Time, forwardDays int) (Outcome, error) {
	if forwardDays <= 0 {
		return Outcome{}, ErrInvalidForwardDays
	}
	if series == nil {
		return Outcome{}, nil
	}

	index := make(map[string]int, len(series.Bars))
	for i, b := range series.Bars {
		index[b.Date.Format(dateKey)] = i
	}

	wins, evaluated := 0, 0
	for _, d := range signalDates {
		i, ok := index[d.Format(dateKey)]
		if !ok || i+forwardDays >= len(series.Bars) {
			continue
		}
		evaluated++
		if series.Bars[i+forwardDays].Close > series.Bars[i].Close {
			wins++
		}
	}

	out := Outcome{Evaluated: evaluated}
	if evaluated > 0 {
		out.WinRate = float64(wins) / float64(evaluated) * 100
	}
	return out, nil
}
