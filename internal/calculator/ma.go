package calculator

import (
	"errors"

	"StockScreener/internal/model"
)

// ErrInvalidPeriod is returned when a moving-average period is not positive.
var ErrInvalidPeriod = errors.New("period must be positive")

// MAPoint is a single moving-average value. Valid is false while the
// trailing window has not yet filled, so comparisons can never silently run
// against a meaningless number.
type MAPoint struct {
	Avg   float64
	Valid bool
}

// MASeries is a moving-average series aligned index-for-index with its
// source closes.
type MASeries []MAPoint

// SMASeries computes the trailing simple moving average of closes over the
// given period. The result has the same length as closes; the first
// period-1 points are invalid. A period longer than the series yields an
// all-invalid series, the same "window not yet filled" state.
func SMASeries(closes []float64, period int) (MASeries, error) {
	if period <= 0 {
		return nil, ErrInvalidPeriod
	}
	ma := make(MASeries, len(closes))
	for i := period - 1; i < len(closes); i++ {
		sum := 0.0
		for j := i - period + 1; j <= i; j++ {
			sum += closes[j]
		}
		ma[i] = MAPoint{Avg: sum / float64(period), Valid: true}
	}
	return ma, nil
}

// Last returns the final point of the series, invalid when empty.
func (m MASeries) Last() MAPoint {
	if len(m) == 0 {
		return MAPoint{}
	}
	return m[len(m)-1]
}

// TailValid returns the last n valid points in chronological order, or
// false when fewer than n trailing valid points exist.
func (m MASeries) TailValid(n int) ([]float64, bool) {
	if n <= 0 {
		return nil, false
	}
	vals := make([]float64, 0, n)
	for i := len(m) - 1; i >= 0 && len(vals) < n; i-- {
		if !m[i].Valid {
			break
		}
		vals = append(vals, m[i].Avg)
	}
	if len(vals) < n {
		return nil, false
	}
	for i, j := 0, len(vals)-1; i < j; i, j = i+1, j-1 {
		vals[i], vals[j] = vals[j], vals[i]
	}
	return vals, true
}

// Closes extracts the closing prices from daily bars.
func Closes(bars []model.Bar) []float64 {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return closes
}
