package model

import "time"

// Bar represents a single daily candlestick.
type Bar struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64
}

// PriceSeries holds one symbol's trading history, oldest bar first,
// strictly increasing by date.
type PriceSeries struct {
	Code      string
	Name      string
	Bars      []Bar
	FetchedAt time.Time
}

// Latest returns the most recent bar. The second value is false when the
// series is empty.
func (s *PriceSeries) Latest() (Bar, bool) {
	if s == nil || len(s.Bars) == 0 {
		return Bar{}, false
	}
	return s.Bars[len(s.Bars)-1], true
}

// Symbol pairs a securities code with its display name. The name may be
// just the code until the data provider resolves a proper one.
type Symbol struct {
	Code string
	Name string
}
