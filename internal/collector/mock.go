package collector

import (
	"fmt"
	"time"

	"StockScreener/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
// Codes without an entry in Series get a synthetic drift around BasePrice
// when one is set, and behave like delisted tickers otherwise.
type MockFetcher struct {
	Series    map[string]*model.PriceSeries
	BasePrice float64
	Err       error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailySeries(code string, days int) (*model.PriceSeries, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if s, ok := m.Series[code]; ok {
		return s, nil
	}
	if m.BasePrice > 0 {
		return &model.PriceSeries{
			Code:      code,
			Name:      code,
			Bars:      GenerateBars(m.BasePrice, days),
			FetchedAt: time.Now(),
		}, nil
	}
	return nil, fmt.Errorf("mock: no data for %s", code)
}

// GenerateBars builds a synthetic daily series drifting gently around
// basePrice, volume ticks included.
func GenerateBars(basePrice float64, count int) []model.Bar {
	bars := make([]model.Bar, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.Bar{
			Date:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}
