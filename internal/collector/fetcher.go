package collector

import "StockScreener/internal/model"

// Fetcher retrieves one symbol's daily trading history from a market-data
// provider. Implementations handle their own pacing and retries; the
// analytics layer only ever sees a usable series or an error.
type Fetcher interface {
	FetchDailySeries(code string, days int) (*model.PriceSeries, error)
	Name() string
}
