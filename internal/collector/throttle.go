package collector

import (
	"sync"
	"time"

	"StockScreener/internal/model"
)

// ThrottledFetcher spaces requests a fixed interval apart so a sweep over
// thousands of codes stays inside the provider's tolerance. Pacing lives
// entirely on the retrieval side; the analytics layer never sleeps.
type ThrottledFetcher struct {
	inner    Fetcher
	interval time.Duration

	mu   sync.Mutex
	next time.Time
}

// NewThrottledFetcher wraps a fetcher with a flat inter-request delay.
func NewThrottledFetcher(inner Fetcher, interval time.Duration) *ThrottledFetcher {
	return &ThrottledFetcher{inner: inner, interval: interval}
}

func (t *ThrottledFetcher) Name() string { return t.inner.Name() }

func (t *ThrottledFetcher) FetchDailySeries(code string, days int) (*model.PriceSeries, error) {
	t.wait()
	return t.inner.FetchDailySeries(code, days)
}

// wait reserves the next request slot. Concurrent callers each get their
// own slot, interval apart, so the global request rate holds regardless of
// worker count.
func (t *ThrottledFetcher) wait() {
	t.mu.Lock()
	now := time.Now()
	slot := t.next
	if slot.Before(now) {
		slot = now
	}
	t.next = slot.Add(t.interval)
	t.mu.Unlock()

	if d := time.Until(slot); d > 0 {
		time.Sleep(d)
	}
}
