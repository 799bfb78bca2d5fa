package light

import (
	"time"
)

// TickSource delivers periodic ticks until stopped.
type TickSource interface {
	C() <-chan time.Time
	Stop()
}

// Ticker is the TickSource backed by a time.Ticker.
type Ticker struct {
	ticker *time.Ticker
}

// NewTicker creates a ticker that fires every interval.
//
// Example usage:
//
//	t := light.NewTicker(30 * time.Millisecond)
//	defer t.Stop()
//
//	for range t.C() {
//	    // ... one animation step ...
//	}
func NewTicker(interval time.Duration) *Ticker {
	return &Ticker{ticker: time.NewTicker(interval)}
}

// C returns the tick channel.
func (t *Ticker) C() <-chan time.Time {
	return t.ticker.C
}

// Stop stops the ticker and releases resources.
func (t *Ticker) Stop() {
	t.ticker.Stop()
}
