// Package carousel implements the image rotation state machines: pure index
// arithmetic, a timer-driven autoplayer, and the modal viewer's zoom/pan state.
package carousel

import (
	"sync"
	"time"
)

// Next returns the index after one advance, wrapping at length.
func Next(index, length int) int {
	if length <= 0 {
		return 0
	}
	return (index + 1) % length
}

// Prev returns the index before the current one, wrapping at zero.
func Prev(index, length int) int {
	if length <= 0 {
		return 0
	}
	return (index - 1 + length) % length
}

// Clamp confines an index to [0, length).
func Clamp(index, length int) int {
	if length <= 0 || index < 0 || index >= length {
		return 0
	}
	return index
}

// Autoplayer advances a carousel index on a fixed interval. It is an explicit
// Idle/Autoplaying machine: Start is the entry action (hover-in or mount),
// Stop the exit action (hover-out, unmount or close). Stop discards any
// pending partial tick; a later Start begins a full fresh interval.
type Autoplayer struct {
	mu       sync.Mutex
	index    int
	length   int
	interval time.Duration
	ticker   *time.Ticker
	done     chan struct{}
	advanced func(index int)
}

// NewAutoplayer creates an autoplayer over length images starting at index 0.
// advanced, if non-nil, is called after each automatic advance.
func NewAutoplayer(length int, interval time.Duration, advanced func(index int)) *Autoplayer {
	return &Autoplayer{
		length:   length,
		interval: interval,
		advanced: advanced,
	}
}

// Start transitions to Autoplaying. Calling Start while already playing has
// no effect.
func (a *Autoplayer) Start() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.ticker != nil || a.length <= 1 {
		return
	}

	a.ticker = time.NewTicker(a.interval)
	a.done = make(chan struct{})
	go a.run(a.ticker, a.done)
}

func (a *Autoplayer) run(ticker *time.Ticker, done chan struct{}) {
	for {
		select {
		case <-ticker.C:
			a.advance()
		case <-done:
			return
		}
	}
}

func (a *Autoplayer) advance() {
	a.mu.Lock()
	a.index = Next(a.index, a.length)
	index := a.index
	cb := a.advanced
	a.mu.Unlock()

	if cb != nil {
		cb(index)
	}
}

// Stop transitions to Idle, cancelling the timer.
func (a *Autoplayer) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.ticker == nil {
		return
	}
	a.ticker.Stop()
	close(a.done)
	a.ticker = nil
	a.done = nil
}

// Playing reports whether the autoplayer is in the Autoplaying state.
func (a *Autoplayer) Playing() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.ticker != nil
}

// Index returns the current image index.
func (a *Autoplayer) Index() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.index
}

// Select sets the index directly (arrow or indicator click). Manual
// navigation never resets or restarts the autoplay cadence.
func (a *Autoplayer) Select(index int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.index = Clamp(index, a.length)
}
