package refresh

import (
	"sync"
	"time"
)

// DefaultQuiescence is the minimum pause after the last trigger before
// a debounced function runs.
const DefaultQuiescence = 500 * time.Millisecond

// Debouncer runs a function once its triggers have been quiet for the
// configured interval. Each trigger replaces any pending run.
type Debouncer struct {
	interval time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// NewDebouncer builds a debouncer. Non-positive intervals fall back to
// DefaultQuiescence.
func NewDebouncer(interval time.Duration) *Debouncer {
	if interval <= 0 {
		interval = DefaultQuiescence
	}
	return &Debouncer{interval: interval}
}

// Trigger schedules fn after the quiescence interval, replacing any
// previously scheduled function.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, fn)
}

// Stop cancels any pending run.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
