// Package watcher re-runs generation when the breakpoint config changes on
// disk. Editors save files as bursts of writes and renames, so change events
// are debounced before the callback fires.
package watcher

import (
	"sync"
	"time"
)

// DefaultDebounce is the default coalescing window for file events.
const DefaultDebounce = 250 * time.Millisecond

// debouncer coalesces rapid triggers into a single callback invocation.
// Only the most recently scheduled callback runs; earlier ones are dropped
// even if their timer has already fired.
type debouncer struct {
	window time.Duration
	mu     sync.Mutex
	timer  *time.Timer
	seq    uint64
}

func newDebouncer(window time.Duration) *debouncer {
	if window == 0 {
		window = DefaultDebounce
	}
	return &debouncer{window: window}
}

// trigger schedules callback after the window, cancelling any pending one.
func (d *debouncer) trigger(callback func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	seq := d.seq

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, func() {
		d.mu.Lock()
		stale := seq != d.seq
		if !stale {
			d.timer = nil
		}
		d.mu.Unlock()
		if stale {
			// A newer trigger superseded this one while the timer raced Stop.
			return
		}
		callback()
	})
}

// cancel stops any pending callback, including one whose timer already fired.
func (d *debouncer) cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
