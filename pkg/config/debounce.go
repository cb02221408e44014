package config

import (
	"sync"
	"time"
)

// reloadDebounce is the window used to coalesce bursts of file events into a
// single reload. Editors commonly emit several writes per save.
const reloadDebounce = 400 * time.Millisecond

// debouncer coalesces rapid triggers into one callback after a quiet window.
// A sequence counter invalidates callbacks that race with Cancel: a timer may
// already have fired when Stop is called, so the fired callback re-checks the
// sequence before running.
type debouncer struct {
	window time.Duration

	mu    sync.Mutex
	timer *time.Timer
	seq   uint64
}

func newDebouncer(window time.Duration) *debouncer {
	if window <= 0 {
		window = reloadDebounce
	}
	return &debouncer{window: window}
}

// trigger schedules fn after the quiet window, replacing any pending call.
func (d *debouncer) trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	seq := d.seq

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, func() {
		d.mu.Lock()
		current := seq == d.seq
		if current {
			d.timer = nil
		}
		d.mu.Unlock()
		if current {
			fn()
		}
	})
}

// cancel drops any pending callback, including one already racing to run.
func (d *debouncer) cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
