package hotplug

import (
	"sync"
	"time"
)

// Debouncer delivers the last triggered event once no further event has
// arrived for the configured delay.
type Debouncer struct {
	delay time.Duration
	fn    func(Event)

	mu      sync.Mutex
	timer   *time.Timer
	pending Event
	count   int
	stopped bool
}

// NewDebouncer returns a debouncer calling fn. A non-positive delay calls fn
// synchronously for every event.
func NewDebouncer(delay time.Duration, fn func(Event)) *Debouncer {
	return &Debouncer{delay: delay, fn: fn}
}

// Trigger records ev and restarts the quiet period.
func (d *Debouncer) Trigger(ev Event) {
	if d == nil || d.fn == nil {
		return
	}
	if d.delay <= 0 {
		d.mu.Lock()
		stopped := d.stopped
		d.mu.Unlock()
		if !stopped {
			d.fn(ev)
		}
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	d.pending = ev
	d.count++
	if d.timer == nil {
		d.timer = time.AfterFunc(d.delay, d.fire)
		return
	}
	d.timer.Reset(d.delay)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	if d.stopped || d.count == 0 {
		d.mu.Unlock()
		return
	}
	ev := d.pending
	ev.Coalesced = d.count
	d.count = 0
	d.pending = Event{}
	d.mu.Unlock()

	d.fn(ev)
}

// Stop discards any pending event. Triggers after Stop are ignored.
func (d *Debouncer) Stop() {
	if d == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	d.count = 0
	if d.timer != nil {
		d.timer.Stop()
	}
}
