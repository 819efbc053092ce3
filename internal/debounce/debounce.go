package debounce

import (
	"sync"
	"time"
)

// Clock abstracts timer creation so tests can drive the delay without
// real wall-clock waits.
type Clock interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

type Timer interface {
	Stop() bool
}

type systemClock struct{}

func (systemClock) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

type pending struct {
	timer Timer
	value int
}

// Debouncer delays a commit until the input stream for a key pauses.
// A newer Schedule for the same key supersedes the pending one, so for a
// given key only the most recent value ever reaches the commit function.
// Keys are independent timers; there is no cross-key ordering.
type Debouncer struct {
	mu        sync.Mutex
	clock     Clock
	delay     time.Duration
	pending   map[string]*pending
	committed map[string]int
	stopped   bool
}

func New(delay time.Duration) *Debouncer {
	return NewWithClock(delay, systemClock{})
}

func NewWithClock(delay time.Duration, clock Clock) *Debouncer {
	return &Debouncer{
		clock:     clock,
		delay:     delay,
		pending:   make(map[string]*pending),
		committed: make(map[string]int),
	}
}

// Seen records the value a key currently holds without scheduling
// anything, so an echo of that same value later is not committed again.
func (d *Debouncer) Seen(key string, value int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.committed[key]; !ok {
		d.committed[key] = value
	}
}

// Schedule queues value for commit after the delay. A pending commit for
// the same key is cancelled and rescheduled. When the delay elapses the
// commit runs only if the value still differs from the last committed one.
func (d *Debouncer) Schedule(key string, value int, commit func(value int)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if p, ok := d.pending[key]; ok {
		p.timer.Stop()
	}
	p := &pending{value: value}
	p.timer = d.clock.AfterFunc(d.delay, func() {
		d.fire(key, p, commit)
	})
	d.pending[key] = p
}

func (d *Debouncer) fire(key string, p *pending, commit func(value int)) {
	d.mu.Lock()
	if d.stopped || d.pending[key] != p {
		// Superseded or cancelled between expiry and acquiring the lock.
		d.mu.Unlock()
		return
	}
	delete(d.pending, key)
	last, ok := d.committed[key]
	if ok && last == p.value {
		d.mu.Unlock()
		return
	}
	d.committed[key] = p.value
	d.mu.Unlock()

	commit(p.value)
}

// Cancel drops the pending commit for a key, if any.
func (d *Debouncer) Cancel(key string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if p, ok := d.pending[key]; ok {
		p.timer.Stop()
		delete(d.pending, key)
	}
}

// Stop cancels every pending commit. A timer that fires after Stop is a
// no-op, so nothing writes through a torn-down debouncer.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	for key, p := range d.pending {
		p.timer.Stop()
		delete(d.pending, key)
	}
}
