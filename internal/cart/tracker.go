package cart

import "sync"

// Update is published whenever a session's item count changes.
type Update struct {
	SID   string
	Count int
}

// Tracker is the shared, observable cart item count the navigation badge
// reads. It is created when the server starts and closed on shutdown; it
// is handed to its consumers explicitly rather than living as a process
// global, so tests can build one per case.
type Tracker struct {
	mu     sync.Mutex
	counts map[string]int
	subs   []chan Update
	closed bool
}

func NewTracker() *Tracker {
	return &Tracker{
		counts: make(map[string]int),
	}
}

// Count reports the last known item count for a session, zero when the
// session was never seen.
func (t *Tracker) Count(sid string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.counts[sid]
}

// Set records a fresh count and notifies subscribers. Slow subscribers
// miss updates instead of blocking the caller.
func (t *Tracker) Set(sid string, count int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return
	}
	t.counts[sid] = count
	for _, ch := range t.subs {
		select {
		case ch <- Update{SID: sid, Count: count}:
		default:
		}
	}
}

// Refresh re-reads the count from the given store and publishes it. It is
// called after every cart-mutating action completes.
func (t *Tracker) Refresh(store *Store, sid string) {
	count, err := store.Count(sid)
	if err != nil {
		return
	}
	t.Set(sid, count)
}

// Subscribe registers an observer of count changes. The channel is closed
// when the tracker shuts down.
func (t *Tracker) Subscribe() <-chan Update {
	t.mu.Lock()
	defer t.mu.Unlock()
	ch := make(chan Update, 16)
	if t.closed {
		close(ch)
		return ch
	}
	t.subs = append(t.subs, ch)
	return ch
}

// Unsubscribe removes an observer and closes its channel. Safe to call
// with a channel the tracker no longer holds.
func (t *Tracker) Unsubscribe(ch <-chan Update) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i, sub := range t.subs {
		if sub == ch {
			t.subs = append(t.subs[:i], t.subs[i+1:]...)
			close(sub)
			return
		}
	}
}

// Close tears the tracker down; further Sets are ignored.
func (t *Tracker) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return
	}
	t.closed = true
	for _, ch := range t.subs {
		close(ch)
	}
	t.subs = nil
}
