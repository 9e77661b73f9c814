package navguard

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// CancelFunc removes one scheduled callback. It is safe to call more
// than once and after the callback has already run.
type CancelFunc func()

// Timers is a registry of cancellable scheduled callbacks. The
// guarantee callers rely on: once a handle is cancelled its callback
// never runs, even when the underlying timer fired first. Callbacks
// re-check registry membership before executing, so Stop racing the
// fire is harmless.
type Timers struct {
	clock clockwork.Clock

	mu    sync.Mutex
	seq   uint64
	armed map[uint64]clockwork.Timer
}

// NewTimers creates an empty registry on the given clock.
func NewTimers(clock clockwork.Clock) *Timers {
	return &Timers{clock: clock, armed: make(map[uint64]clockwork.Timer)}
}

// Schedule runs fn after d unless the returned handle or CancelAll
// cancels it first. fn runs on the timer goroutine, like
// time.AfterFunc.
func (t *Timers) Schedule(d time.Duration, fn func()) CancelFunc {
	t.mu.Lock()
	t.seq++
	id := t.seq
	timer := t.clock.AfterFunc(d, func() {
		t.mu.Lock()
		_, live := t.armed[id]
		delete(t.armed, id)
		t.mu.Unlock()
		if live {
			fn()
		}
	})
	t.armed[id] = timer
	t.mu.Unlock()

	return func() {
		t.mu.Lock()
		timer, live := t.armed[id]
		delete(t.armed, id)
		t.mu.Unlock()
		if live {
			timer.Stop()
		}
	}
}

// CancelAll drops every pending callback. Used when a manual
// navigation supersedes scheduled advances and on session teardown.
func (t *Timers) CancelAll() {
	t.mu.Lock()
	armed := t.armed
	t.armed = make(map[uint64]clockwork.Timer)
	t.mu.Unlock()

	for _, timer := range armed {
		timer.Stop()
	}
}

// Pending reports the number of armed callbacks.
func (t *Timers) Pending() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.armed)
}
