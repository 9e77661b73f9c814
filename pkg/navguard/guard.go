// Package navguard enforces the navigation discipline of an
// interactive review session: a debounce window that drops rapid
// repeated input, a registry of cancellable timers, and swipe gesture
// recognition. All time flows through a clockwork.Clock so every
// behavior is deterministic under test.
package navguard

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Guard drops navigation requests arriving inside a fixed debounce
// window. Requests are never queued: the input is simply lost, which
// keeps key repeat, double taps, and overlapping gestures from
// compounding into several transitions.
type Guard struct {
	clock  clockwork.Clock
	window time.Duration

	mu   sync.Mutex
	last time.Time // zero until the first pass
}

// NewGuard creates a guard with the given debounce window. A zero or
// negative window disables debouncing.
func NewGuard(clock clockwork.Clock, window time.Duration) *Guard {
	return &Guard{clock: clock, window: window}
}

// TryPass consumes one navigation slot. It reports false while the
// window opened by the previous successful pass is still active; a
// rejected request does not extend the window.
func (g *Guard) TryPass() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.clock.Now()
	if !g.last.IsZero() && now.Sub(g.last) < g.window {
		return false
	}
	g.last = now
	return true
}
