package session

import (
	"log/slog"
	"time"

	"github.com/TEJ42000/ALLMS-sub002/internal/domain"
	"github.com/TEJ42000/ALLMS-sub002/pkg/navguard"
)

// Flip turns the current card over, or back. The first flip of a card
// marks it reviewed: seeing the answer is what counts as a review.
func (c *Controller) Flip() {
	c.mu.Lock()
	if c.phase.Terminal() {
		c.noopLocked("flip", "session is not active")
		c.mu.Unlock()
		return
	}

	if c.phase == domain.PhaseBrowsing {
		c.phase = domain.PhaseFlipped
		c.reviewed[c.currentCardLocked().ID] = struct{}{}
	} else {
		c.phase = domain.PhaseBrowsing
	}

	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)
}

// Next moves the cursor forward. At the last card it finishes the
// session instead of running past the end.
func (c *Controller) Next() {
	c.navigate(1, "next")
}

// Previous moves the cursor back. At the first card it is a no-op.
func (c *Controller) Previous() {
	c.navigate(-1, "previous")
}

// navigate is the single entry point for manual cursor movement. It is
// gated by the debounce guard (dropped, never queued) and supersedes
// any pending automatic advance.
func (c *Controller) navigate(delta int, op string) {
	c.mu.Lock()
	if c.phase.Terminal() {
		c.noopLocked(op, "session is not active")
		c.mu.Unlock()
		return
	}

	next := c.index + delta
	if next < 0 {
		// Clamped: previous at the first card mutates nothing, so it
		// neither consumes a debounce slot nor cancels timers.
		c.mu.Unlock()
		return
	}

	if !c.guard.TryPass() {
		c.log.Debug("navigation dropped by debounce", slog.String("op", op))
		c.mu.Unlock()
		return
	}

	c.cancelTimersLocked()

	if next >= len(c.deck) {
		c.completeLocked(c.clock.Now())
	} else {
		c.index = next
		c.phase = domain.PhaseBrowsing
	}

	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)
}

// HandleSwipe feeds a pointer gesture into navigation. Only decisively
// horizontal swipes move the cursor: right goes back, left goes
// forward, everything else is ignored.
func (c *Controller) HandleSwipe(dx, dy float64) {
	switch navguard.DetectSwipe(dx, dy, c.cfg.SwipeThreshold) {
	case navguard.SwipeRight:
		c.Previous()
	case navguard.SwipeLeft:
		c.Next()
	case navguard.SwipeNone:
	}
}

// scheduleAdvance arms a cancellable automatic advance. The decision
// whether the session finishes is taken now, under the lock, and the
// callback only re-validates liveness: it never reads the clock, and a
// generation bump or cancellation makes it a no-op.
func (c *Controller) scheduleAdvance(delay time.Duration) {
	c.cancelTimersLocked()

	gen := c.gen
	last := c.index >= len(c.deck)-1
	at := c.clock.Now().Add(delay)

	c.timers.Schedule(delay, func() {
		c.autoAdvance(gen, last, at)
	})
}

// autoAdvance is the timer half of scheduleAdvance. It bypasses the
// debounce guard: automatic advances are paced by their own delay.
func (c *Controller) autoAdvance(gen uint64, last bool, at time.Time) {
	c.mu.Lock()
	if c.gen != gen || c.phase.Terminal() {
		c.mu.Unlock()
		return
	}

	if last {
		c.completeLocked(at)
	} else {
		c.index++
		c.phase = domain.PhaseBrowsing
	}

	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)
}

// completeLocked moves the session to its terminal phase and freezes
// the result. Nothing scheduled may outlive this transition.
func (c *Controller) completeLocked(at time.Time) {
	c.cancelTimersLocked()

	if c.cfg.Mode == domain.ModeQuiz {
		c.phase = domain.PhaseQuizComplete
	} else {
		c.phase = domain.PhaseCompleted
	}
	c.result = c.buildResultLocked(at)

	c.log.Info("session finished",
		slog.String("phase", c.phase.String()),
		slog.Int("reviewed", len(c.reviewed)),
		slog.Int("score", c.score))
}
