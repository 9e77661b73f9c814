package session

import "github.com/TEJ42000/ALLMS-sub002/internal/domain"

// Shuffle permutes the active deck in place (Fisher-Yates) and resets
// the cursor to the first card, unflipped. Tracking sets are keyed by
// stable card identifiers, so membership needs no fixup whatsoever; a
// pre-filter snapshot keeps its own order and is untouched.
func (c *Controller) Shuffle() {
	c.mu.Lock()
	if c.phase.Terminal() {
		c.noopLocked("shuffle", "session is not active")
		c.mu.Unlock()
		return
	}

	c.cancelTimersLocked()

	for i := len(c.deck) - 1; i > 0; i-- {
		j := c.rand.Intn(i + 1)
		c.deck[i], c.deck[j] = c.deck[j], c.deck[i]
	}
	c.index = 0
	c.phase = domain.PhaseBrowsing

	c.log.Info("deck shuffled")
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)
}
