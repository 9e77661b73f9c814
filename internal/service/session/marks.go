package session

import "github.com/TEJ42000/ALLMS-sub002/internal/domain"

// ToggleStar flips a card's membership in the starred set. The cursor
// does not move.
func (c *Controller) ToggleStar(id domain.CardID) {
	c.toggleMark(id, "toggle_star")
}

// ToggleKnown flips a card's membership in the known set. The cursor
// does not move.
func (c *Controller) ToggleKnown(id domain.CardID) {
	c.toggleMark(id, "toggle_known")
}

// toggleMark is the shared toggle. Sets are keyed by stable card
// identifiers, so membership survives shuffles and filtered views
// without any re-indexing.
func (c *Controller) toggleMark(id domain.CardID, op string) {
	c.mu.Lock()
	if c.phase.Terminal() {
		c.noopLocked(op, "session is not active")
		c.mu.Unlock()
		return
	}
	if !c.inDeckLocked(id) {
		c.noopLocked(op, "card is not part of this session")
		c.mu.Unlock()
		return
	}

	set := c.starred
	if op == "toggle_known" {
		set = c.known
	}
	if _, ok := set[id]; ok {
		delete(set, id)
	} else {
		set[id] = struct{}{}
	}

	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)
}
