package session

import (
	"context"
	"log/slog"

	"github.com/TEJ42000/ALLMS-sub002/internal/domain"
	"github.com/TEJ42000/ALLMS-sub002/pkg/ctxutil"
)

// ApplyFilter narrows the session to the matching subsequence of the
// active deck, order preserved. The full deck is snapshotted first so
// RestoreFullDeck can reinstate the exact pre-filter view. Tracking
// sets are left alone: identifiers are stable across views, so there
// is nothing to fix up. An empty match, an unknown filter, or a
// session that is already filtered all leave the state untouched.
func (c *Controller) ApplyFilter(ctx context.Context, filter domain.ViewFilter) {
	c.mu.Lock()
	if c.phase.Terminal() {
		c.noopLocked("apply_filter", "session is not active")
		c.mu.Unlock()
		return
	}
	if filter == domain.FilterNone || !filter.IsValid() {
		c.noopLocked("apply_filter", "not a narrowing filter")
		c.mu.Unlock()
		return
	}
	if c.fullDeck != nil {
		c.noopLocked("apply_filter", "already filtered, restore first")
		c.mu.Unlock()
		return
	}

	keep, ok := c.filterPredicateLocked(ctx, filter)
	if !ok {
		c.mu.Unlock()
		return
	}

	filtered := make([]domain.Card, 0, len(c.deck))
	for _, card := range c.deck {
		if keep[card.ID] {
			filtered = append(filtered, card)
		}
	}
	if len(filtered) == 0 {
		c.noopLocked("apply_filter", "no cards match the filter")
		c.mu.Unlock()
		return
	}

	c.cancelTimersLocked()
	c.fullDeck = c.deck
	c.deck = filtered
	c.index = 0
	c.phase = domain.PhaseBrowsing
	c.filter = filter
	c.refreshDueLocked(ctx, c.clock.Now())

	c.log.InfoContext(ctx, "filter applied",
		slog.String("filter", filter.String()),
		slog.Int("cards", len(filtered)))
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)
}

// filterPredicateLocked resolves a filter to the set of matching card
// identifiers. A false second return means the filter cannot run in
// the current mode and the caller should bail out.
func (c *Controller) filterPredicateLocked(ctx context.Context, filter domain.ViewFilter) (map[domain.CardID]bool, bool) {
	keep := make(map[domain.CardID]bool, len(c.deck))

	switch filter {
	case domain.FilterStarred:
		for id := range c.starred {
			keep[id] = true
		}

	case domain.FilterDue:
		if c.tracker == nil {
			c.noopLocked("apply_filter", "no tracker to answer due queries")
			return nil, false
		}
		ids := make([]domain.CardID, len(c.deck))
		for i, card := range c.deck {
			ids[i] = card.ID
		}
		ctx = ctxutil.WithSessionID(ctx, c.id)
		now := c.clock.Now()
		for _, id := range c.tracker.DueCards(ctx, ids, now) {
			keep[id] = true
		}

	case domain.FilterIncorrect:
		if c.cfg.Mode != domain.ModeQuiz {
			c.noopLocked("apply_filter", "incorrect-only is a quiz filter")
			return nil, false
		}
		for id, outcome := range c.outcomes {
			if outcome == domain.OutcomeIncorrect {
				keep[id] = true
			}
		}

	default:
		c.noopLocked("apply_filter", "not a narrowing filter")
		return nil, false
	}

	return keep, true
}

// RestoreFullDeck reinstates the pre-filter deck order with the cursor
// on the first card, unflipped. Tracking sets are live state, never
// restored from the snapshot: toggles made inside the filtered view
// survive, and since filtering itself mutates no set, an immediate
// round trip reproduces the pre-filter view exactly.
func (c *Controller) RestoreFullDeck() {
	c.mu.Lock()
	if c.phase.Terminal() {
		c.noopLocked("restore_full_deck", "session is not active")
		c.mu.Unlock()
		return
	}
	if c.fullDeck == nil {
		// Not filtered; nothing to restore.
		c.mu.Unlock()
		return
	}

	c.cancelTimersLocked()
	c.deck = c.fullDeck
	c.fullDeck = nil
	c.index = 0
	c.phase = domain.PhaseBrowsing
	c.filter = domain.FilterNone
	c.refreshDueLocked(context.Background(), c.clock.Now())

	c.log.Info("full deck restored", slog.Int("cards", len(c.deck)))
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)
}
