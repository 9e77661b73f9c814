package progress

import (
	"context"
	"time"

	"github.com/TEJ42000/ALLMS-sub002/internal/domain"
)

// IsDue reports whether a card needs review at the given time.
// Cards with no stored state have never been reviewed and are always
// due.
func (t *Tracker) IsDue(ctx context.Context, id domain.CardID, now time.Time) bool {
	state, err := t.loadState(ctx, id)
	if err != nil || state == nil {
		return true
	}
	return state.IsDue(now)
}

// DueCards filters ids down to the cards due at the given time,
// preserving input order.
func (t *Tracker) DueCards(ctx context.Context, ids []domain.CardID, now time.Time) []domain.CardID {
	due := make([]domain.CardID, 0, len(ids))
	for _, id := range ids {
		if t.IsDue(ctx, id, now) {
			due = append(due, id)
		}
	}
	return due
}
