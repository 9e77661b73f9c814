package session

import (
	"context"
	"log/slog"

	"github.com/TEJ42000/ALLMS-sub002/internal/domain"
	"github.com/TEJ42000/ALLMS-sub002/pkg/ctxutil"
)

// RateCard records a recall rating for the current, flipped card and
// hands it to the tracker, which persists the rescheduled state. After
// a short feedback pause the session advances automatically; rating
// the last card finishes the session once the pause elapses. Valid
// only in spaced-repetition mode.
func (c *Controller) RateCard(ctx context.Context, id domain.CardID, quality domain.Quality) {
	c.mu.Lock()
	if c.cfg.Mode != domain.ModeSpacedRepetition {
		c.noopLocked("rate_card", "not a spaced-repetition session")
		c.mu.Unlock()
		return
	}
	if c.phase.Terminal() {
		c.noopLocked("rate_card", "session is not active")
		c.mu.Unlock()
		return
	}
	if c.phase != domain.PhaseFlipped {
		c.noopLocked("rate_card", "card is not flipped")
		c.mu.Unlock()
		return
	}
	if id != c.currentCardLocked().ID {
		c.noopLocked("rate_card", "not the current card")
		c.mu.Unlock()
		return
	}
	if !quality.IsValid() {
		c.noopLocked("rate_card", "quality out of range")
		c.mu.Unlock()
		return
	}

	ctx = ctxutil.WithSessionID(ctx, c.id)
	now := c.clock.Now()
	state, err := c.tracker.RecordReview(ctx, id, quality, now)
	if err != nil {
		// Tracker errors here mean invalid input or a dead context,
		// not storage trouble; storage failures degrade inside the
		// tracker without surfacing.
		c.log.WarnContext(ctx, "recording review failed",
			slog.String("card_id", string(id)),
			slog.String("error", err.Error()))
		c.mu.Unlock()
		return
	}

	c.rated[id] = struct{}{}
	c.reviewed[id] = struct{}{}
	c.refreshDueLocked(ctx, now)

	c.log.InfoContext(ctx, "card rated",
		slog.String("card_id", string(id)),
		slog.String("quality", quality.String()),
		slog.Int("interval_days", state.IntervalDays),
		slog.Int("repetitions", state.Repetitions))

	c.scheduleAdvance(c.cfg.FeedbackDelay)

	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)
}
