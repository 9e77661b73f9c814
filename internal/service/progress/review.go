package progress

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/TEJ42000/ALLMS-sub002/internal/domain"
	"github.com/TEJ42000/ALLMS-sub002/internal/service/progress/sm2"
)

// RecordReview validates the rating, advances the card's schedule
// through the SM-2 engine, persists the result, and returns it.
func (t *Tracker) RecordReview(ctx context.Context, id domain.CardID, quality domain.Quality, now time.Time) (domain.ScheduleState, error) {
	if id == "" {
		return domain.ScheduleState{}, domain.NewValidationError("card_id", "must not be empty")
	}
	if !quality.IsValid() {
		return domain.ScheduleState{}, domain.NewValidationError("quality",
			fmt.Sprintf("must be between %d and %d", domain.QualityBlackout, domain.QualityPerfect))
	}

	prior, err := t.loadState(ctx, id)
	if err != nil {
		return domain.ScheduleState{}, fmt.Errorf("load state: %w", err)
	}

	next := sm2.Review(t.params, prior, quality, now)

	raw, err := encodeState(next)
	if err != nil {
		return domain.ScheduleState{}, fmt.Errorf("encode state: %w", err)
	}
	if err := t.persist(ctx, t.key(id), raw); err != nil {
		return domain.ScheduleState{}, fmt.Errorf("persist state: %w", err)
	}

	t.log.InfoContext(ctx, "review recorded",
		logAttrs(ctx,
			slog.String("card_id", string(id)),
			slog.String("quality", quality.String()),
			slog.Int("repetitions", next.Repetitions),
			slog.Int("interval_days", next.IntervalDays))...)

	return next, nil
}
