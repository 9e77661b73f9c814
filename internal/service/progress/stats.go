package progress

import (
	"context"
	"time"

	"github.com/TEJ42000/ALLMS-sub002/internal/domain"
)

// Statistics aggregates schedule state over the given cards. Each card
// lands in exactly one repetition bucket; the due counters overlap
// them. "Today" ends at the next local midnight in tz, not 24 hours
// from now; nil tz means UTC.
func (t *Tracker) Statistics(ctx context.Context, ids []domain.CardID, now time.Time, tz *time.Location) domain.ProgressStats {
	if tz == nil {
		tz = time.UTC
	}

	dayEnd := NextDayStart(now, tz)
	weekEnd := DayStart(now, tz).AddDate(0, 0, t.thresholds.DueSoonDays)

	stats := domain.ProgressStats{Total: len(ids)}
	for _, id := range ids {
		state, err := t.loadState(ctx, id)
		if err != nil || state == nil {
			// Never reviewed: due right now.
			stats.New++
			stats.DueToday++
			stats.DueThisWeek++
			continue
		}

		switch {
		case state.Repetitions < t.thresholds.ReviewMinReps:
			stats.Learning++
		case state.Repetitions < t.thresholds.MasteredMinReps:
			stats.Review++
		default:
			stats.Mastered++
		}

		if state.NextReview.Before(dayEnd) {
			stats.DueToday++
		}
		if state.NextReview.Before(weekEnd) {
			stats.DueThisWeek++
		}
	}
	return stats
}
