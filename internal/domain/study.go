package domain

import "time"

// ScheduleState is the per-card spaced-repetition state. It is created
// lazily on the first review, mutated only by the scheduler, and
// removed only by an explicit reset. It outlives any single session.
type ScheduleState struct {
	Ease         float64    `json:"ease"`
	IntervalDays int        `json:"interval_days"`
	Repetitions  int        `json:"repetitions"`
	LastReviewed *time.Time `json:"last_reviewed,omitempty"`
	NextReview   time.Time  `json:"next_review"`
}

// IsDue reports whether the card needs review at the given time.
// Cards with no stored state at all are always due; that case is the
// caller's to detect.
func (s *ScheduleState) IsDue(now time.Time) bool {
	return !s.NextReview.After(now)
}

// StatsThresholds configures the repetition-count buckets used by
// progress statistics. The defaults are heuristics, not constants of
// the scheduling algorithm.
type StatsThresholds struct {
	ReviewMinReps   int
	MasteredMinReps int
	DueSoonDays     int
}

// DefaultStatsThresholds returns the standard bucket boundaries.
func DefaultStatsThresholds() StatsThresholds {
	return StatsThresholds{
		ReviewMinReps:   3,
		MasteredMinReps: 5,
		DueSoonDays:     7,
	}
}

// Validate checks that the thresholds are usable.
func (t StatsThresholds) Validate() error {
	var errs []FieldError
	if t.ReviewMinReps < 1 {
		errs = append(errs, FieldError{Field: "review_min_reps", Message: "must be at least 1"})
	}
	if t.MasteredMinReps < t.ReviewMinReps {
		errs = append(errs, FieldError{Field: "mastered_min_reps", Message: "must be at least review_min_reps"})
	}
	if t.DueSoonDays < 1 {
		errs = append(errs, FieldError{Field: "due_soon_days", Message: "must be at least 1"})
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// ProgressStats aggregates schedule state over a set of cards.
// A card lands in exactly one of the New/Learning/Review/Mastered
// buckets; the due counters overlap them.
type ProgressStats struct {
	Total       int
	New         int
	Learning    int
	Review      int
	Mastered    int
	DueToday    int
	DueThisWeek int
}

// OutcomeCounts holds per-outcome counters for a quiz session.
type OutcomeCounts struct {
	Correct   int
	Incorrect int
	Skipped   int
}

// Answered is the number of cards with a definite answer; skips do not
// count toward accuracy.
func (c OutcomeCounts) Answered() int { return c.Correct + c.Incorrect }

// SessionResult holds the aggregated outcome of a session that reached
// a terminal phase.
type SessionResult struct {
	Mode          SessionMode
	TotalCards    int
	Reviewed      int
	Known         int
	Starred       int
	OutcomeCounts OutcomeCounts
	Score         int
	RewardPoints  int
	StartedAt     time.Time
	FinishedAt    time.Time
	Duration      time.Duration
	AccuracyRate  float64
}
