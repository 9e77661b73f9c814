package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/TEJ42000/ALLMS-sub002/internal/domain"
)

// Snapshot is the read-only view a rendering layer consumes. The core
// never touches presentation; presentation never mutates the core. A
// fresh snapshot is handed to the listener after every transition.
type Snapshot struct {
	SessionID uuid.UUID
	Mode      domain.SessionMode
	Phase     domain.SessionPhase
	Filter    domain.ViewFilter

	// Card is the card under the cursor, nil once the session reached
	// a terminal phase.
	Card    *domain.Card
	Index   int
	Total   int
	Flipped bool

	ReviewedCount int
	KnownCount    int
	StarredCount  int

	QuizScore     int
	RewardPoints  int
	AnsweredCount int

	// DueCount is the number of due cards in the active view; always
	// zero without a tracker.
	DueCount int
	// DegradedStorage signals that schedule state is being kept in
	// memory only. A non-blocking notice, never an interruption.
	DegradedStorage bool
	// UnsavedProgress signals session-local progress that would be
	// lost on teardown. Presentation may warn before exit; the core
	// owns no browser lifecycle.
	UnsavedProgress bool

	// Result is set at terminal phases.
	Result *domain.SessionResult
}

// Snapshot returns the current read-only view.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() Snapshot {
	snap := Snapshot{
		SessionID:       c.id,
		Mode:            c.cfg.Mode,
		Phase:           c.phase,
		Filter:          c.filter,
		Index:           c.index,
		Total:           len(c.deck),
		Flipped:         c.phase == domain.PhaseFlipped,
		ReviewedCount:   len(c.reviewed),
		KnownCount:      len(c.known),
		StarredCount:    len(c.starred),
		QuizScore:       c.score,
		RewardPoints:    c.points,
		AnsweredCount:   len(c.outcomes),
		DueCount:        c.dueCount,
		UnsavedProgress: c.unsavedLocked(),
	}
	if c.tracker != nil {
		snap.DegradedStorage = c.tracker.Degraded()
	}
	if !c.phase.Terminal() && len(c.deck) > 0 {
		card := c.deck[c.index]
		snap.Card = &card
	}
	if c.result != nil {
		result := *c.result
		snap.Result = &result
	}
	return snap
}

// unsavedLocked reports whether tearing the session down now would
// lose progress. Spaced-repetition reviews persist through the tracker
// as they happen; everything else is session-local.
func (c *Controller) unsavedLocked() bool {
	if c.phase.Terminal() {
		return false
	}
	if c.cfg.Mode == domain.ModeSpacedRepetition {
		for id := range c.reviewed {
			if _, ok := c.rated[id]; !ok {
				return true
			}
		}
		return false
	}
	return len(c.reviewed) > 0 || len(c.outcomes) > 0
}

// buildResultLocked aggregates the session into its final report.
func (c *Controller) buildResultLocked(at time.Time) *domain.SessionResult {
	var counts domain.OutcomeCounts
	for _, outcome := range c.outcomes {
		switch outcome {
		case domain.OutcomeCorrect:
			counts.Correct++
		case domain.OutcomeIncorrect:
			counts.Incorrect++
		case domain.OutcomeSkip:
			counts.Skipped++
		}
	}

	result := &domain.SessionResult{
		Mode:          c.cfg.Mode,
		TotalCards:    len(c.deck),
		Reviewed:      len(c.reviewed),
		Known:         len(c.known),
		Starred:       len(c.starred),
		OutcomeCounts: counts,
		Score:         c.score,
		RewardPoints:  c.points,
		StartedAt:     c.startedAt,
		FinishedAt:    at,
		Duration:      at.Sub(c.startedAt),
	}
	if answered := counts.Answered(); answered > 0 {
		result.AccuracyRate = float64(counts.Correct) / float64(answered)
	}
	return result
}
