package session

import (
	"log/slog"

	"github.com/TEJ42000/ALLMS-sub002/internal/domain"
)

// MarkQuizAnswer records the learner's answer for a card and schedules
// the automatic advance. Overwriting an earlier answer adjusts score
// and reward points by the net delta, so flipping correct to incorrect
// costs exactly one point of score, never two. When the answer lands
// on the last card, the advance timer finishes the quiz instead.
func (c *Controller) MarkQuizAnswer(id domain.CardID, outcome domain.QuizOutcome) {
	c.mu.Lock()
	if c.cfg.Mode != domain.ModeQuiz {
		c.noopLocked("mark_quiz_answer", "not a quiz session")
		c.mu.Unlock()
		return
	}
	if c.phase.Terminal() {
		c.noopLocked("mark_quiz_answer", "session is not active")
		c.mu.Unlock()
		return
	}
	if !outcome.IsValid() {
		c.noopLocked("mark_quiz_answer", "unknown outcome")
		c.mu.Unlock()
		return
	}
	if !c.inDeckLocked(id) {
		c.noopLocked("mark_quiz_answer", "card is not part of this session")
		c.mu.Unlock()
		return
	}

	prior, answered := c.outcomes[id]
	if answered && prior == outcome {
		// Same answer again: no score change, but the advance timer
		// restarts so the learner still gets the pause.
		c.scheduleAdvance(c.cfg.QuizAdvanceDelay)
		c.mu.Unlock()
		return
	}

	delta := 0
	if outcome == domain.OutcomeCorrect {
		delta++
	}
	if answered && prior == domain.OutcomeCorrect {
		delta--
	}
	c.outcomes[id] = outcome
	c.score += delta
	c.points += delta * c.cfg.PointsPerCorrect
	c.reviewed[id] = struct{}{}

	c.log.Info("quiz answer recorded",
		slog.String("card_id", string(id)),
		slog.String("outcome", outcome.String()),
		slog.Int("score", c.score))

	c.scheduleAdvance(c.cfg.QuizAdvanceDelay)

	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)
}
