package session

import (
	"testing"

	"github.com/TEJ42000/ALLMS-sub002/internal/domain"
)

func TestSnapshot_DegradedStorageFlag(t *testing.T) {
	t.Parallel()

	tr := idleTracker()
	tr.DegradedFunc = func() bool { return true }

	c, _ := newSession(t, DefaultConfig(domain.ModeSpacedRepetition), 2, tr)
	if !c.Snapshot().DegradedStorage {
		t.Error("DegradedStorage = false, want true from the tracker")
	}

	plain, _ := newSession(t, DefaultConfig(domain.ModeStandard), 2, nil)
	if plain.Snapshot().DegradedStorage {
		t.Error("DegradedStorage = true, want false without a tracker")
	}
}

func TestSnapshot_UnsavedProgress(t *testing.T) {
	t.Parallel()

	t.Run("standard follows reviews", func(t *testing.T) {
		t.Parallel()

		cfg := DefaultConfig(domain.ModeStandard)
		cfg.DebounceWindow = 0
		c, _ := newSession(t, cfg, 1, nil)

		if c.Snapshot().UnsavedProgress {
			t.Error("fresh session: UnsavedProgress = true, want false")
		}

		c.Flip()
		if !c.Snapshot().UnsavedProgress {
			t.Error("after flip: UnsavedProgress = false, want true")
		}

		c.Next() // finishes the single-card session
		if c.Snapshot().UnsavedProgress {
			t.Error("at terminal phase: UnsavedProgress = true, want false")
		}
	})

	t.Run("quiz follows answers", func(t *testing.T) {
		t.Parallel()

		c, _ := newSession(t, DefaultConfig(domain.ModeQuiz), 2, nil)

		c.MarkQuizAnswer(cardAt(c, 0).ID, domain.OutcomeSkip)
		if !c.Snapshot().UnsavedProgress {
			t.Error("after answer: UnsavedProgress = false, want true")
		}
	})
}

func TestSnapshot_CardIsACopy(t *testing.T) {
	t.Parallel()

	c, _ := newSession(t, DefaultConfig(domain.ModeStandard), 2, nil)

	snap := c.Snapshot()
	snap.Card.Prompt = "scribbled over"

	if got := c.Snapshot().Card.Prompt; got != "prompt 1" {
		t.Errorf("Prompt = %q, want %q: snapshots must not alias the deck", got, "prompt 1")
	}
}

func TestSnapshot_ResultIsACopy(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig(domain.ModeStandard)
	cfg.DebounceWindow = 0
	c, _ := newSession(t, cfg, 1, nil)
	c.Next()

	snap := c.Snapshot()
	if snap.Result == nil {
		t.Fatal("Result = nil, want final report")
	}
	snap.Result.Score = 99

	if got := c.Snapshot().Result.Score; got != 0 {
		t.Errorf("Score = %d, want 0: results must not alias session state", got)
	}
}
