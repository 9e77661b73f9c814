package session

import (
	"context"
	"testing"

	"github.com/TEJ42000/ALLMS-sub002/internal/domain"
)

func TestController_ShuffleIsDeterministicBySeed(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig(domain.ModeStandard)
	cfg.ShuffleSeed = 42

	a, _ := newSession(t, cfg, 6, nil)
	b, _ := newSession(t, cfg, 6, nil)
	original := deckIDs(a)

	a.Shuffle()
	b.Shuffle()

	gotA, gotB := deckIDs(a), deckIDs(b)
	for i := range gotA {
		if gotA[i] != gotB[i] {
			t.Fatalf("shuffles diverged at %d: %s != %s", i, gotA[i], gotB[i])
		}
	}

	seen := make(map[domain.CardID]bool, len(gotA))
	for _, id := range gotA {
		seen[id] = true
	}
	for _, id := range original {
		if !seen[id] {
			t.Fatalf("card %s lost by shuffle", id)
		}
	}
}

func TestController_ShuffleResetsCursorAndFlip(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig(domain.ModeStandard)
	cfg.DebounceWindow = 0
	c, _ := newSession(t, cfg, 4, nil)

	c.Next()
	c.Flip()
	c.Shuffle()

	snap := c.Snapshot()
	if snap.Index != 0 || snap.Flipped || snap.Phase != domain.PhaseBrowsing {
		t.Errorf("Index/Flipped/Phase = %d/%v/%v, want 0/false/BROWSING", snap.Index, snap.Flipped, snap.Phase)
	}
}

func TestController_ShuffleKeepsMarks(t *testing.T) {
	t.Parallel()

	c, _ := newSession(t, DefaultConfig(domain.ModeStandard), 5, nil)
	id := cardAt(c, 2).ID

	c.ToggleStar(id)
	c.Shuffle()

	if got := c.Snapshot().StarredCount; got != 1 {
		t.Fatalf("StarredCount after shuffle = %d, want 1", got)
	}

	// Same identifier still addresses the same card.
	c.ToggleStar(id)
	if got := c.Snapshot().StarredCount; got != 0 {
		t.Errorf("StarredCount after second toggle = %d, want 0", got)
	}
}

func TestController_ShuffleInsideFilterKeepsSnapshot(t *testing.T) {
	t.Parallel()

	c, _ := newSession(t, DefaultConfig(domain.ModeStandard), 4, nil)
	original := deckIDs(c)

	c.ToggleStar(original[1])
	c.ToggleStar(original[3])
	c.ApplyFilter(context.Background(), domain.FilterStarred)
	c.Shuffle()
	c.RestoreFullDeck()

	restored := deckIDs(c)
	for i := range original {
		if restored[i] != original[i] {
			t.Fatalf("restored[%d] = %s, want %s: shuffling the filtered view must not touch the snapshot", i, restored[i], original[i])
		}
	}
}

func TestController_ShuffleCancelsPendingAdvance(t *testing.T) {
	t.Parallel()

	c, _ := newSession(t, DefaultConfig(domain.ModeQuiz), 3, nil)

	c.MarkQuizAnswer(cardAt(c, 0).ID, domain.OutcomeCorrect)
	if got := c.timers.Pending(); got != 1 {
		t.Fatalf("Pending() = %d, want 1", got)
	}

	c.Shuffle()
	if got := c.timers.Pending(); got != 0 {
		t.Errorf("Pending() after shuffle = %d, want 0", got)
	}
}
