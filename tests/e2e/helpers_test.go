//go:build e2e

package e2e_test

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"github.com/TEJ42000/ALLMS-sub002/internal/adapter/sqlite"
	"github.com/TEJ42000/ALLMS-sub002/internal/domain"
	"github.com/TEJ42000/ALLMS-sub002/internal/service/progress"
	"github.com/TEJ42000/ALLMS-sub002/internal/service/progress/sm2"
	"github.com/TEJ42000/ALLMS-sub002/internal/service/session"
)

// sessionStart anchors the fake clock mid-day so due-today assertions
// have a fixed midnight on both sides.
var sessionStart = time.Date(2025, time.March, 10, 15, 4, 0, 0, time.UTC)

// testDeck returns n distinct flashcards.
func testDeck(n int) []domain.CardContent {
	contents := make([]domain.CardContent, n)
	for i := range contents {
		contents[i] = domain.CardContent{
			Prompt: fmt.Sprintf("term %d", i+1),
			Answer: fmt.Sprintf("definition %d", i+1),
		}
	}
	return contents
}

// fakeConfig returns a session config on a fake clock anchored at
// sessionStart, with a fixed shuffle seed and no navigation debounce.
func fakeConfig(mode domain.SessionMode) (session.Config, *clockwork.FakeClock) {
	clock := clockwork.NewFakeClockAt(sessionStart)
	cfg := session.DefaultConfig(mode)
	cfg.Clock = clock
	cfg.ShuffleSeed = 1
	cfg.DebounceWindow = 0
	return cfg, clock
}

// openSQLiteTracker builds a progress tracker over a sqlite file,
// simulating one application run. The returned cleanup releases the
// database so the file can be reopened.
func openSQLiteTracker(t *testing.T, path, namespace string) (*progress.Tracker, func()) {
	t.Helper()

	store, err := sqlite.New(path)
	require.NoError(t, err)

	tracker, err := progress.NewTracker(slog.Default(), store, namespace,
		sm2.DefaultParams(), domain.DefaultStatsThresholds())
	require.NoError(t, err)

	return tracker, func() { require.NoError(t, store.Close()) }
}

// startSession builds a controller and ties its shutdown to the test.
func startSession(t *testing.T, cfg session.Config, contents []domain.CardContent, tr *progress.Tracker) *session.Controller {
	t.Helper()

	var (
		ctrl *session.Controller
		err  error
	)
	if tr != nil {
		ctrl, err = session.New(slog.Default(), contents, tr, cfg)
	} else {
		ctrl, err = session.New(slog.Default(), contents, nil, cfg)
	}
	require.NoError(t, err)
	t.Cleanup(ctrl.Close)
	return ctrl
}

// waitFor polls until cond passes. Fake-clock timer callbacks run on
// their own goroutines, so state changes land asynchronously.
func waitFor(t *testing.T, desc string, cond func() bool) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", desc)
}

// rateCurrent flips and rates the card under the cursor, then drives
// the clock through the feedback pause. It returns the rated card.
func rateCurrent(t *testing.T, ctrl *session.Controller, clock *clockwork.FakeClock, q domain.Quality, delay time.Duration) domain.CardID {
	t.Helper()

	snap := ctrl.Snapshot()
	require.NotNil(t, snap.Card, "rate needs an active card")
	id := snap.Card.ID
	index := snap.Index

	ctrl.Flip()
	ctrl.RateCard(context.Background(), id, q)
	clock.Advance(delay)
	waitFor(t, "advance past the rated card", func() bool {
		s := ctrl.Snapshot()
		return s.Index > index || s.Phase.Terminal()
	})
	return id
}

// answerCurrent records a quiz outcome for the card under the cursor
// and drives the clock through the advance pause.
func answerCurrent(t *testing.T, ctrl *session.Controller, clock *clockwork.FakeClock, outcome domain.QuizOutcome, delay time.Duration) domain.CardID {
	t.Helper()

	snap := ctrl.Snapshot()
	require.NotNil(t, snap.Card, "answer needs an active card")
	id := snap.Card.ID
	index := snap.Index

	ctrl.MarkQuizAnswer(id, outcome)
	clock.Advance(delay)
	waitFor(t, "advance past the answered card", func() bool {
		s := ctrl.Snapshot()
		return s.Index > index || s.Phase.Terminal()
	})
	return id
}
