// Package session drives one interactive review pass over a deck:
// navigation and flip state, tracking sets, filtered sub-views with
// restore, quiz scoring, and spaced-repetition rating. A single mutex
// serializes every operation; scheduled timers re-enter through the
// same mutex and are invalidated by cancellation plus a generation
// check, so a stale callback can never touch a session that has moved
// on or been torn down.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/TEJ42000/ALLMS-sub002/internal/domain"
	"github.com/TEJ42000/ALLMS-sub002/pkg/ctxutil"
	"github.com/TEJ42000/ALLMS-sub002/pkg/navguard"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type tracker interface {
	RecordReview(ctx context.Context, id domain.CardID, quality domain.Quality, now time.Time) (domain.ScheduleState, error)
	DueCards(ctx context.Context, ids []domain.CardID, now time.Time) []domain.CardID
	Degraded() bool
}

// ---------------------------------------------------------------------------
// Config
// ---------------------------------------------------------------------------

// Config carries the tunable behavior of a session. The zero value is
// not usable directly; DefaultConfig supplies the standard settings.
type Config struct {
	Mode domain.SessionMode

	// DebounceWindow gates manual navigation; requests inside the
	// window are dropped, never queued.
	DebounceWindow time.Duration
	// QuizAdvanceDelay is the pause between answering a quiz card and
	// the automatic advance.
	QuizAdvanceDelay time.Duration
	// FeedbackDelay is the pause after rating a card in
	// spaced-repetition mode.
	FeedbackDelay time.Duration
	// SwipeThreshold is the minimum horizontal displacement for a
	// swipe gesture to count as navigation.
	SwipeThreshold float64
	// PointsPerCorrect is the reward for each correct quiz answer.
	PointsPerCorrect int
	// ShuffleSeed fixes the shuffle permutation; zero seeds from the
	// clock.
	ShuffleSeed int64

	// Clock defaults to the real clock. Tests inject a fake.
	Clock clockwork.Clock
	// OnSnapshot, when set, receives a read-only snapshot after every
	// state transition. It is called outside the session lock.
	OnSnapshot func(Snapshot)
}

// DefaultConfig returns the standard session settings.
func DefaultConfig(mode domain.SessionMode) Config {
	return Config{
		Mode:             mode,
		DebounceWindow:   300 * time.Millisecond,
		QuizAdvanceDelay: time.Second,
		FeedbackDelay:    600 * time.Millisecond,
		SwipeThreshold:   50,
		PointsPerCorrect: 10,
	}
}

func (c Config) validate() error {
	if !c.Mode.IsValid() {
		return domain.NewValidationError("mode", fmt.Sprintf("unknown session mode %q", c.Mode))
	}
	if c.DebounceWindow < 0 {
		return domain.NewValidationError("debounce_window", "must not be negative")
	}
	if c.QuizAdvanceDelay < 0 {
		return domain.NewValidationError("quiz_advance_delay", "must not be negative")
	}
	if c.FeedbackDelay < 0 {
		return domain.NewValidationError("feedback_delay", "must not be negative")
	}
	if c.SwipeThreshold <= 0 {
		return domain.NewValidationError("swipe_threshold", "must be positive")
	}
	if c.PointsPerCorrect < 0 {
		return domain.NewValidationError("points_per_correct", "must not be negative")
	}
	return nil
}

// ---------------------------------------------------------------------------
// Controller
// ---------------------------------------------------------------------------

// Controller is the state machine of one review session.
type Controller struct {
	log      *slog.Logger
	id       uuid.UUID
	cfg      Config
	clock    clockwork.Clock
	tracker  tracker // nil outside spaced-repetition mode
	guard    *navguard.Guard
	timers   *navguard.Timers
	rand     *rand.Rand
	listener func(Snapshot)

	mu        sync.Mutex
	initial   []domain.Card // construction order, for Restart
	deck      []domain.Card // active view
	fullDeck  []domain.Card // pre-filter order; nil while unfiltered
	index     int
	phase     domain.SessionPhase
	filter    domain.ViewFilter
	reviewed  map[domain.CardID]struct{}
	known     map[domain.CardID]struct{}
	starred   map[domain.CardID]struct{}
	rated     map[domain.CardID]struct{}
	outcomes  map[domain.CardID]domain.QuizOutcome
	score     int
	points    int
	dueCount  int
	startedAt time.Time
	result    *domain.SessionResult
	gen       uint64 // bumped when pending timers become stale
}

// New validates the deck and builds a session over it. Invalid cards
// are dropped with a warning; a deck with no valid cards at all is the
// fatal construction error domain.ErrEmptyDeck. Spaced-repetition
// sessions additionally need a tracker.
func New(log *slog.Logger, contents []domain.CardContent, tr tracker, cfg Config) (*Controller, error) {
	if cfg.Mode == "" {
		cfg.Mode = domain.ModeStandard
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.Mode == domain.ModeSpacedRepetition && tr == nil {
		return nil, domain.NewValidationError("tracker", "required in spaced-repetition mode")
	}
	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}

	cards, dropped, err := domain.NewDeck(contents)
	if err != nil {
		return nil, fmt.Errorf("build deck: %w", err)
	}

	id := uuid.New()
	log = log.With("service", "session",
		slog.String("session_id", id.String()),
		slog.String("mode", cfg.Mode.String()))

	for _, d := range dropped {
		log.Warn("dropping invalid card",
			slog.Int("index", d.Index),
			slog.String("reason", d.Reason))
	}

	seed := cfg.ShuffleSeed
	if seed == 0 {
		seed = cfg.Clock.Now().UnixNano()
	}

	c := &Controller{
		log:      log,
		id:       id,
		cfg:      cfg,
		clock:    cfg.Clock,
		tracker:  tr,
		guard:    navguard.NewGuard(cfg.Clock, cfg.DebounceWindow),
		timers:   navguard.NewTimers(cfg.Clock),
		rand:     rand.New(rand.NewSource(seed)),
		listener: cfg.OnSnapshot,

		initial:   cards,
		deck:      append([]domain.Card(nil), cards...),
		phase:     domain.PhaseBrowsing,
		filter:    domain.FilterNone,
		reviewed:  make(map[domain.CardID]struct{}),
		known:     make(map[domain.CardID]struct{}),
		starred:   make(map[domain.CardID]struct{}),
		rated:     make(map[domain.CardID]struct{}),
		outcomes:  make(map[domain.CardID]domain.QuizOutcome),
		startedAt: cfg.Clock.Now(),
	}

	c.mu.Lock()
	c.refreshDueLocked(context.Background(), c.startedAt)
	snap := c.snapshotLocked()
	c.mu.Unlock()

	log.Info("session started",
		slog.Int("cards", len(cards)),
		slog.Int("dropped", len(dropped)))

	c.notify(snap)
	return c, nil
}

// ID returns the session's correlation identifier.
func (c *Controller) ID() uuid.UUID { return c.id }

// Restart rebuilds the initial state over the full deck in its
// construction order. Tracking sets, quiz state, filters, and pending
// timers are all discarded. Restarting works from the results screen,
// but not after Close.
func (c *Controller) Restart() {
	c.mu.Lock()
	if c.phase == domain.PhaseClosed {
		c.noopLocked("restart", "session is closed")
		c.mu.Unlock()
		return
	}
	c.cancelTimersLocked()

	c.deck = append([]domain.Card(nil), c.initial...)
	c.fullDeck = nil
	c.index = 0
	c.phase = domain.PhaseBrowsing
	c.filter = domain.FilterNone
	c.reviewed = make(map[domain.CardID]struct{})
	c.known = make(map[domain.CardID]struct{})
	c.starred = make(map[domain.CardID]struct{})
	c.rated = make(map[domain.CardID]struct{})
	c.outcomes = make(map[domain.CardID]domain.QuizOutcome)
	c.score = 0
	c.points = 0
	c.result = nil
	c.startedAt = c.clock.Now()
	c.refreshDueLocked(context.Background(), c.startedAt)

	c.log.Info("session restarted")
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)
}

// Close tears the session down: every pending timer is cancelled and
// all further operations become logged no-ops. Close never emits a
// result; an abandoned session has none.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.phase == domain.PhaseClosed {
		c.mu.Unlock()
		return
	}
	c.cancelTimersLocked()
	c.phase = domain.PhaseClosed
	c.log.Info("session closed")
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)
}

// ---------------------------------------------------------------------------
// Internals
// ---------------------------------------------------------------------------

// cancelTimersLocked drops all pending callbacks and invalidates any
// that already fired but have not entered the lock yet.
func (c *Controller) cancelTimersLocked() {
	c.gen++
	c.timers.CancelAll()
}

// noopLocked records an invalid transition. These indicate a caller or
// UI out of sync with the session, not a data problem, so they are
// warnings and the state stays untouched.
func (c *Controller) noopLocked(op, reason string) {
	c.log.Warn("ignoring invalid transition",
		slog.String("op", op),
		slog.String("reason", reason),
		slog.String("phase", c.phase.String()))
}

func (c *Controller) notify(snap Snapshot) {
	if c.listener != nil {
		c.listener(snap)
	}
}

// currentCardLocked returns the card under the cursor.
func (c *Controller) currentCardLocked() domain.Card {
	return c.deck[c.index]
}

// inDeckLocked reports whether id belongs to the session's deck,
// either the active view or the snapshot behind a filter.
func (c *Controller) inDeckLocked(id domain.CardID) bool {
	for _, card := range c.deck {
		if card.ID == id {
			return true
		}
	}
	for _, card := range c.fullDeck {
		if card.ID == id {
			return true
		}
	}
	return false
}

// refreshDueLocked recomputes the cached due count. Snapshots read the
// cache so that timer callbacks never touch the clock.
func (c *Controller) refreshDueLocked(ctx context.Context, now time.Time) {
	if c.tracker == nil {
		return
	}
	ids := make([]domain.CardID, len(c.deck))
	for i, card := range c.deck {
		ids[i] = card.ID
	}
	ctx = ctxutil.WithSessionID(ctx, c.id)
	c.dueCount = len(c.tracker.DueCards(ctx, ids, now))
}
