// Package progress persists per-card schedule state for one deck
// namespace and answers due-card and statistics queries over it.
// State outlives any single review session; a write failure degrades
// the tracker to an in-memory overlay instead of interrupting reviews.
package progress

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/TEJ42000/ALLMS-sub002/internal/domain"
	"github.com/TEJ42000/ALLMS-sub002/internal/service/progress/sm2"
	"github.com/TEJ42000/ALLMS-sub002/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// ---------------------------------------------------------------------------
// Tracker
// ---------------------------------------------------------------------------

// Tracker is the card-state store for one namespace. Keys are
// "review:<namespace>:<cardID>", so independent decks sharing a
// backend never collide.
type Tracker struct {
	store      store
	log        *slog.Logger
	namespace  string
	params     sm2.Params
	thresholds domain.StatsThresholds

	mu       sync.Mutex
	degraded bool
	overlay  map[string]string   // masks the store after a write failure
	warned   map[string]struct{} // keys already reported as corrupt
}

// NewTracker creates a Tracker over the given store.
func NewTracker(
	log *slog.Logger,
	st store,
	namespace string,
	params sm2.Params,
	thresholds domain.StatsThresholds,
) (*Tracker, error) {
	if namespace == "" {
		return nil, domain.NewValidationError("namespace", "must not be empty")
	}
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scheduler params: %w", err)
	}
	if err := thresholds.Validate(); err != nil {
		return nil, fmt.Errorf("invalid stats thresholds: %w", err)
	}

	return &Tracker{
		store:      st,
		log:        log.With("service", "progress", "namespace", namespace),
		namespace:  namespace,
		params:     params,
		thresholds: thresholds,
		overlay:    make(map[string]string),
		warned:     make(map[string]struct{}),
	}, nil
}

// key returns the namespaced storage key for a card.
func (t *Tracker) key(id domain.CardID) string {
	return "review:" + t.namespace + ":" + string(id)
}

// Degraded reports whether a write failure has switched the tracker to
// its in-memory overlay. Presentation surfaces this as a non-blocking
// notice; reviews keep working either way.
func (t *Tracker) Degraded() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.degraded
}

// logAttrs appends the originating session id when the context carries
// one, so tracker log lines correlate with the session's.
func logAttrs(ctx context.Context, attrs ...any) []any {
	if id, ok := ctxutil.SessionIDFromCtx(ctx); ok {
		attrs = append(attrs, slog.String("session_id", id.String()))
	}
	return attrs
}
