package progress

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/TEJ42000/ALLMS-sub002/internal/domain"
)

// State returns the stored schedule state for a card, or nil when the
// card has never been reviewed. Corrupt or unreadable data is treated
// as absent with a warning, never as a failure; only context
// cancellation propagates as an error.
func (t *Tracker) State(ctx context.Context, id domain.CardID) (*domain.ScheduleState, error) {
	return t.loadState(ctx, id)
}

// Reset removes a card's schedule state. The store contract has no
// delete, so reset writes the empty sentinel, which reads as absent.
func (t *Tracker) Reset(ctx context.Context, id domain.CardID) error {
	if id == "" {
		return domain.NewValidationError("card_id", "must not be empty")
	}
	t.log.InfoContext(ctx, "resetting card state",
		logAttrs(ctx, slog.String("card_id", string(id)))...)
	return t.persist(ctx, t.key(id), "")
}

func (t *Tracker) loadState(ctx context.Context, id domain.CardID) (*domain.ScheduleState, error) {
	key := t.key(id)

	t.mu.Lock()
	raw, masked := t.overlay[key]
	t.mu.Unlock()

	if !masked {
		var err error
		raw, err = t.store.Get(ctx, key)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return nil, nil
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return nil, err
		case err != nil:
			// An unreadable store behaves like an empty one.
			t.log.WarnContext(ctx, "storage read failed, treating state as absent",
				logAttrs(ctx,
					slog.String("card_id", string(id)),
					slog.String("error", err.Error()))...)
			return nil, nil
		}
	}

	if raw == "" {
		return nil, nil
	}

	var state domain.ScheduleState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		t.warnCorruptOnce(ctx, key, id, err)
		return nil, nil
	}
	return &state, nil
}

// persist writes through to the store until the first failure, then
// keeps all further state in the overlay for the tracker's lifetime.
// Overlay entries mask the store, so a degraded reset still hides
// older durable state.
func (t *Tracker) persist(ctx context.Context, key, value string) error {
	t.mu.Lock()
	degraded := t.degraded
	t.mu.Unlock()

	if !degraded {
		err := t.store.Set(ctx, key, value)
		if err == nil {
			return nil
		}
		t.log.WarnContext(ctx, "storage write failed, continuing in memory",
			logAttrs(ctx,
				slog.String("key", key),
				slog.String("error", err.Error()))...)
	}

	t.mu.Lock()
	t.degraded = true
	t.overlay[key] = value
	t.mu.Unlock()
	return nil
}

func (t *Tracker) warnCorruptOnce(ctx context.Context, key string, id domain.CardID, err error) {
	t.mu.Lock()
	_, seen := t.warned[key]
	if !seen {
		t.warned[key] = struct{}{}
	}
	t.mu.Unlock()

	if !seen {
		t.log.WarnContext(ctx, "corrupt schedule state, treating as absent",
			logAttrs(ctx,
				slog.String("card_id", string(id)),
				slog.String("error", err.Error()))...)
	}
}

func encodeState(state domain.ScheduleState) (string, error) {
	raw, err := json.Marshal(state)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
