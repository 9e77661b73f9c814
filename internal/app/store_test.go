package app

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/TEJ42000/ALLMS-sub002/internal/config"
	"github.com/TEJ42000/ALLMS-sub002/internal/domain"
)

// testConfig mirrors the loader defaults without going through
// CONFIG_PATH.
func testConfig() *config.Config {
	return &config.Config{
		Log: config.LogConfig{Level: "info", Format: "json"},
		Store: config.StoreConfig{
			Driver:     config.DriverMemory,
			Namespace:  "default",
			SQLitePath: "study.db",
		},
		Scheduler: config.SchedulerConfig{
			InitialEase:    2.5,
			MinEase:        1.3,
			FirstInterval:  1,
			SecondInterval: 6,
		},
		Stats: config.StatsConfig{
			ReviewMinReps:   3,
			MasteredMinReps: 5,
			DueSoonDays:     7,
			Timezone:        "UTC",
		},
		Session: config.SessionConfig{
			DebounceWindow:   300 * time.Millisecond,
			QuizAdvanceDelay: time.Second,
			FeedbackDelay:    600 * time.Millisecond,
			SwipeThreshold:   50,
			PointsPerCorrect: 10,
		},
	}
}

func TestNewStore_Memory(t *testing.T) {
	st, cleanup, err := NewStore(context.Background(), slog.Default(), testConfig())
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	defer cleanup()

	ctx := context.Background()
	if err := st.Set(ctx, "k", "v"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	got, err := st.Get(ctx, "k")
	if err != nil || got != "v" {
		t.Errorf("Get() = %q, %v, want %q, nil", got, err, "v")
	}
}

func TestNewStore_SQLite(t *testing.T) {
	cfg := testConfig()
	cfg.Store.Driver = config.DriverSQLite
	cfg.Store.SQLitePath = filepath.Join(t.TempDir(), "study.db")

	st, cleanup, err := NewStore(context.Background(), slog.Default(), cfg)
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	defer cleanup()

	ctx := context.Background()
	if err := st.Set(ctx, "k", "v"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	got, err := st.Get(ctx, "k")
	if err != nil || got != "v" {
		t.Errorf("Get() = %q, %v, want %q, nil", got, err, "v")
	}
}

func TestNewStore_UnknownDriver(t *testing.T) {
	cfg := testConfig()
	cfg.Store.Driver = "etcd"

	if _, _, err := NewStore(context.Background(), slog.Default(), cfg); err == nil {
		t.Fatal("NewStore() expected error for unknown driver")
	}
}

func TestNewTracker_FromConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Store.Namespace = "biology-101"

	st, cleanup, err := NewStore(context.Background(), slog.Default(), cfg)
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	defer cleanup()

	tr, err := NewTracker(slog.Default(), st, cfg)
	if err != nil {
		t.Fatalf("NewTracker() error = %v", err)
	}

	// The tracker must be usable end to end: record one review and
	// check the schedule it hands back.
	ctx := context.Background()
	id := domain.NewCardID("mitochondria", "powerhouse of the cell")
	state, err := tr.RecordReview(ctx, id, domain.QualityPerfect, time.Now())
	if err != nil {
		t.Fatalf("RecordReview() error = %v", err)
	}
	if state.IntervalDays != cfg.Scheduler.FirstInterval {
		t.Errorf("first interval = %d, want %d", state.IntervalDays, cfg.Scheduler.FirstInterval)
	}
}

func TestNewTracker_InvalidParams(t *testing.T) {
	cfg := testConfig()
	cfg.Scheduler.MinEase = 0.5 // below the SM-2 floor

	st, cleanup, err := NewStore(context.Background(), slog.Default(), cfg)
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	defer cleanup()

	if _, err := NewTracker(slog.Default(), st, cfg); err == nil {
		t.Fatal("NewTracker() expected error for ease below the floor")
	}
}

func TestSessionConfig_Overlay(t *testing.T) {
	cfg := testConfig()
	cfg.Session.DebounceWindow = 150 * time.Millisecond
	cfg.Session.SwipeThreshold = 80

	sc := SessionConfig(domain.ModeQuiz, cfg)

	if sc.Mode != domain.ModeQuiz {
		t.Errorf("Mode = %v, want %v", sc.Mode, domain.ModeQuiz)
	}
	if sc.DebounceWindow != 150*time.Millisecond {
		t.Errorf("DebounceWindow = %v, want 150ms", sc.DebounceWindow)
	}
	if sc.SwipeThreshold != 80 {
		t.Errorf("SwipeThreshold = %v, want 80", sc.SwipeThreshold)
	}
	if sc.QuizAdvanceDelay != time.Second {
		t.Errorf("QuizAdvanceDelay = %v, want 1s", sc.QuizAdvanceDelay)
	}
}
