package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/TEJ42000/ALLMS-sub002/internal/adapter/postgres"
	"github.com/TEJ42000/ALLMS-sub002/internal/adapter/redis"
	"github.com/TEJ42000/ALLMS-sub002/internal/adapter/sqlite"
	"github.com/TEJ42000/ALLMS-sub002/internal/config"
	"github.com/TEJ42000/ALLMS-sub002/internal/domain"
	"github.com/TEJ42000/ALLMS-sub002/internal/kv"
	"github.com/TEJ42000/ALLMS-sub002/internal/service/progress"
	"github.com/TEJ42000/ALLMS-sub002/internal/service/progress/sm2"
	"github.com/TEJ42000/ALLMS-sub002/internal/service/session"
)

// NewStore builds the kv.Store selected by cfg.Store.Driver, along with
// a cleanup function that releases its resources. The cleanup is a no-op
// for the in-memory driver.
func NewStore(ctx context.Context, log *slog.Logger, cfg *config.Config) (kv.Store, func(), error) {
	var (
		st      kv.Store
		cleanup func()
	)

	switch cfg.Store.Driver {
	case config.DriverMemory:
		st = kv.NewMemory()
		cleanup = func() {}

	case config.DriverSQLite:
		s, err := sqlite.New(cfg.Store.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("sqlite store: %w", err)
		}
		st = s
		cleanup = func() { _ = s.Close() }

	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("postgres store: %w", err)
		}
		st = postgres.NewStore(pool)
		cleanup = pool.Close

	case config.DriverRedis:
		s, err := redis.New(cfg.Redis)
		if err != nil {
			return nil, nil, fmt.Errorf("redis store: %w", err)
		}
		st = s
		cleanup = func() { _ = s.Close() }

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}

	log.InfoContext(ctx, "storage ready",
		slog.String("driver", cfg.Store.Driver),
		slog.String("namespace", cfg.Store.Namespace),
	)
	return st, cleanup, nil
}

// NewTracker wires a progress tracker from configuration: the SM-2
// parameters from cfg.Scheduler, the statistics bucket thresholds from
// cfg.Stats, and the course namespace from cfg.Store.
func NewTracker(log *slog.Logger, st kv.Store, cfg *config.Config) (*progress.Tracker, error) {
	params := sm2.Params{
		InitialEase:    cfg.Scheduler.InitialEase,
		MinEase:        cfg.Scheduler.MinEase,
		FirstInterval:  cfg.Scheduler.FirstInterval,
		SecondInterval: cfg.Scheduler.SecondInterval,
	}
	thresholds := domain.StatsThresholds{
		ReviewMinReps:   cfg.Stats.ReviewMinReps,
		MasteredMinReps: cfg.Stats.MasteredMinReps,
		DueSoonDays:     cfg.Stats.DueSoonDays,
	}
	return progress.NewTracker(log, st, cfg.Store.Namespace, params, thresholds)
}

// SessionConfig overlays the session tunables from configuration onto
// the controller defaults for the given mode.
func SessionConfig(mode domain.SessionMode, cfg *config.Config) session.Config {
	sc := session.DefaultConfig(mode)
	sc.DebounceWindow = cfg.Session.DebounceWindow
	sc.QuizAdvanceDelay = cfg.Session.QuizAdvanceDelay
	sc.FeedbackDelay = cfg.Session.FeedbackDelay
	sc.SwipeThreshold = cfg.Session.SwipeThreshold
	sc.PointsPerCorrect = cfg.Session.PointsPerCorrect
	return sc
}
