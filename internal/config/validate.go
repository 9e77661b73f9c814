package config

import (
	"fmt"
	"time"
)

// Store drivers.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Store.validate(); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	if c.Store.Driver == DriverPostgres && c.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required for the postgres driver")
	}
	if c.Store.Driver == DriverRedis && c.Redis.Addr == "" {
		return fmt.Errorf("redis.addr is required for the redis driver")
	}

	if err := c.Scheduler.validate(); err != nil {
		return fmt.Errorf("scheduler: %w", err)
	}
	if err := c.Stats.validate(); err != nil {
		return fmt.Errorf("stats: %w", err)
	}
	if err := c.Session.validate(); err != nil {
		return fmt.Errorf("session: %w", err)
	}

	return nil
}

func (s *StoreConfig) validate() error {
	switch s.Driver {
	case DriverMemory, DriverSQLite, DriverPostgres, DriverRedis:
	default:
		return fmt.Errorf("unknown driver %q", s.Driver)
	}
	if s.Namespace == "" {
		return fmt.Errorf("namespace must not be empty")
	}
	if s.Driver == DriverSQLite && s.SQLitePath == "" {
		return fmt.Errorf("sqlite_path is required for the sqlite driver")
	}
	return nil
}

func (s *SchedulerConfig) validate() error {
	if s.MinEase <= 0 {
		return fmt.Errorf("min_ease must be > 0 (got %v)", s.MinEase)
	}
	if s.InitialEase < s.MinEase {
		return fmt.Errorf("initial_ease must be >= min_ease (got %v < %v)", s.InitialEase, s.MinEase)
	}
	if s.FirstInterval < 1 {
		return fmt.Errorf("first_interval must be >= 1 (got %d)", s.FirstInterval)
	}
	if s.SecondInterval < s.FirstInterval {
		return fmt.Errorf("second_interval must be >= first_interval (got %d < %d)", s.SecondInterval, s.FirstInterval)
	}
	return nil
}

func (s *StatsConfig) validate() error {
	if s.ReviewMinReps < 1 {
		return fmt.Errorf("review_min_reps must be >= 1 (got %d)", s.ReviewMinReps)
	}
	if s.MasteredMinReps < s.ReviewMinReps {
		return fmt.Errorf("mastered_min_reps must be >= review_min_reps (got %d < %d)", s.MasteredMinReps, s.ReviewMinReps)
	}
	if s.DueSoonDays < 1 {
		return fmt.Errorf("due_soon_days must be >= 1 (got %d)", s.DueSoonDays)
	}
	if _, err := time.LoadLocation(s.Timezone); err != nil {
		return fmt.Errorf("timezone %q: %w", s.Timezone, err)
	}
	return nil
}

func (s *SessionConfig) validate() error {
	if s.DebounceWindow < 0 {
		return fmt.Errorf("debounce_window must not be negative (got %v)", s.DebounceWindow)
	}
	if s.QuizAdvanceDelay < 0 {
		return fmt.Errorf("quiz_advance_delay must not be negative (got %v)", s.QuizAdvanceDelay)
	}
	if s.FeedbackDelay < 0 {
		return fmt.Errorf("feedback_delay must not be negative (got %v)", s.FeedbackDelay)
	}
	if s.SwipeThreshold <= 0 {
		return fmt.Errorf("swipe_threshold must be > 0 (got %v)", s.SwipeThreshold)
	}
	if s.PointsPerCorrect < 0 {
		return fmt.Errorf("points_per_correct must not be negative (got %d)", s.PointsPerCorrect)
	}
	return nil
}
