package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Log       LogConfig       `yaml:"log"`
	Store     StoreConfig     `yaml:"store"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Stats     StatsConfig     `yaml:"stats"`
	Session   SessionConfig   `yaml:"session"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// StoreConfig selects the review-state store backend and the
// namespace that keeps decks from colliding in a shared store.
type StoreConfig struct {
	Driver     string `yaml:"driver"      env:"STORE_DRIVER"      env-default:"memory"`
	Namespace  string `yaml:"namespace"   env:"STORE_NAMESPACE"   env-default:"default"`
	SQLitePath string `yaml:"sqlite_path" env:"STORE_SQLITE_PATH" env-default:"study.db"`
}

// DatabaseConfig holds PostgreSQL connection settings, used when the
// store driver is "postgres".
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// RedisConfig holds Redis connection settings, used when the store
// driver is "redis".
type RedisConfig struct {
	Addr        string        `yaml:"addr"         env:"REDIS_ADDR"`
	Password    string        `yaml:"password"     env:"REDIS_PASSWORD"`
	DB          int           `yaml:"db"           env:"REDIS_DB"           env-default:"0"`
	DialTimeout time.Duration `yaml:"dial_timeout" env:"REDIS_DIAL_TIMEOUT" env-default:"5s"`
}

// SchedulerConfig holds the spaced-repetition scheduling parameters.
type SchedulerConfig struct {
	InitialEase    float64 `yaml:"initial_ease"    env:"SCHEDULER_INITIAL_EASE"    env-default:"2.5"`
	MinEase        float64 `yaml:"min_ease"        env:"SCHEDULER_MIN_EASE"        env-default:"1.3"`
	FirstInterval  int     `yaml:"first_interval"  env:"SCHEDULER_FIRST_INTERVAL"  env-default:"1"`
	SecondInterval int     `yaml:"second_interval" env:"SCHEDULER_SECOND_INTERVAL" env-default:"6"`
}

// StatsConfig holds the progress-bucket thresholds and the timezone
// day boundaries are computed in.
type StatsConfig struct {
	ReviewMinReps   int    `yaml:"review_min_reps"   env:"STATS_REVIEW_MIN_REPS"   env-default:"3"`
	MasteredMinReps int    `yaml:"mastered_min_reps" env:"STATS_MASTERED_MIN_REPS" env-default:"5"`
	DueSoonDays     int    `yaml:"due_soon_days"     env:"STATS_DUE_SOON_DAYS"     env-default:"7"`
	Timezone        string `yaml:"timezone"          env:"STATS_TIMEZONE"          env-default:"UTC"`
}

// SessionConfig holds review-session pacing settings.
type SessionConfig struct {
	DebounceWindow   time.Duration `yaml:"debounce_window"    env:"SESSION_DEBOUNCE_WINDOW"    env-default:"300ms"`
	QuizAdvanceDelay time.Duration `yaml:"quiz_advance_delay" env:"SESSION_QUIZ_ADVANCE_DELAY" env-default:"1s"`
	FeedbackDelay    time.Duration `yaml:"feedback_delay"     env:"SESSION_FEEDBACK_DELAY"     env-default:"600ms"`
	SwipeThreshold   float64       `yaml:"swipe_threshold"    env:"SESSION_SWIPE_THRESHOLD"    env-default:"50"`
	PointsPerCorrect int           `yaml:"points_per_correct" env:"SESSION_POINTS_PER_CORRECT" env-default:"10"`
}
