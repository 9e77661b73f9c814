// Package redis implements the key-value review-state store on Redis,
// for portal deployments that share review state across instances.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/TEJ42000/ALLMS-sub002/internal/config"
	"github.com/TEJ42000/ALLMS-sub002/internal/domain"
	"github.com/TEJ42000/ALLMS-sub002/internal/kv"
)

// Store persists review state as plain Redis strings. Keys already
// carry the namespace prefix, so several decks can share a database.
type Store struct {
	rdb *goredis.Client
}

var _ kv.Store = (*Store)(nil)

// New connects to Redis and pings it for fail-fast validation.
func New(cfg config.RedisConfig) (*Store, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: cfg.DialTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &Store{rdb: rdb}, nil
}

// Get returns the value stored under key, or domain.ErrNotFound.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	value, err := s.rdb.Get(ctx, key).Result()
	if errors.Is(err, goredis.Nil) {
		return "", fmt.Errorf("key %s: %w", key, domain.ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("get %s: %w", key, err)
	}
	return value, nil
}

// Set writes value under key without expiry; review state outlives
// any single session.
func (s *Store) Set(ctx context.Context, key, value string) error {
	if err := s.rdb.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// Close releases the client's connections.
func (s *Store) Close() error {
	return s.rdb.Close()
}
