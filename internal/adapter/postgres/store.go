// Package postgres implements the key-value review-state store on a
// PostgreSQL connection pool, for portal deployments that already run
// one. Queries are built with squirrel; schema changes ship as goose
// migrations under migrations/.
package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/TEJ42000/ALLMS-sub002/internal/kv"
)

// Store persists review state in the review_state table.
type Store struct {
	pool *pgxpool.Pool
	sb   squirrel.StatementBuilderType
}

var _ kv.Store = (*Store)(nil)

// NewStore wraps an existing connection pool. The caller owns the
// pool's lifecycle.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{
		pool: pool,
		sb:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Get returns the value stored under key, or domain.ErrNotFound.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	query, args, err := s.sb.
		Select("value").
		From("review_state").
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("build get query: %w", err)
	}

	var value string
	if err := s.pool.QueryRow(ctx, query, args...).Scan(&value); err != nil {
		return "", mapError(err, "review_state", key)
	}
	return value, nil
}

// Set writes value under key, inserting or overwriting.
func (s *Store) Set(ctx context.Context, key, value string) error {
	query, args, err := s.sb.
		Insert("review_state").
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()").
		ToSql()
	if err != nil {
		return fmt.Errorf("build set query: %w", err)
	}

	if _, err := s.pool.Exec(ctx, query, args...); err != nil {
		return mapError(err, "review_state", key)
	}
	return nil
}
