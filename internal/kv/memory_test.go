package kv

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/TEJ42000/ALLMS-sub002/internal/domain"
)

func TestMemory_GetMissing(t *testing.T) {
	t.Parallel()

	s := NewMemory()
	_, err := s.Get(context.Background(), "absent")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestMemory_SetGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewMemory()

	if err := s.Set(ctx, "k", "v1"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if got, err := s.Get(ctx, "k"); err != nil || got != "v1" {
		t.Fatalf("Get() = %q, %v, want %q, nil", got, err, "v1")
	}

	// Set is an upsert.
	if err := s.Set(ctx, "k", "v2"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if got, _ := s.Get(ctx, "k"); got != "v2" {
		t.Fatalf("Get() after overwrite = %q, want %q", got, "v2")
	}
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
}

func TestMemory_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewMemory()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("k%d", i%4)
			_ = s.Set(ctx, key, "v")
			_, _ = s.Get(ctx, key)
		}(i)
	}
	wg.Wait()

	if s.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", s.Len())
	}
}
