package navguard

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

// waitFired waits for the callback signal; fake-clock callbacks run on
// their own goroutine, so tests synchronize through a channel.
func waitFired(t *testing.T, fired <-chan struct{}) {
	t.Helper()
	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("callback did not run")
	}
}

func assertNotFired(t *testing.T, fired <-chan struct{}) {
	t.Helper()
	select {
	case <-fired:
		t.Fatal("callback ran, want cancelled")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestTimers_FiresAfterDelay(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClock()
	timers := NewTimers(clock)
	fired := make(chan struct{}, 1)

	timers.Schedule(time.Second, func() { fired <- struct{}{} })
	if timers.Pending() != 1 {
		t.Fatalf("Pending() = %d, want 1", timers.Pending())
	}

	clock.Advance(999 * time.Millisecond)
	assertNotFired(t, fired)

	clock.Advance(1 * time.Millisecond)
	waitFired(t, fired)

	if timers.Pending() != 0 {
		t.Errorf("Pending() after fire = %d, want 0", timers.Pending())
	}
}

func TestTimers_CancelPreventsFire(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClock()
	timers := NewTimers(clock)
	fired := make(chan struct{}, 1)

	cancel := timers.Schedule(time.Second, func() { fired <- struct{}{} })
	cancel()

	if timers.Pending() != 0 {
		t.Fatalf("Pending() after cancel = %d, want 0", timers.Pending())
	}

	clock.Advance(2 * time.Second)
	assertNotFired(t, fired)
}

func TestTimers_CancelIsIdempotent(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClock()
	timers := NewTimers(clock)
	fired := make(chan struct{}, 1)

	cancel := timers.Schedule(time.Second, func() { fired <- struct{}{} })
	cancel()
	cancel()

	clock.Advance(time.Second)
	assertNotFired(t, fired)

	// Cancelling after an uncancelled sibling fired is also a no-op.
	timers.Schedule(time.Second, func() { fired <- struct{}{} })
	clock.Advance(time.Second)
	waitFired(t, fired)
	cancel()
}

func TestTimers_CancelAll(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClock()
	timers := NewTimers(clock)
	fired := make(chan struct{}, 3)

	for i := 0; i < 3; i++ {
		timers.Schedule(time.Second, func() { fired <- struct{}{} })
	}
	if timers.Pending() != 3 {
		t.Fatalf("Pending() = %d, want 3", timers.Pending())
	}

	timers.CancelAll()
	if timers.Pending() != 0 {
		t.Fatalf("Pending() after CancelAll = %d, want 0", timers.Pending())
	}

	clock.Advance(2 * time.Second)
	assertNotFired(t, fired)
}

func TestTimers_IndependentSchedules(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClock()
	timers := NewTimers(clock)
	firstFired := make(chan struct{}, 1)
	secondFired := make(chan struct{}, 1)

	cancelFirst := timers.Schedule(time.Second, func() { firstFired <- struct{}{} })
	timers.Schedule(2*time.Second, func() { secondFired <- struct{}{} })

	cancelFirst()
	clock.Advance(2 * time.Second)

	assertNotFired(t, firstFired)
	waitFired(t, secondFired)
}
