package sm2

import "fmt"

// EaseFloor is the lowest easiness factor the algorithm permits.
// Without it, intervals for weak cards collapse toward zero.
const EaseFloor = 1.3

// Params holds the tunable constants of the scheduler.
type Params struct {
	// InitialEase is the easiness factor assigned before any review.
	InitialEase float64
	// MinEase is the clamp applied after every ease update.
	MinEase float64
	// FirstInterval and SecondInterval are the fixed intervals (days)
	// for the first two successful repetitions.
	FirstInterval  int
	SecondInterval int
}

// DefaultParams returns the canonical SM-2 constants.
func DefaultParams() Params {
	return Params{
		InitialEase:    2.5,
		MinEase:        EaseFloor,
		FirstInterval:  1,
		SecondInterval: 6,
	}
}

// Validate checks that the parameters keep the algorithm's guarantees.
func (p Params) Validate() error {
	if p.MinEase < EaseFloor {
		return fmt.Errorf("min ease %.2f is below the %.1f floor", p.MinEase, EaseFloor)
	}
	if p.InitialEase < p.MinEase {
		return fmt.Errorf("initial ease %.2f is below min ease %.2f", p.InitialEase, p.MinEase)
	}
	if p.FirstInterval < 1 {
		return fmt.Errorf("first interval must be at least 1 day, got %d", p.FirstInterval)
	}
	if p.SecondInterval < p.FirstInterval {
		return fmt.Errorf("second interval %d must not be shorter than the first %d", p.SecondInterval, p.FirstInterval)
	}
	return nil
}
