// Package sm2 implements the SM-2 spaced repetition algorithm.
// Review is a pure function of (params, prior state, quality, now):
// no clock reads, no storage, no logging.
package sm2

import (
	"math"
	"time"

	"github.com/TEJ42000/ALLMS-sub002/internal/domain"
)

// Review computes the schedule state after one recall rating.
//
// A nil prior means the card has never been reviewed and starts from
// {Ease: InitialEase, IntervalDays: 0, Repetitions: 0}. Quality below
// 3 resets the repetition streak and makes the card due immediately;
// the ease update applies either way. Out-of-range quality is clamped
// into [0,5], never rejected: callers validate input, the engine only
// guarantees it cannot produce a broken state.
func Review(p Params, prior *domain.ScheduleState, quality domain.Quality, now time.Time) domain.ScheduleState {
	q := quality.Clamp()

	state := domain.ScheduleState{Ease: p.InitialEase}
	priorInterval := 0
	if prior != nil {
		state = *prior
		priorInterval = prior.IntervalDays
	}

	state.Ease = nextEase(state.Ease, q, p.MinEase)

	if !q.Recalled() {
		state.Repetitions = 0
		state.IntervalDays = 0
	} else {
		state.Repetitions++
		switch state.Repetitions {
		case 1:
			state.IntervalDays = p.FirstInterval
		case 2:
			state.IntervalDays = p.SecondInterval
		default:
			state.IntervalDays = int(math.Round(float64(priorInterval) * state.Ease))
		}
	}

	reviewed := now
	state.LastReviewed = &reviewed
	// AddDate instead of Add(24h*days) so the interval survives DST.
	state.NextReview = now.AddDate(0, 0, state.IntervalDays)
	return state
}

// nextEase applies the SM-2 easiness update:
//
//	EF' = EF + (0.1 - (5-q)*(0.08 + (5-q)*0.02))
//
// clamped to the configured floor.
func nextEase(ease float64, q domain.Quality, minEase float64) float64 {
	d := float64(domain.QualityPerfect - q)
	ease += 0.1 - d*(0.08+d*0.02)
	return math.Max(minEase, ease)
}
