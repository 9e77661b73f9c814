package session

import (
	"context"
	"sync"
	"time"

	"github.com/TEJ42000/ALLMS-sub002/internal/domain"
)

var _ tracker = &trackerMock{}

type trackerMock struct {
	RecordReviewFunc func(ctx context.Context, id domain.CardID, quality domain.Quality, now time.Time) (domain.ScheduleState, error)
	DueCardsFunc     func(ctx context.Context, ids []domain.CardID, now time.Time) []domain.CardID
	DegradedFunc     func() bool

	calls struct {
		RecordReview []struct {
			ID      domain.CardID
			Quality domain.Quality
			Now     time.Time
		}
		DueCards []struct {
			IDs []domain.CardID
			Now time.Time
		}
		Degraded []struct{}
	}
	lockRecordReview sync.RWMutex
	lockDueCards     sync.RWMutex
	lockDegraded     sync.RWMutex
}

func (mock *trackerMock) RecordReview(ctx context.Context, id domain.CardID, quality domain.Quality, now time.Time) (domain.ScheduleState, error) {
	if mock.RecordReviewFunc == nil {
		panic("trackerMock.RecordReviewFunc: method is nil but tracker.RecordReview was just called")
	}
	callInfo := struct {
		ID      domain.CardID
		Quality domain.Quality
		Now     time.Time
	}{ID: id, Quality: quality, Now: now}
	mock.lockRecordReview.Lock()
	mock.calls.RecordReview = append(mock.calls.RecordReview, callInfo)
	mock.lockRecordReview.Unlock()
	return mock.RecordReviewFunc(ctx, id, quality, now)
}

func (mock *trackerMock) RecordReviewCalls() []struct {
	ID      domain.CardID
	Quality domain.Quality
	Now     time.Time
} {
	mock.lockRecordReview.RLock()
	calls := mock.calls.RecordReview
	mock.lockRecordReview.RUnlock()
	return calls
}

func (mock *trackerMock) DueCards(ctx context.Context, ids []domain.CardID, now time.Time) []domain.CardID {
	if mock.DueCardsFunc == nil {
		panic("trackerMock.DueCardsFunc: method is nil but tracker.DueCards was just called")
	}
	callInfo := struct {
		IDs []domain.CardID
		Now time.Time
	}{IDs: ids, Now: now}
	mock.lockDueCards.Lock()
	mock.calls.DueCards = append(mock.calls.DueCards, callInfo)
	mock.lockDueCards.Unlock()
	return mock.DueCardsFunc(ctx, ids, now)
}

func (mock *trackerMock) DueCardsCalls() []struct {
	IDs []domain.CardID
	Now time.Time
} {
	mock.lockDueCards.RLock()
	calls := mock.calls.DueCards
	mock.lockDueCards.RUnlock()
	return calls
}

func (mock *trackerMock) Degraded() bool {
	if mock.DegradedFunc == nil {
		panic("trackerMock.DegradedFunc: method is nil but tracker.Degraded was just called")
	}
	mock.lockDegraded.Lock()
	mock.calls.Degraded = append(mock.calls.Degraded, struct{}{})
	mock.lockDegraded.Unlock()
	return mock.DegradedFunc()
}

func (mock *trackerMock) DegradedCalls() []struct{} {
	mock.lockDegraded.RLock()
	calls := mock.calls.Degraded
	mock.lockDegraded.RUnlock()
	return calls
}
