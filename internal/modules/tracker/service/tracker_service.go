package service

import (
	"context"
	"fmt"
	"time"

	"tally/internal/modules/tracker/domain"
	trackerout "tally/internal/modules/tracker/port/out"
	"tally/internal/platform/clock"
	apperrors "tally/internal/platform/errors"
)

// TrackerService owns the single optional ActiveSession. All operations
// are synchronous; a finalize appends to the log before the in-memory
// state is cleared, so a storage failure leaves the session intact.
type TrackerService struct {
	clock  clock.Clock
	prices trackerout.PriceSource
	log    trackerout.SessionLog
	active *domain.ActiveSession
}

func NewTrackerService(clock clock.Clock, prices trackerout.PriceSource, log trackerout.SessionLog) *TrackerService {
	return &TrackerService{clock: clock, prices: prices, log: log}
}

func (s *TrackerService) Switch(ctx context.Context, task string) (*domain.ActiveSession, error) {
	if task == "" {
		return nil, fmt.Errorf("task name is required")
	}
	if _, ok, err := s.prices.PriceOf(ctx, task); err != nil {
		return nil, err
	} else if !ok {
		return nil, apperrors.ErrTaskNotFound
	}

	wasRunning, err := s.finalize(ctx, 1)
	if err != nil {
		return nil, err
	}
	return s.activate(task, wasRunning), nil
}

func (s *TrackerService) Start(_ context.Context) (*domain.ActiveSession, error) {
	if s.active == nil {
		return nil, apperrors.ErrNoActiveTask
	}
	if err := s.active.Resume(s.clock.Now()); err != nil {
		return nil, err
	}
	return s.active, nil
}

func (s *TrackerService) Pause(_ context.Context) (*domain.ActiveSession, error) {
	if s.active == nil {
		return nil, apperrors.ErrNoActiveTask
	}
	if err := s.active.Pause(s.clock.Now()); err != nil {
		return nil, err
	}
	return s.active, nil
}

func (s *TrackerService) Increment(ctx context.Context, n int) (*domain.ActiveSession, error) {
	if n < 1 {
		return nil, fmt.Errorf("count must be >= 1, got %d", n)
	}
	if s.active == nil {
		return nil, apperrors.ErrNoActiveTask
	}
	task := s.active.Task
	wasRunning, err := s.finalize(ctx, n)
	if err != nil {
		return nil, err
	}
	return s.activate(task, wasRunning), nil
}

func (s *TrackerService) Finish(ctx context.Context) error {
	_, err := s.finalize(ctx, 1)
	return err
}

// Active exposes the current session for pure reads; nil when none.
func (s *TrackerService) Active() *domain.ActiveSession {
	return s.active
}

func (s *TrackerService) Now() time.Time {
	return s.clock.Now()
}

// finalize durably records the active session with the given count and
// clears it, reporting whether it was running so the caller can preserve
// the flag. With no active session it is a pure no-op. The append must
// succeed before the state reset; on failure the session stays active.
func (s *TrackerService) finalize(ctx context.Context, count int) (wasRunning bool, err error) {
	if s.active == nil {
		return false, nil
	}
	now := s.clock.Now()

	// Price is snapshotted at the finalize instant. A task deleted
	// mid-session records price 0 rather than failing the finalize.
	price, ok, err := s.prices.PriceOf(ctx, s.active.Task)
	if err != nil {
		return false, err
	}
	if !ok {
		price = 0
	}

	record := s.active.Finalize(now, count, price)
	if _, err := s.log.Append(ctx, record); err != nil {
		return false, fmt.Errorf("append session: %w", err)
	}

	wasRunning = s.active.Running
	s.active = nil
	return wasRunning, nil
}

func (s *TrackerService) activate(task string, resume bool) *domain.ActiveSession {
	now := s.clock.Now()
	s.active = domain.NewActiveSession(task, now)
	if resume {
		_ = s.active.Resume(now)
	}
	return s.active
}
