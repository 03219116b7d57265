package domain

import (
	"time"

	apperrors "tally/internal/platform/errors"
)

// ActiveSession is the single in-memory work period. At most one exists
// system-wide; the tracker service owns it exclusively and all mutation
// goes through its transition methods.
type ActiveSession struct {
	Task        string
	StartedAt   time.Time     // UTC
	Accumulated time.Duration // accrued while running, up to the last pause
	Running     bool
	ResumedAt   time.Time // instant of the last resume, meaningful only while Running
}

// NewActiveSession creates a paused session for the task.
func NewActiveSession(task string, now time.Time) *ActiveSession {
	return &ActiveSession{Task: task, StartedAt: now}
}

// Elapsed is a pure read: accumulated time plus the live segment when
// running. Safe to sample at any cadence.
func (s *ActiveSession) Elapsed(now time.Time) time.Duration {
	elapsed := s.Accumulated
	if s.Running {
		elapsed += now.Sub(s.ResumedAt)
	}
	return elapsed
}

func (s *ActiveSession) Resume(now time.Time) error {
	if s.Running {
		return apperrors.ErrAlreadyRunning
	}
	s.Running = true
	s.ResumedAt = now
	return nil
}

func (s *ActiveSession) Pause(now time.Time) error {
	if !s.Running {
		return apperrors.ErrAlreadyPaused
	}
	s.Accumulated += now.Sub(s.ResumedAt)
	s.Running = false
	s.ResumedAt = time.Time{}
	return nil
}

// Finalize converts the session into its durable form. The task name and
// price are copied in, so later catalog changes never touch the record.
func (s *ActiveSession) Finalize(now time.Time, count int, price float64) FinalizedSession {
	return FinalizedSession{
		Task:      s.Task,
		StartedAt: s.StartedAt,
		Duration:  s.Elapsed(now),
		Count:     count,
		Price:     price,
	}
}

// FinalizedSession is an immutable history record. ID is assigned by the
// log on append and is the only handle for deletion.
type FinalizedSession struct {
	ID        int64
	Task      string
	StartedAt time.Time // UTC
	Duration  time.Duration
	Count     int
	Price     float64
}

func (f FinalizedSession) Earned() float64 {
	return float64(f.Count) * f.Price
}
