package domain_test

import (
	"testing"
	"time"

	"tally/internal/modules/tracker/domain"
	apperrors "tally/internal/platform/errors"
)

func at(min, sec int) time.Time {
	return time.Date(2026, 8, 25, 9, min, sec, 0, time.UTC)
}

func TestElapsedAccumulatesOnlyWhileRunning(t *testing.T) {
	t.Parallel()
	s := domain.NewActiveSession("writing", at(0, 0))
	if got := s.Elapsed(at(5, 0)); got != 0 {
		t.Fatalf("paused session must not accrue, got %v", got)
	}
	if err := s.Resume(at(5, 0)); err != nil {
		t.Fatalf("resume: %v", err)
	}
	if got := s.Elapsed(at(7, 30)); got != 2*time.Minute+30*time.Second {
		t.Fatalf("running elapsed = %v", got)
	}
	if err := s.Pause(at(8, 0)); err != nil {
		t.Fatalf("pause: %v", err)
	}
	if got := s.Elapsed(at(20, 0)); got != 3*time.Minute {
		t.Fatalf("elapsed after pause = %v", got)
	}
	if err := s.Resume(at(20, 0)); err != nil {
		t.Fatalf("second resume: %v", err)
	}
	if got := s.Elapsed(at(21, 0)); got != 4*time.Minute {
		t.Fatalf("elapsed across segments = %v", got)
	}
}

func TestResumeAndPauseAreIdempotentNoOps(t *testing.T) {
	t.Parallel()
	s := domain.NewActiveSession("writing", at(0, 0))
	if err := s.Pause(at(1, 0)); err != apperrors.ErrAlreadyPaused {
		t.Fatalf("expected already paused, got %v", err)
	}
	if err := s.Resume(at(1, 0)); err != nil {
		t.Fatalf("resume: %v", err)
	}
	if err := s.Resume(at(2, 0)); err != apperrors.ErrAlreadyRunning {
		t.Fatalf("expected already running, got %v", err)
	}
	// The rejected second resume must not reset the live segment.
	if got := s.Elapsed(at(3, 0)); got != 2*time.Minute {
		t.Fatalf("elapsed after rejected resume = %v", got)
	}
	if err := s.Pause(at(3, 0)); err != nil {
		t.Fatalf("pause: %v", err)
	}
	before := s.Elapsed(at(10, 0))
	if err := s.Pause(at(10, 0)); err != apperrors.ErrAlreadyPaused {
		t.Fatalf("expected already paused, got %v", err)
	}
	if after := s.Elapsed(at(10, 0)); after != before {
		t.Fatalf("second pause changed elapsed: %v -> %v", before, after)
	}
}

func TestFinalizeSnapshotsPriceAndDuration(t *testing.T) {
	t.Parallel()
	s := domain.NewActiveSession("writing", at(0, 0))
	if err := s.Resume(at(0, 0)); err != nil {
		t.Fatalf("resume: %v", err)
	}
	record := s.Finalize(at(30, 0), 3, 12.5)
	if record.Task != "writing" || record.Count != 3 || record.Price != 12.5 {
		t.Fatalf("unexpected record: %+v", record)
	}
	if record.Duration != 30*time.Minute {
		t.Fatalf("duration = %v", record.Duration)
	}
	if !record.StartedAt.Equal(at(0, 0)) {
		t.Fatalf("start instant = %v", record.StartedAt)
	}
	if record.Earned() != 37.5 {
		t.Fatalf("earned = %.2f", record.Earned())
	}
}
