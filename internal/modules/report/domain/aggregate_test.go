package domain_test

import (
	"math"
	"testing"
	"time"

	"tally/internal/modules/report/domain"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSummarizeSumsPerTask(t *testing.T) {
	t.Parallel()
	summary := domain.Summarize([]domain.Session{
		{Task: "writing", Duration: 1800 * time.Second, Count: 3, Price: 5},
		{Task: "writing", Duration: 1800 * time.Second, Count: 2, Price: 5},
	})
	if len(summary.PerTask) != 1 {
		t.Fatalf("expected one group, got %d", len(summary.PerTask))
	}
	group := summary.PerTask[0]
	if group.Count != 5 || group.Duration != 3600*time.Second {
		t.Fatalf("unexpected group: %+v", group)
	}
	if !almostEqual(group.Earned, 25) {
		t.Fatalf("earned = %.2f, want 25.00", group.Earned)
	}
	if !almostEqual(group.HourlyRate(), 25) {
		t.Fatalf("hourly rate = %.2f, want 25.00", group.HourlyRate())
	}
}

func TestHourlyRateIsZeroForZeroDuration(t *testing.T) {
	t.Parallel()
	group := domain.TaskSummary{Task: "writing", Count: 4, Earned: 40}
	if rate := group.HourlyRate(); rate != 0 {
		t.Fatalf("zero-duration rate = %.2f, want 0", rate)
	}
}

func TestGrandRateRecomputedFromTotals(t *testing.T) {
	t.Parallel()
	// Per-task rates are 10/h and 60/h. Averaging them gives 35, summing
	// gives 70; the correct grand rate is 90 earned over 4h = 22.5.
	summary := domain.Summarize([]domain.Session{
		{Task: "editing", Duration: 3 * time.Hour, Count: 3, Price: 10},
		{Task: "writing", Duration: 1 * time.Hour, Count: 1, Price: 60},
	})
	if !almostEqual(summary.Total.Earned, 90) || summary.Total.Duration != 4*time.Hour {
		t.Fatalf("totals wrong: %+v", summary.Total)
	}
	if !almostEqual(summary.Total.HourlyRate(), 22.5) {
		t.Fatalf("grand rate = %.2f, want 22.50 (90 earned / 4h)", summary.Total.HourlyRate())
	}
}

func TestGroupsSortedAscendingByTask(t *testing.T) {
	t.Parallel()
	summary := domain.Summarize([]domain.Session{
		{Task: "writing", Duration: time.Hour, Count: 1, Price: 1},
		{Task: "art", Duration: time.Hour, Count: 1, Price: 1},
		{Task: "editing", Duration: time.Hour, Count: 1, Price: 1},
	})
	want := []string{"art", "editing", "writing"}
	for i, group := range summary.PerTask {
		if group.Task != want[i] {
			t.Fatalf("order %d = %s, want %s", i, group.Task, want[i])
		}
	}
}
