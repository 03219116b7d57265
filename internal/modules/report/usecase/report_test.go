package usecase_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	reportout "tally/internal/modules/report/adapter/out"
	reportin "tally/internal/modules/report/port/in"
	"tally/internal/modules/report/service"
	"tally/internal/modules/report/usecase"
	trackerout "tally/internal/modules/tracker/adapter/out"
	trackerdomain "tally/internal/modules/tracker/domain"
	apperrors "tally/internal/platform/errors"
)

type fixedClock struct {
	now time.Time
}

func (f fixedClock) Now() time.Time { return f.now }

// newReporter builds a usecase over a real SQLite file shared with the
// tracker's session log, plus an append function for seeding history.
func newReporter(t *testing.T, loc *time.Location, now time.Time) (reportin.Usecase, func(task string, start time.Time, dur time.Duration, count int, price float64) int64) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "tally.db")
	log, err := trackerout.NewSQLiteSessionLog(dbPath)
	if err != nil {
		t.Fatalf("new session log: %v", err)
	}
	source, err := reportout.NewSQLiteSessionSource(dbPath)
	if err != nil {
		t.Fatalf("new session source: %v", err)
	}
	uc := usecase.NewInteractor(service.NewReportService(fixedClock{now: now}, loc, source))

	seed := func(task string, start time.Time, dur time.Duration, count int, price float64) int64 {
		t.Helper()
		id, err := log.Append(context.Background(), trackerdomain.FinalizedSession{
			Task:      task,
			StartedAt: start,
			Duration:  dur,
			Count:     count,
			Price:     price,
		})
		if err != nil {
			t.Fatalf("append session: %v", err)
		}
		return id
	}
	return uc, seed
}

func mustLoc(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return loc
}

func TestDayBucketBoundaryInDisplayZone(t *testing.T) {
	t.Parallel()
	loc := mustLoc(t, "Europe/Paris")
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	uc, seed := newReporter(t, loc, now)
	ctx := context.Background()

	// Local 23:59:59 on the 24th and 00:00:01 on the 25th, two seconds
	// of UTC time apart.
	seed("writing", time.Date(2026, 8, 24, 23, 59, 59, 0, loc).UTC(), 30*time.Minute, 1, 10)
	seed("writing", time.Date(2026, 8, 25, 0, 0, 1, 0, loc).UTC(), 30*time.Minute, 1, 10)

	dayD, err := uc.Day(ctx, "2026-08-24")
	if err != nil {
		t.Fatalf("day: %v", err)
	}
	dayNext, err := uc.Day(ctx, "2026-08-25")
	if err != nil {
		t.Fatalf("day: %v", err)
	}
	if dayD.Empty || dayNext.Empty {
		t.Fatalf("both days must have data")
	}
	if dayD.Total.Count != 1 || dayNext.Total.Count != 1 {
		t.Fatalf("each day must hold exactly one session: %d / %d", dayD.Total.Count, dayNext.Total.Count)
	}

	// Default label resolves to today in the display zone.
	today, err := uc.Day(ctx, "")
	if err != nil {
		t.Fatalf("default day: %v", err)
	}
	if today.Label != "2026-08-24" {
		t.Fatalf("default day label = %s", today.Label)
	}
}

func TestMonthRolloverSeparatesDecemberFromJanuary(t *testing.T) {
	t.Parallel()
	loc := mustLoc(t, "Europe/Paris")
	now := time.Date(2026, 12, 31, 12, 0, 0, 0, time.UTC)
	uc, seed := newReporter(t, loc, now)
	ctx := context.Background()

	seed("writing", time.Date(2026, 12, 31, 15, 0, 0, 0, loc).UTC(), time.Hour, 1, 10)
	seed("writing", time.Date(2027, 1, 1, 9, 0, 0, 0, loc).UTC(), time.Hour, 1, 10)

	december, err := uc.Month(ctx, "2026-12")
	if err != nil {
		t.Fatalf("month: %v", err)
	}
	january, err := uc.Month(ctx, "2027-01")
	if err != nil {
		t.Fatalf("month: %v", err)
	}
	if december.Total.Count != 1 || january.Total.Count != 1 {
		t.Fatalf("rollover split wrong: %d / %d", december.Total.Count, january.Total.Count)
	}
}

func TestEmptyBucketIsExplicit(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	uc, seed := newReporter(t, time.UTC, now)
	ctx := context.Background()

	report, err := uc.Day(ctx, "2026-08-24")
	if err != nil {
		t.Fatalf("day: %v", err)
	}
	if !report.Empty {
		t.Fatalf("bucket with no rows must report Empty")
	}

	// A zero-earned session is data, not emptiness.
	seed("writing", now, 0, 1, 0)
	report, err = uc.Day(ctx, "2026-08-24")
	if err != nil {
		t.Fatalf("day: %v", err)
	}
	if report.Empty {
		t.Fatalf("zero-valued aggregate must not be Empty")
	}
	if report.Total.Earned != 0 || report.Total.HourlyRate != 0 {
		t.Fatalf("zero aggregate expected, got %+v", report.Total)
	}

	if _, err := uc.Day(ctx, "not-a-day"); !errors.Is(err, apperrors.ErrInvalidPeriod) {
		t.Fatalf("expected invalid period, got %v", err)
	}
}

func TestHistoryOrderingAndLimit(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	uc, seed := newReporter(t, time.UTC, now)
	ctx := context.Background()

	base := time.Date(2026, 8, 20, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		seed("writing", base.Add(time.Duration(i)*time.Hour), 30*time.Minute, 1, 10)
	}

	all, err := uc.History(ctx, 0)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(all) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].StartedAt.Before(all[i-1].StartedAt) {
			t.Fatalf("history must ascend by start instant")
		}
	}

	recent, err := uc.History(ctx, 2)
	if err != nil {
		t.Fatalf("history limit: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(recent))
	}
	if !recent[0].StartedAt.Equal(base.Add(3 * time.Hour)) || !recent[1].StartedAt.Equal(base.Add(4 * time.Hour)) {
		t.Fatalf("limit must keep the most recent rows ascending: %v, %v", recent[0].StartedAt, recent[1].StartedAt)
	}
}

func TestRemoveReflectsImmediately(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	uc, seed := newReporter(t, time.UTC, now)
	ctx := context.Background()

	id := seed("writing", now, time.Hour, 2, 10)
	seed("writing", now.Add(time.Hour), time.Hour, 1, 10)

	if err := uc.Remove(ctx, 9999); !errors.Is(err, apperrors.ErrSessionNotFound) {
		t.Fatalf("unknown id: expected session not found, got %v", err)
	}
	before, err := uc.Day(ctx, "2026-08-24")
	if err != nil {
		t.Fatalf("day: %v", err)
	}
	if before.Total.Count != 3 {
		t.Fatalf("aggregate before remove = %d", before.Total.Count)
	}

	if err := uc.Remove(ctx, id); err != nil {
		t.Fatalf("remove: %v", err)
	}
	after, err := uc.Day(ctx, "2026-08-24")
	if err != nil {
		t.Fatalf("day: %v", err)
	}
	if after.Total.Count != 1 {
		t.Fatalf("removal must be reflected live, count = %d", after.Total.Count)
	}
	history, err := uc.History(ctx, 0)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 1 || history[0].ID == id {
		t.Fatalf("removed row must vanish from history")
	}
}
