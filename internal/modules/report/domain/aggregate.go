package domain

import (
	"sort"
	"time"
)

// Session mirrors one finalized history row as read back for reporting.
type Session struct {
	ID        int64
	Task      string
	StartedAt time.Time // UTC
	Duration  time.Duration
	Count     int
	Price     float64
}

func (s Session) Earned() float64 {
	return float64(s.Count) * s.Price
}

type TaskSummary struct {
	Task     string
	Count    int
	Duration time.Duration
	Earned   float64
}

// HourlyRate is earned per hour worked, defined as 0 for zero duration.
func (t TaskSummary) HourlyRate() float64 {
	hours := t.Duration.Hours()
	if hours <= 0 {
		return 0
	}
	return t.Earned / hours
}

type Summary struct {
	PerTask []TaskSummary
	Total   TaskSummary
}

// Summarize groups sessions by task name, ascending, and sums counts,
// durations and earnings. The grand total is component-wise, so its
// hourly rate derives from total earnings over total hours rather than
// any combination of per-task rates.
func Summarize(sessions []Session) Summary {
	byTask := map[string]*TaskSummary{}
	for _, s := range sessions {
		group, ok := byTask[s.Task]
		if !ok {
			group = &TaskSummary{Task: s.Task}
			byTask[s.Task] = group
		}
		group.Count += s.Count
		group.Duration += s.Duration
		group.Earned += s.Earned()
	}

	summary := Summary{PerTask: make([]TaskSummary, 0, len(byTask))}
	for _, group := range byTask {
		summary.PerTask = append(summary.PerTask, *group)
	}
	sort.Slice(summary.PerTask, func(i, j int) bool {
		return summary.PerTask[i].Task < summary.PerTask[j].Task
	})
	for _, group := range summary.PerTask {
		summary.Total.Count += group.Count
		summary.Total.Duration += group.Duration
		summary.Total.Earned += group.Earned
	}
	return summary
}
