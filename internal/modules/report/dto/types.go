package dto

import "time"

type SessionOutput struct {
	ID        int64
	Task      string
	StartedAt time.Time // UTC; render in the display timezone
	Duration  time.Duration
	Count     int
	Price     float64
	Earned    float64
}

type TaskSummaryOutput struct {
	Task       string
	Count      int
	Duration   time.Duration
	Earned     float64
	HourlyRate float64
}

// SummaryOutput distinguishes an empty bucket (Empty=true, nothing
// happened) from an aggregate that sums to zero.
type SummaryOutput struct {
	Label   string
	Empty   bool
	PerTask []TaskSummaryOutput
	Total   TaskSummaryOutput
}
