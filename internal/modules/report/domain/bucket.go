package domain

import (
	"fmt"
	"time"

	apperrors "tally/internal/platform/errors"
)

const (
	DayLabelLayout   = "2006-01-02"
	MonthLabelLayout = "2006-01"
)

// Bucket is a half-open UTC instant range [Start, End) derived from a
// local calendar unit in the display timezone. Boundary arithmetic is
// done on local wall-clock dates, so a bucket's UTC span is not always
// 24 hours or a fixed number of days across DST transitions.
type Bucket struct {
	Label string
	Start time.Time // UTC
	End   time.Time // UTC
}

func (b Bucket) Contains(instant time.Time) bool {
	return !instant.Before(b.Start) && instant.Before(b.End)
}

// DayBucket resolves label ("2006-01-02", empty means today in loc) to
// the range from that date's local midnight to the next date's local
// midnight.
func DayBucket(label string, now time.Time, loc *time.Location) (Bucket, error) {
	var year int
	var month time.Month
	var day int
	if label == "" {
		local := now.In(loc)
		year, month, day = local.Date()
	} else {
		parsed, err := time.ParseInLocation(DayLabelLayout, label, loc)
		if err != nil {
			return Bucket{}, fmt.Errorf("%w: %q is not a YYYY-MM-DD day", apperrors.ErrInvalidPeriod, label)
		}
		year, month, day = parsed.Date()
	}
	start := time.Date(year, month, day, 0, 0, 0, 0, loc)
	end := time.Date(year, month, day+1, 0, 0, 0, 0, loc)
	return Bucket{
		Label: start.Format(DayLabelLayout),
		Start: start.UTC(),
		End:   end.UTC(),
	}, nil
}

// MonthBucket resolves label ("2006-01", empty means the current month in
// loc) to the range from local midnight of day 1 to local midnight of day
// 1 of the following month. Calendar arithmetic handles year rollover and
// variable month lengths.
func MonthBucket(label string, now time.Time, loc *time.Location) (Bucket, error) {
	var year int
	var month time.Month
	if label == "" {
		local := now.In(loc)
		year, month, _ = local.Date()
	} else {
		parsed, err := time.ParseInLocation(MonthLabelLayout, label, loc)
		if err != nil {
			return Bucket{}, fmt.Errorf("%w: %q is not a YYYY-MM month", apperrors.ErrInvalidPeriod, label)
		}
		year, month, _ = parsed.Date()
	}
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	end := time.Date(year, month+1, 1, 0, 0, 0, 0, loc)
	return Bucket{
		Label: start.Format(MonthLabelLayout),
		Start: start.UTC(),
		End:   end.UTC(),
	}, nil
}
