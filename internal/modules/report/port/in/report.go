package in

import (
	"context"

	"tally/internal/modules/report/dto"
)

type Usecase interface {
	// Day reports the local calendar day named by label (YYYY-MM-DD),
	// defaulting to today in the display timezone.
	Day(ctx context.Context, label string) (dto.SummaryOutput, error)
	// Month reports the local calendar month named by label (YYYY-MM),
	// defaulting to the current month in the display timezone.
	Month(ctx context.Context, label string) (dto.SummaryOutput, error)
	// History lists sessions ascending by start instant. A positive limit
	// keeps only the most recent limit rows, still presented ascending.
	History(ctx context.Context, limit int) ([]dto.SessionOutput, error)
	Remove(ctx context.Context, id int64) error
}
