package out

import (
	"context"

	"tally/internal/modules/tracker/domain"
)

// SessionLog is the append side of the durable history. The id of the
// appended record is assigned by the log and returned.
type SessionLog interface {
	Append(ctx context.Context, session domain.FinalizedSession) (int64, error)
}

// PriceSource reads the current rate for a task. ok is false when the
// task has no catalog entry.
type PriceSource interface {
	PriceOf(ctx context.Context, task string) (price float64, ok bool, err error)
}
