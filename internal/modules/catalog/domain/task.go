package domain

import (
	"fmt"

	apperrors "tally/internal/platform/errors"
)

// Task is a priced unit of work. The price is the current rate only;
// historical rates live as snapshots on finalized sessions, never here.
type Task struct {
	Name  string
	Price float64
}

func (t Task) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("task name is required")
	}
	if t.Price < 0 {
		return fmt.Errorf("%w: price must be >= 0, got %.2f", apperrors.ErrInvalidPrice, t.Price)
	}
	return nil
}
