package out

import (
	"context"
	"time"

	"tally/internal/modules/report/domain"
)

// SessionSource reads and prunes the durable session history. Both query
// methods return rows ascending by start instant.
type SessionSource interface {
	InRange(ctx context.Context, start, end time.Time) ([]domain.Session, error)
	List(ctx context.Context) ([]domain.Session, error)
	Delete(ctx context.Context, id int64) error
}
