package out

import (
	"context"

	"tally/internal/modules/catalog/domain"
)

type TaskStore interface {
	Upsert(ctx context.Context, task domain.Task) error
	Get(ctx context.Context, name string) (domain.Task, error)
	List(ctx context.Context) ([]domain.Task, error)
	Delete(ctx context.Context, name string) error
}
