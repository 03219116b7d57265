package service

import (
	"context"

	"tally/internal/modules/catalog/domain"
	catalogout "tally/internal/modules/catalog/port/out"
)

type CatalogService struct {
	store catalogout.TaskStore
}

func NewCatalogService(store catalogout.TaskStore) *CatalogService {
	return &CatalogService{store: store}
}

// SetPrice creates or overwrites the task's rate. Latest write wins;
// no price history is kept.
func (s *CatalogService) SetPrice(ctx context.Context, name string, price float64) (domain.Task, error) {
	task := domain.Task{Name: name, Price: price}
	if err := task.Validate(); err != nil {
		return domain.Task{}, err
	}
	if err := s.store.Upsert(ctx, task); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

func (s *CatalogService) Get(ctx context.Context, name string) (domain.Task, error) {
	return s.store.Get(ctx, name)
}

func (s *CatalogService) List(ctx context.Context) ([]domain.Task, error) {
	return s.store.List(ctx)
}

// Remove deletes the catalog entry only. Finalized sessions keep their
// denormalized task name and price snapshot, so history stays reportable.
func (s *CatalogService) Remove(ctx context.Context, name string) error {
	return s.store.Delete(ctx, name)
}
