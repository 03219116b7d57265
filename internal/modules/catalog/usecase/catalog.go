package usecase

import (
	"context"

	"tally/internal/modules/catalog/dto"
	catalogin "tally/internal/modules/catalog/port/in"
	"tally/internal/modules/catalog/service"
)

type Interactor struct {
	svc *service.CatalogService
}

func NewInteractor(svc *service.CatalogService) catalogin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) SetPrice(ctx context.Context, name string, price float64) (dto.TaskOutput, error) {
	task, err := i.svc.SetPrice(ctx, name, price)
	if err != nil {
		return dto.TaskOutput{}, err
	}
	return dto.TaskOutput{Name: task.Name, Price: task.Price}, nil
}

func (i *Interactor) Get(ctx context.Context, name string) (dto.TaskOutput, error) {
	task, err := i.svc.Get(ctx, name)
	if err != nil {
		return dto.TaskOutput{}, err
	}
	return dto.TaskOutput{Name: task.Name, Price: task.Price}, nil
}

func (i *Interactor) List(ctx context.Context) ([]dto.TaskOutput, error) {
	tasks, err := i.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TaskOutput, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, dto.TaskOutput{Name: task.Name, Price: task.Price})
	}
	return out, nil
}

func (i *Interactor) Remove(ctx context.Context, name string) error {
	return i.svc.Remove(ctx, name)
}
