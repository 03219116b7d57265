package in

import (
	"context"

	"tally/internal/modules/catalog/dto"
)

type Usecase interface {
	SetPrice(ctx context.Context, name string, price float64) (dto.TaskOutput, error)
	Get(ctx context.Context, name string) (dto.TaskOutput, error)
	List(ctx context.Context) ([]dto.TaskOutput, error)
	Remove(ctx context.Context, name string) error
}
