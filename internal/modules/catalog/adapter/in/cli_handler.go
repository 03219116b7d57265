package in

import (
	"context"

	catalogdto "tally/internal/modules/catalog/dto"
	catalogin "tally/internal/modules/catalog/port/in"
)

type CLIHandler struct {
	usecase catalogin.Usecase
}

func NewCLIHandler(usecase catalogin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) SetPrice(ctx context.Context, name string, price float64) (catalogdto.TaskOutput, error) {
	return h.usecase.SetPrice(ctx, name, price)
}

func (h CLIHandler) List(ctx context.Context) ([]catalogdto.TaskOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Remove(ctx context.Context, name string) error {
	return h.usecase.Remove(ctx, name)
}
