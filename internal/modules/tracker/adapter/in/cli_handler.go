package in

import (
	"context"

	trackerdto "tally/internal/modules/tracker/dto"
	trackerin "tally/internal/modules/tracker/port/in"
)

type CLIHandler struct {
	usecase trackerin.Usecase
}

func NewCLIHandler(usecase trackerin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Switch(ctx context.Context, task string) (trackerdto.StatusOutput, error) {
	return h.usecase.Switch(ctx, task)
}

func (h CLIHandler) Start(ctx context.Context) (trackerdto.StatusOutput, error) {
	return h.usecase.Start(ctx)
}

func (h CLIHandler) Pause(ctx context.Context) (trackerdto.StatusOutput, error) {
	return h.usecase.Pause(ctx)
}

func (h CLIHandler) Increment(ctx context.Context, n int) (trackerdto.StatusOutput, error) {
	return h.usecase.Increment(ctx, n)
}

func (h CLIHandler) Finish(ctx context.Context) error {
	return h.usecase.Finish(ctx)
}

func (h CLIHandler) Status(ctx context.Context) trackerdto.StatusOutput {
	return h.usecase.Status(ctx)
}
