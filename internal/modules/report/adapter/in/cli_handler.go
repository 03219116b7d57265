package in

import (
	"context"

	reportdto "tally/internal/modules/report/dto"
	reportin "tally/internal/modules/report/port/in"
)

type CLIHandler struct {
	usecase reportin.Usecase
}

func NewCLIHandler(usecase reportin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Day(ctx context.Context, label string) (reportdto.SummaryOutput, error) {
	return h.usecase.Day(ctx, label)
}

func (h CLIHandler) Month(ctx context.Context, label string) (reportdto.SummaryOutput, error) {
	return h.usecase.Month(ctx, label)
}

func (h CLIHandler) History(ctx context.Context, limit int) ([]reportdto.SessionOutput, error) {
	return h.usecase.History(ctx, limit)
}

func (h CLIHandler) Remove(ctx context.Context, id int64) error {
	return h.usecase.Remove(ctx, id)
}
