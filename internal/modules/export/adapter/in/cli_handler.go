package in

import (
	"context"

	exportdto "tally/internal/modules/export/dto"
	exportin "tally/internal/modules/export/port/in"
)

type CLIHandler struct {
	usecase exportin.Usecase
}

func NewCLIHandler(usecase exportin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context) ([]exportdto.ExporterInfo, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Doctor(ctx context.Context) ([]exportdto.DoctorResult, error) {
	return h.usecase.Doctor(ctx)
}

func (h CLIHandler) Export(ctx context.Context, input exportdto.ExportInput) (exportdto.ExportOutput, error) {
	return h.usecase.Export(ctx, input)
}
