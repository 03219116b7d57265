package in

import (
	"context"

	"tally/internal/modules/export/dto"
)

type Usecase interface {
	List(ctx context.Context) ([]dto.ExporterInfo, error)
	Doctor(ctx context.Context) ([]dto.DoctorResult, error)
	Export(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error)
}
