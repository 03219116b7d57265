package usecase

import (
	"context"

	"tally/internal/modules/report/domain"
	"tally/internal/modules/report/dto"
	reportin "tally/internal/modules/report/port/in"
	"tally/internal/modules/report/service"
)

type Interactor struct {
	svc *service.ReportService
}

func NewInteractor(svc *service.ReportService) reportin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Day(ctx context.Context, label string) (dto.SummaryOutput, error) {
	bucket, summary, rows, err := i.svc.Day(ctx, label)
	if err != nil {
		return dto.SummaryOutput{}, err
	}
	return toSummaryOutput(bucket, summary, rows), nil
}

func (i *Interactor) Month(ctx context.Context, label string) (dto.SummaryOutput, error) {
	bucket, summary, rows, err := i.svc.Month(ctx, label)
	if err != nil {
		return dto.SummaryOutput{}, err
	}
	return toSummaryOutput(bucket, summary, rows), nil
}

func (i *Interactor) History(ctx context.Context, limit int) ([]dto.SessionOutput, error) {
	sessions, err := i.svc.History(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SessionOutput, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, dto.SessionOutput{
			ID:        s.ID,
			Task:      s.Task,
			StartedAt: s.StartedAt,
			Duration:  s.Duration,
			Count:     s.Count,
			Price:     s.Price,
			Earned:    s.Earned(),
		})
	}
	return out, nil
}

func (i *Interactor) Remove(ctx context.Context, id int64) error {
	return i.svc.Remove(ctx, id)
}

func toSummaryOutput(bucket domain.Bucket, summary domain.Summary, rows int) dto.SummaryOutput {
	out := dto.SummaryOutput{
		Label: bucket.Label,
		Empty: rows == 0,
		Total: dto.TaskSummaryOutput{
			Count:      summary.Total.Count,
			Duration:   summary.Total.Duration,
			Earned:     summary.Total.Earned,
			HourlyRate: summary.Total.HourlyRate(),
		},
	}
	for _, group := range summary.PerTask {
		out.PerTask = append(out.PerTask, dto.TaskSummaryOutput{
			Task:       group.Task,
			Count:      group.Count,
			Duration:   group.Duration,
			Earned:     group.Earned,
			HourlyRate: group.HourlyRate(),
		})
	}
	return out
}
