package out

import (
	"context"
	"time"

	"tally/internal/modules/export/domain"
	exportout "tally/internal/modules/export/port/out"
	reportdto "tally/internal/modules/report/dto"
	reportin "tally/internal/modules/report/port/in"
)

// ReportSourceAdapter narrows the report usecase to the payload shape
// exporter plugins consume.
type ReportSourceAdapter struct {
	reports reportin.Usecase
}

func NewReportSourceAdapter(reports reportin.Usecase) exportout.ReportSource {
	return &ReportSourceAdapter{reports: reports}
}

func (a *ReportSourceAdapter) Day(ctx context.Context, label string) (domain.ReportPayload, error) {
	summary, err := a.reports.Day(ctx, label)
	if err != nil {
		return domain.ReportPayload{}, err
	}
	return toSummaryPayload(domain.ReportKindDay, summary), nil
}

func (a *ReportSourceAdapter) Month(ctx context.Context, label string) (domain.ReportPayload, error) {
	summary, err := a.reports.Month(ctx, label)
	if err != nil {
		return domain.ReportPayload{}, err
	}
	return toSummaryPayload(domain.ReportKindMonth, summary), nil
}

func (a *ReportSourceAdapter) History(ctx context.Context, limit int) (domain.ReportPayload, error) {
	sessions, err := a.reports.History(ctx, limit)
	if err != nil {
		return domain.ReportPayload{}, err
	}
	payload := domain.ReportPayload{Kind: domain.ReportKindHistory, Empty: len(sessions) == 0}
	for _, s := range sessions {
		payload.Sessions = append(payload.Sessions, domain.ReportSession{
			ID:              s.ID,
			Task:            s.Task,
			StartedAt:       s.StartedAt.UTC().Format(time.RFC3339),
			DurationSeconds: s.Duration.Seconds(),
			Count:           s.Count,
			Price:           s.Price,
			Earned:          s.Earned,
		})
	}
	return payload, nil
}

func toSummaryPayload(kind domain.ReportKind, summary reportdto.SummaryOutput) domain.ReportPayload {
	payload := domain.ReportPayload{Kind: kind, Label: summary.Label, Empty: summary.Empty}
	if summary.Empty {
		return payload
	}
	for _, group := range summary.PerTask {
		payload.Tasks = append(payload.Tasks, toGroup(group))
	}
	total := toGroup(summary.Total)
	payload.Total = &total
	return payload
}

func toGroup(group reportdto.TaskSummaryOutput) domain.ReportGroup {
	return domain.ReportGroup{
		Task:            group.Task,
		Sessions:        group.Count,
		DurationSeconds: group.Duration.Seconds(),
		Earned:          group.Earned,
		HourlyRate:      group.HourlyRate,
	}
}
