package usecase

import (
	"context"

	"tally/internal/modules/tracker/domain"
	"tally/internal/modules/tracker/dto"
	trackerin "tally/internal/modules/tracker/port/in"
	"tally/internal/modules/tracker/service"
)

type Interactor struct {
	svc *service.TrackerService
}

func NewInteractor(svc *service.TrackerService) trackerin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Switch(ctx context.Context, task string) (dto.StatusOutput, error) {
	active, err := i.svc.Switch(ctx, task)
	if err != nil {
		return dto.StatusOutput{}, err
	}
	return i.snapshot(active), nil
}

func (i *Interactor) Start(ctx context.Context) (dto.StatusOutput, error) {
	active, err := i.svc.Start(ctx)
	if err != nil {
		return dto.StatusOutput{}, err
	}
	return i.snapshot(active), nil
}

func (i *Interactor) Pause(ctx context.Context) (dto.StatusOutput, error) {
	active, err := i.svc.Pause(ctx)
	if err != nil {
		return dto.StatusOutput{}, err
	}
	return i.snapshot(active), nil
}

func (i *Interactor) Increment(ctx context.Context, n int) (dto.StatusOutput, error) {
	active, err := i.svc.Increment(ctx, n)
	if err != nil {
		return dto.StatusOutput{}, err
	}
	return i.snapshot(active), nil
}

func (i *Interactor) Finish(ctx context.Context) error {
	return i.svc.Finish(ctx)
}

func (i *Interactor) Status(_ context.Context) dto.StatusOutput {
	return i.snapshot(i.svc.Active())
}

func (i *Interactor) snapshot(active *domain.ActiveSession) dto.StatusOutput {
	if active == nil {
		return dto.StatusOutput{}
	}
	return dto.StatusOutput{
		HasActive: true,
		Task:      active.Task,
		Running:   active.Running,
		Elapsed:   active.Elapsed(i.svc.Now()),
	}
}
