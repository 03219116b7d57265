package in

import (
	"context"

	"tally/internal/modules/tracker/dto"
)

type Usecase interface {
	// Switch finalizes any active session (count=1) and activates task,
	// preserving the running flag. Fails with ErrTaskNotFound when the
	// task has no catalog entry, leaving the old session untouched.
	Switch(ctx context.Context, task string) (dto.StatusOutput, error)
	Start(ctx context.Context) (dto.StatusOutput, error)
	Pause(ctx context.Context) (dto.StatusOutput, error)
	// Increment finalizes the active session with count=n and restarts a
	// fresh session for the same task, preserving the running flag.
	Increment(ctx context.Context, n int) (dto.StatusOutput, error)
	// Finish finalizes the active session with count=1 and leaves no
	// session active. A no-op when nothing is active.
	Finish(ctx context.Context) error
	Status(ctx context.Context) dto.StatusOutput
}
