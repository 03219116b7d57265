package apperrors

import "errors"

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrNoActiveTask    = errors.New("no active task")
	ErrAlreadyRunning  = errors.New("timer already running")
	ErrAlreadyPaused   = errors.New("timer already paused")
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidPeriod   = errors.New("invalid period label")
	ErrInvalidPrice    = errors.New("invalid price")
)
