package dto

import "time"

// StatusOutput is the pure state snapshot consumed by the UI prompt.
type StatusOutput struct {
	HasActive bool
	Task      string
	Running   bool
	Elapsed   time.Duration
}
