package clock

import "time"

// Clock abstracts wall time so lifecycle logic stays deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock returns the current instant in UTC. All stored instants are
// UTC; conversion to the display timezone happens only at report time.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
