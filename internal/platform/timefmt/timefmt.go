package timefmt

import (
	"fmt"
	"math"
	"time"
)

// Clock renders a duration as H:MM:SS, rounding to whole seconds.
// Negative or zero durations render as 0:00:00.
func Clock(d time.Duration) string {
	total := int(math.Round(d.Seconds()))
	if total <= 0 {
		return "0:00:00"
	}
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
}
