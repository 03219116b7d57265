package timefmt_test

import (
	"testing"
	"time"

	"tally/internal/platform/timefmt"
)

func TestClock(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   time.Duration
		want string
	}{
		{0, "0:00:00"},
		{-5 * time.Second, "0:00:00"},
		{time.Second, "0:00:01"},
		{90 * time.Second, "0:01:30"},
		{time.Hour + 5*time.Minute + 9*time.Second, "1:05:09"},
		{25*time.Hour + 59*time.Minute, "25:59:00"},
		{1500 * time.Millisecond, "0:00:02"},
	}
	for _, c := range cases {
		if got := timefmt.Clock(c.in); got != c.want {
			t.Fatalf("Clock(%v) = %s, want %s", c.in, got, c.want)
		}
	}
}
