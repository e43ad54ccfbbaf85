// Package metrics provides timing measurement and aggregation for benchmark runs.
package metrics

import "time"

// Stopwatch measures elapsed wall-clock time. Readings come from time.Time
// values, which carry Go's monotonic clock, so the measurement is immune to
// wall-clock adjustments during a run.
type Stopwatch struct {
	start time.Time
	clock func() time.Time
}

// NewStopwatch returns a running stopwatch backed by the system clock.
func NewStopwatch() *Stopwatch {
	return NewStopwatchWithClock(time.Now)
}

// NewStopwatchWithClock returns a running stopwatch that reads time from the
// given clock function.
func NewStopwatchWithClock(clock func() time.Time) *Stopwatch {
	return &Stopwatch{start: clock(), clock: clock}
}

// Restart moves the start point to the current clock reading.
func (s *Stopwatch) Restart() {
	s.start = s.clock()
}

// Elapsed returns the time since the stopwatch started or was last restarted.
func (s *Stopwatch) Elapsed() time.Duration {
	return s.clock().Sub(s.start)
}

// ElapsedMS returns the elapsed time in fractional milliseconds.
func (s *Stopwatch) ElapsedMS() float64 {
	return float64(s.Elapsed()) / float64(time.Millisecond)
}
