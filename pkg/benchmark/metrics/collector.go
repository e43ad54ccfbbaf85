package metrics

import (
	"sync"
	"time"
)

// Collector accumulates per-workload timing across a benchmark run. It keeps
// totals only: per-iteration distributions, variance, and percentiles are
// deliberately out of scope for this tool.
type Collector struct {
	mu    sync.Mutex
	order []string
	runs  map[string]*workloadStats
}

type workloadStats struct {
	iterations int
	elapsed    time.Duration
}

// WorkloadSnapshot is a point-in-time copy of one workload's accumulated timing.
type WorkloadSnapshot struct {
	Name       string
	Iterations int
	TotalMS    float64
	MeanMS     float64
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{
		runs: make(map[string]*workloadStats),
	}
}

// RecordRun records one completed workload: the number of iterations executed
// and the total elapsed time of the iteration loop.
func (c *Collector) RecordRun(name string, iterations int, elapsed time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	stats := c.runs[name]
	if stats == nil {
		stats = &workloadStats{}
		c.runs[name] = stats
		c.order = append(c.order, name)
	}

	stats.iterations += iterations
	stats.elapsed += elapsed
}

// Snapshot returns per-workload timing in recording order.
func (c *Collector) Snapshot() []WorkloadSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snapshots := make([]WorkloadSnapshot, 0, len(c.order))
	for _, name := range c.order {
		stats := c.runs[name]
		snap := WorkloadSnapshot{
			Name:       name,
			Iterations: stats.iterations,
			TotalMS:    float64(stats.elapsed) / float64(time.Millisecond),
		}
		if stats.iterations > 0 {
			snap.MeanMS = snap.TotalMS / float64(stats.iterations)
		}
		snapshots = append(snapshots, snap)
	}

	return snapshots
}

// TotalMS returns the combined elapsed time of all recorded workloads in
// fractional milliseconds.
func (c *Collector) TotalMS() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total time.Duration
	for _, stats := range c.runs {
		total += stats.elapsed
	}

	return float64(total) / float64(time.Millisecond)
}

// Reset clears all recorded timing.
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.order = nil
	c.runs = make(map[string]*workloadStats)
}
