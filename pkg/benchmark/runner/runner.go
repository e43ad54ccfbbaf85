// Package runner provides the core benchmark execution engine.
package runner

import (
	"log/slog"

	"cpubench/pkg/benchmark/kernel"
	"cpubench/pkg/benchmark/metrics"
	"cpubench/pkg/benchmark/types"
)

// Workload pairs a named kernel with the option field that sizes it.
type Workload struct {
	Name   string
	Kernel types.Kernel
	Size   func(*types.Options) uint64
}

// Workloads returns the fixed benchmark sequence. The order and the size
// routing are part of the output contract and never vary at runtime.
func Workloads() []Workload {
	return []Workload{
		{Name: "sum_xor", Kernel: kernel.SumXor, Size: func(o *types.Options) uint64 { return o.SumN }},
		{Name: "prime_trial", Kernel: kernel.PrimeTrial, Size: func(o *types.Options) uint64 { return o.PrimeN }},
		{Name: "affine_grid", Kernel: kernel.AffineGrid, Size: func(o *types.Options) uint64 { return o.MatrixN }},
		{Name: "branch_mix", Kernel: kernel.BranchMix, Size: func(o *types.Options) uint64 { return o.SumN }},
		{Name: "gcd_fold", Kernel: kernel.GcdFold, Size: func(o *types.Options) uint64 { return o.PrimeN }},
		{Name: "lcg_stream", Kernel: kernel.LcgStream, Size: func(o *types.Options) uint64 { return o.SumN }},
	}
}

// Harness times the fixed workload sequence. Workloads run strictly
// sequentially on the calling goroutine: the kernels are pure CPU loops with
// no suspension points, so there is nothing to cancel or time out.
type Harness struct {
	opts      *types.Options
	collector *metrics.Collector
	onResult  func(types.Result)
}

// NewHarness creates a harness for the given options.
func NewHarness(opts *types.Options) *Harness {
	return &Harness{opts: opts}
}

// SetCollector attaches a metrics collector that receives one record per
// completed workload.
func (h *Harness) SetCollector(collector *metrics.Collector) {
	h.collector = collector
}

// OnResult registers a callback invoked immediately after each workload
// completes, before the next one starts. The CSV reporter hooks in here so
// rows stream as they are produced.
func (h *Harness) OnResult(fn func(types.Result)) {
	h.onResult = fn
}

// Run executes all six workloads in order and returns their results. Each
// workload runs the configured number of iterations, folding every raw
// kernel result and its zero-based iteration index into one checksum.
func (h *Harness) Run() []types.Result {
	workloads := Workloads()
	results := make([]types.Result, 0, len(workloads))

	for _, w := range workloads {
		results = append(results, h.runWorkload(w))
	}

	return results
}

func (h *Harness) runWorkload(w Workload) types.Result {
	size := w.Size(h.opts)
	iterations := h.opts.Iterations

	sw := metrics.NewStopwatch()
	var checksum uint64
	for it := 0; it < iterations; it++ {
		raw := w.Kernel(size)
		checksum = kernel.Mix(checksum, raw, uint64(it))
	}
	elapsed := sw.Elapsed()

	totalMS := float64(elapsed.Nanoseconds()) / 1e6
	result := types.Result{
		Name:       w.Name,
		Iterations: iterations,
		TotalMS:    totalMS,
		MeanMS:     totalMS / float64(iterations),
		Checksum:   checksum,
	}

	if h.collector != nil {
		h.collector.RecordRun(w.Name, iterations, elapsed)
	}

	slog.Debug("workload complete",
		"workload", w.Name,
		"size", size,
		"iterations", iterations,
		"total_ms", result.TotalMS,
		"checksum", result.Checksum,
	)

	if h.onResult != nil {
		h.onResult(result)
	}

	return result
}
