package runner

import (
	"testing"

	"cpubench/pkg/benchmark/kernel"
	"cpubench/pkg/benchmark/metrics"
	"cpubench/pkg/benchmark/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallOptions() *types.Options {
	return &types.Options{
		Iterations: 1,
		SumN:       10,
		PrimeN:     10,
		MatrixN:    2,
		Format:     types.FormatCSV,
	}
}

func TestWorkloads_FixedOrder(t *testing.T) {
	workloads := Workloads()
	require.Len(t, workloads, 6)

	names := make([]string, len(workloads))
	for i, w := range workloads {
		names[i] = w.Name
	}

	assert.Equal(t, []string{
		"sum_xor",
		"prime_trial",
		"affine_grid",
		"branch_mix",
		"gcd_fold",
		"lcg_stream",
	}, names)
}

func TestWorkloads_SizeRouting(t *testing.T) {
	opts := &types.Options{SumN: 111, PrimeN: 222, MatrixN: 333}

	want := map[string]uint64{
		"sum_xor":     111,
		"prime_trial": 222,
		"affine_grid": 333,
		"branch_mix":  111,
		"gcd_fold":    222,
		"lcg_stream":  111,
	}

	for _, w := range Workloads() {
		assert.Equal(t, want[w.Name], w.Size(opts), "size routing for %s", w.Name)
	}
}

func TestHarness_Run_SingleIteration(t *testing.T) {
	harness := NewHarness(smallOptions())
	results := harness.Run()

	require.Len(t, results, 6)

	// With one iteration the checksum is just Mix(0, kernel(n), 0).
	want := map[string]uint64{
		"sum_xor":     kernel.Mix(0, kernel.SumXor(10), 0),
		"prime_trial": kernel.Mix(0, kernel.PrimeTrial(10), 0),
		"affine_grid": kernel.Mix(0, kernel.AffineGrid(2), 0),
		"branch_mix":  kernel.Mix(0, kernel.BranchMix(10), 0),
		"gcd_fold":    kernel.Mix(0, kernel.GcdFold(10), 0),
		"lcg_stream":  kernel.Mix(0, kernel.LcgStream(10), 0),
	}

	for _, res := range results {
		assert.Equal(t, 1, res.Iterations)
		assert.Equal(t, want[res.Name], res.Checksum, "checksum for %s", res.Name)
		assert.GreaterOrEqual(t, res.TotalMS, 0.0)
		assert.Equal(t, res.TotalMS, res.MeanMS)
	}
}

func TestHarness_Run_FoldsIterations(t *testing.T) {
	opts := smallOptions()
	opts.Iterations = 3

	harness := NewHarness(opts)
	results := harness.Run()

	raw := kernel.SumXor(10)
	want := uint64(0)
	for it := uint64(0); it < 3; it++ {
		want = kernel.Mix(want, raw, it)
	}

	assert.Equal(t, want, results[0].Checksum)
	assert.Equal(t, 3, results[0].Iterations)
	assert.InDelta(t, results[0].TotalMS/3, results[0].MeanMS, 1e-9)
}

func TestHarness_Run_DifferentIterationCountsDiverge(t *testing.T) {
	one := NewHarness(smallOptions()).Run()

	opts := smallOptions()
	opts.Iterations = 2
	two := NewHarness(opts).Run()

	// The mixer makes the aggregate checksum depend on the iteration count.
	assert.NotEqual(t, one[0].Checksum, two[0].Checksum)
}

func TestHarness_Run_Deterministic(t *testing.T) {
	opts := smallOptions()
	opts.Iterations = 2

	first := NewHarness(opts).Run()
	second := NewHarness(opts).Run()

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].Checksum, second[i].Checksum)
	}
}

func TestHarness_OnResult_StreamsInOrder(t *testing.T) {
	harness := NewHarness(smallOptions())

	var streamed []string
	harness.OnResult(func(res types.Result) {
		streamed = append(streamed, res.Name)
	})

	results := harness.Run()

	require.Len(t, streamed, len(results))
	for i, res := range results {
		assert.Equal(t, res.Name, streamed[i])
	}
}

func TestHarness_RecordsMetrics(t *testing.T) {
	collector := metrics.NewCollector()

	harness := NewHarness(smallOptions())
	harness.SetCollector(collector)
	harness.Run()

	snapshots := collector.Snapshot()
	require.Len(t, snapshots, 6)
	assert.Equal(t, "sum_xor", snapshots[0].Name)
	assert.Equal(t, 1, snapshots[0].Iterations)
}
