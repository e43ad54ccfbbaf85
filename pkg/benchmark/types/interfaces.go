package types

// Kernel is one synthetic CPU workload: a pure function from problem size to
// a 64-bit checksum.
type Kernel func(n uint64) uint64

// Reporter renders a completed run's results to an output stream.
type Reporter interface {
	Report(results []Result) error
}
