// Package types defines the core types and data structures for the cpubench tool.
package types

// Output format identifiers.
const (
	FormatCSV   = "csv"
	FormatJSON  = "json"
	FormatTable = "table"
)

// Options holds the fully resolved benchmark configuration. It is built once
// by the config package and treated as read-only afterwards.
type Options struct {
	Iterations int    `json:"iterations" yaml:"iterations"` // repetitions per workload
	SumN       uint64 `json:"sum_n" yaml:"sum_n"`           // size for sum_xor, branch_mix, lcg_stream
	PrimeN     uint64 `json:"prime_n" yaml:"prime_n"`       // size for prime_trial, gcd_fold
	MatrixN    uint64 `json:"matrix_n" yaml:"matrix_n"`     // grid side for affine_grid
	Format     string `json:"format" yaml:"format"`         // csv, json, table
	Verbose    bool   `json:"-" yaml:"-"`
	NoColor    bool   `json:"-" yaml:"-"` // disable ANSI colors in table output
}

// DefaultOptions returns the built-in defaults used when neither a config
// file nor a command-line flag supplies a value.
func DefaultOptions() *Options {
	return &Options{
		Iterations: 5,
		SumN:       5000000,
		PrimeN:     30000,
		MatrixN:    48,
		Format:     FormatCSV,
	}
}

// Result holds the outcome of one workload's timed iteration loop.
type Result struct {
	Name       string  `json:"name"`
	Iterations int     `json:"iterations"`
	TotalMS    float64 `json:"total_ms"`
	MeanMS     float64 `json:"mean_ms"`
	Checksum   uint64  `json:"checksum"`
}

// Report is the envelope for machine-readable output (--format json).
type Report struct {
	Metadata ReportMetadata `json:"metadata"`
	Results  []Result       `json:"results"`
	Summary  ReportSummary  `json:"summary"`
}

// ReportMetadata describes the run that produced a report.
type ReportMetadata struct {
	RunID     string     `json:"run_id"`
	Timestamp string     `json:"timestamp"`
	Version   string     `json:"version"`
	System    SystemInfo `json:"system"`
	Options   *Options   `json:"options"`
}

// ReportSummary holds aggregate figures across all workloads.
type ReportSummary struct {
	Workloads int     `json:"workloads"`
	TotalMS   float64 `json:"total_ms"`
}

// SystemInfo holds best-effort host facts gathered at startup. Fields that
// could not be probed stay at their zero values.
type SystemInfo struct {
	OS           string  `json:"os"`
	Arch         string  `json:"arch"`
	GoVersion    string  `json:"go_version"`
	NumCPU       int     `json:"num_cpu"`
	CPUModel     string  `json:"cpu_model,omitempty"`
	CPUMHz       float64 `json:"cpu_mhz,omitempty"`
	LogicalCores int     `json:"logical_cores,omitempty"`
	MemoryTotal  uint64  `json:"memory_total_bytes,omitempty"`
}
