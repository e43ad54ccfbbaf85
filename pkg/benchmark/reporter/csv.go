// Package reporter provides output formatting for benchmark results.
package reporter

import (
	"fmt"
	"io"

	"cpubench/pkg/benchmark/types"
)

// implTag is the fixed language tag in the first CSV column. The same
// workloads exist in companion implementations in other languages; the tag
// tells their outputs apart when runs are concatenated.
const implTag = "go"

// csvHeader names the CSV columns. Written once, only after option parsing
// has succeeded.
const csvHeader = "language,algorithm,iterations,total_ms,mean_ms,checksum"

// CSVReporter writes the default machine-readable output: one header line,
// then one comma-separated row per workload.
type CSVReporter struct {
	writer io.Writer
}

// NewCSVReporter creates a CSV reporter writing to the given stream.
func NewCSVReporter(writer io.Writer) *CSVReporter {
	return &CSVReporter{writer: writer}
}

// WriteHeader writes the column header line.
func (r *CSVReporter) WriteHeader() error {
	_, err := fmt.Fprintln(r.writer, csvHeader)
	return err
}

// WriteResult writes one workload row. Total milliseconds carry three
// decimal places, the per-iteration mean six, and the checksum is unsigned
// decimal.
func (r *CSVReporter) WriteResult(result types.Result) error {
	_, err := fmt.Fprintf(r.writer, "%s,%s,%d,%.3f,%.6f,%d\n",
		implTag,
		result.Name,
		result.Iterations,
		result.TotalMS,
		result.MeanMS,
		result.Checksum,
	)
	return err
}

// Report writes the header followed by all rows. The CLI streams rows via
// WriteResult instead; Report exists so the CSV form satisfies
// types.Reporter like the other formats.
func (r *CSVReporter) Report(results []types.Result) error {
	if err := r.WriteHeader(); err != nil {
		return err
	}
	for _, result := range results {
		if err := r.WriteResult(result); err != nil {
			return err
		}
	}
	return nil
}
