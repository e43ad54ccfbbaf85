package reporter

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"cpubench/pkg/benchmark/types"

	"github.com/google/uuid"
)

// JSONReporter writes the full report envelope: run metadata, per-workload
// results, and a summary. Selected with --format json; nothing is ever
// written anywhere but the given stream.
type JSONReporter struct {
	writer  io.Writer
	version string
	options *types.Options
	system  types.SystemInfo
	now     func() time.Time
}

// NewJSONReporter creates a JSON reporter. The version, options snapshot,
// and system info end up in the report metadata.
func NewJSONReporter(writer io.Writer, version string, options *types.Options, system types.SystemInfo) *JSONReporter {
	return &JSONReporter{
		writer:  writer,
		version: version,
		options: options,
		system:  system,
		now:     time.Now,
	}
}

// Report encodes the envelope with two-space indentation.
func (r *JSONReporter) Report(results []types.Result) error {
	report := types.Report{
		Metadata: types.ReportMetadata{
			RunID:     uuid.NewString(),
			Timestamp: r.now().UTC().Format(time.RFC3339),
			Version:   r.version,
			System:    r.system,
			Options:   r.options,
		},
		Results: results,
		Summary: summarize(results),
	}

	encoder := json.NewEncoder(r.writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

func summarize(results []types.Result) types.ReportSummary {
	summary := types.ReportSummary{Workloads: len(results)}
	for _, result := range results {
		summary.TotalMS += result.TotalMS
	}
	return summary
}
