package reporter

import (
	"fmt"
	"io"
	"strings"

	"cpubench/pkg/benchmark/types"
)

// TableReporter renders results as a human-readable console table. Selected
// with --format table.
type TableReporter struct {
	writer io.Writer
	colors bool
}

// NewTableReporter creates a table reporter. Colors apply ANSI escapes to
// headers and totals; pass false when the output is not a terminal.
func NewTableReporter(writer io.Writer, colors bool) *TableReporter {
	return &TableReporter{
		writer: writer,
		colors: colors,
	}
}

// Report renders the boxed title, one aligned row per workload, and a
// summary footer.
func (r *TableReporter) Report(results []types.Result) error {
	r.printHeader("Benchmark Results")
	fmt.Fprintln(r.writer)

	fmt.Fprintf(r.writer, "  %-14s %10s %14s %14s %22s\n",
		"Workload", "Iterations", "Total (ms)", "Mean (ms)", "Checksum")
	fmt.Fprintf(r.writer, "  %s\n", strings.Repeat("-", 78))

	var totalMS float64
	for _, result := range results {
		fmt.Fprintf(r.writer, "  %-14s %10d %14.3f %14.6f %22d\n",
			r.colorize(result.Name, colorCyan),
			result.Iterations,
			result.TotalMS,
			result.MeanMS,
			result.Checksum,
		)
		totalMS += result.TotalMS
	}

	fmt.Fprintln(r.writer)
	fmt.Fprintf(r.writer, "  Workloads: %d | Combined total: %s\n",
		len(results),
		r.colorize(fmt.Sprintf("%.3f ms", totalMS), colorGreen),
	)
	r.printFooter()
	return nil
}

// printHeader prints the boxed title.
func (r *TableReporter) printHeader(title string) {
	line := strings.Repeat("=", 80)
	fmt.Fprintln(r.writer, r.colorize(line, colorBold))
	fmt.Fprintf(r.writer, "%s\n", r.colorize(centerString(title, 80), colorBold))
	fmt.Fprintln(r.writer, r.colorize(line, colorBold))
}

// printFooter prints the closing rule.
func (r *TableReporter) printFooter() {
	line := strings.Repeat("=", 80)
	fmt.Fprintln(r.writer, r.colorize(line, colorBold))
}

// Color codes
const (
	colorReset = "\033[0m"
	colorGreen = "\033[32m"
	colorCyan  = "\033[36m"
	colorBold  = "\033[1m"
)

func (r *TableReporter) colorize(text, color string) string {
	if !r.colors {
		return text
	}
	return color + text + colorReset
}

func centerString(s string, width int) string {
	if len(s) >= width {
		return s
	}
	padding := (width - len(s)) / 2
	return strings.Repeat(" ", padding) + s
}
