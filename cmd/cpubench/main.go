// Package main provides the CLI entry point for the cpubench tool.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"cpubench/internal/logging"
	"cpubench/pkg/benchmark/config"
	"cpubench/pkg/benchmark/metrics"
	"cpubench/pkg/benchmark/reporter"
	"cpubench/pkg/benchmark/runner"
	"cpubench/pkg/benchmark/sysinfo"
	"cpubench/pkg/benchmark/types"
)

// Version is the tool version (can be overridden at build time).
var Version = "dev"

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run resolves options and executes the benchmark. Nothing reaches stdout
// until parsing and validation have succeeded; all diagnostics go to stderr
// through the logger.
func run(args []string, stdout io.Writer) error {
	settings, err := config.Resolve(args)
	if err != nil {
		return err
	}

	if settings.ShowHelp {
		printUsage(stdout)
		return nil
	}
	if settings.ShowVersion {
		fmt.Fprintf(stdout, "cpubench version %s\n", Version)
		return nil
	}

	if err := logging.Initialize(settings.Logging); err != nil {
		return err
	}
	defer logging.Shutdown()

	opts := settings.Options
	system := sysinfo.Collect()
	slog.Debug("starting benchmark run",
		"version", Version,
		"iterations", opts.Iterations,
		"sum_n", opts.SumN,
		"prime_n", opts.PrimeN,
		"matrix_n", opts.MatrixN,
		"os", system.OS,
		"arch", system.Arch,
		"cpu", system.CPUModel,
		"num_cpu", system.NumCPU,
	)

	collector := metrics.NewCollector()
	harness := runner.NewHarness(opts)
	harness.SetCollector(collector)

	switch opts.Format {
	case types.FormatCSV:
		csv := reporter.NewCSVReporter(stdout)
		if err := csv.WriteHeader(); err != nil {
			return err
		}

		// Stream rows as workloads finish rather than holding all
		// results until the end of the run.
		var writeErr error
		harness.OnResult(func(result types.Result) {
			if err := csv.WriteResult(result); err != nil && writeErr == nil {
				writeErr = err
			}
		})
		harness.Run()
		if writeErr != nil {
			return writeErr
		}

	case types.FormatJSON, types.FormatTable:
		var rep types.Reporter
		if opts.Format == types.FormatJSON {
			rep = reporter.NewJSONReporter(stdout, Version, opts, system)
		} else {
			rep = reporter.NewTableReporter(stdout, !opts.NoColor)
		}

		results := harness.Run()
		if err := rep.Report(results); err != nil {
			return err
		}
	}

	slog.Debug("benchmark run complete",
		"workloads", len(collector.Snapshot()),
		"total_ms", collector.TotalMS(),
	)
	return nil
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "cpubench - CPU micro-benchmark harness")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Runs six fixed CPU-bound workloads and prints per-workload timing")
	fmt.Fprintln(w, "and checksums as CSV on stdout.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  cpubench [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --iterations <n>    Repetitions per workload, must be > 0 (default 5)")
	fmt.Fprintln(w, "      --sum-n <n>         Size for sum_xor, branch_mix, lcg_stream (default 5000000)")
	fmt.Fprintln(w, "      --prime-n <n>       Size for prime_trial, gcd_fold (default 30000)")
	fmt.Fprintln(w, "      --matrix-n <n>      Grid side for affine_grid (default 48)")
	fmt.Fprintln(w, "  -c, --config <file>     Configuration file (YAML)")
	fmt.Fprintln(w, "      --format <fmt>      Output format: csv, json, table (default csv)")
	fmt.Fprintln(w, "      --verbose           Debug diagnostics on stderr")
	fmt.Fprintln(w, "      --no-color          Disable colored table output")
	fmt.Fprintln(w, "  -h, --help              Show this help message")
	fmt.Fprintln(w, "      --version           Show version information")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  cpubench")
	fmt.Fprintln(w, "  cpubench --iterations 10 --sum-n 1000000")
	fmt.Fprintln(w, "  cpubench --format json --verbose")
}
