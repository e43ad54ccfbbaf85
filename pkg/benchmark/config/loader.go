// Package config provides configuration loading and validation for the benchmark tool.
//
// Options resolve in three layers: built-in defaults, then an optional YAML
// config file, then explicit command-line flags. A later layer only replaces
// the values it actually sets, so an absent file field keeps the default and
// an explicit flag always wins over the file.
package config

import (
	"fmt"
	"os"
	"strconv"

	intconfig "cpubench/internal/config"
	"cpubench/pkg/benchmark/types"

	"gopkg.in/yaml.v3"
)

// Settings is the fully resolved outcome of option parsing: the benchmark
// options plus the logging configuration, or a request to short-circuit into
// help/version output.
type Settings struct {
	Options *types.Options
	Logging intconfig.LoggingConfig

	ShowHelp    bool
	ShowVersion bool
}

// File is the YAML config file schema. Pointer fields distinguish an absent
// key from an explicit zero so the file only overrides what it names.
type File struct {
	Iterations *int    `yaml:"iterations"`
	SumN       *uint64 `yaml:"sum_n"`
	PrimeN     *uint64 `yaml:"prime_n"`
	MatrixN    *uint64 `yaml:"matrix_n"`
	Format     *string `yaml:"format"`

	Logging *intconfig.LoggingConfig `yaml:"logging"`
}

// flagValues holds the raw command-line overrides before they are layered on
// top of the defaults and the config file.
type flagValues struct {
	configFile string
	iterations *int
	sumN       *uint64
	primeN     *uint64
	matrixN    *uint64
	format     *string
	verbose    bool
	noColor    bool

	help    bool
	version bool
}

// Resolve parses command-line arguments into a complete, validated Settings.
// It never returns a partial configuration: any unknown flag, missing or
// malformed value, unreadable config file, or failed validation is an error.
func Resolve(args []string) (*Settings, error) {
	flags, err := parseFlags(args)
	if err != nil {
		return nil, err
	}
	if flags.help || flags.version {
		return &Settings{ShowHelp: flags.help, ShowVersion: flags.version}, nil
	}

	opts := types.DefaultOptions()
	logCfg := intconfig.DefaultLoggingConfig()

	if flags.configFile != "" {
		file, err := LoadFile(flags.configFile)
		if err != nil {
			return nil, err
		}
		applyFile(opts, &logCfg, file)
	}

	applyFlags(opts, flags)

	if flags.verbose {
		logCfg.Level = "debug"
		logCfg.Console.Level = "debug"
	}
	logCfg.ApplyDefaults()

	if err := validate(opts, &logCfg); err != nil {
		return nil, err
	}

	settings := &Settings{
		Options: opts,
		Logging: logCfg,
	}
	return settings, nil
}

// parseFlags walks the argument list once, collecting recognized flags and
// their values. Help and version short-circuit the walk.
func parseFlags(args []string) (*flagValues, error) {
	flags := &flagValues{}

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--iterations":
			value, err := takeValue(args, i, "--iterations")
			if err != nil {
				return nil, err
			}
			n, err := strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("invalid value %q for --iterations", value)
			}
			flags.iterations = &n
			i++
		case "--sum-n":
			v, err := takeUint(args, i, "--sum-n")
			if err != nil {
				return nil, err
			}
			flags.sumN = &v
			i++
		case "--prime-n", "--sieve-n":
			// --sieve-n is a compatibility alias; errors name the
			// canonical flag.
			v, err := takeUint(args, i, "--prime-n")
			if err != nil {
				return nil, err
			}
			flags.primeN = &v
			i++
		case "--matrix-n":
			v, err := takeUint(args, i, "--matrix-n")
			if err != nil {
				return nil, err
			}
			flags.matrixN = &v
			i++
		case "-c", "--config":
			value, err := takeValue(args, i, args[i])
			if err != nil {
				return nil, err
			}
			flags.configFile = value
			i++
		case "--format":
			value, err := takeValue(args, i, "--format")
			if err != nil {
				return nil, err
			}
			flags.format = &value
			i++
		case "--verbose":
			flags.verbose = true
		case "--no-color":
			flags.noColor = true
		case "-h", "--help":
			flags.help = true
			return flags, nil
		case "--version":
			flags.version = true
			return flags, nil
		default:
			return nil, fmt.Errorf("unknown flag: %s", args[i])
		}
	}

	return flags, nil
}

func takeValue(args []string, i int, name string) (string, error) {
	if i+1 >= len(args) {
		return "", fmt.Errorf("missing value for %s", name)
	}
	return args[i+1], nil
}

func takeUint(args []string, i int, name string) (uint64, error) {
	value, err := takeValue(args, i, name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value %q for %s", value, name)
	}
	return v, nil
}

// LoadFile reads and parses a YAML config file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &file, nil
}

func applyFile(opts *types.Options, logCfg *intconfig.LoggingConfig, file *File) {
	if file.Iterations != nil {
		opts.Iterations = *file.Iterations
	}
	if file.SumN != nil {
		opts.SumN = *file.SumN
	}
	if file.PrimeN != nil {
		opts.PrimeN = *file.PrimeN
	}
	if file.MatrixN != nil {
		opts.MatrixN = *file.MatrixN
	}
	if file.Format != nil {
		opts.Format = *file.Format
	}
	if file.Logging != nil {
		*logCfg = *file.Logging
	}
}

func applyFlags(opts *types.Options, flags *flagValues) {
	if flags.iterations != nil {
		opts.Iterations = *flags.iterations
	}
	if flags.sumN != nil {
		opts.SumN = *flags.sumN
	}
	if flags.primeN != nil {
		opts.PrimeN = *flags.primeN
	}
	if flags.matrixN != nil {
		opts.MatrixN = *flags.matrixN
	}
	if flags.format != nil {
		opts.Format = *flags.format
	}
	opts.Verbose = flags.verbose
	opts.NoColor = flags.noColor
}

func validate(opts *types.Options, logCfg *intconfig.LoggingConfig) error {
	if opts.Iterations <= 0 {
		return fmt.Errorf("--iterations must be greater than zero")
	}

	switch opts.Format {
	case types.FormatCSV, types.FormatJSON, types.FormatTable:
	default:
		return fmt.Errorf("invalid format: %s (must be csv, json, or table)", opts.Format)
	}

	if err := logCfg.Validate(); err != nil {
		return fmt.Errorf("invalid logging configuration: %w", err)
	}

	return nil
}
