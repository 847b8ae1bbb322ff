package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/exhibit/config"
)

// ExitError is an error carrying the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...interface{}) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Parse processes command-line arguments. It returns the merged
// configuration, whether the program should exit cleanly (help was
// requested), or an ExitError for invalid usage.
//
// Precedence, lowest first: config.Default, the -config file, flags set on
// the command line.
func Parse(args []string, output io.Writer) (*config.Config, bool, error) {
	fs := flag.NewFlagSet("exhibit", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
exhibit - plan a museum exhibit from a collection dataset.

Usage:
  exhibit [options] [DATASET]

Arguments:
  DATASET
    CSV export of the collection (same as -data).

Options:
`)
		fs.PrintDefaults()
	}

	configPath := fs.String("config", "", "Path to a YAML configuration file.")
	fs.String("data", "", "Path to the collection CSV.")
	fs.String("metric", "", "Grouping metric: 'date', 'creator' or 'origin'. Asked interactively when empty.")
	fs.String("max-cost", "", "Largest similarity score that still links two works. Defaults per metric.")
	fs.String("anchors", "", "Comma-separated accession numbers of the anchor works. Asked interactively when empty.")
	fs.String("mst", "", "Spanning tree algorithm: 'prim' or 'kruskal'.")
	fs.String("log-level", "", "Logging level: 'debug', 'info', 'warn' or 'error'.")
	fs.String("log-format", "", "Log output format: 'json' or 'console'.")
	fs.Bool("weights", false, "Label edges with their similarity score.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, usageError("%s", err.Error())
	}
	if fs.NArg() > 1 {
		return nil, false, usageError("expected at most one dataset argument, got %d", fs.NArg())
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.ReadFile(*configPath)
		if err != nil {
			return nil, false, usageError("%s", err.Error())
		}
		cfg = loaded
	}

	var overrideErr error
	fs.Visit(func(f *flag.Flag) {
		if overrideErr == nil {
			overrideErr = apply(cfg, f.Name, f.Value.String())
		}
	})
	if overrideErr != nil {
		return nil, false, overrideErr
	}
	if fs.NArg() == 1 {
		cfg.Dataset = fs.Arg(0)
	}

	if cfg.Dataset == "" {
		fs.Usage()
		return nil, true, nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, false, usageError("%s", err.Error())
	}

	return cfg, false, nil
}

// apply copies one explicitly set flag into cfg.
func apply(cfg *config.Config, name, value string) error {
	switch name {
	case "data":
		cfg.Dataset = value
	case "metric":
		cfg.Metric = value
	case "max-cost":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return usageError("invalid max-cost %q: must be a number", value)
		}
		cfg.MaxCost = &v
	case "anchors":
		cfg.Anchors = splitList(value)
	case "mst":
		cfg.MST = strings.ToLower(value)
	case "log-level":
		cfg.Log.Level = strings.ToLower(value)
	case "log-format":
		cfg.Log.Format = strings.ToLower(value)
	case "weights":
		cfg.Weights = value == "true"
	}

	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}
