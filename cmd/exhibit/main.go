package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/exhibit/internal/app"
	"github.com/katalvlaran/exhibit/internal/cli"
)

// main is the entrypoint for the exhibit tool.
func main() {
	if err := run(os.Stdin, os.Stdout, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run wires flags, logging and the app together; split out of main for tests.
func run(in io.Reader, outW io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger, err := cfg.Log.Logger()
	if err != nil {
		return &cli.ExitError{Code: 2, Message: err.Error()}
	}
	logger = logger.With(zap.String("run_id", uuid.New().String()))
	defer func() { _ = logger.Sync() }()

	logger.Debug("configuration resolved",
		zap.String("dataset", cfg.Dataset),
		zap.String("metric", cfg.Metric),
		zap.Strings("anchors", cfg.Anchors))

	if err := app.NewApp(in, outW, cfg, logger).Run(); err != nil {
		logger.Error("run failed", zap.Error(err))
		return err
	}

	return nil
}
