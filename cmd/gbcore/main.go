// Package main implements a command line front end for the gbcore emulator.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"

	"github.com/ushitora-anqou/gbcore"
	"github.com/ushitora-anqou/gbcore/statsview"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	options, err := readArguments(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}
	if options.version {
		fmt.Printf("gbcore version: %s\n", buildinfo.Version(version, commit, date))
		return
	}

	logger := createLogger(options.debug || options.trace, options.quiet)
	logger.Info("gbcore", log.String("version", buildinfo.Version(version, commit, date)))

	if err := run(ctx, logger, options); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info("Emulation cancelled")
			return
		}
		logger.Fatal(err.Error())
	}
}

func run(ctx context.Context, logger *log.Logger, options optionFlags) error {
	if filename := os.Getenv("GBCORE_CPUPROFILE"); filename != "" {
		file, err := os.Create(filename)
		if err != nil {
			return fmt.Errorf("creating cpu profile '%s': %w", filename, err)
		}
		defer func() { _ = file.Close() }()
		if err := pprof.StartCPUProfile(file); err != nil {
			return fmt.Errorf("starting cpu profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	if options.statsview {
		statsview.Launch(logger)
	}

	rom, err := os.ReadFile(options.input)
	if err != nil {
		return fmt.Errorf("reading ROM file '%s': %w", options.input, err)
	}

	gb, err := gbcore.New(rom,
		gbcore.WithLogger(logger),
		gbcore.WithTrace(options.trace),
	)
	if err != nil {
		return fmt.Errorf("initializing emulator: %w", err)
	}

	if options.headless || !hostAvailable {
		return runHeadless(ctx, logger, gb, options, os.Stdout)
	}
	return runHost(logger, gb, options)
}
