package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrogolib/log"
)

type optionFlags struct {
	input string

	frames    int
	png       string
	scale     int
	preview   bool
	noPreview bool
	headless  bool
	statsview bool

	debug   bool
	quiet   bool
	trace   bool
	version bool
}

var errUsage = errors.New("missing ROM file")

func newFlagSet(options *optionFlags, output io.Writer) *flag.FlagSet {
	flags := flag.NewFlagSet("gbcore", flag.ContinueOnError)
	flags.SetOutput(output)

	flags.IntVar(&options.frames, "frames", 60, "number of frames to emulate when running headless")
	flags.StringVar(&options.png, "png", "", "write the last frame to this PNG file when running headless")
	flags.IntVar(&options.scale, "scale", 4, "integer scale factor for the window and PNG output")
	flags.BoolVar(&options.preview, "preview", false, "always draw the last frame on the terminal when running headless")
	flags.BoolVar(&options.noPreview, "nopreview", false, "never draw the last frame on the terminal")
	flags.BoolVar(&options.headless, "headless", false, "run without a window even if a graphical host is compiled in")
	flags.BoolVar(&options.statsview, "statsview", false, "serve runtime statistics over HTTP")
	flags.BoolVar(&options.debug, "debug", false, "enable debug logging")
	flags.BoolVar(&options.quiet, "q", false, "perform operations quietly")
	flags.BoolVar(&options.trace, "trace", os.Getenv("GBCORE_TRACE") == "1", "trace every executed instruction and register write")
	flags.BoolVar(&options.version, "version", false, "print the version and exit")
	return flags
}

// readArguments parses args, which exclude the program name.
func readArguments(args []string, output io.Writer) (optionFlags, error) {
	options := optionFlags{}
	flags := newFlagSet(&options, output)

	if err := flags.Parse(args); err != nil {
		return options, err
	}
	if options.version {
		return options, nil
	}
	if flags.NArg() == 0 {
		fmt.Fprintf(output, "usage: gbcore [options] <ROM file>\n\n")
		flags.PrintDefaults()
		return options, errUsage
	}
	options.input = flags.Arg(0)
	if options.scale < 1 {
		options.scale = 1
	}
	return options, nil
}

// createLogger creates a logger with the level selected by the flags.
func createLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}
