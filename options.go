package gbcore

import (
	"github.com/retroenv/retrogolib/log"
)

type options struct {
	logger      *log.Logger
	trace       *bool
	frameCycles uint
}

// Option configures a GameBoy.
type Option func(*options)

// WithLogger routes the emulator's diagnostics to logger. The logger is shared
// by every GameBoy in the process; the last New given a logger wins.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithTrace enables per-instruction and per-register-write trace logging
// at debug level. Like the logger, the trace switch is process-wide: it
// affects every GameBoy, and New leaves it untouched when this option is
// not given.
func WithTrace(enabled bool) Option {
	return func(o *options) {
		o.trace = &enabled
	}
}

// WithFrameCycles overrides the clock budget of one AdvanceOneFrame call.
func WithFrameCycles(cycles uint) Option {
	return func(o *options) {
		if cycles > 0 {
			o.frameCycles = cycles
		}
	}
}
