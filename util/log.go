package util

import (
	"github.com/retroenv/retrogolib/log"
)

var (
	flagEnableTrace bool = false
	logger               = newQuietLogger()
)

func newQuietLogger() *log.Logger {
	cfg := log.DefaultConfig()
	cfg.Level = log.ErrorLevel
	return log.NewWithConfig(cfg)
}

func EnableTrace() {
	flagEnableTrace = true
}

func DisableTrace() {
	flagEnableTrace = false
}

func TraceEnabled() bool {
	return flagEnableTrace
}

// SetLogger replaces the logger shared by the emulation packages.
// A nil logger restores the default, which only reports errors.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = newQuietLogger()
	}
	logger = l
}

func Logger() *log.Logger {
	return logger
}

func Trace(msg string, fields ...log.Field) {
	if flagEnableTrace {
		logger.Debug(msg, fields...)
	}
}
