//go:build !statsview

package statsview

import (
	"github.com/retroenv/retrogolib/log"
)

// Launch only reports that the server was not compiled in.
func Launch(logger *log.Logger) {
	logger.Warn("Stats server not available, rebuild with -tags statsview")
}

// Available reports whether Launch starts a server.
func Available() bool {
	return false
}
