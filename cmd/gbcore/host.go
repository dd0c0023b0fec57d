//go:build !ebiten && !sdl2

package main

import (
	"errors"

	"github.com/retroenv/retrogolib/log"

	"github.com/ushitora-anqou/gbcore"
)

const hostAvailable = false

func runHost(logger *log.Logger, gb *gbcore.GameBoy, options optionFlags) error {
	return errors.New("no graphical host compiled in, rebuild with -tags ebiten or -tags sdl2")
}
