//go:build sdl2 && !ebiten

package main

import (
	"github.com/retroenv/retrogolib/log"

	"github.com/ushitora-anqou/gbcore"
	"github.com/ushitora-anqou/gbcore/window"
)

const hostAvailable = true

func runHost(logger *log.Logger, gb *gbcore.GameBoy, options optionFlags) error {
	logger.Info("Starting SDL host", log.String("keys", window.KeyHelp()))
	return window.RunSDL(gb, options.scale)
}
