//go:build ebiten

package main

import (
	"github.com/retroenv/retrogolib/log"

	"github.com/ushitora-anqou/gbcore"
	"github.com/ushitora-anqou/gbcore/window"
)

const hostAvailable = true

func runHost(logger *log.Logger, gb *gbcore.GameBoy, options optionFlags) error {
	logger.Info("Starting ebiten host", log.String("keys", window.KeyHelp()))
	return window.RunEbiten(gb, logger, options.scale)
}
