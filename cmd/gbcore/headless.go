package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/retroenv/retrogolib/log"
	"golang.org/x/term"

	"github.com/ushitora-anqou/gbcore"
	"github.com/ushitora-anqou/gbcore/constant"
	"github.com/ushitora-anqou/gbcore/window"
)

// runHeadless emulates a fixed number of frames as fast as possible, then
// saves and previews the last one.
func runHeadless(ctx context.Context, logger *log.Logger, gb *gbcore.GameBoy, options optionFlags, stdout io.Writer) error {
	start := time.Now()
	frame := gb.Frame()
	for i := 0; i < options.frames; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		var err error
		frame, err = gb.AdvanceOneFrame()
		if err != nil {
			return err
		}
	}
	elapsed := time.Since(start)
	logger.Info("Emulation finished",
		log.Int("frames", int(gb.Frames())),
		log.String("elapsed", elapsed.Round(time.Millisecond).String()))

	if options.png != "" {
		if err := writePNG(options.png, frame, options.scale); err != nil {
			return err
		}
		logger.Info("Frame saved", log.String("file", options.png))
	}

	if cols, ok := previewWidth(stdout, options); ok {
		if err := window.Preview(stdout, frame, cols); err != nil {
			return fmt.Errorf("drawing preview: %w", err)
		}
	}
	return nil
}

func writePNG(name string, frame []uint8, scale int) error {
	file, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("creating file '%s': %w", name, err)
	}
	if err := window.WritePNG(file, frame, scale); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing file: %w", err)
	}
	return nil
}

// previewWidth decides whether to draw the terminal preview and how many
// columns it may use.
func previewWidth(stdout io.Writer, options optionFlags) (int, bool) {
	if options.noPreview {
		return 0, false
	}
	cols := constant.LCD_WIDTH / 2
	f, isFile := stdout.(*os.File)
	if isFile && term.IsTerminal(int(f.Fd())) {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			cols = min(width, constant.LCD_WIDTH)
		}
		return cols, true
	}
	return cols, options.preview
}
