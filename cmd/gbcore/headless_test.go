package main

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"

	"github.com/ushitora-anqou/gbcore"
	"github.com/ushitora-anqou/gbcore/constant"
	"github.com/ushitora-anqou/gbcore/util"
)

func newWaitLoop(t *testing.T) (*gbcore.GameBoy, *log.Logger) {
	t.Helper()
	rom := make([]uint8, 0x8000)
	rom[0x100] = 0x18 // JR -2
	rom[0x101] = 0xfe

	logger := log.NewTestLogger(t)
	t.Cleanup(func() { util.SetLogger(nil) })
	gb, err := gbcore.New(rom, gbcore.WithLogger(logger))
	assert.NoError(t, err)
	return gb, logger
}

func TestRunHeadless(t *testing.T) {
	gb, logger := newWaitLoop(t)
	name := filepath.Join(t.TempDir(), "frame.png")
	options := optionFlags{frames: 3, png: name, scale: 2, preview: true}

	var out bytes.Buffer
	assert.NoError(t, runHeadless(context.Background(), logger, gb, options, &out))
	assert.Equal(t, uint64(3), gb.Frames())
	assert.True(t, strings.Contains(out.String(), "▀"))

	file, err := os.Open(name)
	assert.NoError(t, err)
	defer func() { _ = file.Close() }()
	img, err := png.Decode(file)
	assert.NoError(t, err)
	assert.Equal(t, constant.LCD_WIDTH*2, img.Bounds().Dx())
	assert.Equal(t, constant.LCD_HEIGHT*2, img.Bounds().Dy())
}

func TestRunHeadlessNoPreview(t *testing.T) {
	gb, logger := newWaitLoop(t)
	options := optionFlags{frames: 1, scale: 1, preview: true, noPreview: true}

	var out bytes.Buffer
	assert.NoError(t, runHeadless(context.Background(), logger, gb, options, &out))
	assert.Equal(t, 0, out.Len())
}

func TestRunHeadlessCancelled(t *testing.T) {
	gb, logger := newWaitLoop(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := runHeadless(ctx, logger, gb, optionFlags{frames: 5, noPreview: true}, &bytes.Buffer{})
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, uint64(0), gb.Frames())
}
