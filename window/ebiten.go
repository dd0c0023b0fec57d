//go:build ebiten

package window

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/retroenv/retrogolib/log"

	"github.com/ushitora-anqou/gbcore/constant"
	"github.com/ushitora-anqou/gbcore/util"
)

// Game adapts an Emulator to ebiten's update/draw loop. Update advances
// exactly one emulated frame.
type Game struct {
	emu    Emulator
	input  *InputTracker
	logger *log.Logger
	frame  []uint8
	shots  int
}

func NewGame(emu Emulator, logger *log.Logger) *Game {
	return &Game{
		emu:    emu,
		input:  NewInputTracker(emu),
		logger: logger,
	}
}

// RunEbiten opens a window and blocks until it is closed or the emulator
// fails.
func RunEbiten(emu Emulator, logger *log.Logger, scale int) error {
	if scale < 1 {
		scale = constant.WINDOW_SCALE
	}
	ebiten.SetTPS(int(math.Round(constant.TARGET_FPS)))
	ebiten.SetWindowSize(constant.LCD_WIDTH*scale, constant.LCD_HEIGHT*scale)
	ebiten.SetWindowTitle(constant.WINDOW_TITLE)

	err := ebiten.RunGame(NewGame(emu, logger))
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

func ebitenEvent() WindowEvent {
	event := WindowEvent{}
	event.Direction |= util.BoolToU8(ebiten.IsKeyPressed(ebiten.KeyW)) << constant.DIR_UP
	event.Direction |= util.BoolToU8(ebiten.IsKeyPressed(ebiten.KeyA)) << constant.DIR_LEFT
	event.Direction |= util.BoolToU8(ebiten.IsKeyPressed(ebiten.KeyD)) << constant.DIR_RIGHT
	event.Direction |= util.BoolToU8(ebiten.IsKeyPressed(ebiten.KeyS)) << constant.DIR_DOWN
	event.Action |= util.BoolToU8(ebiten.IsKeyPressed(ebiten.KeyK)) << constant.ACT_A
	event.Action |= util.BoolToU8(ebiten.IsKeyPressed(ebiten.KeyJ)) << constant.ACT_B
	event.Action |= util.BoolToU8(ebiten.IsKeyPressed(ebiten.KeyEnter)) << constant.ACT_START
	event.Action |= util.BoolToU8(ebiten.IsKeyPressed(ebiten.KeySpace)) << constant.ACT_SELECT
	return event
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.screenshot()
	}

	g.input.Apply(ebitenEvent())
	frame, err := g.emu.AdvanceOneFrame()
	if err != nil {
		return err
	}
	g.frame = frame
	return nil
}

func (g *Game) screenshot() {
	if g.frame == nil {
		return
	}
	name := fmt.Sprintf("gbcore-%03d.png", g.shots)
	file, err := os.Create(name)
	if err != nil {
		g.logger.Error("Creating screenshot failed", log.Err(err))
		return
	}
	defer func() { _ = file.Close() }()
	if err := WritePNG(file, g.frame, constant.WINDOW_SCALE); err != nil {
		g.logger.Error("Writing screenshot failed", log.Err(err))
		return
	}
	g.shots++
	g.logger.Info("Screenshot saved", log.String("file", name))
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.frame != nil {
		screen.WritePixels(g.frame)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return constant.LCD_WIDTH, constant.LCD_HEIGHT
}
