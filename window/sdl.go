//go:build sdl2

package window

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/ushitora-anqou/gbcore/constant"
)

func SDLInitialize() error {
	return sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS)
}

func SDLQuit() {
	sdl.Quit()
}

type SDLWindow struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	held     WindowEvent
}

func NewSDLWindow(scale int) (*SDLWindow, error) {
	if scale < 1 {
		scale = constant.WINDOW_SCALE
	}
	window, err := sdl.CreateWindow(
		constant.WINDOW_TITLE,
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		int32(constant.LCD_WIDTH*scale),
		int32(constant.LCD_HEIGHT*scale),
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		_ = window.Destroy()
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	texture, err := renderer.CreateTexture(
		sdl.PIXELFORMAT_ARGB8888,
		sdl.TEXTUREACCESS_STREAMING,
		constant.LCD_WIDTH,
		constant.LCD_HEIGHT,
	)
	if err != nil {
		_ = renderer.Destroy()
		_ = window.Destroy()
		return nil, fmt.Errorf("creating texture: %w", err)
	}

	return &SDLWindow{
		window:   window,
		renderer: renderer,
		texture:  texture,
	}, nil
}

func (wind *SDLWindow) Destroy() {
	_ = wind.texture.Destroy()
	_ = wind.renderer.Destroy()
	_ = wind.window.Destroy()
}

func keyBinding(sym sdl.Keycode) (dir bool, mask uint8) {
	switch sym {
	case sdl.K_w:
		return true, 1 << constant.DIR_UP
	case sdl.K_a:
		return true, 1 << constant.DIR_LEFT
	case sdl.K_d:
		return true, 1 << constant.DIR_RIGHT
	case sdl.K_s:
		return true, 1 << constant.DIR_DOWN
	case sdl.K_k:
		return false, 1 << constant.ACT_A
	case sdl.K_j:
		return false, 1 << constant.ACT_B
	case sdl.K_RETURN:
		return false, 1 << constant.ACT_START
	case sdl.K_SPACE:
		return false, 1 << constant.ACT_SELECT
	}
	return false, 0
}

// HandleEvents drains the SDL event queue. It reports whether the user asked
// to quit, and the buttons held afterwards.
func (wind *SDLWindow) HandleEvents() (bool, WindowEvent) {
	escape := false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch ev := event.(type) {
		case *sdl.QuitEvent:
			escape = true

		case *sdl.KeyboardEvent:
			if ev.Keysym.Sym == sdl.K_ESCAPE {
				escape = true
				continue
			}
			dir, mask := keyBinding(ev.Keysym.Sym)
			field := &wind.held.Action
			if dir {
				field = &wind.held.Direction
			}
			switch ev.Type {
			case sdl.KEYDOWN:
				*field |= mask
			case sdl.KEYUP:
				*field &^= mask
			}
		}
	}

	return escape, wind.held
}

// UpdateScreen uploads an RGBA framebuffer and presents it.
func (wind *SDLWindow) UpdateScreen(frame []uint8) error {
	if len(frame) != frameBytes {
		return fmt.Errorf("invalid framebuffer length: expected %d, got %d", frameBytes, len(frame))
	}

	// Update the texture
	pixels, _, err := wind.texture.Lock(nil)
	if err != nil {
		return fmt.Errorf("locking texture: %w", err)
	}
	for off := 0; off < len(frame); off += 4 {
		pixels[off+0] = frame[off+2] // b
		pixels[off+1] = frame[off+1] // g
		pixels[off+2] = frame[off+0] // r
		pixels[off+3] = frame[off+3] // a
	}
	wind.texture.Unlock()

	// Present the scene
	if err := wind.renderer.Clear(); err != nil {
		return err
	}
	if err := wind.renderer.Copy(wind.texture, nil, nil); err != nil {
		return err
	}
	wind.renderer.Present()
	return nil
}

// NewSDLTimeSynchronizer paces frames on SDL's millisecond clock.
func NewSDLTimeSynchronizer(targetFPS float64) *TimeSynchronizer {
	return newTimeSynchronizer(
		targetFPS,
		func() int64 { return int64(sdl.GetTicks()) * 1000 },
		func(us int64) { sdl.Delay(uint32(us / 1000)) },
	)
}

// RunSDL drives emu until the window is closed or the emulator fails.
func RunSDL(emu Emulator, scale int) error {
	if err := SDLInitialize(); err != nil {
		return err
	}
	defer SDLQuit()

	wind, err := NewSDLWindow(scale)
	if err != nil {
		return err
	}
	defer wind.Destroy()

	input := NewInputTracker(emu)
	synchronizer := NewSDLTimeSynchronizer(constant.TARGET_FPS)
	for {
		escape, held := wind.HandleEvents()
		if escape {
			return nil
		}
		input.Apply(held)

		frame, err := emu.AdvanceOneFrame()
		if err != nil {
			return err
		}
		if err := wind.UpdateScreen(frame); err != nil {
			return err
		}
		synchronizer.MaySleep()
	}
}
