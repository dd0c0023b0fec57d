// Package gbcore emulates the CPU, memory map and LCD of the original
// monochrome Game Boy and produces one RGBA framebuffer per frame.
package gbcore

import (
	"fmt"

	"github.com/ushitora-anqou/gbcore/constant"
	"github.com/ushitora-anqou/gbcore/cpu"
	"github.com/ushitora-anqou/gbcore/joypad"
	"github.com/ushitora-anqou/gbcore/mmu"
	"github.com/ushitora-anqou/gbcore/util"
)

const (
	Width  = constant.LCD_WIDTH
	Height = constant.LCD_HEIGHT
)

type GameBoy struct {
	cpu         *cpu.CPU
	mmu         *mmu.MMU
	frameCycles uint
	frames      uint64
}

// New builds a powered-on machine around the cartridge image rom.
func New(rom []uint8, opts ...Option) (*GameBoy, error) {
	o := options{frameCycles: constant.FRAME_TICKS}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger != nil {
		util.SetLogger(o.logger)
	}
	if o.trace != nil {
		if *o.trace {
			util.EnableTrace()
		} else {
			util.DisableTrace()
		}
	}

	// Build the components
	mmu, err := mmu.NewMMU(rom)
	if err != nil {
		return nil, fmt.Errorf("creating memory map: %w", err)
	}
	cpu := cpu.NewCPU(mmu)

	return &GameBoy{
		cpu:         cpu,
		mmu:         mmu,
		frameCycles: o.frameCycles,
	}, nil
}

// AdvanceOneFrame runs the CPU until the LCD completes a frame or one frame's
// worth of clocks has elapsed, whichever comes first, and returns the
// framebuffer. The returned slice is reused by later calls.
func (gb *GameBoy) AdvanceOneFrame() ([]uint8, error) {
	ppu := gb.mmu.PPU()

	// Emulate one frame
	var elapsed uint
	for elapsed < gb.frameCycles {
		tick, err := gb.cpu.Step()
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", gb.frames, err)
		}
		elapsed += tick
		if ppu.FrameReady() {
			break
		}
	}
	ppu.ClearFrameReady()
	gb.frames++

	return ppu.Frame(), nil
}

// Frame returns the most recently rendered framebuffer: Width*Height pixels,
// four bytes (RGBA) each, row-major.
func (gb *GameBoy) Frame() []uint8 {
	return gb.mmu.PPU().Frame()
}

// Frames is the number of completed AdvanceOneFrame calls.
func (gb *GameBoy) Frames() uint64 {
	return gb.frames
}

func (gb *GameBoy) Press(b joypad.Button) {
	gb.mmu.Press(b)
}

func (gb *GameBoy) Release(b joypad.Button) {
	gb.mmu.Release(b)
}

func (gb *GameBoy) CPU() *cpu.CPU {
	return gb.cpu
}
