package ppu

import (
	"github.com/ushitora-anqou/gbcore/bus"
	"github.com/ushitora-anqou/gbcore/constant"
)

const (
	oamTicks  = 80
	vramTicks = 172
)

// Advance runs the LCD for the elapsed clocks and returns the interrupt bits
// raised along the way.
func (ppu *PPU) Advance(ticks uint) uint8 {
	if !ppu.lcdOn() {
		return 0
	}

	var raised uint8
	for ticks > 0 {
		cur := ticks
		if cur > oamTicks {
			cur = oamTicks
		}
		ppu.clock += cur
		ticks -= cur

		// A whole line went by; it may have been a visible or a vblank one.
		if ppu.clock >= constant.SCANLINE_TICKS {
			ppu.clock -= constant.SCANLINE_TICKS
			ppu.ly = uint8((int(ppu.ly) + 1) % constant.SCANLINES)
			if ppu.stat&STAT_LYC_INT != 0 && ppu.ly == ppu.lyc {
				raised |= uint8(bus.LCD)
			}

			if ppu.ly >= constant.VISIBLE_SCANLINES && ppu.mode != MODE_VBLANK {
				raised |= ppu.changeMode(MODE_VBLANK)
			}
		}

		if ppu.ly < constant.VISIBLE_SCANLINES {
			switch {
			case ppu.clock <= oamTicks:
				if ppu.mode != MODE_OAM {
					raised |= ppu.changeMode(MODE_OAM)
				}
			case ppu.clock <= oamTicks+vramTicks:
				if ppu.mode != MODE_VRAM {
					raised |= ppu.changeMode(MODE_VRAM)
				}
			default:
				if ppu.mode != MODE_HBLANK {
					raised |= ppu.changeMode(MODE_HBLANK)
				}
			}
		}
	}
	return raised
}

// changeMode enters mode, performs its side effect and returns the raised
// interrupt bits. HBlank only raises STAT when it is selected as a source.
func (ppu *PPU) changeMode(mode uint8) uint8 {
	ppu.mode = mode

	var raised uint8
	switch mode {
	case MODE_HBLANK:
		ppu.drawLine()
		if ppu.stat&STAT_HBLANK_INT != 0 {
			raised |= uint8(bus.LCD)
		}

	case MODE_VBLANK:
		ppu.wyTrigger = false
		ppu.frameReady = true
		raised |= uint8(bus.VBlank)
		if ppu.stat&STAT_VBLANK_INT != 0 {
			raised |= uint8(bus.LCD)
		}

	case MODE_OAM:
		if ppu.stat&STAT_OAM_INT != 0 {
			raised |= uint8(bus.LCD)
		}

	case MODE_VRAM:
		if !ppu.wyTrigger && ppu.ly == ppu.wy {
			ppu.wyTrigger = true
			ppu.wyPos = -1
		}
	}
	return raised
}
