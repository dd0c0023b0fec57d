package ppu

import (
	"github.com/ushitora-anqou/gbcore/constant"
)

const LCD_WIDTH = constant.LCD_WIDTH
const LCD_HEIGHT = constant.LCD_HEIGHT
const BG_TILES = 32

// STAT modes
const (
	MODE_HBLANK = 0
	MODE_VBLANK = 1
	MODE_OAM    = 2
	MODE_VRAM   = 3
)

// LCDC bits
const (
	LCDC_BG_ENABLE     = 1 << 0
	LCDC_OBJ_ENABLE    = 1 << 1
	LCDC_OBJ_SIZE      = 1 << 2
	LCDC_BG_MAP        = 1 << 3
	LCDC_BG_TILE       = 1 << 4
	LCDC_WINDOW_ENABLE = 1 << 5
	LCDC_WINDOW_MAP    = 1 << 6
	LCDC_LCD_ENABLE    = 1 << 7
)

// STAT interrupt sources
const (
	STAT_HBLANK_INT = 1 << 3
	STAT_VBLANK_INT = 1 << 4
	STAT_OAM_INT    = 1 << 5
	STAT_LYC_INT    = 1 << 6
	statSelectMask  = STAT_HBLANK_INT | STAT_VBLANK_INT | STAT_OAM_INT | STAT_LYC_INT
)

var shades = [4]uint8{
	constant.COLOR_WHITE,
	constant.COLOR_LIGHT_GRAY,
	constant.COLOR_DARK_GRAY,
	constant.COLOR_BLACK,
}

type PPU struct {
	vram [0x2000]uint8
	oam  [0xa0]uint8

	lcdc, stat, mode uint8
	ly, lyc          uint8
	scx, scy, wx, wy uint8
	bgp, obp0, obp1  uint8
	palB, pal0, pal1 [4]uint8
	clock            uint
	wyTrigger        bool
	wyPos            int
	objBuf           [maxObjectsPerLine]object

	frame      [constant.LCD_BYTES]uint8
	frameReady bool
}

// NewPPU returns a PPU in its post-boot state.
func NewPPU() *PPU {
	ppu := &PPU{
		lcdc:  0x91,
		mode:  MODE_HBLANK,
		bgp:   0xfc,
		obp0:  0xff,
		obp1:  0xff,
		wyPos: -1,
	}
	ppu.updatePalettes()
	ppu.blank()
	return ppu
}

func (ppu *PPU) lcdOn() bool {
	return ppu.lcdc&LCDC_LCD_ENABLE != 0
}

func (ppu *PPU) windowTileMap() uint16 {
	if ppu.lcdc&LCDC_WINDOW_MAP != 0 {
		return 0x9c00
	}
	return 0x9800
}

func (ppu *PPU) bgTileMap() uint16 {
	if ppu.lcdc&LCDC_BG_MAP != 0 {
		return 0x9c00
	}
	return 0x9800
}

func (ppu *PPU) tileBase() uint16 {
	if ppu.lcdc&LCDC_BG_TILE != 0 {
		return 0x8000
	}
	return 0x8800
}

func (ppu *PPU) spriteSize() int {
	if ppu.lcdc&LCDC_OBJ_SIZE != 0 {
		return 16
	}
	return 8
}

func (ppu *PPU) Mode() uint8 {
	return ppu.mode
}

func (ppu *PPU) LY() uint8 {
	return ppu.ly
}

func (ppu *PPU) LCDC() uint8 {
	return ppu.lcdc
}

func (ppu *PPU) STAT() uint8 {
	coincidence := uint8(0)
	if ppu.ly == ppu.lyc {
		coincidence = 1 << 2
	}
	return 0x80 | ppu.stat | coincidence | ppu.mode
}

// Frame is the RGBA framebuffer. Callers must treat it as read-only.
func (ppu *PPU) Frame() []uint8 {
	return ppu.frame[:]
}

func (ppu *PPU) FrameReady() bool {
	return ppu.frameReady
}

func (ppu *PPU) ClearFrameReady() {
	ppu.frameReady = false
}

func (ppu *PPU) SetLCDC(lcdc uint8) {
	ppu.lcdc = lcdc
	if !ppu.lcdOn() {
		ppu.clock = 0
		ppu.ly = 0
		ppu.mode = MODE_HBLANK
		ppu.wyTrigger = false
		ppu.blank()
		ppu.frameReady = true
	}
}

func (ppu *PPU) SetSTAT(stat uint8) {
	ppu.stat = stat & statSelectMask
}

func (ppu *PPU) blank() {
	for i := range ppu.frame {
		ppu.frame[i] = 0xff
	}
}

func palette(reg uint8) [4]uint8 {
	var pal [4]uint8
	for i := range pal {
		pal[i] = shades[(reg>>(2*i))&0x03]
	}
	return pal
}

func (ppu *PPU) updatePalettes() {
	ppu.palB = palette(ppu.bgp)
	ppu.pal0 = palette(ppu.obp0)
	ppu.pal1 = palette(ppu.obp1)
}

func (ppu *PPU) Get8(addr uint16) uint8 {
	switch {
	case 0x8000 <= addr && addr <= 0x9fff:
		return ppu.vram[addr-0x8000]
	case 0xfe00 <= addr && addr <= 0xfe9f:
		return ppu.oam[addr-0xfe00]
	}

	switch addr {
	case 0xff40:
		return ppu.LCDC()
	case 0xff41:
		return ppu.STAT()
	case 0xff42:
		return ppu.scy
	case 0xff43:
		return ppu.scx
	case 0xff44:
		return ppu.ly
	case 0xff45:
		return ppu.lyc
	case 0xff47:
		return ppu.bgp
	case 0xff48:
		return ppu.obp0
	case 0xff49:
		return ppu.obp1
	case 0xff4a:
		return ppu.wy
	case 0xff4b:
		return ppu.wx
	}
	return 0xff
}

func (ppu *PPU) Set8(addr uint16, val uint8) {
	switch {
	case 0x8000 <= addr && addr <= 0x9fff:
		ppu.vram[addr-0x8000] = val
		return
	case 0xfe00 <= addr && addr <= 0xfe9f:
		ppu.oam[addr-0xfe00] = val
		return
	}

	switch addr {
	case 0xff40:
		ppu.SetLCDC(val)
	case 0xff41:
		ppu.SetSTAT(val)
	case 0xff42:
		ppu.scy = val
	case 0xff43:
		ppu.scx = val
	case 0xff45:
		ppu.lyc = val
	case 0xff47:
		ppu.bgp = val
		ppu.updatePalettes()
	case 0xff48:
		ppu.obp0 = val
		ppu.updatePalettes()
	case 0xff49:
		ppu.obp1 = val
		ppu.updatePalettes()
	case 0xff4a:
		ppu.wy = val
	case 0xff4b:
		ppu.wx = val
	}
}
