package ppu

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/ushitora-anqou/gbcore/bus"
	"github.com/ushitora-anqou/gbcore/constant"
)

func pixel(p *PPU, x, y int) uint8 {
	return p.Frame()[(y*LCD_WIDTH+x)*4]
}

// drawFirstLine runs a fresh PPU up to the HBlank of line 0.
func drawFirstLine(p *PPU) {
	p.Advance(oamTicks + vramTicks + 4)
}

func setObject(p *PPU, index int, y, x, tile, attr uint8) {
	base := uint16(0xfe00 + index*4)
	p.Set8(base, y)
	p.Set8(base+1, x)
	p.Set8(base+2, tile)
	p.Set8(base+3, attr)
}

func TestPowerOn(t *testing.T) {
	p := NewPPU()
	assert.Equal(t, uint8(0x91), p.Get8(0xff40))
	assert.Equal(t, uint8(0xfc), p.Get8(0xff47))
	assert.Equal(t, uint8(0xff), p.Get8(0xff48))
	assert.Equal(t, uint8(0xff), p.Get8(0xff49))
	assert.Len(t, p.Frame(), constant.LCD_BYTES)
	for _, b := range p.Frame() {
		if b != 0xff {
			t.Fatalf("framebuffer not blank: %02x", b)
		}
	}
}

func TestModeSequence(t *testing.T) {
	p := NewPPU()

	p.Advance(4)
	assert.Equal(t, uint8(MODE_OAM), p.Mode())
	p.Advance(80)
	assert.Equal(t, uint8(MODE_VRAM), p.Mode())
	p.Advance(172)
	assert.Equal(t, uint8(MODE_HBLANK), p.Mode())
	assert.Equal(t, uint8(0), p.LY())
	p.Advance(200)
	assert.Equal(t, uint8(1), p.LY())
	assert.Equal(t, uint8(MODE_OAM), p.Mode())
	assert.Equal(t, uint8(0x80|MODE_OAM), p.Get8(0xff41)&0x83)
}

func TestVBlank(t *testing.T) {
	p := NewPPU()

	raised := p.Advance(constant.VISIBLE_SCANLINES * constant.SCANLINE_TICKS)
	assert.Equal(t, uint8(constant.VISIBLE_SCANLINES), p.LY())
	assert.Equal(t, uint8(MODE_VBLANK), p.Mode())
	assert.Equal(t, uint8(bus.VBlank), raised&uint8(bus.VBlank))
	assert.Equal(t, uint8(0), raised&uint8(bus.LCD))
	assert.True(t, p.FrameReady())

	p.ClearFrameReady()
	assert.False(t, p.FrameReady())

	raised = p.Advance(9 * constant.SCANLINE_TICKS)
	assert.Equal(t, uint8(153), p.LY())
	assert.Equal(t, uint8(MODE_VBLANK), p.Mode())
	assert.Equal(t, uint8(0), raised)

	p.Advance(constant.SCANLINE_TICKS)
	assert.Equal(t, uint8(0), p.LY())
	assert.Equal(t, uint8(MODE_OAM), p.Mode())
}

func TestVBlankStatSource(t *testing.T) {
	p := NewPPU()
	p.Set8(0xff41, STAT_VBLANK_INT)
	raised := p.Advance(constant.VISIBLE_SCANLINES * constant.SCANLINE_TICKS)
	assert.Equal(t, uint8(bus.VBlank|bus.LCD), raised)
}

func TestHBlankStatSource(t *testing.T) {
	p := NewPPU()
	raised := p.Advance(oamTicks + vramTicks + 4)
	assert.Equal(t, uint8(0), raised)

	p = NewPPU()
	p.Set8(0xff41, STAT_HBLANK_INT)
	raised = p.Advance(oamTicks + vramTicks + 4)
	assert.Equal(t, uint8(bus.LCD), raised)
}

func TestCoincidence(t *testing.T) {
	p := NewPPU()
	p.Set8(0xff41, STAT_LYC_INT)
	p.Set8(0xff45, 2)

	raised := p.Advance(constant.SCANLINE_TICKS)
	assert.Equal(t, uint8(0), raised&uint8(bus.LCD))
	assert.Equal(t, uint8(0), p.Get8(0xff41)&0x04)

	raised = p.Advance(constant.SCANLINE_TICKS)
	assert.Equal(t, uint8(2), p.LY())
	assert.Equal(t, uint8(bus.LCD), raised&uint8(bus.LCD))
	assert.Equal(t, uint8(0x04), p.Get8(0xff41)&0x04)

	// Staying on the line does not raise it again.
	raised = p.Advance(100)
	assert.Equal(t, uint8(0), raised&uint8(bus.LCD))
}

func TestSTATWrite(t *testing.T) {
	p := NewPPU()
	p.Set8(0xff41, 0xff)
	assert.Equal(t, uint8(0x78), p.Get8(0xff41)&0x78)
	assert.Equal(t, uint8(0x80), p.Get8(0xff41)&0x80)
}

func TestLCDOff(t *testing.T) {
	p := NewPPU()
	p.Set8(0x8000, 0xff)
	p.Set8(0xff47, 0xe4)
	p.Advance(10 * constant.SCANLINE_TICKS)
	assert.Equal(t, uint8(192), pixel(p, 0, 0))

	p.Set8(0xff40, 0x11)
	assert.Equal(t, uint8(0), p.LY())
	assert.Equal(t, uint8(MODE_HBLANK), p.Mode())
	assert.True(t, p.FrameReady())
	assert.Equal(t, uint8(0xff), pixel(p, 0, 0))
	assert.Equal(t, uint8(0x11), p.Get8(0xff40))

	assert.Equal(t, uint8(0), p.Advance(5*constant.SCANLINE_TICKS))
	assert.Equal(t, uint8(0), p.LY())
}

func TestPalettes(t *testing.T) {
	p := NewPPU()
	p.Set8(0xff47, 0xe4)
	assert.Equal(t, [4]uint8{255, 192, 96, 0}, p.palB)
	assert.Equal(t, uint8(0xe4), p.Get8(0xff47))

	p.Set8(0xff48, 0x1b)
	assert.Equal(t, [4]uint8{0, 96, 192, 255}, p.pal0)
	p.Set8(0xff49, 0x00)
	assert.Equal(t, [4]uint8{255, 255, 255, 255}, p.pal1)
}

func TestBackground(t *testing.T) {
	p := NewPPU()
	p.Set8(0xff47, 0xe4)
	p.Set8(0x8000, 0xff) // tile 0, row 0 -> color 1
	p.Set8(0x8003, 0xff) // tile 0, row 1 -> color 2

	drawFirstLine(p)
	assert.Equal(t, uint8(192), pixel(p, 0, 0))
	assert.Equal(t, uint8(192), pixel(p, 159, 0))
	assert.Equal(t, uint8(0xff), p.Frame()[3])

	p.Advance(constant.SCANLINE_TICKS)
	assert.Equal(t, uint8(96), pixel(p, 0, 1))
}

func TestBackgroundScroll(t *testing.T) {
	p := NewPPU()
	p.Set8(0xff47, 0xe4)
	p.Set8(0x8010, 0xff) // tile 1, row 0
	p.Set8(0x9801, 1)
	p.Set8(0xff43, 4)

	drawFirstLine(p)
	assert.Equal(t, uint8(255), pixel(p, 3, 0))
	assert.Equal(t, uint8(192), pixel(p, 4, 0))
	assert.Equal(t, uint8(192), pixel(p, 11, 0))
	assert.Equal(t, uint8(255), pixel(p, 12, 0))
}

func TestSignedTileData(t *testing.T) {
	p := NewPPU()
	p.Set8(0xff47, 0xe4)
	p.Set8(0xff40, 0x81) // 0x8800 tile data
	p.Set8(0x9800, 0x80) // tile -128 lives at 0x8800
	p.Set8(0x8800, 0xff)
	p.Set8(0x8801, 0xff)

	drawFirstLine(p)
	assert.Equal(t, uint8(0), pixel(p, 0, 0))
	assert.Equal(t, uint8(255), pixel(p, 8, 0))
}

func TestBackgroundDisabled(t *testing.T) {
	p := NewPPU()
	p.Set8(0xff47, 0xe4)
	p.Set8(0x8000, 0xff)
	p.Set8(0xff40, 0x90)

	drawFirstLine(p)
	assert.Equal(t, uint8(255), pixel(p, 0, 0))
}

func TestWindow(t *testing.T) {
	p := NewPPU()
	p.Set8(0xff47, 0xe4)
	p.Set8(0x8020, 0xff)
	p.Set8(0x8021, 0xff)
	p.Set8(0x9c00, 2)
	p.Set8(0xff4b, 7+80)
	p.Set8(0xff40, 0x91|LCDC_WINDOW_ENABLE|LCDC_WINDOW_MAP)

	drawFirstLine(p)
	assert.Equal(t, uint8(255), pixel(p, 79, 0))
	assert.Equal(t, uint8(0), pixel(p, 80, 0))
	assert.Equal(t, uint8(0), pixel(p, 87, 0))
	assert.Equal(t, uint8(255), pixel(p, 88, 0))
}

func TestWindowDisabled(t *testing.T) {
	p := NewPPU()
	p.Set8(0xff47, 0xe4)
	p.Set8(0x8020, 0xff)
	p.Set8(0x8021, 0xff)
	p.Set8(0x9c00, 2)
	p.Set8(0xff40, 0x91|LCDC_WINDOW_MAP)

	drawFirstLine(p)
	assert.Equal(t, uint8(255), pixel(p, 0, 0))
	assert.Equal(t, -1, p.wyPos)
}

func TestWindowLineCounter(t *testing.T) {
	p := NewPPU()
	p.Set8(0xff4a, 3)
	p.Set8(0xff40, 0x91|LCDC_WINDOW_ENABLE)

	p.Advance(3 * constant.SCANLINE_TICKS)
	assert.False(t, p.wyTrigger)
	p.Advance(oamTicks + vramTicks + 4)
	assert.True(t, p.wyTrigger)
	assert.Equal(t, 0, p.wyPos)
	p.Advance(constant.SCANLINE_TICKS)
	assert.Equal(t, 1, p.wyPos)

	p.Advance(constant.VISIBLE_SCANLINES * constant.SCANLINE_TICKS)
	assert.False(t, p.wyTrigger)
}

func TestSpriteOrderByIndex(t *testing.T) {
	p := NewPPU()
	p.Set8(0xff40, 0x91|LCDC_OBJ_ENABLE)
	p.Set8(0xff48, 0xe4) // color 1 -> 192
	p.Set8(0xff49, 0x1b) // color 1 -> 96
	p.Set8(0x8010, 0xff) // tile 1, row 0 -> color 1

	setObject(p, 7, 16, 8, 1, 0x10)
	setObject(p, 3, 16, 8, 1, 0x00)

	drawFirstLine(p)
	assert.Equal(t, uint8(192), pixel(p, 0, 0))
	assert.Equal(t, uint8(192), pixel(p, 7, 0))
	assert.Equal(t, uint8(255), pixel(p, 8, 0))
}

func TestSpriteOrderByX(t *testing.T) {
	p := NewPPU()
	p.Set8(0xff40, 0x91|LCDC_OBJ_ENABLE)
	p.Set8(0xff48, 0xe4)
	p.Set8(0xff49, 0x1b)
	p.Set8(0x8010, 0xff)

	setObject(p, 1, 16, 14, 1, 0x10) // screen x 6..13
	setObject(p, 5, 16, 10, 1, 0x00) // screen x 2..9

	drawFirstLine(p)
	assert.Equal(t, uint8(192), pixel(p, 2, 0))
	assert.Equal(t, uint8(192), pixel(p, 7, 0))
	assert.Equal(t, uint8(192), pixel(p, 9, 0))
	assert.Equal(t, uint8(96), pixel(p, 10, 0))
	assert.Equal(t, uint8(96), pixel(p, 13, 0))
}

func TestSpriteLimitPerLine(t *testing.T) {
	p := NewPPU()
	p.Set8(0xff40, 0x91|LCDC_OBJ_ENABLE)
	p.Set8(0xff48, 0xe4)
	p.Set8(0x8010, 0xff)

	for i := 0; i < maxObjectsPerLine; i++ {
		setObject(p, i, 16, 8, 1, 0)
	}
	setObject(p, maxObjectsPerLine, 16, 108, 1, 0)

	drawFirstLine(p)
	assert.Equal(t, uint8(192), pixel(p, 0, 0))
	assert.Equal(t, uint8(255), pixel(p, 100, 0))
}

func TestSpriteTransparencyAndFlip(t *testing.T) {
	p := NewPPU()
	p.Set8(0xff40, 0x91|LCDC_OBJ_ENABLE)
	p.Set8(0xff47, 0xe4)
	p.Set8(0xff48, 0xe4)
	p.Set8(0x8000, 0xff)
	p.Set8(0x8001, 0xff) // background tile 0 row 0 -> color 3
	p.Set8(0x8010, 0x80) // tile 1 row 0 -> only the leftmost pixel
	p.Set8(0x801e, 0x40) // tile 1 row 7

	setObject(p, 0, 16, 8, 1, 0x00)
	setObject(p, 1, 16, 40, 1, 0x20)
	setObject(p, 2, 16, 80, 1, 0x40)

	drawFirstLine(p)
	assert.Equal(t, uint8(192), pixel(p, 0, 0))
	assert.Equal(t, uint8(0), pixel(p, 1, 0))
	assert.Equal(t, uint8(0), pixel(p, 32, 0))
	assert.Equal(t, uint8(192), pixel(p, 39, 0))
	assert.Equal(t, uint8(192), pixel(p, 73, 0))
	assert.Equal(t, uint8(0), pixel(p, 72, 0))
}

func TestSpriteClipped(t *testing.T) {
	p := NewPPU()
	p.Set8(0xff40, 0x91|LCDC_OBJ_ENABLE)
	p.Set8(0xff48, 0xe4)
	p.Set8(0x8010, 0xff)

	setObject(p, 0, 16, 4, 1, 0) // screen x -4
	drawFirstLine(p)
	assert.Equal(t, uint8(192), pixel(p, 0, 0))
	assert.Equal(t, uint8(192), pixel(p, 3, 0))
	assert.Equal(t, uint8(255), pixel(p, 4, 0))
}

func TestTallSprite(t *testing.T) {
	p := NewPPU()
	p.Set8(0xff40, 0x91|LCDC_OBJ_ENABLE|LCDC_OBJ_SIZE)
	p.Set8(0xff48, 0xe4)
	p.Set8(0x8020, 0xff) // tile 2 row 0

	setObject(p, 0, 16, 8, 3, 0)
	drawFirstLine(p)
	assert.Equal(t, uint8(192), pixel(p, 0, 0))
}
