package ppu

import (
	"sort"
)

const maxObjectsPerLine = 10

func (ppu *PPU) setPixel(x, y int, shade uint8) {
	off := (y*LCD_WIDTH + x) * 4
	ppu.frame[off+0] = shade // r
	ppu.frame[off+1] = shade // g
	ppu.frame[off+2] = shade // b
	ppu.frame[off+3] = 0xff  // a
}

func (ppu *PPU) tileRow(addr uint16) (uint8, uint8) {
	return ppu.vram[addr&0x1fff], ppu.vram[(addr+1)&0x1fff]
}

func colorIndex(b1, b2 uint8, bit uint) int {
	return int((b1>>bit)&1) | int((b2>>bit)&1)<<1
}

func (ppu *PPU) drawLine() {
	ly := int(ppu.ly)
	for x := 0; x < LCD_WIDTH; x++ {
		ppu.setPixel(x, ly, shades[0])
	}
	ppu.drawBackground()
	ppu.drawSprites()
}

func (ppu *PPU) drawBackground() {
	if ppu.lcdc&LCDC_BG_ENABLE == 0 {
		return
	}

	winY := -1
	if ppu.wyTrigger && ppu.lcdc&LCDC_WINDOW_ENABLE != 0 && ppu.wx <= 166 {
		ppu.wyPos++
		winY = ppu.wyPos
	}
	winTileY := uint16(winY>>3) & (BG_TILES - 1)

	bgY := ppu.scy + ppu.ly // NOTE: wrap around
	bgTileY := uint16(bgY>>3) & (BG_TILES - 1)

	tileBase := ppu.tileBase()
	ly := int(ppu.ly)
	for x := 0; x < LCD_WIDTH; x++ {
		winX := x - (int(ppu.wx) - 7)
		bgX := ppu.scx + uint8(x) // NOTE: wrap around

		var mapBase, tileY, tileX, pixY uint16
		var pixX uint8
		if winY >= 0 && winX >= 0 {
			mapBase = ppu.windowTileMap()
			tileY = winTileY
			tileX = uint16(winX >> 3)
			pixY = uint16(winY & 0x07)
			pixX = uint8(winX & 0x07)
		} else {
			mapBase = ppu.bgTileMap()
			tileY = bgTileY
			tileX = uint16(bgX>>3) & (BG_TILES - 1)
			pixY = uint16(bgY & 0x07)
			pixX = bgX & 0x07
		}

		tileNo := ppu.vram[(mapBase+tileY*BG_TILES+tileX)&0x1fff]
		var tileAddr uint16
		if tileBase == 0x8000 {
			tileAddr = tileBase + uint16(tileNo)*16
		} else {
			tileAddr = tileBase + uint16(int16(int8(tileNo))+128)*16
		}

		b1, b2 := ppu.tileRow(tileAddr + pixY*2)
		ppu.setPixel(x, ly, ppu.palB[colorIndex(b1, b2, uint(7-pixX))])
	}
}

func (ppu *PPU) drawSprites() {
	if ppu.lcdc&LCDC_OBJ_ENABLE == 0 {
		return
	}

	line := int(ppu.ly)
	size := ppu.spriteSize()

	objs := ppu.objBuf[:0]
	for i := 0; i < len(ppu.oam)/4; i++ {
		o := newObject(ppu.oam[:], i)
		if line < o.screenY() || line >= o.screenY()+size {
			continue
		}
		objs = append(objs, o)
		if len(objs) >= maxObjectsPerLine {
			break
		}
	}
	sort.Sort(byXAndOAMIndex(objs))

	// Draw back to front so the highest priority object ends up on top.
	for i := len(objs) - 1; i >= 0; i-- {
		o := &objs[i]
		sx := o.screenX()
		if sx <= -8 || sx >= LCD_WIDTH {
			continue
		}

		tileNo := o.tileIndex
		if size == 16 {
			tileNo &= 0xfe
		}
		tileY := line - o.screenY()
		if o.yFlip() {
			tileY = size - 1 - tileY
		}
		b1, b2 := ppu.tileRow(uint16(tileNo)*16 + uint16(tileY)*2)

		pal := &ppu.pal0
		if o.paletteNumber() {
			pal = &ppu.pal1
		}

		for px := 0; px < 8; px++ {
			x := sx + px
			if x < 0 || x >= LCD_WIDTH {
				continue
			}
			bit := uint(7 - px)
			if o.xFlip() {
				bit = uint(px)
			}
			colnr := colorIndex(b1, b2, bit)
			if colnr == 0 { // transparent
				continue
			}
			ppu.setPixel(x, line, pal[colnr])
		}
	}
}
