package mmu

import (
	"github.com/retroenv/retrogolib/log"
	"github.com/ushitora-anqou/gbcore/joypad"
	"github.com/ushitora-anqou/gbcore/ppu"
	"github.com/ushitora-anqou/gbcore/timer"
	"github.com/ushitora-anqou/gbcore/util"
)

const (
	WRAM_BANK_SIZE = 0x1000
	WRAM_BANKS     = 8
	HRAM_SIZE      = 0x7f
	OAM_DMA_LENGTH = 0xa0
)

type MMU struct {
	/*
		GENERAL MEMORY MAP
		Thanks to: https://gbdev.gg8.se/wiki/articles/Memory_Map

		0000-3FFF  16KB ROM bank 00 	From cartridge
		4000-7FFF  16KB ROM Bank 01-NN 	From cartridge, switchable
		8000-9FFF  8KB Video RAM (VRAM)
		A000-BFFF  8KB External RAM     Not mapped
		C000-CFFF  4KB Work RAM (WRAM)  Bank 0
		D000-DFFF  4KB Work RAM (WRAM)  Bank 1-7, selected by SVBK
		E000-FDFF  Mirror of C000-DDFF (ECHO RAM)
		FE00-FE9F  Sprite attribute table (OAM)
		FEA0-FEFF  Not Usable
		FF00-FF7F  I/O Registers
		FF80-FFFE  High RAM (HRAM)
		FFFF-FFFF  Interrupts Enable Register (IE)
	*/
	mbc    *BankController
	ppu    *ppu.PPU
	timer  *timer.Timer
	joypad *joypad.Joypad

	wram     [WRAM_BANK_SIZE * WRAM_BANKS]uint8
	hram     [HRAM_SIZE]uint8
	wramBank int
	ie, ifl  uint8
}

func NewMMU(rom []uint8) (*MMU, error) {
	cat, err := NewCartridge(rom)
	if err != nil {
		return nil, err
	}
	mmu := &MMU{
		mbc:      NewBankController(cat),
		ppu:      ppu.NewPPU(),
		timer:    timer.NewTimer(),
		joypad:   joypad.NewJoypad(),
		wramBank: 1,
	}
	return mmu, nil
}

func (mmu *MMU) PPU() *ppu.PPU {
	return mmu.ppu
}

func (mmu *MMU) BankController() *BankController {
	return mmu.mbc
}

func (mmu *MMU) IE() uint8 {
	return mmu.ie
}

func (mmu *MMU) IF() uint8 {
	return mmu.ifl
}

func (mmu *MMU) SetIF(val uint8) {
	mmu.ifl = val & 0x1f
}

// Tick advances the PPU and the timer and latches whatever they raised.
func (mmu *MMU) Tick(cycles uint) {
	mmu.ifl |= mmu.ppu.Advance(cycles)
	mmu.ifl |= mmu.timer.Update(cycles)
}

func (mmu *MMU) Press(b joypad.Button) {
	mmu.ifl |= mmu.joypad.Press(b)
}

func (mmu *MMU) Release(b joypad.Button) {
	mmu.ifl |= mmu.joypad.Release(b)
}

// DMA copies 0xa0 bytes from src<<8 into OAM at once.
func (mmu *MMU) DMA(src uint8) {
	if util.TraceEnabled() {
		util.Trace("OAM DMA", log.Hex("source", uint16(src)<<8))
	}
	base := uint16(src) << 8
	for i := uint16(0); i < OAM_DMA_LENGTH; i++ {
		mmu.ppu.Set8(0xfe00+i, mmu.Get8(base+i))
	}
}

func (mmu *MMU) bankedWRAMIndex(addr uint16) int {
	return mmu.wramBank*WRAM_BANK_SIZE | int(addr&0x0fff)
}

func (mmu *MMU) Set8(addr uint16, val uint8) {
	switch {
	case addr <= 0x7fff:
		mmu.mbc.Write(addr, val)
		return
	case 0x8000 <= addr && addr <= 0x9fff:
		mmu.ppu.Set8(addr, val)
		return
	case 0xc000 <= addr && addr <= 0xcfff, 0xe000 <= addr && addr <= 0xefff:
		mmu.wram[addr&0x0fff] = val
		return
	case 0xd000 <= addr && addr <= 0xdfff, 0xf000 <= addr && addr <= 0xfdff:
		mmu.wram[mmu.bankedWRAMIndex(addr)] = val
		return
	case 0xfe00 <= addr && addr <= 0xfe9f:
		mmu.ppu.Set8(addr, val)
		return
	case 0xff80 <= addr && addr <= 0xfffe:
		mmu.hram[addr-0xff80] = val
		return
	}

	switch addr {
	case 0xff00:
		mmu.joypad.Set(val)
	case 0xff04:
		mmu.timer.ResetDIV()
	case 0xff05:
		mmu.timer.SetTIMA(val)
	case 0xff06:
		mmu.timer.SetTMA(val)
	case 0xff07:
		if util.TraceEnabled() {
			util.Trace("WRITE: TAC", log.Hex("value", val))
		}
		mmu.timer.SetTAC(val)
	case 0xff0f:
		mmu.SetIF(val)
	case 0xff40, 0xff41, 0xff42, 0xff43, 0xff44, 0xff45,
		0xff47, 0xff48, 0xff49, 0xff4a, 0xff4b:
		if util.TraceEnabled() {
			util.Trace("WRITE: LCD register", log.Hex("address", addr), log.Hex("value", val))
		}
		mmu.ppu.Set8(addr, val)
	case 0xff46:
		mmu.DMA(val)
	case 0xff70:
		bank := int(val & 0x07)
		if bank == 0 {
			bank = 1
		}
		if util.TraceEnabled() {
			util.Trace("WRITE: SVBK", log.Int("bank", bank))
		}
		mmu.wramBank = bank
	case 0xffff:
		if util.TraceEnabled() {
			util.Trace("WRITE: IE", log.Hex("value", val))
		}
		mmu.ie = val
	default:
		if util.TraceEnabled() {
			util.Trace("WRITE: unmapped", log.Hex("address", addr), log.Hex("value", val))
		}
	}
}

func (mmu *MMU) Get8(addr uint16) uint8 {
	switch {
	case addr <= 0x7fff:
		return mmu.mbc.Read(addr)
	case 0x8000 <= addr && addr <= 0x9fff:
		return mmu.ppu.Get8(addr)
	case 0xc000 <= addr && addr <= 0xcfff, 0xe000 <= addr && addr <= 0xefff:
		return mmu.wram[addr&0x0fff]
	case 0xd000 <= addr && addr <= 0xdfff, 0xf000 <= addr && addr <= 0xfdff:
		return mmu.wram[mmu.bankedWRAMIndex(addr)]
	case 0xfe00 <= addr && addr <= 0xfe9f:
		return mmu.ppu.Get8(addr)
	case 0xff80 <= addr && addr <= 0xfffe:
		return mmu.hram[addr-0xff80]
	}

	switch addr {
	case 0xff00:
		return mmu.joypad.Get()
	case 0xff04:
		return mmu.timer.DIV()
	case 0xff05:
		return mmu.timer.TIMA()
	case 0xff06:
		return mmu.timer.TMA()
	case 0xff07:
		return mmu.timer.TAC()
	case 0xff0f:
		return mmu.ifl | 0xe0
	case 0xff40, 0xff41, 0xff42, 0xff43, 0xff44, 0xff45,
		0xff47, 0xff48, 0xff49, 0xff4a, 0xff4b:
		return mmu.ppu.Get8(addr)
	case 0xff70:
		return 0xf8 | uint8(mmu.wramBank)
	case 0xffff:
		return mmu.ie
	}
	return 0xff
}

func (mmu *MMU) Get16(addr uint16) uint16 {
	lo := mmu.Get8(addr)
	hi := mmu.Get8(addr + 1)
	return (uint16(hi) << 8) | uint16(lo)
}

func (mmu *MMU) Set16(addr uint16, val uint16) {
	mmu.Set8(addr, uint8(val&0xff))
	mmu.Set8(addr+1, uint8(val>>8))
}
