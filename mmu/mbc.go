package mmu

import (
	"github.com/retroenv/retrogolib/log"
	"github.com/ushitora-anqou/gbcore/util"
)

// BankController maps the 0x0000-0x7fff window onto the cartridge image.
// Bank 0 is fixed at 0x0000-0x3fff; the selected bank sits at 0x4000-0x7fff.
type BankController struct {
	cat                     *Cartridge
	romBankNumber, romBanks int
}

func NewBankController(cat *Cartridge) *BankController {
	return &BankController{
		cat:           cat,
		romBankNumber: 1,
		romBanks:      cat.Banks(),
	}
}

func (mbc *BankController) Bank() int {
	return mbc.romBankNumber
}

func (mbc *BankController) Banks() int {
	return mbc.romBanks
}

func (mbc *BankController) getROMIndex(addr uint16) int {
	bank := 0
	if addr >= 0x4000 {
		bank = mbc.romBankNumber
	}
	return bank*ROM_BANK_SIZE | int(addr&0x3fff)
}

func (mbc *BankController) Read(addr uint16) uint8 {
	return mbc.cat.get8(mbc.getROMIndex(addr))
}

func (mbc *BankController) Write(addr uint16, val uint8) {
	if addr < 0x2000 || addr > 0x3fff {
		return
	}

	num := int(val) & 0x1f
	if num == 0 {
		num = 1
	}
	mbc.romBankNumber = num % mbc.romBanks
	if util.TraceEnabled() {
		util.Trace("ROM bank selected", log.Int("bank", mbc.romBankNumber))
	}
}
