package mmu

import (
	"errors"
	"fmt"
	"strings"

	"github.com/retroenv/retrogolib/log"
	"github.com/ushitora-anqou/gbcore/util"
)

const (
	ROM_BANK_SIZE   = 0x4000
	headerEnd       = 0x150
	headerTitle     = 0x134
	headerTitleEnd  = 0x144
	headerType      = 0x147
	headerROMSize   = 0x148
	catTypeMBC1Last = 0x03
)

var ErrInvalidCartridge = errors.New("invalid cartridge")

type Header struct {
	Title   string
	Type    uint8
	ROMSize uint8
}

// Cartridge is the immutable ROM image.
type Cartridge struct {
	rom    []uint8
	header *Header
}

func NewCartridge(src []uint8) (*Cartridge, error) {
	if len(src) == 0 {
		return nil, fmt.Errorf("%w: empty ROM image", ErrInvalidCartridge)
	}

	rom := make([]uint8, len(src))
	copy(rom, src)
	cat := &Cartridge{rom: rom}

	if len(rom) >= headerEnd {
		title := string(rom[headerTitle:headerTitleEnd])
		if i := strings.IndexByte(title, 0); i >= 0 {
			title = title[:i]
		}
		cat.header = &Header{
			Title:   strings.TrimSpace(title),
			Type:    rom[headerType],
			ROMSize: rom[headerROMSize],
		}

		logger := util.Logger()
		logger.Info("Cartridge loaded",
			log.String("title", cat.header.Title),
			log.Hex("type", cat.header.Type),
			log.Int("size", len(rom)))
		if cat.header.Type > catTypeMBC1Last {
			logger.Warn("Unsupported controller type, using linear bank switching",
				log.Hex("type", cat.header.Type))
		}
	}

	return cat, nil
}

// Header returns the parsed header, if the image is long enough to carry one.
func (cat *Cartridge) Header() (Header, bool) {
	if cat.header == nil {
		return Header{}, false
	}
	return *cat.header, true
}

// Banks is the number of 16KB banks, never less than two.
func (cat *Cartridge) Banks() int {
	n := (len(cat.rom) + ROM_BANK_SIZE - 1) / ROM_BANK_SIZE
	if n < 2 {
		n = 2
	}
	return n
}

func (cat *Cartridge) get8(off int) uint8 {
	if off < 0 || off >= len(cat.rom) {
		return 0xff
	}
	return cat.rom[off]
}
