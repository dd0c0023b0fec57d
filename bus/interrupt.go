package bus

const numInterrupts = 5

// InterruptBits is the 5-bit view shared by IE and IF.
type InterruptBits uint8

const (
	VBlank InterruptBits = 1 << iota
	LCD
	Timer
	Serial
	Joypad
)

const interruptMask InterruptBits = 1<<numInterrupts - 1

// Pending returns the interrupts that are both requested and enabled.
func Pending(ie, ifl uint8) InterruptBits {
	return InterruptBits(ie&ifl) & interruptMask
}

// Next picks the highest priority interrupt (lowest bit) among bits.
func (ib InterruptBits) Next() (InterruptBits, bool) {
	for i := 0; i < numInterrupts; i++ {
		bit := InterruptBits(1 << i)
		if ib&bit != 0 {
			return bit, true
		}
	}
	return 0, false
}

// Vector is the fixed handler address of a single interrupt bit.
func (ib InterruptBits) Vector() uint16 {
	for i := 0; i < numInterrupts; i++ {
		if ib == 1<<i {
			return 0x40 + uint16(i)*8
		}
	}
	return 0
}

func (ib InterruptBits) String() string {
	switch ib {
	case VBlank:
		return "VBlank"
	case LCD:
		return "LCD"
	case Timer:
		return "Timer"
	case Serial:
		return "Serial"
	case Joypad:
		return "Joypad"
	}
	return "Mixed"
}
