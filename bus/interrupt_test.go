package bus

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestPendingMasksUpperBits(t *testing.T) {
	assert.Equal(t, InterruptBits(0), Pending(0xe0, 0xff))
	assert.Equal(t, Timer|Joypad, Pending(0xff, 0x14))
	assert.Equal(t, InterruptBits(0), Pending(0x01, 0x02))
}

func TestNextPriority(t *testing.T) {
	tests := []struct {
		name     string
		bits     InterruptBits
		expected InterruptBits
		ok       bool
	}{
		{"none", 0, 0, false},
		{"vblank wins", VBlank | Joypad, VBlank, true},
		{"lcd over timer", LCD | Timer, LCD, true},
		{"joypad alone", Joypad, Joypad, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bit, ok := tt.bits.Next()
			assert.Equal(t, tt.expected, bit)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestVector(t *testing.T) {
	assert.Equal(t, uint16(0x40), VBlank.Vector())
	assert.Equal(t, uint16(0x48), LCD.Vector())
	assert.Equal(t, uint16(0x50), Timer.Vector())
	assert.Equal(t, uint16(0x58), Serial.Vector())
	assert.Equal(t, uint16(0x60), Joypad.Vector())
	assert.Equal(t, uint16(0), (VBlank | LCD).Vector())
}
