package joypad

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/ushitora-anqou/gbcore/bus"
)

func TestRowSelect(t *testing.T) {
	j := NewJoypad()
	j.Press(A)
	j.Press(Down)

	j.Set(0x10) // action row
	assert.Equal(t, uint8(0xde), j.Get())

	j.Set(0x20) // direction row
	assert.Equal(t, uint8(0xe7), j.Get())

	j.Set(0x30) // nothing selected
	assert.Equal(t, uint8(0xff), j.Get())
}

func TestOnlyRowBitsAreWritable(t *testing.T) {
	j := NewJoypad()
	j.Set(0xdf)
	assert.Equal(t, uint8(0xdf), j.Get())
	j.Set(0x0f)
	assert.Equal(t, uint8(0x0f), j.Get()&0x0f)
}

func TestPressRaisesInterruptOnce(t *testing.T) {
	j := NewJoypad()
	j.Set(0x10)

	assert.Equal(t, uint8(bus.Joypad), j.Press(Start))
	assert.Equal(t, uint8(0), j.Press(Start))
	assert.Equal(t, uint8(0), j.Release(Start))
	assert.Equal(t, uint8(bus.Joypad), j.Press(Start))
}

func TestPressOnUnselectedRowStillRaises(t *testing.T) {
	j := NewJoypad()
	j.Set(0x20) // direction row only

	assert.Equal(t, uint8(bus.Joypad), j.Press(B))
	assert.Equal(t, uint8(0x0f), j.Get()&0x0f)
}

func TestSharedLineDoesNotRetrigger(t *testing.T) {
	j := NewJoypad()
	assert.Equal(t, uint8(bus.Joypad), j.Press(Right))
	// A shares P10 with Right, so the line is already low.
	assert.Equal(t, uint8(0), j.Press(A))
	assert.Equal(t, uint8(0), j.Press(Up))
}

func TestSecondKeyOnHeldRowDoesNotRaise(t *testing.T) {
	j := NewJoypad()
	j.Set(0x20) // direction row

	assert.Equal(t, uint8(bus.Joypad), j.Press(Left))
	assert.Equal(t, uint8(0), j.Press(Right))
	assert.Equal(t, uint8(0), j.Release(Left))
	assert.Equal(t, uint8(0), j.Release(Right))

	// All keys up again, so the next press is a new transition.
	assert.Equal(t, uint8(bus.Joypad), j.Press(Right))
}

func TestButtonString(t *testing.T) {
	assert.Equal(t, "Start", Start.String())
	assert.Equal(t, "Unknown", Button(42).String())
}
