package joypad

import (
	"github.com/retroenv/retrogolib/log"
	"github.com/ushitora-anqou/gbcore/bus"
	"github.com/ushitora-anqou/gbcore/constant"
	"github.com/ushitora-anqou/gbcore/util"
)

type Button int

const (
	Right Button = iota
	Left
	Up
	Down
	A
	B
	Select
	Start
)

var buttonNames = [...]string{"Right", "Left", "Up", "Down", "A", "B", "Select", "Start"}

func (b Button) String() string {
	if b < 0 || int(b) >= len(buttonNames) {
		return "Unknown"
	}
	return buttonNames[b]
}

func (b Button) isDirection() bool {
	return b <= Down
}

func (b Button) mask() uint8 {
	switch b {
	case Right:
		return 1 << constant.DIR_RIGHT
	case Left:
		return 1 << constant.DIR_LEFT
	case Up:
		return 1 << constant.DIR_UP
	case Down:
		return 1 << constant.DIR_DOWN
	case A:
		return 1 << constant.ACT_A
	case B:
		return 1 << constant.ACT_B
	case Select:
		return 1 << constant.ACT_SELECT
	case Start:
		return 1 << constant.ACT_START
	}
	return 0
}

// Joypad is the P1 register. Both nibbles are active low.
type Joypad struct {
	selectAction, selectDirection bool
	action, direction             uint8
}

func NewJoypad() *Joypad {
	return &Joypad{
		selectAction:    false,
		selectDirection: true,
		action:          0x0f,
		direction:       0x0f,
	}
}

func (j *Joypad) Set(val uint8) {
	j.selectAction = ((val >> 5) & 1) == 0
	j.selectDirection = ((val >> 4) & 1) == 0
}

func (j *Joypad) Get() uint8 {
	sel := uint8(0x30)
	nibble := uint8(0x0f)
	switch {
	case j.selectAction && !j.selectDirection:
		sel = 0x10
		nibble = j.action
	case j.selectDirection && !j.selectAction:
		sel = 0x20
		nibble = j.direction
	case j.selectAction && j.selectDirection:
		sel = 0x00
	}
	return 0xc0 | sel | nibble
}

// lines is the shared P10-P13 interrupt line: a bit is low while the
// corresponding key of either row is held.
func (j *Joypad) lines() uint8 {
	return j.action & j.direction
}

// raised reports the joypad interrupt when the line goes from no key held
// to some key held.
func (j *Joypad) raised(before uint8) uint8 {
	if before == 0x0f && j.lines() != 0x0f {
		return uint8(bus.Joypad)
	}
	return 0
}

// Press holds the button down and returns the interrupt bits it raised.
func (j *Joypad) Press(b Button) uint8 {
	before := j.lines()
	if b.isDirection() {
		j.direction &^= b.mask()
	} else {
		j.action &^= b.mask()
	}
	if util.TraceEnabled() {
		util.Trace("Button pressed", log.Stringer("button", b))
	}
	return j.raised(before)
}

// Release lets go of the button. A rising line never raises an interrupt.
func (j *Joypad) Release(b Button) uint8 {
	before := j.lines()
	if b.isDirection() {
		j.direction |= b.mask()
	} else {
		j.action |= b.mask()
	}
	if util.TraceEnabled() {
		util.Trace("Button released", log.Stringer("button", b))
	}
	return j.raised(before)
}
