// Package window contains the host side of the emulator: turning keyboard
// state into joypad presses, pacing frames and presenting the framebuffer.
package window

import (
	"github.com/ushitora-anqou/gbcore/constant"
	"github.com/ushitora-anqou/gbcore/joypad"
)

// WindowEvent is the set of buttons held during one host frame. Bits follow
// the P1 register layout: constant.DIR_* in Direction, constant.ACT_* in Action.
type WindowEvent struct {
	Direction, Action uint8
}

func buttonBit(b joypad.Button) (dir bool, mask uint8) {
	if b <= joypad.Down {
		return true, 1 << uint(b-joypad.Right)
	}
	return false, 1 << uint(b-joypad.A)
}

// Held reports whether b is down in the event.
func (e WindowEvent) Held(b joypad.Button) bool {
	dir, mask := buttonBit(b)
	if dir {
		return e.Direction&mask != 0
	}
	return e.Action&mask != 0
}

// Set marks b as held or released.
func (e *WindowEvent) Set(b joypad.Button, held bool) {
	dir, mask := buttonBit(b)
	field := &e.Action
	if dir {
		field = &e.Direction
	}
	if held {
		*field |= mask
	} else {
		*field &^= mask
	}
}

// Joypad receives button transitions.
type Joypad interface {
	Press(b joypad.Button)
	Release(b joypad.Button)
}

// Emulator is what a host drives once per displayed frame.
type Emulator interface {
	Joypad
	AdvanceOneFrame() ([]uint8, error)
}

var buttons = [...]joypad.Button{
	joypad.Right, joypad.Left, joypad.Up, joypad.Down,
	joypad.A, joypad.B, joypad.Select, joypad.Start,
}

// InputTracker turns successive held-button snapshots into Press/Release
// calls, so the joypad only sees edges.
type InputTracker struct {
	pad  Joypad
	prev WindowEvent
}

func NewInputTracker(pad Joypad) *InputTracker {
	return &InputTracker{pad: pad}
}

// Apply forwards every button whose state differs from the previous event.
func (t *InputTracker) Apply(event WindowEvent) {
	for _, b := range buttons {
		was, is := t.prev.Held(b), event.Held(b)
		switch {
		case is && !was:
			t.pad.Press(b)
		case was && !is:
			t.pad.Release(b)
		}
	}
	t.prev = event
}

// Held returns the last applied event.
func (t *InputTracker) Held() WindowEvent {
	return t.prev
}

// Key bindings shared by the hosts: WASD for the pad, K/J for A/B,
// Enter for Start and Space for Select.
const (
	keyHelp = "WASD: pad  K: A  J: B  Enter: Start  Space: Select  Esc: quit"
)

// KeyHelp describes the default key bindings.
func KeyHelp() string {
	return keyHelp
}

const frameBytes = constant.LCD_BYTES
