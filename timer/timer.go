package timer

import (
	"github.com/ushitora-anqou/gbcore/bus"
	"github.com/ushitora-anqou/gbcore/util"
)

const divPeriod = 256

type Timer struct {
	div, tima, tma, tac uint8
	divTick, timaTick   *util.TickCounter
}

func NewTimer() *Timer {
	return &Timer{
		div:      0xab,
		tac:      0xf8,
		divTick:  util.NewTickCounter(divPeriod),
		timaTick: util.NewTickCounter(1024),
	}
}

func (t *Timer) DIV() uint8 {
	return t.div
}

func (t *Timer) TIMA() uint8 {
	return t.tima
}

func (t *Timer) TMA() uint8 {
	return t.tma
}

func (t *Timer) TAC() uint8 {
	return t.tac
}

func (t *Timer) ResetDIV() {
	t.div = 0
	t.divTick.Reset()
}

func (t *Timer) SetTIMA(val uint8) {
	t.tima = val
}

func (t *Timer) SetTMA(val uint8) {
	t.tma = val
}

func (t *Timer) SetTAC(val uint8) {
	t.tac = 0xf8 | (val & 0x07)
	t.timaTick.SetTarget(t.period())
}

func (t *Timer) timerEnable() bool {
	return ((t.TAC() >> 2) & 1) != 0
}

func (t *Timer) inputClockSelect() uint8 {
	return t.TAC() & 3
}

func (t *Timer) period() uint {
	switch t.inputClockSelect() {
	case 1: // CPU Clock / 16
		return 16
	case 2: // CPU Clock / 64
		return 64
	case 3: // CPU Clock / 256
		return 256
	}
	return 1024 // CPU Clock / 1024
}

// Update advances the timer and returns the interrupt bits it raised.
func (t *Timer) Update(tick uint) uint8 {
	t.div += uint8(t.divTick.Tick(tick))

	if !t.timerEnable() {
		return 0
	}

	var raised uint8
	for n := t.timaTick.Tick(tick); n > 0; n-- {
		if t.tima == 0xff {
			t.tima = t.tma
			raised |= uint8(bus.Timer)
		} else {
			t.tima++
		}
	}
	return raised
}
