package util

func BoolToU8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// TickCounter fires once every target ticks, carrying the remainder over.
type TickCounter struct {
	current, target uint
}

func NewTickCounter(target uint) *TickCounter {
	return &TickCounter{target: target}
}

// Tick advances the counter and reports how many times the target was crossed.
func (tc *TickCounter) Tick(tick uint) uint {
	tc.current += tick
	n := tc.current / tc.target
	tc.current %= tc.target
	return n
}

func (tc *TickCounter) Reset() {
	tc.current = 0
}

// SetTarget changes the period; the carried remainder is reduced modulo the
// new target.
func (tc *TickCounter) SetTarget(target uint) {
	tc.target = target
	tc.current %= target
}
