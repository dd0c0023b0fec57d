package util

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestTickCounter(t *testing.T) {
	tc := NewTickCounter(256)
	assert.Equal(t, uint(0), tc.Tick(255))
	assert.Equal(t, uint(1), tc.Tick(1))
	assert.Equal(t, uint(2), tc.Tick(512))
	assert.Equal(t, uint(0), tc.Tick(100))

	tc.Reset()
	assert.Equal(t, uint(0), tc.Tick(255))

	tc.SetTarget(16)
	assert.Equal(t, uint(1), tc.Tick(1))
}

func TestTickCounterShorterTargetDropsExcess(t *testing.T) {
	tc := NewTickCounter(1024)
	assert.Equal(t, uint(0), tc.Tick(1000))

	tc.SetTarget(16) // 1000 % 16 == 8 carried
	assert.Equal(t, uint(0), tc.Tick(7))
	assert.Equal(t, uint(1), tc.Tick(1))
}

func TestBoolToU8(t *testing.T) {
	assert.Equal(t, uint8(1), BoolToU8(true))
	assert.Equal(t, uint8(0), BoolToU8(false))
}
