package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputStateEdges(t *testing.T) {
	in := NewInputState()

	in.SetMouseButton(MouseButtonPrimary, true)
	assert.True(t, in.PressedNow(MouseButtonPrimary))
	assert.True(t, in.Down(MouseButtonPrimary))

	in.Reset()
	in.SetMouseButton(MouseButtonPrimary, true)
	assert.False(t, in.PressedNow(MouseButtonPrimary), "a held button has no new edge")
	assert.True(t, in.Down(MouseButtonPrimary))

	in.Reset()
	in.SetMouseButton(MouseButtonPrimary, false)
	assert.True(t, in.ReleasedNow(MouseButtonPrimary))
	assert.False(t, in.Down(MouseButtonPrimary))

	// Out-of-range values are ignored.
	in.SetMouseButton(MouseButtonCount, true)
	assert.False(t, in.Down(MouseButtonCount))
	in.SetKey(KeyNone, true)
	assert.False(t, in.KeyDown(KeyNone))

	in.SetKey(KeyReturn, true)
	assert.True(t, in.KeyPressed(KeyReturn))
	in.Reset()
	assert.False(t, in.KeyPressed(KeyReturn))
	assert.True(t, in.KeyDown(KeyReturn))
	in.SetKey(KeyReturn, false)
	assert.True(t, in.KeyReleased(KeyReturn))

	in.AddChar('h')
	in.AddChar('é')
	in.WheelY = 3
	assert.Equal(t, []rune{'h', 'é'}, in.Chars())
	in.Reset()
	assert.Empty(t, in.Chars())
	assert.Zero(t, in.WheelY)
}

func TestKeyRepeated(t *testing.T) {
	in := NewInputState()
	in.SetKey(KeyBackspace, true)
	assert.True(t, in.KeyRepeated(KeyBackspace), "initial press")
	in.Reset()

	steps := []struct {
		dt   float32
		want bool
	}{
		{0.1, false},   // held 0.1
		{0.35, true},   // held 0.45, crossed the delay
		{0.005, false}, // held 0.455, same interval
		{0.02, true},   // held 0.475, next interval
	}
	for _, s := range steps {
		in.Advance(s.dt)
		assert.Equal(t, s.want, in.KeyRepeated(KeyBackspace), "after +%v", s.dt)
	}

	in.SetKey(KeyBackspace, false)
	in.Reset()
	in.Advance(1)
	assert.False(t, in.KeyRepeated(KeyBackspace))
}
