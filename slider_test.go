package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSliderSetValue(t *testing.T) {
	s := NewSlider(nil, nil)
	changes := 0
	s.OnValueChange = func(Node) { changes++ }
	s.SetRange(100, 0)
	assert.Equal(t, float32(0), s.MinValue(), "reversed range is swapped")
	assert.Equal(t, float32(100), s.MaxValue())

	s.Step = 5
	tests := []struct {
		in, want float32
	}{
		{72, 70},
		{73, 75},
		{150, 100},
		{-3, 0},
		{2.4, 0},
	}
	for _, tt := range tests {
		s.SetValue(tt.in)
		assert.Equal(t, tt.want, s.Value(), "SetValue(%v)", tt.in)
	}
	assert.Equal(t, 4, changes, "repeated values do not fire")

	s.SetValue(60)
	s.SetRange(0, 50)
	assert.Equal(t, float32(50), s.Value(), "narrowing the range clamps")
}

func TestSliderTrackClickAndWheel(t *testing.T) {
	h := newHarness(t, 800, 600)
	s := NewSlider(nil, nil, WithPxSize(116, 16))
	s.SetRange(0, 100)
	h.add(s)
	h.frame()

	h.click(58, 8)
	assert.Equal(t, float32(50), s.Value())
	h.frame()
	assert.Equal(t, Rect{X: 50, W: 16, H: 16}, s.Handle.CalculatedDestRect())

	s.Step = 5
	h.move(10, 8)
	h.in.WheelY = 1
	h.frame()
	assert.Equal(t, float32(55), s.Value())
	h.in.WheelY = -2
	h.frame()
	assert.Equal(t, float32(45), s.Value())

	// The wheel is ignored while the pointer is elsewhere.
	h.move(300, 300)
	h.in.WheelY = 1
	h.frame()
	assert.Equal(t, float32(45), s.Value())
}

func TestSliderHandleDrag(t *testing.T) {
	h := newHarness(t, 800, 600)
	s := NewSlider(nil, nil, WithPxSize(116, 16))
	s.SetRange(0, 100)
	s.SetValue(50)
	h.add(s)
	h.frame()

	h.move(58, 8)
	h.in.SetMouseButton(MouseButtonPrimary, true)
	h.frame()
	assert.True(t, s.Handle.Dragging())
	assert.Equal(t, float32(50), s.Value())

	h.move(88, 30)
	h.frame()
	assert.Equal(t, float32(80), s.Value())

	h.move(500, 8)
	h.frame()
	assert.Equal(t, float32(100), s.Value())
	h.frame()
	assert.Equal(t, Rect{X: 100, W: 16, H: 16}, s.Handle.CalculatedDestRect(), "handle stays on the track")

	h.in.SetMouseButton(MouseButtonPrimary, false)
	h.frame()
	assert.False(t, s.Handle.Dragging())
	assert.Equal(t, float32(100), s.Value())
}

func TestVerticalScrollbar(t *testing.T) {
	h := newHarness(t, 800, 600)
	sb := NewVerticalScrollbar(nil, nil, WithPxSize(12, 100))
	sb.SetRange(0, 10)
	sb.SetValue(5)
	sb.SetVisibleFraction(0.5)
	h.add(sb)
	h.frame()
	h.frame()

	assert.Equal(t, Rect{Y: 25, W: 12, H: 50}, sb.Handle.CalculatedDestRect())

	h.move(6, 5)
	h.in.WheelY = 1
	h.frame()
	assert.Equal(t, float32(4), sb.Value(), "rolling up scrolls toward the start")

	sb.SetVisibleFraction(0.01)
	h.frame()
	h.frame()
	assert.Equal(t, 12, sb.Handle.CalculatedDestRect().H, "handle keeps its minimum length")
}
