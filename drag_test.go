package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraggable_BasicDrag(t *testing.T) {
	h := newHarness(t, 800, 600)
	panel := NewElement(WithAnchor(0.5, 0.5), WithOrigin(0.5, 0.5), WithPxSize(200, 150), Draggable(false))
	h.add(panel)
	h.frame()
	require.Equal(t, Rect{X: 300, Y: 225, W: 200, H: 150}, panel.CalculatedDestRect())

	// Grab 10px into the panel.
	h.move(310, 235)
	h.in.SetMouseButton(MouseButtonPrimary, true)
	h.frame()
	assert.True(t, panel.Dragging())
	assert.Equal(t, Vec2{}, panel.Anchor(), "dragging switches to offset positioning")

	h.move(410, 335)
	st := h.frame()
	assert.Same(t, panel, st.Dragged)
	h.frame()
	assert.Equal(t, Rect{X: 400, Y: 325, W: 200, H: 150}, panel.CalculatedDestRect())

	h.in.SetMouseButton(MouseButtonPrimary, false)
	h.frame()
	assert.False(t, panel.Dragging())

	// Moving the pointer after release leaves the panel where it was dropped.
	h.move(0, 0)
	h.frame()
	h.frame()
	assert.Equal(t, Rect{X: 400, Y: 325, W: 200, H: 150}, panel.CalculatedDestRect())
}

func TestDraggable_ClampToParent(t *testing.T) {
	h := newHarness(t, 800, 600)
	parent := NewElement(WithPxSize(200, 200))
	box := NewElement(WithPxSize(50, 50), Draggable(true))
	parent.MustAddChild(box)
	h.add(parent)
	h.frame()

	h.move(10, 10)
	h.in.SetMouseButton(MouseButtonPrimary, true)
	h.frame()

	bounds := Rect{W: 200, H: 200}
	for _, p := range []Point{{1000, 1000}, {-500, -500}, {1000, -40}, {-3, 700}, {120, 90}} {
		h.move(p.X, p.Y)
		h.frame()
		h.frame()
		r := box.CalculatedDestRect()
		assert.True(t, r.X >= bounds.X && r.Y >= bounds.Y && r.Right() <= bounds.Right() && r.Bottom() <= bounds.Bottom(),
			"cursor %v put box at %v", p, r)
	}
	assert.Equal(t, Rect{X: 110, Y: 80, W: 50, H: 50}, box.CalculatedDestRect())

	h.move(1000, 1000)
	h.frame()
	h.frame()
	assert.Equal(t, Rect{X: 150, Y: 150, W: 50, H: 50}, box.CalculatedDestRect())
}

func TestDraggable_Unclamped(t *testing.T) {
	h := newHarness(t, 800, 600)
	parent := NewElement(WithPxSize(200, 200))
	box := NewElement(WithPxSize(50, 50), Draggable(false))
	parent.MustAddChild(box)
	h.add(parent)
	h.frame()

	h.move(10, 10)
	h.in.SetMouseButton(MouseButtonPrimary, true)
	h.frame()
	h.move(500, 400)
	h.frame()
	h.frame()
	assert.Equal(t, Rect{X: 490, Y: 390, W: 50, H: 50}, box.CalculatedDestRect())
}

func TestDraggable_BringsToFrontAfterPass(t *testing.T) {
	h := newHarness(t, 800, 600)
	a := NewElement(WithName("a"), WithPxSize(50, 50), Draggable(false))
	b := NewElement(WithName("b"), WithOffset(100, 0), WithPxSize(50, 50), Interactive(true))
	h.add(a)
	h.add(b)
	h.frame()

	h.move(10, 10)
	h.in.SetMouseButton(MouseButtonPrimary, true)
	h.frame()

	root := h.gui.Root()
	assert.Same(t, a, root.Child(1))
	assert.Same(t, b, root.Child(0))
}

func TestDraggable_ClickOutsideDoesNotDrag(t *testing.T) {
	h := newHarness(t, 800, 600)
	panel := NewElement(WithPxSize(100, 100), Draggable(false))
	h.add(panel)
	h.frame()

	h.move(300, 300)
	h.in.SetMouseButton(MouseButtonPrimary, true)
	h.frame()
	h.move(50, 50)
	h.frame()
	assert.False(t, panel.Dragging())
	assert.Equal(t, Point{}, panel.Offset())
}
