package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// probe is an interactive element counting its callbacks.
type probe struct {
	*Element
	pressed, released, entered, left int
}

func newProbe(name string, x, y, w, h int, capture bool, opts ...Option) *probe {
	opts = append([]Option{WithName(name), WithOffset(x, y), WithPxSize(float32(w), float32(h)), Interactive(capture)}, opts...)
	p := &probe{Element: NewElement(opts...)}
	p.OnMousePressed = func(Node, MouseButton) { p.pressed++ }
	p.OnMouseReleased = func(Node, MouseButton) { p.released++ }
	p.OnMouseEnter = func(Node) { p.entered++ }
	p.OnMouseLeave = func(Node) { p.left++ }
	return p
}

func TestCaptureOrdering(t *testing.T) {
	h := newHarness(t, 800, 600)
	a := newProbe("a", 0, 0, 100, 100, true)
	b := newProbe("b", 50, 50, 100, 100, true)
	h.add(a.Element)
	h.add(b.Element)

	h.move(75, 75)
	h.in.SetMouseButton(MouseButtonPrimary, true)
	st := h.frame()

	assert.Equal(t, 1, b.pressed)
	assert.Equal(t, 0, a.pressed)
	assert.Equal(t, StateIdle, a.State())
	assert.Same(t, b.Element, st.PointedOn)
	assert.True(t, st.Break)

	// Outside the overlap the lower element still gets the pointer.
	h.in.SetMouseButton(MouseButtonPrimary, false)
	h.frame()
	h.move(10, 10)
	h.in.SetMouseButton(MouseButtonPrimary, true)
	h.frame()
	assert.Equal(t, 1, a.pressed)
	assert.Equal(t, 1, b.pressed)
}

func TestNonCapturingElementsShareThePointer(t *testing.T) {
	h := newHarness(t, 800, 600)
	a := newProbe("a", 0, 0, 100, 100, false)
	b := newProbe("b", 50, 50, 100, 100, false)
	h.add(a.Element)
	h.add(b.Element)

	h.move(75, 75)
	h.in.SetMouseButton(MouseButtonPrimary, true)
	st := h.frame()

	assert.Equal(t, 1, a.pressed)
	assert.Equal(t, 1, b.pressed)
	assert.Same(t, b.Element, st.PointedOn, "the first element hit is reported")
	assert.False(t, st.Break)
}

func TestChildrenBeforeParent(t *testing.T) {
	h := newHarness(t, 800, 600)
	parent := newProbe("parent", 0, 0, 200, 200, true)
	child := newProbe("child", 0, 0, 50, 50, true)
	parent.MustAddChild(child.Element)
	h.add(parent.Element)

	h.move(10, 10)
	h.in.SetMouseButton(MouseButtonPrimary, true)
	h.frame()
	assert.Equal(t, 1, child.pressed)
	assert.Equal(t, 0, parent.pressed)

	h.in.SetMouseButton(MouseButtonPrimary, false)
	h.move(100, 100)
	h.frame()
	h.in.SetMouseButton(MouseButtonPrimary, true)
	h.frame()
	assert.Equal(t, 1, parent.pressed)
}

func TestTopLayerPreemptsNormalLayer(t *testing.T) {
	h := newHarness(t, 800, 600)
	overlay := newProbe("overlay", 0, 0, 100, 100, true, TopLayer())
	// Added later, so it would win inside the normal layer.
	normal := newProbe("normal", 0, 0, 100, 100, true)
	h.add(overlay.Element)
	h.add(normal.Element)

	h.move(50, 50)
	h.in.SetMouseButton(MouseButtonPrimary, true)
	st := h.frame()

	assert.Equal(t, 1, overlay.pressed)
	assert.Equal(t, 0, normal.pressed)
	assert.Same(t, overlay.Element, st.PointedOn)
}

func TestTopLayerIsInherited(t *testing.T) {
	h := newHarness(t, 800, 600)
	holder := NewElement(WithPxSize(100, 100), TopLayer())
	inner := newProbe("inner", 0, 0, 100, 100, true)
	holder.MustAddChild(inner.Element)
	normal := newProbe("normal", 0, 0, 100, 100, true)
	h.add(holder)
	h.add(normal.Element)

	h.move(50, 50)
	h.in.SetMouseButton(MouseButtonPrimary, true)
	h.frame()
	assert.Equal(t, 1, inner.pressed)
	assert.Equal(t, 0, normal.pressed)
}

func TestStateMachineCallbacks(t *testing.T) {
	h := newHarness(t, 800, 600)
	p := newProbe("p", 0, 0, 100, 100, true)
	h.add(p.Element)

	h.move(10, 10)
	h.frame()
	assert.Equal(t, StatePointedOn, p.State())
	assert.Equal(t, 1, p.entered)
	assert.True(t, p.EnteredThisFrame())

	h.frame()
	assert.Equal(t, 1, p.entered, "enter fires once")
	assert.False(t, p.EnteredThisFrame())

	h.in.SetMouseButton(MouseButtonSecondary, true)
	h.frame()
	assert.Equal(t, StateAltPressedDown, p.State())
	assert.True(t, p.PressedThisFrame(MouseButtonSecondary))
	h.in.SetMouseButton(MouseButtonSecondary, false)
	h.frame()
	assert.True(t, p.ReleasedThisFrame(MouseButtonSecondary))
	assert.Equal(t, StatePointedOn, p.State())
	assert.Equal(t, StateAltPressedDown, p.PrevState())
	assert.Equal(t, 1, p.pressed)
	assert.Equal(t, 1, p.released)

	h.move(500, 500)
	h.frame()
	assert.Equal(t, StateIdle, p.State())
	assert.Equal(t, 1, p.left)
	assert.True(t, p.LeftThisFrame())
}

func TestReleaseOutsideDoesNotFire(t *testing.T) {
	h := newHarness(t, 800, 600)
	p := newProbe("p", 0, 0, 100, 100, true)
	h.add(p.Element)

	h.move(10, 10)
	h.in.SetMouseButton(MouseButtonPrimary, true)
	h.frame()
	h.move(300, 300)
	h.frame()
	h.in.SetMouseButton(MouseButtonPrimary, false)
	h.frame()

	assert.Equal(t, 1, p.pressed)
	assert.Equal(t, 0, p.released)

	// Pressing elsewhere and releasing over the element does not count as a click either.
	h.in.SetMouseButton(MouseButtonPrimary, true)
	h.frame()
	h.move(10, 10)
	h.frame()
	h.in.SetMouseButton(MouseButtonPrimary, false)
	h.frame()
	assert.Equal(t, 1, p.pressed)
	assert.Equal(t, 0, p.released)
}

func TestCopyParentState(t *testing.T) {
	h := newHarness(t, 800, 600)
	parent := newProbe("parent", 0, 0, 100, 100, true)
	label := newProbe("label", 0, 0, 50, 50, true, CopyParent())
	parent.MustAddChild(label.Element)
	h.add(parent.Element)

	h.move(10, 10)
	h.in.SetMouseButton(MouseButtonPrimary, true)
	h.frame()

	assert.Equal(t, 1, parent.pressed)
	assert.Equal(t, 0, label.pressed, "mirroring children fire no callbacks")
	assert.Equal(t, StatePressedDown, label.State())

	h.in.SetMouseButton(MouseButtonPrimary, false)
	h.move(80, 80)
	h.frame()
	assert.Equal(t, StatePointedOn, label.State(), "state follows the parent even off the label")
	assert.Equal(t, StatePressedDown, label.PrevState())
}

func TestButtonCaptionMirrorsButton(t *testing.T) {
	h := newHarness(t, 800, 600)
	btn := NewButton("OK", mockFont{}, 16, nil, WithPxSize(100, 30))
	btn.Caption.Colors = StateColors{Idle: ColorWhite, Highlight: ColorYellow, Pressed: ColorRed}
	h.add(btn)

	h.move(10, 10)
	h.frame()
	assert.Equal(t, StatePointedOn, btn.Caption.State())
	assert.Equal(t, ColorYellow, btn.Caption.Colors.For(btn.Caption.State()))
}

func TestForceActiveState(t *testing.T) {
	h := newHarness(t, 800, 600)
	p := newProbe("p", 0, 0, 100, 100, true)
	p.ForceActiveState = true
	h.add(p.Element)

	h.move(500, 500)
	h.frame()
	assert.Equal(t, StatePressedDown, p.State())
	assert.Equal(t, 0, p.pressed, "forced state fires nothing")

	p.ForceActiveState = false
	assert.Equal(t, StateIdle, p.State())
}

func TestHiddenSubtreeResetsToIdle(t *testing.T) {
	h := newHarness(t, 800, 600)
	parent := NewElement(WithPxSize(100, 100))
	p := newProbe("p", 0, 0, 100, 100, true)
	parent.MustAddChild(p.Element)
	h.add(parent)

	h.move(10, 10)
	h.frame()
	assert.Equal(t, StatePointedOn, p.State())

	parent.Visible = false
	st := h.frame()
	assert.Equal(t, StateIdle, p.State())
	assert.Equal(t, 0, p.left, "hiding fires no leave")
	assert.Nil(t, st.PointedOn)
}

func TestDeferredChangesRunAfterPass(t *testing.T) {
	h := newHarness(t, 800, 600)
	var st UIUpdateInputState
	st.Reset(Point{})
	ran := []int{}
	st.Defer(func() {
		ran = append(ran, 1)
		st.Defer(func() { ran = append(ran, 2) })
	})
	assert.Empty(t, ran)
	st.Flush()
	assert.Equal(t, []int{1, 2}, ran)

	// Hosts driving the passes directly.
	p := newProbe("p", 0, 0, 10, 10, true)
	h.add(p.Element)
	ctx := h.gui.Context()
	h.in.SetCursor(5, 5)
	ctx.Begin(h.in, 0)
	h.gui.Root().Update(ctx)
	st.Reset(Point{X: 5, Y: 5})
	h.gui.Root().DoInputUpdates(ctx, Point{X: 5, Y: 5}, &st, true)
	assert.Nil(t, st.PointedOn, "normal elements ignore the top-layer pass")
	h.gui.Root().DoInputUpdates(ctx, Point{X: 5, Y: 5}, &st, false)
	assert.Same(t, p.Element, st.PointedOn)
}
