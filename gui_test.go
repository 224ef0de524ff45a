package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockRenderer is a test renderer that records calls instead of painting. Text is
// measured as half the font size per rune, one line high.
type mockRenderer struct {
	viewport Point

	images int
	rects  int
	texts  []string
}

func (m *mockRenderer) DrawImage(tex Texture, dst Rect, opts ImageOptions) { m.images++ }

func (m *mockRenderer) DrawText(font Font, text string, pos Point, opts TextOptions) {
	m.texts = append(m.texts, text)
}

func (m *mockRenderer) MeasureText(font Font, text string, pos Point, opts TextOptions) Rect {
	w := int(float32(len([]rune(text))) * opts.Size / 2)
	h := int(opts.Size)
	return Rect{X: pos.X - floorMul(w, opts.Origin.X), Y: pos.Y - floorMul(h, opts.Origin.Y), W: w, H: h}
}

func (m *mockRenderer) DrawRect(r Rect, c Color, filled bool, thickness float32, blend BlendMode) {
	m.rects++
}

func (m *mockRenderer) ViewportSize() Point { return m.viewport }

type mockFont struct{}

func (mockFont) Name() string { return "mock" }

type mockTexture struct{}

func (mockTexture) Size() Point { return Point{X: 4, Y: 4} }

// harness drives a GUI frame by frame with scripted input.
type harness struct {
	t   *testing.T
	r   *mockRenderer
	gui *GUI
	in  *InputState
}

func newHarness(t *testing.T, w, h int) *harness {
	t.Helper()
	r := &mockRenderer{viewport: Point{X: w, Y: h}}
	return &harness{t: t, r: r, gui: New(r), in: NewInputState()}
}

func (h *harness) add(n Node) Node {
	h.t.Helper()
	require.NoError(h.t, h.gui.Root().AddChild(n))
	return n
}

// frame runs one Update with the input recorded since the previous frame, then clears
// the edges.
func (h *harness) frame() *UIUpdateInputState {
	h.in.Advance(1.0 / 60.0)
	st := h.gui.Update(h.in, 1.0/60.0)
	h.in.Reset()
	return st
}

func (h *harness) move(x, y int) { h.in.SetCursor(x, y) }

// click presses and releases the primary button at (x, y) over two frames.
func (h *harness) click(x, y int) {
	h.move(x, y)
	h.in.SetMouseButton(MouseButtonPrimary, true)
	h.frame()
	h.in.SetMouseButton(MouseButtonPrimary, false)
	h.frame()
}

func (h *harness) tapKey(k Key) {
	h.in.SetKey(k, true)
	h.frame()
	h.in.SetKey(k, false)
	h.frame()
}

func TestGUIBasicUsage(t *testing.T) {
	h := newHarness(t, 800, 600)
	h.add(NewText("Hello World", mockFont{}, 16, WithPxSize(200, 16)))
	h.add(NewRectangle(true, WithPxSize(10, 10)))
	h.add(NewImage(mockTexture{}, WithPxSize(10, 10)))
	h.add(NewImage(mockTexture{}, WithPxSize(10, 10), Hidden()))

	h.frame()
	h.gui.Draw()

	assert.Equal(t, Rect{W: 800, H: 600}, h.gui.Root().CalculatedDestRect())
	assert.Equal(t, []string{"Hello World"}, h.r.texts)
	assert.Equal(t, 1, h.r.rects)
	assert.Equal(t, 1, h.r.images, "hidden image must not draw")
}

func TestGUIDrawsTopLayerLast(t *testing.T) {
	h := newHarness(t, 800, 600)
	var order []string
	record := func(n Node) { order = append(order, n.AsElement().Name) }

	overlay := NewElement(WithName("overlay"), TopLayer())
	overlay.OnDraw = record
	inner := NewElement(WithName("inner"))
	inner.OnDraw = record
	overlay.MustAddChild(inner)
	normal := NewElement(WithName("normal"))
	normal.OnDraw = record

	h.add(overlay)
	h.add(normal)
	h.frame()
	h.gui.Draw()

	assert.Equal(t, []string{"normal", "overlay", "inner"}, order)
}

func TestGUIWantCapture(t *testing.T) {
	h := newHarness(t, 800, 600)
	ti := h.add(NewTextInput(mockFont{}, 16, nil, WithPxSize(200, 30))).(*TextInput)

	h.move(500, 500)
	h.frame()
	assert.False(t, h.gui.WantCaptureMouse())
	assert.False(t, h.gui.WantCaptureKeyboard())

	h.click(10, 10)
	assert.True(t, h.gui.WantCaptureMouse())
	assert.True(t, ti.ReceivingInput())
	assert.True(t, h.gui.WantCaptureKeyboard())
}

func TestViewportOverride(t *testing.T) {
	r := &mockRenderer{viewport: Point{X: 800, Y: 600}}
	g := New(r, WithViewport(320, 240))
	g.Update(NewInputState(), 0)
	assert.Equal(t, Rect{W: 320, H: 240}, g.Root().CalculatedDestRect())
}
