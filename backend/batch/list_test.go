package batch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"

	ui "github.com/go-theft-auto/ui"
)

const white = 0xFFFFFFFF

func TestListSplitsOnStateChange(t *testing.T) {
	l := Acquire()
	defer Release(l)

	l.AddRect(0, 0, 10, 10, white)
	l.AddRect(10, 0, 10, 10, white)
	l.SetState(7, ui.BlendAlpha)
	l.AddRect(0, 0, 1, 1, white)
	l.SetState(7, ui.BlendAdditive)
	l.AddRect(0, 0, 1, 1, white)
	l.SetState(7, ui.BlendAdditive) // no-op
	l.AddRect(0, 0, 1, 1, white)
	l.Finalize()

	require.Len(t, l.Cmds, 3)
	assert.Equal(t, uint32(12), l.Cmds[0].ElemCount)
	assert.Equal(t, uint32(0), l.Cmds[0].TextureID)

	assert.Equal(t, uint32(7), l.Cmds[1].TextureID)
	assert.Equal(t, ui.BlendAlpha, l.Cmds[1].Blend)
	assert.Equal(t, uint32(6), l.Cmds[1].ElemCount)

	assert.Equal(t, ui.BlendAdditive, l.Cmds[2].Blend)
	assert.Equal(t, uint32(12), l.Cmds[2].ElemCount)
	assert.Equal(t, uint32(12), l.Cmds[2].VertexOffset)

	// Indices restart per command.
	assert.Equal(t, []uint16{0, 1, 2, 0, 2, 3}, l.Idx[12:18])
}

func TestListSkipsTransparent(t *testing.T) {
	l := Acquire()
	defer Release(l)

	l.AddRect(0, 0, 10, 10, 0x00FFFFFF)
	l.AddRectOutline(0, 0, 10, 10, 0x00FFFFFF, 1)
	l.AddQuads([]Quad{{}}, 0)
	l.Finalize()

	assert.Empty(t, l.Vtx)
	assert.Empty(t, l.Cmds)
}

func TestListClipStack(t *testing.T) {
	l := Acquire()
	defer Release(l)

	l.PushClipRect(0, 0, 50, 50)
	l.AddRect(0, 0, 10, 10, white)
	l.PopClipRect()
	l.AddRect(0, 0, 10, 10, white)
	l.PopClipRect() // extra pop is ignored
	l.Finalize()

	require.Len(t, l.Cmds, 2)
	assert.Equal(t, [4]float32{0, 0, 50, 50}, l.Cmds[0].ClipRect)
	assert.Equal(t, noClip, l.Cmds[1].ClipRect)
}

func TestListSplitsBeforeIndexOverflow(t *testing.T) {
	l := Acquire()
	defer Release(l)

	quads := maxCmdVertices/4 + 1
	for range quads {
		l.AddRect(0, 0, 1, 1, white)
	}
	l.Finalize()

	require.Len(t, l.Cmds, 2)
	assert.Equal(t, uint32(maxCmdVertices/4*6), l.Cmds[0].ElemCount)
	assert.Equal(t, uint32(6), l.Cmds[1].ElemCount)
	assert.Equal(t, uint32(maxCmdVertices), l.Cmds[1].VertexOffset)
}

func TestCornersRotation(t *testing.T) {
	c := Corners(0, 0, 10, 10, 0, 0, 90)
	assert.InDelta(t, 0, c[1][0], 1e-4)
	assert.InDelta(t, 10, c[1][1], 1e-4)

	assert.Equal(t, [4][2]float32{{1, 2}, {4, 2}, {4, 6}, {1, 6}}, Corners(1, 2, 3, 4, 0, 0, 0))
}

func TestBitmapAtlas(t *testing.T) {
	a := NewBitmapAtlas()

	w, h := a.Measure("Hi", 16)
	assert.Equal(t, float32(32), w)
	assert.Equal(t, float32(16), h)

	w, h = a.Measure("abc\nd", 8)
	assert.Equal(t, float32(24), w)
	assert.Equal(t, float32(16), h)

	quads := a.Layout(nil, "a b", 10, 20, 8)
	require.Len(t, quads, 2, "spaces advance without a quad")
	assert.Equal(t, [2]float32{26, 20}, quads[1].Corners[0])

	// Unknown runes fall back to a look-alike, then '?'.
	arrow, ok := a.Glyph('→')
	require.True(t, ok)
	gt, _ := a.Glyph('>')
	assert.Equal(t, gt, arrow)
	q, _ := a.Glyph('?')
	unknown, ok := a.Glyph('水')
	require.True(t, ok)
	assert.Equal(t, q, unknown)
}

func TestFaceAtlas(t *testing.T) {
	a := NewFaceAtlas("basic", basicfont.Face7x13, 13)

	g, ok := a.Glyph('A')
	require.True(t, ok)
	assert.Equal(t, float32(7), g.Advance)
	assert.Equal(t, float32(7*5), a.Advance("Hello", 13))
	assert.Len(t, a.Pixels, a.Width*a.Height)

	var ink int
	for _, p := range a.Pixels {
		if p != 0 {
			ink++
		}
	}
	assert.Positive(t, ink)
}
