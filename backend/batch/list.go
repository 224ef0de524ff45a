// Package batch accumulates textured quads into vertex and index buffers, splitting draw
// commands on texture, blend mode and clip changes. Backends that talk to a raw graphics
// API (see backend/opengl) fill a List per frame and upload it in one go.
package batch

import (
	"sync"

	"github.com/chewxy/math32"

	ui "github.com/go-theft-auto/ui"
)

// Vertex is the GPU vertex layout: position, texture coordinate and packed RGBA color.
type Vertex struct {
	Pos      [2]float32
	TexCoord [2]float32
	Color    uint32
}

// Cmd is one draw call over a contiguous index range.
type Cmd struct {
	ClipRect     [4]float32 // x1, y1, x2, y2
	TextureID    uint32     // 0 means untextured
	Blend        ui.BlendMode
	VertexOffset uint32
	IndexOffset  uint32
	ElemCount    uint32
}

// maxCmdVertices keeps per-command indices addressable by uint16.
const maxCmdVertices = 1 << 16

var noClip = [4]float32{-1e9, -1e9, 1e9, 1e9}

var listPool = sync.Pool{
	New: func() any {
		return &List{
			Vtx:       make([]Vertex, 0, 1024),
			Idx:       make([]uint16, 0, 2048),
			Cmds:      make([]Cmd, 0, 16),
			clipStack: make([][4]float32, 0, 8),
		}
	},
}

// Acquire gets a cleared List from the pool. Call Release when done.
func Acquire() *List {
	l := listPool.Get().(*List)
	l.Clear()
	return l
}

// Release returns a List to the pool.
func Release(l *List) {
	if l != nil {
		listPool.Put(l)
	}
}

// List accumulates the draw commands of one frame.
type List struct {
	Cmds []Cmd
	Vtx  []Vertex
	Idx  []uint16

	clipStack [][4]float32
	clip      [4]float32
	texture   uint32
	blend     ui.BlendMode
	cmdVtx    uint32 // Vertex offset of the open command
	cmdIdx    uint32 // Index offset of the open command
}

// Clear resets the list for a new frame, keeping allocated capacity.
func (l *List) Clear() {
	l.Cmds = l.Cmds[:0]
	l.Vtx = l.Vtx[:0]
	l.Idx = l.Idx[:0]
	l.clipStack = l.clipStack[:0]
	l.clip = noClip
	l.texture = 0
	l.blend = ui.BlendAlpha
	l.cmdVtx = 0
	l.cmdIdx = 0
}

// PushClipRect restricts subsequent primitives to the rectangle.
func (l *List) PushClipRect(x1, y1, x2, y2 float32) {
	l.clipStack = append(l.clipStack, l.clip)
	l.clip = [4]float32{x1, y1, x2, y2}
	l.split()
}

// PopClipRect restores the previous clip rectangle.
func (l *List) PopClipRect() {
	n := len(l.clipStack)
	if n == 0 {
		return
	}
	l.clip = l.clipStack[n-1]
	l.clipStack = l.clipStack[:n-1]
	l.split()
}

// SetState selects the texture and blend mode for subsequent primitives.
func (l *List) SetState(textureID uint32, blend ui.BlendMode) {
	if len(l.Cmds) > 0 && l.texture == textureID && l.blend == blend {
		return
	}
	l.texture = textureID
	l.blend = blend
	l.split()
}

// split closes the open command and starts a new one with the current state.
func (l *List) split() {
	if n := len(l.Cmds); n > 0 {
		last := &l.Cmds[n-1]
		last.ElemCount = uint32(len(l.Idx)) - l.cmdIdx
		if last.ElemCount == 0 {
			l.Cmds = l.Cmds[:n-1]
		}
	}
	l.Cmds = append(l.Cmds, Cmd{
		ClipRect:     l.clip,
		TextureID:    l.texture,
		Blend:        l.blend,
		VertexOffset: uint32(len(l.Vtx)),
		IndexOffset:  uint32(len(l.Idx)),
	})
	l.cmdVtx = uint32(len(l.Vtx))
	l.cmdIdx = uint32(len(l.Idx))
}

// addVertices appends vertices and returns the index of the first, relative to the open
// command. A command that would overflow uint16 indices is split first.
func (l *List) addVertices(verts ...Vertex) uint16 {
	if len(l.Cmds) == 0 || len(l.Vtx)-int(l.cmdVtx)+len(verts) > maxCmdVertices {
		l.split()
	}
	start := uint16(len(l.Vtx) - int(l.cmdVtx))
	l.Vtx = append(l.Vtx, verts...)
	return start
}

func (l *List) addQuadIndices(i uint16) {
	l.Idx = append(l.Idx, i, i+1, i+2, i, i+2, i+3)
}

// AddRect adds a filled, untextured rectangle. Transparent colors add nothing.
func (l *List) AddRect(x, y, w, h float32, color uint32) {
	if color&0xFF000000 == 0 {
		return
	}
	i := l.addVertices(
		Vertex{Pos: [2]float32{x, y}, Color: color},
		Vertex{Pos: [2]float32{x + w, y}, Color: color},
		Vertex{Pos: [2]float32{x + w, y + h}, Color: color},
		Vertex{Pos: [2]float32{x, y + h}, Color: color},
	)
	l.addQuadIndices(i)
}

// AddRectOutline adds the four edges of a rectangle, drawn inside it.
func (l *List) AddRectOutline(x, y, w, h float32, color uint32, thickness float32) {
	if color&0xFF000000 == 0 || thickness <= 0 {
		return
	}
	t := math32.Min(thickness, math32.Min(w, h)/2)
	l.AddRect(x, y, w, t, color)
	l.AddRect(x, y+h-t, w, t, color)
	l.AddRect(x, y+t, t, h-2*t, color)
	l.AddRect(x+w-t, y+t, t, h-2*t, color)
}

// AddLine adds a line as a quad of the given thickness.
func (l *List) AddLine(x1, y1, x2, y2 float32, color uint32, thickness float32) {
	if color&0xFF000000 == 0 {
		return
	}
	dx, dy := x2-x1, y2-y1
	inv := float32(1)
	if dx != 0 || dy != 0 {
		inv = 1 / math32.Sqrt(dx*dx+dy*dy)
	}
	nx := -dy * inv * thickness * 0.5
	ny := dx * inv * thickness * 0.5
	i := l.addVertices(
		Vertex{Pos: [2]float32{x1 + nx, y1 + ny}, Color: color},
		Vertex{Pos: [2]float32{x2 + nx, y2 + ny}, Color: color},
		Vertex{Pos: [2]float32{x2 - nx, y2 - ny}, Color: color},
		Vertex{Pos: [2]float32{x1 - nx, y1 - ny}, Color: color},
	)
	l.addQuadIndices(i)
}

// Quad is a textured quad: corners clockwise from the top-left and the UV rectangle
// u0, v0, u1, v1.
type Quad struct {
	Corners [4][2]float32
	UV      [4]float32
}

// AddQuads adds textured quads tinted by color.
func (l *List) AddQuads(quads []Quad, color uint32) {
	if color&0xFF000000 == 0 {
		return
	}
	for _, q := range quads {
		u0, v0, u1, v1 := q.UV[0], q.UV[1], q.UV[2], q.UV[3]
		i := l.addVertices(
			Vertex{Pos: q.Corners[0], TexCoord: [2]float32{u0, v0}, Color: color},
			Vertex{Pos: q.Corners[1], TexCoord: [2]float32{u1, v0}, Color: color},
			Vertex{Pos: q.Corners[2], TexCoord: [2]float32{u1, v1}, Color: color},
			Vertex{Pos: q.Corners[3], TexCoord: [2]float32{u0, v1}, Color: color},
		)
		l.addQuadIndices(i)
	}
}

// Corners returns the corners of the rectangle x, y, w, h rotated by rot degrees around
// the pivot px, py.
func Corners(x, y, w, h, px, py, rot float32) [4][2]float32 {
	q := Quad{Corners: [4][2]float32{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}}
	q.Rotate(px, py, rot)
	return q.Corners
}

// Rotate turns the quad by deg degrees, clockwise on screen, around px, py.
func (q *Quad) Rotate(px, py, deg float32) {
	if deg == 0 {
		return
	}
	sin, cos := math32.Sincos(deg * math32.Pi / 180)
	for i, p := range q.Corners {
		dx, dy := p[0]-px, p[1]-py
		q.Corners[i] = [2]float32{px + dx*cos - dy*sin, py + dx*sin + dy*cos}
	}
}

// Finalize closes the open command and drops empty ones. Call it before uploading.
func (l *List) Finalize() {
	if n := len(l.Cmds); n > 0 {
		l.Cmds[n-1].ElemCount = uint32(len(l.Idx)) - l.cmdIdx
	}
	kept := l.Cmds[:0]
	for _, c := range l.Cmds {
		if c.ElemCount > 0 {
			kept = append(kept, c)
		}
	}
	l.Cmds = kept
}
