// Package opengl renders the ui package with OpenGL 4.1 and reads input from GLFW.
//
// Draw calls are batched into a batch.List and submitted by Flush, once per frame:
//
//	r, _ := opengl.NewRenderer(w, h)
//	g := ui.New(r)
//	for !window.ShouldClose() {
//	    g.Update(adapter.Update(), dt)
//	    g.Draw()
//	    r.Flush()
//	}
package opengl

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/chewxy/math32"
	"github.com/go-gl/gl/v4.1-core/gl"

	ui "github.com/go-theft-auto/ui"
	"github.com/go-theft-auto/ui/backend/batch"
)

// Renderer implements ui.Renderer and ui.AssetLoader on OpenGL.
type Renderer struct {
	shader        uint32
	vao, vbo, ebo uint32
	projLoc       int32
	texLoc        int32
	useTexLoc     int32
	isRGBATexLoc  int32
	width, height int

	list     *batch.List
	quads    []batch.Quad
	builtin  *Font
	textures []*Texture
	byID     map[uint32]*Texture
}

var (
	_ ui.Renderer    = (*Renderer)(nil)
	_ ui.AssetLoader = (*Renderer)(nil)
)

// NewRenderer creates a renderer for a framebuffer of the given size. A GL context must be
// current.
func NewRenderer(width, height int) (*Renderer, error) {
	r := &Renderer{
		width:  width,
		height: height,
		list:   batch.Acquire(),
		byID:   make(map[uint32]*Texture),
	}

	var err error
	r.shader, err = createShaderProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("opengl: create shader: %w", err)
	}
	r.projLoc = gl.GetUniformLocation(r.shader, gl.Str("projection\x00"))
	r.texLoc = gl.GetUniformLocation(r.shader, gl.Str("tex\x00"))
	r.useTexLoc = gl.GetUniformLocation(r.shader, gl.Str("useTexture\x00"))
	r.isRGBATexLoc = gl.GetUniformLocation(r.shader, gl.Str("isRGBATexture\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	stride := int32(unsafe.Sizeof(batch.Vertex{}))
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, unsafe.Offsetof(batch.Vertex{}.TexCoord))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 4, gl.UNSIGNED_BYTE, true, stride, unsafe.Offsetof(batch.Vertex{}.Color))
	gl.EnableVertexAttribArray(2)
	gl.BindVertexArray(0)

	r.builtin = r.newFont(batch.NewBitmapAtlas())
	return r, nil
}

// Resize updates the framebuffer size.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// ViewportSize implements ui.Renderer.
func (r *Renderer) ViewportSize() ui.Point {
	return ui.Point{X: r.width, Y: r.height}
}

// BuiltinFont returns the bitmap font.
func (r *Renderer) BuiltinFont() ui.Font { return r.builtin }

// DrawRect implements ui.Renderer.
func (r *Renderer) DrawRect(rc ui.Rect, c ui.Color, filled bool, thickness float32, blend ui.BlendMode) {
	r.list.SetState(0, blend)
	x, y, w, h := float32(rc.X), float32(rc.Y), float32(rc.W), float32(rc.H)
	if filled {
		r.list.AddRect(x, y, w, h, uint32(c))
		return
	}
	r.list.AddRectOutline(x, y, w, h, uint32(c), math32.Max(thickness, 1))
}

// DrawImage implements ui.Renderer. A nil or foreign texture draws nothing.
func (r *Renderer) DrawImage(tex ui.Texture, dst ui.Rect, opts ui.ImageOptions) {
	t, ok := tex.(*Texture)
	if !ok || t == nil || dst.W == 0 || dst.H == 0 {
		return
	}
	src := opts.Source
	if src.IsZero() {
		src = ui.Rect{W: t.size.X, H: t.size.Y}
	}
	tw, th := float32(t.size.X), float32(t.size.Y)
	x, y, w, h := float32(dst.X), float32(dst.Y), float32(dst.W), float32(dst.H)
	px, py := x+w*opts.Origin.X, y+h*opts.Origin.Y

	tint := opts.Tint
	if tint == 0 {
		tint = ui.ColorWhite
	}
	r.list.SetState(t.ID, opts.Blend)
	r.quads = append(r.quads[:0], batch.Quad{
		Corners: batch.Corners(x, y, w, h, px, py, opts.Rotation),
		UV: [4]float32{
			float32(src.X) / tw, float32(src.Y) / th,
			float32(src.Right()) / tw, float32(src.Bottom()) / th,
		},
	})
	r.list.AddQuads(r.quads, uint32(tint))
}

func (r *Renderer) fontOf(f ui.Font) *Font {
	if gf, ok := f.(*Font); ok && gf != nil {
		return gf
	}
	return r.builtin
}

// textBlock lays out text into lines and returns them with the block's top-left corner and
// size, honoring MaxWidth and Origin.
func (r *Renderer) textBlock(f *Font, text string, pos ui.Point, opts ui.TextOptions) (lines []string, x, y, w, h float32) {
	measure := func(line string) float32 { return f.atlas.Advance(line, opts.Size) }
	if opts.MaxWidth > 0 {
		lines = ui.WrapText(text, opts.MaxWidth, measure, ui.WrapAuto)
	} else {
		lines = strings.Split(text, "\n")
	}
	for _, line := range lines {
		w = math32.Max(w, measure(line))
	}
	_, lineH := f.atlas.Measure("M", opts.Size)
	h = lineH * float32(len(lines))
	x = float32(pos.X) - math32.Floor(w*opts.Origin.X)
	y = float32(pos.Y) - math32.Floor(h*opts.Origin.Y)
	return lines, x, y, w, h
}

// MeasureText implements ui.Renderer.
func (r *Renderer) MeasureText(font ui.Font, text string, pos ui.Point, opts ui.TextOptions) ui.Rect {
	if text == "" {
		return ui.Rect{X: pos.X, Y: pos.Y}
	}
	_, x, y, w, h := r.textBlock(r.fontOf(font), text, pos, opts)
	return ui.Rect{X: int(x), Y: int(y), W: int(math32.Ceil(w)), H: int(math32.Ceil(h))}
}

// outlineOffsets are the eight directions an outline is stamped in.
var outlineOffsets = [8][2]float32{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}}

// DrawText implements ui.Renderer. Outlines are drawn by stamping the text in the outline
// color around the glyph position before drawing it.
func (r *Renderer) DrawText(font ui.Font, text string, pos ui.Point, opts ui.TextOptions) {
	if text == "" {
		return
	}
	f := r.fontOf(font)
	lines, x, y, _, _ := r.textBlock(f, text, pos, opts)
	_, lineH := f.atlas.Measure("M", opts.Size)

	r.list.SetState(f.tex.ID, opts.Blend)
	stamp := func(dx, dy float32, c ui.Color) {
		r.quads = r.quads[:0]
		for i, line := range lines {
			r.quads = f.atlas.Layout(r.quads, line, x+dx, y+dy+float32(i)*lineH, opts.Size)
		}
		if opts.Rotation != 0 {
			px, py := float32(pos.X), float32(pos.Y)
			for i := range r.quads {
				r.quads[i].Rotate(px, py, opts.Rotation)
			}
		}
		r.list.AddQuads(r.quads, uint32(c))
	}
	if opts.OutlineWidth > 0 && opts.OutlineColor != 0 {
		for _, o := range outlineOffsets {
			stamp(o[0]*opts.OutlineWidth, o[1]*opts.OutlineWidth, opts.OutlineColor)
		}
	}
	c := opts.Color
	if c == 0 {
		c = ui.ColorWhite
	}
	stamp(0, 0, c)
}

// setBlend maps a blend mode to the GL blend function.
func setBlend(m ui.BlendMode) {
	switch m {
	case ui.BlendAdditive:
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE)
	case ui.BlendMultiply:
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.DST_COLOR, gl.ONE_MINUS_SRC_ALPHA)
	case ui.BlendNone:
		gl.Disable(gl.BLEND)
	default:
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	}
}

// Flush submits everything drawn since the last Flush and clears the batch. GL state the
// renderer touches is restored afterwards.
func (r *Renderer) Flush() {
	dl := r.list
	defer dl.Clear()
	dl.Finalize()
	if len(dl.Vtx) == 0 {
		return
	}

	var lastProgram, lastBlendSrc, lastBlendDst int32
	var lastScissorBox [4]int32
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &lastProgram)
	gl.GetIntegerv(gl.BLEND_SRC_ALPHA, &lastBlendSrc)
	gl.GetIntegerv(gl.BLEND_DST_ALPHA, &lastBlendDst)
	gl.GetIntegerv(gl.SCISSOR_BOX, &lastScissorBox[0])
	blendEnabled := gl.IsEnabled(gl.BLEND)
	depthEnabled := gl.IsEnabled(gl.DEPTH_TEST)
	cullEnabled := gl.IsEnabled(gl.CULL_FACE)
	scissorEnabled := gl.IsEnabled(gl.SCISSOR_TEST)

	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)

	gl.UseProgram(r.shader)
	proj := orthoMatrix(0, float32(r.width), float32(r.height), 0, -1, 1)
	gl.UniformMatrix4fv(r.projLoc, 1, false, &proj[0])
	gl.ActiveTexture(gl.TEXTURE0)
	gl.Uniform1i(r.texLoc, 0)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(dl.Vtx)*int(unsafe.Sizeof(batch.Vertex{})), gl.Ptr(dl.Vtx), gl.STREAM_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(dl.Idx)*2, gl.Ptr(dl.Idx), gl.STREAM_DRAW)

	for _, cmd := range dl.Cmds {
		// GL scissor boxes are bottom-up.
		clipX := int32(math32.Max(cmd.ClipRect[0], 0))
		clipY := int32(math32.Max(float32(r.height)-cmd.ClipRect[3], 0))
		clipW := int32(math32.Min(cmd.ClipRect[2], float32(r.width))) - clipX
		clipH := int32(math32.Min(float32(r.height)-cmd.ClipRect[1], float32(r.height))) - clipY
		if clipW <= 0 || clipH <= 0 {
			continue
		}
		gl.Scissor(clipX, clipY, clipW, clipH)
		setBlend(cmd.Blend)

		if cmd.TextureID != 0 {
			gl.BindTexture(gl.TEXTURE_2D, cmd.TextureID)
			gl.Uniform1i(r.useTexLoc, 1)
			gl.Uniform1i(r.isRGBATexLoc, boolToInt(r.isRGBA(cmd.TextureID)))
		} else {
			gl.Uniform1i(r.useTexLoc, 0)
			gl.Uniform1i(r.isRGBATexLoc, 0)
		}
		gl.DrawElementsBaseVertexWithOffset(gl.TRIANGLES, int32(cmd.ElemCount), gl.UNSIGNED_SHORT,
			uintptr(cmd.IndexOffset)*2, int32(cmd.VertexOffset))
	}

	gl.UseProgram(uint32(lastProgram))
	gl.BlendFunc(uint32(lastBlendSrc), uint32(lastBlendDst))
	setEnabled(gl.BLEND, blendEnabled)
	setEnabled(gl.DEPTH_TEST, depthEnabled)
	setEnabled(gl.CULL_FACE, cullEnabled)
	setEnabled(gl.SCISSOR_TEST, scissorEnabled)
	gl.Scissor(lastScissorBox[0], lastScissorBox[1], lastScissorBox[2], lastScissorBox[3])
	gl.BindVertexArray(0)
}

func (r *Renderer) isRGBA(id uint32) bool {
	if len(r.byID) != len(r.textures) {
		clear(r.byID)
		for _, t := range r.textures {
			r.byID[t.ID] = t
		}
	}
	t, ok := r.byID[id]
	return ok && t.rgba
}

func setEnabled(capability uint32, on bool) {
	if on {
		gl.Enable(capability)
	} else {
		gl.Disable(capability)
	}
}

func boolToInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

// Delete releases every GL resource the renderer created, textures and fonts included.
func (r *Renderer) Delete() {
	for _, t := range r.textures {
		gl.DeleteTextures(1, &t.ID)
	}
	r.textures = nil
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.shader != 0 {
		gl.DeleteProgram(r.shader)
	}
	batch.Release(r.list)
	r.list = nil
}
