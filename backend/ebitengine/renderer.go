// Package ebitengine renders the ui package with Ebitengine and reads its input.
//
// Call Begin with the screen image at the start of Draw, then draw the GUI:
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//	    g.renderer.Begin(screen)
//	    g.gui.Draw()
//	}
package ebitengine

import (
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/chewxy/math32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	ui "github.com/go-theft-auto/ui"
)

// Renderer implements ui.Renderer and ui.AssetLoader on an ebiten target image.
type Renderer struct {
	target  *ebiten.Image
	size    ui.Point
	builtin *Font
	pixel   *ebiten.Image
}

var (
	_ ui.Renderer    = (*Renderer)(nil)
	_ ui.AssetLoader = (*Renderer)(nil)
)

// NewRenderer creates a renderer with the built-in font loaded. The viewport is
// width x height until the first Begin.
func NewRenderer(width, height int) *Renderer {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &Renderer{
		size:    ui.Point{X: width, Y: height},
		builtin: &Font{name: BuiltinFontName, face: text.NewGoXFace(basicfont.Face7x13), base: 13},
		pixel:   pixel,
	}
}

// Begin sets the image subsequent draw calls paint onto, usually the screen.
func (r *Renderer) Begin(target *ebiten.Image) {
	r.target = target
	b := target.Bounds()
	r.size = ui.Point{X: b.Dx(), Y: b.Dy()}
}

// ViewportSize implements ui.Renderer.
func (r *Renderer) ViewportSize() ui.Point { return r.size }

// BuiltinFont returns the 7x13 bitmap font.
func (r *Renderer) BuiltinFont() ui.Font { return r.builtin }

func toColor(c ui.Color) color.NRGBA {
	red, g, b, a := c.RGBA8()
	return color.NRGBA{R: red, G: g, B: b, A: a}
}

var blendMultiply = ebiten.Blend{
	BlendFactorSourceRGB:        ebiten.BlendFactorDestinationColor,
	BlendFactorSourceAlpha:      ebiten.BlendFactorDestinationAlpha,
	BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceAlpha,
	BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
	BlendOperationRGB:           ebiten.BlendOperationAdd,
	BlendOperationAlpha:         ebiten.BlendOperationAdd,
}

func blendOf(m ui.BlendMode) ebiten.Blend {
	switch m {
	case ui.BlendAdditive:
		return ebiten.BlendLighter
	case ui.BlendMultiply:
		return blendMultiply
	case ui.BlendNone:
		return ebiten.BlendCopy
	default:
		return ebiten.BlendSourceOver
	}
}

// DrawRect implements ui.Renderer.
func (r *Renderer) DrawRect(rc ui.Rect, c ui.Color, filled bool, thickness float32, blend ui.BlendMode) {
	if r.target == nil || c>>24 == 0 {
		return
	}
	x, y, w, h := float32(rc.X), float32(rc.Y), float32(rc.W), float32(rc.H)
	if blend == ui.BlendAlpha {
		if filled {
			vector.DrawFilledRect(r.target, x, y, w, h, toColor(c), false)
		} else {
			vector.StrokeRect(r.target, x+thickness/2, y+thickness/2, w-thickness, h-thickness, thickness, toColor(c), false)
		}
		return
	}
	if filled {
		r.fill(x, y, w, h, c, blend)
		return
	}
	t := math32.Min(math32.Max(thickness, 1), math32.Min(w, h)/2)
	r.fill(x, y, w, t, c, blend)
	r.fill(x, y+h-t, w, t, c, blend)
	r.fill(x, y+t, t, h-2*t, c, blend)
	r.fill(x+w-t, y+t, t, h-2*t, c, blend)
}

func (r *Renderer) fill(x, y, w, h float32, c ui.Color, blend ui.BlendMode) {
	op := &ebiten.DrawImageOptions{Blend: blendOf(blend)}
	op.GeoM.Scale(float64(w), float64(h))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(toColor(c))
	r.target.DrawImage(r.pixel, op)
}

// DrawImage implements ui.Renderer. A nil or foreign texture draws nothing.
func (r *Renderer) DrawImage(tex ui.Texture, dst ui.Rect, opts ui.ImageOptions) {
	t, ok := tex.(*Texture)
	if !ok || t == nil || r.target == nil || dst.W == 0 || dst.H == 0 {
		return
	}
	img := t.img
	if !opts.Source.IsZero() {
		s := opts.Source
		img = t.img.SubImage(image.Rect(s.X, s.Y, s.Right(), s.Bottom())).(*ebiten.Image)
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{Blend: blendOf(opts.Blend), Filter: ebiten.FilterLinear}
	w, h := float64(dst.W), float64(dst.H)
	ox, oy := w*float64(opts.Origin.X), h*float64(opts.Origin.Y)
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(-ox, -oy)
	op.GeoM.Rotate(float64(opts.Rotation) * math.Pi / 180)
	op.GeoM.Translate(float64(dst.X)+ox, float64(dst.Y)+oy)
	if opts.Tint != 0 {
		op.ColorScale.ScaleWithColor(toColor(opts.Tint))
	}
	r.target.DrawImage(img, op)
}

func (r *Renderer) fontOf(f ui.Font) *Font {
	if ef, ok := f.(*Font); ok && ef != nil {
		return ef
	}
	return r.builtin
}

// textBlock wraps text and returns the lines with the block's top-left corner, size and
// line height, all in screen pixels.
func (r *Renderer) textBlock(f *Font, s string, pos ui.Point, opts ui.TextOptions) (lines []string, x, y, w, h, lineH float64) {
	scale := f.scale(opts.Size)
	measure := func(line string) float32 { return float32(text.Advance(line, f.face) * scale) }
	if opts.MaxWidth > 0 {
		lines = ui.WrapText(s, opts.MaxWidth, measure, ui.WrapAuto)
	} else {
		lines = strings.Split(s, "\n")
	}
	for _, line := range lines {
		w = max(w, float64(measure(line)))
	}
	m := f.face.Metrics()
	lineH = (m.HAscent + m.HDescent + m.HLineGap) * scale
	h = lineH * float64(len(lines))
	x = float64(pos.X) - float64(math32.Floor(float32(w)*opts.Origin.X))
	y = float64(pos.Y) - float64(math32.Floor(float32(h)*opts.Origin.Y))
	return lines, x, y, w, h, lineH
}

// MeasureText implements ui.Renderer.
func (r *Renderer) MeasureText(font ui.Font, s string, pos ui.Point, opts ui.TextOptions) ui.Rect {
	if s == "" {
		return ui.Rect{X: pos.X, Y: pos.Y}
	}
	_, x, y, w, h, _ := r.textBlock(r.fontOf(font), s, pos, opts)
	return ui.Rect{X: int(x), Y: int(y), W: int(math32.Ceil(float32(w))), H: int(math32.Ceil(float32(h)))}
}

var outlineOffsets = [8][2]float64{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}}

// DrawText implements ui.Renderer. Outlines stamp the text eight times around its position
// in the outline color first.
func (r *Renderer) DrawText(font ui.Font, s string, pos ui.Point, opts ui.TextOptions) {
	if s == "" || r.target == nil {
		return
	}
	f := r.fontOf(font)
	lines, x, y, _, _, lineH := r.textBlock(f, s, pos, opts)
	scale := f.scale(opts.Size)
	joined := strings.Join(lines, "\n")

	stamp := func(dx, dy float64, c ui.Color) {
		op := &text.DrawOptions{}
		op.LineSpacing = lineH / scale
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(x+dx-float64(pos.X), y+dy-float64(pos.Y))
		op.GeoM.Rotate(float64(opts.Rotation) * math.Pi / 180)
		op.GeoM.Translate(float64(pos.X), float64(pos.Y))
		op.ColorScale.ScaleWithColor(toColor(c))
		op.Blend = blendOf(opts.Blend)
		text.Draw(r.target, joined, f.face, op)
	}
	if opts.OutlineWidth > 0 && opts.OutlineColor != 0 {
		ow := float64(opts.OutlineWidth)
		for _, o := range outlineOffsets {
			stamp(o[0]*ow, o[1]*ow, opts.OutlineColor)
		}
	}
	c := opts.Color
	if c == 0 {
		c = ui.ColorWhite
	}
	stamp(0, 0, c)
}
