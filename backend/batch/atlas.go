package batch

import (
	"image"
	"strings"

	"github.com/chewxy/math32"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Glyph locates one rune in an atlas. Sizes are in atlas pixels at the atlas base size.
type Glyph struct {
	UV      [4]float32 // u0, v0, u1, v1
	W, H    float32
	Advance float32
}

// Atlas is a single-channel glyph texture plus the metrics to lay text out with it.
// Pixels holds one coverage byte per texel, row-major.
type Atlas struct {
	Name          string
	Pixels        []byte
	Width, Height int
	BaseSize      float32 // Pixel size the glyphs were rasterized at
	LineHeight    float32

	glyphs   map[rune]Glyph
	fallback rune
}

// Glyph returns the glyph for r, mapping unknown runes to an ASCII look-alike or '?'.
func (a *Atlas) Glyph(r rune) (Glyph, bool) {
	if g, ok := a.glyphs[r]; ok {
		return g, true
	}
	if g, ok := a.glyphs[Fallback(r)]; ok {
		return g, true
	}
	g, ok := a.glyphs[a.fallback]
	return g, ok
}

func (a *Atlas) scale(size float32) float32 {
	if size <= 0 || a.BaseSize <= 0 {
		return 1
	}
	return size / a.BaseSize
}

// Advance returns the width of a single line of text at the given pixel size.
func (a *Atlas) Advance(line string, size float32) float32 {
	var w float32
	for _, r := range line {
		if g, ok := a.Glyph(r); ok {
			w += g.Advance
		}
	}
	return w * a.scale(size)
}

// Measure returns the size of text at the given pixel size. Lines break on '\n'.
func (a *Atlas) Measure(text string, size float32) (w, h float32) {
	if text == "" {
		return 0, 0
	}
	lines := strings.Split(text, "\n")
	for _, line := range lines {
		w = math32.Max(w, a.Advance(line, size))
	}
	return w, float32(len(lines)) * a.LineHeight * a.scale(size)
}

// Layout appends one quad per visible glyph of text, with the top-left of the first line at
// x, y. Lines break on '\n'.
func (a *Atlas) Layout(dst []Quad, text string, x, y, size float32) []Quad {
	s := a.scale(size)
	penX, penY := x, y
	for _, r := range text {
		if r == '\n' {
			penX = x
			penY += a.LineHeight * s
			continue
		}
		g, ok := a.Glyph(r)
		if !ok {
			continue
		}
		if r != ' ' {
			dst = append(dst, Quad{
				Corners: Corners(penX, penY, g.W*s, g.H*s, 0, 0, 0),
				UV:      g.UV,
			})
		}
		penX += g.Advance * s
	}
	return dst
}

// atlasColumns is the number of glyph cells per atlas row.
const atlasColumns = 16

// NewFaceAtlas rasterizes the printable ASCII range of face, plus extra runes, into a
// fixed-cell atlas.
func NewFaceAtlas(name string, face font.Face, size float32, extra ...rune) *Atlas {
	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	cellH := (m.Ascent + m.Descent).Ceil() + 1

	runes := make([]rune, 0, 96+len(extra))
	for r := rune(32); r < 127; r++ {
		runes = append(runes, r)
	}
	runes = append(runes, extra...)

	cellW := 1
	for _, r := range runes {
		if adv, ok := face.GlyphAdvance(r); ok {
			cellW = max(cellW, adv.Ceil()+1)
		}
	}

	rows := (len(runes) + atlasColumns - 1) / atlasColumns
	img := image.NewAlpha(image.Rect(0, 0, atlasColumns*cellW, rows*cellH))
	d := font.Drawer{Dst: img, Src: image.Opaque, Face: face}

	a := &Atlas{
		Name:       name,
		Width:      img.Rect.Dx(),
		Height:     img.Rect.Dy(),
		BaseSize:   size,
		LineHeight: float32(m.Height.Ceil()),
		glyphs:     make(map[rune]Glyph, len(runes)),
		fallback:   '?',
	}
	for i, r := range runes {
		adv, ok := face.GlyphAdvance(r)
		if !ok {
			continue
		}
		cx, cy := (i%atlasColumns)*cellW, (i/atlasColumns)*cellH
		d.Dot = fixed.P(cx, cy+ascent)
		d.DrawString(string(r))
		a.glyphs[r] = Glyph{
			UV:      a.uv(cx, cy, cellW, cellH),
			W:       float32(cellW),
			H:       float32(cellH),
			Advance: float32(adv.Ceil()),
		}
	}
	a.Pixels = img.Pix
	return a
}

func (a *Atlas) uv(x, y, w, h int) [4]float32 {
	fw, fh := float32(a.Width), float32(a.Height)
	return [4]float32{float32(x) / fw, float32(y) / fh, float32(x+w) / fw, float32(y+h) / fh}
}
