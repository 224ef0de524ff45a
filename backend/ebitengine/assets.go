package ebitengine

import (
	"bytes"
	"errors"
	"fmt"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	"github.com/h2non/filetype"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"

	ui "github.com/go-theft-auto/ui"
)

// BuiltinFontName selects the built-in bitmap font in LoadFont.
const BuiltinFontName = "builtin"

// Texture wraps an ebiten image.
type Texture struct {
	img *ebiten.Image
}

// NewTexture wraps an existing image.
func NewTexture(img *ebiten.Image) *Texture { return &Texture{img: img} }

// Size implements ui.Texture.
func (t *Texture) Size() ui.Point {
	b := t.img.Bounds()
	return ui.Point{X: b.Dx(), Y: b.Dy()}
}

// Font is a text face rasterized at base pixels; other sizes scale it.
type Font struct {
	name string
	face text.Face
	base float64
}

// Name implements ui.Font.
func (f *Font) Name() string { return f.name }

func (f *Font) scale(size float32) float64 {
	if size <= 0 || f.base <= 0 {
		return 1
	}
	return float64(size) / f.base
}

// ErrNotImage is returned by LoadTexture for files that are not images.
var ErrNotImage = errors.New("ebitengine: not an image")

// readImageFile reads path and checks its magic bytes before any decoder sees it.
func readImageFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ebitengine: load texture %q: %w", path, err)
	}
	if !filetype.IsImage(data) {
		kind, _ := filetype.Match(data)
		return nil, fmt.Errorf("%w: %q looks like %s", ErrNotImage, path, kind.Extension)
	}
	return data, nil
}

// LoadTexture implements ui.AssetLoader.
func (r *Renderer) LoadTexture(path string) (ui.Texture, error) {
	data, err := readImageFile(path)
	if err != nil {
		return nil, err
	}
	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("ebitengine: load texture %q: %w", path, err)
	}
	return &Texture{img: img}, nil
}

// LoadFont implements ui.AssetLoader. An empty path or BuiltinFontName selects the
// built-in font.
func (r *Renderer) LoadFont(path string, size float32) (ui.Font, error) {
	if path == "" || strings.EqualFold(path, BuiltinFontName) {
		return r.builtin, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ebitengine: read font: %w", err)
	}
	otf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("ebitengine: parse font %q: %w", path, err)
	}
	face, err := opentype.NewFace(otf, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("ebitengine: font face %q: %w", path, err)
	}
	return &Font{name: path, face: text.NewGoXFace(face), base: float64(size)}, nil
}
