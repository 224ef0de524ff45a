package opengl

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	_ "golang.org/x/image/webp"

	ui "github.com/go-theft-auto/ui"
	"github.com/go-theft-auto/ui/backend/batch"
)

// Texture is a GL texture owned by a Renderer.
type Texture struct {
	ID   uint32
	size ui.Point
	rgba bool
}

// Size implements ui.Texture.
func (t *Texture) Size() ui.Point { return t.size }

// Font is a glyph atlas uploaded as a single-channel texture.
type Font struct {
	atlas *batch.Atlas
	tex   *Texture
}

// Name implements ui.Font.
func (f *Font) Name() string { return f.atlas.Name }

// BuiltinFontName loads the 8x8 bitmap font from LoadFont instead of a file.
const BuiltinFontName = "builtin"

// ErrNotImage is returned by LoadTexture for files that are not images.
var ErrNotImage = errors.New("opengl: not an image")

// readImageFile reads path and checks its magic bytes before any decoder sees it.
func readImageFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("opengl: open texture: %w", err)
	}
	if !filetype.IsImage(data) {
		kind, _ := filetype.Match(data)
		return nil, fmt.Errorf("%w: %q looks like %s", ErrNotImage, path, kind.Extension)
	}
	return data, nil
}

// LoadTexture decodes a PNG, JPEG, BMP or WebP file into an RGBA texture.
func (r *Renderer) LoadTexture(path string) (ui.Texture, error) {
	data, err := readImageFile(path)
	if err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("opengl: decode %q: %w", path, err)
	}
	return r.NewTexture(img), nil
}

// NewTexture uploads an image as an RGBA texture.
func (r *Renderer) NewTexture(img image.Image) *Texture {
	b := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Stride != 4*b.Dx() || b.Min != (image.Point{}) {
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	}
	t := &Texture{size: ui.Point{X: b.Dx(), Y: b.Dy()}, rgba: true}
	t.ID = upload(gl.RGBA, int32(b.Dx()), int32(b.Dy()), rgba.Pix, gl.LINEAR)
	r.textures = append(r.textures, t)
	return t
}

// LoadFont loads a TrueType or OpenType font rasterized at size pixels. An empty path or
// BuiltinFontName selects the bitmap font, which scales to any size.
func (r *Renderer) LoadFont(path string, size float32) (ui.Font, error) {
	if path == "" || strings.EqualFold(path, BuiltinFontName) {
		return r.builtin, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("opengl: read font: %w", err)
	}
	otf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("opengl: parse font %q: %w", path, err)
	}
	face, err := opentype.NewFace(otf, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("opengl: font face %q: %w", path, err)
	}
	defer face.Close()
	return r.newFont(batch.NewFaceAtlas(path, face, size)), nil
}

func (r *Renderer) newFont(a *batch.Atlas) *Font {
	t := &Texture{size: ui.Point{X: a.Width, Y: a.Height}}
	t.ID = upload(gl.RED, int32(a.Width), int32(a.Height), a.Pixels, gl.NEAREST)
	r.textures = append(r.textures, t)
	return &Font{atlas: a, tex: t}
}

func upload(format uint32, w, h int32, pix []byte, filter int32) uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, int32(format), w, h, 0, format, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return id
}
