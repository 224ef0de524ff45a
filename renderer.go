package ui

// BlendMode selects how a drawable is composited onto the target.
type BlendMode int

const (
	BlendAlpha BlendMode = iota
	BlendAdditive
	BlendMultiply
	BlendNone
)

// Texture is an image loaded by the renderer backend. The core only needs its size.
type Texture interface {
	Size() Point
}

// Font is a font handle owned by the renderer backend.
type Font interface {
	// Name identifies the font for logging.
	Name() string
}

// ImageOptions configures a DrawImage call.
type ImageOptions struct {
	Source   Rect // Zero means the whole texture
	Origin   Vec2 // Pivot for rotation, as a fraction of the destination size
	Rotation float32
	Tint     Color // Zero means untinted
	Blend    BlendMode
}

// TextOptions configures DrawText and MeasureText. Both calls must receive identical
// options so measuring and painting agree about where text sits.
type TextOptions struct {
	Size         float32
	MaxWidth     float32 // Wrap width; zero disables wrapping
	Origin       Vec2    // Fraction of the text's bounding box placed at the position
	Rotation     float32
	Color        Color
	OutlineWidth float32
	OutlineColor Color
	Blend        BlendMode
}

// Renderer is the rendering backend collaborator. Implementations live in backend/.
type Renderer interface {
	DrawImage(tex Texture, dst Rect, opts ImageOptions)
	DrawText(font Font, text string, pos Point, opts TextOptions)
	MeasureText(font Font, text string, pos Point, opts TextOptions) Rect
	DrawRect(r Rect, c Color, filled bool, thickness float32, blend BlendMode)
	ViewportSize() Point
}

// AssetLoader resolves fonts and images referenced by stylesheets.
type AssetLoader interface {
	LoadTexture(path string) (Texture, error)
	LoadFont(path string, size float32) (Font, error)
}
