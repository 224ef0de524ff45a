package ui

// Image draws a region of a texture stretched over the destination rectangle, picking the
// source region and tint by interaction state.
type Image struct {
	Element

	Texture  Texture
	Sources  StateRects // Zero Idle means the whole texture
	Blend    BlendMode
	Rotation float32
}

// NewImage creates an image element. tex may be nil, in which case nothing is drawn.
func NewImage(tex Texture, opts ...Option) *Image {
	img := &Image{}
	img.setupImage(img, tex)
	img.apply(opts)
	return img
}

func (img *Image) setupImage(self Node, tex Texture) {
	img.setup(self)
	img.Texture = tex
}

// DrawSelf paints the texture.
func (img *Image) DrawSelf(ctx *Context) {
	img.drawSource(ctx, img.Sources.For(img.State()))
}

func (img *Image) drawSource(ctx *Context, src Rect) {
	if img.Texture == nil {
		return
	}
	ctx.Renderer.DrawImage(img.Texture, img.destRect, ImageOptions{
		Source:   src,
		Origin:   Vec2{X: 0.5, Y: 0.5},
		Rotation: img.Rotation,
		Tint:     img.Colors.For(img.State()),
		Blend:    img.Blend,
	})
}
