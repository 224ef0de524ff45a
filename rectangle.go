package ui

// Rectangle is a solid or outlined rectangle colored by interaction state.
type Rectangle struct {
	Element

	Filled    bool
	Thickness float32 // Outline width when not filled
	Blend     BlendMode
}

// NewRectangle creates a rectangle element.
func NewRectangle(filled bool, opts ...Option) *Rectangle {
	r := &Rectangle{}
	r.setup(r)
	r.Filled = filled
	r.Thickness = 1
	r.apply(opts)
	return r
}

// DrawSelf paints the rectangle.
func (r *Rectangle) DrawSelf(ctx *Context) {
	ctx.Renderer.DrawRect(r.destRect, r.Colors.For(r.State()), r.Filled, r.Thickness, r.Blend)
}
