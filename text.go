package ui

// Text is a single string drawn with a font. Its actual rectangle is the measured extent
// of the string, placed by the alignment inside the destination rectangle.
type Text struct {
	Element

	Font     Font
	FontSize float32
	Align    Align
	WordWrap bool // Wrap at the destination width
	Rotation float32
	Blend    BlendMode

	OutlineColors StateColors
	OutlineWidths StateWidths

	text     string
	measured Rect // Relative to the destination rectangle's top-left
}

// NewText creates a text element.
func NewText(s string, font Font, size float32, opts ...Option) *Text {
	t := &Text{}
	t.setup(t)
	t.text = s
	t.Font = font
	t.FontSize = size
	t.apply(opts)
	return t
}

// Text returns the string.
func (t *Text) Text() string { return t.text }

// SetText replaces the string. The new extent is measured on the next Update.
func (t *Text) SetText(s string) { t.text = s }

// placement returns the draw position and options shared by measuring and drawing.
func (t *Text) placement() (Point, TextOptions) {
	r := t.destRect
	f := t.Align.factor()
	pos := Point{X: r.X + floorMul(r.W, f), Y: r.Y}
	state := t.State()
	opts := TextOptions{
		Size:         t.FontSize,
		Origin:       Vec2{X: f},
		Rotation:     t.Rotation,
		Color:        t.Colors.For(state),
		OutlineWidth: t.OutlineWidths.For(state),
		OutlineColor: t.OutlineColors.For(state),
		Blend:        t.Blend,
	}
	if t.WordWrap {
		opts.MaxWidth = float32(r.W)
	}
	return pos, opts
}

// UpdateSelf measures the string.
func (t *Text) UpdateSelf(ctx *Context) {
	t.measure(ctx)
}

func (t *Text) measure(ctx *Context) {
	pos, opts := t.placement()
	origin := t.destRect.Min()
	if t.Font == nil || t.text == "" || ctx.Renderer == nil {
		t.measured = Rect{X: pos.X - origin.X}
		return
	}
	m := ctx.Renderer.MeasureText(t.Font, t.text, pos, opts)
	t.measured = m.Translate(Point{X: -origin.X, Y: -origin.Y})
}

// ActualDestRect returns the measured extent of the string.
func (t *Text) ActualDestRect() Rect {
	return t.measured.Translate(t.destRect.Min())
}

// DrawSelf paints the string.
func (t *Text) DrawSelf(ctx *Context) {
	if t.Font == nil || t.text == "" {
		return
	}
	pos, opts := t.placement()
	ctx.Renderer.DrawText(t.Font, t.text, pos, opts)
}
