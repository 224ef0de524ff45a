package ui

// Button is an interactive image with a caption. The caption mirrors the button's state so
// its colors follow hover and press.
type Button struct {
	Image

	Caption *Text
}

// NewButton creates a button. font may be nil for an image-only button.
func NewButton(caption string, font Font, size float32, tex Texture, opts ...Option) *Button {
	b := &Button{}
	b.setupButton(b, caption, font, size, tex)
	b.apply(opts)
	return b
}

func (b *Button) setupButton(self Node, caption string, font Font, size float32, tex Texture) {
	b.setupImage(self, tex)
	b.Interactive = true
	b.CaptureInput = true
	b.Caption = newCaption(caption, font, size)
	b.MustAddChild(b.Caption)
}

// newCaption returns a text centered vertically in its parent, exempt from auto-arrange and
// mirroring the parent's state.
func newCaption(s string, font Font, size float32) *Text {
	t := NewText(s, font, size,
		WithName("caption"),
		WithSize(Size{W: Pct(100), H: Px(size)}),
		WithAnchor(0, 0.5),
		WithOrigin(0, 0.5),
		ExemptFromArrange(),
		CopyParent(),
	)
	t.Align = AlignCenter
	return t
}
