package ui

// TextInput is a single-value text field. Pressing it starts input; Return, Escape or a
// primary click elsewhere ends it. While receiving input it reports the pressed state and
// shows a blinking caret after the value.
type TextInput struct {
	Image

	Value       *Text
	Placeholder *Text
	Caret       *Text

	Filter        CharFilter
	BlinkInterval float32 // Seconds per caret phase

	// OnSubmit runs when Return ends input.
	OnSubmit Handler

	receiving bool
	caretOn   bool
	blink     float32
}

// NewTextInput creates an empty text input.
func NewTextInput(font Font, size float32, tex Texture, opts ...Option) *TextInput {
	t := &TextInput{}
	t.setupImage(t, tex)
	t.Interactive = true
	t.CaptureInput = true
	t.BlinkInterval = 0.5

	field := func(name, s string) *Text {
		txt := NewText(s, font, size,
			WithName(name),
			WithSize(Size{W: Pct(100), H: Px(size)}),
			WithAnchor(0, 0.5),
			WithOrigin(0, 0.5),
			ExemptFromArrange(),
			CopyParent(),
		)
		return txt
	}
	t.Value = field("value", "")
	t.Placeholder = field("placeholder", "")
	t.Placeholder.Colors = UniformColors(ColorGray)
	t.Caret = field("caret", "|")
	t.Caret.SetSize(Size{W: Px(size), H: Px(size)})
	t.Caret.Visible = false

	t.MustAddChild(t.Value)
	t.MustAddChild(t.Placeholder)
	t.MustAddChild(t.Caret)
	t.apply(opts)
	return t
}

// Text returns the value.
func (t *TextInput) Text() string { return t.Value.Text() }

// SetText replaces the value without filtering, firing OnValueChange when it changes.
func (t *TextInput) SetText(s string) {
	if s == t.Value.Text() {
		return
	}
	t.Value.SetText(s)
	if t.OnValueChange != nil {
		t.OnValueChange(t.self())
	}
}

// ReceivingInput reports whether the field has keyboard focus.
func (t *TextInput) ReceivingInput() bool { return t.receiving }

// SetReceivingInput gives or takes keyboard focus.
func (t *TextInput) SetReceivingInput(v bool) {
	t.receiving = v
	t.ForceActiveState = v
	t.caretOn = v
	t.blink = 0
}

func (t *TextInput) insert(s string) {
	t.SetText(t.Filter.Apply(t.Value.Text(), s))
}

func (t *TextInput) deleteLast() {
	r := []rune(t.Value.Text())
	if len(r) == 0 {
		return
	}
	t.SetText(string(r[:len(r)-1]))
}

// UpdateSelf blinks the caret and places it after the value's measured extent.
func (t *TextInput) UpdateSelf(ctx *Context) {
	if t.receiving {
		t.blink += ctx.DeltaTime
		if t.BlinkInterval > 0 && t.blink >= t.BlinkInterval {
			t.blink -= t.BlinkInterval
			t.caretOn = !t.caretOn
		}
	} else {
		t.caretOn = false
	}

	// The value's children update after this, so bring its rectangle and extent up to
	// date first.
	t.Value.ResolveLayout(ctx)
	t.Value.measure(ctx)
	region := t.PaddedRect()
	end := t.Value.ActualDestRect()
	t.Caret.SetOffset(Point{X: end.Right() - region.X, Y: t.Value.Offset().Y})

	t.Caret.Visible = t.receiving && t.caretOn
	t.Placeholder.Visible = !t.receiving && t.Value.Text() == ""
}

// InputSelf handles focus changes and editing keys.
func (t *TextInput) InputSelf(ctx *Context, st *UIUpdateInputState) {
	in := ctx.input()

	switch {
	case t.PressedThisFrame(MouseButtonPrimary), t.PressedThisFrame(MouseButtonSecondary):
		if !t.receiving {
			t.SetReceivingInput(true)
		}
	case t.receiving && in.PressedNow(MouseButtonPrimary) && !t.destRect.Contains(st.Cursor):
		t.SetReceivingInput(false)
	}
	if !t.receiving {
		return
	}

	if in.KeyReleased(KeyReturn) {
		t.SetReceivingInput(false)
		if t.OnSubmit != nil {
			t.OnSubmit(t.self())
		}
		return
	}
	if in.KeyPressed(KeyEscape) {
		t.SetReceivingInput(false)
		return
	}

	if chars := in.Chars(); len(chars) > 0 {
		t.insert(string(chars))
	}
	if in.KeyRepeated(KeyBackspace) {
		t.deleteLast()
	}
	if in.ModCtrl && in.KeyPressed(KeyV) {
		if s := clipboardText(ctx.Clipboard); s != "" {
			t.insert(s)
		}
	}
}
