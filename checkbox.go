package ui

// valueSetter is implemented by toggles. Clicks go through it so RadioButton's exclusivity
// applies to user input as well as programmatic changes.
type valueSetter interface {
	SetValue(v bool)
}

// CheckBox toggles between checked and unchecked on primary release.
type CheckBox struct {
	Image

	Caption *Text

	// CheckedSources replace Sources while checked. Zero entries fall back to Sources.
	CheckedSources StateRects

	// AllowUncheck lets a click clear the box. RadioButtons turn it off.
	AllowUncheck bool

	checked bool
}

// NewCheckBox creates a check box with an optional caption to its right.
func NewCheckBox(caption string, font Font, size float32, tex Texture, opts ...Option) *CheckBox {
	c := &CheckBox{}
	c.setupCheckBox(c, caption, font, size, tex)
	c.apply(opts)
	return c
}

func (c *CheckBox) setupCheckBox(self Node, caption string, font Font, size float32, tex Texture) {
	c.setupImage(self, tex)
	c.Interactive = true
	c.CaptureInput = true
	c.AllowUncheck = true
	c.Caption = newCaption(caption, font, size)
	c.Caption.Align = AlignLeft
	c.Caption.SetAnchor(Vec2{X: 1, Y: 0.5})
	c.Caption.SetOffset(Point{X: int(size / 2)})
	c.MustAddChild(c.Caption)
}

// Checked reports the value.
func (c *CheckBox) Checked() bool { return c.checked }

// SetValue sets the value, firing OnValueChange only when it changes.
func (c *CheckBox) SetValue(v bool) {
	if v == c.checked {
		return
	}
	c.checked = v
	if c.OnValueChange != nil {
		c.OnValueChange(c.self())
	}
}

// InputSelf toggles on primary release.
func (c *CheckBox) InputSelf(ctx *Context, st *UIUpdateInputState) {
	if !c.ReleasedThisFrame(MouseButtonPrimary) {
		return
	}
	if c.checked && !c.AllowUncheck {
		return
	}
	if vs, ok := c.self().(valueSetter); ok {
		vs.SetValue(!c.checked)
	}
}

// DrawSelf paints the checked or unchecked source.
func (c *CheckBox) DrawSelf(ctx *Context) {
	state := c.State()
	src := c.Sources.For(state)
	if c.checked {
		if r := c.CheckedSources.For(state); !r.IsZero() {
			src = r
		}
	}
	c.drawSource(ctx, src)
}

// RadioButton is a check box that unchecks its sibling RadioButtons when checked.
// Siblings are the RadioButtons sharing its parent.
type RadioButton struct {
	CheckBox
}

// NewRadioButton creates a radio button.
func NewRadioButton(caption string, font Font, size float32, tex Texture, opts ...Option) *RadioButton {
	r := &RadioButton{}
	r.setupCheckBox(r, caption, font, size, tex)
	r.AllowUncheck = false
	r.apply(opts)
	return r
}

// SetValue checks or unchecks the button. Checking it unchecks every sibling RadioButton,
// each firing its own OnValueChange.
func (r *RadioButton) SetValue(v bool) {
	if v && r.parent != nil {
		for _, n := range r.parent.children {
			if o, ok := n.(*RadioButton); ok && o != r {
				o.CheckBox.SetValue(false)
			}
		}
	}
	r.CheckBox.SetValue(v)
}
