package ui

// DropDown is a header button showing the selected item and a list that opens beneath it in
// the top layer. Clicking the header toggles the list; picking an item closes it.
type DropDown struct {
	Element

	Header *Button
	List   *List

	// CloseOnHoverOut closes the open list as soon as the pointer leaves header and list.
	// When false, only a click outside or Escape closes it.
	CloseOnHoverOut bool

	// Placeholder is shown in the header while nothing is selected.
	Placeholder string

	open bool
}

// NewDropDown creates a closed dropdown. The list hangs below the header with the given
// height in pixels.
func NewDropDown(font Font, size float32, listHeight int, opts ...Option) *DropDown {
	d := &DropDown{}
	d.setup(d)
	d.CloseOnHoverOut = true

	d.Header = NewButton("", font, size, nil, WithName("header"), WithSize(Size{W: Pct(100), H: Pct(100)}))
	d.Header.ExemptFromAutoArrange = true
	d.Header.OnMouseReleased = func(_ Node, b MouseButton) {
		if b == MouseButtonPrimary {
			d.ShowDropdownList(!d.open)
		}
	}

	d.List = NewList(font, size,
		WithName("list"),
		WithAnchor(0, 1),
		WithSize(Size{W: Pct(100), H: Px(float32(listHeight))}),
		TopLayer(),
		Hidden(),
		ExemptFromArrange(),
	)
	d.List.onPick = func(int) { d.ShowDropdownList(false) }
	d.List.OnValueChange = func(Node) {
		d.syncHeader()
		if d.OnValueChange != nil {
			d.OnValueChange(d.self())
		}
	}

	d.MustAddChild(d.Header)
	d.MustAddChild(d.List)
	d.apply(opts)
	d.syncHeader()
	return d
}

// IsOpened reports whether the list is shown.
func (d *DropDown) IsOpened() bool { return d.open }

// ShowDropdownList opens or closes the list.
func (d *DropDown) ShowDropdownList(open bool) {
	if d.open == open {
		return
	}
	d.open = open
	d.List.Visible = open
	if open {
		if d.List.SelectedIndex() >= 0 {
			d.List.ScrollTo(d.List.SelectedIndex())
		}
	}
}

// SetItems replaces the items.
func (d *DropDown) SetItems(items []string) {
	d.List.SetItems(items)
	d.syncHeader()
}

// SelectIndex selects item i and closes the list. See List.SelectIndex.
func (d *DropDown) SelectIndex(i int) bool {
	if !d.List.SelectIndex(i) {
		return false
	}
	d.ShowDropdownList(false)
	d.syncHeader()
	return true
}

// SelectValue selects the first item equal to s and closes the list.
func (d *DropDown) SelectValue(s string) bool {
	if !d.List.SelectValue(s) {
		return false
	}
	d.ShowDropdownList(false)
	d.syncHeader()
	return true
}

// SelectedIndex returns the selected index, or -1.
func (d *DropDown) SelectedIndex() int { return d.List.SelectedIndex() }

// SelectedValue returns the selected item.
func (d *DropDown) SelectedValue() (string, bool) { return d.List.SelectedValue() }

func (d *DropDown) syncHeader() {
	v, ok := d.List.SelectedValue()
	if !ok {
		v = d.Placeholder
	}
	d.Header.Caption.SetText(v)
}

// ActualDestRect is the header while closed, and header plus list while open.
func (d *DropDown) ActualDestRect() Rect {
	r := d.Header.destRect
	if d.open {
		r = r.Union(d.List.destRect)
	}
	return r
}

// arrangeRect is the header only: the open list overlays the siblings below.
func (d *DropDown) arrangeRect() Rect { return d.Header.destRect }

// InputSelf closes the open list when the pointer leaves it (or clicks outside, with
// CloseOnHoverOut off) and on Escape.
func (d *DropDown) InputSelf(ctx *Context, st *UIUpdateInputState) {
	if !d.open {
		return
	}
	in := ctx.input()
	inside := d.ActualDestRect().Contains(st.Cursor)
	switch {
	case in.KeyPressed(KeyEscape):
		d.ShowDropdownList(false)
	case d.CloseOnHoverOut && !inside:
		d.ShowDropdownList(false)
	case !inside && (in.PressedNow(MouseButtonPrimary) || in.PressedNow(MouseButtonSecondary)):
		d.ShowDropdownList(false)
	}
	if !d.open {
		ctx.logger().Debug("dropdown closed", "dropdown", d.Name)
	}
}
