package ui

import (
	"fmt"
	"slices"
)

// List shows string items one per row over a background, with a vertical scrollbar on the
// right. Only the rows on screen exist as elements; they are rebuilt whenever the items,
// the selection, the scroll position or the row capacity change.
type List struct {
	Element

	Background *Window
	Scrollbar  *VerticalScrollbar

	Font           Font
	FontSize       float32
	LineHeight     int
	ScrollbarWidth int
	TextPadding    int // Left inset of row text

	RowTexture Texture
	RowSources StateRects
	RowColors  StateColors
	TextColors StateColors

	rows     *Element
	items    []string
	selected int
	first    int
	capacity int
	rebuild  bool

	// onPick runs after a row click selected its item, even when the selection did not
	// change. DropDown closes itself through it.
	onPick func(i int)
}

// NewList creates an empty list. Textures for the background, rows and scrollbar are set
// on the fields afterwards.
func NewList(font Font, size float32, opts ...Option) *List {
	l := &List{}
	l.setup(l)
	l.Font = font
	l.FontSize = size
	l.LineHeight = int(size) + 4
	l.ScrollbarWidth = 12
	l.TextPadding = 4
	l.RowColors = StateColors{Idle: ColorTransparent, Highlight: RGBA(255, 255, 255, 48), Pressed: RGBA(255, 255, 255, 96)}
	l.TextColors = StateColors{Idle: ColorLightGray, Highlight: ColorWhite, Pressed: ColorYellow}
	l.selected = -1
	l.rebuild = true

	l.Background = NewWindow(nil, WithName("background"), WithSize(Size{W: Pct(100), H: Pct(100)}), ExemptFromArrange())
	l.rows = NewElement(WithName("rows"), ExemptFromArrange())
	l.Scrollbar = NewVerticalScrollbar(nil, nil,
		WithName("scrollbar"),
		WithAnchor(1, 0),
		WithOrigin(1, 0),
		ExemptFromArrange(),
	)
	l.Scrollbar.OnValueChange = func(Node) { l.setFirst(int(l.Scrollbar.Value())) }

	l.MustAddChild(l.Background)
	l.MustAddChild(l.rows)
	l.MustAddChild(l.Scrollbar)
	l.apply(opts)
	return l
}

// Items returns a copy of the items.
func (l *List) Items() []string { return slices.Clone(l.items) }

// ItemCount returns the number of items.
func (l *List) ItemCount() int { return len(l.items) }

// SetItems replaces the items. The selection is cleared when it falls out of range.
func (l *List) SetItems(items []string) {
	l.items = slices.Clone(items)
	if l.selected >= len(l.items) {
		l.ClearSelection()
	}
	l.rebuild = true
}

// AddItem appends an item.
func (l *List) AddItem(s string) {
	l.items = append(l.items, s)
	l.rebuild = true
}

// RemoveItem deletes the item at i. The selection follows its item, or is cleared when
// the selected item is removed.
func (l *List) RemoveItem(i int) bool {
	if i < 0 || i >= len(l.items) {
		return false
	}
	l.items = slices.Delete(l.items, i, i+1)
	switch {
	case i == l.selected:
		l.ClearSelection()
	case i < l.selected:
		l.selected--
	}
	l.rebuild = true
	return true
}

// SelectedIndex returns the selected index, or -1.
func (l *List) SelectedIndex() int { return l.selected }

// SelectedValue returns the selected item.
func (l *List) SelectedValue() (string, bool) {
	if l.selected < 0 || l.selected >= len(l.items) {
		return "", false
	}
	return l.items[l.selected], true
}

// SelectIndex selects item i, or clears the selection for -1. OnValueChange fires when the
// selection changes. It returns false for an out-of-range index.
func (l *List) SelectIndex(i int) bool {
	if i < -1 || i >= len(l.items) {
		return false
	}
	if i == l.selected {
		return true
	}
	l.selected = i
	l.rebuild = true
	if l.OnValueChange != nil {
		l.OnValueChange(l.self())
	}
	return true
}

// SelectValue selects the first item equal to s.
func (l *List) SelectValue(s string) bool {
	i := slices.Index(l.items, s)
	if i < 0 {
		return false
	}
	return l.SelectIndex(i)
}

// ClearSelection deselects.
func (l *List) ClearSelection() {
	l.SelectIndex(-1)
}

// ScrollTo scrolls the least amount that shows item i.
func (l *List) ScrollTo(i int) {
	clip := NewListClipper(len(l.items), l.LineHeight, l.rowsHeight(), l.first)
	l.Scrollbar.SetValue(float32(clip.ScrollToItem(i)))
}

// FirstVisible returns the index of the top row.
func (l *List) FirstVisible() int { return l.first }

// Refresh forces the rows to be rebuilt on the next Update, after row styling changed.
func (l *List) Refresh() { l.rebuild = true }

func (l *List) setFirst(first int) {
	if first != l.first {
		l.first = first
		l.rebuild = true
	}
}

func (l *List) rowsHeight() int {
	return l.PaddedRect().H
}

func (l *List) pick(i int) {
	l.SelectIndex(i)
	if l.onPick != nil {
		l.onPick(i)
	}
}

// UpdateSelf sizes the row area and scrollbar, syncs the scroll range and rebuilds rows
// when something changed.
func (l *List) UpdateSelf(ctx *Context) {
	region := l.PaddedRect()
	l.Scrollbar.SetSize(Size{W: Px(float32(l.ScrollbarWidth)), H: Pct(100)})
	l.rows.SetSize(PxSize(float32(max(0, region.W-l.ScrollbarWidth)), float32(region.H)))

	clip := NewListClipper(len(l.items), l.LineHeight, region.H, l.first)
	l.Scrollbar.SetRange(0, float32(clip.MaxScroll()))
	if len(l.items) > 0 {
		l.Scrollbar.SetVisibleFraction(float32(clip.Capacity) / float32(len(l.items)))
	} else {
		l.Scrollbar.SetVisibleFraction(1)
	}

	if clip.StartIdx != l.first || clip.Capacity != l.capacity {
		l.rebuild = true
	}
	l.first = clip.StartIdx
	l.capacity = clip.Capacity
	l.Scrollbar.SetValue(float32(l.first))

	if l.rebuild {
		l.rebuildRows(ctx, clip)
	}
}

// rowCaption shortens an item that would run under the scrollbar.
func (l *List) rowCaption(ctx *Context, item string, width int) string {
	if l.Font == nil || ctx.Renderer == nil {
		return item
	}
	opts := TextOptions{Size: l.FontSize}
	measure := func(s string) float32 {
		return float32(ctx.Renderer.MeasureText(l.Font, s, Point{}, opts).W)
	}
	return TruncateText(item, float32(width), measure, "...")
}

func (l *List) rebuildRows(ctx *Context, clip ListClipper) {
	for _, n := range l.rows.Children() {
		n.AsElement().Destroy()
	}
	textWidth := l.rows.size.W.Resolve(l.PaddedRect().W) - 2*l.TextPadding
	for i := clip.StartIdx; i < clip.EndIdx; i++ {
		row := NewImage(l.RowTexture,
			WithName(fmt.Sprintf("row%d", i)),
			Interactive(true),
			WithSize(Size{W: Pct(100), H: Px(float32(l.LineHeight))}),
			WithOffset(0, clip.ItemY(i)),
			WithColors(l.RowColors),
		)
		row.Sources = l.RowSources
		row.ForceActiveState = i == l.selected
		idx := i
		row.OnMouseReleased = func(_ Node, b MouseButton) {
			if b == MouseButtonPrimary {
				l.pick(idx)
			}
		}

		text := NewText(l.rowCaption(ctx, l.items[i], textWidth), l.Font, l.FontSize,
			WithName("text"),
			WithSize(Size{W: Pct(100), H: Px(l.FontSize)}),
			WithAnchor(0, 0.5),
			WithOrigin(0, 0.5),
			WithOffset(l.TextPadding, 0),
			WithColors(l.TextColors),
			CopyParent(),
		)
		row.MustAddChild(text)
		l.rows.MustAddChild(row)
	}
	l.rebuild = false
	ctx.logger().Debug("list rows rebuilt", "list", l.Name, "first", clip.StartIdx, "rows", clip.VisibleCount())
}

// InputSelf scrolls by whole rows with the wheel while the pointer is over the rows.
func (l *List) InputSelf(ctx *Context, st *UIUpdateInputState) {
	in := ctx.input()
	if in.WheelY == 0 || !l.rows.destRect.Contains(st.Cursor) {
		return
	}
	if st.PointedOn != nil && !l.IsAncestorOf(st.PointedOn) {
		return
	}
	l.Scrollbar.SetValue(l.Scrollbar.Value() - in.WheelY)
}
