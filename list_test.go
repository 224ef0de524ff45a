package ui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numberedItems(n int) []string {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf("item%d", i)
	}
	return items
}

func rowNames(l *List) []string {
	var names []string
	for _, n := range l.rows.Children() {
		names = append(names, n.AsElement().Name)
	}
	return names
}

func newTestList(h *harness, items int) *List {
	l := NewList(mockFont{}, 16, WithPxSize(200, 100))
	l.LineHeight = 20
	l.SetItems(numberedItems(items))
	h.add(l)
	h.frame()
	return l
}

func TestListMaterializesVisibleRows(t *testing.T) {
	h := newHarness(t, 800, 600)
	l := newTestList(h, 10)

	assert.Equal(t, []string{"row0", "row1", "row2", "row3", "row4"}, rowNames(l))
	assert.Equal(t, float32(5), l.Scrollbar.MaxValue())

	l.ScrollTo(7)
	assert.Equal(t, 3, l.FirstVisible())
	h.frame()
	assert.Equal(t, []string{"row3", "row4", "row5", "row6", "row7"}, rowNames(l))
	assert.Equal(t, Rect{Y: 20, W: 188, H: 20}, l.rows.Child(1).AsElement().CalculatedDestRect())

	// Scrolling to a visible row does nothing.
	l.ScrollTo(5)
	assert.Equal(t, 3, l.FirstVisible())
	l.ScrollTo(0)
	assert.Equal(t, 0, l.FirstVisible())
}

func TestListClickSelects(t *testing.T) {
	h := newHarness(t, 800, 600)
	l := newTestList(h, 10)
	l.ScrollTo(7)
	require.Equal(t, 3, l.FirstVisible())
	h.frame()
	changes := 0
	l.OnValueChange = func(Node) { changes++ }

	h.click(50, 30)
	assert.Equal(t, 4, l.SelectedIndex())
	v, ok := l.SelectedValue()
	assert.True(t, ok)
	assert.Equal(t, "item4", v)
	assert.Equal(t, 1, changes)

	h.frame()
	row := l.rows.Child(1).AsElement()
	require.Equal(t, "row4", row.Name)
	assert.Equal(t, StatePressedDown, row.State(), "the selected row shows as pressed")

	// Clicking the selected row again fires nothing.
	h.click(50, 30)
	assert.Equal(t, 1, changes)
}

func TestListWheelScrollsRows(t *testing.T) {
	h := newHarness(t, 800, 600)
	l := newTestList(h, 10)

	h.move(50, 30)
	h.in.WheelY = -1
	h.frame()
	assert.Equal(t, 1, l.FirstVisible())

	h.in.WheelY = -10
	h.frame()
	assert.Equal(t, 5, l.FirstVisible(), "scrolling stops at the last page")

	h.in.WheelY = 2
	h.frame()
	assert.Equal(t, 3, l.FirstVisible())
}

func TestListItemEdits(t *testing.T) {
	h := newHarness(t, 800, 600)
	l := newTestList(h, 10)

	assert.True(t, l.SelectValue("item4"))
	assert.False(t, l.SelectValue("nope"))
	assert.False(t, l.SelectIndex(10))
	assert.False(t, l.SelectIndex(-2))

	require.True(t, l.RemoveItem(0))
	v, _ := l.SelectedValue()
	assert.Equal(t, "item4", v, "selection follows its item")
	assert.Equal(t, 3, l.SelectedIndex())

	require.True(t, l.RemoveItem(3))
	assert.Equal(t, -1, l.SelectedIndex())
	assert.False(t, l.RemoveItem(99))

	l.AddItem("extra")
	assert.Equal(t, 9, l.ItemCount())
	l.SelectIndex(8)
	l.SetItems([]string{"a", "b"})
	assert.Equal(t, -1, l.SelectedIndex(), "selection out of range is cleared")

	h.frame()
	assert.Equal(t, []string{"row0", "row1"}, rowNames(l))
	assert.Equal(t, float32(0), l.Scrollbar.MaxValue())

	l.SetItems(nil)
	h.frame()
	assert.Empty(t, rowNames(l))
}

func TestListRowsCoverBackground(t *testing.T) {
	h := newHarness(t, 800, 600)
	l := newTestList(h, 3)
	behind := newProbe("behind", 0, 0, 400, 400, true)
	h.gui.Root().MustAddChild(behind.Element)
	l.AsElement().MoveToFront()

	// Below the last row the background still stops the pointer.
	h.click(50, 90)
	assert.Equal(t, 0, behind.pressed)
	assert.Equal(t, -1, l.SelectedIndex())
}

func TestDropDownLifecycle(t *testing.T) {
	h := newHarness(t, 800, 600)
	d := NewDropDown(mockFont{}, 16, 100, WithPxSize(200, 30))
	d.Placeholder = "pick"
	d.SetItems([]string{"a", "b", "c"})
	changes := 0
	d.OnValueChange = func(Node) { changes++ }
	h.add(d)
	h.frame()

	assert.Equal(t, "pick", d.Header.Caption.Text())
	assert.False(t, d.IsOpened())
	assert.Equal(t, Rect{W: 200, H: 30}, d.ActualDestRect())

	h.click(10, 10)
	require.True(t, d.IsOpened())
	assert.True(t, d.List.Visible)
	assert.Equal(t, Rect{W: 200, H: 130}, d.ActualDestRect())

	h.click(10, 55)
	assert.False(t, d.IsOpened())
	assert.Equal(t, 1, d.SelectedIndex())
	assert.Equal(t, "b", d.Header.Caption.Text())
	assert.Equal(t, 1, changes)

	// Picking the selected item again closes without a change.
	h.click(10, 10)
	h.click(10, 55)
	assert.False(t, d.IsOpened())
	assert.Equal(t, 1, changes)

	// Selecting from code closes the list as well.
	d.ShowDropdownList(true)
	require.True(t, d.SelectIndex(2))
	assert.False(t, d.IsOpened())
	assert.Equal(t, "c", d.Header.Caption.Text())

	d.ShowDropdownList(true)
	require.True(t, d.SelectValue("a"))
	assert.False(t, d.IsOpened())

	d.ShowDropdownList(true)
	assert.False(t, d.SelectValue("nope"))
	assert.True(t, d.IsOpened(), "a failed selection leaves the list alone")
}

func TestDropDownArrangesByHeader(t *testing.T) {
	h := newHarness(t, 800, 600)
	column := NewElement(WithPxSize(400, 400))
	column.AutoArrangeChildren = true
	d := NewDropDown(mockFont{}, 16, 100, WithPxSize(200, 30))
	d.CloseOnHoverOut = false
	d.SetItems([]string{"a", "b", "c"})
	below := NewElement(WithPxSize(50, 20))
	column.MustAddChild(d)
	column.MustAddChild(below)
	h.add(column)
	h.frame()
	assert.Equal(t, 30, below.CalculatedDestRect().Y)

	d.ShowDropdownList(true)
	h.frame()
	h.frame()
	require.True(t, d.IsOpened())
	assert.Equal(t, 130, d.ActualDestRect().H, "the open list still counts for hit testing")
	assert.Equal(t, 30, below.CalculatedDestRect().Y, "the open list overlays later siblings")
}

func TestDropDownListPreemptsWidgetsBelow(t *testing.T) {
	h := newHarness(t, 800, 600)
	d := NewDropDown(mockFont{}, 16, 100, WithPxSize(200, 30))
	d.SetItems([]string{"a", "b", "c"})
	h.add(d)
	// Added later, so it would be on top in the normal layer.
	below := NewButton("below", mockFont{}, 16, nil, WithOffset(0, 40), WithPxSize(200, 30))
	pressed := 0
	below.OnMousePressed = func(Node, MouseButton) { pressed++ }
	h.add(below)
	h.frame()

	h.click(10, 10)
	require.True(t, d.IsOpened())
	h.click(10, 55)
	assert.Equal(t, 0, pressed)
	assert.Equal(t, 1, d.SelectedIndex())
}

func TestDropDownClosing(t *testing.T) {
	h := newHarness(t, 800, 600)
	d := NewDropDown(mockFont{}, 16, 100, WithPxSize(200, 30))
	d.SetItems([]string{"a", "b", "c"})
	h.add(d)
	h.frame()

	d.ShowDropdownList(true)
	h.move(500, 500)
	h.frame()
	assert.False(t, d.IsOpened(), "hovering out closes")

	d.CloseOnHoverOut = false
	d.ShowDropdownList(true)
	h.frame()
	assert.True(t, d.IsOpened())
	h.tapKey(KeyEscape)
	assert.False(t, d.IsOpened())

	d.ShowDropdownList(true)
	h.click(500, 500)
	assert.False(t, d.IsOpened(), "clicking outside closes")
	assert.False(t, d.List.Visible)
}

func TestDropDownOpensAtSelection(t *testing.T) {
	h := newHarness(t, 800, 600)
	d := NewDropDown(mockFont{}, 16, 60, WithPxSize(200, 30))
	d.SetItems(numberedItems(10))
	h.add(d)
	h.frame()

	require.True(t, d.SelectValue("item8"))
	d.ShowDropdownList(true)
	assert.Equal(t, 6, d.List.FirstVisible())
}

func TestListTruncatesLongItems(t *testing.T) {
	h := newHarness(t, 800, 600)
	l := NewList(mockFont{}, 16, WithPxSize(200, 100))
	l.LineHeight = 20
	long := "Sir, Yes Sir! The Party Is Just Getting Started"
	l.SetItems([]string{"short", long})
	h.add(l)
	h.frame()

	caption := func(i int) string {
		return l.rows.Child(i).AsElement().FindChild("text").(*Text).Text()
	}
	assert.Equal(t, "short", caption(0))
	assert.True(t, strings.HasSuffix(caption(1), "..."))
	assert.Less(t, len(caption(1)), len(long))

	l.SelectIndex(1)
	v, _ := l.SelectedValue()
	assert.Equal(t, long, v, "only the caption is shortened")
}
