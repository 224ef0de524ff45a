package ui

// ListClipper computes which rows of a list scrolled by whole rows are on screen. Only
// those rows are materialized as elements.
//
// Usage:
//
//	clip := NewListClipper(len(items), lineHeight, region.H, firstRow)
//	for i := clip.StartIdx; i < clip.EndIdx; i++ {
//	    y := clip.ItemY(i)
//	    // place row i at y
//	}
type ListClipper struct {
	StartIdx   int // First visible item index (inclusive)
	EndIdx     int // Last visible item index (exclusive)
	ItemHeight int // Height of each item
	TotalItems int // Total number of items in the list
	Capacity   int // Rows that fit completely in the visible height
}

// NewListClipper calculates the visible item range for a list whose first shown row is
// first. first is clamped to the valid scroll range.
func NewListClipper(totalItems, itemHeight, visibleHeight, first int) ListClipper {
	c := ListClipper{ItemHeight: itemHeight, TotalItems: totalItems}
	if totalItems <= 0 || itemHeight <= 0 || visibleHeight <= 0 {
		return c
	}

	c.Capacity = visibleHeight / itemHeight
	c.StartIdx = clampi(first, 0, c.MaxScroll())
	c.EndIdx = min(c.StartIdx+c.Capacity, totalItems)
	return c
}

// ShouldRender returns true if the item at the given index is on screen.
func (c ListClipper) ShouldRender(idx int) bool {
	return idx >= c.StartIdx && idx < c.EndIdx
}

// ItemY returns the item's y position relative to the list's top edge.
func (c ListClipper) ItemY(idx int) int {
	return (idx - c.StartIdx) * c.ItemHeight
}

// VisibleCount returns the number of items on screen.
func (c ListClipper) VisibleCount() int {
	return c.EndIdx - c.StartIdx
}

// MaxScroll returns the largest valid first row.
func (c ListClipper) MaxScroll() int {
	return max(0, c.TotalItems-c.Capacity)
}

// ScrollToItem returns the first row that makes idx visible, moving as little as possible.
func (c ListClipper) ScrollToItem(idx int) int {
	if idx < 0 || idx >= c.TotalItems || c.Capacity == 0 {
		return c.StartIdx
	}
	if idx < c.StartIdx {
		return idx
	}
	if idx >= c.StartIdx+c.Capacity {
		return clampi(idx-c.Capacity+1, 0, c.MaxScroll())
	}
	return c.StartIdx
}
