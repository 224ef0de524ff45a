package ui

// dragState tracks an element being dragged.
type dragState struct {
	active bool
	grab   Point // Cursor position relative to the element's top-left when the drag started
}

// Dragging reports whether the element is mid-drag.
func (e *Element) Dragging() bool { return e.drag.active }

// updateDrag starts, moves or ends a drag. It runs after the hit test so the press edge is
// already known.
func (e *Element) updateDrag(ctx *Context, st *UIUpdateInputState) {
	in := ctx.input()

	if !e.drag.active {
		if e.events&evPressedPrimary == 0 {
			return
		}
		e.drag = dragState{active: true, grab: st.Cursor.Sub(e.destRect.Min())}
		// Positions are computed from the parent's top-left while dragging.
		e.SetAnchor(Vec2{})
		st.Defer(e.MoveToFront)
	}

	if !in.Down(MouseButtonPrimary) {
		e.drag.active = false
		return
	}

	region := e.parentRegion(ctx)
	w, h := e.destRect.W, e.destRect.H
	pos := st.Cursor.Sub(e.drag.grab)
	if e.LimitDragToParentArea {
		pos.X = clampi(pos.X, region.X, region.Right()-w)
		pos.Y = clampi(pos.Y, region.Y, region.Bottom()-h)
	}

	e.SetOffset(Point{
		X: pos.X - region.X + floorMul(w, e.origin.X),
		Y: pos.Y - region.Y + floorMul(h, e.origin.Y),
	})
	st.Dragged = e.self()
}
