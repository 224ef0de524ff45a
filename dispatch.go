package ui

// UIUpdateInputState is shared by every element visited during one frame's dispatch passes.
type UIUpdateInputState struct {
	// Cursor is the pointer position the pass runs with.
	Cursor Point

	// PointedOn is the first interactive element hit this frame, top layer first.
	PointedOn Node

	// Break is set once an element that captures input is hit. Elements processed after
	// that see the pointer as absent.
	Break bool

	// Dragged is the element moved by a drag this frame, if any.
	Dragged Node

	deferred []func()
}

// Reset prepares the state for a new frame.
func (st *UIUpdateInputState) Reset(cursor Point) {
	st.Cursor = cursor
	st.PointedOn = nil
	st.Break = false
	st.Dragged = nil
	st.deferred = st.deferred[:0]
}

// Defer queues a structural change (such as reordering children) to run after the pass,
// so the child lists being walked are not mutated mid-iteration.
func (st *UIUpdateInputState) Defer(fn func()) {
	st.deferred = append(st.deferred, fn)
}

// Flush runs the deferred changes in order. Hosts driving DoInputUpdates directly must
// call it once both passes are done; GUI.Update does so itself.
func (st *UIUpdateInputState) Flush() {
	for i := 0; i < len(st.deferred); i++ {
		st.deferred[i]()
	}
	st.deferred = st.deferred[:0]
}

// eventMask records the edges an element saw during its last dispatch.
type eventMask uint8

const (
	evEnter eventMask = 1 << iota
	evLeave
	evPressedPrimary
	evPressedSecondary
	evReleasedPrimary
	evReleasedSecondary
)

// PressedThisFrame reports whether the button went down on the element during the last pass.
func (e *Element) PressedThisFrame(b MouseButton) bool {
	switch b {
	case MouseButtonPrimary:
		return e.events&evPressedPrimary != 0
	case MouseButtonSecondary:
		return e.events&evPressedSecondary != 0
	}
	return false
}

// ReleasedThisFrame reports whether the button was released on the element during the last
// pass, after having been pressed on it.
func (e *Element) ReleasedThisFrame(b MouseButton) bool {
	switch b {
	case MouseButtonPrimary:
		return e.events&evReleasedPrimary != 0
	case MouseButtonSecondary:
		return e.events&evReleasedSecondary != 0
	}
	return false
}

// EnteredThisFrame reports whether the pointer started hovering the element in the last pass.
func (e *Element) EnteredThisFrame() bool { return e.events&evEnter != 0 }

// LeftThisFrame reports whether the pointer stopped hovering the element in the last pass.
func (e *Element) LeftThisFrame() bool { return e.events&evLeave != 0 }

// inTopLayer reports whether e or an ancestor draws as top layer.
func (e *Element) inTopLayer() bool {
	for a := e; a != nil; a = a.parent {
		if a.DrawAsTopLayer {
			return true
		}
	}
	return false
}

// DoInputUpdates runs one dispatch pass over e's subtree. Hosts call it twice per frame,
// top layer first, with the same st; children are processed before their parent, last
// child first, so whatever draws on top gets the pointer first.
func (e *Element) DoInputUpdates(ctx *Context, cursor Point, st *UIUpdateInputState, topLayer bool) {
	st.Cursor = cursor
	inTop := false
	if e.parent != nil {
		inTop = e.parent.inTopLayer()
	}
	e.dispatch(ctx, st, topLayer, inTop)
}

func (e *Element) dispatch(ctx *Context, st *UIUpdateInputState, topLayer, inTop bool) {
	inTop = inTop || e.DrawAsTopLayer
	if !e.Visible {
		if inTop == topLayer {
			e.resetInteraction()
		}
		return
	}

	for i := len(e.children) - 1; i >= 0; i-- {
		if i >= len(e.children) {
			continue
		}
		e.children[i].AsElement().dispatch(ctx, st, topLayer, inTop)
	}

	if inTop == topLayer && !e.CopyParentState {
		if e.Interactive {
			e.hitTest(ctx, st)
		}
		e.self().InputSelf(ctx, st)
	}

	for _, n := range e.children {
		c := n.AsElement()
		if c.CopyParentState {
			c.prevState = c.state
			c.state = e.State()
		}
	}
}

// hitTest runs the interaction state machine for one pass.
func (e *Element) hitTest(ctx *Context, st *UIUpdateInputState) {
	in := ctx.input()
	hit := !st.Break && (e.destRect.Contains(st.Cursor) || e.drag.active)

	e.prevState = e.state
	e.events = 0

	if hit {
		next := StatePointedOn
		switch {
		case e.state == StatePressedDown && in.Down(MouseButtonPrimary):
			next = StatePressedDown
		case e.state == StateAltPressedDown && in.Down(MouseButtonSecondary):
			next = StateAltPressedDown
		case in.PressedNow(MouseButtonPrimary):
			next = StatePressedDown
		case in.PressedNow(MouseButtonSecondary):
			next = StateAltPressedDown
		}

		prev := e.state
		e.state = next

		if prev == StateIdle {
			e.events |= evEnter
			if e.OnMouseEnter != nil {
				e.OnMouseEnter(e.self())
			}
		}
		if next == StatePressedDown && prev != StatePressedDown {
			e.events |= evPressedPrimary
			if e.OnMousePressed != nil {
				e.OnMousePressed(e.self(), MouseButtonPrimary)
			}
		}
		if next == StateAltPressedDown && prev != StateAltPressedDown {
			e.events |= evPressedSecondary
			if e.OnMousePressed != nil {
				e.OnMousePressed(e.self(), MouseButtonSecondary)
			}
		}
		if prev == StatePressedDown && next != StatePressedDown && in.ReleasedNow(MouseButtonPrimary) {
			e.events |= evReleasedPrimary
			if e.OnMouseReleased != nil {
				e.OnMouseReleased(e.self(), MouseButtonPrimary)
			}
		}
		if prev == StateAltPressedDown && next != StateAltPressedDown && in.ReleasedNow(MouseButtonSecondary) {
			e.events |= evReleasedSecondary
			if e.OnMouseReleased != nil {
				e.OnMouseReleased(e.self(), MouseButtonSecondary)
			}
		}

		if e.CaptureInput {
			st.Break = true
		}
		if st.PointedOn == nil {
			st.PointedOn = e.self()
		}
	} else {
		if e.state != StateIdle {
			e.events |= evLeave
			e.state = StateIdle
			if e.OnMouseLeave != nil {
				e.OnMouseLeave(e.self())
			}
		}
	}

	if e.Draggable {
		e.updateDrag(ctx, st)
	}
}

// resetInteraction returns a hidden subtree to idle without firing callbacks.
func (e *Element) resetInteraction() {
	e.prevState = e.state
	e.state = StateIdle
	e.events = 0
	e.drag = dragState{}
	for _, n := range e.children {
		n.AsElement().resetInteraction()
	}
}
