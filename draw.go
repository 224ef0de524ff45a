package ui

// Draw paints e's subtree for one layer: elements inside a top-layer subtree are painted
// only when topLayer is true, everything else only when it is false. Parents paint before
// their children, children in insertion order.
func (e *Element) Draw(ctx *Context, topLayer bool) {
	inTop := false
	if e.parent != nil {
		inTop = e.parent.inTopLayer()
	}
	e.draw(ctx, topLayer, inTop)
}

func (e *Element) draw(ctx *Context, topLayer, inTop bool) {
	if !e.Visible {
		return
	}
	inTop = inTop || e.DrawAsTopLayer
	if inTop == topLayer {
		e.self().DrawSelf(ctx)
		if e.OnDraw != nil {
			e.OnDraw(e.self())
		}
	}
	for _, n := range e.children {
		n.AsElement().draw(ctx, topLayer, inTop)
	}
}
