package ui

import "github.com/chewxy/math32"

// Layout is lazy. Setters only mark an element dirty; the destination rectangle is
// recomputed during Update when the element is dirty, when its parent recomputed since
// the last look (the parent's generation moved), or, for a root, when the viewport
// changed. Every recompute bumps the element's own generation, which is how the change
// reaches its children.

// parentRegion is the rectangle the element lays out in: the parent's destination
// rectangle minus the parent's padding, or the viewport for a root.
func (e *Element) parentRegion(ctx *Context) Rect {
	if e.parent == nil {
		vp := ctx.Viewport()
		return Rect{W: vp.X, H: vp.Y}
	}
	return e.parent.PaddedRect()
}

// needsLayout reports whether the destination rectangle is stale.
func (e *Element) needsLayout(ctx *Context) bool {
	if e.dirty {
		return true
	}
	if e.parent == nil {
		return e.rootViewport != ctx.Viewport()
	}
	return e.parent.generation != e.parentGeneration
}

// CalcDestRect recomputes the destination rectangle unconditionally:
//
//	size = resolve(requested size, parent region)
//	pos  = region.min + floor(region.size * anchor) + offset - floor(size * origin)
func (e *Element) CalcDestRect(ctx *Context) {
	region := e.parentRegion(ctx)
	w := e.size.W.Resolve(region.W)
	h := e.size.H.Resolve(region.H)

	x := region.X + floorMul(region.W, e.anchor.X) + e.offset.X - floorMul(w, e.origin.X)
	y := region.Y + floorMul(region.H, e.anchor.Y) + e.offset.Y - floorMul(h, e.origin.Y)

	e.destRect = Rect{X: x, Y: y, W: w, H: h}
	e.generation++
	e.dirty = false
	if e.parent != nil {
		e.parentGeneration = e.parent.generation
	} else {
		e.rootViewport = ctx.Viewport()
	}
}

// ResolveLayout brings the layout of e and its subtree up to date without running any
// UpdateSelf hooks. Widgets use it when they need a child's rectangle mid-update.
func (e *Element) ResolveLayout(ctx *Context) {
	if e.needsLayout(ctx) {
		e.CalcDestRect(ctx)
	}
	for _, n := range e.children {
		n.AsElement().ResolveLayout(ctx)
	}
}

// Update resolves layout and runs UpdateSelf for e and then, in order, for every child.
// Hidden elements are updated too so their rectangles stay valid when shown again.
func (e *Element) Update(ctx *Context) {
	if e.needsLayout(ctx) {
		e.CalcDestRect(ctx)
	}
	e.self().UpdateSelf(ctx)

	cursor := 0
	for _, n := range e.children {
		c := n.AsElement()
		c.Update(ctx)
		if !e.AutoArrangeChildren || c.ExemptFromAutoArrange || !c.Visible {
			continue
		}
		// Stack vertically in child order. A moved child is resolved straight away so the
		// next one stacks against its new extent; it gets UpdateSelf again next frame.
		cursor += c.margin.Top
		c.SetAnchor(Vec2{X: c.anchor.X})
		c.SetOffset(Point{X: c.offset.X, Y: cursor})
		if c.dirty {
			c.ResolveLayout(ctx)
		}
		extent := c.self().ActualDestRect()
		if a, ok := c.self().(arranged); ok {
			extent = a.arrangeRect()
		}
		cursor += extent.H + c.margin.Bottom
	}
}

// arranged is implemented by elements whose auto-arrange extent differs from their actual
// rectangle.
type arranged interface {
	arrangeRect() Rect
}

func floorMul(extent int, f float32) int {
	return int(math32.Floor(float32(extent) * f))
}
