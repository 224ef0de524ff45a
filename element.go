package ui

import (
	"fmt"
	"slices"
)

// Node is implemented by every element of the tree. Widgets embed Element (directly or
// through another widget) and override the *Self hooks they need; the tree walks call the
// hooks through Element.This so the outermost widget's version runs.
type Node interface {
	// AsElement returns the embedded base element.
	AsElement() *Element

	// ActualDestRect is the rectangle the element really occupies. It equals the
	// calculated destination rectangle unless the widget reports otherwise (text reports its
	// measured extent, an open dropdown reports header plus list).
	ActualDestRect() Rect

	// UpdateSelf runs once per Update, after this element's layout is resolved and before
	// its children update.
	UpdateSelf(ctx *Context)

	// DrawSelf paints the element. Children are drawn afterwards, on top.
	DrawSelf(ctx *Context)

	// InputSelf runs during the dispatch pass after the element's own state transition,
	// with the children already processed.
	InputSelf(ctx *Context, st *UIUpdateInputState)
}

// Handler is an element callback.
type Handler func(n Node)

// MouseHandler is an element callback for button events.
type MouseHandler func(n Node, button MouseButton)

// Element is the base of every node in the tree. It owns its children; the parent link is
// non-owning and maintained by AddChild and RemoveChild.
type Element struct {
	// This is the outermost widget embedding this element. Tree walks dispatch through it.
	This Node

	// Name identifies the element for FindChild and logging.
	Name string

	parent   *Element
	children []Node

	offset  Point
	anchor  Vec2
	origin  Vec2
	size    Size
	padding Sides
	margin  Sides

	Visible     bool
	Interactive bool // Takes part in hit testing
	// CaptureInput stops elements below from receiving the pointer once this one is hit.
	CaptureInput bool
	// CopyParentState makes the element mirror its parent's interaction state instead of
	// hit testing itself.
	CopyParentState bool
	// ForceActiveState pins the reported state at StatePressedDown.
	ForceActiveState      bool
	Draggable             bool
	LimitDragToParentArea bool
	// DrawAsTopLayer moves the element and its subtree into the top layer, which is drawn
	// last and receives input first.
	DrawAsTopLayer        bool
	AutoArrangeChildren   bool
	ExemptFromAutoArrange bool

	Colors StateColors

	OnMousePressed  MouseHandler
	OnMouseReleased MouseHandler
	OnMouseEnter    Handler
	OnMouseLeave    Handler
	OnDraw          Handler
	OnValueChange   Handler

	state     State
	prevState State
	events    eventMask
	drag      dragState

	extensions map[string]any

	destRect         Rect
	dirty            bool
	generation       uint64
	parentGeneration uint64
	rootViewport     Point
}

// NewElement creates a plain container element.
func NewElement(opts ...Option) *Element {
	e := &Element{}
	e.setup(e)
	e.apply(opts)
	return e
}

// setup initializes the base fields. Widget constructors call it first, with themselves as
// self, then set their defaults, then apply options.
func (e *Element) setup(self Node) {
	e.This = self
	e.Visible = true
	e.dirty = true
	e.Colors = UniformColors(ColorWhite)
}

func (e *Element) apply(opts []Option) {
	for _, opt := range opts {
		opt(e)
	}
}

// AsElement returns e.
func (e *Element) AsElement() *Element { return e }

// ActualDestRect returns the calculated destination rectangle.
func (e *Element) ActualDestRect() Rect { return e.destRect }

// UpdateSelf does nothing for a plain element.
func (e *Element) UpdateSelf(ctx *Context) {}

// DrawSelf does nothing for a plain element.
func (e *Element) DrawSelf(ctx *Context) {}

// InputSelf does nothing for a plain element.
func (e *Element) InputSelf(ctx *Context, st *UIUpdateInputState) {}

func (e *Element) self() Node {
	if e.This == nil {
		e.This = e
	}
	return e.This
}

func (e *Element) String() string {
	return fmt.Sprintf("%T(%q)", e.self(), e.Name)
}

// Parent returns the parent element, or nil for a root.
func (e *Element) Parent() *Element { return e.parent }

// Children returns a copy of the child list in insertion order.
func (e *Element) Children() []Node { return slices.Clone(e.children) }

// ChildCount returns the number of children.
func (e *Element) ChildCount() int { return len(e.children) }

// Child returns the i-th child, or nil when out of range.
func (e *Element) Child(i int) Node {
	if i < 0 || i >= len(e.children) {
		return nil
	}
	return e.children[i]
}

// AddChild appends n to the child list. Adding an element that already has a parent, or
// one of e's ancestors, fails with an error wrapping ErrInvalidState.
func (e *Element) AddChild(n Node) error {
	c := n.AsElement()
	if c.parent != nil {
		return fmt.Errorf("add %s to %s: %w", c, e, ErrHasParent)
	}
	for a := e; a != nil; a = a.parent {
		if a == c {
			return fmt.Errorf("add %s to %s: %w", c, e, ErrCycle)
		}
	}
	c.self()
	c.parent = e
	e.children = append(e.children, n)
	c.dirty = true
	return nil
}

// MustAddChild is AddChild for construction code where a failure is a programming error.
func (e *Element) MustAddChild(n Node) Node {
	if err := e.AddChild(n); err != nil {
		panic(err)
	}
	return n
}

// RemoveChild detaches n from e.
func (e *Element) RemoveChild(n Node) error {
	c := n.AsElement()
	i := e.indexOf(c)
	if i < 0 {
		return fmt.Errorf("remove %s from %s: %w", c, e, ErrNotChild)
	}
	e.children = slices.Delete(e.children, i, i+1)
	c.parent = nil
	c.dirty = true
	return nil
}

// Remove detaches e from its parent.
func (e *Element) Remove() error {
	if e.parent == nil {
		return fmt.Errorf("remove %s: %w", e, ErrNoParent)
	}
	return e.parent.RemoveChild(e.self())
}

// MoveToFront moves e to the end of its parent's child list, so it draws last among its
// siblings and is hit tested first. It is a no-op for roots.
func (e *Element) MoveToFront() {
	p := e.parent
	if p == nil {
		return
	}
	i := p.indexOf(e)
	if i < 0 || i == len(p.children)-1 {
		return
	}
	n := p.children[i]
	p.children = append(slices.Delete(p.children, i, i+1), n)
}

// Destroy detaches e and tears down its subtree, dropping callbacks so closures holding
// application state are released.
func (e *Element) Destroy() {
	if e.parent != nil {
		_ = e.Remove()
	}
	for _, n := range e.children {
		c := n.AsElement()
		c.parent = nil
		c.Destroy()
	}
	e.children = nil
	e.OnMousePressed, e.OnMouseReleased = nil, nil
	e.OnMouseEnter, e.OnMouseLeave = nil, nil
	e.OnDraw, e.OnValueChange = nil, nil
	e.drag = dragState{}
}

func (e *Element) indexOf(c *Element) int {
	return slices.IndexFunc(e.children, func(n Node) bool { return n.AsElement() == c })
}

// IsAncestorOf reports whether e is n or one of n's ancestors.
func (e *Element) IsAncestorOf(n Node) bool {
	if n == nil {
		return false
	}
	for a := n.AsElement(); a != nil; a = a.parent {
		if a == e {
			return true
		}
	}
	return false
}

// FindChild returns the first direct child with the given name.
func (e *Element) FindChild(name string) Node {
	for _, n := range e.children {
		if n.AsElement().Name == name {
			return n
		}
	}
	return nil
}

// FindDescendant returns the first element named name in depth-first order, excluding e.
func (e *Element) FindDescendant(name string) Node {
	var found Node
	for _, n := range e.children {
		n.AsElement().Walk(func(d Node) bool {
			if found == nil && d.AsElement().Name == name {
				found = d
			}
			return found == nil
		})
		if found != nil {
			return found
		}
	}
	return nil
}

// Walk visits e and its subtree depth first. Returning false from fn skips the subtree of
// the visited node.
func (e *Element) Walk(fn func(n Node) bool) {
	if !fn(e.self()) {
		return
	}
	for _, n := range e.children {
		n.AsElement().Walk(fn)
	}
}

// Offset returns the pixel offset from the anchor point.
func (e *Element) Offset() Point { return e.offset }

// SetOffset sets the pixel offset from the anchor point.
func (e *Element) SetOffset(p Point) {
	if p != e.offset {
		e.offset = p
		e.dirty = true
	}
}

// Anchor returns the anchor, a fraction of the parent's padded region.
func (e *Element) Anchor() Vec2 { return e.anchor }

// SetAnchor sets the point of the parent's padded region the element hangs from.
func (e *Element) SetAnchor(v Vec2) {
	if v != e.anchor {
		e.anchor = v
		e.dirty = true
	}
}

// Origin returns the origin, a fraction of the element's own size.
func (e *Element) Origin() Vec2 { return e.origin }

// SetOrigin sets the point of the element placed at the anchor.
func (e *Element) SetOrigin(v Vec2) {
	if v != e.origin {
		e.origin = v
		e.dirty = true
	}
}

// Size returns the requested size.
func (e *Element) Size() Size { return e.size }

// SetSize sets the requested size.
func (e *Element) SetSize(s Size) {
	if s != e.size {
		e.size = s
		e.dirty = true
	}
}

// Padding returns the inset applied to the region children lay out in.
func (e *Element) Padding() Sides { return e.padding }

// SetPadding sets the inset applied to the region children lay out in.
func (e *Element) SetPadding(s Sides) {
	if s != e.padding {
		e.padding = s
		e.dirty = true
	}
}

// Margin returns the spacing used when the parent auto-arranges.
func (e *Element) Margin() Sides { return e.margin }

// SetMargin sets the spacing used when the parent auto-arranges.
func (e *Element) SetMargin(s Sides) { e.margin = s }

// State returns the interaction state, honoring ForceActiveState.
func (e *Element) State() State {
	if e.ForceActiveState {
		return StatePressedDown
	}
	return e.state
}

// PrevState returns the state before the last dispatch pass.
func (e *Element) PrevState() State { return e.prevState }

// Dirty reports whether the element's layout is stale.
func (e *Element) Dirty() bool { return e.dirty }

// Generation increments every time the destination rectangle is recomputed.
func (e *Element) Generation() uint64 { return e.generation }

// CalculatedDestRect returns the last computed destination rectangle.
func (e *Element) CalculatedDestRect() Rect { return e.destRect }

// PaddedRect returns the destination rectangle minus padding: the region children lay out in.
func (e *Element) PaddedRect() Rect { return e.destRect.Shrink(e.padding) }
