package ui

// Option configures an element at construction.
type Option func(*Element)

// WithName sets the element name.
func WithName(name string) Option {
	return func(e *Element) { e.Name = name }
}

// WithOffset sets the pixel offset from the anchor point.
func WithOffset(x, y int) Option {
	return func(e *Element) { e.SetOffset(Point{X: x, Y: y}) }
}

// WithAnchor sets the anchor as a fraction of the parent's padded region.
func WithAnchor(x, y float32) Option {
	return func(e *Element) { e.SetAnchor(Vec2{X: x, Y: y}) }
}

// WithOrigin sets the origin as a fraction of the element's own size.
func WithOrigin(x, y float32) Option {
	return func(e *Element) { e.SetOrigin(Vec2{X: x, Y: y}) }
}

// WithSize sets the requested size.
func WithSize(s Size) Option {
	return func(e *Element) { e.SetSize(s) }
}

// WithPxSize sets a pixel size.
func WithPxSize(w, h float32) Option {
	return WithSize(PxSize(w, h))
}

// WithPadding sets the padding.
func WithPadding(s Sides) Option {
	return func(e *Element) { e.SetPadding(s) }
}

// WithMargin sets the auto-arrange margin.
func WithMargin(s Sides) Option {
	return func(e *Element) { e.SetMargin(s) }
}

// WithColors sets the per-state colors.
func WithColors(c StateColors) Option {
	return func(e *Element) { e.Colors = c }
}

// Hidden creates the element invisible.
func Hidden() Option {
	return func(e *Element) { e.Visible = false }
}

// Interactive enables hit testing. capture also stops the pointer at this element.
func Interactive(capture bool) Option {
	return func(e *Element) {
		e.Interactive = true
		e.CaptureInput = capture
	}
}

// Draggable lets the element be moved with the primary button.
func Draggable(limitToParent bool) Option {
	return func(e *Element) {
		e.Draggable = true
		e.Interactive = true
		e.LimitDragToParentArea = limitToParent
	}
}

// TopLayer puts the element's subtree in the top layer.
func TopLayer() Option {
	return func(e *Element) { e.DrawAsTopLayer = true }
}

// AutoArrange stacks the element's children vertically.
func AutoArrange() Option {
	return func(e *Element) { e.AutoArrangeChildren = true }
}

// ExemptFromArrange keeps the element out of its parent's auto-arrange.
func ExemptFromArrange() Option {
	return func(e *Element) { e.ExemptFromAutoArrange = true }
}

// CopyParent makes the element mirror its parent's interaction state.
func CopyParent() Option {
	return func(e *Element) { e.CopyParentState = true }
}

// OptKey is a typed key for application data attached to elements.
//
// Example:
//
//	var OptItemID = ui.NewOptKey("itemID", -1)
//
//	btn := ui.NewButton("Buy", font, tex, ui.WithOpt(OptItemID, 42))
//	id := ui.GetOpt(btn.AsElement(), OptItemID)
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
// The default is returned when the option is not set.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name (useful for debugging).
func (k OptKey[T]) Name() string { return k.name }

// WithOpt attaches a value to the element.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(e *Element) { SetOpt(e, key, value) }
}

// SetOpt attaches a value to the element after construction.
func SetOpt[T any](e *Element, key OptKey[T], value T) {
	if e.extensions == nil {
		e.extensions = make(map[string]any)
	}
	e.extensions[key.name] = value
}

// GetOpt retrieves an attached value with type safety.
// Returns the key's default value if not set.
func GetOpt[T any](e *Element, key OptKey[T]) T {
	v, ok := e.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

// HasOpt returns true if the value was explicitly set.
func HasOpt[T any](e *Element, key OptKey[T]) bool {
	_, ok := e.extensions[key.name]
	return ok
}
