package ui

import "log/slog"

// GUI drives one element tree per frame: Update resolves layout and runs both dispatch
// passes, Draw paints the normal layer and then the top layer.
type GUI struct {
	root  *Element
	ctx   *Context
	input UIUpdateInputState

	hovered Node
}

// GUIOption configures a GUI instance.
type GUIOption func(*GUI)

// WithLogger sets the logger handed to elements through the context.
func WithLogger(l *slog.Logger) GUIOption {
	return func(g *GUI) { g.ctx.Logger = l }
}

// WithClipboard sets the clipboard used by text inputs.
func WithClipboard(cp ClipboardProvider) GUIOption {
	return func(g *GUI) { g.ctx.Clipboard = cp }
}

// WithViewport pins the viewport size instead of asking the renderer every frame.
func WithViewport(w, h int) GUIOption {
	return func(g *GUI) { g.ctx.SetViewport(Point{X: w, Y: h}) }
}

// New creates a GUI with an empty full-viewport root.
func New(renderer Renderer, opts ...GUIOption) *GUI {
	g := &GUI{
		ctx:  NewContext(renderer),
		root: NewElement(WithName("root"), WithSize(Size{W: Pct(100), H: Pct(100)})),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Root returns the root element. Add top-level widgets to it.
func (g *GUI) Root() *Element {
	return g.root
}

// Context returns the frame context.
func (g *GUI) Context() *Context {
	return g.ctx
}

// Update runs one frame of layout and input: Update, then the top-layer dispatch pass, then
// the normal pass, then the structural changes queued during the passes.
func (g *GUI) Update(input *InputState, dt float32) *UIUpdateInputState {
	ctx := g.ctx
	ctx.Begin(input, dt)
	g.root.Update(ctx)

	cursor := ctx.input().CursorPos()
	g.input.Reset(cursor)
	g.root.DoInputUpdates(ctx, cursor, &g.input, true)
	g.root.DoInputUpdates(ctx, cursor, &g.input, false)
	g.input.Flush()

	if g.input.PointedOn != g.hovered {
		g.hovered = g.input.PointedOn
		if g.hovered != nil {
			ctx.logger().Debug("pointer over element", "element", g.hovered.AsElement().String())
		}
	}
	return &g.input
}

// Draw paints the tree: normal layer first, top layer over it.
func (g *GUI) Draw() {
	if g.ctx.Renderer == nil {
		return
	}
	g.root.Draw(g.ctx, false)
	g.root.Draw(g.ctx, true)
}

// WantCaptureMouse reports whether the pointer was over an interactive element during the
// last Update, so the application should not act on it.
func (g *GUI) WantCaptureMouse() bool {
	return g.input.PointedOn != nil
}

// WantCaptureKeyboard reports whether a text input is receiving keys.
func (g *GUI) WantCaptureKeyboard() bool {
	captured := false
	g.root.Walk(func(n Node) bool {
		if ti, ok := n.(*TextInput); ok && ti.ReceivingInput() {
			captured = true
		}
		return !captured && n.AsElement().Visible
	})
	return captured
}
