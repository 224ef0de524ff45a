package ui

import "log/slog"

// Context holds the per-frame collaborators shared by every element during Update,
// DoInputUpdates and Draw.
// This is NOT context.Context - it's a dedicated UI context type.
type Context struct {
	// Renderer measures and paints. Layout only needs ViewportSize from it.
	Renderer Renderer

	// Input (read-only during the frame)
	Input *InputState

	// Clipboard is optional; TextInput paste is a no-op without it.
	Clipboard ClipboardProvider

	Logger *slog.Logger

	// Frame info
	FrameCount uint64
	DeltaTime  float32

	viewport         Point
	viewportOverride bool
}

// NewContext creates a context drawing with r. The renderer may be nil for headless trees,
// in which case the viewport must be set with SetViewport.
func NewContext(r Renderer) *Context {
	ctx := &Context{
		Renderer: r,
		Input:    NewInputState(),
		Logger:   defaultLogger,
	}
	if r != nil {
		ctx.viewport = r.ViewportSize()
	}
	return ctx
}

// Begin starts a frame: it stores the input snapshot and delta time and refreshes the
// viewport from the renderer.
func (ctx *Context) Begin(input *InputState, dt float32) {
	if input != nil {
		ctx.Input = input
	}
	ctx.DeltaTime = dt
	ctx.FrameCount++
	if ctx.Renderer != nil && !ctx.viewportOverride {
		ctx.viewport = ctx.Renderer.ViewportSize()
	}
}

// Viewport returns the size root elements lay out against.
func (ctx *Context) Viewport() Point {
	return ctx.viewport
}

// SetViewport pins the viewport size, ignoring the renderer's.
func (ctx *Context) SetViewport(size Point) {
	ctx.viewport = size
	ctx.viewportOverride = true
}

func (ctx *Context) logger() *slog.Logger {
	if ctx.Logger != nil {
		return ctx.Logger
	}
	return defaultLogger
}

func (ctx *Context) input() *InputState {
	if ctx.Input == nil {
		ctx.Input = NewInputState()
	}
	return ctx.Input
}
