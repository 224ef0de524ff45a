package ui

// Window is a panel: an image that captures the pointer, with an optional title and close
// button. Make it draggable with the Draggable option.
type Window struct {
	Image

	Title       *Text
	CloseButton *Button

	// OnClose runs after the close button hides the window.
	OnClose Handler
}

// NewWindow creates a window.
func NewWindow(tex Texture, opts ...Option) *Window {
	w := &Window{}
	w.setupImage(w, tex)
	w.Interactive = true
	w.CaptureInput = true
	w.apply(opts)
	return w
}

// SetTitle sets the title text, creating it at the top of the window on first use.
func (w *Window) SetTitle(s string, font Font, size float32) *Text {
	if w.Title == nil {
		w.Title = NewText(s, font, size,
			WithName("title"),
			WithSize(Size{W: Pct(100), H: Px(size)}),
			ExemptFromArrange(),
			CopyParent(),
		)
		w.Title.Align = AlignCenter
		w.MustAddChild(w.Title)
	}
	w.Title.Font = font
	w.Title.FontSize = size
	w.Title.SetText(s)
	return w.Title
}

// SetCloseButton installs btn as the close button, replacing any previous one. A primary
// release on it hides the window.
func (w *Window) SetCloseButton(btn *Button) {
	if w.CloseButton != nil {
		w.CloseButton.Destroy()
	}
	w.CloseButton = btn
	if btn == nil {
		return
	}
	btn.ExemptFromAutoArrange = true
	btn.OnMouseReleased = func(_ Node, b MouseButton) {
		if b == MouseButtonPrimary {
			w.Close()
		}
	}
	w.MustAddChild(btn)
}

// Close hides the window and runs OnClose.
func (w *Window) Close() {
	if !w.Visible {
		return
	}
	w.Visible = false
	if w.OnClose != nil {
		w.OnClose(w.self())
	}
}
