package ui

// ClipboardProvider abstracts system clipboard access.
// Implement this interface with platform-specific clipboard APIs and hand it to the GUI
// with WithClipboard. backend/opengl ships a GLFW implementation.
type ClipboardProvider interface {
	// GetText retrieves text from the system clipboard.
	// Returns empty string if clipboard is empty or contains non-text data.
	GetText() string

	// SetText copies text to the system clipboard.
	SetText(text string)
}

// MemoryClipboard is a process-local clipboard for backends without system clipboard
// access, and for tests.
type MemoryClipboard struct {
	text string
}

// GetText returns the stored text.
func (c *MemoryClipboard) GetText() string {
	return c.text
}

// SetText stores text.
func (c *MemoryClipboard) SetText(text string) {
	c.text = text
}

func clipboardText(cp ClipboardProvider) string {
	if cp == nil {
		return ""
	}
	return cp.GetText()
}
