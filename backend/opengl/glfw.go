package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	ui "github.com/go-theft-auto/ui"
)

// GLFWInputAdapter feeds GLFW window events into a ui.InputState.
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *ui.InputState
}

// NewGLFWInputAdapter installs the adapter's callbacks on window, replacing any set before.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	a := &GLFWInputAdapter{
		window: window,
		input:  ui.NewInputState(),
	}
	window.SetKeyCallback(a.keyCallback)
	window.SetCharCallback(a.charCallback)
	window.SetMouseButtonCallback(a.mouseButtonCallback)
	window.SetScrollCallback(a.scrollCallback)
	window.SetCursorPosCallback(a.cursorPosCallback)
	return a
}

// Poll starts a new input frame: it clears the previous frame's edges, polls GLFW events
// and returns the updated state. Call it once per frame instead of glfw.PollEvents.
func (a *GLFWInputAdapter) Poll(dt float32) *ui.InputState {
	a.input.Reset()
	glfw.PollEvents()

	x, y := a.window.GetCursorPos()
	a.input.SetCursor(int(x), int(y))
	a.input.ModCtrl = a.pressed(glfw.KeyLeftControl, glfw.KeyRightControl, glfw.KeyLeftSuper, glfw.KeyRightSuper)
	a.input.ModShift = a.pressed(glfw.KeyLeftShift, glfw.KeyRightShift)
	a.input.ModAlt = a.pressed(glfw.KeyLeftAlt, glfw.KeyRightAlt)
	a.input.Advance(dt)
	return a.input
}

// Input returns the current input state.
func (a *GLFWInputAdapter) Input() *ui.InputState {
	return a.input
}

func (a *GLFWInputAdapter) pressed(keys ...glfw.Key) bool {
	for _, k := range keys {
		if a.window.GetKey(k) == glfw.Press {
			return true
		}
	}
	return false
}

func (a *GLFWInputAdapter) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	k := glfwKeyToUIKey(key)
	if k == ui.KeyNone {
		return
	}
	switch action {
	case glfw.Press, glfw.Repeat:
		a.input.SetKey(k, true)
	case glfw.Release:
		a.input.SetKey(k, false)
	}
}

func (a *GLFWInputAdapter) charCallback(_ *glfw.Window, char rune) {
	a.input.AddChar(char)
}

func (a *GLFWInputAdapter) mouseButtonCallback(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	b, ok := glfwMouseButtonToUI(button)
	if !ok {
		return
	}
	switch action {
	case glfw.Press:
		a.input.SetMouseButton(b, true)
	case glfw.Release:
		a.input.SetMouseButton(b, false)
	}
}

func (a *GLFWInputAdapter) scrollCallback(_ *glfw.Window, xoff, yoff float64) {
	a.input.WheelX += float32(xoff)
	a.input.WheelY += float32(yoff)
}

func (a *GLFWInputAdapter) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	a.input.SetCursor(int(xpos), int(ypos))
}

func glfwKeyToUIKey(key glfw.Key) ui.Key {
	switch key {
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return ui.KeyReturn
	case glfw.KeyEscape:
		return ui.KeyEscape
	case glfw.KeyBackspace:
		return ui.KeyBackspace
	case glfw.KeyDelete:
		return ui.KeyDelete
	case glfw.KeyTab:
		return ui.KeyTab
	case glfw.KeyLeft:
		return ui.KeyLeft
	case glfw.KeyRight:
		return ui.KeyRight
	case glfw.KeyUp:
		return ui.KeyUp
	case glfw.KeyDown:
		return ui.KeyDown
	case glfw.KeyHome:
		return ui.KeyHome
	case glfw.KeyEnd:
		return ui.KeyEnd
	case glfw.KeyV:
		return ui.KeyV
	default:
		return ui.KeyNone
	}
}

func glfwMouseButtonToUI(button glfw.MouseButton) (ui.MouseButton, bool) {
	switch button {
	case glfw.MouseButtonLeft:
		return ui.MouseButtonPrimary, true
	case glfw.MouseButtonRight:
		return ui.MouseButtonSecondary, true
	case glfw.MouseButtonMiddle:
		return ui.MouseButtonMiddle, true
	default:
		return 0, false
	}
}

// GLFWClipboard is the system clipboard as seen through a GLFW window.
type GLFWClipboard struct {
	Window *glfw.Window
}

var _ ui.ClipboardProvider = GLFWClipboard{}

// GetText implements ui.ClipboardProvider.
func (c GLFWClipboard) GetText() string {
	return c.Window.GetClipboardString()
}

// SetText implements ui.ClipboardProvider.
func (c GLFWClipboard) SetText(text string) {
	c.Window.SetClipboardString(text)
}
