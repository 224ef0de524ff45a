package ui

// MouseButton represents a pointer button.
type MouseButton int

const (
	MouseButtonPrimary MouseButton = iota
	MouseButtonSecondary
	MouseButtonMiddle
	MouseButtonCount
)

// Key represents a keyboard key the UI reacts to.
type Key int

const (
	KeyNone Key = iota
	KeyReturn
	KeyEscape
	KeyBackspace
	KeyDelete
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyV
	KeyCount
)

// Key repeat timing, in seconds.
const (
	KeyRepeatDelay    float32 = 0.4
	KeyRepeatInterval float32 = 0.03
)

// InputState is the per-frame snapshot of the input backend. Backends fill it once per
// frame (see backend/opengl and backend/ebiten); the dispatch pass only reads it.
type InputState struct {
	cursor Point

	mouseDown     [MouseButtonCount]bool
	mousePressed  [MouseButtonCount]bool // Went down this frame
	mouseReleased [MouseButtonCount]bool // Went up this frame

	WheelX, WheelY float32

	keyDown     [KeyCount]bool
	keyPressed  [KeyCount]bool
	keyReleased [KeyCount]bool
	keyHeld     [KeyCount]float32
	keyPrevHeld [KeyCount]float32

	chars []rune

	ModCtrl  bool
	ModShift bool
	ModAlt   bool
}

// NewInputState creates an empty input snapshot.
func NewInputState() *InputState {
	return &InputState{chars: make([]rune, 0, 16)}
}

// Reset clears the edge-triggered state. Call it at the start of every frame before the
// backend records new events; held buttons and keys stay down.
func (s *InputState) Reset() {
	s.mousePressed = [MouseButtonCount]bool{}
	s.mouseReleased = [MouseButtonCount]bool{}
	s.keyPressed = [KeyCount]bool{}
	s.keyReleased = [KeyCount]bool{}
	s.chars = s.chars[:0]
	s.WheelX, s.WheelY = 0, 0
}

// SetCursor sets the cursor position.
func (s *InputState) SetCursor(x, y int) {
	s.cursor = Point{X: x, Y: y}
}

// CursorPos returns the cursor position.
func (s *InputState) CursorPos() Point {
	return s.cursor
}

// SetMouseButton records a button level; edges are derived from the previous level.
func (s *InputState) SetMouseButton(b MouseButton, down bool) {
	if b < 0 || b >= MouseButtonCount {
		return
	}
	was := s.mouseDown[b]
	s.mouseDown[b] = down
	if down && !was {
		s.mousePressed[b] = true
	}
	if !down && was {
		s.mouseReleased[b] = true
	}
}

// SetKey records a key level; edges are derived from the previous level.
func (s *InputState) SetKey(k Key, down bool) {
	if k <= KeyNone || k >= KeyCount {
		return
	}
	was := s.keyDown[k]
	s.keyDown[k] = down
	if down && !was {
		s.keyPressed[k] = true
		s.keyHeld[k] = 0
		s.keyPrevHeld[k] = 0
	}
	if !down && was {
		s.keyReleased[k] = true
		s.keyHeld[k] = 0
		s.keyPrevHeld[k] = 0
	}
}

// Advance accumulates hold time for repeat detection. Call it once per frame.
func (s *InputState) Advance(dt float32) {
	for k := range s.keyDown {
		s.keyPrevHeld[k] = s.keyHeld[k]
		if s.keyDown[k] {
			s.keyHeld[k] += dt
		}
	}
}

// AddChar records a typed character.
func (s *InputState) AddChar(r rune) {
	s.chars = append(s.chars, r)
}

// Chars returns the characters typed this frame.
func (s *InputState) Chars() []rune {
	return s.chars
}

// Down reports whether the button is held.
func (s *InputState) Down(b MouseButton) bool {
	return b >= 0 && b < MouseButtonCount && s.mouseDown[b]
}

// PressedNow reports whether the button went down this frame.
func (s *InputState) PressedNow(b MouseButton) bool {
	return b >= 0 && b < MouseButtonCount && s.mousePressed[b]
}

// ReleasedNow reports whether the button went up this frame.
func (s *InputState) ReleasedNow(b MouseButton) bool {
	return b >= 0 && b < MouseButtonCount && s.mouseReleased[b]
}

// KeyDown reports whether the key is held.
func (s *InputState) KeyDown(k Key) bool {
	return k > KeyNone && k < KeyCount && s.keyDown[k]
}

// KeyPressed reports whether the key went down this frame.
func (s *InputState) KeyPressed(k Key) bool {
	return k > KeyNone && k < KeyCount && s.keyPressed[k]
}

// KeyReleased reports whether the key went up this frame.
func (s *InputState) KeyReleased(k Key) bool {
	return k > KeyNone && k < KeyCount && s.keyReleased[k]
}

// KeyRepeated returns true on the initial press, then after KeyRepeatDelay once per
// KeyRepeatInterval while the key stays down.
func (s *InputState) KeyRepeated(k Key) bool {
	if k <= KeyNone || k >= KeyCount {
		return false
	}
	if s.keyPressed[k] {
		return true
	}
	if !s.keyDown[k] || s.keyHeld[k] < KeyRepeatDelay {
		return false
	}
	now := int((s.keyHeld[k] - KeyRepeatDelay) / KeyRepeatInterval)
	prev := int((s.keyPrevHeld[k] - KeyRepeatDelay) / KeyRepeatInterval)
	if s.keyPrevHeld[k] < KeyRepeatDelay {
		return true
	}
	return now > prev
}
