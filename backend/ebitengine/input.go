package ebitengine

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	ui "github.com/go-theft-auto/ui"
)

// InputAdapter samples ebiten's input into a ui.InputState once per tick.
type InputAdapter struct {
	input *ui.InputState
	keys  []ebiten.Key
	chars []rune
}

// NewInputAdapter creates an adapter with an empty state.
func NewInputAdapter() *InputAdapter {
	return &InputAdapter{input: ui.NewInputState()}
}

// Update starts a new input frame from ebiten's state. Call it from Game.Update.
func (a *InputAdapter) Update(dt float32) *ui.InputState {
	in := a.input
	in.Reset()

	x, y := ebiten.CursorPosition()
	in.SetCursor(x, y)
	for eb, b := range mouseButtons {
		in.SetMouseButton(b, ebiten.IsMouseButtonPressed(eb))
	}

	a.keys = inpututil.AppendJustPressedKeys(a.keys[:0])
	for _, k := range a.keys {
		in.SetKey(ebitenKeyToUIKey(k), true)
	}
	a.keys = inpututil.AppendJustReleasedKeys(a.keys[:0])
	for _, k := range a.keys {
		in.SetKey(ebitenKeyToUIKey(k), false)
	}

	a.chars = ebiten.AppendInputChars(a.chars[:0])
	for _, r := range a.chars {
		in.AddChar(r)
	}

	wx, wy := ebiten.Wheel()
	in.WheelX, in.WheelY = float32(wx), float32(wy)

	in.ModCtrl = ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	in.ModShift = ebiten.IsKeyPressed(ebiten.KeyShift)
	in.ModAlt = ebiten.IsKeyPressed(ebiten.KeyAlt)
	in.Advance(dt)
	return in
}

// Input returns the current input state.
func (a *InputAdapter) Input() *ui.InputState { return a.input }

var mouseButtons = map[ebiten.MouseButton]ui.MouseButton{
	ebiten.MouseButtonLeft:   ui.MouseButtonPrimary,
	ebiten.MouseButtonRight:  ui.MouseButtonSecondary,
	ebiten.MouseButtonMiddle: ui.MouseButtonMiddle,
}

func ebitenKeyToUIKey(k ebiten.Key) ui.Key {
	switch k {
	case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
		return ui.KeyReturn
	case ebiten.KeyEscape:
		return ui.KeyEscape
	case ebiten.KeyBackspace:
		return ui.KeyBackspace
	case ebiten.KeyDelete:
		return ui.KeyDelete
	case ebiten.KeyTab:
		return ui.KeyTab
	case ebiten.KeyArrowLeft:
		return ui.KeyLeft
	case ebiten.KeyArrowRight:
		return ui.KeyRight
	case ebiten.KeyArrowUp:
		return ui.KeyUp
	case ebiten.KeyArrowDown:
		return ui.KeyDown
	case ebiten.KeyHome:
		return ui.KeyHome
	case ebiten.KeyEnd:
		return ui.KeyEnd
	case ebiten.KeyV:
		return ui.KeyV
	default:
		return ui.KeyNone
	}
}
