// Command ebitengine shows the settings menu of example/assets/menu.yaml with the ebiten
// backend.
//
//	go run ./example/ebitengine/
package main

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	ui "github.com/go-theft-auto/ui"
	"github.com/go-theft-auto/ui/backend/ebitengine"
	"github.com/go-theft-auto/ui/style"
)

const (
	screenWidth  = 800
	screenHeight = 600
)

var background = color.RGBA{R: 0x1f, G: 0x1f, B: 0x24, A: 0xff}

// errQuit ends RunGame without an error exit.
var errQuit = errors.New("quit")

type game struct {
	gui      *ui.GUI
	renderer *ebitengine.Renderer
	input    *ebitengine.InputAdapter
	quit     bool
}

func (g *game) Update() error {
	if g.quit {
		return errQuit
	}
	dt := 1 / float32(ebiten.TPS())
	g.gui.Update(g.input.Update(dt), dt)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	g.renderer.Begin(screen)
	g.gui.Draw()
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	sheet, err := style.Load("example/assets/menu.yaml")
	if err != nil {
		return err
	}

	r := ebitengine.NewRenderer(screenWidth, screenHeight)
	g := &game{
		renderer: r,
		input:    ebitengine.NewInputAdapter(),
		// Ebitengine has no clipboard API; paste works within the process.
		gui: ui.New(r, ui.WithClipboard(&ui.MemoryClipboard{})),
	}

	f := ui.NewFactory(sheet, r, ui.WithStyle(ui.GTAStyle()))
	menu, err := f.Build(g.gui.Root(), "Settings")
	if err != nil {
		return fmt.Errorf("build menu: %w", err)
	}
	menu.(*ui.Window).OnClose = func(ui.Node) { g.quit = true }
	if quit, ok := menu.AsElement().FindDescendant("Quit").(*ui.Button); ok {
		quit.OnMouseReleased = func(_ ui.Node, b ui.MouseButton) {
			if b == ui.MouseButtonPrimary {
				g.quit = true
			}
		}
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("ui example (ebitengine)")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, errQuit) {
		return err
	}
	return nil
}
