// Example opens a GLFW window and shows a settings menu built from a YAML stylesheet. The
// stylesheet is watched: saving it rebuilds the menu.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//	go run ./example/ -v      # with debug logging
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	ui "github.com/go-theft-auto/ui"
	"github.com/go-theft-auto/ui/backend/opengl"
	"github.com/go-theft-auto/ui/style"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "ui example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	sheetPath := flag.String("style", "example/assets/menu.yaml", "stylesheet to build the menu from")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	ui.SetVerbose(*verbose)
	if err := run(*sheetPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(sheetPath string) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("ui renderer: %w", err)
	}
	defer renderer.Delete()

	input := opengl.NewGLFWInputAdapter(window)
	logger := ui.DefaultLogger()
	g := ui.New(renderer,
		ui.WithLogger(logger),
		ui.WithClipboard(opengl.GLFWClipboard{Window: window}),
	)

	watcher, err := style.Watch(sheetPath, logger)
	if err != nil {
		return fmt.Errorf("watch stylesheet: %w", err)
	}
	defer watcher.Close()

	sheet, err := style.Load(sheetPath)
	if err != nil {
		return err
	}
	if err := buildMenu(g, sheet, renderer, logger, window); err != nil {
		return err
	}

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := float32(now - last)
		last = now

		select {
		case s := <-watcher.Reloads():
			if err := buildMenu(g, s, renderer, logger, window); err != nil {
				logger.Error("rebuild menu", "error", err)
			}
		default:
		}

		in := input.Poll(dt)
		w, h := window.GetFramebufferSize()
		renderer.Resize(w, h)
		g.Update(in, dt)

		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)
		g.Draw()
		renderer.Flush()

		window.SwapBuffers()
	}
	return nil
}

// buildMenu replaces the root's children with the Settings window and wires its callbacks.
func buildMenu(g *ui.GUI, sheet *style.Sheet, assets ui.AssetLoader, logger *slog.Logger, window *glfw.Window) error {
	for _, c := range g.Root().Children() {
		c.AsElement().Destroy()
	}

	f := ui.NewFactory(sheet, assets, ui.WithStyle(ui.GTAStyle()), ui.WithFactoryLogger(logger))
	menu, err := f.Build(g.Root(), "Settings")
	if err != nil {
		return fmt.Errorf("build menu: %w", err)
	}
	if err := f.Errors(); err != nil {
		logger.Warn("stylesheet problems", "error", err)
	}

	settings := menu.(*ui.Window)
	settings.OnClose = func(ui.Node) { window.SetShouldClose(true) }

	find := settings.FindDescendant
	if quit, ok := find("Quit").(*ui.Button); ok {
		quit.OnMouseReleased = func(_ ui.Node, b ui.MouseButton) {
			if b == ui.MouseButtonPrimary {
				window.SetShouldClose(true)
			}
		}
	}
	name, _ := find("PlayerName").(*ui.TextInput)
	full, _ := find("Fullscreen").(*ui.CheckBox)
	volume, _ := find("Volume").(*ui.Slider)
	res, _ := find("Resolution").(*ui.DropDown)
	missions, _ := find("Missions").(*ui.List)

	if apply, ok := find("Apply").(*ui.Button); ok {
		apply.OnMouseReleased = func(_ ui.Node, b ui.MouseButton) {
			if b != ui.MouseButtonPrimary {
				return
			}
			attrs := []any{}
			if name != nil {
				attrs = append(attrs, "name", name.Text())
			}
			if full != nil {
				attrs = append(attrs, "fullscreen", full.Checked())
			}
			if volume != nil {
				attrs = append(attrs, "volume", volume.Value())
			}
			if res != nil {
				v, _ := res.SelectedValue()
				attrs = append(attrs, "resolution", v)
			}
			if missions != nil {
				v, _ := missions.SelectedValue()
				attrs = append(attrs, "mission", v)
			}
			logger.Info("settings applied", attrs...)
		}
	}
	if missions != nil {
		missions.OnValueChange = func(ui.Node) {
			v, _ := missions.SelectedValue()
			logger.Info("mission selected", "mission", v)
		}
	}
	return nil
}
