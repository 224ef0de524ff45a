// Command gen builds each widget section of example/assets/menu.yaml on its own,
// captures the framebuffer and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	ui "github.com/go-theft-auto/ui"
	"github.com/go-theft-auto/ui/backend/opengl"
	"github.com/go-theft-auto/ui/style"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single widget screenshot to capture.
type screenshot struct {
	name    string        // filename without extension
	section string        // stylesheet section to build
	width   int           // viewport width
	height  int           // viewport height
	setup   func(ui.Node) // optional state change after building
	frames  int           // frames to render (0 = default 2)
}

var shots = []screenshot{
	{name: "text", section: "NameLabel", width: 240, height: 60},
	{name: "textinput", section: "PlayerName", width: 320, height: 60, setup: func(n ui.Node) {
		n.(*ui.TextInput).SetText("Tommy")
	}},
	{name: "checkbox", section: "Fullscreen", width: 240, height: 60},
	{name: "radio", section: "Difficulty", width: 420, height: 60},
	{name: "slider", section: "Volume", width: 320, height: 50},
	{name: "list", section: "Missions", width: 320, height: 180},
	{name: "dropdown", section: "Resolution", width: 320, height: 200, setup: func(n ui.Node) {
		n.(*ui.DropDown).ShowDropdownList(true)
	}},
	{name: "button", section: "Buttons", width: 360, height: 60},
	{name: "window", section: "Settings", width: 480, height: 600},
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(800, 600)
	if err != nil {
		return fmt.Errorf("ui renderer: %w", err)
	}
	defer renderer.Delete()

	sheet, err := style.Load(filepath.Join("example", "assets", "menu.yaml"))
	if err != nil {
		return err
	}

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	for _, s := range shots {
		if err := capture(renderer, sheet, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, sheet *style.Sheet, s screenshot, outDir string) error {
	// Only update the renderer projection. The hidden window stays at 800x600, larger
	// than every screenshot, so the framebuffer never needs an asynchronous resize.
	renderer.Resize(s.width, s.height)

	// Fresh GUI per screenshot to avoid state leaking between captures.
	g := ui.New(renderer, ui.WithViewport(s.width, s.height))
	f := ui.NewFactory(sheet, renderer, ui.WithStyle(ui.GTAStyle()))

	// Widgets sit in a padded holder; the window anchors itself to the center.
	holder := ui.NewElement(ui.WithSize(ui.Size{W: ui.Pct(100), H: ui.Pct(100)}), ui.WithPadding(ui.UniformSides(12)))
	g.Root().MustAddChild(holder)
	n, err := f.Build(holder, s.section)
	if err != nil {
		return err
	}
	if err := f.Errors(); err != nil {
		return err
	}
	if s.setup != nil {
		s.setup(n)
	}

	frames := 2
	if s.frames > 0 {
		frames = s.frames
	}

	in := ui.NewInputState()
	for i := 0; i < frames; i++ {
		gl.Viewport(0, 0, int32(s.width), int32(s.height))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		in.Reset()
		in.SetCursor(-1, -1)
		in.Advance(1.0 / 60.0)
		g.Update(in, 1.0/60.0)
		g.Draw()
		renderer.Flush()
	}

	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
	rowLen := s.width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < s.height/2; y++ {
		top := y * rowLen
		bot := (s.height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()
	return jpeg.Encode(out, img, &jpeg.Options{Quality: 90})
}
