package style

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ui "github.com/go-theft-auto/ui"
)

func TestLoadYAMLWithInclude(t *testing.T) {
	s, err := Load("testdata/menu.yaml")
	require.NoError(t, err)

	// Included values survive unless overridden.
	assert.Equal(t, float32(14), s.Float("Defaults", "FontSize", 0))
	assert.Equal(t, "50%", s.String("Panel", "Width", ""))
	assert.Equal(t, "240px", s.String("Panel", "Height", ""))
	assert.True(t, s.Bool("Panel", "Draggable", false))
	assert.Equal(t, ui.Rect{X: 4, Y: 4, W: 4, H: 4}, s.Rect("Panel", "Padding", ui.Rect{}))
	assert.Equal(t, ui.RGBA(0x20, 0x20, 0x20, 0xc8), s.Color("Panel", "Color", 0))

	// Nested mappings become dotted sections.
	assert.Equal(t, "Button", s.String("MainMenu.Play", "Type", ""))
	assert.Equal(t, ui.Point{X: 10, Y: 20}, s.Point("MainMenu.Play", "Offset", ui.Point{}))
	assert.Equal(t, ui.Vec2{X: 0.5, Y: 0.5}, s.Vec("MainMenu", "Anchor", ui.Vec2{}))
	assert.Equal(t, ui.RGBA(255, 200, 0, 255), s.Color("MainMenu.Play.Caption", "ColorIdle", 0))

	// Document order is kept.
	assert.Equal(t, []string{"play", "quit"}, s.Keys("MainMenu.Children"))

	abs, err := filepath.Abs("testdata")
	require.NoError(t, err)
	assert.Equal(t, abs, s.BaseDir())
	assert.Len(t, s.Files(), 2)
}

func TestLoadTOML(t *testing.T) {
	s, err := Load("testdata/menu.toml")
	require.NoError(t, err)

	assert.Equal(t, "Window", s.String("MainMenu", "Type", ""))
	assert.Equal(t, ui.Point{X: 10, Y: 20}, s.Point("MainMenu.Play", "Offset", ui.Point{}))
	assert.Equal(t, "additive", s.String("BlendModes", "glow", ""))
	assert.Equal(t, 200, s.Int("Panel", "Height", 0))
}

func TestDefaultsForMissingAndMalformed(t *testing.T) {
	s := New("")
	s.Set("A", "Offset", "not a point")
	s.Set("A", "Flag", "maybe")
	s.Set("A", "Color", "#12345")

	assert.Equal(t, ui.Point{X: 1, Y: 2}, s.Point("A", "Offset", ui.Point{X: 1, Y: 2}))
	assert.True(t, s.Bool("A", "Flag", true))
	assert.Equal(t, ui.ColorRed, s.Color("A", "Color", ui.ColorRed))
	assert.Equal(t, 7, s.Int("Missing", "Key", 7))
	assert.False(t, s.Has("Missing", "Key"))
	assert.True(t, s.Has("A", "Flag"))
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
		want error
	}{
		{"include cycle", "testdata/cycle_a.yaml", ErrIncludeCycle},
		{"section not a mapping", "testdata/broken.yaml", ErrMalformed},
		{"unknown extension", "testdata/menu.ini", ErrUnknownFormat},
		{"missing file", "testdata/nope.yaml", os.ErrNotExist},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseColor(t *testing.T) {
	c, ok := ParseColor("#ff000080")
	require.True(t, ok)
	assert.Equal(t, ui.RGBA(255, 0, 0, 128), c)

	c, ok = ParseColor("00ff00")
	require.True(t, ok)
	assert.Equal(t, ui.ColorGreen, c)

	_, ok = ParseColor("#zzzzzz")
	assert.False(t, ok)
}

func TestSheetDrivesFactory(t *testing.T) {
	s, err := Load("testdata/menu.yaml")
	require.NoError(t, err)
	s.Set("quit", "Type", "Button")
	s.Set("quit", "Text", "Quit")

	f := ui.NewFactory(s, nil)
	root := ui.NewElement()
	n, err := f.Build(root, "MainMenu")
	require.NoError(t, err)

	w, ok := n.(*ui.Window)
	require.True(t, ok)
	require.Equal(t, 2, w.ChildCount())

	play, ok := w.FindChild("Play").(*ui.Button)
	require.True(t, ok)
	assert.Equal(t, "Play", play.Caption.Text())
	assert.Equal(t, ui.BlendAdditive, play.Blend)
	assert.Equal(t, ui.Rect{W: 64, H: 16}, play.Sources.Idle)
	assert.Equal(t, ui.RGBA(255, 200, 0, 255), play.Caption.Colors.Idle)

	quit, ok := w.FindChild("quit").(*ui.Button)
	require.True(t, ok)
	assert.Equal(t, "Quit", quit.Caption.Text())
}

func TestWatcherReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ui.yaml")
	require.NoError(t, os.WriteFile(path, []byte("A:\n  X: 1\n"), 0o644))

	w, err := Watch(path, nil)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("A:\n  X: 2\n"), 0o644))

	select {
	case s := <-w.Reloads():
		assert.Equal(t, 2, s.Int("A", "X", 0))
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after write")
	}
}
