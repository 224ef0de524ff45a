// Package style loads stylesheets: documents mapping section → key → value, written in
// YAML or TOML. A Sheet implements ui.Stylesheet.
//
// Nested tables become dotted sections, so these are equivalent:
//
//	MainMenu:
//	  Play:
//	    Text: Play
//
//	[MainMenu.Play]
//	Text = "Play"
//
// Points and vectors are two-element arrays, rectangles four-element arrays, and colors
// either "#RRGGBB", "#RRGGBBAA" or an array of 0-255 components.
package style

import (
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"sync"

	ui "github.com/go-theft-auto/ui"
)

// Sheet is a parsed stylesheet. It is read-only once loaded.
type Sheet struct {
	base     string
	sections map[string]map[string]any
	order    map[string][]string
	sorder   []string
	includes []string
	files    []string

	// Logger receives one warning per malformed key.
	Logger *slog.Logger

	mu     sync.Mutex
	warned map[string]bool
}

var _ ui.Stylesheet = (*Sheet)(nil)

// New creates an empty sheet whose relative asset paths resolve against baseDir.
func New(baseDir string) *Sheet {
	return &Sheet{
		base:     baseDir,
		sections: make(map[string]map[string]any),
		order:    make(map[string][]string),
		Logger:   slog.Default(),
		warned:   make(map[string]bool),
	}
}

// Set stores a value, keeping first-insertion order of sections and keys.
func (s *Sheet) Set(section, key string, v any) {
	sec, ok := s.sections[section]
	if !ok {
		sec = make(map[string]any)
		s.sections[section] = sec
		s.sorder = append(s.sorder, section)
	}
	if _, exists := sec[key]; !exists {
		s.order[section] = append(s.order[section], key)
	}
	sec[key] = v
}

// merge copies every value of other into s, other winning.
func (s *Sheet) merge(other *Sheet) {
	for _, section := range other.sorder {
		s.ensure(section)
		for _, key := range other.order[section] {
			s.Set(section, key, other.sections[section][key])
		}
	}
}

// Sections returns the section names in document order.
func (s *Sheet) Sections() []string { return slices.Clone(s.sorder) }

// Files returns the files the sheet was read from, the main file first.
func (s *Sheet) Files() []string { return slices.Clone(s.files) }

// BaseDir is the directory of the main file.
func (s *Sheet) BaseDir() string { return s.base }

// Keys returns the keys of a section in document order.
func (s *Sheet) Keys(section string) []string { return slices.Clone(s.order[section]) }

// Has reports whether the key is set.
func (s *Sheet) Has(section, key string) bool {
	_, ok := s.lookup(section, key)
	return ok
}

func (s *Sheet) lookup(section, key string) (any, bool) {
	sec, ok := s.sections[section]
	if !ok {
		return nil, false
	}
	v, ok := sec[key]
	return v, ok
}

func (s *Sheet) warn(section, key string, v any, want string) {
	id := section + "/" + key
	s.mu.Lock()
	seen := s.warned[id]
	s.warned[id] = true
	s.mu.Unlock()
	if seen || s.Logger == nil {
		return
	}
	s.Logger.Warn("malformed style value", "section", section, "key", key, "value", v, "want", want)
}

// String returns the value as a string. Numbers and booleans are formatted.
func (s *Sheet) String(section, key, def string) string {
	v, ok := s.lookup(section, key)
	if !ok {
		return def
	}
	switch t := v.(type) {
	case string:
		return t
	case bool, int, int64, uint64, float64:
		return fmt.Sprint(t)
	}
	s.warn(section, key, v, "string")
	return def
}

// Bool returns the value as a boolean.
func (s *Sheet) Bool(section, key string, def bool) bool {
	v, ok := s.lookup(section, key)
	if !ok {
		return def
	}
	switch t := v.(type) {
	case bool:
		return t
	case string:
		if b, err := strconv.ParseBool(t); err == nil {
			return b
		}
	}
	s.warn(section, key, v, "bool")
	return def
}

// Int returns the value as an int. Floats are truncated.
func (s *Sheet) Int(section, key string, def int) int {
	v, ok := s.lookup(section, key)
	if !ok {
		return def
	}
	if f, ok := toFloat(v); ok {
		return int(f)
	}
	s.warn(section, key, v, "int")
	return def
}

// Float returns the value as a float32.
func (s *Sheet) Float(section, key string, def float32) float32 {
	v, ok := s.lookup(section, key)
	if !ok {
		return def
	}
	if f, ok := toFloat(v); ok {
		return float32(f)
	}
	s.warn(section, key, v, "float")
	return def
}

// Point returns a two-element array as a point.
func (s *Sheet) Point(section, key string, def ui.Point) ui.Point {
	v, ok := s.lookup(section, key)
	if !ok {
		return def
	}
	if n, ok := toFloats(v, 2); ok {
		return ui.Point{X: int(n[0]), Y: int(n[1])}
	}
	s.warn(section, key, v, "[x, y]")
	return def
}

// Vec returns a two-element array as a fractional vector.
func (s *Sheet) Vec(section, key string, def ui.Vec2) ui.Vec2 {
	v, ok := s.lookup(section, key)
	if !ok {
		return def
	}
	if n, ok := toFloats(v, 2); ok {
		return ui.Vec2{X: float32(n[0]), Y: float32(n[1])}
	}
	s.warn(section, key, v, "[x, y]")
	return def
}

// Rect returns a four-element array as a rectangle.
func (s *Sheet) Rect(section, key string, def ui.Rect) ui.Rect {
	v, ok := s.lookup(section, key)
	if !ok {
		return def
	}
	if n, ok := toFloats(v, 4); ok {
		return ui.Rect{X: int(n[0]), Y: int(n[1]), W: int(n[2]), H: int(n[3])}
	}
	s.warn(section, key, v, "[x, y, w, h]")
	return def
}

// Color returns a hex string or component array as a color.
func (s *Sheet) Color(section, key string, def ui.Color) ui.Color {
	v, ok := s.lookup(section, key)
	if !ok {
		return def
	}
	if c, ok := toColor(v); ok {
		return c
	}
	s.warn(section, key, v, "#RRGGBB[AA] or [r, g, b, a]")
	return def
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint64:
		return float64(t), true
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	}
	return 0, false
}

// toFloats reads an array of exactly n numbers. A comma-separated string is accepted too.
func toFloats(v any, n int) ([]float64, bool) {
	var items []any
	switch t := v.(type) {
	case []any:
		items = t
	case string:
		for _, part := range strings.Split(t, ",") {
			items = append(items, part)
		}
	default:
		return nil, false
	}
	if len(items) != n {
		return nil, false
	}
	out := make([]float64, n)
	for i, it := range items {
		f, ok := toFloat(it)
		if !ok {
			return nil, false
		}
		out[i] = f
	}
	return out, true
}

func toColor(v any) (ui.Color, bool) {
	switch t := v.(type) {
	case string:
		return ParseColor(t)
	case []any:
		if len(t) != 3 && len(t) != 4 {
			return 0, false
		}
		c := [4]uint8{0, 0, 0, 255}
		for i, it := range t {
			f, ok := toFloat(it)
			if !ok || f < 0 || f > 255 {
				return 0, false
			}
			c[i] = uint8(f)
		}
		return ui.RGBA(c[0], c[1], c[2], c[3]), true
	}
	return 0, false
}

// ParseColor parses "#RRGGBB" or "#RRGGBBAA"; the leading # is optional.
func ParseColor(s string) (ui.Color, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 && len(s) != 8 {
		return 0, false
	}
	if len(s) == 6 {
		s += "ff"
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, false
	}
	return ui.RGBA(uint8(n>>24), uint8(n>>16), uint8(n>>8), uint8(n)), true
}
