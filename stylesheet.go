package ui

import (
	"strconv"
	"strings"
)

// Stylesheet is a read-only section → key → value document. Every lookup takes the value
// to return when the key is missing or malformed. The style package implements it over
// YAML and TOML files.
type Stylesheet interface {
	Has(section, key string) bool
	String(section, key, def string) string
	Bool(section, key string, def bool) bool
	Int(section, key string, def int) int
	Float(section, key string, def float32) float32
	Point(section, key string, def Point) Point
	Vec(section, key string, def Vec2) Vec2
	Rect(section, key string, def Rect) Rect
	Color(section, key string, def Color) Color

	// Keys returns the keys of a section in document order.
	Keys(section string) []string

	// BaseDir is the directory relative asset paths resolve against.
	BaseDir() string
}

// ParseAxisValue parses "120", "120px" or "50%". It returns def for anything else.
func ParseAxisValue(s string, def AxisValue) AxisValue {
	s = strings.TrimSpace(s)
	mode := SizePixels
	switch {
	case strings.HasSuffix(s, "%"):
		mode = SizePercent
		s = strings.TrimSuffix(s, "%")
	case strings.HasSuffix(s, "px"):
		s = strings.TrimSuffix(s, "px")
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return def
	}
	return AxisValue{Value: float32(v), Mode: mode}
}

// String formats the value the way ParseAxisValue reads it.
func (a AxisValue) String() string {
	v := strconv.FormatFloat(float64(a.Value), 'f', -1, 32)
	if a.Mode == SizePercent {
		return v + "%"
	}
	return v + "px"
}

var blendModeNames = map[string]BlendMode{
	"alpha":    BlendAlpha,
	"blend":    BlendAlpha,
	"add":      BlendAdditive,
	"additive": BlendAdditive,
	"multiply": BlendMultiply,
	"mod":      BlendMultiply,
	"none":     BlendNone,
	"copy":     BlendNone,
}

// ParseBlendMode resolves a blend mode name, case-insensitively.
func ParseBlendMode(name string) (BlendMode, bool) {
	m, ok := blendModeNames[strings.ToLower(strings.TrimSpace(name))]
	return m, ok
}

func (m BlendMode) String() string {
	switch m {
	case BlendAlpha:
		return "alpha"
	case BlendAdditive:
		return "additive"
	case BlendMultiply:
		return "multiply"
	case BlendNone:
		return "none"
	default:
		return "unknown"
	}
}

// ParseAlign resolves "left", "center" or "right".
func ParseAlign(name string) (Align, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "left":
		return AlignLeft, true
	case "center", "centre":
		return AlignCenter, true
	case "right":
		return AlignRight, true
	}
	return AlignLeft, false
}

// subSection names the section styling a part of a composite widget.
func subSection(section, part string) string {
	return section + "." + part
}
