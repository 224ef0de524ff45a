package ui

import "github.com/chewxy/math32"

// Vec2 is a fractional 2D point, used for anchors and origins.
type Vec2 struct {
	X, Y float32
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Point is an integer pixel position or extent.
type Point struct {
	X, Y int
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Rect is an integer pixel rectangle.
type Rect struct {
	X, Y int // Top-left position
	W, H int // Width and height
}

// Min returns the top-left corner.
func (r Rect) Min() Point { return Point{X: r.X, Y: r.Y} }

// Size returns the extent as a point.
func (r Rect) Size() Point { return Point{X: r.W, Y: r.H} }

// Right returns the x coordinate one past the right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the y coordinate one past the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// IsZero reports whether all fields are zero. A zero rectangle is the "unset" sentinel
// for image source rectangles.
func (r Rect) IsZero() bool {
	return r == Rect{}
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Intersects returns true if two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.W && r.X+r.W > other.X &&
		r.Y < other.Y+other.H && r.Y+r.H > other.Y
}

// Union returns the smallest rectangle containing both r and other.
// Empty rectangles are ignored.
func (r Rect) Union(other Rect) Rect {
	if r.W <= 0 || r.H <= 0 {
		return other
	}
	if other.W <= 0 || other.H <= 0 {
		return r
	}
	x0 := min(r.X, other.X)
	y0 := min(r.Y, other.Y)
	x1 := max(r.Right(), other.Right())
	y1 := max(r.Bottom(), other.Bottom())
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Shrink returns r with the sides subtracted from each edge.
func (r Rect) Shrink(s Sides) Rect {
	return Rect{
		X: r.X + s.Left,
		Y: r.Y + s.Top,
		W: r.W - s.Left - s.Right,
		H: r.H - s.Top - s.Bottom,
	}
}

// Translate returns r moved by d.
func (r Rect) Translate(d Point) Rect {
	return Rect{X: r.X + d.X, Y: r.Y + d.Y, W: r.W, H: r.H}
}

// Sides holds a four-sided pixel quantity (padding or margin).
type Sides struct {
	Left, Top, Right, Bottom int
}

// UniformSides returns sides with every edge set to v.
func UniformSides(v int) Sides {
	return Sides{Left: v, Top: v, Right: v, Bottom: v}
}

// SizeMode tells how an axis value is resolved.
type SizeMode int

const (
	SizePixels  SizeMode = iota // Literal pixel value
	SizePercent                 // Percent of the parent's padded region
)

// AxisValue is a size along one axis, tagged pixels or percent-of-parent.
type AxisValue struct {
	Value float32
	Mode  SizeMode
}

// Px returns a pixel axis value.
func Px(v float32) AxisValue { return AxisValue{Value: v, Mode: SizePixels} }

// Pct returns a percent-of-parent axis value.
func Pct(v float32) AxisValue { return AxisValue{Value: v, Mode: SizePercent} }

// Resolve converts the value to pixels against the parent's extent on the same axis.
// Fractional pixels are floored.
func (a AxisValue) Resolve(parentExtent int) int {
	if a.Mode == SizePercent {
		return int(math32.Floor(float32(parentExtent) * a.Value / 100))
	}
	return int(math32.Floor(a.Value))
}

// Size is a pair of axis values.
type Size struct {
	W, H AxisValue
}

// PxSize returns a size in pixels on both axes.
func PxSize(w, h float32) Size {
	return Size{W: Px(w), H: Px(h)}
}

// State is the interaction state of an element.
type State int

const (
	StateIdle State = iota
	StatePointedOn
	StatePressedDown
	StateAltPressedDown
)

// Pressed reports whether the state is one of the pressed states.
func (s State) Pressed() bool {
	return s == StatePressedDown || s == StateAltPressedDown
}

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePointedOn:
		return "pointed-on"
	case StatePressedDown:
		return "pressed"
	case StateAltPressedDown:
		return "alt-pressed"
	default:
		return "unknown"
	}
}

// Align is horizontal text alignment.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// factor returns the horizontal origin fraction for the alignment.
func (a Align) factor() float32 {
	switch a {
	case AlignCenter:
		return 0.5
	case AlignRight:
		return 1
	default:
		return 0
	}
}

// Color is a packed RGBA color, 0xAABBGGRR, matching the byte order of GL vertex colors.
type Color uint32

// Color constants.
const (
	ColorWhite       Color = 0xFFFFFFFF
	ColorBlack       Color = 0xFF000000
	ColorRed         Color = 0xFF0000FF
	ColorGreen       Color = 0xFF00FF00
	ColorBlue        Color = 0xFFFF0000
	ColorYellow      Color = 0xFF00FFFF
	ColorGray        Color = 0xFF808080
	ColorDarkGray    Color = 0xFF404040
	ColorLightGray   Color = 0xFFC0C0C0
	ColorTransparent Color = 0x00000000
)

// RGBA creates a packed color from individual components (0-255).
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r))
}

// RGBA8 extracts RGBA components from a packed color.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

// StateColors is a per-state color triple.
type StateColors struct {
	Idle      Color
	Highlight Color
	Pressed   Color
}

// UniformColors returns a triple with the same color for every state.
func UniformColors(c Color) StateColors {
	return StateColors{Idle: c, Highlight: c, Pressed: c}
}

// For returns the color matching the state.
func (sc StateColors) For(s State) Color {
	switch s {
	case StatePointedOn:
		return sc.Highlight
	case StatePressedDown, StateAltPressedDown:
		return sc.Pressed
	default:
		return sc.Idle
	}
}

// StateRects is a per-state image source rectangle triple. A zero rectangle is unset and
// falls back to Idle.
type StateRects struct {
	Idle      Rect
	Highlight Rect
	Pressed   Rect
}

// For returns the source rectangle for the state, falling back to Idle when unset.
func (sr StateRects) For(s State) Rect {
	var r Rect
	switch s {
	case StatePointedOn:
		r = sr.Highlight
	case StatePressedDown, StateAltPressedDown:
		r = sr.Pressed
	}
	if r.IsZero() {
		return sr.Idle
	}
	return r
}

// StateWidths is a per-state float triple, used for text outline widths.
type StateWidths struct {
	Idle      float32
	Highlight float32
	Pressed   float32
}

// For returns the width matching the state.
func (sw StateWidths) For(s State) float32 {
	switch s {
	case StatePointedOn:
		return sw.Highlight
	case StatePressedDown, StateAltPressedDown:
		return sw.Pressed
	default:
		return sw.Idle
	}
}

// clampi clamps an int to a range. If hi < lo, lo wins.
func clampi(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
