package ui

import "github.com/chewxy/math32"

// Slider is a track with a draggable handle. The value is the handle's position along the
// track mapped linearly onto [MinValue, MaxValue].
type Slider struct {
	Image // Track

	Handle *Image

	// Step snaps the value to multiples of Step from MinValue. Zero disables snapping.
	Step float32

	vertical  bool
	wheelSign float32

	minValue float32
	maxValue float32
	value    float32
}

// NewSlider creates a horizontal slider over [0, 1].
func NewSlider(track, handle Texture, opts ...Option) *Slider {
	s := &Slider{}
	s.setupSlider(s, track, handle, false)
	s.apply(opts)
	return s
}

func (s *Slider) setupSlider(self Node, track, handle Texture, vertical bool) {
	s.setupImage(self, track)
	s.Interactive = true
	s.CaptureInput = true
	s.vertical = vertical
	s.wheelSign = 1
	s.maxValue = 1

	s.Handle = NewImage(handle, WithName("handle"), Draggable(true), ExemptFromArrange())
	s.Handle.CaptureInput = true
	if vertical {
		s.Handle.SetSize(Size{W: Pct(100), H: Px(16)})
	} else {
		s.Handle.SetSize(Size{W: Px(16), H: Pct(100)})
	}
	s.MustAddChild(s.Handle)
}

// Value returns the current value.
func (s *Slider) Value() float32 { return s.value }

// MinValue returns the lower bound.
func (s *Slider) MinValue() float32 { return s.minValue }

// MaxValue returns the upper bound.
func (s *Slider) MaxValue() float32 { return s.maxValue }

// SetValue clamps and snaps v, firing OnValueChange when the value changes.
func (s *Slider) SetValue(v float32) {
	v = s.snap(v)
	if v == s.value {
		return
	}
	s.value = v
	if s.OnValueChange != nil {
		s.OnValueChange(s.self())
	}
}

// SetRange sets the bounds, re-clamping the value. Reversed bounds are swapped.
func (s *Slider) SetRange(lo, hi float32) {
	if hi < lo {
		lo, hi = hi, lo
	}
	s.minValue, s.maxValue = lo, hi
	s.SetValue(s.value)
}

func (s *Slider) snap(v float32) float32 {
	v = clampf(v, s.minValue, s.maxValue)
	if s.Step > 0 {
		v = s.minValue + math32.Round((v-s.minValue)/s.Step)*s.Step
		v = clampf(v, s.minValue, s.maxValue)
	}
	return v
}

func (s *Slider) along(p Point) int {
	if s.vertical {
		return p.Y
	}
	return p.X
}

func (s *Slider) axisPoint(v int) Point {
	if s.vertical {
		return Point{Y: v}
	}
	return Point{X: v}
}

func (s *Slider) handleLength() int {
	region := s.PaddedRect()
	if s.vertical {
		return s.Handle.size.H.Resolve(region.H)
	}
	return s.Handle.size.W.Resolve(region.W)
}

// trackLength is the distance the handle can travel.
func (s *Slider) trackLength() int {
	region := s.PaddedRect()
	extent := region.W
	if s.vertical {
		extent = region.H
	}
	return max(0, extent-s.handleLength())
}

func (s *Slider) ratio() float32 {
	if s.maxValue <= s.minValue {
		return 0
	}
	return (s.value - s.minValue) / (s.maxValue - s.minValue)
}

func (s *Slider) valueAt(offset int) float32 {
	n := s.trackLength()
	if n <= 0 {
		return s.minValue
	}
	r := clampf(float32(offset)/float32(n), 0, 1)
	return s.minValue + r*(s.maxValue-s.minValue)
}

// UpdateSelf places the handle at the value unless it is being dragged.
func (s *Slider) UpdateSelf(ctx *Context) {
	if s.Handle.Dragging() {
		return
	}
	s.Handle.SetAnchor(Vec2{})
	s.Handle.SetOrigin(Vec2{})
	off := int(math32.Round(s.ratio() * float32(s.trackLength())))
	s.Handle.SetOffset(s.axisPoint(off))
}

// InputSelf follows the handle while dragged, jumps to clicks on the track and scrolls with
// the wheel.
func (s *Slider) InputSelf(ctx *Context, st *UIUpdateInputState) {
	in := ctx.input()
	switch {
	case s.Handle.Dragging():
		off := s.along(s.Handle.offset)
		s.Handle.SetOffset(s.axisPoint(off))
		s.SetValue(s.valueAt(off))
	case s.PressedThisFrame(MouseButtonPrimary):
		rel := s.along(st.Cursor) - s.along(s.PaddedRect().Min()) - s.handleLength()/2
		s.SetValue(s.valueAt(rel))
	}

	if in.WheelY != 0 && s.hovered(st) {
		step := s.Step
		if step == 0 {
			step = (s.maxValue - s.minValue) / 100
		}
		s.SetValue(s.value + s.wheelSign*in.WheelY*step)
	}
}

// hovered reports whether the pointer is over the slider and not over something on top of it.
func (s *Slider) hovered(st *UIUpdateInputState) bool {
	if !s.destRect.Contains(st.Cursor) {
		return false
	}
	return st.PointedOn == nil || s.IsAncestorOf(st.PointedOn)
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// VerticalScrollbar is a vertical slider whose handle length shows the visible fraction of
// the scrolled content. The wheel scrolls toward MinValue when rolled up.
type VerticalScrollbar struct {
	Slider

	MinHandleLength int

	visibleFraction float32
}

// NewVerticalScrollbar creates a scrollbar over [0, 0] stepping by 1.
func NewVerticalScrollbar(track, handle Texture, opts ...Option) *VerticalScrollbar {
	sb := &VerticalScrollbar{}
	sb.setupSlider(sb, track, handle, true)
	sb.wheelSign = -1
	sb.Step = 1
	sb.maxValue = 0
	sb.MinHandleLength = 12
	sb.visibleFraction = 1
	sb.apply(opts)
	return sb
}

// SetVisibleFraction sets the share of the content that fits, in (0, 1].
func (sb *VerticalScrollbar) SetVisibleFraction(f float32) {
	sb.visibleFraction = clampf(f, 0, 1)
}

// UpdateSelf sizes the handle before placing it.
func (sb *VerticalScrollbar) UpdateSelf(ctx *Context) {
	region := sb.PaddedRect()
	h := max(sb.MinHandleLength, floorMul(region.H, sb.visibleFraction))
	h = min(h, region.H)
	sb.Handle.SetSize(Size{W: Pct(100), H: Px(float32(h))})
	sb.Slider.UpdateSelf(ctx)
}
