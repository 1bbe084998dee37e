package rgui

import "sort"

// Slider picks an integer from start..end in multiples of step. The grab
// follows the cursor while pressed and snaps to a stop on release, at which
// point onSlide is emitted if the value changed.
type Slider struct {
	Base
	start, end, step int
	values           []int
	index            int
	onSlide          Message

	track    Color
	grab     Color
	grabSize Vec2

	pressed bool
	cursor  Vec2
}

// NewSlider creates a slider over start..end. A value that is not one of the
// stops selects the first stop. step values below one are treated as one.
func NewSlider(size Vec2, style Style, start, end, step, value int, onSlide Message) *Slider {
	if step < 1 {
		step = 1
	}
	if end < start {
		start, end = end, start
	}
	var values []int
	for v := start; v <= end; v += step {
		values = append(values, v)
	}

	s := &Slider{
		Base:     NewBase(size, NoLayout()),
		start:    start,
		end:      end,
		step:     step,
		values:   values,
		onSlide:  onSlide,
		track:    style.SliderTrackColor,
		grab:     style.SliderGrabColor,
		grabSize: style.SliderGrabSize,
		cursor:   V(-1, -1),
	}
	s.index = s.indexOf(value)
	return s
}

func (s *Slider) indexOf(value int) int {
	i := sort.SearchInts(s.values, value)
	if i < len(s.values) && s.values[i] == value {
		return i
	}
	return 0
}

// Value returns the selected stop.
func (s *Slider) Value() int { return s.values[s.index] }

// SetValue selects value without emitting onSlide.
func (s *Slider) SetValue(value int) {
	s.index = s.indexOf(value)
	s.SetDirty(true)
}

func (s *Slider) SetMessage(onSlide Message) { s.onSlide = onSlide }

// stop returns the x coordinate of stop i.
func (s *Slider) stop(i int) float64 {
	span := s.end - s.start
	if span == 0 {
		return s.position.X
	}
	return s.position.X + float64(i*s.step)*s.size.X/float64(span)
}

func (s *Slider) OnEvent(ctx *EventContext, ev Event) {
	switch e := ev.(type) {
	case CursorMoved:
		s.cursor = V(e.X, e.Y)
		if !s.pressed {
			ctx.Forward(s, ev)
			return
		}
		s.cursor.X = clampf(s.cursor.X, s.position.X, s.position.X+s.size.X)
		s.SetDirty(true)
	case ButtonPressed:
		if e.Button != MouseButtonLeft {
			ctx.Forward(s, ev)
			return
		}
		if s.IsCursorInside(s.cursor) {
			s.pressed = true
		}
	case ButtonReleased:
		if e.Button != MouseButtonLeft {
			ctx.Forward(s, ev)
			return
		}
		if !s.pressed {
			return
		}
		if s.snap() {
			ctx.Emit(s.onSlide, ev)
		}
		s.SetDirty(true)
		s.pressed = false
	default:
		ctx.Forward(s, ev)
	}
}

// snap moves the index to the stop the cursor was released at. The cursor
// must pass half a step beyond the current stop before the index moves.
func (s *Slider) snap() bool {
	last := len(s.values) - 1
	if last == 0 {
		return false
	}
	half := (s.stop(1) - s.stop(0)) * 0.5
	x := s.cursor.X

	switch {
	case x > s.stop(s.index)+half:
		if s.index == last {
			return false
		}
		s.index++
		for s.index < last && s.stop(s.index) < x {
			s.index++
		}
	case x < s.stop(s.index)-half:
		if s.index == 0 {
			return false
		}
		s.index--
		for s.index > 0 && s.stop(s.index) > x {
			s.index--
		}
	default:
		return false
	}
	return true
}

func (s *Slider) Recipe() []Instruction {
	clip := s.clipArea()
	x := s.stop(s.index)
	if s.pressed {
		x = s.cursor.X
	}
	return []Instruction{
		DrawRect{Point: s.position, Size: s.size, Color: s.track, Clip: clip},
		DrawRect{
			Point: V(x-s.grabSize.X*0.5, s.position.Y+s.size.Y*0.5-s.grabSize.Y*0.5),
			Size:  s.grabSize,
			Color: s.grab,
			Clip:  clip,
		},
	}
}
