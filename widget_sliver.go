package rgui

// SliverView is a scrolled list. Children keep their preferred extent along
// the axis; the mouse wheel over the view shifts them, and children that
// fall outside the view are not drawn.
type SliverView struct {
	Base
	scroll  float64
	clipper *SliverClipper
	visible float64
	cursor  Vec2
}

func NewSliverView(size Vec2, axis Axis) *SliverView {
	return &SliverView{
		Base:   NewBase(size, Sliver(axis)),
		cursor: V(-1, -1),
	}
}

func (s *SliverView) ScrollOffset() float64 { return s.scroll }

func (s *SliverView) SetClipper(c *SliverClipper, visibleExtent float64) {
	s.clipper, s.visible = c, visibleExtent
	// Content may have shrunk since the last scroll.
	if limit := s.maxScroll(); s.scroll > limit {
		s.scroll = limit
		s.SetDirty(true)
	}
}

// ContentExtent returns the total extent of the children along the axis as
// of the last build.
func (s *SliverView) ContentExtent() float64 {
	if s.clipper == nil {
		return 0
	}
	return s.clipper.ContentExtent()
}

// VisibleCount returns how many children the last build drew.
func (s *SliverView) VisibleCount() int {
	if s.clipper == nil {
		return 0
	}
	return s.clipper.VisibleCount()
}

// ScrollTo moves the view so offset is at its leading edge. The offset is
// clamped to the content.
func (s *SliverView) ScrollTo(offset float64) {
	offset = clampf(offset, 0, s.maxScroll())
	if offset == s.scroll {
		return
	}
	s.scroll = offset
	s.SetDirty(true)
}

// ScrollToChild scrolls just far enough to bring child i fully into view.
// Before the first build, or for an index out of range, it does nothing.
func (s *SliverView) ScrollToChild(i int) {
	if s.clipper == nil {
		return
	}
	s.ScrollTo(s.clipper.ScrollToItem(i, s.scroll, s.visible))
}

func (s *SliverView) maxScroll() float64 {
	if s.clipper == nil {
		return 0
	}
	return s.clipper.MaxScroll(s.visible)
}

func (s *SliverView) OnEvent(ctx *EventContext, ev Event) {
	switch e := ev.(type) {
	case CursorMoved:
		s.cursor = V(e.X, e.Y)
	case WheelScrolled:
		if s.IsCursorInside(s.cursor) {
			d := e.Delta.Y
			if s.layout.Axis == Horizontal && e.Delta.X != 0 {
				d = e.Delta.X
			}
			// Wheel up moves content down, towards the start.
			s.ScrollTo(s.scroll - d)
			return
		}
	}
	ctx.Forward(s, ev)
}

func (s *SliverView) Recipe() []Instruction { return nil }
