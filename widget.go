package rgui

import "fmt"

// Axis is the main direction of a Box, Grid or Sliver layout.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) String() string {
	if a == Horizontal {
		return "Horizontal"
	}
	return "Vertical"
}

// LayoutKind selects how a widget arranges its children.
type LayoutKind int

const (
	LayoutNone LayoutKind = iota
	LayoutBox
	LayoutGrid
	LayoutSliver
)

// Layout describes how a widget arranges its children. The zero value is
// the None layout: every child is placed at the parent's position.
type Layout struct {
	Kind       LayoutKind
	Axis       Axis
	CrossCount int // Grid only: cells along the cross axis
}

// NoLayout stacks every child at the parent's position.
func NoLayout() Layout { return Layout{} }

// Box places children one after another along axis.
func Box(axis Axis) Layout { return Layout{Kind: LayoutBox, Axis: axis} }

// Grid places children in uniform cells, crossCount per row (Vertical) or
// per column (Horizontal).
func Grid(axis Axis, crossCount int) Layout {
	return Layout{Kind: LayoutGrid, Axis: axis, CrossCount: crossCount}
}

// Sliver places children along axis inside a scrolled, clipped viewport.
func Sliver(axis Axis) Layout { return Layout{Kind: LayoutSliver, Axis: axis} }

func (l Layout) String() string {
	switch l.Kind {
	case LayoutNone:
		return "None"
	case LayoutBox:
		return fmt.Sprintf("Box(%s)", l.Axis)
	case LayoutGrid:
		return fmt.Sprintf("Grid(%s, %d)", l.Axis, l.CrossCount)
	case LayoutSliver:
		return fmt.Sprintf("Sliver(%s)", l.Axis)
	}
	return fmt.Sprintf("Layout(%d)", int(l.Kind))
}

// Fields is a value copy of the scalar widget state the build pass reads.
// Children are read separately through Widget.Children.
type Fields struct {
	Dirty        bool
	Position     Vec2
	Size         Vec2
	OriginalSize Vec2
	Layout       Layout
	Offset       Vec2
}

// Widget is a node of the retained tree.
//
// OnEvent handles an input event: a widget that finds the event relevant
// updates its state, may emit a message and marks itself dirty; otherwise it
// forwards the event to its children through ctx.Forward. Recipe must be a
// pure function of the widget's current geometry and state, because the
// build pass caches its output until the widget is dirty again.
type Widget interface {
	OnEvent(ctx *EventContext, ev Event)
	IsCursorInside(p Vec2) bool
	Recipe() []Instruction

	ID() ID
	SetID(id ID)
	IsDirty() bool
	SetDirty(dirty bool)

	Position() Vec2
	SetPosition(p Vec2)
	Size() Vec2
	SetSize(s Vec2)
	OriginalSize() Vec2
	SetOriginalSize(s Vec2)
	Offset() Vec2
	SetOffset(o Vec2)
	Layout() Layout

	AddAsChild(child Ref)
	Children() []Ref
	SetChildren(children []Ref)
	Fields() Fields

	SetClip(r Rect)
	ClearClip()
	SetViewport(r Rect, ok bool)
	ClipRect() Rect
}

// Base holds the bookkeeping every widget shares. Concrete widgets embed it
// and add OnEvent and Recipe.
type Base struct {
	id           ID
	dirty        bool
	position     Vec2
	size         Vec2
	originalSize Vec2
	offset       Vec2
	layout       Layout
	children     []Ref

	clip        Rect
	hasClip     bool
	viewport    Rect
	hasViewport bool
}

// NewBase returns a dirty, unassigned Base with the given preferred size.
func NewBase(size Vec2, layout Layout) Base {
	return Base{
		dirty:        true,
		size:         size,
		originalSize: size,
		layout:       layout,
	}
}

func (b *Base) ID() ID              { return b.id }
func (b *Base) SetID(id ID)         { b.id = id }
func (b *Base) IsDirty() bool       { return b.dirty }
func (b *Base) SetDirty(dirty bool) { b.dirty = dirty }
func (b *Base) Position() Vec2      { return b.position }
func (b *Base) SetPosition(p Vec2)  { b.position = p }
func (b *Base) Size() Vec2          { return b.size }
func (b *Base) OriginalSize() Vec2  { return b.originalSize }
func (b *Base) Offset() Vec2        { return b.offset }
func (b *Base) Layout() Layout      { return b.layout }

// SetSize changes the current size and marks the widget dirty.
func (b *Base) SetSize(s Vec2) {
	b.dirty = true
	b.size = s
}

// SetOriginalSize changes the preferred size and marks the widget dirty.
func (b *Base) SetOriginalSize(s Vec2) {
	b.dirty = true
	b.originalSize = s
}

func (b *Base) SetOffset(o Vec2) {
	b.dirty = true
	b.offset = o
}

func (b *Base) SetLayout(l Layout) {
	b.dirty = true
	b.layout = l
}

func (b *Base) AddAsChild(child Ref) {
	b.children = append(b.children, child)
}

func (b *Base) Children() []Ref {
	return b.children
}

func (b *Base) SetChildren(children []Ref) {
	b.children = children
}

func (b *Base) Fields() Fields {
	return Fields{
		Dirty:        b.dirty,
		Position:     b.position,
		Size:         b.size,
		OriginalSize: b.originalSize,
		Layout:       b.layout,
		Offset:       b.offset,
	}
}

// Bounds returns the widget's current rectangle.
func (b *Base) Bounds() Rect {
	return RectFrom(b.position, b.size)
}

// IsCursorInside tests p against the current bounds, edges included.
func (b *Base) IsCursorInside(p Vec2) bool {
	return b.Bounds().Contains(p)
}

// SetClip overrides the clip rectangle used by the widget's recipe.
func (b *Base) SetClip(r Rect) {
	b.dirty = true
	b.clip, b.hasClip = r, true
}

// ClearClip restores clipping to the widget's own bounds.
func (b *Base) ClearClip() {
	b.dirty = true
	b.hasClip = false
}

// SetViewport is called by the build pass with the visible area of an
// enclosing scrolled container.
func (b *Base) SetViewport(r Rect, ok bool) {
	b.viewport, b.hasViewport = r, ok
}

// ClipRect returns the area the widget may paint: its clip override or its
// bounds, narrowed to the enclosing viewport.
func (b *Base) ClipRect() Rect {
	r := b.Bounds()
	if b.hasClip {
		r = b.clip
	}
	if b.hasViewport {
		r = r.Intersect(b.viewport)
	}
	return r
}

func (b *Base) clipArea() Clip {
	return ClipTo(b.ClipRect())
}
