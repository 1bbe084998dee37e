package rgui

import (
	"fmt"
	"log/slog"
	"math"
)

// Scroller is implemented by widgets with a Sliver layout that keep a
// scroll offset. The build pass reads the offset and hands back the clipper
// it laid the children out with, along with the visible extent, so the
// widget can clamp future scrolling.
type Scroller interface {
	ScrollOffset() float64
	SetClipper(c *SliverClipper, visibleExtent float64)
}

// Builder runs the layout and rebuild pass over a tree.
type Builder struct {
	Tree         *Tree
	IDs          *IDMachine
	Instructions *Collection

	logger    *slog.Logger
	viewports []Rect
	warned    map[ID]struct{}
}

// NewBuilder creates a Builder over the given tree and collection.
func NewBuilder(tree *Tree, ids *IDMachine, instructions *Collection) *Builder {
	return &Builder{
		Tree:         tree,
		IDs:          ids,
		Instructions: instructions,
		logger:       guiLogger,
		warned:       make(map[ID]struct{}),
	}
}

// Build lays out w at position within maxSize and regenerates the
// instructions of every dirty widget in its subtree.
//
// A dirty widget takes the given position and size, gets an ID if it has
// none, has its recipe stored under that ID and marks its subtree dirty.
// Children are then visited
// according to the widget's layout whether or not it was dirty, since a
// clean parent may still have dirty descendants.
func (b *Builder) Build(w Widget, position, maxSize Vec2) {
	if w.IsDirty() {
		w.SetPosition(position)
		w.SetSize(maxSize)
		b.Instructions.Remove(w.ID())
		if w.ID().IsZero() {
			w.SetID(b.IDs.FetchID())
			if guiVerbose() {
				b.logger.Debug("id assigned", "id", w.ID(), "pos", position, "size", maxSize)
			}
		}
		if n := len(b.viewports); n > 0 {
			w.SetViewport(b.viewports[n-1], true)
		} else {
			w.SetViewport(Rect{}, false)
		}
		b.Instructions.ReplaceOrInsert(w.ID(), w.Recipe())
		w.SetDirty(false)

		// A rebuilt parent may have moved, which moves its whole subtree.
		for _, ref := range w.Children() {
			b.Tree.MarkDirty(ref)
		}
	}

	f := w.Fields()
	switch f.Layout.Kind {
	case LayoutBox:
		b.buildBox(w, f, position, maxSize)
	case LayoutGrid:
		b.buildGrid(w, f, position)
	case LayoutSliver:
		b.buildSliver(w, f, position, maxSize)
	case LayoutNone:
		b.buildNone(w, position, maxSize)
	default:
		b.unsupported(w, f.Layout)
	}
}

func (b *Builder) buildBox(w Widget, f Fields, position, maxSize Vec2) {
	maxSize = maxSize.Sub(f.Offset.MulScalar(2))
	position = position.Add(f.Offset)

	// Once one child is dirty its size may have changed, which moves every
	// later sibling; a released child moves them too.
	childrenDirty := false
	live := w.Children()[:0:0]
	for _, ref := range w.Children() {
		child, ok := b.Tree.Resolve(ref)
		if !ok {
			childrenDirty = true
			continue
		}
		live = append(live, ref)

		if childrenDirty {
			b.Tree.MarkDirty(ref)
		} else if child.IsDirty() {
			childrenDirty = true
		}

		childSize := child.OriginalSize().Min(maxSize)
		b.Build(child, position, childSize)

		if f.Layout.Axis == Horizontal {
			maxSize.X -= childSize.X
			position.X += childSize.X
		} else {
			maxSize.Y -= childSize.Y
			position.Y += childSize.Y
		}
	}
	b.prune(w, live)
}

func (b *Builder) buildGrid(w Widget, f Fields, position Vec2) {
	live := b.liveChildren(w)
	n := len(live)
	if n == 0 {
		return
	}
	cross := f.Layout.CrossCount
	if cross < 1 {
		cross = 1
	}
	lines := math.Ceil(float64(n) / float64(cross))

	var cell Vec2
	if f.Layout.Axis == Vertical {
		cell = f.Size.Div(V(float64(cross), lines))
	} else {
		cell = f.Size.Div(V(lines, float64(cross)))
	}

	for i, ref := range live {
		child, ok := b.Tree.Resolve(ref)
		if !ok {
			continue
		}
		var slot Vec2
		if f.Layout.Axis == Vertical {
			slot = V(float64(i%cross), float64(i/cross))
		} else {
			slot = V(float64(i/cross), float64(i%cross))
		}
		childSize := child.OriginalSize().Min(cell)
		b.Build(child, position.Add(cell.Mul(slot)), childSize)
	}
}

func (b *Builder) buildNone(w Widget, position, maxSize Vec2) {
	for _, ref := range b.liveChildren(w) {
		if child, ok := b.Tree.Resolve(ref); ok {
			b.Build(child, position, child.OriginalSize().Min(maxSize))
		}
	}
}

// buildSliver lays children out along the axis at their preferred extent,
// shifted by the widget's scroll offset. Children outside the viewport are
// evicted from the collection; visible ones are built with the viewport as
// their clip scope.
func (b *Builder) buildSliver(w Widget, f Fields, position, maxSize Vec2) {
	maxSize = maxSize.Sub(f.Offset.MulScalar(2))
	position = position.Add(f.Offset)
	viewport := RectFrom(position, maxSize)
	if n := len(b.viewports); n > 0 {
		viewport = viewport.Intersect(b.viewports[n-1])
	}

	// Dead children shift later siblings just like in a Box.
	childrenDirty := false
	refs := make([]Ref, 0, len(w.Children()))
	widgets := make([]Widget, 0, len(w.Children()))
	extents := make([]float64, 0, len(w.Children()))
	for _, ref := range w.Children() {
		child, ok := b.Tree.Resolve(ref)
		if !ok {
			childrenDirty = true
			continue
		}
		refs = append(refs, ref)
		widgets = append(widgets, child)
		extents = append(extents, mainAxis(child.OriginalSize(), f.Layout.Axis))
	}
	b.prune(w, refs)

	var scroll float64
	sc, hasScroller := w.(Scroller)
	if hasScroller {
		scroll = sc.ScrollOffset()
	}
	visible := mainAxis(maxSize, f.Layout.Axis)
	clipper := NewSliverClipper(extents, visible, scroll)
	if hasScroller {
		sc.SetClipper(clipper, visible)
	}

	b.viewports = append(b.viewports, viewport)
	defer func() { b.viewports = b.viewports[:len(b.viewports)-1] }()

	for i, ref := range refs {
		child := widgets[i]
		if !clipper.ShouldRender(i) {
			b.evict(ref)
			continue
		}

		if childrenDirty {
			b.Tree.MarkDirty(ref)
		} else if child.IsDirty() {
			childrenDirty = true
		}

		lead := clipper.ItemOffset(i, mainAxis(position, f.Layout.Axis), scroll)
		var childPos, childSize Vec2
		if f.Layout.Axis == Horizontal {
			childPos = V(lead, position.Y)
			childSize = V(extents[i], math.Min(child.OriginalSize().Y, maxSize.Y))
		} else {
			childPos = V(position.X, lead)
			childSize = V(math.Min(child.OriginalSize().X, maxSize.X), extents[i])
		}
		b.Build(child, childPos, childSize)
	}
}

// evict removes a scrolled-out subtree's instructions and marks it dirty so
// it is redrawn when it scrolls back in. IDs are kept, which preserves the
// subtree's paint order.
func (b *Builder) evict(ref Ref) {
	b.Tree.Walk(ref, func(_ Ref, w Widget) bool {
		if !w.ID().IsZero() {
			if _, ok := b.Instructions.Get(w.ID()); ok {
				b.Instructions.Remove(w.ID())
				if guiVerbose() {
					b.logger.Debug("evicted", "id", w.ID())
				}
			}
		}
		w.SetDirty(true)
		return true
	})
}

func (b *Builder) liveChildren(w Widget) []Ref {
	children := w.Children()
	live := children[:0:0]
	for _, ref := range children {
		if _, ok := b.Tree.Resolve(ref); ok {
			live = append(live, ref)
		}
	}
	b.prune(w, live)
	return live
}

// prune drops released children from w's child list along with the
// instructions of everything released since the last prune.
func (b *Builder) prune(w Widget, live []Ref) {
	if len(live) == len(w.Children()) {
		return
	}
	w.SetChildren(live)
	for _, id := range b.Tree.TakeReleased() {
		b.Instructions.Remove(id)
		if guiVerbose() {
			b.logger.Debug("released instructions dropped", "id", id)
		}
	}
}

func (b *Builder) unsupported(w Widget, l Layout) {
	if _, ok := b.warned[w.ID()]; ok {
		return
	}
	b.warned[w.ID()] = struct{}{}
	err := fmt.Errorf("layout %s: %w", l, ErrNotSupported)
	b.logger.Warn("children skipped", "id", w.ID(), "err", err)
}

func mainAxis(v Vec2, axis Axis) float64 {
	if axis == Horizontal {
		return v.X
	}
	return v.Y
}
