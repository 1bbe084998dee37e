package rgui

// TooltipView shows a separate tooltip widget as an overlay while the
// cursor is over the view. The tooltip appears at the point the cursor
// entered and is removed once the cursor leaves. The view's own children are
// stacked vertically and receive every event.
type TooltipView struct {
	Base
	tree    *Tree
	tooltip Ref
	cursor  Vec2
}

// NewTooltipView creates a view whose tooltip is the widget behind tooltip.
// The tooltip must be stored in tree but should not be attached to any
// parent.
func NewTooltipView(size Vec2, tree *Tree, tooltip Ref) *TooltipView {
	return &TooltipView{
		Base:    NewBase(size, Box(Vertical)),
		tree:    tree,
		tooltip: tooltip,
		cursor:  V(-1, -1),
	}
}

// Tooltip returns the handle of the tooltip widget.
func (t *TooltipView) Tooltip() Ref { return t.tooltip }

// Showing reports whether the tooltip is currently an overlay.
func (t *TooltipView) Showing() bool {
	w, ok := t.tree.Resolve(t.tooltip)
	return ok && !w.ID().IsZero()
}

func (t *TooltipView) OnEvent(ctx *EventContext, ev Event) {
	if e, ok := ev.(CursorMoved); ok {
		t.cursor = V(e.X, e.Y)
		if w, ok := t.tree.Resolve(t.tooltip); ok {
			if t.IsCursorInside(t.cursor) {
				if w.ID().IsZero() {
					w.SetDirty(true)
					ctx.Overlays.Insert(t.tooltip, t.cursor, w.OriginalSize())
				}
			} else if id := w.ID(); !id.IsZero() {
				ctx.Instructions.Remove(id)
				ctx.Overlays.Remove(id)
				w.SetID(ID{})
			}
		}
	}
	ctx.Forward(t, ev)
}

// SetDirty marks the view and, when on, its children up to the first one
// that is already dirty.
func (t *TooltipView) SetDirty(dirty bool) {
	t.dirty = dirty
	if !dirty {
		return
	}
	for _, ref := range t.children {
		child, ok := t.tree.Resolve(ref)
		if !ok {
			continue
		}
		if child.IsDirty() {
			break
		}
		child.SetDirty(true)
	}
}

func (t *TooltipView) SetSize(s Vec2) {
	t.size = s
	t.SetDirty(true)
}

func (t *TooltipView) SetOriginalSize(s Vec2) {
	t.originalSize = s
	t.SetDirty(true)
}

func (t *TooltipView) Recipe() []Instruction { return nil }
