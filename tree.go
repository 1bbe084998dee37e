package rgui

// Ref is a non-owning handle to a widget stored in a Tree. A Ref stops
// resolving once the widget is released, even if the slot is reused.
type Ref struct {
	index uint32
	gen   uint32
}

// Valid reports whether r was ever issued by a Tree. A valid Ref may still be
// stale.
func (r Ref) Valid() bool {
	return r.gen != 0
}

type slot struct {
	gen    uint32
	widget Widget
}

// Tree is the arena that owns every widget. Parent to child edges are Refs,
// so resolving a child is a slice lookup that fails cleanly after release.
type Tree struct {
	slots []slot
	free  []uint32

	// released holds the IDs of widgets cut off by Release whose
	// instructions are still in a collection.
	released []ID
}

// NewTree creates an empty arena.
func NewTree() *Tree {
	return &Tree{}
}

// Add stores w and returns its handle.
func (t *Tree) Add(w Widget) Ref {
	if n := len(t.free); n > 0 {
		idx := t.free[n-1]
		t.free = t.free[:n-1]
		s := &t.slots[idx]
		s.widget = w
		return Ref{index: idx, gen: s.gen}
	}
	t.slots = append(t.slots, slot{gen: 1, widget: w})
	return Ref{index: uint32(len(t.slots) - 1), gen: 1}
}

// Resolve returns the widget behind r, or false if it has been released.
func (t *Tree) Resolve(r Ref) (Widget, bool) {
	if !r.Valid() || int(r.index) >= len(t.slots) {
		return nil, false
	}
	s := t.slots[r.index]
	if s.gen != r.gen || s.widget == nil {
		return nil, false
	}
	return s.widget, true
}

// Release frees the slot behind r. It reports false if r was already stale.
// Children stay in the arena, but the whole subtree loses its IDs and is
// marked dirty; the old IDs are queued for TakeReleased so the next build
// drops their instructions. See Engine.Release for subtree removal.
func (t *Tree) Release(r Ref) bool {
	if _, ok := t.Resolve(r); !ok {
		return false
	}
	t.Walk(r, func(_ Ref, w Widget) bool {
		if id := w.ID(); !id.IsZero() {
			t.released = append(t.released, id)
			w.SetID(ID{})
		}
		w.SetDirty(true)
		return true
	})
	s := &t.slots[r.index]
	s.widget = nil
	s.gen++
	if s.gen == 0 {
		s.gen = 1
	}
	t.free = append(t.free, r.index)
	return true
}

// TakeReleased returns the IDs queued by Release since the last call.
func (t *Tree) TakeReleased() []ID {
	ids := t.released
	t.released = nil
	return ids
}

// Len returns the number of live widgets.
func (t *Tree) Len() int {
	return len(t.slots) - len(t.free)
}

// AddChild appends child to parent's child list.
func (t *Tree) AddChild(parent, child Ref) error {
	p, ok := t.Resolve(parent)
	if !ok {
		return ErrStaleRef
	}
	if _, ok := t.Resolve(child); !ok {
		return ErrStaleRef
	}
	p.AddAsChild(child)
	return nil
}

// Attach adds w to the arena and appends it to parent's children.
func (t *Tree) Attach(parent Ref, w Widget) (Ref, error) {
	p, ok := t.Resolve(parent)
	if !ok {
		return Ref{}, ErrStaleRef
	}
	r := t.Add(w)
	p.AddAsChild(r)
	return r, nil
}

// Walk visits r and its resolvable descendants depth first. Returning false
// from fn skips the node's children.
func (t *Tree) Walk(r Ref, fn func(Ref, Widget) bool) {
	w, ok := t.Resolve(r)
	if !ok {
		return
	}
	if !fn(r, w) {
		return
	}
	for _, c := range w.Children() {
		t.Walk(c, fn)
	}
}

// MarkDirty flags r and all of its descendants dirty.
func (t *Tree) MarkDirty(r Ref) {
	t.Walk(r, func(_ Ref, w Widget) bool {
		w.SetDirty(true)
		return true
	})
}
