package rgui

import (
	"log/slog"
	"slices"
)

type overlayEntry struct {
	ref      Ref
	position Vec2
	size     Vec2
}

// AbsoluteCollection tracks widgets drawn outside the normal layout, such as
// tooltips. Each inserted widget gets an overlay-tier ID, so its
// instructions sort after every normal widget and later inserts paint above
// earlier ones.
type AbsoluteCollection struct {
	tree    *Tree
	entries map[ID]overlayEntry
	last    uint64
	logger  *slog.Logger
}

// NewAbsoluteCollection creates an empty overlay collection over tree.
func NewAbsoluteCollection(tree *Tree) *AbsoluteCollection {
	return &AbsoluteCollection{
		tree:    tree,
		entries: make(map[ID]overlayEntry),
		logger:  guiLogger,
	}
}

// Insert registers the widget behind ref at a fixed position and size and
// assigns it the next overlay ID. The widget is drawn on the next Sync if it
// is dirty. Inserting a stale ref returns the zero ID.
func (a *AbsoluteCollection) Insert(ref Ref, position, size Vec2) ID {
	w, ok := a.tree.Resolve(ref)
	if !ok {
		return ID{}
	}
	a.last++
	id := ID{tier: tierOverlay, seq: a.last}
	w.SetID(id)
	a.entries[id] = overlayEntry{ref: ref, position: position, size: size}
	if guiVerbose() {
		a.logger.Debug("overlay inserted", "id", id, "pos", position, "size", size)
	}
	return id
}

// Remove deletes the entry for id. Removing a missing id is a no-op.
func (a *AbsoluteCollection) Remove(id ID) {
	if _, ok := a.entries[id]; !ok {
		return
	}
	delete(a.entries, id)
	if guiVerbose() {
		a.logger.Debug("overlay removed", "id", id)
	}
}

// Len returns the number of overlays.
func (a *AbsoluteCollection) Len() int {
	return len(a.entries)
}

// Contains reports whether id is a registered overlay.
func (a *AbsoluteCollection) Contains(id ID) bool {
	_, ok := a.entries[id]
	return ok
}

// Sync redraws every dirty overlay: its position and size are reset from the
// stored entry and its recipe replaces the old instructions under its ID.
// Entries whose widget has been released are dropped along with their
// instructions.
func (a *AbsoluteCollection) Sync(instructions *Collection) {
	ids := make([]ID, 0, len(a.entries))
	for id := range a.entries {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(x, y ID) int {
		switch {
		case x.Less(y):
			return -1
		case y.Less(x):
			return 1
		}
		return 0
	})

	for _, id := range ids {
		e := a.entries[id]
		w, ok := a.tree.Resolve(e.ref)
		if !ok {
			delete(a.entries, id)
			instructions.Remove(id)
			continue
		}
		if !w.IsDirty() {
			continue
		}
		w.SetPosition(e.position)
		w.SetSize(e.size)
		instructions.Remove(w.ID())
		instructions.ReplaceOrInsert(w.ID(), w.Recipe())
		w.SetDirty(false)
	}
}
