package rgui

import "github.com/google/btree"

type entry struct {
	id           ID
	instructions []Instruction
}

func entryLess(a, b entry) bool {
	return a.id.Less(b.id)
}

// Collection maps widget IDs to their draw instructions. Renderers iterate it
// in ascending ID order, which is the paint order: tree order for normal
// widgets, then overlays.
type Collection struct {
	tree *btree.BTreeG[entry]
}

// NewCollection creates an empty collection.
func NewCollection() *Collection {
	return &Collection{tree: btree.NewG(16, entryLess)}
}

// ReplaceOrInsert stores instructions under id, overwriting any previous
// entry.
func (c *Collection) ReplaceOrInsert(id ID, instructions []Instruction) {
	c.tree.ReplaceOrInsert(entry{id: id, instructions: instructions})
}

// Remove deletes the entry for id. Removing a missing id is a no-op.
func (c *Collection) Remove(id ID) {
	c.tree.Delete(entry{id: id})
}

// Get returns the instructions stored under id.
func (c *Collection) Get(id ID) ([]Instruction, bool) {
	e, ok := c.tree.Get(entry{id: id})
	return e.instructions, ok
}

// Len returns the number of entries.
func (c *Collection) Len() int {
	return c.tree.Len()
}

// Ascend calls fn for every entry in ascending ID order until fn returns
// false.
func (c *Collection) Ascend(fn func(id ID, instructions []Instruction) bool) {
	c.tree.Ascend(func(e entry) bool {
		return fn(e.id, e.instructions)
	})
}

// Each calls fn for every instruction in paint order.
func (c *Collection) Each(fn func(in Instruction)) {
	c.tree.Ascend(func(e entry) bool {
		for _, in := range e.instructions {
			fn(in)
		}
		return true
	})
}

// IDs returns every stored ID in ascending order.
func (c *Collection) IDs() []ID {
	ids := make([]ID, 0, c.tree.Len())
	c.tree.Ascend(func(e entry) bool {
		ids = append(ids, e.id)
		return true
	})
	return ids
}

// Clear removes every entry.
func (c *Collection) Clear() {
	c.tree.Clear(false)
}
