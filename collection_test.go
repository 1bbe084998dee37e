package rgui_test

import (
	"testing"

	"github.com/go-theft-auto/rgui"
)

func TestCollectionRemoveIdempotent(t *testing.T) {
	var m rgui.IDMachine
	c := rgui.NewCollection()
	kept := m.FetchID()
	gone := m.FetchID()
	never := m.FetchID()

	c.ReplaceOrInsert(kept, []rgui.Instruction{rgui.Clear{Color: rgui.ColorBlack}})
	c.ReplaceOrInsert(gone, []rgui.Instruction{rgui.Clear{Color: rgui.ColorWhite}})

	c.Remove(gone)
	if c.Len() != 1 {
		t.Fatalf("Len() = %d after remove, want 1", c.Len())
	}
	c.Remove(gone)
	c.Remove(never)
	c.Remove(rgui.ID{})
	if c.Len() != 1 {
		t.Fatalf("Len() = %d after repeated removes, want 1", c.Len())
	}
	if _, ok := c.Get(kept); !ok {
		t.Error("unrelated entry was removed")
	}
}

func TestCollectionAscendsByID(t *testing.T) {
	var m rgui.IDMachine
	c := rgui.NewCollection()
	ids := []rgui.ID{m.FetchID(), m.FetchID(), m.FetchID()}

	// Insert out of order.
	for _, i := range []int{2, 0, 1} {
		c.ReplaceOrInsert(ids[i], []rgui.Instruction{rgui.DrawText{Text: ids[i].String()}})
	}

	got := c.IDs()
	if len(got) != len(ids) {
		t.Fatalf("IDs() = %v", got)
	}
	for i := range ids {
		if got[i] != ids[i] {
			t.Errorf("IDs()[%d] = %v, want %v", i, got[i], ids[i])
		}
	}
}

func TestCollectionReplace(t *testing.T) {
	var m rgui.IDMachine
	c := rgui.NewCollection()
	id := m.FetchID()

	c.ReplaceOrInsert(id, []rgui.Instruction{rgui.Clear{}})
	c.ReplaceOrInsert(id, []rgui.Instruction{rgui.Clear{}, rgui.Clear{}})

	got, ok := c.Get(id)
	if !ok || len(got) != 2 {
		t.Fatalf("Get() = %v, %v; want the replacement", got, ok)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() = %d after Clear", c.Len())
	}
}
