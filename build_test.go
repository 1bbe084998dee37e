package rgui_test

import (
	"testing"

	"github.com/go-theft-auto/rgui"
)

func attach(t *testing.T, tree *rgui.Tree, parent rgui.Ref, w rgui.Widget) rgui.Ref {
	t.Helper()
	ref, err := tree.Attach(parent, w)
	if err != nil {
		t.Fatalf("Attach: %v", err)
	}
	return ref
}

func TestBuildClampsChildSize(t *testing.T) {
	tests := []struct {
		name     string
		original rgui.Vec2
		max      rgui.Vec2
		want     rgui.Vec2
	}{
		{"fits", rgui.V(30, 20), rgui.V(100, 50), rgui.V(30, 20)},
		{"too tall", rgui.V(30, 80), rgui.V(100, 50), rgui.V(30, 50)},
		{"too wide", rgui.V(300, 20), rgui.V(100, 50), rgui.V(100, 20)},
		{"both", rgui.V(300, 80), rgui.V(100, 50), rgui.V(100, 50)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness()
			list := rgui.NewListView(tt.max, rgui.Horizontal)
			parent := h.tree.Add(list)
			child := newSpy(tt.original)
			attach(t, h.tree, parent, child)

			h.build(list, rgui.Vec2{}, tt.max)

			if got := child.lastSize(); got != tt.want {
				t.Errorf("child built with %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBoxLayoutPositions(t *testing.T) {
	h := newHarness()
	list := rgui.NewListView(rgui.V(300, 100), rgui.Horizontal)
	list.SetOffset(rgui.V(5, 5))
	parent := h.tree.Add(list)

	widths := []float64{40, 60, 80}
	var children []*spy
	for _, w := range widths {
		s := newSpy(rgui.V(w, 20))
		attach(t, h.tree, parent, s)
		children = append(children, s)
	}

	h.build(list, rgui.V(10, 20), rgui.V(300, 100))

	x := 10.0 + 5
	for i, c := range children {
		if got := c.Position(); got != rgui.V(x, 25) {
			t.Errorf("child %d at %v, want (%v, 25)", i, got, x)
		}
		x += widths[i]
	}
}

func TestBoxDirtyPropagation(t *testing.T) {
	h := newHarness()
	list := rgui.NewListView(rgui.V(100, 400), rgui.Vertical)
	parent := h.tree.Add(list)

	var children []*spy
	for i := 0; i < 4; i++ {
		s := newSpy(rgui.V(100, 50))
		attach(t, h.tree, parent, s)
		children = append(children, s)
	}
	h.build(list, rgui.Vec2{}, rgui.V(100, 400))

	children[1].SetDirty(true)
	for _, c := range children {
		c.dirtyCalls = 0
	}
	h.build(list, rgui.Vec2{}, rgui.V(100, 400))

	if children[0].dirtyCalls != 0 {
		t.Errorf("sibling before the dirty child was marked dirty %d times", children[0].dirtyCalls)
	}
	for i := 2; i < len(children); i++ {
		if children[i].dirtyCalls == 0 {
			t.Errorf("child %d after the dirty child was never marked dirty", i)
		}
	}
	for i, c := range children {
		if c.IsDirty() {
			t.Errorf("child %d still dirty after build", i)
		}
	}
}

func TestGridPlacement(t *testing.T) {
	h := newHarness()
	grid := rgui.NewGridView(rgui.V(100, 100), rgui.Vertical, 2)
	parent := h.tree.Add(grid)

	var cells []*spy
	for i := 0; i < 4; i++ {
		s := newSpy(rgui.V(50, 50))
		attach(t, h.tree, parent, s)
		cells = append(cells, s)
	}

	h.build(grid, rgui.Vec2{}, rgui.V(100, 100))

	want := []rgui.Vec2{rgui.V(0, 0), rgui.V(50, 0), rgui.V(0, 50), rgui.V(50, 50)}
	for i, c := range cells {
		if c.Position() != want[i] {
			t.Errorf("cell %d at %v, want %v", i, c.Position(), want[i])
		}
		if c.Size() != rgui.V(50, 50) {
			t.Errorf("cell %d size %v", i, c.Size())
		}
	}
}

func TestGridAxes(t *testing.T) {
	tests := []struct {
		name  string
		axis  rgui.Axis
		size  rgui.Vec2
		count int
		pos   []rgui.Vec2
		cell  rgui.Vec2
	}{
		{
			name: "horizontal full", axis: rgui.Horizontal, size: rgui.V(100, 100), count: 4,
			pos:  []rgui.Vec2{rgui.V(0, 0), rgui.V(0, 50), rgui.V(50, 0), rgui.V(50, 50)},
			cell: rgui.V(50, 50),
		},
		{
			name: "horizontal partial column", axis: rgui.Horizontal, size: rgui.V(90, 100), count: 3,
			pos:  []rgui.Vec2{rgui.V(0, 0), rgui.V(0, 50), rgui.V(45, 0)},
			cell: rgui.V(45, 50),
		},
		{
			name: "vertical partial row", axis: rgui.Vertical, size: rgui.V(100, 90), count: 3,
			pos:  []rgui.Vec2{rgui.V(0, 0), rgui.V(50, 0), rgui.V(0, 45)},
			cell: rgui.V(50, 45),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness()
			grid := rgui.NewGridView(tt.size, tt.axis, 2)
			parent := h.tree.Add(grid)
			var cells []*spy
			for i := 0; i < tt.count; i++ {
				s := newSpy(rgui.V(50, 50))
				attach(t, h.tree, parent, s)
				cells = append(cells, s)
			}

			h.build(grid, rgui.Vec2{}, tt.size)

			for i, c := range cells {
				if c.Position() != tt.pos[i] {
					t.Errorf("cell %d at %v, want %v", i, c.Position(), tt.pos[i])
				}
				if c.Size() != tt.cell {
					t.Errorf("cell %d size %v, want %v", i, c.Size(), tt.cell)
				}
			}
		})
	}
}

func TestSetLayoutRelayouts(t *testing.T) {
	h := newHarness()
	list := rgui.NewListView(rgui.V(200, 200), rgui.Vertical)
	parent := h.tree.Add(list)
	a := newSpy(rgui.V(40, 20))
	b := newSpy(rgui.V(40, 20))
	attach(t, h.tree, parent, a)
	attach(t, h.tree, parent, b)
	h.build(list, rgui.Vec2{}, rgui.V(200, 200))

	if b.Position() != rgui.V(0, 20) {
		t.Fatalf("second child at %v in a vertical list", b.Position())
	}

	list.SetLayout(rgui.Box(rgui.Horizontal))
	h.build(list, rgui.Vec2{}, rgui.V(200, 200))

	if b.Position() != rgui.V(40, 0) {
		t.Errorf("second child at %v after switching to horizontal, want (40, 0)", b.Position())
	}
}

func TestNoLayoutStacksChildren(t *testing.T) {
	h := newHarness()
	panel := rgui.NewPanel(rgui.V(100, 100), rgui.NoLayout(), rgui.DefaultStyle())
	parent := h.tree.Add(panel)
	a := newSpy(rgui.V(10, 10))
	b := newSpy(rgui.V(200, 20))
	attach(t, h.tree, parent, a)
	attach(t, h.tree, parent, b)

	h.build(panel, rgui.V(7, 9), rgui.V(100, 100))

	if a.Position() != rgui.V(7, 9) || b.Position() != rgui.V(7, 9) {
		t.Errorf("children at %v and %v, want both at (7, 9)", a.Position(), b.Position())
	}
	if b.Size() != rgui.V(100, 20) {
		t.Errorf("second child size %v", b.Size())
	}
}

func TestBuildSkipsCleanWidgets(t *testing.T) {
	h := newHarness()
	label := rgui.NewLabel("0", rgui.V(100, 30), rgui.DefaultStyle())
	h.build(label, rgui.Vec2{}, rgui.V(100, 30))
	id := label.ID()

	// A clean widget keeps its cached recipe even if the collection entry is
	// replaced behind its back.
	h.instructions.ReplaceOrInsert(id, nil)
	h.build(label, rgui.Vec2{}, rgui.V(100, 30))

	got, _ := h.instructions.Get(id)
	if len(got) != 0 {
		t.Errorf("clean widget was rebuilt")
	}
}

func TestBuildPrunesReleasedChildren(t *testing.T) {
	h := newHarness()
	style := rgui.DefaultStyle()
	list := rgui.NewListView(rgui.V(100, 300), rgui.Vertical)
	parent := h.tree.Add(list)
	a := rgui.NewLabel("A", rgui.V(100, 50), style)
	b := rgui.NewLabel("B", rgui.V(100, 50), style)
	aRef := attach(t, h.tree, parent, a)
	attach(t, h.tree, parent, b)
	h.build(list, rgui.Vec2{}, rgui.V(100, 300))

	if b.Position() != rgui.V(0, 50) {
		t.Fatalf("second child at %v", b.Position())
	}
	aID := a.ID()

	h.tree.Release(aRef)
	h.build(list, rgui.Vec2{}, rgui.V(100, 300))

	if n := len(list.Children()); n != 1 {
		t.Errorf("parent still holds %d children", n)
	}
	if b.Position() != rgui.V(0, 0) {
		t.Errorf("remaining child at %v, want it moved up", b.Position())
	}
	if _, ok := h.instructions.Get(aID); ok {
		t.Error("released label still has instructions")
	}

	var texts []string
	h.instructions.Each(func(in rgui.Instruction) {
		if dt, ok := in.(rgui.DrawText); ok {
			texts = append(texts, dt.Text)
		}
	})
	if len(texts) != 1 || texts[0] != "B" {
		t.Errorf("painted texts = %v, want [B]", texts)
	}
}

func TestReleaseDropsSubtreeInstructions(t *testing.T) {
	h := newHarness()
	style := rgui.DefaultStyle()
	list := rgui.NewListView(rgui.V(100, 300), rgui.Vertical)
	parent := h.tree.Add(list)
	panel := rgui.NewPanel(rgui.V(100, 100), rgui.Box(rgui.Vertical), style)
	panelRef := attach(t, h.tree, parent, panel)
	inner := rgui.NewLabel("inner", rgui.V(100, 30), style)
	innerRef := attach(t, h.tree, panelRef, inner)
	h.build(list, rgui.Vec2{}, rgui.V(100, 300))
	innerID := inner.ID()

	h.tree.Release(panelRef)
	h.build(list, rgui.Vec2{}, rgui.V(100, 300))

	if _, ok := h.instructions.Get(innerID); ok {
		t.Error("child of a released widget still has instructions")
	}
	if h.instructions.Len() != 1 {
		t.Errorf("collection holds %d entries, want only the list", h.instructions.Len())
	}
	if _, ok := h.tree.Resolve(innerRef); !ok {
		t.Error("child should stay in the arena until released itself")
	}
	if !inner.IsDirty() || !inner.ID().IsZero() {
		t.Error("orphaned child should be dirty with no ID")
	}
}

func TestDirtyParentRebuildsChildren(t *testing.T) {
	h := newHarness()
	list := rgui.NewListView(rgui.V(100, 100), rgui.Vertical)
	parent := h.tree.Add(list)
	child := newSpy(rgui.V(50, 50))
	attach(t, h.tree, parent, child)
	h.build(list, rgui.Vec2{}, rgui.V(100, 100))

	list.SetDirty(true)
	h.build(list, rgui.V(20, 30), rgui.V(100, 100))

	if child.Position() != rgui.V(20, 30) {
		t.Errorf("child at %v after parent moved", child.Position())
	}
}

func TestSliverCullsAndScrolls(t *testing.T) {
	h := newHarness()
	style := rgui.DefaultStyle()
	sliver := rgui.NewSliverView(rgui.V(100, 100), rgui.Vertical)
	parent := h.tree.Add(sliver)

	var rows []*rgui.Label
	for i := 0; i < 10; i++ {
		l := rgui.NewLabel("row", rgui.V(100, 30), style)
		attach(t, h.tree, parent, l)
		rows = append(rows, l)
	}

	h.build(sliver, rgui.Vec2{}, rgui.V(100, 100))

	drawn := func(l *rgui.Label) bool {
		_, ok := h.instructions.Get(l.ID())
		return ok && !l.ID().IsZero()
	}
	for i, r := range rows {
		if want := i < 4; drawn(r) != want {
			t.Errorf("before scroll: row %d drawn = %v, want %v", i, drawn(r), want)
		}
	}
	if sliver.ContentExtent() != 300 {
		t.Errorf("ContentExtent() = %v, want 300", sliver.ContentExtent())
	}

	// Row 3 straddles the bottom edge, so its clip is cut to the viewport.
	clip := rows[3].ClipRect()
	if clip.Y != 90 || clip.H != 10 {
		t.Errorf("row 3 clip = %+v, want y=90 h=10", clip)
	}

	h.send(sliver, moveTo(50, 50), rgui.WheelScrolled{Delta: rgui.ScrollDelta{Y: -60}})
	if sliver.ScrollOffset() != 60 {
		t.Fatalf("ScrollOffset() = %v, want 60", sliver.ScrollOffset())
	}
	h.build(sliver, rgui.Vec2{}, rgui.V(100, 100))

	for i, r := range rows {
		if want := i >= 2 && i < 6; drawn(r) != want {
			t.Errorf("after scroll: row %d drawn = %v, want %v", i, drawn(r), want)
		}
	}
	if rows[2].Position() != rgui.V(0, 0) {
		t.Errorf("row 2 at %v, want top of the view", rows[2].Position())
	}
	if !rows[0].IsDirty() {
		t.Error("evicted row should be dirty so it redraws when scrolled back")
	}
}

func TestSliverScrollClamped(t *testing.T) {
	h := newHarness()
	sliver := rgui.NewSliverView(rgui.V(100, 100), rgui.Vertical)
	parent := h.tree.Add(sliver)
	for i := 0; i < 5; i++ {
		attach(t, h.tree, parent, newSpy(rgui.V(100, 30)))
	}
	h.build(sliver, rgui.Vec2{}, rgui.V(100, 100))

	h.send(sliver, moveTo(10, 10), rgui.WheelScrolled{Delta: rgui.ScrollDelta{Y: -1000}})
	if got := sliver.ScrollOffset(); got != 50 {
		t.Errorf("ScrollOffset() = %v, want 50", got)
	}
	h.send(sliver, rgui.WheelScrolled{Delta: rgui.ScrollDelta{Y: 1000}})
	if got := sliver.ScrollOffset(); got != 0 {
		t.Errorf("ScrollOffset() = %v, want 0", got)
	}

	// Outside the view the wheel is forwarded instead.
	h.send(sliver, moveTo(500, 500), rgui.WheelScrolled{Delta: rgui.ScrollDelta{Y: -10}})
	if got := sliver.ScrollOffset(); got != 0 {
		t.Errorf("ScrollOffset() = %v after wheel outside", got)
	}
}

func TestSliverHorizontal(t *testing.T) {
	h := newHarness()
	style := rgui.DefaultStyle()
	sliver := rgui.NewSliverView(rgui.V(100, 50), rgui.Horizontal)
	parent := h.tree.Add(sliver)

	var cols []*rgui.Label
	for i := 0; i < 10; i++ {
		l := rgui.NewLabel("col", rgui.V(30, 50), style)
		attach(t, h.tree, parent, l)
		cols = append(cols, l)
	}
	h.build(sliver, rgui.Vec2{}, rgui.V(100, 50))

	drawn := func(l *rgui.Label) bool {
		_, ok := h.instructions.Get(l.ID())
		return ok && !l.ID().IsZero()
	}
	for i, c := range cols {
		if want := i < 4; drawn(c) != want {
			t.Errorf("before scroll: column %d drawn = %v, want %v", i, drawn(c), want)
		}
	}
	if cols[1].Position() != rgui.V(30, 0) {
		t.Errorf("column 1 at %v, want (30, 0)", cols[1].Position())
	}
	if clip := cols[3].ClipRect(); clip.X != 90 || clip.W != 10 {
		t.Errorf("column 3 clip = %+v, want x=90 w=10", clip)
	}

	h.send(sliver, moveTo(50, 25), rgui.WheelScrolled{Delta: rgui.ScrollDelta{X: -60}})
	if sliver.ScrollOffset() != 60 {
		t.Fatalf("ScrollOffset() = %v, want 60", sliver.ScrollOffset())
	}
	h.build(sliver, rgui.Vec2{}, rgui.V(100, 50))

	for i, c := range cols {
		if want := i >= 2 && i < 6; drawn(c) != want {
			t.Errorf("after scroll: column %d drawn = %v, want %v", i, drawn(c), want)
		}
	}
	if cols[2].Position() != rgui.V(0, 0) {
		t.Errorf("column 2 at %v, want the leading edge", cols[2].Position())
	}
}

func TestSliverScrollToChild(t *testing.T) {
	h := newHarness()
	sliver := rgui.NewSliverView(rgui.V(100, 100), rgui.Vertical)
	parent := h.tree.Add(sliver)
	for i := 0; i < 10; i++ {
		attach(t, h.tree, parent, newSpy(rgui.V(100, 30)))
	}

	sliver.ScrollToChild(5)
	if got := sliver.ScrollOffset(); got != 0 {
		t.Fatalf("ScrollOffset() = %v before the first build", got)
	}

	h.build(sliver, rgui.Vec2{}, rgui.V(100, 100))
	if got := sliver.VisibleCount(); got != 4 {
		t.Errorf("VisibleCount() = %d, want 4", got)
	}

	tests := []struct {
		child int
		want  float64
	}{
		{5, 80},  // bottom edge aligned
		{4, 80},  // already visible
		{1, 30},  // top edge aligned
		{99, 30}, // out of range
		{9, 200}, // last child, at the scroll limit
	}
	for _, tt := range tests {
		sliver.ScrollToChild(tt.child)
		if got := sliver.ScrollOffset(); got != tt.want {
			t.Errorf("ScrollToChild(%d): ScrollOffset() = %v, want %v", tt.child, got, tt.want)
		}
	}
}

type oddLayout struct {
	rgui.Base
}

func (o *oddLayout) OnEvent(*rgui.EventContext, rgui.Event) {}
func (o *oddLayout) Recipe() []rgui.Instruction             { return nil }

func TestUnsupportedLayoutSkipsChildren(t *testing.T) {
	h := newHarness()
	w := &oddLayout{Base: rgui.NewBase(rgui.V(10, 10), rgui.Layout{Kind: rgui.LayoutKind(99)})}
	parent := h.tree.Add(w)
	child := newSpy(rgui.V(5, 5))
	attach(t, h.tree, parent, child)

	h.build(w, rgui.Vec2{}, rgui.V(10, 10))
	h.build(w, rgui.Vec2{}, rgui.V(10, 10))

	if len(child.sizes) != 0 {
		t.Error("child of an unsupported layout was built")
	}
	if w.ID().IsZero() {
		t.Error("parent itself should still be built")
	}
}
