package rgui

// ListView lays its children out one after another along an axis. It draws
// nothing itself and forwards every event.
type ListView struct {
	Base
}

func NewListView(size Vec2, axis Axis) *ListView {
	return &ListView{Base: NewBase(size, Box(axis))}
}

func (l *ListView) OnEvent(ctx *EventContext, ev Event) { ctx.Forward(l, ev) }
func (l *ListView) Recipe() []Instruction               { return nil }

// GridView lays its children out in uniform cells, crossCount per row for a
// Vertical grid or per column for a Horizontal one.
type GridView struct {
	Base
}

func NewGridView(size Vec2, axis Axis, crossCount int) *GridView {
	return &GridView{Base: NewBase(size, Grid(axis, crossCount))}
}

func (g *GridView) OnEvent(ctx *EventContext, ev Event) { ctx.Forward(g, ev) }
func (g *GridView) Recipe() []Instruction               { return nil }
