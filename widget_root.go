package rgui

// Root is the top of a widget tree. It clears the target with its
// background color and always sits at the origin.
type Root struct {
	Base
	bg Color
}

func NewRoot(size Vec2, layout Layout, style Style) *Root {
	return &Root{
		Base: NewBase(size, layout),
		bg:   style.BackgroundColor,
	}
}

func (r *Root) SetBackground(c Color) {
	r.bg = c
	r.SetDirty(true)
}

// SetPosition is a no-op: the root is pinned to the origin.
func (r *Root) SetPosition(Vec2) {}

func (r *Root) OnEvent(ctx *EventContext, ev Event) { ctx.Forward(r, ev) }

func (r *Root) Recipe() []Instruction {
	return []Instruction{Clear{Color: r.bg}}
}
