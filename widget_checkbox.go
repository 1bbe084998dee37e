package rgui

// Checkbox toggles on a left press inside its bounds and emits onChange.
// Checked, it shows the selected color framing an inset face; unchecked, a
// black frame of fixed width.
type Checkbox struct {
	Base
	checked  bool
	onChange Message

	bg        Color
	selected  Color
	border    float64
	insetFrac float64

	cursor Vec2
}

func NewCheckbox(size Vec2, style Style, checked bool, onChange Message) *Checkbox {
	return &Checkbox{
		Base:      NewBase(size, NoLayout()),
		checked:   checked,
		onChange:  onChange,
		bg:        style.CheckboxColor,
		selected:  style.CheckboxSelected,
		border:    style.CheckboxBorder,
		insetFrac: style.CheckboxInsetFrac,
	}
}

func (c *Checkbox) Checked() bool { return c.checked }

// SetChecked changes the state without emitting onChange.
func (c *Checkbox) SetChecked(on bool) {
	if on == c.checked {
		return
	}
	c.checked = on
	c.SetDirty(true)
}

func (c *Checkbox) OnEvent(ctx *EventContext, ev Event) {
	switch e := ev.(type) {
	case CursorMoved:
		c.cursor = V(e.X, e.Y)
		ctx.Forward(c, ev)
	case ButtonPressed:
		if e.Button != MouseButtonLeft {
			ctx.Forward(c, ev)
			return
		}
		if c.IsCursorInside(c.cursor) {
			ctx.Emit(c.onChange, ev)
			c.checked = !c.checked
			c.SetDirty(true)
		}
	default:
		ctx.Forward(c, ev)
	}
}

func (c *Checkbox) Recipe() []Instruction {
	clip := c.clipArea()
	if c.checked {
		inset := c.size.MulScalar(c.insetFrac)
		return []Instruction{
			DrawRect{Point: c.position, Size: c.size, Color: c.selected, Clip: clip},
			DrawRect{
				Point: c.position.Add(inset),
				Size:  c.size.Sub(inset.MulScalar(2)),
				Color: c.bg,
				Clip:  clip,
			},
		}
	}
	return []Instruction{
		DrawRect{Point: c.position, Size: c.size, Color: ColorBlack, Clip: clip},
		DrawRect{
			Point: c.position.AddScalar(c.border),
			Size:  c.size.SubScalar(2 * c.border),
			Color: c.bg,
			Clip:  clip,
		},
	}
}
