package rgui

import "time"

// Tab is a header that emits onPress on a short click. Holding it for at
// least LongPressThreshold and releasing to one side emits onMovedLeft or
// onMovedRight, which lets a tab bar reorder its tabs.
type Tab struct {
	Base
	bg           Color
	onPress      Message
	onMovedLeft  Message
	onMovedRight Message

	pressed   bool
	pressedAt time.Time
	cursor    Vec2
}

// NewTab creates a tab. Any message may be nil.
func NewTab(size Vec2, style Style, onPress, onMovedLeft, onMovedRight Message) *Tab {
	return &Tab{
		Base:         NewBase(size, Box(Horizontal)),
		bg:           style.TabColor,
		onPress:      onPress,
		onMovedLeft:  onMovedLeft,
		onMovedRight: onMovedRight,
	}
}

func (t *Tab) SetBackground(c Color) {
	t.bg = c
	t.SetDirty(true)
}

func (t *Tab) OnEvent(ctx *EventContext, ev Event) {
	switch e := ev.(type) {
	case CursorMoved:
		t.cursor = V(e.X, e.Y)
		ctx.Forward(t, ev)
	case ButtonPressed:
		if e.Button != MouseButtonLeft {
			ctx.Forward(t, ev)
			return
		}
		if t.IsCursorInside(t.cursor) {
			t.pressed = true
			t.pressedAt = ctx.Now()
		}
	case ButtonReleased:
		if e.Button != MouseButtonLeft {
			ctx.Forward(t, ev)
			return
		}
		if !t.pressed {
			return
		}
		t.pressed = false
		held := ctx.Now().Sub(t.pressedAt)
		if held < LongPressThreshold {
			if t.IsCursorInside(t.cursor) {
				ctx.Emit(t.onPress, ev)
			}
			return
		}
		// A long hold is a drag: the side of release picks the direction.
		if t.cursor.X < t.position.X {
			ctx.Emit(t.onMovedLeft, ev)
		} else {
			ctx.Emit(t.onMovedRight, ev)
		}
	default:
		ctx.Forward(t, ev)
	}
}

func (t *Tab) Recipe() []Instruction {
	return []Instruction{
		DrawRect{Point: t.position, Size: t.size, Color: t.bg, Clip: t.clipArea()},
	}
}
