package rgui

import "time"

// LongPressThreshold separates a press from a long press.
const LongPressThreshold = 500 * time.Millisecond

// Button is a clickable area that emits onPress when released within
// LongPressThreshold of being pressed, and onLongPress otherwise. Content
// such as a Label is added as children; by default the button itself draws
// nothing.
type Button struct {
	Base
	bg          Color
	clickable   bool
	onPress     Message
	onLongPress Message

	pressed   bool
	pressedAt time.Time
	cursor    Vec2
}

// NewButton creates a clickable button. Either message may be nil.
func NewButton(size Vec2, layout Layout, onPress, onLongPress Message) *Button {
	return &Button{
		Base:        NewBase(size, layout),
		bg:          ColorTransparent,
		clickable:   true,
		onPress:     onPress,
		onLongPress: onLongPress,
	}
}

// SetBackground gives the button a filled face drawn under its children.
func (b *Button) SetBackground(c Color) {
	b.bg = c
	b.SetDirty(true)
}

// SetClickable enables or disables presses. A disabled button still
// forwards events to its children.
func (b *Button) SetClickable(on bool) {
	b.clickable = on
	if !on {
		b.pressed = false
	}
}

func (b *Button) Clickable() bool { return b.clickable }
func (b *Button) Pressed() bool   { return b.pressed }

func (b *Button) OnEvent(ctx *EventContext, ev Event) {
	switch e := ev.(type) {
	case CursorMoved:
		b.cursor = V(e.X, e.Y)
		ctx.Forward(b, ev)
	case ButtonPressed:
		if e.Button != MouseButtonLeft {
			ctx.Forward(b, ev)
			return
		}
		if b.clickable && (b.onPress != nil || b.onLongPress != nil) && b.IsCursorInside(b.cursor) {
			b.pressed = true
			b.pressedAt = ctx.Now()
		}
	case ButtonReleased:
		if e.Button != MouseButtonLeft {
			ctx.Forward(b, ev)
			return
		}
		if !b.pressed {
			return
		}
		b.pressed = false
		if !b.IsCursorInside(b.cursor) {
			return
		}
		if ctx.Now().Sub(b.pressedAt) < LongPressThreshold {
			ctx.Emit(b.onPress, ev)
		} else {
			ctx.Emit(b.onLongPress, ev)
		}
	default:
		ctx.Forward(b, ev)
	}
}

func (b *Button) Recipe() []Instruction {
	if b.bg.Transparent() {
		return nil
	}
	return []Instruction{
		DrawRect{Point: b.position, Size: b.size, Color: b.bg, Clip: b.clipArea()},
	}
}
