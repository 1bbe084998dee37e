package raylib

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/go-theft-auto/rgui"
)

type rlEventKind int

const (
	rlKeyPressed rlEventKind = iota
	rlKeyReleased
	rlChar
	rlButtonPressed
	rlButtonReleased
	rlWheel
	rlCursorMoved
	rlCursorEntered
	rlCursorLeft
	rlResized
)

// rlEvent is one input change observed while polling raylib's state.
type rlEvent struct {
	kind   rlEventKind
	key    int32
	mods   rgui.ModifiersState
	button rl.MouseButton
	char   rune
	x, y   float32
	w, h   int
}

// wheelStep converts wheel notches into pixels.
const wheelStep = 30

var mouseButtons = []rl.MouseButton{
	rl.MouseButtonLeft,
	rl.MouseButtonRight,
	rl.MouseButtonMiddle,
	rl.MouseButtonSide,
	rl.MouseButtonExtra,
	rl.MouseButtonForward,
	rl.MouseButtonBack,
}

// poll turns raylib's per-frame input state into events on q. raylib
// itself refreshes that state when the previous frame ends.
func (w *Window) poll(q *rgui.Queue[rgui.Event]) {
	var raw []rlEvent

	if rl.IsWindowResized() {
		raw = append(raw, rlEvent{kind: rlResized, w: rl.GetScreenWidth(), h: rl.GetScreenHeight()})
	}

	on := rl.IsCursorOnScreen()
	if on != w.onScreen {
		kind := rlCursorLeft
		if on {
			kind = rlCursorEntered
		}
		raw = append(raw, rlEvent{kind: kind})
		w.onScreen = on
	}

	if pos := rl.GetMousePosition(); pos != w.cursor {
		raw = append(raw, rlEvent{kind: rlCursorMoved, x: pos.X, y: pos.Y})
		w.cursor = pos
	}

	for _, b := range mouseButtons {
		if rl.IsMouseButtonPressed(b) {
			raw = append(raw, rlEvent{kind: rlButtonPressed, button: b})
		}
		if rl.IsMouseButtonReleased(b) {
			raw = append(raw, rlEvent{kind: rlButtonReleased, button: b})
		}
	}

	if wheel := rl.GetMouseWheelMoveV(); wheel.X != 0 || wheel.Y != 0 {
		raw = append(raw, rlEvent{kind: rlWheel, x: wheel.X, y: wheel.Y})
	}

	mods := modifiers()
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		raw = append(raw, rlEvent{kind: rlKeyPressed, key: key, mods: mods})
		w.held[key] = struct{}{}
	}
	for key := range w.held {
		if rl.IsKeyReleased(key) || !rl.IsKeyDown(key) {
			raw = append(raw, rlEvent{kind: rlKeyReleased, key: key, mods: mods})
			delete(w.held, key)
		}
	}
	for ch := rl.GetCharPressed(); ch != 0; ch = rl.GetCharPressed() {
		raw = append(raw, rlEvent{kind: rlChar, char: rune(ch)})
	}

	for _, ev := range raw {
		if mapped, ok := w.MapEvent(ev); ok {
			q.Enqueue(mapped)
		}
	}
}

func modifiers() rgui.ModifiersState {
	down := func(a, b int32) bool { return rl.IsKeyDown(a) || rl.IsKeyDown(b) }
	return rgui.ModifiersState{
		Shift:   down(rl.KeyLeftShift, rl.KeyRightShift),
		Control: down(rl.KeyLeftControl, rl.KeyRightControl),
		Alt:     down(rl.KeyLeftAlt, rl.KeyRightAlt),
		Logo:    down(rl.KeyLeftSuper, rl.KeyRightSuper),
	}
}

// MapEvent converts a polled raylib event.
func (w *Window) MapEvent(ev rlEvent) (rgui.Event, bool) {
	switch ev.kind {
	case rlKeyPressed:
		key := keyCode(ev.key)
		if key == rgui.KeyNone {
			return nil, false
		}
		return rgui.KeyPressed{Key: key, Modifiers: ev.mods}, true
	case rlKeyReleased:
		key := keyCode(ev.key)
		if key == rgui.KeyNone {
			return nil, false
		}
		return rgui.KeyReleased{Key: key, Modifiers: ev.mods}, true
	case rlChar:
		return rgui.CharTyped{Rune: ev.char}, true
	case rlButtonPressed:
		return rgui.ButtonPressed{Button: mouseButton(ev.button)}, true
	case rlButtonReleased:
		return rgui.ButtonReleased{Button: mouseButton(ev.button)}, true
	case rlWheel:
		return rgui.WheelScrolled{Delta: rgui.ScrollDelta{X: float64(ev.x) * wheelStep, Y: float64(ev.y) * wheelStep}}, true
	case rlCursorMoved:
		return rgui.CursorMoved{X: float64(ev.x), Y: float64(ev.y)}, true
	case rlCursorEntered:
		return rgui.CursorEntered{}, true
	case rlCursorLeft:
		return rgui.CursorLeft{}, true
	case rlResized:
		return rgui.Resized{Width: ev.w, Height: ev.h}, true
	}
	return nil, false
}

func mouseButton(b rl.MouseButton) rgui.MouseButton {
	switch b {
	case rl.MouseButtonLeft:
		return rgui.MouseButtonLeft
	case rl.MouseButtonRight:
		return rgui.MouseButtonRight
	case rl.MouseButtonMiddle:
		return rgui.MouseButtonMiddle
	}
	return rgui.MouseOther(uint8(b - rl.MouseButtonSide))
}

var keys = map[int32]rgui.KeyCode{
	rl.KeyEscape:       rgui.KeyEscape,
	rl.KeyEnter:        rgui.KeyEnter,
	rl.KeyTab:          rgui.KeyTab,
	rl.KeyBackspace:    rgui.KeyBackspace,
	rl.KeyInsert:       rgui.KeyInsert,
	rl.KeyDelete:       rgui.KeyDelete,
	rl.KeyRight:        rgui.KeyRight,
	rl.KeyLeft:         rgui.KeyLeft,
	rl.KeyDown:         rgui.KeyDown,
	rl.KeyUp:           rgui.KeyUp,
	rl.KeyPageUp:       rgui.KeyPageUp,
	rl.KeyPageDown:     rgui.KeyPageDown,
	rl.KeyHome:         rgui.KeyHome,
	rl.KeyEnd:          rgui.KeyEnd,
	rl.KeyCapsLock:     rgui.KeyCapsLock,
	rl.KeyScrollLock:   rgui.KeyScrollLock,
	rl.KeyNumLock:      rgui.KeyNumLock,
	rl.KeyPrintScreen:  rgui.KeyPrintScreen,
	rl.KeyPause:        rgui.KeyPause,
	rl.KeySpace:        rgui.KeySpace,
	rl.KeyApostrophe:   rgui.KeyApostrophe,
	rl.KeyComma:        rgui.KeyComma,
	rl.KeyMinus:        rgui.KeyMinus,
	rl.KeyPeriod:       rgui.KeyPeriod,
	rl.KeySlash:        rgui.KeySlash,
	rl.KeySemicolon:    rgui.KeySemicolon,
	rl.KeyEqual:        rgui.KeyEquals,
	rl.KeyLeftBracket:  rgui.KeyLBracket,
	rl.KeyBackSlash:    rgui.KeyBackslash,
	rl.KeyRightBracket: rgui.KeyRBracket,
	rl.KeyGrave:        rgui.KeyGrave,
	rl.KeyKpDecimal:    rgui.KeyNumpadDecimal,
	rl.KeyKpDivide:     rgui.KeyNumpadDivide,
	rl.KeyKpMultiply:   rgui.KeyNumpadMultiply,
	rl.KeyKpSubtract:   rgui.KeyNumpadSubtract,
	rl.KeyKpAdd:        rgui.KeyNumpadAdd,
	rl.KeyKpEnter:      rgui.KeyNumpadEnter,
	rl.KeyKpEqual:      rgui.KeyNumpadEquals,
	rl.KeyLeftShift:    rgui.KeyLShift,
	rl.KeyLeftControl:  rgui.KeyLControl,
	rl.KeyLeftAlt:      rgui.KeyLAlt,
	rl.KeyLeftSuper:    rgui.KeyLWin,
	rl.KeyRightShift:   rgui.KeyRShift,
	rl.KeyRightControl: rgui.KeyRControl,
	rl.KeyRightAlt:     rgui.KeyRAlt,
	rl.KeyRightSuper:   rgui.KeyRWin,
	rl.KeyKbMenu:       rgui.KeyMenu,
}

// keyCode maps raylib key codes, which follow the GLFW numbering.
func keyCode(k int32) rgui.KeyCode {
	switch {
	case k >= rl.KeyA && k <= rl.KeyZ:
		return rgui.KeyA + rgui.KeyCode(k-rl.KeyA)
	case k >= rl.KeyZero && k <= rl.KeyNine:
		return rgui.Key0 + rgui.KeyCode(k-rl.KeyZero)
	case k >= rl.KeyF1 && k <= rl.KeyF12:
		return rgui.KeyF1 + rgui.KeyCode(k-rl.KeyF1)
	case k >= rl.KeyKp0 && k <= rl.KeyKp9:
		return rgui.KeyNumpad0 + rgui.KeyCode(k-rl.KeyKp0)
	}
	return keys[k]
}
