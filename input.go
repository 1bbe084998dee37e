package rgui

import "fmt"

// MouseButton represents a mouse button. Values at or above
// MouseButtonOther identify extra buttons by index.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonOther
)

// MouseOther returns the n-th extra mouse button.
func MouseOther(n uint8) MouseButton {
	return MouseButtonOther + MouseButton(n)
}

func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "Left"
	case MouseButtonRight:
		return "Right"
	case MouseButtonMiddle:
		return "Middle"
	default:
		return fmt.Sprintf("Other(%d)", int(b-MouseButtonOther))
	}
}

// KeyCode represents a physical keyboard key.
type KeyCode int

const (
	KeyNone KeyCode = iota
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyEscape
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
	KeyF21
	KeyF22
	KeyF23
	KeyF24
	KeyPrintScreen
	KeyScrollLock
	KeyPause
	KeyInsert
	KeyHome
	KeyDelete
	KeyEnd
	KeyPageDown
	KeyPageUp
	KeyLeft
	KeyUp
	KeyRight
	KeyDown
	KeyBackspace
	KeyEnter
	KeySpace
	KeyTab
	KeyCapsLock
	KeyNumLock
	KeyNumpad0
	KeyNumpad1
	KeyNumpad2
	KeyNumpad3
	KeyNumpad4
	KeyNumpad5
	KeyNumpad6
	KeyNumpad7
	KeyNumpad8
	KeyNumpad9
	KeyNumpadAdd
	KeyNumpadSubtract
	KeyNumpadMultiply
	KeyNumpadDivide
	KeyNumpadDecimal
	KeyNumpadEnter
	KeyNumpadEquals
	KeyApostrophe
	KeyBackslash
	KeyComma
	KeyEquals
	KeyGrave
	KeyLBracket
	KeyRBracket
	KeyMinus
	KeyPeriod
	KeySemicolon
	KeySlash
	KeyLAlt
	KeyRAlt
	KeyLControl
	KeyRControl
	KeyLShift
	KeyRShift
	KeyLWin
	KeyRWin
	KeyMenu
	KeyCount
)

var keyNames = map[KeyCode]string{
	KeyNone:           "--",
	KeyEscape:         "Esc",
	KeyPrintScreen:    "PrtSc",
	KeyScrollLock:     "ScrLk",
	KeyPause:          "Pause",
	KeyInsert:         "Ins",
	KeyHome:           "Home",
	KeyDelete:         "Del",
	KeyEnd:            "End",
	KeyPageDown:       "PgDn",
	KeyPageUp:         "PgUp",
	KeyLeft:           "Left",
	KeyUp:             "Up",
	KeyRight:          "Right",
	KeyDown:           "Down",
	KeyBackspace:      "Backspace",
	KeyEnter:          "Enter",
	KeySpace:          "Space",
	KeyTab:            "Tab",
	KeyCapsLock:       "CapsLock",
	KeyNumLock:        "NumLock",
	KeyNumpadAdd:      "Num+",
	KeyNumpadSubtract: "Num-",
	KeyNumpadMultiply: "Num*",
	KeyNumpadDivide:   "Num/",
	KeyNumpadDecimal:  "Num.",
	KeyNumpadEnter:    "NumEnter",
	KeyNumpadEquals:   "Num=",
	KeyApostrophe:     "'",
	KeyBackslash:      "\\",
	KeyComma:          ",",
	KeyEquals:         "=",
	KeyGrave:          "`",
	KeyLBracket:       "[",
	KeyRBracket:       "]",
	KeyMinus:          "-",
	KeyPeriod:         ".",
	KeySemicolon:      ";",
	KeySlash:          "/",
	KeyLAlt:           "LAlt",
	KeyRAlt:           "RAlt",
	KeyLControl:       "LCtrl",
	KeyRControl:       "RCtrl",
	KeyLShift:         "LShift",
	KeyRShift:         "RShift",
	KeyLWin:           "LWin",
	KeyRWin:           "RWin",
	KeyMenu:           "Menu",
}

// KeyName returns a human-readable name for a key.
func KeyName(k KeyCode) string {
	switch {
	case k >= Key0 && k <= Key9:
		return string(rune('0' + (k - Key0)))
	case k >= KeyA && k <= KeyZ:
		return string(rune('A' + (k - KeyA)))
	case k >= KeyF1 && k <= KeyF24:
		return fmt.Sprintf("F%d", int(k-KeyF1)+1)
	case k >= KeyNumpad0 && k <= KeyNumpad9:
		return fmt.Sprintf("Num%d", int(k-KeyNumpad0))
	}
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "?"
}

func (k KeyCode) String() string {
	return KeyName(k)
}

// US layout shifted digits.
var shiftedDigits = [10]rune{')', '!', '@', '#', '$', '%', '^', '&', '*', '('}

var punctuation = map[KeyCode][2]rune{
	KeyApostrophe: {'\'', '"'},
	KeyBackslash:  {'\\', '|'},
	KeyComma:      {',', '<'},
	KeyEquals:     {'=', '+'},
	KeyGrave:      {'`', '~'},
	KeyLBracket:   {'[', '{'},
	KeyRBracket:   {']', '}'},
	KeyMinus:      {'-', '_'},
	KeyPeriod:     {'.', '>'},
	KeySemicolon:  {';', ':'},
	KeySlash:      {'/', '?'},
	KeySpace:      {' ', ' '},

	KeyNumpadAdd:      {'+', '+'},
	KeyNumpadSubtract: {'-', '-'},
	KeyNumpadMultiply: {'*', '*'},
	KeyNumpadDivide:   {'/', '/'},
	KeyNumpadDecimal:  {'.', '.'},
	KeyNumpadEquals:   {'=', '='},
}

// Rune returns the character the key produces on a US layout, and false for
// keys that do not produce text.
func (k KeyCode) Rune(shift bool) (rune, bool) {
	switch {
	case k >= Key0 && k <= Key9:
		if shift {
			return shiftedDigits[k-Key0], true
		}
		return rune('0' + (k - Key0)), true
	case k >= KeyA && k <= KeyZ:
		if shift {
			return rune('A' + (k - KeyA)), true
		}
		return rune('a' + (k - KeyA)), true
	case k >= KeyNumpad0 && k <= KeyNumpad9:
		return rune('0' + (k - KeyNumpad0)), true
	}
	if pair, ok := punctuation[k]; ok {
		if shift {
			return pair[1], true
		}
		return pair[0], true
	}
	return 0, false
}
