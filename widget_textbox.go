package rgui

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// TextBox is a single-line text field. A left press inside focuses it and a
// press anywhere else blurs it. While focused it accepts typed characters,
// Backspace, Ctrl+V to paste and Ctrl+C to copy its text, Ctrl+Z and
// Ctrl+Y (or Ctrl+Shift+Z) to undo and redo; Enter blurs it. Every change
// of the text emits onTextChange.
type TextBox struct {
	Base
	text         string
	onTextChange Message

	bg     Color
	fg     Color
	border float64
	edge   Color

	focused bool
	cursor  Vec2
	history editHistory
}

func NewTextBox(size Vec2, style Style, text string, onTextChange Message) *TextBox {
	return &TextBox{
		Base:         NewBase(size, NoLayout()),
		text:         text,
		onTextChange: onTextChange,
		bg:           style.InputBgColor,
		fg:           style.InputTextColor,
		border:       style.InputBorderSize,
		edge:         style.BorderColor,
		cursor:       V(-1, -1),
	}
}

func (t *TextBox) Text() string         { return t.text }
func (t *TextBox) Focused() bool        { return t.focused }
func (t *TextBox) SetMessage(m Message) { t.onTextChange = m }

// SetText replaces the content without emitting onTextChange. Undo
// history is discarded.
func (t *TextBox) SetText(text string) {
	t.text = text
	t.history.reset()
	t.SetDirty(true)
}

func (t *TextBox) setFocused(on bool) {
	if on == t.focused {
		return
	}
	t.focused = on
	t.SetDirty(true)
}

func (t *TextBox) OnEvent(ctx *EventContext, ev Event) {
	switch e := ev.(type) {
	case CursorMoved:
		t.cursor = V(e.X, e.Y)
		ctx.Forward(t, ev)
	case ButtonPressed:
		if e.Button != MouseButtonLeft {
			ctx.Forward(t, ev)
			return
		}
		t.setFocused(t.IsCursorInside(t.cursor))
	case CharTyped:
		if !t.focused {
			ctx.Forward(t, ev)
			return
		}
		if unicode.IsControl(e.Rune) {
			return
		}
		t.edit(ctx, ev, t.text+string(e.Rune))
	case KeyPressed:
		if !t.focused {
			ctx.Forward(t, ev)
			return
		}
		t.key(ctx, e)
	default:
		ctx.Forward(t, ev)
	}
}

func (t *TextBox) key(ctx *EventContext, e KeyPressed) {
	ctrl := e.Modifiers.Control || e.Modifiers.Logo
	switch {
	case e.Key == KeyBackspace:
		if t.text == "" {
			return
		}
		_, n := utf8.DecodeLastRuneInString(t.text)
		t.edit(ctx, e, t.text[:len(t.text)-n])
	case e.Key == KeyEnter || e.Key == KeyNumpadEnter || e.Key == KeyEscape:
		t.setFocused(false)
	case ctrl && e.Key == KeyV:
		if clip := ClipboardGetText(); clip != "" {
			t.edit(ctx, e, t.text+firstLine(clip))
		}
	case ctrl && e.Key == KeyC:
		ClipboardSetText(t.text)
	case ctrl && e.Key == KeyZ && !e.Modifiers.Shift:
		if prev, ok := t.history.undo(t.text); ok {
			t.replace(ctx, e, prev)
		}
	case ctrl && (e.Key == KeyY || e.Key == KeyZ):
		if next, ok := t.history.redo(); ok {
			t.replace(ctx, e, next)
		}
	}
}

// edit records the current text for undo and replaces it with text in NFC,
// so a combining mark typed after its base letter becomes one rune.
func (t *TextBox) edit(ctx *EventContext, ev Event, text string) {
	t.history.push(t.text)
	t.replace(ctx, ev, norm.NFC.String(text))
}

func (t *TextBox) replace(ctx *EventContext, ev Event, text string) {
	t.text = text
	t.SetDirty(true)
	ctx.Emit(t.onTextChange, ev)
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' || r == '\r' {
			return s[:i]
		}
	}
	return s
}

func (t *TextBox) Recipe() []Instruction {
	clip := t.clipArea()
	edge := ColorBlack
	if t.focused {
		edge = t.edge
	}
	return []Instruction{
		DrawRect{Point: t.position, Size: t.size, Color: edge, Clip: clip},
		DrawRect{
			Point: t.position.AddScalar(t.border),
			Size:  t.size.SubScalar(2 * t.border),
			Color: t.bg,
			Clip:  clip,
		},
		DrawText{
			Point:    t.position.Add(V(10, 20)),
			FontSize: 22,
			Text:     t.text,
			Color:    t.fg,
			Clip:     clip,
		},
	}
}
