package rgui

// Label draws a line of text on a filled background. Text is placed with its
// baseline on the bottom edge of the widget.
type Label struct {
	Base
	text     string
	fontSize float64
	fg       Color
	bg       Color

	// fit, when set, truncates text that overflows the widget's width.
	fit TextMeasurer
}

// NewLabel creates a label with the given preferred size.
func NewLabel(text string, size Vec2, style Style) *Label {
	return &Label{
		Base:     NewBase(size, NoLayout()),
		text:     text,
		fontSize: style.FontSize,
		fg:       style.TextColor,
		bg:       style.LabelColor,
	}
}

func (l *Label) Text() string { return l.text }

// SetText replaces the label's text and schedules a rebuild.
func (l *Label) SetText(text string) {
	if text == l.text {
		return
	}
	l.text = text
	l.SetDirty(true)
}

func (l *Label) SetColors(fg, bg Color) {
	l.fg, l.bg = fg, bg
	l.SetDirty(true)
}

func (l *Label) SetFontSize(size float64) {
	l.fontSize = size
	l.SetDirty(true)
}

// SetFit makes the label shorten overflowing text with m. A nil m turns
// truncation off.
func (l *Label) SetFit(m TextMeasurer) {
	l.fit = m
	l.SetDirty(true)
}

// OnEvent ignores all input.
func (l *Label) OnEvent(*EventContext, Event) {}

func (l *Label) Recipe() []Instruction {
	clip := l.clipArea()
	text := l.text
	if l.fit != nil {
		text = TruncateText(l.fit, text, l.fontSize, l.size.X)
	}
	return []Instruction{
		DrawRect{Point: l.position, Size: l.size, Color: l.bg, Clip: clip},
		DrawText{
			Point:    l.position.Add(V(0, l.size.Y)),
			FontSize: l.fontSize,
			Text:     text,
			Color:    l.fg,
			Clip:     clip,
		},
	}
}
