package rgui

// Panel is a filled container with an optional title drawn along its top
// edge. Children are laid out by the panel's layout.
type Panel struct {
	Base
	title    string
	bg       Color
	fg       Color
	fontSize float64
}

func NewPanel(size Vec2, layout Layout, style Style) *Panel {
	return &Panel{
		Base:     NewBase(size, layout),
		bg:       style.PanelColor,
		fg:       style.TextColor,
		fontSize: style.FontSize,
	}
}

// SetTitle sets the title text. An empty title draws nothing.
func (p *Panel) SetTitle(title string) {
	p.title = title
	p.SetDirty(true)
}

func (p *Panel) Title() string { return p.title }

func (p *Panel) SetBackground(c Color) {
	p.bg = c
	p.SetDirty(true)
}

func (p *Panel) OnEvent(ctx *EventContext, ev Event) {
	ctx.Forward(p, ev)
}

func (p *Panel) Recipe() []Instruction {
	clip := p.clipArea()
	out := []Instruction{
		DrawRect{Point: p.position, Size: p.size, Color: p.bg, Clip: clip},
	}
	if p.title != "" {
		out = append(out, DrawText{
			Point:    p.position.Add(V(0, p.fontSize)),
			FontSize: p.fontSize,
			Text:     p.title,
			Color:    p.fg,
			Clip:     clip,
		})
	}
	return out
}
