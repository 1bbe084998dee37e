package rgui

// ProgressBar fills a share of its preferred width proportional to a
// percentage. Both rectangles are clipped to the current size, so a bar
// squeezed by its parent shows only the part that fits.
type ProgressBar struct {
	Base
	progress float64
	bg       Color
	fg       Color
}

func NewProgressBar(size Vec2, style Style, progress float64) *ProgressBar {
	return &ProgressBar{
		Base:     NewBase(size, NoLayout()),
		progress: clampf(progress, 0, 100),
		bg:       style.ProgressBgColor,
		fg:       style.ProgressFillColor,
	}
}

func (p *ProgressBar) Progress() float64 { return p.progress }

// SetProgress sets the percentage, clamped to [0, 100].
func (p *ProgressBar) SetProgress(progress float64) {
	progress = clampf(progress, 0, 100)
	if progress == p.progress {
		return
	}
	p.progress = progress
	p.SetDirty(true)
}

func (p *ProgressBar) OnEvent(ctx *EventContext, ev Event) {
	ctx.Forward(p, ev)
}

func (p *ProgressBar) Recipe() []Instruction {
	clip := p.clipArea()
	return []Instruction{
		DrawRect{Point: p.position, Size: p.originalSize, Color: p.bg, Clip: clip},
		DrawRect{
			Point: p.position,
			Size:  V(p.originalSize.X*p.progress/100, p.originalSize.Y),
			Color: p.fg,
			Clip:  clip,
		},
	}
}
