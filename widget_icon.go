package rgui

// Icon draws an image file over a background rectangle. The image is
// loaded by the renderer; a path it cannot load draws nothing.
type Icon struct {
	Base
	path    string
	options DrawImageOptions
	bg      Color
}

// NewIcon shows the image at path. A nil options draws it at its original
// size.
func NewIcon(size Vec2, style Style, path string, options DrawImageOptions) *Icon {
	if options == nil {
		options = OriginalSize{}
	}
	return &Icon{
		Base:    NewBase(size, NoLayout()),
		path:    path,
		options: options,
		bg:      style.IconBgColor,
	}
}

func (i *Icon) Path() string { return i.path }

func (i *Icon) SetImage(path string, options DrawImageOptions) {
	if options == nil {
		options = OriginalSize{}
	}
	i.path, i.options = path, options
	i.SetDirty(true)
}

func (i *Icon) OnEvent(ctx *EventContext, ev Event) {
	ctx.Forward(i, ev)
}

func (i *Icon) Recipe() []Instruction {
	clip := i.clipArea()
	return []Instruction{
		DrawRect{Point: i.position, Size: i.size, Color: i.bg, Clip: clip},
		DrawImage{Point: i.position, Path: i.path, Options: i.options, Clip: clip},
	}
}
