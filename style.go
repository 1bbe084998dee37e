package rgui

// Style defines the visual appearance of the stock widgets. Constructors
// copy the values they need, so changing a Style after a widget exists has
// no effect on it.
type Style struct {
	// Colors
	BackgroundColor Color // Root clear color
	TextColor       Color
	LabelColor      Color // Label background
	PanelColor      Color
	BorderColor     Color

	// Button and tab colors
	ButtonColor Color
	TabColor    Color

	// Checkbox
	CheckboxColor     Color
	CheckboxSelected  Color
	CheckboxBorder    float64 // Inset of the unchecked face
	CheckboxInsetFrac float64 // Relative inset of the checked face

	// Slider
	SliderTrackColor Color
	SliderGrabColor  Color
	SliderGrabSize   Vec2

	// Text input
	InputBgColor    Color
	InputTextColor  Color
	InputBorderSize float64

	// Progress bar
	ProgressBgColor   Color
	ProgressFillColor Color

	// Overlays and icons
	TooltipColor Color
	IconBgColor  Color

	// Font
	FontSize float64
}

// DefaultStyle returns the dark default look.
func DefaultStyle() Style {
	return Style{
		BackgroundColor: ColorFromHex(0xFF1F1F24),
		TextColor:       ColorWhite,
		LabelColor:      ColorFromHex(0xFF141414),
		PanelColor:      ColorFromHex(0xC8141414),
		BorderColor:     ColorFromHex(0xFF505050),

		ButtonColor: ColorFromHex(0xFF323232),
		TabColor:    ColorFromHex(0xFF28282D),

		CheckboxColor:     ColorFromHex(0xFF1E1E1E),
		CheckboxSelected:  ColorFromHex(0xFF326496),
		CheckboxBorder:    2,
		CheckboxInsetFrac: 0.2,

		SliderTrackColor: ColorFromHex(0xFF282828),
		SliderGrabColor:  ColorFromHex(0xFF646464),
		SliderGrabSize:   V(10, 20),

		InputBgColor:    ColorFromHex(0xFF1E1E1E),
		InputTextColor:  ColorWhite,
		InputBorderSize: 2,

		ProgressBgColor:   ColorFromHex(0xFF282828),
		ProgressFillColor: ColorFromHex(0xFF326496),

		TooltipColor: ColorFromHex(0xF0191919),
		IconBgColor:  ColorTransparent,

		FontSize: 16,
	}
}

// GTAStyle returns a high-contrast black, cyan and yellow look.
func GTAStyle() Style {
	s := DefaultStyle()
	s.BackgroundColor = ColorBlack
	s.TextColor = ColorWhite
	s.LabelColor = ColorFromHex(0xDC000000)
	s.PanelColor = ColorFromHex(0xDC000000)
	s.BorderColor = ColorFromHex(0xFF006496)
	s.ButtonColor = ColorFromHex(0xFF282828)
	s.TabColor = ColorFromHex(0xFF003C5A)
	s.CheckboxSelected = ColorFromHex(0xFF0096C8)
	s.SliderTrackColor = ColorFromHex(0xFF1E1E1E)
	s.SliderGrabColor = ColorFromHex(0xFF0096C8)
	s.InputBgColor = ColorFromHex(0xFF141414)
	s.ProgressFillColor = ColorFromHex(0xFFFFC800)
	s.TooltipColor = ColorFromHex(0xF0003C5A)
	s.FontSize = 20
	return s
}
