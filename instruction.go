package rgui

// Instruction is a primitive draw command produced by a widget's recipe.
// Renderers switch over the concrete types.
type Instruction interface {
	isInstruction()
}

// Clip restricts a draw instruction to a rectangle, so a renderer can drop
// pixels outside the producing widget's bounds after every recipe has been
// flattened into one list.
type Clip struct {
	ClipPoint Vec2
	ClipSize  Vec2
}

// ClipRect returns the clip area as a Rect.
func (c Clip) ClipRect() Rect {
	return RectFrom(c.ClipPoint, c.ClipSize)
}

// ClipTo builds a Clip covering r.
func ClipTo(r Rect) Clip {
	return Clip{ClipPoint: r.Point(), ClipSize: r.Size()}
}

// Clear fills the whole target with a color.
type Clear struct {
	Color Color
}

type DrawPoint struct {
	Point Vec2
	Color Color
	Clip
}

type DrawLine struct {
	PointA, PointB Vec2
	Color          Color
	Clip
}

// DrawArc strokes a circle segment. Angles are in radians, measured clockwise
// from the positive X axis in screen space.
type DrawArc struct {
	Point      Vec2
	Radius     float64
	StartAngle float64
	EndAngle   float64
	Color      Color
	Clip
}

type DrawCircle struct {
	Point  Vec2
	Radius float64
	Color  Color
	Clip
}

type DrawRect struct {
	Point Vec2
	Size  Vec2
	Color Color
	Clip
}

type DrawTriangle struct {
	PointA, PointB, PointC Vec2
	Color                  Color
	Clip
}

type DrawImage struct {
	Point   Vec2
	Path    string
	Options DrawImageOptions
	Clip
}

// DrawText draws a string whose baseline starts at Point.
type DrawText struct {
	Point    Vec2
	FontSize float64
	Text     string
	Color    Color
	Clip
}

func (Clear) isInstruction()        {}
func (DrawPoint) isInstruction()    {}
func (DrawLine) isInstruction()     {}
func (DrawArc) isInstruction()      {}
func (DrawCircle) isInstruction()   {}
func (DrawRect) isInstruction()     {}
func (DrawTriangle) isInstruction() {}
func (DrawImage) isInstruction()    {}
func (DrawText) isInstruction()     {}

// DrawImageOptions controls how DrawImage scales its source.
type DrawImageOptions interface {
	// Scale returns the drawn size for an image of the given source size.
	Scale(src Vec2) Vec2
	isImageOption()
}

// OriginalSize draws the image at its own pixel size.
type OriginalSize struct{}

// Resize draws the image at a fixed size.
type Resize struct {
	Width, Height float64
}

// ResizeMultiplier scales the image uniformly.
type ResizeMultiplier struct {
	Mult float64
}

func (OriginalSize) Scale(src Vec2) Vec2       { return src }
func (o Resize) Scale(Vec2) Vec2               { return Vec2{X: o.Width, Y: o.Height} }
func (o ResizeMultiplier) Scale(src Vec2) Vec2 { return src.MulScalar(o.Mult) }

func (OriginalSize) isImageOption()     {}
func (Resize) isImageOption()           {}
func (ResizeMultiplier) isImageOption() {}

// InstructionClip returns the clip rectangle of a draw instruction. Clear
// has none and reports false.
func InstructionClip(in Instruction) (Rect, bool) {
	switch v := in.(type) {
	case DrawPoint:
		return v.ClipRect(), true
	case DrawLine:
		return v.ClipRect(), true
	case DrawArc:
		return v.ClipRect(), true
	case DrawCircle:
		return v.ClipRect(), true
	case DrawRect:
		return v.ClipRect(), true
	case DrawTriangle:
		return v.ClipRect(), true
	case DrawImage:
		return v.ClipRect(), true
	case DrawText:
		return v.ClipRect(), true
	}
	return Rect{}, false
}
