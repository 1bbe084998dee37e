package rgui

import "math"

// Vec2 represents a 2D vector for positions and sizes.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the component-wise sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the component-wise difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul returns the component-wise product of two vectors.
func (v Vec2) Mul(other Vec2) Vec2 {
	return Vec2{X: v.X * other.X, Y: v.Y * other.Y}
}

// Div returns the component-wise quotient of two vectors.
func (v Vec2) Div(other Vec2) Vec2 {
	return Vec2{X: v.X / other.X, Y: v.Y / other.Y}
}

func (v Vec2) AddScalar(s float64) Vec2 { return Vec2{X: v.X + s, Y: v.Y + s} }
func (v Vec2) SubScalar(s float64) Vec2 { return Vec2{X: v.X - s, Y: v.Y - s} }
func (v Vec2) MulScalar(s float64) Vec2 { return Vec2{X: v.X * s, Y: v.Y * s} }
func (v Vec2) DivScalar(s float64) Vec2 { return Vec2{X: v.X / s, Y: v.Y / s} }

// Min returns the component-wise minimum. The build pass uses it to clamp a
// child's preferred size to the space its parent has left.
func (v Vec2) Min(other Vec2) Vec2 {
	return Vec2{X: math.Min(v.X, other.X), Y: math.Min(v.Y, other.Y)}
}

// Max returns the component-wise maximum.
func (v Vec2) Max(other Vec2) Vec2 {
	return Vec2{X: math.Max(v.X, other.X), Y: math.Max(v.Y, other.Y)}
}

// Rect represents a rectangle with position and size.
type Rect struct {
	X, Y float64 // Top-left position
	W, H float64 // Width and height
}

// RectFrom builds a Rect from a top-left point and a size.
func RectFrom(point, size Vec2) Rect {
	return Rect{X: point.X, Y: point.Y, W: size.X, H: size.Y}
}

func (r Rect) Point() Vec2 { return Vec2{X: r.X, Y: r.Y} }
func (r Rect) Size() Vec2  { return Vec2{X: r.W, Y: r.H} }

// Contains reports whether p lies inside the rectangle. Both edges count as
// inside, so a 20x20 rect at (10,10) contains (30,30).
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Intersects returns true if two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.W && r.X+r.W > other.X &&
		r.Y < other.Y+other.H && r.Y+r.H > other.Y
}

// Intersect returns the overlapping area of two rectangles. The result is
// empty (zero size) when they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	x0 := math.Max(r.X, other.X)
	y0 := math.Max(r.Y, other.Y)
	x1 := math.Min(r.X+r.W, other.X+other.W)
	y1 := math.Min(r.Y+r.H, other.Y+other.H)
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// clampf clamps a value to a range.
func clampf(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
