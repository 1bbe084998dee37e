package rgui

import (
	"fmt"
	"image/color"
)

// Color is an 8-bit ARGB color value.
type Color struct {
	A, R, G, B uint8
}

// ColorFromHex unpacks a 0xAARRGGBB value.
func ColorFromHex(hex uint32) Color {
	return Color{
		A: uint8(hex >> 24),
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
	}
}

// Hex packs the color back into 0xAARRGGBB.
func (c Color) Hex() uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// ABGR packs the color as 0xAABBGGRR, the byte order of an RGBA8 vertex
// attribute on little-endian machines.
func (c Color) ABGR() uint32 {
	return uint32(c.A)<<24 | uint32(c.B)<<16 | uint32(c.G)<<8 | uint32(c.R)
}

// RGBA converts to the standard library's non-premultiplied color.
func (c Color) RGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Transparent reports whether the color has zero alpha.
func (c Color) Transparent() bool {
	return c.A == 0
}

func (c Color) String() string {
	return fmt.Sprintf("#%08X", c.Hex())
}

// Color constants.
var (
	ColorWhite       = ColorFromHex(0xFFFFFFFF)
	ColorBlack       = ColorFromHex(0xFF000000)
	ColorRed         = ColorFromHex(0xFFFF0000)
	ColorGreen       = ColorFromHex(0xFF00FF00)
	ColorBlue        = ColorFromHex(0xFF0000FF)
	ColorYellow      = ColorFromHex(0xFFFFFF00)
	ColorGray        = ColorFromHex(0xFF808080)
	ColorDarkGray    = ColorFromHex(0xFF404040)
	ColorLightGray   = ColorFromHex(0xFFC0C0C0)
	ColorTransparent = Color{}
)
