package metadata

import "github.com/prism-engine/prism/engine/math"

// Color is a straight RGBA color with normalized float channels, in the
// layout the surface clear operation consumes.
type Color struct {
	R float64
	G float64
	B float64
	A float64
}

var ColorBlack = Color{0, 0, 0, 1}

// ColorFromCursor maps a cursor position inside a width×height window to
// a clear color: red tracks the horizontal fraction, green the vertical
// fraction, blue and alpha stay fully on. Positions outside the window
// clamp to the nearest edge.
func ColorFromCursor(x, y float64, width, height uint32) Color {
	return Color{
		R: math.Fraction(x, float64(width)),
		G: math.Fraction(y, float64(height)),
		B: 1.0,
		A: 1.0,
	}
}
