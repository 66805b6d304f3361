package sparkle

import (
	"image/color"
	"math/rand/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the fallback particle color.
var ColorWhite = Color{1, 1, 1, 1}

// toRGBA converts to a premultiplied color.RGBA for ebiten draw calls.
func (c Color) toRGBA() color.RGBA {
	a := clamp(c.A, 0, 1)
	return color.RGBA{
		R: uint8(clamp(c.R, 0, 1)*a*255 + 0.5),
		G: uint8(clamp(c.G, 0, 1)*a*255 + 0.5),
		B: uint8(clamp(c.B, 0, 1)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

// Vec2 is a 2D vector used for positions, offsets, sizes, and velocities.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Range is a general-purpose min/max range.
type Range struct {
	Min, Max float64
}

// Random returns a random float64 in [Min, Max] drawn from rng.
func (r Range) Random(rng *rand.Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// SizeMode selects how an emitter's spawn area is measured.
type SizeMode uint8

const (
	SizePercent SizeMode = iota // width/height are percentages of the canvas
	SizePixels                  // width/height are absolute pixels
)

// MoveDirection is the travel direction given to spawned particles.
type MoveDirection uint8

const (
	DirectionNone MoveDirection = iota
	DirectionTop
	DirectionTopRight
	DirectionRight
	DirectionBottomRight
	DirectionBottom
	DirectionBottomLeft
	DirectionLeft
	DirectionTopLeft
)

// baseVelocity returns the unit-ish velocity for a direction. Diagonals keep
// the half-step table particles have always used rather than normalizing.
func (d MoveDirection) baseVelocity() Vec2 {
	switch d {
	case DirectionTop:
		return Vec2{0, -1}
	case DirectionTopRight:
		return Vec2{0.5, -0.5}
	case DirectionRight:
		return Vec2{1, 0}
	case DirectionBottomRight:
		return Vec2{0.5, 0.5}
	case DirectionBottom:
		return Vec2{0, 1}
	case DirectionBottomLeft:
		return Vec2{-0.5, 1}
	case DirectionLeft:
		return Vec2{-1, 0}
	case DirectionTopLeft:
		return Vec2{-0.5, -0.5}
	default:
		return Vec2{}
	}
}

// Mode is a bitmask of interaction effects bound to a pointer event.
// Values can be combined with bitwise OR (e.g. ModeBubble | ModeEmitter).
type Mode uint8

const (
	ModeBubble  Mode = 1 << iota // perturb size, opacity and color near the pointer
	ModeEmitter                  // click only: add an emitter at the click position
)

// Has reports whether m includes every bit of mode.
func (m Mode) Has(mode Mode) bool {
	return m&mode == mode
}
