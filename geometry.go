package sparkle

import "math"

// clamp restricts v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// distance returns the Euclidean distance between a and b.
func distance(a, b Vec2) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// isPointInside reports whether p lies within a canvas of the given size.
func isPointInside(p, size Vec2) bool {
	return Rect{Width: size.X, Height: size.Y}.Contains(p.X, p.Y)
}

// percentToPixels converts a percentage position to canvas pixels.
func percentToPixels(pct, size Vec2) Vec2 {
	return Vec2{pct.X / 100 * size.X, pct.Y / 100 * size.Y}
}

// bubbleValue moves particleValue toward modeValue by the distance between
// modeValue and optionsValue scaled by ratio. The result stays between
// particleValue and modeValue. It reports false when modeValue equals
// optionsValue, meaning there is nothing to animate.
func bubbleValue(particleValue, modeValue, optionsValue, ratio float64) (float64, bool) {
	switch {
	case modeValue > optionsValue:
		v := particleValue + (modeValue-optionsValue)*ratio
		return clamp(v, particleValue, modeValue), true
	case modeValue < optionsValue:
		v := particleValue - (optionsValue-modeValue)*ratio
		return clamp(v, modeValue, particleValue), true
	default:
		return 0, false
	}
}
