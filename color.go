package sparkle

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorRandom is a color string that resolves to a random fully saturated hue.
const ColorRandom = "random"

// HSL is the internal particle color: hue in degrees [0, 360), saturation and
// lightness in [0, 1].
type HSL struct {
	H, S, L float64
}

// Color converts to RGBA with the given alpha.
func (c HSL) Color(alpha float64) Color {
	rgb := colorful.Hsl(c.H, c.S, c.L).Clamped()
	return Color{R: rgb.R, G: rgb.G, B: rgb.B, A: alpha}
}

// ColorConverter normalizes a user-facing color string into HSL.
type ColorConverter interface {
	Convert(value string) (HSL, error)
}

// HexConverter converts "#rgb" and "#rrggbb" strings, plus ColorRandom.
type HexConverter struct {
	// Rand draws random hues. Nil uses the global source.
	Rand *rand.Rand
}

// Convert implements ColorConverter.
func (h HexConverter) Convert(value string) (HSL, error) {
	value = strings.TrimSpace(value)
	if strings.EqualFold(value, ColorRandom) {
		var hue float64
		if h.Rand != nil {
			hue = h.Rand.Float64() * 360
		} else {
			hue = rand.Float64() * 360
		}
		return HSL{H: hue, S: 1, L: 0.5}, nil
	}
	c, err := colorful.Hex(strings.ToLower(value))
	if err != nil {
		return HSL{}, fmt.Errorf("convert color %q: %w", value, err)
	}
	hue, sat, light := c.Hsl()
	return HSL{H: hue, S: sat, L: light}, nil
}
