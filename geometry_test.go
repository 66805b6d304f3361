package sparkle

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func TestClamp(t *testing.T) {
	assertNear(t, "below", clamp(-1, 0, 1), 0)
	assertNear(t, "above", clamp(2, 0, 1), 1)
	assertNear(t, "inside", clamp(0.25, 0, 1), 0.25)
}

func TestDistance(t *testing.T) {
	assertNear(t, "3-4-5", distance(Vec2{0, 0}, Vec2{3, 4}), 5)
	assertNear(t, "same", distance(Vec2{7, 7}, Vec2{7, 7}), 0)
}

func TestIsPointInside(t *testing.T) {
	size := Vec2{100, 50}
	tests := []struct {
		name string
		p    Vec2
		want bool
	}{
		{"center", Vec2{50, 25}, true},
		{"origin", Vec2{0, 0}, true},
		{"far corner", Vec2{100, 50}, true},
		{"left", Vec2{-0.1, 25}, false},
		{"below", Vec2{50, 50.1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isPointInside(tt.p, size); got != tt.want {
				t.Errorf("isPointInside(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestPercentToPixels(t *testing.T) {
	got := percentToPixels(Vec2{50, 25}, Vec2{800, 600})
	assertNear(t, "x", got.X, 400)
	assertNear(t, "y", got.Y, 150)
}

func TestBubbleValueOpacityExample(t *testing.T) {
	// Hover at distance 0: ratio 1, target 1, resting 0.3.
	v, ok := bubbleValue(0.3, 1, 0.3, 1)
	if !ok {
		t.Fatal("expected a value")
	}
	assertNear(t, "opacity", v, 1.0)
}

func TestBubbleValueNoTarget(t *testing.T) {
	if _, ok := bubbleValue(3, 5, 5, 0.5); ok {
		t.Error("equal mode and options values should report nothing to animate")
	}
}

func TestBubbleValueMonotonicAndBounded(t *testing.T) {
	tests := []struct {
		name                    string
		particle, mode, options float64
	}{
		{"grow", 3, 40, 3},
		{"grow from animated", 2, 40, 3},
		{"shrink", 10, 2, 10},
		{"fade", 0.8, 0.1, 0.8},
		{"brighten", 0.3, 1, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo := math.Min(tt.particle, tt.mode)
			hi := math.Max(tt.particle, tt.mode)
			increasing := tt.mode > tt.options
			prev, _ := bubbleValue(tt.particle, tt.mode, tt.options, 0)
			for i := 0; i <= 20; i++ {
				ratio := float64(i) / 20
				v, ok := bubbleValue(tt.particle, tt.mode, tt.options, ratio)
				if !ok {
					t.Fatalf("ratio %v: no value", ratio)
				}
				if v < lo-epsilon || v > hi+epsilon {
					t.Errorf("ratio %v: %v outside [%v, %v]", ratio, v, lo, hi)
				}
				if increasing && v < prev-epsilon {
					t.Errorf("ratio %v: %v decreased from %v", ratio, v, prev)
				}
				if !increasing && v > prev+epsilon {
					t.Errorf("ratio %v: %v increased from %v", ratio, v, prev)
				}
				prev = v
			}
		})
	}
}
