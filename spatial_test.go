package sparkle

import (
	"slices"
	"testing"
)

func TestSpatialGridQueryCircle(t *testing.T) {
	g := NewSpatialGrid(200, 200, 32)
	points := []Vec2{
		{10, 10},   // 0
		{50, 10},   // 1
		{100, 100}, // 2
		{190, 190}, // 3
		{60, 10},   // 4: exactly on the radius from (10,10)
	}
	for i, p := range points {
		g.Insert(ParticleID(i), p)
	}

	tests := []struct {
		name   string
		center Vec2
		radius float64
		want   []ParticleID
	}{
		{"small", Vec2{10, 10}, 5, []ParticleID{0}},
		{"inclusive edge", Vec2{10, 10}, 50, []ParticleID{0, 1, 4}},
		{"center", Vec2{100, 100}, 1, []ParticleID{2}},
		{"everything", Vec2{100, 100}, 500, []ParticleID{0, 1, 2, 3, 4}},
		{"empty area", Vec2{150, 30}, 10, nil},
		{"negative radius", Vec2{10, 10}, -1, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.QueryCircle(tt.center, tt.radius, nil)
			slices.Sort(got)
			if !slices.Equal(got, tt.want) {
				t.Errorf("QueryCircle = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSpatialGridOutOfBoundsClamped(t *testing.T) {
	g := NewSpatialGrid(100, 100, 32)
	g.Insert(0, Vec2{-10, -10})
	g.Insert(1, Vec2{150, 50})

	if got := g.QueryCircle(Vec2{0, 0}, 15, nil); !slices.Equal(got, []ParticleID{0}) {
		t.Errorf("outside-left query = %v", got)
	}
	if got := g.QueryCircle(Vec2{140, 50}, 10, nil); !slices.Equal(got, []ParticleID{1}) {
		t.Errorf("outside-right query = %v", got)
	}
}

func TestSpatialGridReset(t *testing.T) {
	g := NewSpatialGrid(100, 100, 32)
	g.Insert(0, Vec2{50, 50})
	g.Reset(300, 100)
	if got := g.QueryCircle(Vec2{50, 50}, 10, nil); len(got) != 0 {
		t.Errorf("query after Reset = %v", got)
	}
	g.Insert(0, Vec2{250, 50})
	if got := g.QueryCircle(Vec2{250, 50}, 1, nil); len(got) != 1 {
		t.Errorf("query in grown area = %v", got)
	}
}

func TestSpatialGridAppendsToBuf(t *testing.T) {
	g := NewSpatialGrid(100, 100, 0)
	g.Insert(0, Vec2{5, 5})
	buf := []ParticleID{99}
	buf = g.QueryCircle(Vec2{5, 5}, 1, buf)
	if !slices.Equal(buf, []ParticleID{99, 0}) {
		t.Errorf("buf = %v", buf)
	}
}
