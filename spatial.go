package sparkle

import "math"

// defaultCellSize is the spatial grid bucket edge in pixels.
const defaultCellSize = 64

// SpatialIndex answers radius queries over a particle population.
type SpatialIndex interface {
	// QueryCircle appends to buf the IDs of particles whose position lies
	// within radius of center (inclusive) and returns the extended slice.
	// Order is unspecified.
	QueryCircle(center Vec2, radius float64, buf []ParticleID) []ParticleID
}

// SpatialGrid is a uniform bucket grid rebuilt every frame. Points outside
// the covered area are clamped into the border cells so they stay queryable.
type SpatialGrid struct {
	cellSize  float64
	cols      int
	rows      int
	cells     [][]ParticleID
	positions []Vec2 // indexed by ParticleID
}

// NewSpatialGrid creates a grid covering width x height.
func NewSpatialGrid(width, height, cellSize float64) *SpatialGrid {
	if cellSize <= 0 {
		cellSize = defaultCellSize
	}
	g := &SpatialGrid{cellSize: cellSize}
	g.Reset(width, height)
	return g
}

// Reset empties the grid and resizes it to cover width x height.
func (g *SpatialGrid) Reset(width, height float64) {
	cols := max(1, int(math.Ceil(width/g.cellSize)))
	rows := max(1, int(math.Ceil(height/g.cellSize)))
	if cols != g.cols || rows != g.rows {
		g.cols, g.rows = cols, rows
		g.cells = make([][]ParticleID, cols*rows)
	} else {
		for i := range g.cells {
			g.cells[i] = g.cells[i][:0]
		}
	}
	g.positions = g.positions[:0]
}

// Insert adds id at pos. IDs must be inserted densely from zero.
func (g *SpatialGrid) Insert(id ParticleID, pos Vec2) {
	for int(id) >= len(g.positions) {
		g.positions = append(g.positions, Vec2{})
	}
	g.positions[id] = pos
	cx, cy := g.cellOf(pos)
	idx := cy*g.cols + cx
	g.cells[idx] = append(g.cells[idx], id)
}

// QueryCircle implements SpatialIndex.
func (g *SpatialGrid) QueryCircle(center Vec2, radius float64, buf []ParticleID) []ParticleID {
	if radius < 0 {
		return buf
	}
	x0, y0 := g.cellOf(Vec2{center.X - radius, center.Y - radius})
	x1, y1 := g.cellOf(Vec2{center.X + radius, center.Y + radius})
	r2 := radius * radius
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			for _, id := range g.cells[cy*g.cols+cx] {
				p := g.positions[id]
				dx, dy := p.X-center.X, p.Y-center.Y
				if dx*dx+dy*dy <= r2 {
					buf = append(buf, id)
				}
			}
		}
	}
	return buf
}

// cellOf returns the clamped cell coordinates for pos.
func (g *SpatialGrid) cellOf(pos Vec2) (int, int) {
	cx := int(math.Floor(pos.X / g.cellSize))
	cy := int(math.Floor(pos.Y / g.cellSize))
	return min(max(cx, 0), g.cols-1), min(max(cy, 0), g.rows-1)
}
