package sparkle

import (
	"math/rand/v2"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const defaultMaxParticles = 512

// ParticleID addresses a live particle in a Population. IDs are dense slot
// indices and are only valid until the next Population.Update, which
// swap-removes dead particles.
type ParticleID int32

// Bubble is the interaction overlay on a particle. A present field overrides
// the particle's own value while rendering; an absent one renders the base.
type Bubble struct {
	Radius  Optional[float64]
	Opacity Optional[float64]
	Color   Optional[HSL]
	// InRange is true only while the particle is inside the active pointer
	// radius for the current frame.
	InRange bool
}

// Particle holds per-particle state. Base values never change after spawn;
// Size and Opacity are the current animated values; Bubble is owned by the
// Bubbler.
type Particle struct {
	Position Vec2
	Velocity Vec2

	BaseSize    float64
	BaseOpacity float64
	BaseColor   HSL

	Size    float64
	Opacity float64

	Bubble Bubble

	life      float64 // remaining lifetime in seconds
	mortal    bool
	outRemove bool

	sizePulse    *gween.Sequence
	opacityPulse *gween.Sequence
}

// RenderSize returns the radius to draw.
func (p *Particle) RenderSize() float64 {
	return p.Bubble.Radius.Or(p.Size)
}

// RenderOpacity returns the opacity to draw.
func (p *Particle) RenderOpacity() float64 {
	return p.Bubble.Opacity.Or(p.Opacity)
}

// RenderColor returns the color to draw.
func (p *Particle) RenderColor() HSL {
	return p.Bubble.Color.Or(p.BaseColor)
}

// ParticleStore is the Bubbler's view of a population: radius queries plus
// read/write access to particles by ID.
type ParticleStore interface {
	SpatialIndex
	// Particle returns the particle for id, or nil if id is not live.
	Particle(id ParticleID) *Particle
	// Len returns the number of live particles. IDs [0, Len) are live.
	Len() int
}

// Population is a preallocated particle pool with CPU-based motion. It
// implements ParticleStore and Spawner.
type Population struct {
	particles  []Particle
	alive      int
	grid       *SpatialGrid
	size       Vec2
	pixelRatio float64
	colors     ColorConverter
	rng        *rand.Rand
	logf       func(format string, args ...any)
}

// NewPopulation creates a Population with a pool of max particles on a canvas
// of the given size.
func NewPopulation(max int, size Vec2) *Population {
	if max <= 0 {
		max = defaultMaxParticles
	}
	return &Population{
		particles:  make([]Particle, max),
		grid:       NewSpatialGrid(size.X, size.Y, defaultCellSize),
		size:       size,
		pixelRatio: 1,
		colors:     HexConverter{},
		rng:        rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// SetRand replaces the random source used for spawn values.
func (pp *Population) SetRand(rng *rand.Rand) {
	pp.rng = rng
}

// SetColorConverter replaces the converter used to resolve particle colors.
func (pp *Population) SetColorConverter(c ColorConverter) {
	pp.colors = c
}

// Len implements ParticleStore.
func (pp *Population) Len() int {
	return pp.alive
}

// Cap returns the pool size.
func (pp *Population) Cap() int {
	return len(pp.particles)
}

// Particle implements ParticleStore.
func (pp *Population) Particle(id ParticleID) *Particle {
	if id < 0 || int(id) >= pp.alive {
		return nil
	}
	return &pp.particles[id]
}

// QueryCircle implements SpatialIndex using the grid built by the last
// Update or Reindex.
func (pp *Population) QueryCircle(center Vec2, radius float64, buf []ParticleID) []ParticleID {
	return pp.grid.QueryCircle(center, radius, buf)
}

// Resize changes the canvas size used for wrapping and indexing.
func (pp *Population) Resize(size Vec2) {
	pp.size = size
	pp.Reindex()
}

// Clear kills all particles.
func (pp *Population) Clear() {
	pp.alive = 0
	pp.Reindex()
}

// SpawnParticle implements Spawner. opts is read, never retained.
func (pp *Population) SpawnParticle(pos Vec2, opts ParticleOptions) {
	if pp.alive >= len(pp.particles) {
		return
	}
	p := &pp.particles[pp.alive]
	*p = Particle{Position: pos}

	p.BaseSize = opts.Size.Value.Random(pp.rng) * pp.pixelRatio
	p.BaseOpacity = opts.Opacity.Value.Random(pp.rng)
	p.Size = p.BaseSize
	p.Opacity = p.BaseOpacity
	p.BaseColor = pp.pickColor(opts.Colors)

	if opts.Move.Enable {
		dir := opts.Move.Direction.Or(DirectionNone)
		speed := opts.Move.Speed.Random(pp.rng) * pp.pixelRatio
		if dir == DirectionNone {
			// Undirected particles drift at a random heading.
			p.Velocity = Vec2{pp.rng.Float64() - 0.5, pp.rng.Float64() - 0.5}.Scale(2 * speed)
		} else {
			p.Velocity = dir.baseVelocity().Scale(speed)
		}
	}
	p.outRemove = opts.Move.OutRemove

	if life := opts.Lifetime.Random(pp.rng); life > 0 {
		p.life = life
		p.mortal = true
	}

	p.sizePulse = pulse(p.BaseSize, opts.Size.Animation.Min*pp.pixelRatio,
		opts.Size.Animation.Speed*pp.pixelRatio, opts.Size.Animation.Enable)
	p.opacityPulse = pulse(p.BaseOpacity, opts.Opacity.Animation.Min,
		opts.Opacity.Animation.Speed, opts.Opacity.Animation.Enable)

	pp.grid.Insert(ParticleID(pp.alive), p.Position)
	pp.alive++
}

// pickColor resolves a random entry of colors, falling back to white.
func (pp *Population) pickColor(colors []string) HSL {
	if len(colors) == 0 {
		return HSL{L: 1}
	}
	value := colors[pp.rng.IntN(len(colors))]
	c, err := pp.colors.Convert(value)
	if err != nil {
		if pp.logf != nil {
			pp.logf("particle color: %v", err)
		}
		return HSL{L: 1}
	}
	return c
}

// pulse builds a looping yoyo tween from rest to min, or nil when disabled.
func pulse(rest, min, speed float64, enable bool) *gween.Sequence {
	if !enable || speed <= 0 || rest == min {
		return nil
	}
	d := rest - min
	if d < 0 {
		d = -d
	}
	seq := gween.NewSequence(gween.New(float32(rest), float32(min), float32(d/speed), ease.InOutSine))
	seq.SetYoyo(true)
	seq.SetLoop(-1)
	return seq
}

// BeginFrame clears every particle's InRange flag. The Bubbler sets it again
// for particles it touches this frame.
func (pp *Population) BeginFrame() {
	for i := 0; i < pp.alive; i++ {
		pp.particles[i].Bubble.InRange = false
	}
}

// Update advances particle simulation by dt seconds and rebuilds the
// spatial index.
func (pp *Population) Update(dt float64) {
	i := 0
	for i < pp.alive {
		p := &pp.particles[i]
		if p.mortal {
			p.life -= dt
			if p.life <= 0 {
				pp.remove(i)
				continue
			}
		}

		p.Position.X += p.Velocity.X * dt
		p.Position.Y += p.Velocity.Y * dt
		if !isPointInside(p.Position, pp.size) {
			if p.outRemove {
				pp.remove(i)
				continue
			}
			p.Position = wrap(p.Position, pp.size)
		}

		if p.sizePulse != nil {
			v, _, _ := p.sizePulse.Update(float32(dt))
			p.Size = float64(v)
		}
		if p.opacityPulse != nil {
			v, _, _ := p.opacityPulse.Update(float32(dt))
			p.Opacity = float64(v)
		}
		i++
	}
	pp.Reindex()
}

// Reindex rebuilds the spatial grid from current positions.
func (pp *Population) Reindex() {
	pp.grid.Reset(pp.size.X, pp.size.Y)
	for i := 0; i < pp.alive; i++ {
		pp.grid.Insert(ParticleID(i), pp.particles[i].Position)
	}
}

// remove swap-removes the particle at slot i.
func (pp *Population) remove(i int) {
	pp.alive--
	pp.particles[i] = pp.particles[pp.alive]
	pp.particles[pp.alive] = Particle{}
}

// wrap moves p back onto the opposite edge of a canvas of the given size.
func wrap(p, size Vec2) Vec2 {
	switch {
	case p.X < 0:
		p.X += size.X
	case p.X > size.X:
		p.X -= size.X
	}
	switch {
	case p.Y < 0:
		p.Y += size.Y
	case p.Y > size.Y:
		p.Y -= size.Y
	}
	return clampToCanvas(p, size)
}

func clampToCanvas(p, size Vec2) Vec2 {
	return Vec2{clamp(p.X, 0, size.X), clamp(p.Y, 0, size.Y)}
}
