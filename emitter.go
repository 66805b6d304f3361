package sparkle

// EmitterState is an emitter's lifecycle state.
type EmitterState uint8

const (
	EmitterStopped   EmitterState = iota // no spawn timer
	EmitterPlaying                       // spawning, no death watch armed
	EmitterDying                         // spawning with a death watch armed
	EmitterDestroyed                     // deregistered; terminal
)

// Emitter spawns batches of particles at a position on a fixed interval until
// its life count runs out. It holds a snapshot of its options; edits to the
// options it was created from do not affect it.
type Emitter struct {
	// ID is unique within its Emitters registry.
	ID uint32
	// Position is the resolved pixel position of the spawn area's center.
	Position Vec2
	// Size is the spawn-area extent around Position.
	Size EmitterSize

	opts      EmitterOptions
	particles ParticleOptions
	initial   Optional[Vec2]
	life      int // remaining life cycles; -1 is forever

	registry    *Emitters
	spawnTimer  *timer
	dieTimer    *timer
	reviveTimer *timer
	destroyed   bool
}

// newEmitter snapshots opts and resolves position, size and life. The caller
// starts it.
func newEmitter(reg *Emitters, id uint32, opts EmitterOptions, pos Optional[Vec2]) *Emitter {
	e := &Emitter{
		ID:       id,
		opts:     opts.Clone(),
		initial:  pos,
		registry: reg,
	}
	if p, ok := pos.Get(); ok {
		e.Position = p
	} else {
		e.Position = e.calcPosition()
	}

	e.particles = e.opts.Particles.clone()
	if !e.particles.Move.Direction.IsSet() {
		e.particles.Move.Direction.Set(e.opts.Direction)
	}

	e.Size = e.opts.Size.Or(EmitterSize{Mode: SizePercent})

	e.life = -1
	if e.opts.Life.Count > 0 {
		e.life = e.opts.Life.Count
	}
	return e
}

// Options returns a copy of the emitter's option snapshot.
func (e *Emitter) Options() EmitterOptions {
	return e.opts.Clone()
}

// RemainingLife returns the remaining life cycles, or -1 for forever.
func (e *Emitter) RemainingLife() int {
	return e.life
}

// State returns the emitter's lifecycle state.
func (e *Emitter) State() EmitterState {
	switch {
	case e.destroyed:
		return EmitterDestroyed
	case !e.spawnTimer.queued():
		return EmitterStopped
	case e.dieTimer.queued():
		return EmitterDying
	default:
		return EmitterPlaying
	}
}

// Playing reports whether the spawn timer is active.
func (e *Emitter) Playing() bool {
	return e.spawnTimer.queued()
}

// Play starts the spawn timer if life permits and it is not already running,
// and arms the death watch when a finite life remains.
func (e *Emitter) Play() {
	if e.destroyed {
		return
	}
	if e.life <= 0 && e.opts.Life.Count > 0 {
		return
	}
	if e.spawnTimer == nil {
		e.spawnTimer = e.registry.sched.every(e.opts.Rate.Delay, e.emit)
		e.registry.event(EventEmitterPlay, e, 0)
	}
	if e.life > 0 {
		e.prepareToDie()
	}
}

// Pause cancels the spawn timer. Pausing a stopped emitter does nothing.
func (e *Emitter) Pause() {
	if e.spawnTimer == nil {
		return
	}
	e.registry.sched.cancel(e.spawnTimer)
	e.spawnTimer = nil
	e.registry.event(EventEmitterPause, e, 0)
}

// Resize keeps the fixed position the emitter was created with while it
// still fits the canvas, otherwise picks a new position. Play state is
// unchanged.
func (e *Emitter) Resize() {
	if e.destroyed {
		return
	}
	if p, ok := e.initial.Get(); ok && isPointInside(p, e.registry.surface.Size()) {
		e.Position = p
		return
	}
	e.Position = e.calcPosition()
}

// prepareToDie arms the death watch once per life cycle.
func (e *Emitter) prepareToDie() {
	dur, ok := e.opts.Life.Duration.Get()
	if e.life <= 0 || !ok || e.dieTimer != nil {
		return
	}
	e.dieTimer = e.registry.sched.after(dur, e.lifeExpired)
}

// lifeExpired ends one life cycle: spawning pauses and either a new cycle
// starts at a fresh position after the life delay, or the emitter dies.
func (e *Emitter) lifeExpired() {
	e.dieTimer = nil
	e.Pause()
	e.life--
	e.registry.event(EventEmitterLifeLost, e, 0)

	if e.life <= 0 {
		e.destroy()
		return
	}
	e.Position = e.calcPosition()
	e.reviveTimer = e.registry.sched.after(e.opts.Life.Delay, func() {
		e.reviveTimer = nil
		if !e.registry.paused {
			e.Play()
		}
	})
}

// destroy deregisters the emitter. Safe to call more than once.
func (e *Emitter) destroy() {
	e.registry.Remove(e)
}

// teardown cancels every timer and marks the emitter destroyed. Called by
// the registry on removal.
func (e *Emitter) teardown() {
	sched := e.registry.sched
	sched.cancel(e.spawnTimer)
	sched.cancel(e.dieTimer)
	sched.cancel(e.reviveTimer)
	e.spawnTimer, e.dieTimer, e.reviveTimer = nil, nil, nil
	e.destroyed = true
}

// calcPosition converts the configured percent position, or a random one,
// to canvas pixels.
func (e *Emitter) calcPosition() Vec2 {
	pct, ok := e.opts.Position.Get()
	if !ok {
		rng := e.registry.rng
		pct = Vec2{rng.Float64() * 100, rng.Float64() * 100}
	}
	return percentToPixels(pct, e.registry.surface.Size())
}

// spawnOffset returns the spawn-area extent in pixels.
func (e *Emitter) spawnOffset() Vec2 {
	if e.Size.Mode == SizePercent {
		return percentToPixels(Vec2{e.Size.Width, e.Size.Height}, e.registry.surface.Size())
	}
	return Vec2{e.Size.Width, e.Size.Height}
}

// emit spawns one batch, each particle jittered uniformly inside the spawn
// area centered on Position.
func (e *Emitter) emit() {
	offset := e.spawnOffset()
	rng := e.registry.rng
	n := e.opts.Rate.Quantity
	for i := 0; i < n; i++ {
		e.registry.spawner.SpawnParticle(Vec2{
			X: e.Position.X + offset.X*(rng.Float64()-0.5),
			Y: e.Position.Y + offset.Y*(rng.Float64()-0.5),
		}, e.particles)
	}
	e.registry.event(EventParticlesEmitted, e, n)
}
