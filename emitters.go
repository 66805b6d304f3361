package sparkle

import (
	"math/rand/v2"
	"time"
)

// Spawner adds particles to a population. opts must not be retained or
// mutated.
type Spawner interface {
	SpawnParticle(pos Vec2, opts ParticleOptions)
}

// Surface reports the current canvas size in pixels.
type Surface interface {
	Size() Vec2
}

// Emitters is the registry of live emitters. It owns the scheduler that
// drives their timers; call Update once per frame to fire due timers.
type Emitters struct {
	spawner Spawner
	surface Surface
	sched   *scheduler
	rng     *rand.Rand
	list    []*Emitter
	nextID  uint32
	events  eventSink
	logf    func(format string, args ...any)
	paused  bool
}

// NewEmitters creates an empty registry spawning into spawner on a canvas
// reported by surface, timed by clock.
func NewEmitters(spawner Spawner, surface Surface, clock Clock) *Emitters {
	return &Emitters{
		spawner: spawner,
		surface: surface,
		sched:   newScheduler(clock),
		rng:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// SetRand replaces the random source used for positions and jitter.
func (m *Emitters) SetRand(rng *rand.Rand) {
	m.rng = rng
}

// SetEventStore sets the optional lifecycle event sink.
func (m *Emitters) SetEventStore(store EventStore) {
	m.events.store = store
}

// Add registers an emitter at a position derived from opts and starts it,
// unless the registry is paused.
func (m *Emitters) Add(opts EmitterOptions) *Emitter {
	return m.add(opts, Optional[Vec2]{})
}

// AddAt registers an emitter pinned at pos (pixels) and starts it, unless
// the registry is paused.
func (m *Emitters) AddAt(opts EmitterOptions, pos Vec2) *Emitter {
	return m.add(opts, Some(pos))
}

func (m *Emitters) add(opts EmitterOptions, pos Optional[Vec2]) *Emitter {
	m.nextID++
	e := newEmitter(m, m.nextID, opts, pos)
	m.list = append(m.list, e)
	m.event(EventEmitterAdded, e, 0)
	if !m.paused {
		e.Play()
	}
	return e
}

// Remove deregisters e and cancels its timers. It reports whether e was
// registered; removing twice is a no-op.
func (m *Emitters) Remove(e *Emitter) bool {
	for i, c := range m.list {
		if c == e {
			copy(m.list[i:], m.list[i+1:])
			m.list[len(m.list)-1] = nil
			m.list = m.list[:len(m.list)-1]
			e.teardown()
			m.event(EventEmitterRemoved, e, 0)
			return true
		}
	}
	return false
}

// Clear removes every emitter.
func (m *Emitters) Clear() {
	for len(m.list) > 0 {
		m.Remove(m.list[len(m.list)-1])
	}
}

// Play resumes every emitter, including any whose revive was held back by
// Pause.
func (m *Emitters) Play() {
	m.paused = false
	for _, e := range m.snapshot() {
		e.Play()
	}
}

// Pause stops spawning on every emitter. Until Play, emitters reaching the
// end of a life delay stay stopped and new emitters are not started.
func (m *Emitters) Pause() {
	m.paused = true
	for _, e := range m.snapshot() {
		e.Pause()
	}
}

// Paused reports whether the registry is paused.
func (m *Emitters) Paused() bool {
	return m.paused
}

// Resize repositions every emitter for the current canvas size.
func (m *Emitters) Resize() {
	for _, e := range m.list {
		e.Resize()
	}
}

// Update fires every timer due at or before now and returns how many fired.
func (m *Emitters) Update(now time.Time) int {
	return m.sched.advance(now)
}

// Len returns the number of registered emitters.
func (m *Emitters) Len() int {
	return len(m.list)
}

// All returns the registered emitters. The returned slice MUST NOT be mutated.
func (m *Emitters) All() []*Emitter {
	return m.list
}

// snapshot copies the list so callbacks may remove emitters mid-iteration.
func (m *Emitters) snapshot() []*Emitter {
	return append([]*Emitter(nil), m.list...)
}

func (m *Emitters) event(t EventType, e *Emitter, count int) {
	if m.logf != nil && t != EventParticlesEmitted {
		m.logf("emitter %d: %s at (%.1f, %.1f), life %d", e.ID, t, e.Position.X, e.Position.Y, e.life)
	}
	m.events.emit(Event{
		Type:          t,
		EmitterID:     e.ID,
		X:             e.Position.X,
		Y:             e.Position.Y,
		Count:         count,
		RemainingLife: e.life,
	})
}
