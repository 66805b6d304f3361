package sparkle

import (
	"math/rand/v2"
	"time"
)

// maxFrameDelta caps the simulation step so a stalled frame does not fling
// particles across the canvas.
const maxFrameDelta = 0.1

// SceneConfig configures NewScene. Zero fields take defaults.
type SceneConfig struct {
	Width, Height float64
	Options       Options
	// Clock drives emitters and click bubbles. Nil uses SystemClock.
	Clock Clock
	// Rand seeds every random draw in the scene. Nil uses a random seed.
	Rand *rand.Rand
}

// Scene owns a particle population, the bubble effect, the emitter registry
// and the pointer session, and advances them once per frame.
type Scene struct {
	// ClearColor fills the screen before particles are drawn. Zero alpha
	// skips the fill.
	ClearColor Color
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	opts       Options
	clock      Clock
	rng        *rand.Rand
	size       Vec2
	population *Population
	bubbler    *Bubbler
	emitters   *Emitters
	session    Session
	events     eventSink
	debug      bool
	paused     bool
	lastTick   time.Time
	stats      debugStats

	readInput       bool
	injectQueue     []syntheticPointerEvent
	testRunner      *TestRunner
	screenshotQueue []string
	updateFunc      func() error
	showFPS         bool
	fps             fpsOverlay
}

// NewScene creates a scene, seeds Options.Particles.Number particles at
// random positions and starts every configured emitter.
func NewScene(cfg SceneConfig) *Scene {
	clock := cfg.Clock
	if clock == nil {
		clock = SystemClock{}
	}
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	opts := cfg.Options.Clone()

	s := &Scene{
		ClearColor:    Color{0.04, 0.04, 0.07, 1},
		ScreenshotDir: "screenshots",
		opts:          opts,
		clock:         clock,
		rng:           rng,
		size:          Vec2{cfg.Width, cfg.Height},
		lastTick:      clock.Now(),
	}

	s.population = NewPopulation(opts.MaxParticles, s.size)
	s.population.pixelRatio = opts.pixelRatio()
	s.population.SetRand(rng)
	s.population.SetColorConverter(HexConverter{Rand: rng})

	s.bubbler = NewBubbler(opts.Interactivity, opts.pixelRatio())
	s.bubbler.SetRand(rng)
	s.bubbler.SetColorConverter(HexConverter{Rand: rng})

	s.emitters = NewEmitters(s.population, s, clock)
	s.emitters.SetRand(rng)

	for i := 0; i < opts.Particles.Number; i++ {
		s.population.SpawnParticle(Vec2{rng.Float64() * s.size.X, rng.Float64() * s.size.Y}, opts.Particles)
	}
	for _, e := range opts.Emitters {
		s.emitters.Add(e)
	}
	return s
}

// Size implements Surface.
func (s *Scene) Size() Vec2 {
	return s.size
}

// Session returns the pointer session.
func (s *Scene) Session() *Session {
	return &s.session
}

// Population returns the particle population.
func (s *Scene) Population() *Population {
	return s.population
}

// Emitters returns the emitter registry.
func (s *Scene) Emitters() *Emitters {
	return s.emitters
}

// Bubbler returns the bubble effect.
func (s *Scene) Bubbler() *Bubbler {
	return s.bubbler
}

// SetEventStore sets the optional lifecycle event sink for emitters and
// click bubbles.
func (s *Scene) SetEventStore(store EventStore) {
	s.events.store = store
	s.emitters.SetEventStore(store)
	s.bubbler.SetEventStore(store)
}

// SetUpdateFunc sets a callback Run calls after every Update. A non-nil
// error stops the game loop.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// Update reads input and advances the scene to the clock's current time.
func (s *Scene) Update() {
	now := s.clock.Now()
	dt := clamp(now.Sub(s.lastTick).Seconds(), 0, maxFrameDelta)
	s.lastTick = now

	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInput(now)
	s.Step(now, dt)
}

// Step advances the simulation to now by dt seconds without reading input:
// emitter timers fire, particles move, then the bubble effect runs and
// overlays of particles that left range are reset.
func (s *Scene) Step(now time.Time, dt float64) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	s.stats.timersFired = s.emitters.Update(now)
	if !s.paused {
		s.population.Update(dt)
	}

	s.population.BeginFrame()
	s.bubbler.Apply(&s.session, s.population, now)
	s.bubbler.ResetAll(s.population)

	if s.debug {
		s.stats.updateTime = time.Since(t0)
	}
}

// Pause freezes particle motion and stops every emitter from spawning.
// Bubbles keep reacting to the pointer.
func (s *Scene) Pause() {
	s.paused = true
	s.emitters.Pause()
}

// Play resumes motion and spawning.
func (s *Scene) Play() {
	s.paused = false
	s.emitters.Play()
}

// Paused reports whether the scene is paused.
func (s *Scene) Paused() bool {
	return s.paused
}

// Resize changes the canvas size and repositions emitters.
func (s *Scene) Resize(width, height float64) {
	size := Vec2{width, height}
	if size == s.size {
		return
	}
	s.size = size
	s.population.Resize(size)
	s.emitters.Resize()
	s.debugf("resize %.0fx%.0f", width, height)
}

// press handles a click at pos according to the click modes.
func (s *Scene) press(pos Vec2, now time.Time) {
	click := s.opts.Interactivity.Click
	if !click.Enable {
		return
	}
	s.session.Press(pos, now)
	if click.Mode.Has(ModeBubble) {
		s.events.emit(Event{Type: EventClickBubbleStart, X: pos.X, Y: pos.Y})
	}
	if tmpl := s.opts.Interactivity.Emitters; click.Mode.Has(ModeEmitter) && len(tmpl) > 0 {
		s.emitters.AddAt(tmpl[s.rng.IntN(len(tmpl))], pos)
	}
}
