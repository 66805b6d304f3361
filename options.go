package sparkle

import (
	"slices"
	"time"

	"github.com/tanema/gween/ease"
)

// Options is the resolved, typed configuration for a Scene.
type Options struct {
	// PixelRatio scales bubble distance, bubble size and particle sizes.
	// Zero is treated as 1.
	PixelRatio float64
	// Particles configures the particles seeded when the scene is created.
	Particles ParticleOptions
	// Interactivity configures pointer-driven effects.
	Interactivity InteractivityOptions
	// Emitters are added to the scene at creation time.
	Emitters []EmitterOptions
	// MaxParticles is the population pool size. New particles are silently
	// dropped when full. Zero uses defaultMaxParticles.
	MaxParticles int
}

// pixelRatio returns PixelRatio with the zero value mapped to 1.
func (o *Options) pixelRatio() float64 {
	if o.PixelRatio <= 0 {
		return 1
	}
	return o.PixelRatio
}

// InteractivityOptions binds pointer events to interaction modes.
type InteractivityOptions struct {
	Hover PointerEvent
	Click PointerEvent
	// Bubble configures ModeBubble for both hover and click.
	Bubble BubbleOptions
	// Emitters are the templates ModeEmitter picks from on click.
	Emitters []EmitterOptions
}

// PointerEvent enables a set of modes for one pointer event.
type PointerEvent struct {
	Enable bool
	Mode   Mode
}

// active reports whether the event is enabled and includes mode.
func (e PointerEvent) active(mode Mode) bool {
	return e.Enable && e.Mode.Has(mode)
}

// BubbleOptions configures the bubble effect.
type BubbleOptions struct {
	// Distance is the radius around the pointer in which particles react.
	Distance float64
	// Duration is how long a click bubble ramps before reverting.
	Duration time.Duration
	// Size is the target particle radius. Absent leaves size untouched.
	Size Optional[float64]
	// Opacity is the target opacity. Absent leaves opacity untouched.
	Opacity Optional[float64]
	// Colors are candidate bubble colors; one is picked at random. Empty
	// leaves color untouched.
	Colors []string
	// Easing shapes the click ramp. Nil means ease.Linear.
	Easing ease.TweenFunc
}

// DefaultBubbleOptions returns the bubble settings particles have shipped with.
func DefaultBubbleOptions() BubbleOptions {
	return BubbleOptions{
		Distance: 200,
		Duration: 400 * time.Millisecond,
		Size:     Some(40.0),
		Opacity:  Some(0.8),
	}
}

// ParticleOptions describes how a spawned particle looks and moves.
type ParticleOptions struct {
	// Number is how many particles the scene seeds at creation.
	Number int
	// Colors are candidate particle colors; empty means white.
	Colors  []string
	Size    ValueOptions
	Opacity ValueOptions
	Move    MoveOptions
	// Lifetime is the range of particle lifetimes in seconds. Zero means the
	// particle lives until it leaves the canvas.
	Lifetime Range
}

// ValueOptions is a randomized resting value with an optional pulse.
type ValueOptions struct {
	Value     Range
	Animation AnimationOptions
}

// AnimationOptions pulses a value between its resting value and Min.
type AnimationOptions struct {
	Enable bool
	// Speed is the change per second.
	Speed float64
	Min   float64
}

// MoveOptions configures particle motion.
type MoveOptions struct {
	Enable bool
	// Direction is filled in from the emitter when absent.
	Direction Optional[MoveDirection]
	// Speed is in pixels per second.
	Speed Range
	// OutRemove removes particles that leave the canvas instead of wrapping.
	OutRemove bool
}

// clone returns a deep copy.
func (o ParticleOptions) clone() ParticleOptions {
	o.Colors = slices.Clone(o.Colors)
	return o
}

// DefaultParticleOptions returns a small, slowly drifting population.
func DefaultParticleOptions() ParticleOptions {
	return ParticleOptions{
		Number:  80,
		Colors:  []string{"#ffffff"},
		Size:    ValueOptions{Value: Range{Min: 3, Max: 3}},
		Opacity: ValueOptions{Value: Range{Min: 0.5, Max: 0.5}},
		Move: MoveOptions{
			Enable: true,
			Speed:  Range{Min: 20, Max: 40},
		},
	}
}

// EmitterOptions configures one emission point.
type EmitterOptions struct {
	// Direction is given to spawned particles whose options lack one.
	Direction MoveDirection
	Life      EmitterLife
	Particles ParticleOptions
	// Position is in percent of the canvas. Absent picks a random position.
	Position Optional[Vec2]
	Rate     EmitterRate
	// Size is the spawn area around the position. Absent is a single point.
	Size Optional[EmitterSize]
}

// EmitterLife limits how many cycles an emitter lives.
type EmitterLife struct {
	// Count is the number of life cycles. Zero or less means forever.
	Count int
	// Duration is the length of one life cycle. Absent never expires.
	Duration Optional[time.Duration]
	// Delay is the pause between life cycles.
	Delay time.Duration
}

// EmitterRate controls spawn cadence.
type EmitterRate struct {
	// Delay is the interval between spawn cycles.
	Delay time.Duration
	// Quantity is the number of particles per cycle.
	Quantity int
}

// EmitterSize is an emitter's spawn-area extent.
type EmitterSize struct {
	Width, Height float64
	Mode          SizeMode
}

// Clone returns a deep copy so later edits to o cannot reach the copy.
func (o EmitterOptions) Clone() EmitterOptions {
	o.Particles = o.Particles.clone()
	return o
}

// DefaultEmitterOptions returns an emitter firing one particle every 100ms
// from a random point, forever.
func DefaultEmitterOptions() EmitterOptions {
	p := DefaultParticleOptions()
	p.Number = 0
	p.Move.OutRemove = true
	return EmitterOptions{
		Direction: DirectionNone,
		Particles: p,
		Rate:      EmitterRate{Delay: 100 * time.Millisecond, Quantity: 1},
	}
}

// DefaultOptions returns a scene with hover bubbles enabled.
func DefaultOptions() Options {
	return Options{
		PixelRatio: 1,
		Particles:  DefaultParticleOptions(),
		Interactivity: InteractivityOptions{
			Hover:  PointerEvent{Enable: true, Mode: ModeBubble},
			Click:  PointerEvent{Enable: true, Mode: ModeEmitter},
			Bubble: DefaultBubbleOptions(),
		},
	}
}

// Clone returns a deep copy of o.
func (o Options) Clone() Options {
	o.Particles = o.Particles.clone()
	o.Interactivity.Bubble.Colors = slices.Clone(o.Interactivity.Bubble.Colors)
	o.Interactivity.Emitters = cloneEmitters(o.Interactivity.Emitters)
	o.Emitters = cloneEmitters(o.Emitters)
	return o
}

func cloneEmitters(src []EmitterOptions) []EmitterOptions {
	if src == nil {
		return nil
	}
	out := make([]EmitterOptions, len(src))
	for i, e := range src {
		out[i] = e.Clone()
	}
	return out
}
