package sparkle

import (
	"math/rand/v2"
	"time"

	"github.com/tanema/gween/ease"
)

// bubbleProperty selects which overlay field process animates.
type bubbleProperty uint8

const (
	bubbleSize bubbleProperty = iota
	bubbleOpacity
)

// Bubbler perturbs particle radius, opacity and color near the pointer.
// Hover bubbles follow the pointer continuously; click bubbles ramp toward
// the target over the configured duration, then revert. It only ever writes
// particle Bubble overlays and the Session's click state.
type Bubbler struct {
	hover    PointerEvent
	click    PointerEvent
	distance float64
	size     Optional[float64]
	opacity  Optional[float64]
	colors   []string
	duration time.Duration
	easing   ease.TweenFunc

	converter ColorConverter
	rng       *rand.Rand
	events    eventSink
	buf       []ParticleID
}

// NewBubbler creates a Bubbler for opts. Distance and size are scaled by
// pixelRatio; a ratio of zero or less is treated as 1.
func NewBubbler(opts InteractivityOptions, pixelRatio float64) *Bubbler {
	if pixelRatio <= 0 {
		pixelRatio = 1
	}
	b := &Bubbler{
		hover:     opts.Hover,
		click:     opts.Click,
		distance:  opts.Bubble.Distance * pixelRatio,
		opacity:   opts.Bubble.Opacity,
		colors:    append([]string(nil), opts.Bubble.Colors...),
		duration:  opts.Bubble.Duration,
		easing:    opts.Bubble.Easing,
		converter: HexConverter{},
		rng:       rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	if s, ok := opts.Bubble.Size.Get(); ok {
		b.size.Set(s * pixelRatio)
	}
	if b.easing == nil {
		b.easing = ease.Linear
	}
	return b
}

// SetColorConverter replaces the converter used for bubble colors.
func (b *Bubbler) SetColorConverter(c ColorConverter) {
	b.converter = c
}

// SetRand replaces the source used to pick among bubble colors.
func (b *Bubbler) SetRand(rng *rand.Rand) {
	b.rng = rng
}

// SetEventStore sets the sink for click bubble peak and end events.
func (b *Bubbler) SetEventStore(store EventStore) {
	b.events.store = store
}

// Distance returns the pixel-ratio scaled bubble radius.
func (b *Bubbler) Distance() float64 {
	return b.distance
}

// Apply runs one frame of the bubble effect. Hover bubbles take priority: if
// hover is bound to ModeBubble the click path is skipped.
func (b *Bubbler) Apply(s *Session, ps ParticleStore, now time.Time) {
	switch {
	case b.hover.active(ModeBubble):
		b.hoverBubble(s, ps)
	case b.click.active(ModeBubble):
		b.clickBubble(s, ps, now)
	}
}

// Reset clears every overlay field of a particle that is not in range.
func (b *Bubbler) Reset(p *Particle) {
	if p.Bubble.InRange {
		return
	}
	p.Bubble.Opacity.Clear()
	p.Bubble.Radius.Clear()
	p.Bubble.Color.Clear()
}

// ResetAll runs Reset over the whole store.
func (b *Bubbler) ResetAll(ps ParticleStore) {
	for i := 0; i < ps.Len(); i++ {
		if p := ps.Particle(ParticleID(i)); p != nil {
			b.Reset(p)
		}
	}
}

func (b *Bubbler) hoverBubble(s *Session, ps ParticleStore) {
	pos, ok := s.HoverPosition.Get()
	if !ok || b.distance <= 0 {
		return
	}

	b.buf = ps.QueryCircle(pos, b.distance, b.buf[:0])
	for _, id := range b.buf {
		p := ps.Particle(id)
		if p == nil {
			continue
		}
		d := distance(p.Position, pos)
		if s.Status == PointerLeave || d > b.distance {
			p.Bubble.InRange = false
			b.Reset(p)
			continue
		}

		p.Bubble.InRange = true
		ratio := 1 - d/b.distance
		if s.Status == PointerMove && ratio >= 0 {
			b.hoverSize(p, ratio)
			b.hoverOpacity(p, ratio)
			b.resolveColor(p)
		}
	}
}

func (b *Bubbler) hoverSize(p *Particle, ratio float64) {
	target, ok := b.size.Get()
	if !ok {
		return
	}
	if v, changed := bubbleValue(p.Size, target, p.BaseSize, ratio); changed {
		p.Bubble.Radius.Set(v)
	}
}

func (b *Bubbler) hoverOpacity(p *Particle, ratio float64) {
	target, ok := b.opacity.Get()
	if !ok {
		return
	}
	if v, changed := bubbleValue(p.Opacity, target, p.BaseOpacity, ratio); changed {
		p.Bubble.Opacity.Set(v)
	}
}

// resolveColor sets the bubble color once; it is kept until cleared.
func (b *Bubbler) resolveColor(p *Particle) {
	if p.Bubble.Color.IsSet() || len(b.colors) == 0 {
		return
	}
	value := b.colors[0]
	if len(b.colors) > 1 {
		value = b.colors[b.rng.IntN(len(b.colors))]
	}
	c, err := b.converter.Convert(value)
	if err != nil {
		return
	}
	p.Bubble.Color.Set(c)
}

func (b *Bubbler) clickBubble(s *Session, ps ParticleStore, now time.Time) {
	pos, ok := s.ClickPosition.Get()
	if !ok {
		return
	}

	b.buf = ps.QueryCircle(pos, b.distance, b.buf[:0])
	if !s.Click.Active() {
		b.markInRange(ps)
		return
	}

	dur := b.duration.Seconds()
	elapsed := now.Sub(s.Click.Since).Seconds()
	if elapsed > dur && !s.Click.Peaked() {
		s.Click.Phase = ClickPeaked
		b.events.emit(Event{Type: EventClickBubblePeak, X: pos.X, Y: pos.Y})
	}
	ended := s.Click.Peaked()

	for _, id := range b.buf {
		p := ps.Particle(id)
		if p == nil {
			continue
		}
		p.Bubble.InRange = true
		d := distance(p.Position, pos)

		b.process(p, bubbleSize, d, elapsed, ended)
		b.process(p, bubbleOpacity, d, elapsed, ended)

		if !ended && d <= b.distance {
			b.resolveColor(p)
		} else {
			p.Bubble.Color.Clear()
		}
	}

	if elapsed > dur*2 {
		// Retired: this frame's pass reverted overlays, later clicks start fresh.
		s.Click = ClickState{}
		b.events.emit(Event{Type: EventClickBubbleEnd, X: pos.X, Y: pos.Y})
	}
}

// markInRange flags every particle in the last query as in range.
func (b *Bubbler) markInRange(ps ParticleStore) {
	for _, id := range b.buf {
		if p := ps.Particle(id); p != nil {
			p.Bubble.InRange = true
		}
	}
}

// process ramps one overlay property of a clicked particle from its current
// value toward the bubble target, clears it when the particle is out of
// range, and clears it once the bubble has ended.
func (b *Bubbler) process(p *Particle, prop bubbleProperty, d, elapsed float64, ended bool) {
	var (
		target  Optional[float64]
		rest    float64
		current float64
		overlay *Optional[float64]
	)
	switch prop {
	case bubbleSize:
		target, rest, current, overlay = b.size, p.BaseSize, p.Size, &p.Bubble.Radius
	case bubbleOpacity:
		target, rest, current, overlay = b.opacity, p.BaseOpacity, p.Opacity, &p.Bubble.Opacity
	}

	goal, ok := target.Get()
	if !ok || goal == rest {
		return
	}

	switch {
	case ended:
		overlay.Clear()
	case d > b.distance:
		overlay.Clear()
	case overlay.Or(current) != goal: // converged overlays are left alone
		dur := b.duration.Seconds()
		if dur <= 0 {
			return
		}
		v := b.easing(float32(elapsed), float32(current), float32(goal-current), float32(dur))
		overlay.Set(float64(v))
	}
}
