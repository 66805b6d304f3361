package sparkle

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	debugEmitterColor = color.RGBA{0x40, 0xc0, 0xff, 0xff}
	debugBubbleColor  = color.RGBA{0xff, 0xff, 0xff, 0x60}
)

// Draw renders every live particle as a filled circle using its bubble
// overlay where present. In debug mode emitter spawn areas and the active
// bubble radius are outlined.
func (s *Scene) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}

	drawn := 0
	for i := 0; i < s.population.Len(); i++ {
		p := s.population.Particle(ParticleID(i))
		r := p.RenderSize()
		a := p.RenderOpacity()
		if r <= 0 || a <= 0 {
			continue
		}
		c := p.RenderColor().Color(a)
		vector.DrawFilledCircle(screen, float32(p.Position.X), float32(p.Position.Y), float32(r), c.toRGBA(), true)
		drawn++
	}

	if s.debug {
		s.drawDebugOverlay(screen)
		s.stats.drawn = drawn
		s.stats.drawTime = time.Since(t0)
		s.debugLog()
	}
	if s.showFPS {
		s.fps.draw(screen, s)
	}

	s.flushScreenshots(screen)
}

func (s *Scene) drawDebugOverlay(screen *ebiten.Image) {
	for _, e := range s.emitters.All() {
		ext := e.spawnOffset()
		// Point emitters get a small marker so they stay visible.
		ext.X, ext.Y = max(ext.X, 4), max(ext.Y, 4)
		vector.StrokeRect(screen,
			float32(e.Position.X-ext.X/2), float32(e.Position.Y-ext.Y/2),
			float32(ext.X), float32(ext.Y), 1, debugEmitterColor, false)
	}

	pos, ok := s.session.HoverPosition.Get()
	if !ok {
		pos, ok = s.session.ClickPosition.Get()
	}
	if ok && s.bubbler.Distance() > 0 {
		vector.StrokeCircle(screen, float32(pos.X), float32(pos.Y), float32(s.bubbler.Distance()), 1, debugBubbleColor, true)
	}
}
