package sparkle

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefresh is how many frames the overlay text is held before redrawing.
const fpsRefresh = 30

// fpsOverlay caches the stats text image between refreshes.
type fpsOverlay struct {
	img    *ebiten.Image
	frames int
}

// draw renders frame rate, particle and emitter counts in the top-left corner.
func (o *fpsOverlay) draw(screen *ebiten.Image, s *Scene) {
	if o.img == nil {
		// 140x64 fits four DebugPrint lines.
		o.img = ebiten.NewImage(140, 64)
	}
	if o.frames%fpsRefresh == 0 {
		o.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nParticles: %d\nEmitters: %d",
			ebiten.ActualFPS(), ebiten.ActualTPS(), s.population.Len(), s.emitters.Len()))
	}
	o.frames++
	screen.DrawImage(o.img, nil)
}
