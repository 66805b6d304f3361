package sparkle

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// processInput feeds one frame of pointer input into the session. Injected
// events take precedence over real input; real input is only read once Run
// has started the game loop.
func (s *Scene) processInput(now time.Time) {
	if s.processInjectedInput(now) {
		return
	}
	if !s.readInput {
		return
	}

	// Touches press at their own positions.
	var touches []ebiten.TouchID
	touches = inpututil.AppendJustPressedTouchIDs(touches)
	for _, id := range touches {
		tx, ty := ebiten.TouchPosition(id)
		pos := Vec2{float64(tx), float64(ty)}
		s.processPointer(pos, isPointInside(pos, s.size), true, now)
	}

	cx, cy := ebiten.CursorPosition()
	pos := Vec2{float64(cx), float64(cy)}
	s.processPointer(pos, isPointInside(pos, s.size),
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft), now)
}

// processPointer applies one pointer sample. Outside the canvas the session
// leaves; inside it moves and, if pressed, clicks.
func (s *Scene) processPointer(pos Vec2, inside, pressed bool, now time.Time) {
	if !inside {
		s.session.Leave()
		return
	}
	s.session.Move(pos)
	if pressed {
		s.press(pos, now)
	}
}
