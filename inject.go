package sparkle

import "time"

// syntheticPointerEvent is a single injected pointer sample in canvas
// coordinates.
type syntheticPointerEvent struct {
	x, y    float64
	leave   bool
	pressed bool
}

// InjectMove queues a pointer move to (x, y). The event is consumed on the
// next frame's input pass.
func (s *Scene) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectLeave queues the pointer leaving the canvas.
func (s *Scene) InjectLeave() {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{leave: true})
}

// InjectClick queues a move to (x, y) with the button pressed. Consumes one
// frame.
func (s *Scene) InjectClick(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectPath queues moves linearly interpolated from (fromX, fromY) to
// (toX, toY) over frames frames, both ends included. Minimum frames is 2.
func (s *Scene) InjectPath(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
}

// processInjectedInput pops one event from the inject queue and applies it.
// Returns true if an event was consumed (real input should be skipped).
func (s *Scene) processInjectedInput(now time.Time) bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	pos := Vec2{evt.x, evt.y}
	s.processPointer(pos, !evt.leave && isPointInside(pos, s.size), evt.pressed, now)
	return true
}
