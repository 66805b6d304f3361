package sparkle

import "time"

// PointerStatus is the pointer's last movement state.
type PointerStatus uint8

const (
	PointerLeave PointerStatus = iota // pointer is outside the canvas
	PointerMove                       // pointer is moving over the canvas
)

// ClickPhase is the lifecycle of a click bubble.
type ClickPhase uint8

const (
	ClickIdle   ClickPhase = iota // no click bubble is live
	ClickActive                   // ramping toward the bubble target
	ClickPeaked                   // duration elapsed, overlays revert until retired
)

// ClickState tracks a live click bubble. Peaked implies active, so a peaked
// bubble can never outlive its click.
type ClickState struct {
	Phase ClickPhase
	// Since is the click timestamp.
	Since time.Time
}

// Active reports whether a click bubble is live (ramping or peaked).
func (c ClickState) Active() bool {
	return c.Phase != ClickIdle
}

// Peaked reports whether the bubble's duration has elapsed.
func (c ClickState) Peaked() bool {
	return c.Phase == ClickPeaked
}

// Session is the pointer state shared between input handling and the
// Bubbler. It is written by input each frame and by the Bubbler when a click
// bubble peaks or retires.
type Session struct {
	HoverPosition Optional[Vec2]
	ClickPosition Optional[Vec2]
	Status        PointerStatus
	Click         ClickState
}

// Move records the pointer moving over the canvas at pos.
func (s *Session) Move(pos Vec2) {
	s.HoverPosition.Set(pos)
	s.Status = PointerMove
}

// Leave records the pointer leaving the canvas. Only the hover position is
// dropped; a live click bubble runs until its decay window elapses.
func (s *Session) Leave() {
	s.HoverPosition.Clear()
	s.Status = PointerLeave
}

// Press records a click at pos and starts a new click bubble, replacing any
// bubble still live.
func (s *Session) Press(pos Vec2, now time.Time) {
	s.ClickPosition.Set(pos)
	s.Click = ClickState{Phase: ClickActive, Since: now}
}
