package sparkle

import "testing"

func TestProcessPointer(t *testing.T) {
	opts := quietOptions()
	opts.Interactivity.Click = PointerEvent{Enable: true, Mode: ModeBubble}
	tests := []struct {
		name       string
		pos        Vec2
		inside     bool
		pressed    bool
		wantStatus PointerStatus
		wantClick  bool
	}{
		{"move", Vec2{10, 10}, true, false, PointerMove, false},
		{"press", Vec2{10, 10}, true, true, PointerMove, true},
		{"outside", Vec2{-1, 10}, false, false, PointerLeave, false},
		{"press outside", Vec2{-1, 10}, false, true, PointerLeave, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestScene(opts)
			s.processPointer(tt.pos, tt.inside, tt.pressed, testEpoch)
			if s.Session().Status != tt.wantStatus {
				t.Errorf("status = %v, want %v", s.Session().Status, tt.wantStatus)
			}
			if s.Session().Click.Active() != tt.wantClick {
				t.Errorf("click active = %v, want %v", s.Session().Click.Active(), tt.wantClick)
			}
		})
	}
}

func TestPressBothModes(t *testing.T) {
	opts := quietOptions()
	opts.Interactivity.Hover = PointerEvent{}
	opts.Interactivity.Click = PointerEvent{Enable: true, Mode: ModeBubble | ModeEmitter}
	opts.Interactivity.Emitters = []EmitterOptions{DefaultEmitterOptions()}
	s, _ := newTestScene(opts)
	store := &recordStore{}
	s.SetEventStore(store)

	s.press(Vec2{50, 50}, testEpoch)
	if s.Emitters().Len() != 1 {
		t.Errorf("emitters = %d, want 1", s.Emitters().Len())
	}
	if store.count(EventClickBubbleStart) != 1 || !s.Session().Click.Active() {
		t.Error("bubble should start alongside the emitter")
	}
}

func TestPressEmitterModeWithoutTemplates(t *testing.T) {
	s, _ := newTestScene(quietOptions())
	s.press(Vec2{50, 50}, testEpoch)
	if s.Emitters().Len() != 0 {
		t.Error("no templates should add no emitter")
	}
}
