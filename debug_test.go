package sparkle

import (
	"fmt"
	"testing"
	"time"
)

func TestDebugfNoOpWhenDisabled(t *testing.T) {
	s, _ := newTestScene(quietOptions())
	// Must not panic or print.
	s.debugf("test %d", 1)
	s.debugLog()
}

func TestEmittersLogLifecycleInDebugMode(t *testing.T) {
	f := newEmitterFixture()
	var lines []string
	f.emitters.logf = func(format string, args ...any) {
		lines = append(lines, fmt.Sprintf(format, args...))
	}
	opts := DefaultEmitterOptions()
	opts.Life = EmitterLife{Count: 1, Duration: Some(200 * time.Millisecond)}
	f.emitters.Add(opts)
	f.advance(time.Second)

	// added, play, pause, life lost, removed; emitted batches are not logged.
	if len(lines) != 5 {
		t.Errorf("logged %d lines, want 5: %q", len(lines), lines)
	}
}

func TestEventTypeString(t *testing.T) {
	tests := []struct {
		t    EventType
		want string
	}{
		{EventEmitterAdded, "emitter-added"},
		{EventEmitterLifeLost, "emitter-life-lost"},
		{EventParticlesEmitted, "particles-emitted"},
		{EventClickBubbleEnd, "click-bubble-end"},
		{EventType(200), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.t.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.t, got, tt.want)
		}
	}
}

func TestManualClock(t *testing.T) {
	c := NewManualClock(testEpoch)
	c.Advance(time.Second)
	if !c.Now().Equal(testEpoch.Add(time.Second)) {
		t.Errorf("Now = %v", c.Now())
	}
	c.Set(testEpoch)
	if !c.Now().Equal(testEpoch) {
		t.Errorf("Now after Set = %v", c.Now())
	}
}
