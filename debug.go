package sparkle

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-frame counters. Only populated in debug mode.
type debugStats struct {
	updateTime  time.Duration
	drawTime    time.Duration
	timersFired int
	drawn       int
}

// SetDebugMode toggles debug logging. When on, emitter lifecycle changes,
// color conversion failures and per-frame timings are written to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	var logf func(string, ...any)
	if enabled {
		logf = s.debugf
	}
	s.population.logf = logf
	s.emitters.logf = logf
}

// debugf prints a debug line to stderr. No-op outside debug mode.
func (s *Scene) debugf(format string, args ...any) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[sparkle] "+format+"\n", args...)
}

// warnf prints a warning to stderr regardless of debug mode.
func (s *Scene) warnf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[sparkle] "+format+"\n", args...)
}

// debugLog prints the last frame's stats.
func (s *Scene) debugLog() {
	if !s.debug {
		return
	}
	st := s.stats
	s.debugf("update: %v | draw: %v | timers: %d | particles: %d/%d | emitters: %d",
		st.updateTime, st.drawTime, st.timersFired, st.drawn, s.population.Cap(), s.emitters.Len())
}
