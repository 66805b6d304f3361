package sparkle

// EventStore receives lifecycle events. When set on a Scene, emitter and
// click-bubble transitions are forwarded to it.
type EventStore interface {
	EmitEvent(event Event)
}

// EventType identifies a lifecycle event.
type EventType uint8

const (
	EventEmitterAdded     EventType = iota // an emitter was registered
	EventEmitterPlay                       // an emitter started its spawn timer
	EventEmitterPause                      // an emitter cancelled its spawn timer
	EventEmitterLifeLost                   // an emitter finished one life cycle
	EventEmitterRemoved                    // an emitter was deregistered
	EventParticlesEmitted                  // an emitter spawned a batch
	EventClickBubbleStart                  // a click started a bubble
	EventClickBubblePeak                   // a click bubble reached its duration
	EventClickBubbleEnd                    // a click bubble retired
)

// String returns a short name for the event type.
func (t EventType) String() string {
	switch t {
	case EventEmitterAdded:
		return "emitter-added"
	case EventEmitterPlay:
		return "emitter-play"
	case EventEmitterPause:
		return "emitter-pause"
	case EventEmitterLifeLost:
		return "emitter-life-lost"
	case EventEmitterRemoved:
		return "emitter-removed"
	case EventParticlesEmitted:
		return "particles-emitted"
	case EventClickBubbleStart:
		return "click-bubble-start"
	case EventClickBubblePeak:
		return "click-bubble-peak"
	case EventClickBubbleEnd:
		return "click-bubble-end"
	default:
		return "unknown"
	}
}

// Event carries lifecycle data for an EventStore.
type Event struct {
	Type EventType
	// EmitterID is set for emitter events.
	EmitterID uint32
	// X, Y is the emitter position or click position.
	X, Y float64
	// Count is the batch size for EventParticlesEmitted.
	Count int
	// RemainingLife is the emitter's life count after the event.
	RemainingLife int
}

// eventSink forwards to an optional store.
type eventSink struct {
	store EventStore
}

func (s *eventSink) emit(e Event) {
	if s.store != nil {
		s.store.EmitEvent(e)
	}
}
