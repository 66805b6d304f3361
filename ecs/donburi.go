package ecs

import (
	"github.com/phanxgames/sparkle"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// LifecycleEventType is the Donburi event type for sparkle lifecycle events.
// Subscribe to it to observe emitters being added, playing, pausing, losing
// lives and being removed, and click bubbles starting, peaking and ending.
var LifecycleEventType = events.NewEventType[sparkle.Event]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world. Events
// are queued on LifecycleEventType until ProcessEvents runs.
func NewDonburiStore(world donburi.World) sparkle.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event sparkle.Event) {
	LifecycleEventType.Publish(s.world, event)
}
