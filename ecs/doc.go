// Package ecs bridges sparkle lifecycle events into a [Donburi] world.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEventStore(store)
//
//	ecs.LifecycleEventType.Subscribe(world, func(w donburi.World, e sparkle.Event) {
//		// react to e.Type
//	})
//
// Call [events.ProcessAllEvents] or LifecycleEventType.ProcessEvents once per
// frame to deliver queued events.
//
// [Donburi]: https://github.com/yohamta/donburi
// [events.ProcessAllEvents]: https://pkg.go.dev/github.com/yohamta/donburi/features/events#ProcessAllEvents
package ecs
