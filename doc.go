// Package sparkle is an interactive particle field for [Ebitengine].
//
// A [Scene] holds a capped population of moving particles, a set of timed
// emitters that spawn batches of particles, and a pointer session. Each frame
// the scene fires due emitter timers, moves particles, and applies the bubble
// effect: particles near the pointer grow, fade or recolor, and revert when
// the pointer moves away.
//
// # Quick start
//
//	scene := sparkle.NewScene(sparkle.SceneConfig{
//		Width: 800, Height: 600,
//		Options: sparkle.DefaultOptions(),
//	})
//	if err := sparkle.Run(scene, sparkle.RunConfig{
//		Title: "Sparkle", Width: 800, Height: 600,
//	}); err != nil {
//		log.Fatal(err)
//	}
//
// To drive the scene from your own [ebiten.Game], call [Scene.Update] and
// [Scene.Draw] directly. Real input is only read under [Run]; otherwise feed
// the pointer with [Scene.InjectMove], [Scene.InjectClick] and friends.
//
// # Bubbles
//
// Hover bubbles scale each in-range particle toward the configured size and
// opacity in proportion to its closeness to the pointer. Click bubbles ramp
// toward the target over [BubbleOptions.Duration] with a [gween] easing
// function, hold, and clear after twice the duration. Hover takes priority
// when both are bound to [ModeBubble].
//
// # Emitters
//
// An [Emitter] spawns [EmitterRate.Quantity] particles every
// [EmitterRate.Delay]. With a finite [EmitterLife.Count] it dies after each
// [EmitterLife.Duration], moves to a new random position, waits
// [EmitterLife.Delay] and plays again until its lives run out. Timers run on
// the scene's [Clock]; use [ManualClock] for deterministic tests.
//
// Lifecycle events can be forwarded to a Donburi world with the adapter in
// sparkle/ecs.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package sparkle
