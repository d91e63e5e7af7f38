// Package ecs connects an evergreen scene to a [Donburi] world.
//
// [NewDonburiSignal] returns an [evergreen.Signal] driven by
// [ArrangementEventType] events, so ECS systems can assemble or scatter the
// tree by publishing an event:
//
//	sig := ecs.NewDonburiSignal(world)
//	scene.SetSignal(sig)
//	...
//	ecs.Publish(world, evergreen.Scattered)
//	events.ProcessAllEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
