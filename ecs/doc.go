// Package ecs bridges willowpick picks into a [Donburi] world.
//
// Attach the observer to a dispatcher and subscribe to [PickEventType]:
//
//	obs := ecs.NewDonburiObserver(world)
//	scene.AddEventHandler(willowpick.NewPickDispatcher(action, willowpick.WithObserver(obs)))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
