package ecs

import (
	"github.com/phanxgames/willowpick"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// PickEventType is the Donburi event type for dispatched picks.
// Subscribe to this in your ECS systems to react to picks.
var PickEventType = events.NewEventType[willowpick.PickEvent]()

type donburiObserver struct {
	world donburi.World
}

// NewDonburiObserver creates a PickObserver backed by a Donburi world.
// Picks are published to PickEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiObserver(world donburi.World) willowpick.PickObserver {
	return &donburiObserver{world: world}
}

func (o *donburiObserver) ObservePick(e willowpick.PickEvent) {
	PickEventType.Publish(o.world, e)
}
