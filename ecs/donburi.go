package ecs

import (
	"github.com/phanxgames/reel"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SceneEventType is the Donburi event type for reel scene events.
// Subscribe to this in your ECS systems to receive pointer and scene-load
// events.
var SceneEventType = events.NewEventType[reel.SceneEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventSink backed by a Donburi world.
// Scene events are published to SceneEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) reel.EventSink {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event reel.SceneEvent) {
	SceneEventType.Publish(s.world, event)
}
