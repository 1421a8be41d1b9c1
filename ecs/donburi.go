// Package ecs provides ECS adapters for glide.
package ecs

import (
	"github.com/phanxgames/glide"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GestureEventType is the Donburi event type for glide gestures.
// Subscribe to this in your ECS systems to receive taps, pans and zooms.
var GestureEventType = events.NewEventType[glide.GestureEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Gestures are published to GestureEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) glide.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitGesture(event glide.GestureEvent) {
	GestureEventType.Publish(s.world, event)
}
