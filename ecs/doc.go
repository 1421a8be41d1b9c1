// Package ecs provides ECS adapters for glide's gesture events.
//
// The primary adapter is [NewDonburiSink], which bridges glide gestures
// (tap, double tap, pan, zoom) into a [Donburi] world as typed events.
// Subscribe to [GestureEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	shell.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
