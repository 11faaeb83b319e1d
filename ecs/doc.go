// Package ecs provides ECS adapters for reel's scene event system.
//
// The primary adapter is [NewDonburiStore], which bridges reel scene events
// (pointer input, scene loads) into a [Donburi] world as typed events.
// Subscribe to [SceneEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	driver.SetEventSink(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
