// Package reel loads and drives interactive vector-animation artboards for
// [Ebitengine].
//
// Reel parses binary reel assets into a [File], instantiates named or
// indexed [Artboard] and [StateMachine] objects from it, and exposes both
// behind the uniform [Scene] interface that a host advances in time, feeds
// pointer input to, and draws every frame.
//
// # Quick start
//
// The simplest host is [Driver], which wraps the whole frame loop:
//
//	scene, ok := reel.LoadScene(assetBytes)
//	if !ok {
//		log.Fatal("unusable asset")
//	}
//	driver := reel.NewDriver(reel.Config{Title: "My player"})
//	driver.SetScene(scene)
//	if err := driver.Run(); err != nil {
//		log.Fatal(err)
//	}
//
// For full control, implement [ebiten.Game] yourself: resize a [Viewport]
// from your layout callback, forward pointer events to the scene, and call
// [Scene.AdvanceAndMaybeDraw] each frame with a [Renderer] — the built-in
// [Recorder] for a backend-agnostic command stream, or [ImageRenderer] to
// rasterize straight into an *ebiten.Image.
//
// # Instantiation and ownership
//
// Objects are resolved from their parent with a [Handle] ([Default],
// [ByIndex], [ByName]); a handle that resolves nothing reports absence via
// comma-ok, never an error. Every derived object holds a reference to its
// parent, so a File outlives its Artboards and an Artboard outlives its
// StateMachines. References are explicit: wrappers are shareable across
// goroutines via Clone, and each must be Released; the engine-side resource
// is destroyed exactly once when the last reference goes.
//
// Fall back to the bare artboard when an asset has no state machine:
//
//	scene, ok := reel.NewScene(artboard, reel.Default())
//	if !ok {
//		scene = artboard
//	}
//
// [Ebitengine]: https://ebitengine.org
package reel
