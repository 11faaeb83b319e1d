package reel

import "time"

// Scene is the polymorphic role a drawable, advanceable object fulfills:
// a bare [Artboard] or a state-machine-driven artboard both implement it.
// A host advances a Scene in time, feeds it pointer input, and draws it
// every frame through a [Renderer].
//
// Recover a concrete kind with a plain type assertion when host code needs
// one (scene.(*Artboard), scene.(*MachineScene)); nothing internal relies
// on the dynamic type.
type Scene interface {
	// Width returns the content's intrinsic width, constant after load.
	Width() float64
	// Height returns the content's intrinsic height, constant after load.
	Height() float64
	// Name returns the object's identifier. It returns ErrInvalidName when
	// the underlying asset bytes are not valid UTF-8; the object itself is
	// still usable.
	Name() (string, error)
	// Loop returns the playback policy of the scene's timed content.
	Loop() Loop
	// IsTranslucent is a compositing hint for the host.
	IsTranslucent() bool
	// Duration returns the content's natural playback length. The second
	// return is false for indeterminate or static content.
	Duration() (time.Duration, bool)

	// PointerDown dispatches a press at surface pixel (x, y). The scene
	// maps the point into content space through the viewport's cached
	// inverse view transform.
	PointerDown(x, y float64, viewport *Viewport)
	// PointerMove dispatches a pointer move at surface pixel (x, y).
	PointerMove(x, y float64, viewport *Viewport)
	// PointerUp dispatches a release at surface pixel (x, y).
	PointerUp(x, y float64, viewport *Viewport)

	// AdvanceAndApply integrates elapsed time into the scene's animation
	// and state-machine state. The return reports whether visual state
	// changed, advisorily: implementations may return true unconditionally,
	// so a false return must not be taken as "no redraw needed".
	AdvanceAndApply(elapsed time.Duration) bool
	// Draw emits the scene's current state into the renderer. The call
	// brackets its own drawing with StatePush/StatePop, so it composes
	// under any outer transform the caller has applied.
	Draw(renderer Renderer)
	// AdvanceAndMaybeDraw is the per-frame combined operation: it
	// recomputes the view transform from the viewport's current size and
	// the scene's intrinsic size, stores the inverse on the viewport,
	// advances, then draws under the view transform. The transform is
	// stored before the advance, so state reacting to queued pointer input
	// uses the mapping of the frame being produced.
	AdvanceAndMaybeDraw(renderer Renderer, elapsed time.Duration, viewport *Viewport) bool

	// Release drops this scene's reference to its engine resources.
	// After Release the scene must not be used.
	Release()
}

// NewScene instantiates a state-machine-backed scene from the artboard and
// handle, resolving the handle against the artboard's state machines.
// Absence (no machine for the handle) reports ok == false and allocates
// nothing.
//
// The usual caller policy is a fallback chain: prefer the machine-backed
// scene and fall back to the bare artboard, which is itself a Scene.
//
//	scene, ok := reel.NewScene(artboard, reel.Default())
//	if !ok {
//		scene = artboard
//	}
func NewScene(artboard *Artboard, handle Handle) (Scene, bool) {
	machine, ok := NewStateMachine(artboard, handle)
	if !ok {
		return nil, false
	}
	return &MachineScene{machine: machine}, true
}

// LoadScene is the full instantiation chain used by hosts loading an asset
// byte buffer: default file, default artboard, then the machine-backed
// scene with the bare-artboard fallback. Intermediate wrappers are released
// once the resulting scene holds its own references, so releasing the
// returned scene releases everything the load created.
func LoadScene(data []byte) (Scene, bool) {
	file, ok := LoadFile(data)
	if !ok {
		return nil, false
	}
	defer file.Release()

	artboard, ok := NewArtboard(file, Default())
	if !ok {
		return nil, false
	}

	scene, ok := NewScene(artboard, Default())
	if !ok {
		return artboard, true
	}
	artboard.Release()
	return scene, true
}
