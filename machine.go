package reel

import (
	"time"
	"unicode/utf8"

	"github.com/phanxgames/reel/internal/engine"
)

// StateMachine is an interactive driver for an artboard, instantiated from
// it. It holds a reference to the artboard (and transitively the file), so
// its parents outlive it.
type StateMachine struct {
	res *resource
	raw *engine.Machine
}

// NewStateMachine instantiates a state machine from the artboard for the
// handle. Artboards without state machines, out-of-range indices, and
// unknown names report absence with no allocation and no side effect.
func NewStateMachine(artboard *Artboard, handle Handle) (*StateMachine, bool) {
	var (
		raw *engine.Machine
		ok  bool
	)
	switch handle.kind {
	case handleDefault:
		raw, ok = artboard.raw.Machine(0)
	case handleIndex:
		raw, ok = artboard.raw.Machine(handle.index)
	case handleName:
		raw, ok = artboard.raw.MachineNamed(handle.name)
	}
	if !ok {
		return nil, false
	}
	return &StateMachine{
		res: newResource(artboard.res, raw.Release),
		raw: raw,
	}, true
}

// Clone returns a new reference to the same state machine instance.
func (m *StateMachine) Clone() *StateMachine {
	m.res.retain()
	return &StateMachine{res: m.res, raw: m.raw}
}

// Release drops this reference. After Release the StateMachine must not be
// used.
func (m *StateMachine) Release() {
	m.res.release()
}

// MachineScene is the [Scene] implementation for an artboard driven by a
// state machine: timed content with loop semantics, and pointer events
// routed into the machine's input queue.
type MachineScene struct {
	machine *StateMachine
}

// Machine returns the scene's state machine.
func (s *MachineScene) Machine() *StateMachine {
	return s.machine
}

// Width returns the driven artboard's intrinsic width.
func (s *MachineScene) Width() float64 {
	return s.machine.raw.Artboard().Width()
}

// Height returns the driven artboard's intrinsic height.
func (s *MachineScene) Height() float64 {
	return s.machine.raw.Artboard().Height()
}

// Name returns the state machine's identifier, or ErrInvalidName when the
// asset bytes are not valid UTF-8.
func (s *MachineScene) Name() (string, error) {
	name := s.machine.raw.Name()
	if !utf8.ValidString(name) {
		return "", ErrInvalidName
	}
	return name, nil
}

// Loop returns the loop mode of the machine's current state.
func (s *MachineScene) Loop() Loop {
	return Loop(s.machine.raw.Loop())
}

// IsTranslucent reports false; machine-driven artboards composite opaquely.
func (s *MachineScene) IsTranslucent() bool {
	return false
}

// Duration returns the natural playback length of the machine's current
// state, absent for untimed states.
func (s *MachineScene) Duration() (time.Duration, bool) {
	seconds, ok := s.machine.raw.Duration()
	if !ok {
		return 0, false
	}
	return time.Duration(seconds * float64(time.Second)), true
}

// PointerDown maps the surface point into content space through the
// viewport's cached inverse view transform and queues it on the machine.
func (s *MachineScene) PointerDown(x, y float64, viewport *Viewport) {
	cx, cy := viewport.toContent(x, y)
	s.machine.raw.PointerDown(cx, cy)
}

// PointerMove maps and queues a pointer move.
func (s *MachineScene) PointerMove(x, y float64, viewport *Viewport) {
	cx, cy := viewport.toContent(x, y)
	s.machine.raw.PointerMove(cx, cy)
}

// PointerUp maps and queues a pointer release.
func (s *MachineScene) PointerUp(x, y float64, viewport *Viewport) {
	cx, cy := viewport.toContent(x, y)
	s.machine.raw.PointerUp(cx, cy)
}

// AdvanceAndApply consumes queued pointer input and integrates elapsed time
// into the machine, posing the artboard. It reports whether visual state
// changed.
func (s *MachineScene) AdvanceAndApply(elapsed time.Duration) bool {
	return s.machine.raw.Advance(elapsed.Seconds())
}

// Draw emits the driven artboard's current state into the renderer.
func (s *MachineScene) Draw(renderer Renderer) {
	drawArtboard(s.machine.raw.Artboard(), renderer)
}

// AdvanceAndMaybeDraw recomputes and caches the view transform, advances,
// and draws under it. See Scene.
func (s *MachineScene) AdvanceAndMaybeDraw(renderer Renderer, elapsed time.Duration, viewport *Viewport) bool {
	return advanceAndMaybeDraw(s, renderer, elapsed, viewport)
}

// Release drops the scene's reference to its state machine.
func (s *MachineScene) Release() {
	s.machine.Release()
}
