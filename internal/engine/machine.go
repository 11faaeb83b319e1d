package engine

import "sync/atomic"

// pointerPhase identifies a queued pointer event's kind.
type pointerPhase uint8

const (
	pointerDown pointerPhase = iota
	pointerMove
	pointerUp
)

type pointerInput struct {
	phase pointerPhase
	x, y  float64
}

// Machine drives an artboard through a state machine. Each state references
// one of the artboard's animations; a pointer press inside the artboard
// advances to the next state. Pointer events are queued and consumed at the
// start of the next Advance, so input observed late in a frame takes effect
// with the following frame's time step.
type Machine struct {
	def      *MachineSpec
	art      *Artboard
	state    int
	time     float64
	queue    []pointerInput
	released atomic.Bool
}

func newMachine(art *Artboard, def *MachineSpec) *Machine {
	liveMachines.Add(1)
	return &Machine{def: def, art: art}
}

// Release tears the machine down. Exactly once.
func (m *Machine) Release() {
	if m.released.Swap(true) {
		panic("engine: machine released twice")
	}
	liveMachines.Add(-1)
}

// Released reports whether Release has run. Test hook.
func (m *Machine) Released() bool { return m.released.Load() }

// Name returns the machine's identifier.
func (m *Machine) Name() string { return m.def.Name }

// Artboard returns the artboard instance this machine drives.
func (m *Machine) Artboard() *Artboard { return m.art }

// StateIndex returns the index of the current state. Test hook.
func (m *Machine) StateIndex() int { return m.state }

// animation returns the current state's animation, or nil when the machine
// has no states.
func (m *Machine) animation() *AnimationSpec {
	if len(m.def.States) == 0 {
		return nil
	}
	return &m.art.def.Animations[m.def.States[m.state]]
}

// Loop returns the current state's loop mode. A machine with no states
// reports one-shot.
func (m *Machine) Loop() Loop {
	if anim := m.animation(); anim != nil {
		return anim.Loop
	}
	return LoopOneShot
}

// Duration returns the current state's natural playback length in seconds.
// The second return is false when the machine has no timed content.
func (m *Machine) Duration() (float64, bool) {
	anim := m.animation()
	if anim == nil || anim.Duration <= 0 {
		return 0, false
	}
	return anim.Duration, true
}

// PointerDown queues a press at the content-space point (x, y).
func (m *Machine) PointerDown(x, y float64) {
	m.queue = append(m.queue, pointerInput{pointerDown, x, y})
}

// PointerMove queues a pointer move at the content-space point (x, y).
func (m *Machine) PointerMove(x, y float64) {
	m.queue = append(m.queue, pointerInput{pointerMove, x, y})
}

// PointerUp queues a release at the content-space point (x, y).
func (m *Machine) PointerUp(x, y float64) {
	m.queue = append(m.queue, pointerInput{pointerUp, x, y})
}

// Advance consumes queued pointer input, integrates elapsed seconds into the
// current state's animation, and poses the artboard. It reports whether the
// artboard's visual state changed.
func (m *Machine) Advance(elapsed float64) bool {
	changed := false

	for _, in := range m.queue {
		if in.phase == pointerDown && m.art.Contains(in.x, in.y) && len(m.def.States) > 1 {
			m.state = (m.state + 1) % len(m.def.States)
			m.time = 0
			changed = true
		}
	}
	m.queue = m.queue[:0]

	anim := m.animation()
	if anim == nil {
		return changed
	}

	before := foldTime(m.time, anim.Duration, anim.Loop)
	m.time += elapsed
	after := foldTime(m.time, anim.Duration, anim.Loop)
	if after != before {
		changed = true
	}

	m.art.applyAnimation(anim, after)
	m.art.Advance(elapsed)
	return changed
}
