package engine

import (
	"math"
	"sync/atomic"
)

// File owns the fully parsed asset. It is immutable after Decode; artboard
// instantiation copies per-instance state out of it.
type File struct {
	artboards []ArtboardSpec
	released  atomic.Bool
}

// Release tears the file down. Calling it twice panics: a file is destroyed
// exactly once, and the wrapper layer's reference counting guarantees no
// artboard derived from it is still alive.
func (f *File) Release() {
	if f.released.Swap(true) {
		panic("engine: file released twice")
	}
	liveFiles.Add(-1)
}

// Released reports whether Release has run. Test hook.
func (f *File) Released() bool { return f.released.Load() }

// ArtboardCount returns the number of artboards in the file.
func (f *File) ArtboardCount() int { return len(f.artboards) }

// Artboard instantiates the artboard at index. Out-of-range indices report
// absence.
func (f *File) Artboard(index int) (*Artboard, bool) {
	if index < 0 || index >= len(f.artboards) {
		return nil, false
	}
	return newArtboard(&f.artboards[index]), true
}

// ArtboardNamed instantiates the artboard with an exactly matching name.
func (f *File) ArtboardNamed(name string) (*Artboard, bool) {
	for i := range f.artboards {
		if f.artboards[i].Name == name {
			return newArtboard(&f.artboards[i]), true
		}
	}
	return nil, false
}

// shapeState is the per-instance animated pose of one shape.
type shapeState struct {
	tx, ty  float64
	rot     float64
	scale   float64
	opacity float64
}

// Artboard is a live instance: immutable definition plus mutable pose.
type Artboard struct {
	def      *ArtboardSpec
	shapes   []shapeState
	released atomic.Bool
}

func newArtboard(def *ArtboardSpec) *Artboard {
	a := &Artboard{
		def:    def,
		shapes: make([]shapeState, len(def.Shapes)),
	}
	for i := range a.shapes {
		a.shapes[i].scale = 1
		a.shapes[i].opacity = 1
	}
	liveArtboards.Add(1)
	return a
}

// Release tears the instance down. Exactly once.
func (a *Artboard) Release() {
	if a.released.Swap(true) {
		panic("engine: artboard released twice")
	}
	liveArtboards.Add(-1)
}

// Released reports whether Release has run. Test hook.
func (a *Artboard) Released() bool { return a.released.Load() }

// Name returns the artboard's raw name bytes. The bytes come straight from
// the asset and may not be valid UTF-8.
func (a *Artboard) Name() []byte { return []byte(a.def.Name) }

// Width returns the artboard's intrinsic width.
func (a *Artboard) Width() float64 { return a.def.Width }

// Height returns the artboard's intrinsic height.
func (a *Artboard) Height() float64 { return a.def.Height }

// AnimationCount returns the number of animations defined on the artboard.
func (a *Artboard) AnimationCount() int { return len(a.def.Animations) }

// MachineCount returns the number of state machines defined on the artboard.
func (a *Artboard) MachineCount() int { return len(a.def.Machines) }

// Machine instantiates the state machine at index against this artboard.
func (a *Artboard) Machine(index int) (*Machine, bool) {
	if index < 0 || index >= len(a.def.Machines) {
		return nil, false
	}
	return newMachine(a, &a.def.Machines[index]), true
}

// MachineNamed instantiates the state machine with an exactly matching name.
func (a *Artboard) MachineNamed(name string) (*Machine, bool) {
	for i := range a.def.Machines {
		if a.def.Machines[i].Name == name {
			return newMachine(a, &a.def.Machines[i]), true
		}
	}
	return nil, false
}

// Advance integrates elapsed seconds into the artboard's layout. A bare
// artboard has no animation driving it, so its pose is static; the call
// exists because a state machine's apply step runs through it.
func (a *Artboard) Advance(elapsed float64) {
	_ = elapsed
}

// applyAnimation poses all shapes from the animation's tracks at time t.
func (a *Artboard) applyAnimation(anim *AnimationSpec, t float64) {
	for i := range a.shapes {
		a.shapes[i] = shapeState{scale: 1, opacity: 1}
	}
	for _, tr := range anim.Tracks {
		v := evalTrack(&tr, t, anim.Duration)
		s := &a.shapes[tr.Shape]
		switch tr.Property {
		case PropTranslateX:
			s.tx = v
		case PropTranslateY:
			s.ty = v
		case PropRotate:
			s.rot = v
		case PropScale:
			s.scale = v
		case PropOpacity:
			s.opacity = clamp01(v)
		}
	}
}

// Contains reports whether the content-space point lies inside the
// artboard's bounds. Used for pointer hit testing.
func (a *Artboard) Contains(x, y float64) bool {
	return x >= 0 && x <= a.def.Width && y >= 0 && y <= a.def.Height
}

// Draw emits one fill per shape into the sink, each bracketed by a
// push/pop pair carrying the shape's posed transform.
func (a *Artboard) Draw(sink DrawSink) {
	for i := range a.def.Shapes {
		shape := &a.def.Shapes[i]
		state := &a.shapes[i]

		sink.StatePush()
		sink.Transform(shapeTransform(shape, state))

		fill := shape.Fill
		fill.A *= state.opacity
		sink.FillPath(&a.def.Shapes[i].Path, fill)

		sink.StatePop()
	}
}

// shapeTransform composes translate(base + animated) * rotate * scale.
func shapeTransform(shape *ShapeSpec, state *shapeState) [6]float64 {
	sin, cos := math.Sincos(state.rot)
	s := state.scale
	return [6]float64{
		cos * s, sin * s,
		-sin * s, cos * s,
		shape.X + state.tx, shape.Y + state.ty,
	}
}
