package reel

import (
	"errors"
	"time"
	"unicode/utf8"

	"github.com/phanxgames/reel/internal/engine"
)

// ErrInvalidName reports that an object's name bytes in the asset are not
// valid UTF-8. The object exists and remains usable; only the name accessor
// fails.
var ErrInvalidName = errors.New("reel: component name is not valid UTF-8")

// Artboard is a named drawable region instantiated from a [File]. It holds
// a reference to the file that produced it, so the file outlives it. An
// Artboard is itself a [Scene]: static content, one-shot, no duration.
type Artboard struct {
	res *resource
	raw *engine.Artboard
}

// NewArtboard instantiates an artboard from the file for the handle.
// Default resolves the first artboard; out-of-range indices and unknown
// names report absence with no allocation and no side effect.
func NewArtboard(file *File, handle Handle) (*Artboard, bool) {
	var (
		raw *engine.Artboard
		ok  bool
	)
	switch handle.kind {
	case handleDefault:
		raw, ok = file.raw.Artboard(0)
	case handleIndex:
		raw, ok = file.raw.Artboard(handle.index)
	case handleName:
		raw, ok = file.raw.ArtboardNamed(handle.name)
	}
	if !ok {
		return nil, false
	}
	return &Artboard{
		res: newResource(file.res, raw.Release),
		raw: raw,
	}, true
}

// Clone returns a new reference to the same artboard instance.
func (a *Artboard) Clone() *Artboard {
	a.res.retain()
	return &Artboard{res: a.res, raw: a.raw}
}

// Release drops this reference. After Release the Artboard must not be used.
func (a *Artboard) Release() {
	a.res.release()
}

// Width returns the artboard's intrinsic width.
func (a *Artboard) Width() float64 {
	return a.raw.Width()
}

// Height returns the artboard's intrinsic height.
func (a *Artboard) Height() float64 {
	return a.raw.Height()
}

// Name returns the artboard's identifier, or ErrInvalidName when the asset
// bytes are not valid UTF-8.
func (a *Artboard) Name() (string, error) {
	name := a.raw.Name()
	if !utf8.Valid(name) {
		return "", ErrInvalidName
	}
	return string(name), nil
}

// Loop always reports one-shot: a bare artboard has no timed content.
func (a *Artboard) Loop() Loop {
	return LoopOneShot
}

// IsTranslucent reports false for a bare artboard.
func (a *Artboard) IsTranslucent() bool {
	return false
}

// Duration reports no duration: a bare artboard's content is static.
func (a *Artboard) Duration() (time.Duration, bool) {
	return 0, false
}

// PointerDown is a no-op: a bare artboard has no pointer targets.
func (a *Artboard) PointerDown(x, y float64, viewport *Viewport) {}

// PointerMove is a no-op: a bare artboard has no pointer targets.
func (a *Artboard) PointerMove(x, y float64, viewport *Viewport) {}

// PointerUp is a no-op: a bare artboard has no pointer targets.
func (a *Artboard) PointerUp(x, y float64, viewport *Viewport) {}

// AdvanceAndApply advances the artboard's layout. It returns true
// unconditionally so drivers relying on the advisory return still redraw
// static content.
func (a *Artboard) AdvanceAndApply(elapsed time.Duration) bool {
	a.raw.Advance(elapsed.Seconds())
	return true
}

// Draw emits the artboard's current state into the renderer, bracketed by
// its own push/pop pair.
func (a *Artboard) Draw(renderer Renderer) {
	drawArtboard(a.raw, renderer)
}

// AdvanceAndMaybeDraw recomputes and caches the view transform, advances,
// and draws under it. See Scene.
func (a *Artboard) AdvanceAndMaybeDraw(renderer Renderer, elapsed time.Duration, viewport *Viewport) bool {
	return advanceAndMaybeDraw(a, renderer, elapsed, viewport)
}

// drawArtboard runs an engine artboard's draw through a renderer, bracketed
// so it composes under any outer transform.
func drawArtboard(raw *engine.Artboard, renderer Renderer) {
	renderer.StatePush()
	defer renderer.StatePop()
	raw.Draw(sinkAdapter{renderer})
}

// advanceAndMaybeDraw is the shared combined per-frame operation. Ordering
// is load-bearing: the inverse view transform is stored on the viewport
// before the advance, because the advance may consume pointer input queued
// against the previous frame's mapping and must leave the current one in
// place for the next events.
func advanceAndMaybeDraw(s Scene, renderer Renderer, elapsed time.Duration, viewport *Viewport) bool {
	sw, sh := viewport.Size()
	forward := viewTransform(s.Width(), s.Height(), float64(sw), float64(sh))
	viewport.setInverseView(invertAffine(forward))

	s.AdvanceAndApply(elapsed)

	renderer.StatePush()
	renderer.Transform(forward)
	s.Draw(renderer)
	renderer.StatePop()

	return true
}

// sinkAdapter bridges the engine's draw sink onto the Renderer capability.
type sinkAdapter struct {
	r Renderer
}

func (s sinkAdapter) StatePush()             { s.r.StatePush() }
func (s sinkAdapter) StatePop()              { s.r.StatePop() }
func (s sinkAdapter) Transform(m [6]float64) { s.r.Transform(m) }

func (s sinkAdapter) FillPath(path *engine.Path, color engine.Color) {
	s.r.FillPath(adaptPath(path), Paint{Color: Color(color)})
}

// adaptPath re-slices engine geometry into the public Path form. The verb
// and point encodings match one to one.
func adaptPath(p *engine.Path) *Path {
	out := &Path{
		Verbs:  make([]PathVerb, len(p.Verbs)),
		Points: make([]Vec2, len(p.Points)),
	}
	for i, v := range p.Verbs {
		out.Verbs[i] = PathVerb(v)
	}
	for i, pt := range p.Points {
		out.Points[i] = Vec2{pt.X, pt.Y}
	}
	return out
}
