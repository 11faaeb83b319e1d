// Package engine is the wrapped animation runtime: it parses binary reel
// assets and evaluates artboard shapes, animations, and state machines.
//
// Engine objects carry explicit destructors and live-object accounting,
// mirroring a runtime whose resources live outside Go's collector. They are
// reached only through the instantiation calls on File and Artboard; callers
// are expected to serialize access to a given resource tree.
package engine

import "sync/atomic"

// Loop selects how an animation replays once its duration is exhausted.
type Loop uint8

const (
	LoopOneShot Loop = iota
	LoopLoop
	LoopPingPong
)

// Property identifies which shape attribute a keyframe track animates.
type Property uint8

const (
	PropTranslateX Property = iota
	PropTranslateY
	PropRotate
	PropScale
	PropOpacity
)

// Color is an RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

// PathVerb identifies a path segment kind.
type PathVerb uint8

const (
	VerbMove PathVerb = iota
	VerbLine
	VerbQuad
	VerbCubic
	VerbClose
)

// Point is a path control point in artboard space.
type Point struct {
	X, Y float64
}

// pointsFor returns how many control points a verb consumes.
func pointsFor(v PathVerb) int {
	switch v {
	case VerbMove, VerbLine:
		return 1
	case VerbQuad:
		return 2
	case VerbCubic:
		return 3
	default:
		return 0
	}
}

// Path is a sequence of verbs and their control points.
type Path struct {
	Verbs  []PathVerb
	Points []Point
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) *Path {
	p.Verbs = append(p.Verbs, VerbMove)
	p.Points = append(p.Points, Point{x, y})
	return p
}

// LineTo adds a line segment to (x, y).
func (p *Path) LineTo(x, y float64) *Path {
	p.Verbs = append(p.Verbs, VerbLine)
	p.Points = append(p.Points, Point{x, y})
	return p
}

// QuadTo adds a quadratic segment through control point (cx, cy) to (x, y).
func (p *Path) QuadTo(cx, cy, x, y float64) *Path {
	p.Verbs = append(p.Verbs, VerbQuad)
	p.Points = append(p.Points, Point{cx, cy}, Point{x, y})
	return p
}

// CubicTo adds a cubic segment with control points (c1x, c1y) and (c2x, c2y)
// ending at (x, y).
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *Path {
	p.Verbs = append(p.Verbs, VerbCubic)
	p.Points = append(p.Points, Point{c1x, c1y}, Point{c2x, c2y}, Point{x, y})
	return p
}

// Close closes the current subpath.
func (p *Path) Close() *Path {
	p.Verbs = append(p.Verbs, VerbClose)
	return p
}

// DrawSink receives drawing commands emitted by an artboard. The wrapper
// layer adapts its renderer capability onto this interface.
type DrawSink interface {
	StatePush()
	StatePop()
	Transform(m [6]float64)
	FillPath(path *Path, color Color)
}

// Live-object accounting. Tests use these to prove destructors run exactly
// once and never while a derived object is still alive.
var (
	liveFiles     atomic.Int64
	liveArtboards atomic.Int64
	liveMachines  atomic.Int64
)

// LiveFiles returns the number of File objects not yet released.
func LiveFiles() int64 { return liveFiles.Load() }

// LiveArtboards returns the number of Artboard instances not yet released.
func LiveArtboards() int64 { return liveArtboards.Load() }

// LiveMachines returns the number of Machine instances not yet released.
func LiveMachines() int64 { return liveMachines.Load() }
