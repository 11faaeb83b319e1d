package reel

import "math"

// Viewport is per-surface state: the surface's pixel dimensions and the
// cached inverse of the most recent content-to-surface view transform.
// A Viewport is created once per render surface, resized by the host's
// resize events, and read every frame. The zero value is a 0×0 viewport
// with an identity inverse transform.
//
// The inverse transform is (re)stored by Scene.AdvanceAndMaybeDraw before
// the scene advances, so pointer events mapped through it always use the
// mapping that produced the frame on screen.
type Viewport struct {
	width, height uint32
	inverseView   [6]float64
	hasInverse    bool
}

// Resize sets the surface's pixel dimensions. The next draw picks the new
// size up and recomputes the view transform.
func (v *Viewport) Resize(width, height uint32) {
	v.width = width
	v.height = height
}

// Size returns the surface's pixel dimensions.
func (v *Viewport) Size() (width, height uint32) {
	return v.width, v.height
}

// InverseViewTransform returns the cached surface-to-content transform.
// Identity until the first draw stores one.
func (v *Viewport) InverseViewTransform() [6]float64 {
	if !v.hasInverse {
		return identityTransform
	}
	return v.inverseView
}

// setInverseView caches the surface-to-content transform for pointer
// mapping. Called by scene implementations during AdvanceAndMaybeDraw.
func (v *Viewport) setInverseView(m [6]float64) {
	v.inverseView = m
	v.hasInverse = true
}

// toContent maps a surface pixel coordinate into content space using the
// cached inverse view transform.
func (v *Viewport) toContent(x, y float64) (float64, float64) {
	return transformPoint(v.InverseViewTransform(), x, y)
}

// viewTransform computes the content-to-surface transform that fits content
// of size (cw, ch) inside a surface of size (sw, sh): uniform scale
// min(sw/cw, sh/ch), centered. Non-positive content dimensions yield the
// identity transform.
func viewTransform(cw, ch, sw, sh float64) [6]float64 {
	if cw <= 0 || ch <= 0 {
		return identityTransform
	}
	s := math.Min(sw/cw, sh/ch)
	return [6]float64{s, 0, 0, s, (sw - cw*s) / 2, (sh - ch*s) / 2}
}
