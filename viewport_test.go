package reel

import (
	"math"
	"testing"
)

func TestViewTransformFitWide(t *testing.T) {
	// 50x50 content in a 100x100 surface: scale 2, no offset.
	m := viewTransform(50, 50, 100, 100)
	assertMatrix(t, "square fit", m, [6]float64{2, 0, 0, 2, 0, 0})
}

func TestViewTransformLetterbox(t *testing.T) {
	// 50x50 content in a 200x100 surface: scale 2, centered horizontally.
	m := viewTransform(50, 50, 200, 100)
	assertMatrix(t, "letterbox", m, [6]float64{2, 0, 0, 2, 50, 0})
}

func TestViewTransformPillarbox(t *testing.T) {
	// 100x50 content in a 100x100 surface: scale 1, centered vertically.
	m := viewTransform(100, 50, 100, 100)
	assertMatrix(t, "pillarbox", m, [6]float64{1, 0, 0, 1, 0, 25})
}

func TestViewTransformZeroContent(t *testing.T) {
	assertMatrix(t, "zero content", viewTransform(0, 0, 100, 100), identityTransform)
}

// The inverse view transform must take every surface point produced by the
// forward transform back to its content point, within 1e-4.
func TestViewTransformRoundTrip(t *testing.T) {
	contentSizes := [][2]float64{{50, 50}, {500, 500}, {123, 77}, {1, 1}, {1920, 1080}}
	surfaceSizes := [][2]float64{{100, 100}, {200, 100}, {100, 200}, {333, 777}, {1, 1}}
	points := [][2]float64{{0, 0}, {1, 1}, {25, 25}, {-10, 40}, {1000, -3}}

	for _, cs := range contentSizes {
		for _, ss := range surfaceSizes {
			forward := viewTransform(cs[0], cs[1], ss[0], ss[1])
			inverse := invertAffine(forward)
			for _, p := range points {
				sx, sy := transformPoint(forward, p[0], p[1])
				bx, by := transformPoint(inverse, sx, sy)
				if math.Abs(bx-p[0]) > 1e-4 || math.Abs(by-p[1]) > 1e-4 {
					t.Errorf("content %v surface %v: point %v came back as (%v, %v)",
						cs, ss, p, bx, by)
				}
			}
		}
	}
}

func TestViewportResize(t *testing.T) {
	var vp Viewport
	w, h := vp.Size()
	if w != 0 || h != 0 {
		t.Fatalf("zero viewport size = %dx%d", w, h)
	}

	vp.Resize(640, 480)
	w, h = vp.Size()
	if w != 640 || h != 480 {
		t.Errorf("size after resize = %dx%d, want 640x480", w, h)
	}
}

func TestViewportInverseDefaultsToIdentity(t *testing.T) {
	var vp Viewport
	assertMatrix(t, "default inverse", vp.InverseViewTransform(), identityTransform)

	x, y := vp.toContent(12, 34)
	assertNear(t, "x", x, 12)
	assertNear(t, "y", y, 34)
}

func TestViewportToContentUsesCachedInverse(t *testing.T) {
	var vp Viewport
	vp.Resize(100, 100)
	vp.setInverseView(invertAffine(viewTransform(50, 50, 100, 100)))

	x, y := vp.toContent(100, 100)
	assertNear(t, "x", x, 50)
	assertNear(t, "y", y, 50)
}
