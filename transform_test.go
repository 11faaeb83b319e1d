package reel

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want [6]float64) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

// --- multiplyAffine ---

func TestMultiplyIdentity(t *testing.T) {
	m := [6]float64{2, 0, 0, 3, 10, 20}
	assertMatrix(t, "id*m", multiplyAffine(identityTransform, m), m)
	assertMatrix(t, "m*id", multiplyAffine(m, identityTransform), m)
}

func TestMultiplyTranslateScale(t *testing.T) {
	translate := [6]float64{1, 0, 0, 1, 10, 20}
	scale := [6]float64{2, 0, 0, 2, 0, 0}
	// translate * scale applies the scale first, then moves.
	got := multiplyAffine(translate, scale)
	assertMatrix(t, "T*S", got, [6]float64{2, 0, 0, 2, 10, 20})

	x, y := transformPoint(got, 5, 5)
	assertNear(t, "x", x, 20)
	assertNear(t, "y", y, 30)
}

func TestMultiplyNotCommutative(t *testing.T) {
	rot := [6]float64{0, 1, -1, 0, 0, 0} // 90° clockwise
	translate := [6]float64{1, 0, 0, 1, 10, 0}

	x1, y1 := transformPoint(multiplyAffine(rot, translate), 0, 0)
	x2, y2 := transformPoint(multiplyAffine(translate, rot), 0, 0)

	assertNear(t, "rot*T x", x1, 0)
	assertNear(t, "rot*T y", y1, 10)
	assertNear(t, "T*rot x", x2, 10)
	assertNear(t, "T*rot y", y2, 0)
}

// --- invertAffine ---

func TestInvertRoundTrip(t *testing.T) {
	m := [6]float64{2, 0.5, -0.3, 1.5, 40, -7}
	assertMatrix(t, "m*inv(m)", multiplyAffine(m, invertAffine(m)), identityTransform)
	assertMatrix(t, "inv(m)*m", multiplyAffine(invertAffine(m), m), identityTransform)
}

func TestInvertSingular(t *testing.T) {
	singular := [6]float64{0, 0, 0, 0, 5, 5}
	assertMatrix(t, "inv(singular)", invertAffine(singular), identityTransform)
}

func TestTransformPoint(t *testing.T) {
	m := [6]float64{2, 0, 0, 3, 1, -1}
	x, y := transformPoint(m, 10, 10)
	assertNear(t, "x", x, 21)
	assertNear(t, "y", y, 29)
}
