package engine

import (
	"math"
	"testing"
)

func near(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func TestFoldTimeOneShot(t *testing.T) {
	near(t, "start", foldTime(0, 2, LoopOneShot), 0)
	near(t, "mid", foldTime(1, 2, LoopOneShot), 1)
	near(t, "end", foldTime(2, 2, LoopOneShot), 2)
	near(t, "past end", foldTime(5, 2, LoopOneShot), 2)
	near(t, "negative", foldTime(-1, 2, LoopOneShot), 0)
}

func TestFoldTimeLoop(t *testing.T) {
	near(t, "mid", foldTime(0.5, 2, LoopLoop), 0.5)
	near(t, "wrap", foldTime(2.5, 2, LoopLoop), 0.5)
	near(t, "many wraps", foldTime(10.5, 2, LoopLoop), 0.5)
}

func TestFoldTimePingPong(t *testing.T) {
	near(t, "forward", foldTime(0.5, 2, LoopPingPong), 0.5)
	near(t, "reflect", foldTime(2.5, 2, LoopPingPong), 1.5)
	near(t, "second cycle", foldTime(4.5, 2, LoopPingPong), 0.5)
	near(t, "turnaround", foldTime(2, 2, LoopPingPong), 2)
}

func TestFoldTimeZeroDuration(t *testing.T) {
	near(t, "zero duration", foldTime(5, 0, LoopLoop), 0)
}

func TestEvalTrackLinear(t *testing.T) {
	tr := TrackSpec{Property: PropTranslateX, Easing: EaseLinear, From: 10, To: 30}
	near(t, "start", evalTrack(&tr, 0, 2), 10)
	near(t, "mid", evalTrack(&tr, 1, 2), 20)
	near(t, "end", evalTrack(&tr, 2, 2), 30)
}

func TestEvalTrackZeroDuration(t *testing.T) {
	tr := TrackSpec{Easing: EaseLinear, From: 1, To: 5}
	near(t, "zero duration", evalTrack(&tr, 0, 0), 5)
}

// Every easing reaches its endpoints, whatever it does in between. The
// curves run in float32, so endpoint comparison gets a coarser tolerance.
func TestEasingsHitEndpoints(t *testing.T) {
	for e := EaseLinear; e <= easeMax; e++ {
		tr := TrackSpec{Easing: e, From: 2, To: 8}
		for _, p := range []struct {
			t    float64
			want float64
		}{{0, 2}, {1, 8}} {
			got := evalTrack(&tr, p.t, 1)
			if math.Abs(got-p.want) > 1e-3 {
				t.Errorf("easing %d at t=%v: %v, want %v", e, p.t, got, p.want)
			}
		}
	}
}
