package engine

import (
	"math"

	"github.com/tanema/gween/ease"
)

// Easing selects the interpolation curve of a keyframe track.
type Easing uint8

const (
	EaseLinear Easing = iota
	EaseInQuad
	EaseOutQuad
	EaseInOutQuad
	EaseInCubic
	EaseOutCubic
	EaseInOutCubic
	EaseOutElastic
	EaseOutBounce

	easeMax = EaseOutBounce
)

// easeFuncs maps Easing values onto gween's tween functions.
var easeFuncs = [...]ease.TweenFunc{
	EaseLinear:     ease.Linear,
	EaseInQuad:     ease.InQuad,
	EaseOutQuad:    ease.OutQuad,
	EaseInOutQuad:  ease.InOutQuad,
	EaseInCubic:    ease.InCubic,
	EaseOutCubic:   ease.OutCubic,
	EaseInOutCubic: ease.InOutCubic,
	EaseOutElastic: ease.OutElastic,
	EaseOutBounce:  ease.OutBounce,
}

// evalTrack computes a track's value at folded time t in [0, duration].
func evalTrack(tr *TrackSpec, t, duration float64) float64 {
	if duration <= 0 {
		return tr.To
	}
	fn := easeFuncs[tr.Easing]
	return float64(fn(float32(t), float32(tr.From), float32(tr.To-tr.From), float32(duration)))
}

// foldTime maps an unbounded playback time into [0, duration] according to
// the loop mode: OneShot clamps at the end, Loop wraps, PingPong reflects.
func foldTime(t, duration float64, loop Loop) float64 {
	if duration <= 0 {
		return 0
	}
	if t <= 0 {
		return 0
	}
	switch loop {
	case LoopLoop:
		return math.Mod(t, duration)
	case LoopPingPong:
		cycle := math.Mod(t, 2*duration)
		if cycle > duration {
			return 2*duration - cycle
		}
		return cycle
	default: // LoopOneShot
		return math.Min(t, duration)
	}
}
