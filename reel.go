package reel

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default fill (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// Vec2 is a 2D vector used for positions, offsets, and path points
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Loop selects how duration-bounded content replays once its natural
// playback length is exhausted.
type Loop uint8

const (
	LoopOneShot  Loop = iota // play once, hold the final frame
	LoopLoop                 // wrap back to the start
	LoopPingPong             // reverse direction at each end
)

// String returns the loop mode's name.
func (l Loop) String() string {
	switch l {
	case LoopOneShot:
		return "one-shot"
	case LoopLoop:
		return "loop"
	case LoopPingPong:
		return "ping-pong"
	default:
		return "unknown"
	}
}

// EventType identifies a kind of scene event forwarded to an EventSink.
type EventType uint8

const (
	EventPointerDown EventType = iota // fires when a pointer button is pressed
	EventPointerUp                    // fires when a pointer button is released
	EventPointerMove                  // fires when the pointer moves
	EventSceneLoaded                  // fires when the driver replaces the active scene
)

// SceneEvent carries event data for the optional ECS bridge.
// X and Y are surface pixel coordinates; SceneName is the active scene's
// name, or empty when the name is unavailable.
type SceneEvent struct {
	Type      EventType
	X, Y      float64
	SceneName string
}

// EventSink is the interface for optional ECS integration.
// When set on a Driver, scene and pointer events are forwarded to it.
type EventSink interface {
	EmitEvent(event SceneEvent)
}
