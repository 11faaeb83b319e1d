package reel

// PathVerb identifies a path segment kind.
type PathVerb uint8

const (
	VerbMove  PathVerb = iota // start a new subpath (1 point)
	VerbLine                  // line segment (1 point)
	VerbQuad                  // quadratic segment (2 points)
	VerbCubic                 // cubic segment (3 points)
	VerbClose                 // close the current subpath (0 points)
)

// Path is vector geometry: a sequence of verbs with their control points in
// local (content) space. Paths emitted during a draw reference engine-owned
// geometry and are only valid for the duration of the frame that produced
// them unless copied.
type Path struct {
	Verbs  []PathVerb
	Points []Vec2
}

// Paint describes how a path is filled.
type Paint struct {
	Color Color
}

// Renderer is the capability any drawing backend implements. The frame
// logic is written against this interface only, so a command recorder, an
// Ebitengine image, or any other backend can sit behind it.
//
// StatePush and StatePop save and restore the full drawing state (the
// current transform). They must nest: every push is matched by exactly one
// pop before a scene's draw call returns. Transform composes a row-major
// [a, b, c, d, tx, ty] affine onto the current state. Rendering has no
// error returns; backend failures surface at the frame driver, not here.
type Renderer interface {
	StatePush()
	StatePop()
	Transform(m [6]float64)
	FillPath(path *Path, paint Paint)
}

// stateStack is the transform save/restore core shared by the built-in
// backends. The zero value starts at identity with depth 0.
type stateStack struct {
	current [6]float64
	saved   [][6]float64
	init    bool
}

func (s *stateStack) transform() [6]float64 {
	if !s.init {
		s.current = identityTransform
		s.init = true
	}
	return s.current
}

func (s *stateStack) push() {
	s.saved = append(s.saved, s.transform())
}

func (s *stateStack) pop() {
	if len(s.saved) == 0 {
		panic("reel: renderer state pop without matching push")
	}
	s.current = s.saved[len(s.saved)-1]
	s.saved = s.saved[:len(s.saved)-1]
}

func (s *stateStack) compose(m [6]float64) {
	s.current = multiplyAffine(s.transform(), m)
}

func (s *stateStack) depth() int {
	return len(s.saved)
}

func (s *stateStack) reset() {
	s.current = identityTransform
	s.init = true
	s.saved = s.saved[:0]
}
