package reel

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// whiteImage is the fill texture for path triangles. The inner 1×1 sub-image
// is used so linear filtering never samples outside the white texels.
var (
	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image
)

func ensureWhiteImage() *ebiten.Image {
	if whiteSubImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(image.White)
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// ImageRenderer is a [Renderer] backend that rasterizes path fills into an
// *ebiten.Image. It can be driven directly as a scene's renderer or replay
// a [Recorder]'s command stream, which is how the frame driver composes a
// backend-agnostic frame and submits it to the screen.
type ImageRenderer struct {
	state  stateStack
	target *ebiten.Image

	// scratch buffers reused across fills
	verts []ebiten.Vertex
	inds  []uint16
}

// NewImageRenderer creates a renderer drawing into target.
func NewImageRenderer(target *ebiten.Image) *ImageRenderer {
	return &ImageRenderer{target: target}
}

// SetTarget redirects subsequent fills into img.
func (r *ImageRenderer) SetTarget(img *ebiten.Image) {
	r.target = img
}

// StatePush saves the current drawing state.
func (r *ImageRenderer) StatePush() { r.state.push() }

// StatePop restores the most recently saved drawing state.
// Panics on pop without a matching push.
func (r *ImageRenderer) StatePop() { r.state.pop() }

// Transform composes m onto the current transform.
func (r *ImageRenderer) Transform(m [6]float64) { r.state.compose(m) }

// FillPath rasterizes path under the current transform.
func (r *ImageRenderer) FillPath(path *Path, paint Paint) {
	r.fill(path, r.state.transform(), paint)
}

// Replay rasterizes a recorded command stream. The commands' captured
// transforms are used as-is; the renderer's own state is untouched.
func (r *ImageRenderer) Replay(commands []Command) {
	for i := range commands {
		r.fill(commands[i].Path, commands[i].Transform, commands[i].Paint)
	}
}

func (r *ImageRenderer) fill(path *Path, m [6]float64, paint Paint) {
	if r.target == nil || len(path.Verbs) == 0 {
		return
	}

	var vp vector.Path
	pt := 0
	at := func(i int) (float32, float32) {
		x, y := transformPoint(m, path.Points[pt+i].X, path.Points[pt+i].Y)
		return float32(x), float32(y)
	}
	for _, verb := range path.Verbs {
		switch verb {
		case VerbMove:
			x, y := at(0)
			vp.MoveTo(x, y)
		case VerbLine:
			x, y := at(0)
			vp.LineTo(x, y)
		case VerbQuad:
			cx, cy := at(0)
			x, y := at(1)
			vp.QuadTo(cx, cy, x, y)
		case VerbCubic:
			c1x, c1y := at(0)
			c2x, c2y := at(1)
			x, y := at(2)
			vp.CubicTo(c1x, c1y, c2x, c2y, x, y)
		case VerbClose:
			vp.Close()
		}
		pt += pointsForVerb(verb)
	}

	r.verts, r.inds = vp.AppendVerticesAndIndicesForFilling(r.verts[:0], r.inds[:0])

	// Premultiplied vertex colors, same as the sprite batch path.
	c := paint.Color
	cr := float32(c.R * c.A)
	cg := float32(c.G * c.A)
	cb := float32(c.B * c.A)
	ca := float32(c.A)
	for i := range r.verts {
		r.verts[i].SrcX = 1
		r.verts[i].SrcY = 1
		r.verts[i].ColorR = cr
		r.verts[i].ColorG = cg
		r.verts[i].ColorB = cb
		r.verts[i].ColorA = ca
	}

	op := &ebiten.DrawTrianglesOptions{
		FillRule:  ebiten.FillRuleNonZero,
		AntiAlias: true,
	}
	r.target.DrawTriangles(r.verts, r.inds, ensureWhiteImage(), op)
}

// pointsForVerb returns how many control points a verb consumes.
func pointsForVerb(v PathVerb) int {
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
