package engine

import (
	"encoding/binary"
	"fmt"
	"math"
)

// The reel asset container is a little-endian binary stream:
//
//	magic "REEL" | version u16 | artboard count u16 | artboards...
//
// Each artboard carries its name, intrinsic size, shapes (path geometry plus
// fill), animations (duration, loop mode, keyframe tracks), and state
// machines (states referencing animations). Strings are u16-length-prefixed
// raw bytes; names are not required to be valid UTF-8.

var magic = [4]byte{'R', 'E', 'E', 'L'}

const formatVersion = 1

// Asset is the authoring form of a reel asset. Tests and tools build an
// Asset and Encode it; Decode reproduces the same structures.
type Asset struct {
	Artboards []ArtboardSpec
}

// ArtboardSpec describes one artboard.
type ArtboardSpec struct {
	Name          string
	Width, Height float64
	Shapes        []ShapeSpec
	Animations    []AnimationSpec
	Machines      []MachineSpec
}

// ShapeSpec is a filled path placed at (X, Y) in artboard space.
type ShapeSpec struct {
	Name string
	X, Y float64
	Fill Color
	Path Path
}

// AnimationSpec is a duration-bounded set of keyframe tracks.
type AnimationSpec struct {
	Name     string
	Duration float64 // seconds
	Loop     Loop
	Tracks   []TrackSpec
}

// TrackSpec animates one property of one shape from From to To over the
// animation's duration, shaped by Easing.
type TrackSpec struct {
	Shape    int
	Property Property
	Easing   Easing
	From, To float64
}

// MachineSpec is a state machine whose states reference animations by index.
// A pointer press inside the artboard advances to the next state.
type MachineSpec struct {
	Name   string
	States []int
}

// Encode serializes the asset into the binary container format.
func (a *Asset) Encode() []byte {
	var w writer
	w.bytes(magic[:])
	w.u16(formatVersion)
	w.u16(uint16(len(a.Artboards)))
	for i := range a.Artboards {
		ab := &a.Artboards[i]
		w.str(ab.Name)
		w.f32(ab.Width)
		w.f32(ab.Height)
		w.u16(uint16(len(ab.Shapes)))
		for j := range ab.Shapes {
			s := &ab.Shapes[j]
			w.str(s.Name)
			w.f32(s.X)
			w.f32(s.Y)
			w.rgba(s.Fill)
			w.u16(uint16(len(s.Path.Verbs)))
			for _, v := range s.Path.Verbs {
				w.u8(uint8(v))
			}
			w.u16(uint16(len(s.Path.Points)))
			for _, pt := range s.Path.Points {
				w.f32(pt.X)
				w.f32(pt.Y)
			}
		}
		w.u16(uint16(len(ab.Animations)))
		for j := range ab.Animations {
			an := &ab.Animations[j]
			w.str(an.Name)
			w.u32(uint32(an.Duration * 1000))
			w.u8(uint8(an.Loop))
			w.u16(uint16(len(an.Tracks)))
			for _, tr := range an.Tracks {
				w.u16(uint16(tr.Shape))
				w.u8(uint8(tr.Property))
				w.u8(uint8(tr.Easing))
				w.f32(tr.From)
				w.f32(tr.To)
			}
		}
		w.u16(uint16(len(ab.Machines)))
		for j := range ab.Machines {
			m := &ab.Machines[j]
			w.str(m.Name)
			w.u16(uint16(len(m.States)))
			for _, s := range m.States {
				w.u16(uint16(s))
			}
		}
	}
	return w.buf
}

// Decode parses a binary asset. It returns an error describing the first
// malformed field; on error no File is allocated.
func Decode(data []byte) (*File, error) {
	r := reader{buf: data}

	var m [4]byte
	r.bytes(m[:])
	if m != magic {
		return nil, fmt.Errorf("engine: bad magic %q", m[:])
	}
	if v := r.u16(); v != formatVersion {
		return nil, fmt.Errorf("engine: unsupported version %d", v)
	}

	artboards := make([]ArtboardSpec, r.u16())
	for i := range artboards {
		ab := &artboards[i]
		ab.Name = r.str()
		ab.Width = r.f32()
		ab.Height = r.f32()

		ab.Shapes = make([]ShapeSpec, r.u16())
		for j := range ab.Shapes {
			s := &ab.Shapes[j]
			s.Name = r.str()
			s.X = r.f32()
			s.Y = r.f32()
			s.Fill = r.rgba()
			s.Path.Verbs = make([]PathVerb, r.u16())
			want := 0
			for k := range s.Path.Verbs {
				v := PathVerb(r.u8())
				if v > VerbClose {
					return nil, fmt.Errorf("engine: unknown path verb %d", v)
				}
				s.Path.Verbs[k] = v
				want += pointsFor(v)
			}
			s.Path.Points = make([]Point, r.u16())
			if len(s.Path.Points) != want {
				return nil, fmt.Errorf("engine: path has %d points, verbs need %d", len(s.Path.Points), want)
			}
			for k := range s.Path.Points {
				s.Path.Points[k] = Point{r.f32(), r.f32()}
			}
		}

		ab.Animations = make([]AnimationSpec, r.u16())
		for j := range ab.Animations {
			an := &ab.Animations[j]
			an.Name = r.str()
			an.Duration = float64(r.u32()) / 1000
			an.Loop = Loop(r.u8())
			if an.Loop > LoopPingPong {
				return nil, fmt.Errorf("engine: unknown loop mode %d", an.Loop)
			}
			an.Tracks = make([]TrackSpec, r.u16())
			for k := range an.Tracks {
				tr := &an.Tracks[k]
				tr.Shape = int(r.u16())
				tr.Property = Property(r.u8())
				tr.Easing = Easing(r.u8())
				tr.From = r.f32()
				tr.To = r.f32()
				if tr.Shape >= len(ab.Shapes) {
					return nil, fmt.Errorf("engine: track references shape %d of %d", tr.Shape, len(ab.Shapes))
				}
				if tr.Property > PropOpacity || tr.Easing > easeMax {
					return nil, fmt.Errorf("engine: track property/easing out of range")
				}
			}
		}

		ab.Machines = make([]MachineSpec, r.u16())
		for j := range ab.Machines {
			m := &ab.Machines[j]
			m.Name = r.str()
			m.States = make([]int, r.u16())
			for k := range m.States {
				m.States[k] = int(r.u16())
				if m.States[k] >= len(ab.Animations) {
					return nil, fmt.Errorf("engine: state references animation %d of %d", m.States[k], len(ab.Animations))
				}
			}
		}
	}

	if r.err != nil {
		return nil, r.err
	}
	if r.off != len(data) {
		return nil, fmt.Errorf("engine: %d trailing bytes", len(data)-r.off)
	}

	f := &File{artboards: artboards}
	liveFiles.Add(1)
	return f, nil
}

// --- binary cursor helpers ---

type writer struct {
	buf []byte
}

func (w *writer) bytes(b []byte) { w.buf = append(w.buf, b...) }
func (w *writer) u8(v uint8)     { w.buf = append(w.buf, v) }
func (w *writer) u16(v uint16)   { w.buf = binary.LittleEndian.AppendUint16(w.buf, v) }
func (w *writer) u32(v uint32)   { w.buf = binary.LittleEndian.AppendUint32(w.buf, v) }

func (w *writer) f32(v float64) {
	w.u32(math.Float32bits(float32(v)))
}

func (w *writer) str(s string) {
	w.u16(uint16(len(s)))
	w.buf = append(w.buf, s...)
}

func (w *writer) rgba(c Color) {
	w.u8(uint8(clamp01(c.R) * 255))
	w.u8(uint8(clamp01(c.G) * 255))
	w.u8(uint8(clamp01(c.B) * 255))
	w.u8(uint8(clamp01(c.A) * 255))
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}

type reader struct {
	buf []byte
	off int
	err error
}

func (r *reader) take(n int) []byte {
	if r.err != nil {
		return nil
	}
	if r.off+n > len(r.buf) {
		r.err = fmt.Errorf("engine: truncated asset at offset %d", r.off)
		return nil
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b
}

func (r *reader) bytes(dst []byte) {
	if b := r.take(len(dst)); b != nil {
		copy(dst, b)
	}
}

func (r *reader) u8() uint8 {
	if b := r.take(1); b != nil {
		return b[0]
	}
	return 0
}

func (r *reader) u16() uint16 {
	if b := r.take(2); b != nil {
		return binary.LittleEndian.Uint16(b)
	}
	return 0
}

func (r *reader) u32() uint32 {
	if b := r.take(4); b != nil {
		return binary.LittleEndian.Uint32(b)
	}
	return 0
}

func (r *reader) f32() float64 {
	return float64(math.Float32frombits(r.u32()))
}

func (r *reader) str() string {
	n := int(r.u16())
	if b := r.take(n); b != nil {
		return string(b)
	}
	return ""
}

func (r *reader) rgba() Color {
	return Color{
		R: float64(r.u8()) / 255,
		G: float64(r.u8()) / 255,
		B: float64(r.u8()) / 255,
		A: float64(r.u8()) / 255,
	}
}
