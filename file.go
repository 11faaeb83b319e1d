package reel

import (
	"log"

	"github.com/phanxgames/reel/internal/engine"
)

// File owns a fully parsed asset. It is immutable after load and destroyed
// when its last reference is released — which, because every artboard
// derived from it retains it, cannot happen while any artboard is alive.
type File struct {
	res *resource
	raw *engine.File
}

// LoadFile parses an asset byte buffer. Unparseable bytes report absence:
// no partial File exists. The decode error detail is logged when debug mode
// is enabled.
func LoadFile(data []byte) (*File, bool) {
	raw, err := engine.Decode(data)
	if err != nil {
		if debug {
			log.Printf("reel: asset rejected: %v", err)
		}
		return nil, false
	}
	return &File{
		res: newResource(nil, raw.Release),
		raw: raw,
	}, true
}

// Clone returns a new reference to the same file. The underlying resource
// lives until every reference, and every object derived from any of them,
// has been released.
func (f *File) Clone() *File {
	f.res.retain()
	return &File{res: f.res, raw: f.raw}
}

// Release drops this reference. After Release the File must not be used.
func (f *File) Release() {
	f.res.release()
}

// ArtboardCount returns the number of artboards in the file.
func (f *File) ArtboardCount() int {
	return f.raw.ArtboardCount()
}

// debug mirrors the most recently set debug flag so that load paths can log
// rejection details cheaply. Toggle with SetDebugMode.
var debug bool

// SetDebugMode enables or disables debug logging for load failures and
// renderer misuse diagnostics.
func SetDebugMode(enabled bool) {
	debug = enabled
}
