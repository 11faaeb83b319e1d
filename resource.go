package reel

import "sync/atomic"

// resource is the reference-counted core shared by every wrapper around an
// engine object (File, Artboard, StateMachine). The engine manages its
// objects outside Go's collector, so teardown has to be explicit: the
// destructor runs exactly once, when the count reaches zero.
//
// A child resource retains its parent on creation and releases it after its
// own destructor has run, so a parent's engine object can never be torn down
// while a derived child is still alive. Counts are atomic; a resource may be
// retained and released from any goroutine.
type resource struct {
	refs    atomic.Int32
	parent  *resource
	destroy func()
}

// newResource creates a resource with one reference, retaining parent
// (which may be nil for a root object such as a File).
func newResource(parent *resource, destroy func()) *resource {
	if parent != nil {
		parent.retain()
	}
	r := &resource{parent: parent, destroy: destroy}
	r.refs.Store(1)
	return r
}

func (r *resource) retain() {
	if r.refs.Add(1) <= 1 {
		panic("reel: retain of released resource")
	}
}

func (r *resource) release() {
	refs := r.refs.Add(-1)
	if refs < 0 {
		panic("reel: release of already-released resource")
	}
	if refs > 0 {
		return
	}
	if r.destroy != nil {
		r.destroy()
	}
	if r.parent != nil {
		r.parent.release()
	}
}
