package reel

// Command is a single recorded draw instruction: a path filled under a
// captured transform.
type Command struct {
	Transform [6]float64
	Path      *Path
	Paint     Paint
}

// Recorder is a backend-agnostic Renderer that records the drawing-command
// stream instead of producing pixels. A frame driver records one frame into
// it, hands the commands to a presentation backend, and resets it for the
// next frame.
type Recorder struct {
	state    stateStack
	commands []Command
}

const defaultCommandCap = 256

// NewRecorder creates a Recorder with a preallocated command buffer.
func NewRecorder() *Recorder {
	return &Recorder{commands: make([]Command, 0, defaultCommandCap)}
}

// StatePush saves the current drawing state.
func (r *Recorder) StatePush() { r.state.push() }

// StatePop restores the most recently saved drawing state.
// Panics on pop without a matching push.
func (r *Recorder) StatePop() { r.state.pop() }

// Transform composes m onto the current transform.
func (r *Recorder) Transform(m [6]float64) { r.state.compose(m) }

// FillPath records a fill of path under the current transform.
func (r *Recorder) FillPath(path *Path, paint Paint) {
	r.commands = append(r.commands, Command{
		Transform: r.state.transform(),
		Path:      path,
		Paint:     paint,
	})
}

// Commands returns the commands recorded since the last Reset. The returned
// slice is invalidated by the next Reset.
func (r *Recorder) Commands() []Command { return r.commands }

// Depth returns the current state-stack depth. After any balanced draw call
// it equals the depth before the call.
func (r *Recorder) Depth() int { return r.state.depth() }

// Reset clears recorded commands and restores the identity state, keeping
// the command buffer's capacity.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
	r.state.reset()
}
