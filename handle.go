package reel

// handleKind discriminates the three resolution strategies.
type handleKind uint8

const (
	handleDefault handleKind = iota
	handleIndex
	handleName
)

// Handle selects which child object an instantiation call resolves within
// its parent's namespace. A Handle is a plain value: it carries no lifetime
// and no behavior of its own, and is consumed by exactly one instantiation
// call. Malformed indices and unknown names are reported by the
// instantiation call as absence, never by the Handle.
//
// Construct handles with [Default], [ByIndex], or [ByName].
type Handle struct {
	kind  handleKind
	index int
	name  string
}

// Default selects the primary (first) object of the requested kind.
func Default() Handle {
	return Handle{kind: handleDefault}
}

// ByIndex selects the n-th object positionally. Out-of-range indices
// resolve to absence at instantiation time.
func ByIndex(index int) Handle {
	return Handle{kind: handleIndex, index: index}
}

// ByName selects an object by exact identifier match. Unknown names
// resolve to absence at instantiation time.
func ByName(name string) Handle {
	return Handle{kind: handleName, name: name}
}
