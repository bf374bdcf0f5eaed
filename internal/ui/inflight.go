package ui

// operation identifies a kind of outbound backend call.
type operation int

const (
	opRefresh operation = iota
	opAccept
)

func (op operation) String() string {
	switch op {
	case opRefresh:
		return "refresh"
	case opAccept:
		return "accept"
	default:
		return "unknown"
	}
}

// inflight tracks which backend operations are currently awaiting a
// response. It replaces the desktop build's trick of watching the
// strong count of a shared liveness handle: the same single-flight
// guarantee, stated directly. Only the dispatch loop reads or writes
// it, so there is no locking.
type inflight struct {
	ops map[operation]struct{}
}

func newInflight() *inflight {
	return &inflight{ops: make(map[operation]struct{})}
}

// busy reports whether any operation is awaiting a response.
func (f *inflight) busy() bool {
	return len(f.ops) > 0
}

// start marks op as in flight. It refuses while any operation is
// active, keeping at most one outbound call running at a time.
func (f *inflight) start(op operation) bool {
	if f.busy() {
		return false
	}
	f.ops[op] = struct{}{}
	return true
}

// finish clears op. Safe to call for an operation that never started.
func (f *inflight) finish(op operation) {
	delete(f.ops, op)
}

// active reports whether the given operation kind is in flight.
func (f *inflight) active(op operation) bool {
	_, ok := f.ops[op]
	return ok
}
