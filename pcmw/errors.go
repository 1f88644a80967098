package pcmw

import (
	"errors"
	"fmt"
)

// Sentinel errors for pcmw entry points. Callers branch with errors.Is;
// everything else in this package treats misuse as a contract violation and
// panics (see doc.go).
var (
	// ErrNotPcMw indicates a graph without prize-collecting machinery
	// (no Prize/Term2Edge arrays) was passed where a PC/MW graph is required.
	ErrNotPcMw = errors.New("pcmw: graph is not prize-collecting")

	// ErrAlreadyTransformed indicates a one-time conversion was invoked on a
	// graph that already carries PC/MW machinery.
	ErrAlreadyTransformed = errors.New("pcmw: graph already transformed")

	// ErrWrongView indicates an operation that requires the other view
	// (original vs extended) of the graph.
	ErrWrongView = errors.New("pcmw: operation not valid in current view")

	// ErrRooted indicates a rooted graph was passed to an unrooted-only
	// operation, or vice versa.
	ErrRooted = errors.New("pcmw: wrong rootedness for operation")

	// ErrNoTerminals indicates a conversion found no terminal to work with.
	ErrNoTerminals = errors.New("pcmw: instance has no terminals")

	// ErrBadRoot indicates the designated root is missing or not eligible
	// (e.g. BuildRootedSAP anchored at a node without twin machinery).
	ErrBadRoot = errors.New("pcmw: invalid root node")
)

// assertf panics with a pcmw-prefixed diagnostic when cond is false.
// Used for programmer-error preconditions that must fail fast; never for
// conditions a well-behaved caller could hit.
func assertf(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf("pcmw: "+format, args...))
	}
}
