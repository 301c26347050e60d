package nfa

import "fmt"

// BuildError reports a pattern that cannot be built: currently, only
// a recursion depth exceeding Config.MaxRecursionDepth while
// descending a pathologically nested AST (spec §4.3). Everything else
// a well-formed AST could trigger is an internal-consistency failure,
// which panics via invariant.Check instead (spec §7).
type BuildError struct {
	Message string
	State   StateID
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	if e.State != InvalidState {
		return fmt.Sprintf("nfa: build error at state %d: %s", e.State, e.Message)
	}
	return fmt.Sprintf("nfa: build error: %s", e.Message)
}
