// Package invariant holds the single assertion helper shared by the
// construction stages. Per spec, determinization, minimization, and
// well-formed NFA construction are total functions: a failure here is
// a programming bug, never a user-facing error, so it panics instead
// of returning an error value.
package invariant

import "fmt"

// Check panics with a formatted message if cond is false.
func Check(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("regcore: invariant violated: "+format, args...))
	}
}
