package simplex

import "github.com/pkg/errors"

// assertf panics with a stack-carrying error when cond is false. Every
// call site is a condition the public API contract already rules out by
// the time it's reached (wrong-kind handle, out-of-range position index,
// a malformed row) — a genuine programmer error, not a reportable
// runtime failure, so it is not part of the invalid()/false error surface
// documented on the Add*/Delete* methods.
func assertf(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(errors.Errorf(format, args...))
	}
}
