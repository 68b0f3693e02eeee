// Package invariant provides contract assertions for peacockgen's generated
// engines and code generator.
//
// This follows Tiger Style safety principles: assertions are a force
// multiplier for discovering bugs. Use Precondition/Postcondition to express
// function contracts, and Invariant for internal consistency checks.
//
// All functions panic on violation. These guard against bugs in the engine
// or code generator itself — never against malformed runtime input, which
// the derivation/prng/engine packages handle with ordinary bool/error
// returns instead.
package invariant

import (
	"fmt"
	"runtime"
)

// Precondition checks an input contract at function entry.
//
// Example:
//
//	func (b *Buffer) Truncate(newLen int) {
//	    invariant.Precondition(newLen >= 0, "truncate target must not be negative, got %d", newLen)
//	    ...
func Precondition(condition bool, format string, args ...interface{}) {
	if !condition {
		fail("PRECONDITION", format, args...)
	}
}

// Postcondition checks an output contract before function return.
func Postcondition(condition bool, format string, args ...interface{}) {
	if !condition {
		fail("POSTCONDITION", format, args...)
	}
}

// Invariant checks an internal invariant during function execution, such as
// a derivation buffer's len never exceeding its cap.
func Invariant(condition bool, format string, args ...interface{}) {
	if !condition {
		fail("INVARIANT", format, args...)
	}
}

// InRange panics if value is outside [min, max], for example an alternative
// index checked against a non-terminal's alternative count.
func InRange(value, minVal, maxVal int, name string) {
	if value < minVal || value > maxVal {
		fail("PRECONDITION", "%s must be in range [%d, %d], got %d", name, minVal, maxVal, value)
	}
}

// fail panics with a formatted message including the call site.
func fail(kind, format string, args ...interface{}) {
	pc := make([]uintptr, 10)
	n := runtime.Callers(3, pc)
	frames := runtime.CallersFrames(pc[:n])

	msg := fmt.Sprintf("%s VIOLATION: "+format, append([]interface{}{kind}, args...)...)

	if frame, ok := frames.Next(); ok {
		msg += fmt.Sprintf("\n  at %s:%d", frame.File, frame.Line)
	}
	panic(msg)
}
