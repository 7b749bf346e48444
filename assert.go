//go:build debug

package spatialhash

import "fmt"

// assert panics with a formatted precondition-violation message when cond
// is false. Compiled only under -tags debug; release builds elide it
// entirely. Every precondition checked here (phase ordering, insert into
// an uncounted cell, group-flag misuse, 32-bit offset overflow) is a
// programming bug, not a recoverable error.
func assert(cond bool, format string, args ...any) {
	if !cond {
		panic("spatialhash: assertion failed: " + fmt.Sprintf(format, args...))
	}
}
