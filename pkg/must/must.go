// Package must turns container errors into panics. Use it where an error can
// only mean a bug in the caller, such as walking positions known to be valid.
package must

import (
	"hop.computer/seq/pkg"
)

// Do takes any value and error pair, and panics if the error is non-nil. Use it
// wrapping a container call that returns two values, to get a single
// expression that only returns one value.
//
// Example:
//
//	it := must.Do(l.Begin().Next())
//	v := must.Do(it.Value())
func Do[T any](v T, err error) T {
	if err != nil {
		pkg.Panicf("expected nil-error, got %s", err)
	}
	return v
}

// NoError panics if err is non-nil.
func NoError(err error) {
	if err != nil {
		pkg.Panicf("expected nil-error, got %s", err)
	}
}
