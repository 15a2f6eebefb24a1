// Package thunks contains pointers to functions that might be replaced in
// tests.
package thunks

import (
	"time"
)

// TimeNow is an alias for time.Now
var TimeNow func() time.Time = time.Now

// SetUpTest replaces thunks with stable test versions. The returned function
// restores the originals.
func SetUpTest() (restore func()) {
	oldNow := TimeNow
	TimeNow = func() time.Time {
		return time.Date(1992, 12, 31, 1, 2, 3, 4, time.UTC)
	}
	return func() {
		TimeNow = oldNow
	}
}
