package calculation

import "time"

// nowFunc returns the current time (override in tests for determinism).
var nowFunc = time.Now

// SetNowFunc overrides the clock used to place timelines in tax years (use
// only in tests). Passing nil restores time.Now.
func SetNowFunc(f func() time.Time) {
	if f == nil {
		f = time.Now
	}
	nowFunc = f
}

// Now returns the engine clock's current time.
func Now() time.Time { return nowFunc() }
