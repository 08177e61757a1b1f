package dateutil

import "time"

// Clock supplies the current time. Date-relative helpers take a Clock
// instead of calling time.Now directly so the scheduling core stays
// deterministic under test.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock backed by time.Now.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
