package inmem

import "time"

// SystemClock reports the wall-clock time.
type SystemClock struct{}

// NewSystemClock creates the production time source.
func NewSystemClock() SystemClock {
	return SystemClock{}
}

// Now returns the current wall-clock time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
