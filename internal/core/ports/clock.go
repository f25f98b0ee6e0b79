package ports

import "time"

// Clock supplies the current time.
// The reservation engine consults it when a caller omits an explicit start
// time; the core's primary API otherwise accepts the start time explicitly.
// Tests substitute a fixed clock for determinism.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}
