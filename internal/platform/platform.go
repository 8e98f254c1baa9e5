// Package platform provides the OS-specific input plumbing: querying the
// elapsed time since the last user input, and injecting relative mouse
// movement that the system counts as real input.
package platform

import "time"

// InputMonitor reports how long the system has gone without user input.
type InputMonitor interface {
	IdleTime() (time.Duration, error)
}

// Mover injects a relative cursor displacement. Relative motion composes
// correctly regardless of the current cursor position and monitor layout.
type Mover interface {
	MoveRelative(dx, dy int) error
}
