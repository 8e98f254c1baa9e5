//go:build !windows && !linux

package platform

import "errors"

// NewInputMonitor reports idle detection as unavailable on unsupported
// platforms; callers degrade to treating the system as never idle.
func NewInputMonitor() (InputMonitor, error) {
	return nil, errors.New("idle detection is not supported on this platform")
}

// NewMover reports mouse injection as unavailable on unsupported platforms.
func NewMover() (Mover, error) {
	return nil, errors.New("mouse movement is not supported on this platform")
}
