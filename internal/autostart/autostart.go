// Package autostart registers the application to launch at login using the
// platform's native mechanism.
package autostart

// appName is the identifier used for the login registration entry.
const appName = "Nudge"

// Registrar manages the run-at-login registration.
type Registrar interface {
	// IsEnabled reports whether the application is registered to start
	// at login.
	IsEnabled() bool
	// SetEnabled registers or unregisters the application and reports
	// whether the change took effect.
	SetEnabled(enabled bool) bool
}

// New returns the registrar for the current platform.
func New() Registrar {
	return newRegistrar()
}
