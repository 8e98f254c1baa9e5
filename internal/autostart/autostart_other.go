//go:build !windows && !linux

package autostart

type unsupportedRegistrar struct{}

func newRegistrar() Registrar {
	return unsupportedRegistrar{}
}

func (unsupportedRegistrar) IsEnabled() bool { return false }

func (unsupportedRegistrar) SetEnabled(bool) bool { return false }
