//go:build !windows

package main

import (
	"os"
	"syscall"
)

func getSignalsForPlatform() []os.Signal {
	return []os.Signal{
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	}
}
