//go:build windows

package autostart

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/sys/windows/registry"
)

const runKeyPath = `Software\Microsoft\Windows\CurrentVersion\Run`

type registryRegistrar struct{}

func newRegistrar() Registrar {
	return registryRegistrar{}
}

func (registryRegistrar) IsEnabled() bool {
	key, err := registry.OpenKey(registry.CURRENT_USER, runKeyPath, registry.QUERY_VALUE)
	if err != nil {
		return false
	}
	defer key.Close()

	_, _, err = key.GetStringValue(appName)
	return err == nil
}

func (registryRegistrar) SetEnabled(enabled bool) bool {
	key, err := registry.OpenKey(registry.CURRENT_USER, runKeyPath, registry.SET_VALUE)
	if err != nil {
		log.Printf("autostart: open run key: %v", err)
		return false
	}
	defer key.Close()

	if !enabled {
		if err := key.DeleteValue(appName); err != nil && err != registry.ErrNotExist {
			log.Printf("autostart: delete run entry: %v", err)
			return false
		}
		return true
	}

	exe, err := os.Executable()
	if err != nil {
		log.Printf("autostart: locate executable: %v", err)
		return false
	}
	if err := key.SetStringValue(appName, fmt.Sprintf("%q", exe)); err != nil {
		log.Printf("autostart: write run entry: %v", err)
		return false
	}
	return true
}
