//go:build linux

package autostart

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// desktopRegistrar writes an XDG autostart entry under the user's config
// directory.
type desktopRegistrar struct {
	dir string
}

func newRegistrar() Registrar {
	dir, err := os.UserConfigDir()
	if err != nil {
		log.Printf("autostart: resolve config dir: %v", err)
		return desktopRegistrar{}
	}
	return desktopRegistrar{dir: filepath.Join(dir, "autostart")}
}

func (r desktopRegistrar) entryPath() string {
	return filepath.Join(r.dir, strings.ToLower(appName)+".desktop")
}

func (r desktopRegistrar) IsEnabled() bool {
	if r.dir == "" {
		return false
	}
	_, err := os.Stat(r.entryPath())
	return err == nil
}

func (r desktopRegistrar) SetEnabled(enabled bool) bool {
	if r.dir == "" {
		return false
	}
	if !enabled {
		if err := os.Remove(r.entryPath()); err != nil && !os.IsNotExist(err) {
			log.Printf("autostart: remove desktop entry: %v", err)
			return false
		}
		return true
	}

	exe, err := os.Executable()
	if err != nil {
		log.Printf("autostart: locate executable: %v", err)
		return false
	}
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		log.Printf("autostart: create autostart dir: %v", err)
		return false
	}

	entry := fmt.Sprintf(`[Desktop Entry]
Type=Application
Name=%s
Exec=%s
X-GNOME-Autostart-enabled=true
`, appName, exe)
	if err := os.WriteFile(r.entryPath(), []byte(entry), 0o644); err != nil {
		log.Printf("autostart: write desktop entry: %v", err)
		return false
	}
	return true
}
