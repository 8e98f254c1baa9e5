//go:build linux

package autostart

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDesktopRegistrarRoundTrip(t *testing.T) {
	r := desktopRegistrar{dir: filepath.Join(t.TempDir(), "autostart")}

	if r.IsEnabled() {
		t.Fatal("expected disabled before any registration")
	}

	if !r.SetEnabled(true) {
		t.Fatal("SetEnabled(true) failed")
	}
	if !r.IsEnabled() {
		t.Fatal("expected enabled after registration")
	}

	data, err := os.ReadFile(r.entryPath())
	if err != nil {
		t.Fatalf("read desktop entry: %v", err)
	}
	if !strings.Contains(string(data), "[Desktop Entry]") {
		t.Errorf("desktop entry missing header: %q", data)
	}
	if !strings.Contains(string(data), "Name="+appName) {
		t.Errorf("desktop entry missing name: %q", data)
	}

	if !r.SetEnabled(false) {
		t.Fatal("SetEnabled(false) failed")
	}
	if r.IsEnabled() {
		t.Fatal("expected disabled after removal")
	}
}

func TestDesktopRegistrarDisableIsIdempotent(t *testing.T) {
	r := desktopRegistrar{dir: filepath.Join(t.TempDir(), "autostart")}
	if !r.SetEnabled(false) {
		t.Fatal("disabling an absent entry should succeed")
	}
}

func TestDesktopRegistrarWithoutConfigDir(t *testing.T) {
	r := desktopRegistrar{}
	if r.IsEnabled() {
		t.Error("registrar without a config dir must report disabled")
	}
	if r.SetEnabled(true) {
		t.Error("registrar without a config dir must fail to enable")
	}
}
