//go:build linux

package platform

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

const (
	displayServerWayland = "wayland"
	displayServerX11     = "x11"
	displayServerUnknown = "unknown"
)

// runVerbose executes a command and returns the combined output
// (stdout+stderr) and any error.
func runVerbose(name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf
	err := cmd.Run()
	return strings.TrimSpace(buf.String()), err
}

// hasCommand checks if a command is available in the system PATH.
func hasCommand(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// detectDisplayServer detects whether running on Wayland or X11.
func detectDisplayServer() string {
	if os.Getenv("WAYLAND_DISPLAY") != "" {
		return displayServerWayland
	}
	if os.Getenv("XDG_SESSION_TYPE") == displayServerWayland {
		return displayServerWayland
	}
	if os.Getenv("DISPLAY") != "" {
		return displayServerX11
	}
	if os.Getenv("XDG_SESSION_TYPE") == displayServerX11 {
		return displayServerX11
	}
	return displayServerUnknown
}

// linuxInputMonitor reads the X server idle counter via xprintidle.
// Note: xprintidle only works on X11, not Wayland.
type linuxInputMonitor struct{}

// NewInputMonitor returns the Linux input monitor, or an error when the
// session offers no way to read idle time.
func NewInputMonitor() (InputMonitor, error) {
	if detectDisplayServer() == displayServerWayland {
		return nil, fmt.Errorf("idle detection is not available on Wayland (xprintidle requires X11)")
	}
	if !hasCommand("xprintidle") {
		return nil, fmt.Errorf("xprintidle not found in PATH")
	}
	return linuxInputMonitor{}, nil
}

func (linuxInputMonitor) IdleTime() (time.Duration, error) {
	out, err := runVerbose("xprintidle")
	if err != nil {
		return 0, fmt.Errorf("xprintidle failed: %v (output: %q)", err, out)
	}
	millis, err := strconv.ParseInt(out, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse xprintidle output %q: %v", out, err)
	}
	return time.Duration(millis) * time.Millisecond, nil
}

// commandMover injects relative motion through a command-line tool.
type commandMover struct {
	cmd  string
	args []string
}

func (c *commandMover) MoveRelative(dx, dy int) error {
	args := append(append([]string{}, c.args...), strconv.Itoa(dx), strconv.Itoa(dy))
	out, err := runVerbose(c.cmd, args...)
	if err != nil {
		return fmt.Errorf("%s failed: %v (output: %q)", c.cmd, err, out)
	}
	return nil
}

// NewMover returns the best available relative mover: the uinput kernel
// interface when /dev/uinput is writable, otherwise the xdotool or ydotool
// command-line tools.
func NewMover() (Mover, error) {
	dev := &uinputDevice{}
	err := dev.setup()
	if err == nil {
		return dev, nil
	}
	log.Printf("linux: uinput unavailable: %v", err)

	if hasCommand("ydotool") {
		return &commandMover{cmd: "ydotool", args: []string{"mousemove", "--"}}, nil
	}
	if hasCommand("xdotool") && detectDisplayServer() != displayServerWayland {
		return &commandMover{cmd: "xdotool", args: []string{"mousemove_relative", "--"}}, nil
	}
	return nil, fmt.Errorf("no mouse injection method available (tried uinput, xdotool, ydotool)")
}
