//go:build windows

package platform

import (
	"fmt"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	moduser32   = windows.NewLazySystemDLL("user32.dll")
	modkernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procGetLastInputInfo = moduser32.NewProc("GetLastInputInfo")
	procSendInput        = moduser32.NewProc("SendInput")
	procGetTickCount64   = modkernel32.NewProc("GetTickCount64")
)

const (
	inputMouse     = 0
	mouseEventMove = 0x0001
)

// lastInputInfo mirrors the Windows LASTINPUTINFO structure.
type lastInputInfo struct {
	cbSize uint32
	dwTime uint32
}

// mouseInput mirrors the Windows MOUSEINPUT structure.
type mouseInput struct {
	dx          int32
	dy          int32
	mouseData   uint32
	dwFlags     uint32
	time        uint32
	dwExtraInfo uintptr
}

// input mirrors the Windows INPUT structure with the MOUSEINPUT union arm.
// The union is 8-byte aligned on 64-bit Windows, hence the explicit padding.
type input struct {
	inputType uint32
	_         [4]byte
	mi        mouseInput
}

// windowsInputMonitor queries GetLastInputInfo for the last input tick.
type windowsInputMonitor struct{}

// NewInputMonitor returns the Windows input monitor.
func NewInputMonitor() (InputMonitor, error) {
	return windowsInputMonitor{}, nil
}

func (windowsInputMonitor) IdleTime() (time.Duration, error) {
	var info lastInputInfo
	info.cbSize = uint32(unsafe.Sizeof(info))
	r, _, err := procGetLastInputInfo.Call(uintptr(unsafe.Pointer(&info)))
	if r == 0 {
		return 0, fmt.Errorf("GetLastInputInfo failed: %v", err)
	}

	tick, _, _ := procGetTickCount64.Call()
	// dwTime is a 32-bit tick count; mask the difference so a rollover of
	// the low word never produces a bogus huge value.
	elapsedMS := (uint64(tick) - uint64(info.dwTime)) & 0xFFFFFFFF
	return time.Duration(elapsedMS) * time.Millisecond, nil
}

// windowsMover injects relative motion through SendInput. Without
// MOUSEEVENTF_ABSOLUTE, dx/dy are pixel offsets from the current position.
type windowsMover struct{}

// NewMover returns the Windows SendInput-based mover.
func NewMover() (Mover, error) {
	return windowsMover{}, nil
}

func (windowsMover) MoveRelative(dx, dy int) error {
	in := input{inputType: inputMouse}
	in.mi.dx = int32(dx)
	in.mi.dy = int32(dy)
	in.mi.dwFlags = mouseEventMove

	n, _, err := procSendInput.Call(1, uintptr(unsafe.Pointer(&in)), unsafe.Sizeof(in))
	if n != 1 {
		return fmt.Errorf("SendInput rejected the event: %v", err)
	}
	return nil
}
