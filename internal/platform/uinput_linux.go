//go:build linux

package platform

import (
	"fmt"
	"os"
	"syscall"
	"unsafe"
)

const (
	uinputDevicePath = "/dev/uinput"
	uinputBusTypeUSB = 0x03
	uinputVendorID   = 0x1234
	uinputProductID  = 0x5678
	uinputDeviceName = "nudge-mouse"

	// Linux input event types
	evSyn = 0x00
	evRel = 0x02
	relX  = 0x00
	relY  = 0x01

	// uinput ioctl commands
	uiSetEvbit   = 0x40045564 // _IOW('U', 100, int)
	uiSetRelbit  = 0x40045565 // _IOW('U', 101, int)
	uiDevCreate  = 0x5501     // _IO('U', 1)
	uiDevDestroy = 0x5502     // _IO('U', 2)
)

type uinputUserDev struct {
	name [80]byte
	id   struct {
		bustype uint16
		vendor  uint16
		product uint16
		version uint16
	}
	ffEffectsMax uint32
	absmax       [64]int32
	absmin       [64]int32
	absfuzz      [64]int32
	absflat      [64]int32
}

type inputEvent struct {
	time  syscall.Timeval
	etype uint16
	code  uint16
	value int32
}

// uinputDevice injects relative mouse motion through a virtual input device
// created via the uinput kernel interface. It works on both X11 and Wayland
// but requires write access to /dev/uinput.
type uinputDevice struct {
	fd   uintptr
	file *os.File
}

func (u *uinputDevice) setup() error {
	f, err := os.OpenFile(uinputDevicePath, os.O_WRONLY|syscall.O_NONBLOCK, 0o660)
	if err != nil {
		return fmt.Errorf("failed to open uinput device: %w", err)
	}
	u.file = f
	u.fd = f.Fd()

	if err := u.enableRelativeAxes(); err != nil {
		u.close()
		return fmt.Errorf("failed to enable relative axes: %w", err)
	}
	if err := u.createDevice(); err != nil {
		u.close()
		return fmt.Errorf("failed to create uinput device: %w", err)
	}
	return nil
}

func (u *uinputDevice) enableRelativeAxes() error {
	for _, req := range []struct{ cmd, arg uintptr }{
		{uiSetEvbit, evRel},
		{uiSetRelbit, relX},
		{uiSetRelbit, relY},
	} {
		if _, _, errno := syscall.Syscall(syscall.SYS_IOCTL, u.fd, req.cmd, req.arg); errno != 0 {
			return errno
		}
	}
	return nil
}

func (u *uinputDevice) createDevice() error {
	var dev uinputUserDev
	copy(dev.name[:], uinputDeviceName)
	dev.id.bustype = uinputBusTypeUSB
	dev.id.vendor = uinputVendorID
	dev.id.product = uinputProductID

	if _, _, errno := syscall.Syscall(syscall.SYS_WRITE, u.fd, uintptr(unsafe.Pointer(&dev)), unsafe.Sizeof(dev)); errno != 0 {
		return errno
	}
	if _, _, errno := syscall.Syscall(syscall.SYS_IOCTL, u.fd, uintptr(uiDevCreate), 0); errno != 0 {
		return errno
	}
	return nil
}

// MoveRelative emits a relative motion event followed by a sync report.
func (u *uinputDevice) MoveRelative(dx, dy int) error {
	events := []inputEvent{
		{etype: evRel, code: relX, value: int32(dx)},
		{etype: evRel, code: relY, value: int32(dy)},
		{etype: evSyn, code: 0, value: 0},
	}
	for _, ev := range events {
		if _, err := syscall.Write(int(u.fd), (*[unsafe.Sizeof(ev)]byte)(unsafe.Pointer(&ev))[:]); err != nil {
			return err
		}
	}
	return nil
}

func (u *uinputDevice) close() {
	if u.fd != 0 {
		syscall.Syscall(syscall.SYS_IOCTL, u.fd, uintptr(uiDevDestroy), 0)
	}
	if u.file != nil {
		u.file.Close()
		u.file = nil
	}
	u.fd = 0
}
