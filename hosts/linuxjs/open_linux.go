// This file is part of DGVita.
//
// DGVita is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// DGVita is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with DGVita.  If not, see <https://www.gnu.org/licenses/>.

//go:build linux

package linuxjs

import (
	"os"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/jetsetilly/dgvita/curated"
	"github.com/jetsetilly/dgvita/logger"
)

// ioctl requests from linux/joystick.h
const (
	jsiocgaxes    = 0x80016a11
	jsiocgbuttons = 0x80016a12
	jsiocgname    = 0x80006a13
)

const nameLen = 128

func ioctl(fd uintptr, req uintptr, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, req, uintptr(arg))
	if errno != 0 {
		return errno
	}
	return nil
}

// Open the joystick device and read events from it in the background.
func Open(path string) (*Joystick, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, curated.Errorf(OpenFailed, err)
	}

	var axes, buttons uint8
	var name [nameLen]byte

	if err := ioctl(f.Fd(), jsiocgaxes, unsafe.Pointer(&axes)); err != nil {
		f.Close()
		return nil, curated.Errorf(OpenFailed, err)
	}
	if err := ioctl(f.Fd(), jsiocgbuttons, unsafe.Pointer(&buttons)); err != nil {
		f.Close()
		return nil, curated.Errorf(OpenFailed, err)
	}
	if err := ioctl(f.Fd(), jsiocgname|(nameLen<<16), unsafe.Pointer(&name[0])); err != nil {
		f.Close()
		return nil, curated.Errorf(OpenFailed, err)
	}

	logger.Logf(logger.Allow, "linuxjs", "%s: %s (%d axes, %d buttons)",
		path, unix.ByteSliceToString(name[:]), axes, buttons)

	j := NewJoystick()
	j.closer = f
	j.serveBackground(f)

	return j, nil
}
