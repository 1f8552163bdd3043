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

// Package linuxjs is a controller that reads the Linux joystick interface
// (/dev/input/jsN). Buttons and axes are interpreted with the layout of the
// xpad driver, which is used by most Xbox style gamepads.
//
// The event decoding is portable so that it can be tested on any platform.
// Opening a device is only possible on Linux.
package linuxjs

import (
	"encoding/binary"
	"errors"
	"io"
	"sync"

	"github.com/jetsetilly/dgvita/curated"
	"github.com/jetsetilly/dgvita/hosts"
	"github.com/jetsetilly/dgvita/input"
	"github.com/jetsetilly/dgvita/logger"
)

// DefaultDevice is the first joystick device.
const DefaultDevice = "/dev/input/js0"

// Sentinel error patterns.
const (
	OpenFailed = "linuxjs: %v"
	ReadFailed = "linuxjs: read: %v"
)

// Event types. The init flag is combined with the other types for the
// synthetic events sent when the device is opened.
const (
	EventButton = 0x01
	EventAxis   = 0x02
	EventInit   = 0x80
)

// Event is the structure read from the joystick device.
type Event struct {
	Time   uint32
	Value  int16
	Type   uint8
	Number uint8
}

// xpad button numbers
var xpadButtons = []input.Buttons{
	0:  input.Cross,
	1:  input.Circle,
	2:  input.Square,
	3:  input.Triangle,
	4:  input.LTrigger,
	5:  input.RTrigger,
	6:  input.Select,
	7:  input.Start,
	8:  0,
	9:  input.L3,
	10: input.R3,
}

// xpad axis numbers
const (
	axisLX       = 0
	axisLY       = 1
	axisLTrigger = 2
	axisRX       = 3
	axisRY       = 4
	axisRTrigger = 5
	axisHatX     = 6
	axisHatY     = 7
)

// Joystick implements the platform.Controller interface.
type Joystick struct {
	crit  sync.Mutex
	state input.ControllerSample

	// the device or the reader given to Serve()
	closer io.Closer
}

// NewJoystick is the preferred method of initialisation for the Joystick
// type. Events must be supplied by Serve() or Process().
func NewJoystick() *Joystick {
	return &Joystick{
		state: input.NeutralSample,
	}
}

// Process a single event.
func (j *Joystick) Process(ev Event) {
	j.crit.Lock()
	defer j.crit.Unlock()

	switch ev.Type &^ EventInit {
	case EventButton:
		if int(ev.Number) >= len(xpadButtons) {
			return
		}
		b := xpadButtons[ev.Number]
		if ev.Value != 0 {
			j.state.Buttons |= b
		} else {
			j.state.Buttons &^= b
		}

	case EventAxis:
		switch ev.Number {
		case axisLX:
			j.state.LX = hosts.AxisFromInt16(ev.Value)
		case axisLY:
			j.state.LY = hosts.AxisFromInt16(ev.Value)
		case axisRX:
			j.state.RX = hosts.AxisFromInt16(ev.Value)
		case axisRY:
			j.state.RY = hosts.AxisFromInt16(ev.Value)
		case axisLTrigger:
			j.setButton(input.L1, ev.Value > 0)
		case axisRTrigger:
			j.setButton(input.R1, ev.Value > 0)
		case axisHatX:
			j.setButton(input.Left, ev.Value < 0)
			j.setButton(input.Right, ev.Value > 0)
		case axisHatY:
			j.setButton(input.Up, ev.Value < 0)
			j.setButton(input.Down, ev.Value > 0)
		}
	}
}

// setButton must be called with the critical section held
func (j *Joystick) setButton(b input.Buttons, set bool) {
	if set {
		j.state.Buttons |= b
	} else {
		j.state.Buttons &^= b
	}
}

// Serve reads events from the reader until the end of the stream or an error.
// The end of the stream is not an error.
func (j *Joystick) Serve(r io.Reader) error {
	var ev Event
	for {
		err := binary.Read(r, binary.LittleEndian, &ev)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return curated.Errorf(ReadFailed, err)
		}
		j.Process(ev)
	}
}

// Sample implements the platform.Controller interface. A joystick that has
// been disconnected reports the most recent state.
func (j *Joystick) Sample() (input.ControllerSample, error) {
	j.crit.Lock()
	defer j.crit.Unlock()
	return j.state, nil
}

// Close the device opened by Open().
func (j *Joystick) Close() error {
	j.crit.Lock()
	c := j.closer
	j.closer = nil
	j.crit.Unlock()

	if c == nil {
		return nil
	}
	return c.Close()
}

// serve in the background and log the reason for stopping
func (j *Joystick) serveBackground(r io.Reader) {
	go func() {
		if err := j.Serve(r); err != nil {
			logger.Log(logger.Allow, "linuxjs", err)
			return
		}
		logger.Log(logger.Allow, "linuxjs", "device closed")
	}()
}
