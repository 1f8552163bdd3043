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

package input

import (
	"fmt"
	"strings"
)

// Buttons is the digital button bitmask of a ControllerSample. The bit values
// follow the layout of the Vita SCE_CTRL constants.
type Buttons uint32

// List of valid Buttons values.
const (
	Select   Buttons = 0x00000001
	L3       Buttons = 0x00000002
	R3       Buttons = 0x00000004
	Start    Buttons = 0x00000008
	Up       Buttons = 0x00000010
	Right    Buttons = 0x00000020
	Down     Buttons = 0x00000040
	Left     Buttons = 0x00000080
	LTrigger Buttons = 0x00000100
	RTrigger Buttons = 0x00000200
	L1       Buttons = 0x00000400
	R1       Buttons = 0x00000800
	Triangle Buttons = 0x00001000
	Circle   Buttons = 0x00002000
	Cross    Buttons = 0x00004000
	Square   Buttons = 0x00008000
)

// in bit order
var buttonNames = []struct {
	button Buttons
	name   string
}{
	{Select, "SELECT"},
	{L3, "L3"},
	{R3, "R3"},
	{Start, "START"},
	{Up, "UP"},
	{Right, "RIGHT"},
	{Down, "DOWN"},
	{Left, "LEFT"},
	{LTrigger, "LTRIGGER"},
	{RTrigger, "RTRIGGER"},
	{L1, "L1"},
	{R1, "R1"},
	{Triangle, "TRIANGLE"},
	{Circle, "CIRCLE"},
	{Cross, "CROSS"},
	{Square, "SQUARE"},
}

// String returns the names of the pressed buttons separated by a plus sign.
func (b Buttons) String() string {
	if b == 0 {
		return "NONE"
	}

	s := strings.Builder{}
	for _, n := range buttonNames {
		if b&n.button == n.button {
			if s.Len() > 0 {
				s.WriteRune('+')
			}
			s.WriteString(n.name)
			b &^= n.button
		}
	}

	// unnamed bits
	if b != 0 {
		if s.Len() > 0 {
			s.WriteRune('+')
		}
		s.WriteString(fmt.Sprintf("%#x", uint32(b)))
	}

	return s.String()
}

// ParseButton returns the single button with the name. Names are case
// insensitive.
func ParseButton(s string) (Buttons, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for _, n := range buttonNames {
		if n.name == s {
			return n.button, nil
		}
	}
	return 0, fmt.Errorf("unrecognised button %q", s)
}

// Axis identifies one of the four analog axes of a ControllerSample.
type Axis int

// List of valid Axis values.
const (
	LX Axis = iota
	LY
	RX
	RY
)

func (a Axis) String() string {
	switch a {
	case LX:
		return "LX"
	case LY:
		return "LY"
	case RX:
		return "RX"
	case RY:
		return "RY"
	}
	return fmt.Sprintf("axis(%d)", int(a))
}

// AxisCentre is the value of an analog axis at rest.
const AxisCentre = 128

// ControllerSample is the state of the controller at one instant.
type ControllerSample struct {
	Buttons Buttons

	// analog axes in the range 0 to 255. left and up are low values
	LX, LY uint8
	RX, RY uint8
}

// NeutralSample is a sample with no buttons pressed and both sticks
// centred.
var NeutralSample = ControllerSample{LX: AxisCentre, LY: AxisCentre, RX: AxisCentre, RY: AxisCentre}

// Axis returns the value of the axis.
func (s ControllerSample) Axis(a Axis) uint8 {
	switch a {
	case LX:
		return s.LX
	case LY:
		return s.LY
	case RX:
		return s.RX
	case RY:
		return s.RY
	}
	return AxisCentre
}

// SetAxis changes the value of the axis.
func (s *ControllerSample) SetAxis(a Axis, v uint8) {
	switch a {
	case LX:
		s.LX = v
	case LY:
		s.LY = v
	case RX:
		s.RX = v
	case RY:
		s.RY = v
	}
}

func (s ControllerSample) String() string {
	return fmt.Sprintf("%s LX=%d LY=%d RX=%d RY=%d", s.Buttons, s.LX, s.LY, s.RX, s.RY)
}
