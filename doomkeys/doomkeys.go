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

// Package doomkeys is the fixed 8-bit enumeration of key codes understood by
// the doomgeneric engine. Printable characters are their lower case ASCII
// values. Special keys are in the range 0x80 to 0xff.
package doomkeys

import (
	"fmt"
	"strings"
)

// Code is a key code as delivered to the engine.
type Code uint8

// List of special key codes.
const (
	RightArrow Code = 0xae
	LeftArrow  Code = 0xac
	UpArrow    Code = 0xad
	DownArrow  Code = 0xaf
	StrafeL    Code = 0xa0
	StrafeR    Code = 0xa1
	Use        Code = 0xa2
	Fire       Code = 0xa3
	Escape     Code = 27
	Enter      Code = 13
	Tab        Code = 9
	Backspace  Code = 0x7f
	Pause      Code = 0xff
	Equals     Code = 0x3d
	Minus      Code = 0x2d
	Space      Code = ' '
	Comma      Code = ','
	Period     Code = '.'

	RShift Code = 0x80 + 0x36
	RCtrl  Code = 0x80 + 0x1d
	RAlt   Code = 0x80 + 0x38

	F1  Code = 0x80 + 0x3b
	F2  Code = 0x80 + 0x3c
	F3  Code = 0x80 + 0x3d
	F4  Code = 0x80 + 0x3e
	F5  Code = 0x80 + 0x3f
	F6  Code = 0x80 + 0x40
	F7  Code = 0x80 + 0x41
	F8  Code = 0x80 + 0x42
	F9  Code = 0x80 + 0x43
	F10 Code = 0x80 + 0x44
	F11 Code = 0x80 + 0x57
	F12 Code = 0x80 + 0x58
)

// names used by String() and Parse(). printable characters are not listed
var names = map[Code]string{
	RightArrow: "RIGHTARROW",
	LeftArrow:  "LEFTARROW",
	UpArrow:    "UPARROW",
	DownArrow:  "DOWNARROW",
	StrafeL:    "STRAFE_L",
	StrafeR:    "STRAFE_R",
	Use:        "USE",
	Fire:       "FIRE",
	Escape:     "ESCAPE",
	Enter:      "ENTER",
	Tab:        "TAB",
	Backspace:  "BACKSPACE",
	Pause:      "PAUSE",
	Equals:     "EQUALS",
	Minus:      "MINUS",
	Space:      "SPACE",
	Comma:      "COMMA",
	Period:     "PERIOD",
	RShift:     "RSHIFT",
	RCtrl:      "RCTRL",
	RAlt:       "RALT",
	F1:         "F1",
	F2:         "F2",
	F3:         "F3",
	F4:         "F4",
	F5:         "F5",
	F6:         "F6",
	F7:         "F7",
	F8:         "F8",
	F9:         "F9",
	F10:        "F10",
	F11:        "F11",
	F12:        "F12",
}

var codes map[string]Code

func init() {
	codes = make(map[string]Code, len(names))
	for c, n := range names {
		codes[n] = c
	}
}

func (c Code) String() string {
	if n, ok := names[c]; ok {
		return n
	}
	// upper case letters are never sent by the engine's own keyboard
	// handling so they are shown numerically
	if c > ' ' && c < 0x7f && (c < 'A' || c > 'Z') {
		return string(rune(c))
	}
	return fmt.Sprintf("0x%02x", uint8(c))
}

// Parse returns the Code for a key name. Names are case insensitive. A single
// printable character is accepted as itself and converted to lower case.
// Hexadecimal values of the form 0xNN are also accepted.
func Parse(s string) (Code, error) {
	s = strings.TrimSpace(s)

	if len(s) == 1 && s[0] > ' ' && s[0] < 0x7f {
		return Code(strings.ToLower(s)[0]), nil
	}

	if c, ok := codes[strings.ToUpper(s)]; ok {
		return c, nil
	}

	var v uint8
	if _, err := fmt.Sscanf(strings.ToLower(s), "0x%02x", &v); err == nil && len(s) == 4 {
		return Code(v), nil
	}

	return 0, fmt.Errorf("unrecognised key name %q", s)
}
