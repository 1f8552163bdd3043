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

// Package terminal is a controller that reads key presses from a terminal. It
// is intended for use with the headless display.
//
// A terminal does not report key releases so each key press holds the
// corresponding button for a fixed number of samples. Pressing the key again
// before the button is released restarts the count.
package terminal

import (
	"sync"

	"github.com/jetsetilly/dgvita/curated"
	"github.com/jetsetilly/dgvita/hosts"
	"github.com/jetsetilly/dgvita/input"
	"github.com/jetsetilly/dgvita/platform"
)

// DefaultHold is the number of samples a key press is held for.
const DefaultHold = 8

// list of ASCII codes that are not printable
const (
	keyInterrupt = 3
	keyTab       = 9
	keyReturn    = 13
	keyEsc       = 27
	keyBackspace = 127
)

// characters following the escape character for the cursor keys
const (
	escCursor      = '['
	cursorUp       = 'A'
	cursorDown     = 'B'
	cursorForward  = 'C'
	cursorBackward = 'D'
)

var keys = map[byte]hosts.Key{
	'z':          hosts.KeyCross,
	'x':          hosts.KeyCircle,
	'a':          hosts.KeySquare,
	's':          hosts.KeyTriangle,
	'q':          hosts.KeyLTrigger,
	'w':          hosts.KeyRTrigger,
	'1':          hosts.KeyL1,
	'2':          hosts.KeyR1,
	' ':          hosts.KeyCross,
	keyReturn:    hosts.KeyStart,
	keyTab:       hosts.KeySelect,
	keyBackspace: hosts.KeySelect,
}

var cursor = map[byte]hosts.Key{
	cursorUp:       hosts.KeyUp,
	cursorDown:     hosts.KeyDown,
	cursorForward:  hosts.KeyRight,
	cursorBackward: hosts.KeyLeft,
}

// Controller implements the platform.Controller interface.
type Controller struct {
	crit sync.Mutex

	hold int

	// number of samples remaining for each held key
	held map[hosts.Key]int

	// the interrupt key has been pressed
	closed bool

	term *rawTerm
}

// NewController is the preferred method of initialisation for the Controller
// type. The hold value is the number of samples a key press is held for.
func NewController(hold int) *Controller {
	return &Controller{
		hold: max(hold, 1),
		held: make(map[hosts.Key]int),
	}
}

// Feed bytes read from the terminal to the controller.
func (c *Controller) Feed(b []byte) {
	c.crit.Lock()
	defer c.crit.Unlock()

	for i := 0; i < len(b); i++ {
		switch b[i] {
		case keyInterrupt:
			c.closed = true
		case keyEsc:
			if i+2 < len(b) && b[i+1] == escCursor {
				if k, ok := cursor[b[i+2]]; ok {
					c.held[k] = c.hold
				}
				i += 2
			}
		default:
			ch := b[i]
			if ch >= 'A' && ch <= 'Z' {
				ch += 'a' - 'A'
			}
			if k, ok := keys[ch]; ok {
				c.held[k] = c.hold
			}
		}
	}
}

// Sample implements the platform.Controller interface.
func (c *Controller) Sample() (input.ControllerSample, error) {
	c.crit.Lock()
	defer c.crit.Unlock()

	if c.closed {
		return input.NeutralSample, curated.Errorf(platform.Closed)
	}

	s := input.NeutralSample
	for k, n := range c.held {
		s.Buttons |= k.Button()
		if n <= 1 {
			delete(c.held, k)
		} else {
			c.held[k] = n - 1
		}
	}

	return s, nil
}
