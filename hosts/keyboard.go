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

package hosts

import (
	"sync"

	"github.com/jetsetilly/dgvita/input"
)

// Key is a keyboard key that stands in for a controller button.
type Key int

// List of valid Key values.
const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyCross
	KeyCircle
	KeySquare
	KeyTriangle
	KeyL1
	KeyR1
	KeyLTrigger
	KeyRTrigger
	KeyStart
	KeySelect
	numKeys
)

var keyButtons = [numKeys]input.Buttons{
	KeyUp:       input.Up,
	KeyDown:     input.Down,
	KeyLeft:     input.Left,
	KeyRight:    input.Right,
	KeyCross:    input.Cross,
	KeyCircle:   input.Circle,
	KeySquare:   input.Square,
	KeyTriangle: input.Triangle,
	KeyL1:       input.L1,
	KeyR1:       input.R1,
	KeyLTrigger: input.LTrigger,
	KeyRTrigger: input.RTrigger,
	KeyStart:    input.Start,
	KeySelect:   input.Select,
}

// Button returns the controller button the key stands in for.
func (k Key) Button() input.Buttons {
	if k < 0 || k >= numKeys {
		return 0
	}
	return keyButtons[k]
}

// Keyboard tracks the keys that are held. It is safe to Press() and Release()
// from a different goroutine to the one calling Buttons().
type Keyboard struct {
	crit sync.Mutex
	held [numKeys]bool
}

// Press marks the key as held.
func (kb *Keyboard) Press(k Key) {
	kb.set(k, true)
}

// Release marks the key as no longer held.
func (kb *Keyboard) Release(k Key) {
	kb.set(k, false)
}

func (kb *Keyboard) set(k Key, held bool) {
	if k < 0 || k >= numKeys {
		return
	}
	kb.crit.Lock()
	defer kb.crit.Unlock()
	kb.held[k] = held
}

// ReleaseAll marks every key as no longer held. Useful when the window loses
// focus and release events will not arrive.
func (kb *Keyboard) ReleaseAll() {
	kb.crit.Lock()
	defer kb.crit.Unlock()
	kb.held = [numKeys]bool{}
}

// Buttons returns the buttons for the held keys.
func (kb *Keyboard) Buttons() input.Buttons {
	kb.crit.Lock()
	defer kb.crit.Unlock()

	var b input.Buttons
	for k, h := range kb.held {
		if h {
			b |= keyButtons[k]
		}
	}
	return b
}

// Merge the held keys into a sample from another device.
func (kb *Keyboard) Merge(s input.ControllerSample) input.ControllerSample {
	s.Buttons |= kb.Buttons()
	return s
}
