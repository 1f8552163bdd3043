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

//go:build linux || darwin

package terminal

import (
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"

	"github.com/jetsetilly/dgvita/curated"
	"github.com/jetsetilly/dgvita/logger"
)

type rawTerm struct {
	input   *os.File
	canAttr unix.Termios
	rawAttr unix.Termios
}

// Attach the controller to the terminal. The terminal is put into raw mode
// and key presses are read until Detach() is called.
func (c *Controller) Attach(f *os.File) error {
	t := &rawTerm{input: f}

	if err := termios.Tcgetattr(f.Fd(), &t.canAttr); err != nil {
		return curated.Errorf("terminal: %v", err)
	}
	t.rawAttr = t.canAttr
	termios.Cfmakeraw(&t.rawAttr)

	// raw mode disables output processing too. we still want newlines in the
	// log output to return the cursor
	t.rawAttr.Oflag |= unix.OPOST

	if err := termios.Tcsetattr(f.Fd(), termios.TCIFLUSH, &t.rawAttr); err != nil {
		return curated.Errorf("terminal: %v", err)
	}

	c.crit.Lock()
	c.term = t
	c.crit.Unlock()

	go func() {
		b := make([]byte, 16)
		for {
			n, err := f.Read(b)
			if err != nil {
				logger.Logf(logger.Allow, "terminal", "read: %v", err)
				return
			}
			c.Feed(b[:n])
		}
	}()

	return nil
}

// Detach restores the terminal to the state it was in before Attach().
func (c *Controller) Detach() error {
	c.crit.Lock()
	t := c.term
	c.term = nil
	c.crit.Unlock()

	if t == nil {
		return nil
	}

	if err := termios.Tcsetattr(t.input.Fd(), termios.TCIFLUSH, &t.canAttr); err != nil {
		return curated.Errorf("terminal: %v", err)
	}

	return nil
}
