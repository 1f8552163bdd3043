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

package platform

import (
	"github.com/jetsetilly/dgvita/blit"
	"github.com/jetsetilly/dgvita/input"
)

// Closed is returned by a Controller when the host has been closed by the
// user.
const Closed = "platform: host closed"

// Display shows frames prepared by the Backend.
type Display interface {
	// Resolution of the display buffer. Must not change.
	Resolution() (width int, height int)

	// Format of the pixels in the display buffer.
	Format() blit.PixelFormat

	// Present the buffer. The buffer is owned by the Backend and will be
	// overwritten on the next frame so the display must copy it if it needs
	// to keep it.
	Present(buf []uint32) error
}

// TitledDisplay is implemented by displays that can show a title.
type TitledDisplay interface {
	Display
	SetTitle(title string)
}

// Controller samples the player's input.
type Controller interface {
	// Sample returns the current state of the controller. Returns the Closed
	// error if the host has been closed.
	Sample() (input.ControllerSample, error)
}

// IdleController is a Controller with nothing pressed and the sticks
// centred.
type IdleController struct{}

// Sample implements the Controller interface.
func (IdleController) Sample() (input.ControllerSample, error) {
	return input.NeutralSample, nil
}
