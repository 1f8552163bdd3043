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

//go:build !(linux || darwin)

package terminal

import (
	"os"

	"github.com/jetsetilly/dgvita/curated"
)

type rawTerm struct{}

// Attach is not supported on this platform.
func (c *Controller) Attach(f *os.File) error {
	return curated.Errorf("terminal: raw mode not supported on this platform")
}

// Detach does nothing on this platform.
func (c *Controller) Detach() error {
	return nil
}
