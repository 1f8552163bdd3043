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

//go:build !statsview

package statsview

import (
	"fmt"
	"io"
)

// DefaultAddress of the stats server.
const DefaultAddress = "localhost:12600"

// Launch prints a message explaining that statsview is not available.
func Launch(output io.Writer, _ string) {
	fmt.Fprintln(output, "stats server not available in this build (requires the statsview build tag)")
}

// Available returns false because the program was built without the
// statsview tag.
func Available() bool {
	return false
}
