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

package terminal_test

import (
	"testing"

	"github.com/jetsetilly/dgvita/curated"
	"github.com/jetsetilly/dgvita/hosts/terminal"
	"github.com/jetsetilly/dgvita/input"
	"github.com/jetsetilly/dgvita/platform"
	"github.com/jetsetilly/dgvita/test"
)

func TestHold(t *testing.T) {
	c := terminal.NewController(2)

	s, err := c.Sample()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, input.NeutralSample)

	c.Feed([]byte("Z"))
	s, _ = c.Sample()
	test.ExpectEquality(t, s.Buttons, input.Cross)
	s, _ = c.Sample()
	test.ExpectEquality(t, s.Buttons, input.Cross)
	s, _ = c.Sample()
	test.ExpectEquality(t, s.Buttons, input.Buttons(0))
}

func TestRestart(t *testing.T) {
	c := terminal.NewController(2)

	c.Feed([]byte("z"))
	_, _ = c.Sample()
	c.Feed([]byte("z"))
	s, _ := c.Sample()
	test.ExpectEquality(t, s.Buttons, input.Cross)
	s, _ = c.Sample()
	test.ExpectEquality(t, s.Buttons, input.Cross)
	s, _ = c.Sample()
	test.ExpectEquality(t, s.Buttons, input.Buttons(0))
}

func TestCursor(t *testing.T) {
	c := terminal.NewController(1)

	c.Feed([]byte{27, '[', 'A', 27, '[', 'D', 13})
	s, _ := c.Sample()
	test.ExpectEquality(t, s.Buttons, input.Up|input.Left|input.Start)

	// a lone escape or unknown sequence is ignored
	c.Feed([]byte{27})
	c.Feed([]byte{27, '[', 'Z'})
	s, _ = c.Sample()
	test.ExpectEquality(t, s.Buttons, input.Buttons(0))
}

func TestInterrupt(t *testing.T) {
	c := terminal.NewController(terminal.DefaultHold)
	c.Feed([]byte{3})
	_, err := c.Sample()
	test.ExpectSuccess(t, curated.Is(err, platform.Closed))
}
