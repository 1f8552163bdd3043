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

package digest_test

import (
	"testing"

	"github.com/jetsetilly/dgvita/blit"
	"github.com/jetsetilly/dgvita/digest"
	"github.com/jetsetilly/dgvita/hosts/headless"
	"github.com/jetsetilly/dgvita/test"
)

func TestChain(t *testing.T) {
	a := digest.NewVideo(headless.NewHost(2, 2, blit.FormatABGR8888))
	b := digest.NewVideo(headless.NewHost(2, 2, blit.FormatABGR8888))

	empty := a.Hash()
	test.ExpectEquality(t, empty, b.Hash())

	frame1 := []uint32{1, 2, 3, 4}
	frame2 := []uint32{5, 6, 7, 8}

	test.ExpectSuccess(t, a.Present(frame1))
	test.ExpectSuccess(t, b.Present(frame1))
	test.ExpectEquality(t, a.Hash(), b.Hash())
	test.ExpectInequality(t, a.Hash(), empty)

	// the same final frame after a different history gives a different hash
	test.ExpectSuccess(t, a.Present(frame2))
	test.ExpectSuccess(t, b.Present(frame1))
	test.ExpectSuccess(t, b.Present(frame2))
	test.ExpectInequality(t, a.Hash(), b.Hash())
	test.ExpectEquality(t, a.Frames(), 2)
	test.ExpectEquality(t, b.Frames(), 3)

	a.ResetDigest()
	test.ExpectEquality(t, a.Hash(), empty)
	test.ExpectEquality(t, a.Frames(), 0)
}

func TestPassthrough(t *testing.T) {
	h := headless.NewHost(2, 2, blit.FormatRGBA8888)
	dig := digest.NewVideo(h)

	test.ExpectEquality(t, dig.Format(), blit.FormatRGBA8888)
	w, ht := dig.Resolution()
	test.ExpectEquality(t, w, 2)
	test.ExpectEquality(t, ht, 2)

	test.ExpectSuccess(t, dig.Present([]uint32{9, 9, 9, 9}))
	test.ExpectEquality(t, h.Frames(), 1)
	test.ExpectEquality(t, h.LastFrame()[0], uint32(9))

	dig.SetTitle("title")
	test.ExpectEquality(t, h.Title(), "title")
}
