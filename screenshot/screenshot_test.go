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

package screenshot_test

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/jetsetilly/dgvita/blit"
	"github.com/jetsetilly/dgvita/curated"
	"github.com/jetsetilly/dgvita/screenshot"
	"github.com/jetsetilly/dgvita/test"
)

func testBuffer(w, h int, format blit.PixelFormat) []uint32 {
	buf := make([]uint32, w*h)
	for y := range h {
		for x := range w {
			buf[y*w+x] = format.Pack(uint8(x*16), uint8(y*16), uint8(x+y))
		}
	}
	return buf
}

func compare(t *testing.T, img image.Image, w, h int) {
	t.Helper()
	test.DemandEquality(t, img.Bounds().Dx(), w)
	test.DemandEquality(t, img.Bounds().Dy(), h)
	for y := range h {
		for x := range w {
			r, g, b, a := img.At(x, y).RGBA()
			test.ExpectEquality(t, uint8(r>>8), uint8(x*16), x, y)
			test.ExpectEquality(t, uint8(g>>8), uint8(y*16), x, y)
			test.ExpectEquality(t, uint8(b>>8), uint8(x+y), x, y)
			test.ExpectEquality(t, uint8(a>>8), uint8(0xff), x, y)
		}
	}
}

func TestPNG(t *testing.T) {
	const w, h = 8, 6
	fn := filepath.Join(t.TempDir(), "shot.png")

	test.DemandSuccess(t, screenshot.Save(fn, testBuffer(w, h, blit.FormatABGR8888), w, h, blit.FormatABGR8888))

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	test.DemandSuccess(t, err)
	compare(t, img, w, h)
}

func TestBMP(t *testing.T) {
	const w, h = 5, 7
	fn := filepath.Join(t.TempDir(), "shot.BMP")

	test.DemandSuccess(t, screenshot.Save(fn, testBuffer(w, h, blit.FormatRGBA8888), w, h, blit.FormatRGBA8888))

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	img, err := bmp.Decode(f)
	test.DemandSuccess(t, err)
	compare(t, img, w, h)
}

func TestErrors(t *testing.T) {
	dir := t.TempDir()

	err := screenshot.Save(filepath.Join(dir, "shot.gif"), make([]uint32, 4), 2, 2, blit.FormatABGR8888)
	test.ExpectSuccess(t, curated.Is(err, screenshot.UnsupportedFormat))

	fn := filepath.Join(dir, "shot.png")
	err = screenshot.Save(fn, make([]uint32, 3), 2, 2, blit.FormatABGR8888)
	test.ExpectSuccess(t, curated.Is(err, screenshot.BadBuffer))

	// no partial file is left behind
	_, err = os.Stat(fn)
	test.ExpectSuccess(t, os.IsNotExist(err))
}
