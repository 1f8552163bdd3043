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

package blit_test

import (
	"math/rand/v2"
	"testing"

	"github.com/jetsetilly/dgvita/blit"
	"github.com/jetsetilly/dgvita/curated"
	"github.com/jetsetilly/dgvita/test"
)

func TestBadSizes(t *testing.T) {
	_, err := blit.NewBlitter(blit.Size{0, 200}, blit.Size{960, 544}, blit.FormatABGR8888)
	test.ExpectSuccess(t, curated.Is(err, blit.BadSize))

	_, err = blit.NewBlitter(blit.Size{320, 200}, blit.Size{960, -1}, blit.FormatABGR8888)
	test.ExpectSuccess(t, curated.Is(err, blit.BadSize))
}

func TestBadBuffers(t *testing.T) {
	blt, err := blit.NewBlitter(blit.Size{2, 2}, blit.Size{4, 4}, blit.FormatABGR8888)
	test.DemandSuccess(t, err)

	err = blt.Blit(make([]uint32, 16), make([]uint32, 3))
	test.ExpectSuccess(t, curated.Is(err, blit.BadBuffer))

	err = blt.Blit(make([]uint32, 15), make([]uint32, 4))
	test.ExpectSuccess(t, curated.Is(err, blit.BadBuffer))

	test.ExpectSuccess(t, blt.Blit(make([]uint32, 16), make([]uint32, 4)))
}

func TestIdentity(t *testing.T) {
	sz := blit.Size{7, 5}
	rng := rand.New(rand.NewPCG(2, 3))

	src := make([]uint32, sz.Pixels())
	for i := range src {
		src[i] = rng.Uint32()
	}

	for _, f := range []blit.PixelFormat{blit.FormatABGR8888, blit.FormatARGB8888, blit.FormatRGBA8888} {
		blt, err := blit.NewBlitter(sz, sz, f)
		test.DemandSuccess(t, err)

		dst := make([]uint32, sz.Pixels())
		test.DemandSuccess(t, blt.Blit(dst, src))

		for i := range src {
			r, g, b := blit.SourceFormat.Unpack(src[i])
			test.ExpectEquality(t, dst[i], f.Pack(r, g, b), f.Name, i)
			test.ExpectEquality(t, dst[i]&f.Alpha, f.Alpha, f.Name, i)
		}
	}
}

func TestChannelOrder(t *testing.T) {
	sz := blit.Size{1, 1}
	src := []uint32{0xaa112233}
	dst := make([]uint32, 1)

	blt, _ := blit.NewBlitter(sz, sz, blit.FormatABGR8888)
	test.DemandSuccess(t, blt.Blit(dst, src))
	test.ExpectEquality(t, dst[0], uint32(0xff332211))

	blt, _ = blit.NewBlitter(sz, sz, blit.FormatARGB8888)
	test.DemandSuccess(t, blt.Blit(dst, src))
	test.ExpectEquality(t, dst[0], uint32(0xff112233))

	blt, _ = blit.NewBlitter(sz, sz, blit.FormatRGBA8888)
	test.DemandSuccess(t, blt.Blit(dst, src))
	test.ExpectEquality(t, dst[0], uint32(0x112233ff))
}

func TestUpscale(t *testing.T) {
	blt, err := blit.NewBlitter(blit.Size{2, 2}, blit.Size{4, 4}, blit.FormatARGB8888)
	test.DemandSuccess(t, err)

	xMap := blt.XMap()
	test.DemandEquality(t, len(xMap), 4)
	for i, v := range []int{0, 0, 1, 1} {
		test.ExpectEquality(t, xMap[i], v, i)
	}

	src := []uint32{
		0x000001, 0x000002,
		0x000003, 0x000004,
	}
	dst := make([]uint32, 16)
	test.DemandSuccess(t, blt.Blit(dst, src))

	// (3,3) reads (1,1)
	test.ExpectEquality(t, dst[3*4+3], uint32(0xff000004))

	expected := []uint32{
		1, 1, 2, 2,
		1, 1, 2, 2,
		3, 3, 4, 4,
		3, 3, 4, 4,
	}
	for i := range expected {
		test.ExpectEquality(t, dst[i], 0xff000000|expected[i], i)
	}
}

func TestDisplayScale(t *testing.T) {
	src := blit.Size{320, 200}
	dst := blit.Size{960, 544}

	blt, err := blit.NewBlitter(src, dst, blit.FormatABGR8888)
	test.DemandSuccess(t, err)

	xMap := blt.XMap()
	test.DemandEquality(t, len(xMap), dst.Width)
	for i, v := range xMap {
		test.ExpectSuccess(t, v >= 0 && v < src.Width, i)
		test.ExpectEquality(t, v, i/3, i)
	}

	// each source pixel is its own index so that the source of every
	// destination pixel can be checked
	s := make([]uint32, src.Pixels())
	for i := range s {
		s[i] = uint32(i)
	}
	d := make([]uint32, dst.Pixels())
	test.DemandSuccess(t, blt.Blit(d, s))

	for y := range dst.Height {
		for x := range dst.Width {
			r, g, b := blit.FormatABGR8888.Unpack(d[y*dst.Width+x])
			idx := int(r)<<16 | int(g)<<8 | int(b)
			if !test.ExpectEquality(t, idx, (y*src.Height/dst.Height)*src.Width+x*src.Width/dst.Width, x, y) {
				return
			}
		}
	}
}

func TestFullOverwrite(t *testing.T) {
	blt, err := blit.NewBlitter(blit.Size{3, 3}, blit.Size{5, 7}, blit.FormatRGBA8888)
	test.DemandSuccess(t, err)

	src := make([]uint32, 9)
	dst := make([]uint32, 35)
	for i := range dst {
		dst[i] = 0xdeadbe00
	}

	// all black source gives a destination with only the alpha set
	test.DemandSuccess(t, blt.Blit(dst, src))
	for i := range dst {
		test.ExpectEquality(t, dst[i], uint32(0x000000ff), i)
	}
}

func TestNoAllocation(t *testing.T) {
	blt, err := blit.NewBlitter(blit.Size{320, 200}, blit.Size{960, 544}, blit.FormatABGR8888)
	test.DemandSuccess(t, err)

	src := make([]uint32, 320*200)
	dst := make([]uint32, 960*544)
	allocs := testing.AllocsPerRun(10, func() {
		_ = blt.Blit(dst, src)
	})
	test.ExpectEquality(t, allocs, 0.0)
}

func TestPackUnpack(t *testing.T) {
	for _, f := range []blit.PixelFormat{blit.FormatABGR8888, blit.FormatARGB8888, blit.FormatRGBA8888, blit.SourceFormat} {
		r, g, b := f.Unpack(f.Pack(0x12, 0x34, 0x56))
		test.ExpectEquality(t, r, uint8(0x12), f.Name)
		test.ExpectEquality(t, g, uint8(0x34), f.Name)
		test.ExpectEquality(t, b, uint8(0x56), f.Name)
	}
}

func BenchmarkBlit(b *testing.B) {
	blt, _ := blit.NewBlitter(blit.Size{320, 200}, blit.Size{960, 544}, blit.FormatABGR8888)
	src := make([]uint32, 320*200)
	dst := make([]uint32, 960*544)
	for b.Loop() {
		_ = blt.Blit(dst, src)
	}
}
