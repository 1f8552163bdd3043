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

// Package blit copies the engine's frame buffer to the display buffer.
//
// Scaling is nearest neighbour and independent for each axis. The source
// column for every destination column is calculated once, when the Blitter is
// created. The source row is calculated once for every destination row. Every
// destination pixel is written on every call to Blit().
//
// Source pixels are 0x00RRGGBB. Destination pixels are packed according to a
// PixelFormat.
package blit

import (
	"fmt"

	"github.com/jetsetilly/dgvita/curated"
)

// Size of a buffer in pixels.
type Size struct {
	Width  int
	Height int
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Pixels returns the number of pixels in a buffer of the size.
func (s Size) Pixels() int {
	return s.Width * s.Height
}

// Sentinel error patterns.
const (
	BadSize   = "blit: bad size: %s %v"
	BadBuffer = "blit: bad %s buffer length: %d (expected %d)"
)

// Blitter scales and converts frames from one fixed size to another.
type Blitter struct {
	src    Size
	dst    Size
	format PixelFormat

	// source column for each destination column
	xMap []int
}

// NewBlitter is the preferred method of initialisation for the Blitter type.
// All dimensions must be positive.
func NewBlitter(src Size, dst Size, format PixelFormat) (*Blitter, error) {
	if src.Width <= 0 || src.Height <= 0 {
		return nil, curated.Errorf(BadSize, "source", src)
	}
	if dst.Width <= 0 || dst.Height <= 0 {
		return nil, curated.Errorf(BadSize, "destination", dst)
	}

	blt := &Blitter{
		src:    src,
		dst:    dst,
		format: format,
		xMap:   make([]int, dst.Width),
	}

	for x := range blt.xMap {
		blt.xMap[x] = x * src.Width / dst.Width
	}

	return blt, nil
}

func (blt *Blitter) String() string {
	return fmt.Sprintf("%s -> %s %s", blt.src, blt.dst, blt.format.Name)
}

// Source returns the size of the source buffer.
func (blt *Blitter) Source() Size {
	return blt.src
}

// Destination returns the size of the destination buffer.
func (blt *Blitter) Destination() Size {
	return blt.dst
}

// Format returns the destination pixel format.
func (blt *Blitter) Format() PixelFormat {
	return blt.format
}

// XMap returns a copy of the source column for each destination column.
func (blt *Blitter) XMap() []int {
	return append([]int(nil), blt.xMap...)
}

// Blit scales src into dst. The lengths of the buffers must match the sizes
// given to NewBlitter().
func (blt *Blitter) Blit(dst []uint32, src []uint32) error {
	if len(src) != blt.src.Pixels() {
		return curated.Errorf(BadBuffer, "source", len(src), blt.src.Pixels())
	}
	if len(dst) != blt.dst.Pixels() {
		return curated.Errorf(BadBuffer, "destination", len(dst), blt.dst.Pixels())
	}

	f := blt.format

	for y := range blt.dst.Height {
		row := src[(y*blt.src.Height/blt.dst.Height)*blt.src.Width:]
		out := dst[y*blt.dst.Width : (y+1)*blt.dst.Width]
		for x, sx := range blt.xMap {
			p := row[sx]
			out[x] = f.Alpha | (p>>16&0xff)<<f.RShift | (p>>8&0xff)<<f.GShift | (p&0xff)<<f.BShift
		}
	}

	return nil
}
