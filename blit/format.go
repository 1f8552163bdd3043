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

package blit

import "fmt"

// PixelFormat describes how the red, green and blue channels are packed into a
// destination pixel. Each channel is eight bits wide and is shifted left by
// the given amount. Alpha is ORed into every pixel so that the pixel is
// opaque.
type PixelFormat struct {
	Name   string
	RShift uint
	GShift uint
	BShift uint
	Alpha  uint32
}

func (f PixelFormat) String() string {
	return fmt.Sprintf("%s (R<<%d G<<%d B<<%d alpha %#08x)", f.Name, f.RShift, f.GShift, f.BShift, f.Alpha)
}

// Pack the channel values into a pixel.
func (f PixelFormat) Pack(r, g, b uint8) uint32 {
	return f.Alpha | uint32(r)<<f.RShift | uint32(g)<<f.GShift | uint32(b)<<f.BShift
}

// Unpack the channel values from a pixel.
func (f PixelFormat) Unpack(p uint32) (r, g, b uint8) {
	return uint8(p >> f.RShift), uint8(p >> f.GShift), uint8(p >> f.BShift)
}

// List of pixel formats.
var (
	// FormatABGR8888 is A8B8G8R8 as a 32 bit value. This is the native format
	// of the Vita display, the SDL_PIXELFORMAT_ABGR8888 texture format and the
	// byte order of Ebiten's WritePixels() on little endian machines.
	FormatABGR8888 = PixelFormat{Name: "ABGR8888", RShift: 0, GShift: 8, BShift: 16, Alpha: 0xff000000}

	// FormatARGB8888 is A8R8G8B8 as a 32 bit value. The engine's own format
	// with the alpha byte set.
	FormatARGB8888 = PixelFormat{Name: "ARGB8888", RShift: 16, GShift: 8, BShift: 0, Alpha: 0xff000000}

	// FormatRGBA8888 is R8G8B8A8 as a 32 bit value.
	FormatRGBA8888 = PixelFormat{Name: "RGBA8888", RShift: 24, GShift: 16, BShift: 8, Alpha: 0x000000ff}
)

// SourceFormat is the layout of the engine's frame buffer. The top byte is
// ignored.
var SourceFormat = PixelFormat{Name: "XRGB8888", RShift: 16, GShift: 8, BShift: 0}
