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

// Package screenshot saves the display buffer as an image file. The format
// of the file is chosen by the file extension: .png or .bmp.
package screenshot

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/jetsetilly/dgvita/blit"
	"github.com/jetsetilly/dgvita/curated"
	"github.com/jetsetilly/dgvita/logger"
)

// Sentinel error patterns.
const (
	UnsupportedFormat = "screenshot: unsupported format: %s"
	BadBuffer         = "screenshot: buffer length %d does not match %dx%d"
	SaveFailed        = "screenshot: %v"
)

// ToImage converts the buffer to an image. The alpha channel is ignored.
func ToImage(buf []uint32, w int, h int, format blit.PixelFormat) (*image.RGBA, error) {
	if w <= 0 || h <= 0 || len(buf) != w*h {
		return nil, curated.Errorf(BadBuffer, len(buf), w, h)
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			r, g, b := format.Unpack(buf[y*w+x])
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 0xff})
		}
	}

	return img, nil
}

// Encode the buffer to the writer. The ext argument is the file extension of
// the required format, including the leading dot.
func Encode(wr io.Writer, ext string, buf []uint32, w int, h int, format blit.PixelFormat) error {
	img, err := ToImage(buf, w, h, format)
	if err != nil {
		return err
	}

	switch strings.ToLower(ext) {
	case ".png":
		err = png.Encode(wr, img)
	case ".bmp":
		err = bmp.Encode(wr, img)
	default:
		return curated.Errorf(UnsupportedFormat, ext)
	}
	if err != nil {
		return curated.Errorf(SaveFailed, err)
	}

	return nil
}

// Save the buffer to the named file.
func Save(path string, buf []uint32, w int, h int, format blit.PixelFormat) error {
	ext := filepath.Ext(path)
	switch strings.ToLower(ext) {
	case ".png", ".bmp":
	default:
		return curated.Errorf(UnsupportedFormat, ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return curated.Errorf(SaveFailed, err)
	}

	err = Encode(f, ext, buf, w, h, format)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = curated.Errorf(SaveFailed, cerr)
	}
	if err != nil {
		os.Remove(path)
		return err
	}

	logger.Logf(logger.Allow, "screenshot", "saved %s", path)

	return nil
}
