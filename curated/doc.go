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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with Errorf(), which takes a formatting pattern
// and values in the same way as fmt.Errorf().
//
// The pattern is what identifies a curated error. Sentinel patterns should be
// stored as named package level constants so that callers can test for them:
//
//	const NotFound = "wad: no game data found in %s"
//
//	err := curated.Errorf(NotFound, dir)
//	if curated.Is(err, NotFound) {
//		...
//	}
//
// Is() checks the outermost error only. Has() checks whether the pattern
// appears anywhere in the chain of curated errors passed as values:
//
//	e := curated.Errorf(NotFound, dir)
//	f := curated.Errorf("dgvita: %v", e)
//
//	curated.Is(f, NotFound)  // false
//	curated.Has(f, NotFound) // true
//
// IsAny() answers whether an error was created by this package at all. We
// can think of a curated error as an expected error and an uncurated error as
// an unexpected error.
//
// Error() normalises the message chain by removing duplicate adjacent parts.
// Parts are separated by the sub-string ": ". This means that wrapping an
// error with a pattern that repeats the prefix of the wrapped error does not
// result in the prefix appearing twice:
//
//	e := curated.Errorf("sdl: %v", sdlErr)
//	f := curated.Errorf("sdl: %v", e)
//
//	fmt.Println(f) // "sdl: <sdl error text>"
package curated
