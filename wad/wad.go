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

// Package wad finds the game data file and prepares the engine's command line
// arguments.
//
// The data directory is searched for a list of candidate file names in
// priority order. The first candidate that exists is used. If no candidate
// exists the path of the first candidate is returned along with the NotFound
// error. The caller should log the error and start the engine anyway because
// the engine reports a missing file in its own way.
package wad

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jetsetilly/dgvita/curated"
	"github.com/jetsetilly/dgvita/logger"
)

// Sentinel error patterns.
const (
	NotFound   = "wad: no game data found in %s (tried %v)"
	NoNames    = "wad: no candidate names"
	BadHeader  = "wad: %s: bad header"
	ReadFailed = "wad: %s: %v"
)

// DefaultNames is the list of candidate file names in priority order.
var DefaultNames = []string{
	"chex2.wad",
	"chex.wad",
	"CHEX2.WAD",
	"CHEX.WAD",
	"doom.wad",
	"DOOM.WAD",
}

// Search describes where to look for the game data.
type Search struct {
	Dir   string
	Names []string
}

// NewSearch returns a Search of the directory for the default names.
func NewSearch(dir string) Search {
	return Search{
		Dir:   dir,
		Names: append([]string(nil), DefaultNames...),
	}
}

// Candidates returns the full path of every candidate in priority order.
func (s Search) Candidates() []string {
	c := make([]string, 0, len(s.Names))
	for _, n := range s.Names {
		c = append(c, filepath.Join(s.Dir, n))
	}
	return c
}

// Prepare creates the data directory if it does not exist.
func (s Search) Prepare() error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return curated.Errorf(ReadFailed, s.Dir, err)
	}
	return nil
}

// Locate returns the first candidate that exists and is a regular file.
func (s Search) Locate() (string, error) {
	c := s.Candidates()
	if len(c) == 0 {
		return "", curated.Errorf(NoNames)
	}

	for _, p := range c {
		fi, err := os.Stat(p)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				logger.Logf(logger.Allow, "wad", "%s: %v", p, err)
			}
			continue
		}
		if fi.Mode().IsRegular() {
			logger.Logf(logger.Allow, "wad", "found %s", p)
			return p, nil
		}
	}

	return c[0], curated.Errorf(NotFound, s.Dir, s.Names)
}

// Args returns the engine's command line arguments. The program name is the
// first argument. PWADs are added with a single -file argument.
func Args(program string, iwad string, pwads ...string) []string {
	args := []string{program, "-iwad", iwad}
	if len(pwads) > 0 {
		args = append(args, "-file")
		args = append(args, pwads...)
	}
	return args
}

// Kind of WAD file.
type Kind int

// List of valid Kind values.
const (
	Unknown Kind = iota
	IWAD
	PWAD
)

func (k Kind) String() string {
	switch k {
	case IWAD:
		return "IWAD"
	case PWAD:
		return "PWAD"
	}
	return "unknown"
}

// Header is the twelve byte header at the start of every WAD file.
type Header struct {
	Kind Kind

	// number of lumps in the directory
	Lumps int32

	// file offset of the directory
	DirectoryOffset int32
}

func (h Header) String() string {
	return fmt.Sprintf("%s with %d lumps", h.Kind, h.Lumps)
}

// ReadHeader reads the header of a WAD file.
func ReadHeader(r io.Reader) (Header, error) {
	var raw struct {
		ID     [4]byte
		Lumps  int32
		Offset int32
	}
	if err := binary.Read(r, binary.LittleEndian, &raw); err != nil {
		return Header{}, err
	}

	h := Header{Lumps: raw.Lumps, DirectoryOffset: raw.Offset}
	switch string(raw.ID[:]) {
	case "IWAD":
		h.Kind = IWAD
	case "PWAD":
		h.Kind = PWAD
	default:
		return h, errors.New("unrecognised identification")
	}

	if h.Lumps < 0 || h.DirectoryOffset < 0 {
		return h, errors.New("negative directory")
	}

	return h, nil
}

// Identify returns the kind of the WAD file at path.
func Identify(path string) (Kind, error) {
	f, err := os.Open(path)
	if err != nil {
		return Unknown, curated.Errorf(ReadFailed, path, err)
	}
	defer f.Close()

	h, err := ReadHeader(f)
	if err != nil {
		logger.Logf(logger.Allow, "wad", "%s: %v", path, err)
		return Unknown, curated.Errorf(BadHeader, path)
	}

	logger.Logf(logger.Allow, "wad", "%s: %s", filepath.Base(path), h)

	return h.Kind, nil
}
