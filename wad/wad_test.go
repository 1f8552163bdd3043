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

package wad_test

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/dgvita/curated"
	"github.com/jetsetilly/dgvita/test"
	"github.com/jetsetilly/dgvita/wad"
)

func writeWAD(t *testing.T, path string, id string, lumps int32) {
	t.Helper()
	b := &bytes.Buffer{}
	b.WriteString(id)
	binary.Write(b, binary.LittleEndian, lumps)
	binary.Write(b, binary.LittleEndian, int32(12))
	test.DemandSuccess(t, os.WriteFile(path, b.Bytes(), 0o644))
}

func TestPrepare(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data", "chexquest2")
	s := wad.NewSearch(dir)
	test.ExpectSuccess(t, s.Prepare())

	fi, err := os.Stat(dir)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, fi.IsDir())

	// preparing an existing directory is fine
	test.ExpectSuccess(t, s.Prepare())
}

func TestLocatePriority(t *testing.T) {
	dir := t.TempDir()
	s := wad.NewSearch(dir)

	writeWAD(t, filepath.Join(dir, "doom.wad"), "IWAD", 1)
	p, err := s.Locate()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, filepath.Join(dir, "doom.wad"))

	writeWAD(t, filepath.Join(dir, "chex.wad"), "IWAD", 1)
	p, err = s.Locate()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, filepath.Join(dir, "chex.wad"))

	writeWAD(t, filepath.Join(dir, "chex2.wad"), "PWAD", 1)
	p, err = s.Locate()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, filepath.Join(dir, "chex2.wad"))
}

func TestLocateSkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	s := wad.NewSearch(dir)

	test.DemandSuccess(t, os.Mkdir(filepath.Join(dir, "chex2.wad"), 0o755))
	writeWAD(t, filepath.Join(dir, "chex.wad"), "IWAD", 1)

	p, err := s.Locate()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, filepath.Join(dir, "chex.wad"))
}

func TestNotFound(t *testing.T) {
	dir := t.TempDir()
	s := wad.NewSearch(dir)

	// the first candidate is returned with the error
	p, err := s.Locate()
	test.ExpectSuccess(t, curated.Is(err, wad.NotFound))
	test.ExpectEquality(t, p, filepath.Join(dir, "chex2.wad"))

	_, err = wad.Search{Dir: dir}.Locate()
	test.ExpectSuccess(t, curated.Is(err, wad.NoNames))
}

func TestArgs(t *testing.T) {
	args := wad.Args("dgvita", "chex.wad")
	test.DemandEquality(t, len(args), 3)
	test.ExpectEquality(t, args[0], "dgvita")
	test.ExpectEquality(t, args[1], "-iwad")
	test.ExpectEquality(t, args[2], "chex.wad")

	args = wad.Args("dgvita", "chex.wad", "chex2.wad", "extra.wad")
	test.DemandEquality(t, len(args), 6)
	test.ExpectEquality(t, args[3], "-file")
	test.ExpectEquality(t, args[4], "chex2.wad")
	test.ExpectEquality(t, args[5], "extra.wad")
}

func TestIdentify(t *testing.T) {
	dir := t.TempDir()

	writeWAD(t, filepath.Join(dir, "a.wad"), "IWAD", 10)
	k, err := wad.Identify(filepath.Join(dir, "a.wad"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, k, wad.IWAD)

	writeWAD(t, filepath.Join(dir, "b.wad"), "PWAD", 2)
	k, err = wad.Identify(filepath.Join(dir, "b.wad"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, k, wad.PWAD)

	writeWAD(t, filepath.Join(dir, "c.wad"), "ZWAD", 2)
	k, err = wad.Identify(filepath.Join(dir, "c.wad"))
	test.ExpectSuccess(t, curated.Is(err, wad.BadHeader))
	test.ExpectEquality(t, k, wad.Unknown)

	// too short
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "d.wad"), []byte("IWA"), 0o644))
	_, err = wad.Identify(filepath.Join(dir, "d.wad"))
	test.ExpectSuccess(t, curated.Is(err, wad.BadHeader))

	_, err = wad.Identify(filepath.Join(dir, "missing.wad"))
	test.ExpectSuccess(t, curated.Is(err, wad.ReadFailed))
}

func TestReadHeader(t *testing.T) {
	b := &bytes.Buffer{}
	b.WriteString("IWAD")
	binary.Write(b, binary.LittleEndian, int32(2306))
	binary.Write(b, binary.LittleEndian, int32(4175796))

	h, err := wad.ReadHeader(b)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, h.Kind, wad.IWAD)
	test.ExpectEquality(t, h.Lumps, int32(2306))
	test.ExpectEquality(t, h.DirectoryOffset, int32(4175796))
	test.ExpectEquality(t, h.String(), "IWAD with 2306 lumps")
}
