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

package recorder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/dgvita/input"
)

// recording file entry format
// ---------------------------
//
// <step>, <buttons>, <lx>, <ly>, <rx>, <ry>, <hash>
//
// buttons is a hexadecimal value. the axis values are decimal

const (
	fieldStep int = iota
	fieldButtons
	fieldLX
	fieldLY
	fieldRX
	fieldRY
	fieldHash
	numFields
)

const fieldSep = ", "

// recording file header format
// ----------------------------
//
// <magic string>
// <engine arguments>
// <display resolution>

const (
	lineMagic int = iota
	lineArgs
	lineResolution
	numHeaderLines
)

const magicString = "dgvita recording v1"

type entry struct {
	step   int
	sample input.ControllerSample
	hash   string

	// the line in the recording file the entry appears
	line int
}

func (e entry) String() string {
	return strings.Join([]string{
		strconv.Itoa(e.step),
		fmt.Sprintf("%04x", uint32(e.sample.Buttons)),
		strconv.Itoa(int(e.sample.LX)),
		strconv.Itoa(int(e.sample.LY)),
		strconv.Itoa(int(e.sample.RX)),
		strconv.Itoa(int(e.sample.RY)),
		e.hash,
	}, fieldSep)
}

func parseEntry(s string, line int) (entry, error) {
	toks := strings.Split(s, fieldSep)
	if len(toks) != numFields {
		return entry{}, fmt.Errorf("expected %d fields", numFields)
	}

	e := entry{line: line, hash: toks[fieldHash]}

	var err error
	e.step, err = strconv.Atoi(toks[fieldStep])
	if err != nil {
		return entry{}, err
	}

	b, err := strconv.ParseUint(toks[fieldButtons], 16, 32)
	if err != nil {
		return entry{}, err
	}
	e.sample.Buttons = input.Buttons(b)

	for i, ax := range []*uint8{&e.sample.LX, &e.sample.LY, &e.sample.RX, &e.sample.RY} {
		v, err := strconv.ParseUint(toks[fieldLX+i], 10, 8)
		if err != nil {
			return entry{}, err
		}
		*ax = uint8(v)
	}

	return e, nil
}

func resolution(w, h int) string {
	return fmt.Sprintf("%dx%d", w, h)
}
