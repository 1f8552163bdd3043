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

package testcard_test

import (
	"hash/crc32"
	"testing"
	"unsafe"

	"github.com/jetsetilly/dgvita/curated"
	"github.com/jetsetilly/dgvita/doomkeys"
	"github.com/jetsetilly/dgvita/engine/testcard"
	"github.com/jetsetilly/dgvita/test"
)

type key struct {
	code    doomkeys.Code
	pressed bool
}

// callbacks records calls made by the engine
type callbacks struct {
	inits  int
	draws  int
	sleeps []uint32
	ticks  uint32
	keys   []key
	title  string
}

func (cb *callbacks) Init()      { cb.inits++ }
func (cb *callbacks) DrawFrame() { cb.draws++ }

func (cb *callbacks) SleepMs(ms uint32) {
	cb.sleeps = append(cb.sleeps, ms)
	cb.ticks += ms
}

func (cb *callbacks) GetTicksMs() uint32 { return cb.ticks }

func (cb *callbacks) GetKey() (bool, doomkeys.Code, bool) {
	if len(cb.keys) == 0 {
		return false, 0, false
	}
	k := cb.keys[0]
	cb.keys = cb.keys[1:]
	return k.pressed, k.code, true
}

func (cb *callbacks) SetWindowTitle(title string) { cb.title = title }

func checksum(buf []uint32) uint32 {
	return crc32.ChecksumIEEE(unsafe.Slice((*byte)(unsafe.Pointer(&buf[0])), len(buf)*4))
}

func TestNotCreated(t *testing.T) {
	tc := testcard.NewTestcard(64, 40)
	test.ExpectSuccess(t, curated.Is(tc.Tick(), testcard.NotCreated))
	test.ExpectEquality(t, len(tc.ScreenBuffer()), 0)
}

func TestCreate(t *testing.T) {
	tc := testcard.NewTestcard(64, 40)
	cb := &callbacks{}

	err := tc.Create([]string{"dgvita", "-iwad", "/data/chex2.wad", "-file", "a.wad", "b.wad", "-nomusic"}, cb)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, cb.inits, 1)
	test.ExpectEquality(t, cb.title, "testcard: chex2.wad")
	test.ExpectEquality(t, tc.IWAD(), "/data/chex2.wad")
	test.DemandEquality(t, len(tc.PWADs()), 2)
	test.ExpectEquality(t, tc.PWADs()[1], "b.wad")

	w, h := tc.Resolution()
	test.ExpectEquality(t, w, 64)
	test.ExpectEquality(t, h, 40)
	test.ExpectEquality(t, len(tc.ScreenBuffer()), 64*40)

	err = tc.Create([]string{"dgvita", "-iwad"}, cb)
	test.ExpectSuccess(t, curated.Is(err, testcard.BadArgs))

	err = testcard.NewTestcard(0, 0).Create(nil, cb)
	test.ExpectSuccess(t, curated.Is(err, testcard.BadArgs))

	// too small for the marker
	err = testcard.NewTestcard(32, 20).Create(nil, cb)
	test.ExpectSuccess(t, curated.Is(err, testcard.BadArgs))
	test.ExpectSuccess(t, testcard.NewTestcard(16, 24).Create(nil, cb))
}

func TestTick(t *testing.T) {
	tc := testcard.NewTestcard(64, 40)
	cb := &callbacks{}
	test.DemandSuccess(t, tc.Create([]string{"dgvita"}, cb))

	x, y := tc.Marker()

	cb.keys = []key{{doomkeys.RightArrow, true}, {doomkeys.Fire, true}}
	test.DemandSuccess(t, tc.Tick())
	test.ExpectEquality(t, cb.draws, 1)
	test.ExpectEquality(t, tc.Frame(), 1)
	test.ExpectSuccess(t, tc.Held(doomkeys.RightArrow))
	test.ExpectSuccess(t, tc.Held(doomkeys.Fire))

	// all pending keys are consumed by a tick
	test.ExpectEquality(t, len(cb.keys), 0)

	nx, ny := tc.Marker()
	test.ExpectEquality(t, nx, x+4)
	test.ExpectEquality(t, ny, y)

	// the marker is drawn in the fire colour
	test.ExpectEquality(t, tc.ScreenBuffer()[ny*64+nx], uint32(0xff8000))

	cb.keys = []key{{doomkeys.RightArrow, false}}
	test.DemandSuccess(t, tc.Tick())
	test.ExpectFailure(t, tc.Held(doomkeys.RightArrow))
	nx2, _ := tc.Marker()
	test.ExpectEquality(t, nx2, nx)

	// the marker never leaves the card
	cb.keys = []key{{doomkeys.UpArrow, true}}
	for range 100 {
		test.DemandSuccess(t, tc.Tick())
	}
	_, ny = tc.Marker()
	test.ExpectEquality(t, ny, 0)
}

func TestKeyStrip(t *testing.T) {
	tc := testcard.NewTestcard(256, 40)
	cb := &callbacks{}
	test.DemandSuccess(t, tc.Create([]string{"dgvita"}, cb))

	cb.keys = []key{{doomkeys.Tab, true}}
	test.DemandSuccess(t, tc.Tick())

	// one column per key code in the bottom row
	bottom := tc.ScreenBuffer()[39*256:]
	test.ExpectEquality(t, bottom[doomkeys.Tab], uint32(0xffffff))
	test.ExpectEquality(t, bottom[doomkeys.Enter], uint32(0x000000))
}

func TestEscapeInverts(t *testing.T) {
	tc := testcard.NewTestcard(64, 40)
	cb := &callbacks{}
	test.DemandSuccess(t, tc.Create([]string{"dgvita"}, cb))

	test.DemandSuccess(t, tc.Tick())
	before := tc.ScreenBuffer()[0]

	cb.keys = []key{{doomkeys.Escape, true}, {doomkeys.Escape, false}}
	test.DemandSuccess(t, tc.Tick())
	test.ExpectEquality(t, tc.ScreenBuffer()[0], before^0xffffff)
}

func TestDeterminism(t *testing.T) {
	script := [][]key{
		{{doomkeys.RightArrow, true}},
		{},
		{{doomkeys.DownArrow, true}, {doomkeys.Use, true}},
		{{doomkeys.RightArrow, false}},
		{{doomkeys.Escape, true}},
		{{doomkeys.DownArrow, false}, {doomkeys.Escape, false}},
	}

	run := func() []uint32 {
		tc := testcard.NewTestcard(80, 50)
		cb := &callbacks{}
		test.DemandSuccess(t, tc.Create([]string{"dgvita"}, cb))
		var sums []uint32
		for _, s := range script {
			cb.keys = append(cb.keys, s...)
			test.DemandSuccess(t, tc.Tick())
			sums = append(sums, checksum(tc.ScreenBuffer()))
		}
		return sums
	}

	a := run()
	b := run()
	test.DemandEquality(t, len(a), len(b))
	for i := range a {
		test.ExpectEquality(t, a[i], b[i], i)
	}

	// frames with different input are different
	test.ExpectInequality(t, a[0], a[2])
}

func TestPaced(t *testing.T) {
	tc := testcard.NewTestcard(64, 40)
	tc.Paced = true
	cb := &callbacks{}
	test.DemandSuccess(t, tc.Create([]string{"dgvita"}, cb))

	test.DemandSuccess(t, tc.Tick())
	test.DemandEquality(t, len(cb.sleeps), 1)
	test.ExpectEquality(t, cb.sleeps[0], uint32(1000/testcard.TicRate))

	// no sleep if the tick took longer than the tic rate
	cb.ticks += 100
	test.DemandSuccess(t, tc.Tick())
	test.ExpectEquality(t, len(cb.sleeps), 1)
}
