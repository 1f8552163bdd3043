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

package hosts_test

import (
	"testing"

	"github.com/jetsetilly/dgvita/curated"
	"github.com/jetsetilly/dgvita/hosts"
	"github.com/jetsetilly/dgvita/input"
	"github.com/jetsetilly/dgvita/platform"
	"github.com/jetsetilly/dgvita/test"
)

func TestKeyboard(t *testing.T) {
	var kb hosts.Keyboard
	test.ExpectEquality(t, kb.Buttons(), input.Buttons(0))

	kb.Press(hosts.KeyUp)
	kb.Press(hosts.KeyCross)
	test.ExpectEquality(t, kb.Buttons(), input.Up|input.Cross)

	kb.Release(hosts.KeyUp)
	test.ExpectEquality(t, kb.Buttons(), input.Cross)

	// out of range keys are ignored
	kb.Press(hosts.Key(-1))
	kb.Press(hosts.Key(1000))
	test.ExpectEquality(t, kb.Buttons(), input.Cross)

	s := input.NeutralSample
	s.Buttons = input.Start
	s = kb.Merge(s)
	test.ExpectEquality(t, s.Buttons, input.Start|input.Cross)
	test.ExpectEquality(t, s.LX, uint8(input.AxisCentre))

	kb.ReleaseAll()
	test.ExpectEquality(t, kb.Buttons(), input.Buttons(0))
}

func TestKeyButton(t *testing.T) {
	test.ExpectEquality(t, hosts.KeySelect.Button(), input.Select)
	test.ExpectEquality(t, hosts.KeyRTrigger.Button(), input.RTrigger)
	test.ExpectEquality(t, hosts.Key(99).Button(), input.Buttons(0))
}

func TestAxis(t *testing.T) {
	test.ExpectEquality(t, hosts.AxisFromInt16(-32768), uint8(0))
	test.ExpectEquality(t, hosts.AxisFromInt16(0), uint8(128))
	test.ExpectEquality(t, hosts.AxisFromInt16(32767), uint8(255))
	test.ExpectEquality(t, hosts.AxisFromInt16(-256), uint8(127))

	test.ExpectEquality(t, hosts.AxisFromFloat(-2.0), uint8(0))
	test.ExpectEquality(t, hosts.AxisFromFloat(-1.0), uint8(0))
	test.ExpectEquality(t, hosts.AxisFromFloat(0.0), uint8(127))
	test.ExpectEquality(t, hosts.AxisFromFloat(1.0), uint8(255))
	test.ExpectEquality(t, hosts.AxisFromFloat(0.5), uint8(191))
}

type fixed struct {
	s   input.ControllerSample
	err error
}

func (f fixed) Sample() (input.ControllerSample, error) {
	return f.s, f.err
}

func TestCombine(t *testing.T) {
	a := input.NeutralSample
	a.Buttons = input.Cross
	a.LX = 10
	a.RY = 140

	b := input.NeutralSample
	b.Buttons = input.Start
	b.LX = 200
	b.RY = 255

	// a single controller is not wrapped
	single := fixed{s: a}
	test.ExpectEquality(t, hosts.Combine(single), platform.Controller(single))

	s, err := hosts.Combine(fixed{s: a}, fixed{s: b}).Sample()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s.Buttons, input.Cross|input.Start)
	test.ExpectEquality(t, s.LX, uint8(10))
	test.ExpectEquality(t, s.LY, uint8(input.AxisCentre))
	test.ExpectEquality(t, s.RY, uint8(255))

	_, err = hosts.Combine(fixed{s: a}, fixed{err: curated.Errorf(platform.Closed)}).Sample()
	test.ExpectSuccess(t, curated.Is(err, platform.Closed))
}
