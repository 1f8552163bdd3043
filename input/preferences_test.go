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

package input_test

import (
	"os"
	"testing"

	"github.com/jetsetilly/dgvita/doomkeys"
	"github.com/jetsetilly/dgvita/input"
	"github.com/jetsetilly/dgvita/test"
)

// preferences are written to a .dgvita directory in a temporary working
// directory
func tmpResources(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	test.DemandSuccess(t, os.Mkdir(".dgvita", 0o700))
}

func TestPreferencesDefaults(t *testing.T) {
	tmpResources(t)

	p, err := input.NewPreferences()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Preset.String(), input.DefaultPreset)
	test.ExpectEquality(t, p.Mapping.String(), "")
	test.ExpectEquality(t, p.Deadzone.Get().(int), input.DefaultDeadzone)
	test.ExpectEquality(t, p.QueueSize.Get().(int), input.DefaultQueueSize)

	inp, err := p.NewInput()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, inp.Queue().Cap(), input.DefaultQueueSize-1)

	def, _ := input.Preset(input.DefaultPreset)
	test.ExpectEquality(t, inp.Mapping().String(), def.String())
}

func TestPreferencesValidation(t *testing.T) {
	tmpResources(t)

	p, err := input.NewPreferences()
	test.DemandSuccess(t, err)

	test.ExpectFailure(t, p.Preset.Set("psp"))
	test.ExpectEquality(t, p.Preset.String(), input.DefaultPreset)

	test.ExpectFailure(t, p.Mapping.Set("CROSS"))
	test.ExpectEquality(t, p.Mapping.String(), "")

	test.ExpectFailure(t, p.Deadzone.Set(128))
	test.ExpectFailure(t, p.QueueSize.Set(1))
}

func TestPreferencesApply(t *testing.T) {
	tmpResources(t)

	p, err := input.NewPreferences()
	test.DemandSuccess(t, err)

	inp, err := p.NewInput()
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, p.Deadzone.Set(20))
	test.ExpectEquality(t, inp.Deadzone(), 20)

	test.ExpectSuccess(t, p.Preset.Set(input.PresetVita2D))
	s := input.NeutralSample
	s.Buttons = input.Cross
	inp.Update(s)
	ev, ok := inp.Poll()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, ev.Code, doomkeys.RCtrl)

	// an explicit mapping takes precedence over the preset. the key held
	// under the preset is released
	test.ExpectSuccess(t, p.Mapping.Set("CROSS=FIRE"))
	test.ExpectEquality(t, inp.Mapping().String(), "CROSS=FIRE")
	ev, ok = inp.Poll()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, ev, input.KeyEvent{Code: doomkeys.RCtrl, Pressed: false})

	inp.Update(s)
	ev, ok = inp.Poll()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, ev, input.KeyEvent{Code: doomkeys.Fire, Pressed: true})
}

func TestPreferencesSaveLoad(t *testing.T) {
	tmpResources(t)

	p, err := input.NewPreferences()
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, p.Preset.Set(input.PresetVita2D))
	test.ExpectSuccess(t, p.Deadzone.Set(25))
	test.ExpectSuccess(t, p.Save())

	q, err := input.NewPreferences()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.Preset.String(), input.PresetVita2D)
	test.ExpectEquality(t, q.Deadzone.Get().(int), 25)
}
