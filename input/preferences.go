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

package input

import (
	"github.com/jetsetilly/dgvita/curated"
	"github.com/jetsetilly/dgvita/paths"
	"github.com/jetsetilly/dgvita/prefs"
)

// Preferences for the input package. Changes to the preferences are applied
// to the attached Input immediately.
type Preferences struct {
	dsk   *prefs.Disk
	input *Input

	// name of the preset mapping. ignored if Mapping is not empty
	Preset prefs.String

	// mapping in the form accepted by ParseMapping()
	Mapping prefs.String

	Deadzone  prefs.Int
	QueueSize prefs.Int
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the preferences file.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	if err := p.dsk.Add("input.preset", &p.Preset); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("input.mapping", &p.Mapping); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("input.deadzone", &p.Deadzone); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("input.queuesize", &p.QueueSize); err != nil {
		return nil, err
	}

	p.Preset.SetHookPre(func(v prefs.Value) error {
		_, err := Preset(v.(string))
		return err
	})
	p.Preset.SetHookPost(func(prefs.Value) error {
		return p.apply()
	})

	p.Mapping.SetHookPre(func(v prefs.Value) error {
		if v.(string) == "" {
			return nil
		}
		_, err := ParseMapping(v.(string))
		return err
	})
	p.Mapping.SetHookPost(func(prefs.Value) error {
		return p.apply()
	})

	p.Deadzone.SetHookPre(func(v prefs.Value) error {
		if d := v.(int); d < 0 || d > MaxDeadzone {
			return curated.Errorf(BadDeadzone, d, MaxDeadzone)
		}
		return nil
	})
	p.Deadzone.SetHookPost(func(v prefs.Value) error {
		if p.input != nil {
			return p.input.SetDeadzone(v.(int))
		}
		return nil
	})

	p.QueueSize.SetHookPre(func(v prefs.Value) error {
		if q := v.(int); q < MinQueueSize {
			return curated.Errorf(BadQueueSize, q, MinQueueSize)
		}
		return nil
	})

	err = p.dsk.Load()
	if err != nil && !curated.Is(err, prefs.NoPrefsFile) {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all input preferences to their default values.
func (p *Preferences) SetDefaults() {
	p.Preset.Set(DefaultPreset)
	p.Mapping.Set("")
	p.Deadzone.Set(DefaultDeadzone)
	p.QueueSize.Set(DefaultQueueSize)
}

// Resolve returns the mapping described by the preferences.
func (p *Preferences) Resolve() (Mapping, error) {
	if m := p.Mapping.String(); m != "" {
		return ParseMapping(m)
	}
	return Preset(p.Preset.String())
}

// NewInput creates an Input from the preferences. Later changes to the
// preferences are applied to the Input. The queue size of an existing Input
// cannot be changed.
func (p *Preferences) NewInput() (*Input, error) {
	m, err := p.Resolve()
	if err != nil {
		return nil, err
	}
	inp, err := NewInput(m, p.Deadzone.Get().(int), p.QueueSize.Get().(int))
	if err != nil {
		return nil, err
	}
	p.input = inp
	return inp, nil
}

func (p *Preferences) apply() error {
	if p.input == nil {
		return nil
	}
	m, err := p.Resolve()
	if err != nil {
		return err
	}
	p.input.SetMapping(m)
	return nil
}

// Load input preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current input preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
