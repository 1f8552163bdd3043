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

package platform

import (
	"github.com/jetsetilly/dgvita/curated"
	"github.com/jetsetilly/dgvita/paths"
	"github.com/jetsetilly/dgvita/prefs"
)

// Preferences for the platform package.
type Preferences struct {
	dsk    *prefs.Disk
	driver *Driver

	// frames per second limit for Driver.Run(). zero means no limit
	FPSCap prefs.Int
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

	if err := p.dsk.Add("platform.fpscap", &p.FPSCap); err != nil {
		return nil, err
	}

	p.FPSCap.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 {
			return curated.Errorf("platform: fps cap cannot be negative")
		}
		return nil
	})
	p.FPSCap.SetHookPost(func(v prefs.Value) error {
		if p.driver != nil {
			p.driver.SetFPSCap(v.(int))
		}
		return nil
	})

	err = p.dsk.Load()
	if err != nil && !curated.Is(err, prefs.NoPrefsFile) {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all platform preferences to their default values.
func (p *Preferences) SetDefaults() {
	p.FPSCap.Set(0)
}

// Attach the driver so that it receives the preferences now and whenever
// they change.
func (p *Preferences) Attach(drv *Driver) {
	p.driver = drv
	drv.SetFPSCap(p.FPSCap.Get().(int))
}

// Load platform preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current platform preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
