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

package prefs

import (
	"bufio"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/jetsetilly/dgvita/curated"
)

// DefaultPrefsFile is the name of the file used by the program to store
// preferences. The file is found with the paths package.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is the first line of every preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand while the program is running ***"

// separates key and value on each line of a preferences file.
const separator = " :: "

// Sentinel error patterns.
const (
	NoPrefsFile = "prefs: no prefs file (%s)"
	BadKey      = "prefs: bad key (%s)"
	LoadFailed  = "prefs: load failed: %v"
	SaveFailed  = "prefs: save failed: %v"
)

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, curated.Errorf(NoPrefsFile, "empty path")
	}
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add preference value to list of values to store/load from disk. Keys must
// not contain whitespace or the separator and must be unique to the Disk.
func (dsk *Disk) Add(key string, p pref) error {
	if key == "" || strings.ContainsAny(key, " \t\n") || strings.Contains(key, strings.TrimSpace(separator)) {
		return curated.Errorf(BadKey, key)
	}
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(BadKey, fmt.Sprintf("%s already added", key))
	}
	dsk.entries[key] = p
	return nil
}

// Reset all values to their default.
func (dsk *Disk) Reset() error {
	for k, v := range dsk.entries {
		if err := v.Reset(); err != nil {
			return curated.Errorf("prefs: reset: %s: %v", k, err)
		}
	}
	return nil
}

// Save current preference values to disk. Entries in the file belonging to
// other Disk instances are kept.
func (dsk *Disk) Save() error {
	data, err := readFile(dsk.path)
	if err != nil && !curated.Is(err, NoPrefsFile) {
		return curated.Errorf(SaveFailed, err)
	}

	for k, v := range dsk.entries {
		data[k] = v.String()
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(k)
		s.WriteString(separator)
		s.WriteString(data[k])
		s.WriteString("\n")
	}

	err = os.WriteFile(dsk.path, []byte(s.String()), 0o600)
	if err != nil {
		return curated.Errorf(SaveFailed, err)
	}

	return nil
}

// Load preference values from disk. Values on the command line stack take
// precedence over values in the file. If the file does not exist the
// NoPrefsFile error is returned but command line values are still applied.
func (dsk *Disk) Load() error {
	data, fileErr := readFile(dsk.path)
	if fileErr != nil && !curated.Is(fileErr, NoPrefsFile) {
		return curated.Errorf(LoadFailed, fileErr)
	}

	for k, v := range dsk.entries {
		if ok, cv := GetCommandLinePref(k); ok {
			if err := v.Set(cv); err != nil {
				return curated.Errorf(LoadFailed, fmt.Errorf("%s: %w", k, err))
			}
			continue
		}
		if dv, ok := data[k]; ok {
			if err := v.Set(dv); err != nil {
				return curated.Errorf(LoadFailed, fmt.Errorf("%s: %w", k, err))
			}
		}
	}

	return fileErr
}

// readFile returns the key/value pairs in a preferences file. Lines that are
// not key/value pairs are ignored.
func readFile(path string) (map[string]string, error) {
	data := make(map[string]string)

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return data, curated.Errorf(NoPrefsFile, path)
		}
		return data, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// boilerplate
	if !scanner.Scan() {
		return data, scanner.Err()
	}
	if scanner.Text() != WarningBoilerPlate {
		return data, fmt.Errorf("%s is not a preferences file", path)
	}

	for scanner.Scan() {
		k, v, ok := strings.Cut(scanner.Text(), separator)
		if !ok {
			continue
		}
		data[strings.TrimSpace(k)] = v
	}

	return data, scanner.Err()
}
