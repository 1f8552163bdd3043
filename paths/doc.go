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

// Package paths contains functions to prepare paths to DGVita resources.
//
// The ResourcePath() function joins the supplied resource strings and
// prepends the appropriate configuration directory. For example, the
// following returns the path to the preferences file.
//
//	p, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
//
// If a directory called ".dgvita" is present in the current directory then
// that is the base path. Otherwise the base path is the "dgvita" directory in
// the directory returned by os.UserConfigDir(). On a Linux system that will
// usually be:
//
//	/home/user/.config/dgvita
//
// The directory part of the returned path is created if it does not exist.
// The file itself is never created.
package paths
