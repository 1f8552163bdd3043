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

// Package prefs stores the user's preferences on disk. Preference values are
// typed (Bool, Int, Float, String and Generic) and each value is added to a
// Disk instance with a unique key. A Disk can then be saved and loaded.
//
// Preferences files are plain text with one "key :: value" entry per line.
// More than one Disk instance can share a preferences file. When a Disk is
// saved, entries in the file that belong to other Disk instances are
// preserved.
//
// Typed values have hooks that are called just before and just after the value
// is changed. A hook that returns an error stops the update.
//
// Values can also be supplied on the command line. A prefs string of the form
// "key::value; key::value" is pushed with PushCommandLineStack() and the
// values in it take precedence over the values in the file the next time a
// Disk is loaded.
package prefs
