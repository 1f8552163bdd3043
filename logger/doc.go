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

// Package logger is the central logging package for DGVita. Log entries are
// made up of a tag and a detail. The tag names the part of the program making
// the entry ("input", "wad", "sdl", etc.) and the detail describes what
// happened.
//
// Consecutive entries with the same tag and detail are folded into a single
// entry with a repeat count. This is important for the input queue, which may
// log a dropped event every tick while the engine is not draining the queue.
//
// The number of entries kept is bounded. The oldest entries are forgotten
// once the maximum has been reached.
//
// Every log call takes a Permission. Use logger.Allow when the entry should
// always be made.
package logger
