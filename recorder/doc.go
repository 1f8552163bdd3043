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

// Package recorder records the samples taken from a controller so that a
// session can be played back later.
//
// The Recorder type wraps a platform.Controller and writes a line to the
// recording every time the sample changes. Each line includes the hash of the
// display digest at the time of the sample. The Playback type is a
// platform.Controller that returns the recorded samples and checks that the
// display digest matches the recording. A mismatch means the engine is not
// producing the same output as it did during the recording and the playback
// stops with an error.
//
// Playback is only meaningful for engines that are deterministic for a given
// sequence of samples.
package recorder
