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

package hosts

// AxisFromInt16 converts a signed 16 bit axis value, as reported by SDL and
// the Linux joystick driver, to the unsigned 8 bit range of a controller
// sample.
func AxisFromInt16(v int16) uint8 {
	return uint8((int32(v) + 32768) >> 8)
}

// AxisFromFloat converts an axis value in the range -1.0 to 1.0 to the
// unsigned 8 bit range of a controller sample. Values outside the range are
// clamped.
func AxisFromFloat(v float64) uint8 {
	if v <= -1.0 {
		return 0
	}
	if v >= 1.0 {
		return 255
	}
	return uint8((v + 1.0) * 127.5)
}
