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

// Package input turns controller samples into an ordered stream of key
// events for the engine.
//
// Each tick the host supplies a ControllerSample. The sample is compared with
// the previous sample and every logical key whose state has changed produces
// a KeyEvent. Events are pushed onto a bounded EventQueue which the engine
// drains, one event at a time, through Poll().
//
// The relationship between the physical controls and the logical keys is
// described by a Mapping. Digital buttons are bound directly to a key. Each
// analog axis can be bound to two keys, one for each direction. An axis
// direction is active when the axis is further than the deadzone from the
// centre value of 128.
//
// More than one control can be bound to the same key. In that case the key is
// held while any of its controls are active. Key presses and releases
// therefore always alternate for a key, so long as the queue is drained
// often enough that no event is dropped.
//
// Events that do not fit in the queue are dropped. A dropped event is counted
// and logged but is otherwise lost.
package input
