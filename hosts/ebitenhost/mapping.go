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

package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/jetsetilly/dgvita/hosts"
	"github.com/jetsetilly/dgvita/input"
)

var keys = []struct {
	key  ebiten.Key
	host hosts.Key
}{
	{ebiten.KeyArrowUp, hosts.KeyUp},
	{ebiten.KeyArrowDown, hosts.KeyDown},
	{ebiten.KeyArrowLeft, hosts.KeyLeft},
	{ebiten.KeyArrowRight, hosts.KeyRight},
	{ebiten.KeyZ, hosts.KeyCross},
	{ebiten.KeyX, hosts.KeyCircle},
	{ebiten.KeyA, hosts.KeySquare},
	{ebiten.KeyS, hosts.KeyTriangle},
	{ebiten.KeyQ, hosts.KeyLTrigger},
	{ebiten.KeyW, hosts.KeyRTrigger},
	{ebiten.KeyDigit1, hosts.KeyL1},
	{ebiten.KeyDigit2, hosts.KeyR1},
	{ebiten.KeyEnter, hosts.KeyStart},
	{ebiten.KeyBackspace, hosts.KeySelect},
}

// buttons of the standard gamepad layout. the layout is positional so the
// bottom face button is the cross
var padButtons = []struct {
	button ebiten.StandardGamepadButton
	vita   input.Buttons
}{
	{ebiten.StandardGamepadButtonRightBottom, input.Cross},
	{ebiten.StandardGamepadButtonRightRight, input.Circle},
	{ebiten.StandardGamepadButtonRightLeft, input.Square},
	{ebiten.StandardGamepadButtonRightTop, input.Triangle},
	{ebiten.StandardGamepadButtonCenterLeft, input.Select},
	{ebiten.StandardGamepadButtonCenterRight, input.Start},
	{ebiten.StandardGamepadButtonLeftStick, input.L3},
	{ebiten.StandardGamepadButtonRightStick, input.R3},
	{ebiten.StandardGamepadButtonFrontTopLeft, input.LTrigger},
	{ebiten.StandardGamepadButtonFrontTopRight, input.RTrigger},
	{ebiten.StandardGamepadButtonFrontBottomLeft, input.L1},
	{ebiten.StandardGamepadButtonFrontBottomRight, input.R1},
	{ebiten.StandardGamepadButtonLeftTop, input.Up},
	{ebiten.StandardGamepadButtonLeftBottom, input.Down},
	{ebiten.StandardGamepadButtonLeftLeft, input.Left},
	{ebiten.StandardGamepadButtonLeftRight, input.Right},
}

// poll the keyboard and the first gamepad with the standard layout. must be
// called from Update()
func (h *Host) poll() input.ControllerSample {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k.key) {
			h.kb.Press(k.host)
		} else {
			h.kb.Release(k.host)
		}
	}

	s := input.NeutralSample

	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}

		for _, b := range padButtons {
			if ebiten.IsStandardGamepadButtonPressed(id, b.button) {
				s.Buttons |= b.vita
			}
		}

		s.LX = hosts.AxisFromFloat(ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal))
		s.LY = hosts.AxisFromFloat(ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical))
		s.RX = hosts.AxisFromFloat(ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal))
		s.RY = hosts.AxisFromFloat(ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical))
		break
	}

	return h.kb.Merge(s)
}
