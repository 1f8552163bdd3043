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
	"fmt"
	"slices"
	"strings"

	"github.com/jetsetilly/dgvita/curated"
	"github.com/jetsetilly/dgvita/doomkeys"
)

// ButtonBinding binds a digital button to a logical key.
type ButtonBinding struct {
	Button Buttons
	Key    doomkeys.Code
}

// Direction of an analog axis away from its centre.
type Direction int

// List of valid Direction values.
const (
	Negative Direction = iota
	Positive
)

// AxisBinding binds one direction of an analog axis to a logical key. The
// negative direction of the Y axes is up.
type AxisBinding struct {
	Axis      Axis
	Direction Direction
	Key       doomkeys.Code
}

// Mapping is the ordered list of bindings used by Input. Button bindings are
// considered before axis bindings.
type Mapping struct {
	Buttons []ButtonBinding
	Axes    []AxisBinding
}

// Sentinel error patterns.
const (
	BadMapping    = "input: bad mapping: %v"
	UnknownPreset = "input: unknown preset: %s"
)

// String returns the mapping in the form accepted by ParseMapping().
func (m Mapping) String() string {
	s := make([]string, 0, len(m.Buttons)+len(m.Axes))
	for _, b := range m.Buttons {
		s = append(s, fmt.Sprintf("%s=%s", b.Button, b.Key))
	}
	for _, a := range m.Axes {
		d := "-"
		if a.Direction == Positive {
			d = "+"
		}
		s = append(s, fmt.Sprintf("%s%s=%s", a.Axis, d, a.Key))
	}
	return strings.Join(s, ", ")
}

// Keys returns every logical key reachable from the mapping, in the order in
// which they first appear.
func (m Mapping) Keys() []doomkeys.Code {
	var keys []doomkeys.Code
	for _, b := range m.Buttons {
		if !slices.Contains(keys, b.Key) {
			keys = append(keys, b.Key)
		}
	}
	for _, a := range m.Axes {
		if !slices.Contains(keys, a.Key) {
			keys = append(keys, a.Key)
		}
	}
	return keys
}

// Clone returns a copy of the mapping that shares no memory with the
// original.
func (m Mapping) Clone() Mapping {
	return Mapping{
		Buttons: slices.Clone(m.Buttons),
		Axes:    slices.Clone(m.Axes),
	}
}

// ParseMapping parses the textual form of a mapping. The text is a comma
// separated list of bindings. A button binding has the form BUTTON=KEY. An
// axis binding has the form AXIS-=KEY or AXIS+=KEY. For example:
//
//	CROSS=USE, CIRCLE=ESCAPE, LY-=UPARROW, LY+=DOWNARROW
//
// Key names are those understood by doomkeys.Parse(). The comma key must be
// written as COMMA.
func ParseMapping(s string) (Mapping, error) {
	var m Mapping

	for _, b := range strings.Split(s, ",") {
		b = strings.TrimSpace(b)
		if b == "" {
			continue
		}

		src, dst, ok := strings.Cut(b, "=")
		if !ok {
			return Mapping{}, curated.Errorf(BadMapping, fmt.Errorf("missing '=' in %q", b))
		}
		src = strings.ToUpper(strings.TrimSpace(src))

		key, err := doomkeys.Parse(dst)
		if err != nil {
			return Mapping{}, curated.Errorf(BadMapping, err)
		}

		if strings.HasSuffix(src, "-") || strings.HasSuffix(src, "+") {
			ax, err := parseAxis(src[:len(src)-1])
			if err != nil {
				return Mapping{}, curated.Errorf(BadMapping, err)
			}
			dir := Negative
			if src[len(src)-1] == '+' {
				dir = Positive
			}
			m.Axes = append(m.Axes, AxisBinding{Axis: ax, Direction: dir, Key: key})
			continue
		}

		btn, err := ParseButton(src)
		if err != nil {
			return Mapping{}, curated.Errorf(BadMapping, err)
		}
		m.Buttons = append(m.Buttons, ButtonBinding{Button: btn, Key: key})
	}

	if len(m.Buttons) == 0 && len(m.Axes) == 0 {
		return Mapping{}, curated.Errorf(BadMapping, "no bindings")
	}

	return m, nil
}

func parseAxis(s string) (Axis, error) {
	for _, a := range []Axis{LX, LY, RX, RY} {
		if a.String() == s {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unrecognised axis %q", s)
}

// List of preset names.
const (
	PresetDisplay = "display"
	PresetVita2D  = "vita2d"
)

// DefaultPreset is the preset used when no other mapping is configured.
const DefaultPreset = PresetDisplay

// Presets lists the names accepted by Preset().
var Presets = []string{PresetDisplay, PresetVita2D}

// Preset returns a new copy of the named mapping. Names are case
// insensitive.
//
// The display preset uses both sticks. The left stick moves forward and back
// and strafes. The right stick turns. The triggers fire and strafe.
//
// The vita2d preset uses no sticks and binds every face button to a key. It
// is suited to controllers with no analog sticks.
func Preset(name string) (Mapping, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case PresetDisplay:
		return Mapping{
			Buttons: []ButtonBinding{
				{Up, doomkeys.UpArrow},
				{Down, doomkeys.DownArrow},
				{Left, doomkeys.LeftArrow},
				{Right, doomkeys.RightArrow},
				{Cross, doomkeys.Use},
				{Circle, doomkeys.Escape},
				{Square, doomkeys.RShift},
				{Triangle, doomkeys.Tab},
				{RTrigger, doomkeys.Fire},
				{LTrigger, doomkeys.StrafeL},
				{Start, doomkeys.Enter},
				{Select, doomkeys.Escape},
			},
			Axes: []AxisBinding{
				{LY, Negative, doomkeys.UpArrow},
				{LY, Positive, doomkeys.DownArrow},
				{LX, Negative, doomkeys.StrafeL},
				{LX, Positive, doomkeys.StrafeR},
				{RX, Negative, doomkeys.LeftArrow},
				{RX, Positive, doomkeys.RightArrow},
			},
		}, nil
	case PresetVita2D:
		return Mapping{
			Buttons: []ButtonBinding{
				{Up, doomkeys.UpArrow},
				{Down, doomkeys.DownArrow},
				{Left, doomkeys.LeftArrow},
				{Right, doomkeys.RightArrow},
				{Cross, doomkeys.RCtrl},
				{Square, doomkeys.Space},
				{Circle, doomkeys.Escape},
				{Triangle, doomkeys.Enter},
				{LTrigger, doomkeys.Comma},
				{RTrigger, doomkeys.Period},
				{Start, doomkeys.Escape},
				{Select, doomkeys.Tab},
			},
		}, nil
	}
	return Mapping{}, curated.Errorf(UnknownPreset, name)
}
