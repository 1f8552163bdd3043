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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It adds program modes (and sub-modes), each with its own set of
// flags.
//
// Unlike flag.FlagSet, the arguments are supplied with NewArgs() and Parse()
// takes no arguments. This allows the same argument list to be parsed in
// stages, one stage per mode.
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("PLAY", "EBITEN", "HEADLESS")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "HEADLESS":
//		md.NewMode()
//		frames := md.AddInt("frames", 100, "number of frames to run")
//		...
//	}
//
// The first sub-mode is the default and is selected when the first argument
// after the flags is not a sub-mode. Sub-mode comparisons are case
// insensitive. Mode names are reported in upper case.
//
// Help is requested with -help or -h. The help message lists the flags for the
// current mode and the available sub-modes. The Output field must be set for
// help to be visible.
package modalflag
