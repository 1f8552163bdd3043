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

// Package test contains helper functions that remove the boilerplate from
// the tests in this project.
//
// The Expect* functions report a failure with t.Errorf() and allow the test
// to continue. The Demand* functions report with t.Fatalf() and end the test
// immediately. Both families accept an optional list of tags which are
// prepended to the failure message, useful when the check is made inside a
// loop.
//
// Success and failure are judged generically. For a bool value, true is
// success. For an error value, nil is success. A nil interface is also
// success.
//
// The CompareWriter type is an io.Writer that buffers everything written to
// it so that the output of a function can be compared against an expected
// string.
package test
