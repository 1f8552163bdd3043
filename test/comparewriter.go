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

package test

import (
	"strings"
	"sync"
)

// CompareWriter buffers everything written to it so that output can be
// compared with an expected string. It is safe to write to from more than one
// goroutine, which is useful when capturing the log echo.
type CompareWriter struct {
	crit sync.Mutex
	buf  strings.Builder
}

// Write implements the io.Writer interface.
func (cw *CompareWriter) Write(p []byte) (int, error) {
	cw.crit.Lock()
	defer cw.crit.Unlock()
	return cw.buf.Write(p)
}

// Clear empties the buffer.
func (cw *CompareWriter) Clear() {
	cw.crit.Lock()
	defer cw.crit.Unlock()
	cw.buf.Reset()
}

// Compare buffered output with an expected string.
func (cw *CompareWriter) Compare(s string) bool {
	return cw.String() == s
}

// Lines returns the buffered output split into lines. A trailing newline does
// not produce an empty final line.
func (cw *CompareWriter) Lines() []string {
	s := strings.TrimSuffix(cw.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func (cw *CompareWriter) String() string {
	cw.crit.Lock()
	defer cw.crit.Unlock()
	return cw.buf.String()
}
