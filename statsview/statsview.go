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

//go:build statsview

package statsview

import (
	"fmt"
	"io"
	"sync"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"

	"github.com/jetsetilly/dgvita/logger"
)

// DefaultAddress of the stats server.
const DefaultAddress = "localhost:12600"

const url = "/debug/statsview"

var launch sync.Once

// Launch the stats server in a new goroutine. Only the first call has any
// effect. An empty address means DefaultAddress.
func Launch(output io.Writer, addr string) {
	if addr == "" {
		addr = DefaultAddress
	}

	launch.Do(func() {
		viewer.SetConfiguration(viewer.WithAddr(addr), viewer.WithTheme(viewer.ThemeWesteros))
		mgr := statsview.New()
		go func() {
			mgr.Start()
			logger.Log(logger.Allow, "statsview", "stats server stopped")
		}()
		fmt.Fprintf(output, "stats server available at %s%s\n", addr, url)
	})
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return true
}
