// This file is part of Gopher8088.
//
// Gopher8088 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8088 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8088.  If not, see <https://www.gnu.org/licenses/>.

package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/jetsetilly/gopher8088/logger"
)

// DefaultAddress is the address the server listens on if no other address
// is specified.
const DefaultAddress = "localhost:18088"

const path = "/debug/statsview"

// sampling interval in milliseconds
const interval = 1000

// Server is a running statistics server.
type Server struct {
	mgr  *statsview.ViewManager
	addr string
}

// Launch a new goroutine running the statistics server. An empty address
// means DefaultAddress. The URL of the server is written to output.
func Launch(output io.Writer, addr string) *Server {
	if addr == "" {
		addr = DefaultAddress
	}

	viewer.SetConfiguration(viewer.WithAddr(addr), viewer.WithInterval(interval))

	srv := &Server{
		mgr:  statsview.New(),
		addr: addr,
	}

	go func() {
		if err := srv.mgr.Start(); err != nil {
			logger.Logf(logger.Allow, "statsview", "%v", err)
		}
	}()

	fmt.Fprintf(output, "stats server available at %s\n", srv.URL())

	return srv
}

// URL returns the location of the statistics page.
func (srv *Server) URL() string {
	return fmt.Sprintf("http://%s%s", srv.addr, path)
}

// Stop the server.
func (srv *Server) Stop() {
	srv.mgr.Stop()
}
