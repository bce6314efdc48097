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

// Package statsview runs a local HTTP server offering live runtime
// statistics of the emulator process. The charts are provided by
// github.com/go-echarts/statsview.
//
// The server is started with the -statsview flag. Charts are then viewable
// at:
//
//	localhost:18088/debug/statsview
//
// And standard Go pprof statistics are available at:
//
//	localhost:18088/debug/pprof/
package statsview
