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

// Package buscycle implements the bus interface unit of the 8088. Every
// memory and port access is a Transaction that passes through four phases,
// one per clock tick: address, status, data and clear. Only one transaction
// can be on the bus at any time.
//
// When the bus is not required by the execution unit the Engine prefetches
// instruction bytes into the six byte Queue. A control transfer flushes the
// queue and restarts prefetching at the new address.
//
// Blocking operations, such as BeginAccess() and ReadQueue(), tick the clock
// until the operation completes. There are no goroutines involved.
package buscycle
