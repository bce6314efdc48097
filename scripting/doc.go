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

// Package scripting runs Lua scripts against the monitor. Scripts are run
// with github.com/yuin/gopher-lua and have access to the following
// functions in addition to the Lua base library:
//
//	step([n])		execute n instructions (default 1)
//	reg(name)		value of the named register. "flags" for the flags register
//	setreg(name, v)		set the named register. setting CS or IP flushes the prefetch queue
//	peek(addr)		byte at the linear address
//	poke(addr, v)		write byte to the linear address
//	irq(n)			raise interrupt request line n
//	key(code, [up])		queue a keyboard event
//	command(line)		run a monitor command
//
// The print function writes to the monitor's terminal.
package scripting
