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

// Package disassembly decodes 8088 machine code into assembly language. The
// same instruction definitions and ModRM rules are used as by the CPU so the
// disassembly of an instruction always agrees with its execution.
//
// Disassembly is linear from a starting address. No attempt is made to
// follow the flow of execution.
package disassembly
