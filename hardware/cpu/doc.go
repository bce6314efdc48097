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

// Package cpu emulates the execution unit of the 8088 microprocessor. The bus
// interface unit, including the prefetch queue, is in the buscycle
// package.
//
// Each call to Step() executes a single instruction. Instruction bytes are
// taken from the prefetch queue and operands are read and written with bus
// transactions. Both of these tick the clock. When the instruction has taken
// all the bus cycles it needs, the clock is ticked until the instruction has
// taken the number of cycles in its definition. Control transfers flush the
// prefetch queue after the cycles have elapsed.
//
// Interrupts are checked at instruction boundaries. NMI has priority over
// INTR and INTR is only serviced if the interrupt flag is set. Interrupts
// are not checked at the boundary after an instruction that loads SS or
// after STI. Repeated string instructions also check for interrupts between
// iterations.
//
// Opcodes that have no defined behaviour return the DecodeFault error. The
// undocumented opcodes that have a consistent behaviour on the 8088 are
// emulated if the Undocumented() preference is true.
package cpu
