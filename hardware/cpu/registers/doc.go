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

// Package registers implements the register file of the 8088.
//
// The general purpose registers are 16 bit Register instances. AX, BX, CX and
// DX are also accessible as 8 bit registers. There is no separate storage
// for the 8 bit registers, the Lo() and Hi() functions are views onto the 16
// bit value and LoadLo() and LoadHi() update only part of the value.
//
// Registers are selected in the same way as they are encoded in instructions
// with the Reg16(), Reg8() and Segment() functions. A selector that is out of
// range causes a panic with a ProtocolViolation error. This can only happen
// if the instruction decoder is faulty.
//
// The Flags type stores each flag as a bool. The packed form used by PUSHF
// and POPF is produced by Value() and consumed by FromValue(). The 8088 sets
// bit 1 and bits 12 to 15 of the packed value.
//
// Registers contain no logic for arithmetic. Flag computation is the
// responsibility of the alu package.
package registers
