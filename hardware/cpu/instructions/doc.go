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

// Package instructions defines the static properties of every 8088 opcode.
// The Definitions table is used by the processor to decide whether an opcode
// requires a ModRM byte and how many cycles it takes, and by the disassembler
// to produce the mnemonic and operands.
//
// Opcodes 0x80 to 0x83, 0xd0 to 0xd3, 0xf6, 0xf7, 0xfe and 0xff are groups.
// The operation is selected by the reg field of the ModRM byte and the
// members of each group are listed in the Groups table.
package instructions
