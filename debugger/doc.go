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

// Package debugger implements the interactive monitor for the emulated PC.
//
// The monitor reads commands from a terminal.Terminal and acts upon the
// hardware.Board. Commands are case insensitive and more than one command can
// be given on a line by separating them with a semi-colon. An empty line in an
// interactive session is the same as the STEP command.
//
// Numbers that represent addresses or data are hexadecimal by default. Counts
// are decimal by default. In either case the base can be forced with a prefix
// (0x or $ for hexadecimal, # for decimal) or with the h suffix used by the
// disassembler.
//
// Addresses can be given as a segment:offset pair or as a linear address.
// Each part of a segment:offset pair can be a register name. For example:
//
//	MEM CS:IP 32
//	MEM DS:0100
//	MEM f0000
//
// The RUN command runs the emulation until a key is pressed, or the optional
// address is reached, or until an error occurs.
package debugger
