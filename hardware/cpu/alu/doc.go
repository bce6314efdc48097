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

// Package alu contains the arithmetic and logic operations of the 8088. Every
// function takes a pointer to the flags register and sets the flags in the
// same way as the hardware does.
//
// Functions that can operate on either bytes or words take a wide argument.
// When wide is false only the low byte of the operands is used and the
// result is in the low byte of the return value.
//
// Division functions do not affect the flags and return false if the
// division would cause a divide error. It is the processor's responsibility
// to raise the divide error interrupt.
package alu
