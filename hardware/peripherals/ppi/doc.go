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

// Package ppi implements the 8255 programmable peripheral interface as it is
// configured on the PC/XT motherboard. Port A and port C are inputs and port
// B is an output. The mode set by the control word is fixed by the BIOS and
// writes to the control register are logged and otherwise ignored.
//
// Port A returns the most recent keyboard scancode, or the low byte of the
// configuration switches when PB7 is set. Port B controls the timer gate for
// the speaker (PB0), the speaker data line (PB1), the switch nibble
// selection (PB3) and keyboard acknowledge (PB7). Port C returns one nibble
// of the configuration switches and the output of timer counter two on PC5.
package ppi
