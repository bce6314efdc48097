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

// Package pit implements the 8253 programmable interval timer. The timer
// has three independent counters. On the PC the timer is clocked at one
// quarter of the system clock. Counter zero drives IRQ0, counter one was used
// for DRAM refresh and counter two drives the speaker.
//
// The PIT type implements the clock.Ticker interface and the
// memory.Location interface. It should be subscribed to the system clock and
// registered in the I/O map with a size of four.
//
// Modes 0, 2 and 3 are modelled. Modes 1, 4 and 5 are treated as mode 0
// with the gate input honoured. BCD counting is not supported and the BCD
// bit of the control word is ignored.
package pit
