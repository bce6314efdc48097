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

// Package pic implements the 8259A programmable interrupt controller.
//
// The controller is programmed through two ports. After reset it waits for
// the initialisation command words (ICW1 to ICW4) and then accepts operation
// command words (OCW1 to OCW3). Sequences that the 8259A ignores are ignored
// here too, and logged.
//
// Peripherals raise requests with IRQ(). The processor samples INTR() at
// instruction boundaries and reads the vector with the acknowledge pulses of
// Inta(). A slave controller is connected with Cascade() and forwards the
// rising edge of its INTR output to the master.
//
// Only one interrupt can be in service at a time. While an interrupt is in
// service only requests of higher priority cause INTR to be raised, unless
// special mask mode is active.
package pic
