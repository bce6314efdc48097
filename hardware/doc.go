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

// Package hardware is the base package for the PC/XT emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The Board type is the root of the emulation and contains external
// references to all the sub-systems. From here, the emulation can either be
// started to run continuously (with optional callback to check for
// continuation); or it can be stepped one instruction at a time.
//
// Every component that needs to be advanced in time is subscribed to the
// Board's clock. The CPU drives the clock by ticking it for every cycle of
// every instruction. There is no other source of time in the emulation.
package hardware
