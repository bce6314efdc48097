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

// Package memory implements the address spaces of the emulated machine. The
// Map type is used for both the memory and the I/O port address spaces.
//
// Devices implement the Location interface and are registered with a Map at
// a base address. Accessing an address that has no device registered is an
// error (AddressError) and it is up to the caller to decide what that means.
// The processor's bus interface treats it as a bus fault.
package memory
