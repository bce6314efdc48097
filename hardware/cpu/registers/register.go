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

package registers

import (
	"fmt"
)

// Register is a 16 bit register. The general purpose registers AX, BX, CX
// and DX can also be accessed as two 8 bit registers with the Lo() and Hi()
// functions. The low and high bytes are views of the same storage and so can
// never diverge from the word value.
type Register struct {
	label string
	value uint16
}

// NewRegister is the preferred method of initialisation for the Register type.
func NewRegister(val uint16, label string) Register {
	return Register{
		value: val,
		label: label,
	}
}

func (r Register) String() string {
	return fmt.Sprintf("%s=%04x", r.label, r.value)
}

// Label returns the canonical name of the register.
func (r Register) Label() string {
	return r.label
}

// Value returns the current value of the register.
func (r Register) Value() uint16 {
	return r.value
}

// Lo returns the low byte of the register.
func (r Register) Lo() uint8 {
	return uint8(r.value)
}

// Hi returns the high byte of the register.
func (r Register) Hi() uint8 {
	return uint8(r.value >> 8)
}

// Load value into register.
func (r *Register) Load(val uint16) {
	r.value = val
}

// LoadLo loads the low byte of the register. The high byte is unchanged.
func (r *Register) LoadLo(val uint8) {
	r.value = (r.value & 0xff00) | uint16(val)
}

// LoadHi loads the high byte of the register. The low byte is unchanged.
func (r *Register) LoadHi(val uint8) {
	r.value = (r.value & 0x00ff) | (uint16(val) << 8)
}

// Add value to register, wrapping on overflow. No flags are affected.
func (r *Register) Add(val uint16) {
	r.value += val
}
