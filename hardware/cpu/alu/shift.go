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

package alu

import (
	"github.com/jetsetilly/gopher8088/hardware/cpu/registers"
)

// ShiftOp is one of the shift and rotate operations of the 0xd0 to 0xd3
// group. The numbering is the same as the encoding in the reg field.
type ShiftOp uint8

// List of valid ShiftOp values.
const (
	ROL ShiftOp = iota
	ROR
	RCL
	RCR
	SHL
	SHR

	// SETMO is the undocumented operation at encoding 6. The result is all
	// bits set regardless of the operand.
	SETMO

	SAR
)

var shiftNames = [...]string{"ROL", "ROR", "RCL", "RCR", "SHL", "SHR", "SETMO", "SAR"}

func (op ShiftOp) String() string {
	return shiftNames[op&7]
}

// Shift performs the shift or rotate operation count times. The count is not
// masked, a count of 255 will shift 255 times. A count of zero leaves the
// value and the flags unchanged.
//
// Rotates only affect the carry and overflow flags. Shifts also set the
// sign, zero and parity flags and clear the auxiliary carry flag.
func Shift(fl *registers.Flags, op ShiftOp, a uint16, count uint8, wide bool) uint16 {
	if count == 0 {
		return a
	}

	m, s, _ := masks(wide)
	mask := uint16(m)
	sign := uint16(s)

	v := a & mask

	// the value before the most recent single shift. used for the overflow
	// flag of SHR
	var prev uint16

	for i := uint8(0); i < count; i++ {
		prev = v
		switch op {
		case ROL:
			c := v&sign == sign
			v = (v << 1) & mask
			if c {
				v |= 1
			}
			fl.Carry = c
		case ROR:
			c := v&1 == 1
			v >>= 1
			if c {
				v |= sign
			}
			fl.Carry = c
		case RCL:
			c := v&sign == sign
			v = (v << 1) & mask
			if fl.Carry {
				v |= 1
			}
			fl.Carry = c
		case RCR:
			c := v&1 == 1
			v >>= 1
			if fl.Carry {
				v |= sign
			}
			fl.Carry = c
		case SHL:
			fl.Carry = v&sign == sign
			v = (v << 1) & mask
		case SHR:
			fl.Carry = v&1 == 1
			v >>= 1
		case SAR:
			fl.Carry = v&1 == 1
			v = (v >> 1) | (v & sign)
		case SETMO:
			v = mask
		}
	}

	switch op {
	case ROL, RCL:
		fl.Overflow = (v&sign == sign) != fl.Carry
	case ROR, RCR:
		fl.Overflow = (v^(v<<1))&sign == sign
	case SHL:
		fl.Overflow = (v&sign == sign) != fl.Carry
		fl.AuxCarry = false
		SetSZP(fl, v, wide)
	case SHR:
		fl.Overflow = prev&sign == sign
		fl.AuxCarry = false
		SetSZP(fl, v, wide)
	case SAR:
		fl.Overflow = false
		fl.AuxCarry = false
		SetSZP(fl, v, wide)
	case SETMO:
		fl.Carry = false
		fl.Overflow = false
		fl.AuxCarry = false
		SetSZP(fl, v, wide)
	}

	return v
}
