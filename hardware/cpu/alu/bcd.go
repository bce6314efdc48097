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

// DAA adjusts AL after the addition of two packed BCD values.
func DAA(fl *registers.Flags, al uint8) uint8 {
	old := al
	oldCarry := fl.Carry

	if al&0x0f > 9 || fl.AuxCarry {
		fl.Carry = oldCarry || al > 0xf9
		al += 0x06
		fl.AuxCarry = true
	} else {
		fl.AuxCarry = false
	}

	if old > 0x99 || oldCarry {
		al += 0x60
		fl.Carry = true
	} else {
		fl.Carry = false
	}

	SetSZP(fl, uint16(al), false)
	return al
}

// DAS adjusts AL after the subtraction of two packed BCD values.
func DAS(fl *registers.Flags, al uint8) uint8 {
	old := al
	oldCarry := fl.Carry

	if al&0x0f > 9 || fl.AuxCarry {
		fl.Carry = oldCarry || al < 0x06
		al -= 0x06
		fl.AuxCarry = true
	} else {
		fl.AuxCarry = false
	}

	if old > 0x99 || oldCarry {
		al -= 0x60
		fl.Carry = true
	} else {
		fl.Carry = false
	}

	SetSZP(fl, uint16(al), false)
	return al
}

// AAA adjusts AX after the addition of two unpacked BCD values.
func AAA(fl *registers.Flags, ax uint16) uint16 {
	al := uint8(ax)
	ah := uint8(ax >> 8)

	if al&0x0f > 9 || fl.AuxCarry {
		al += 6
		ah++
		fl.AuxCarry = true
		fl.Carry = true
	} else {
		fl.AuxCarry = false
		fl.Carry = false
	}
	al &= 0x0f

	SetSZP(fl, uint16(al), false)
	return uint16(ah)<<8 | uint16(al)
}

// AAS adjusts AX after the subtraction of two unpacked BCD values.
func AAS(fl *registers.Flags, ax uint16) uint16 {
	al := uint8(ax)
	ah := uint8(ax >> 8)

	if al&0x0f > 9 || fl.AuxCarry {
		al -= 6
		ah--
		fl.AuxCarry = true
		fl.Carry = true
	} else {
		fl.AuxCarry = false
		fl.Carry = false
	}
	al &= 0x0f

	SetSZP(fl, uint16(al), false)
	return uint16(ah)<<8 | uint16(al)
}

// AAM converts AL into two unpacked digits in the given base, the result
// being in AX. The final return value is false if base is zero, in which
// case AX should not be changed.
func AAM(fl *registers.Flags, al uint8, base uint8) (uint16, bool) {
	if base == 0 {
		return 0, false
	}
	ah := al / base
	al = al % base
	SetSZP(fl, uint16(al), false)
	return uint16(ah)<<8 | uint16(al), true
}

// AAD converts two unpacked digits in AX, in the given base, into a binary
// value in AL. AH is cleared.
func AAD(fl *registers.Flags, ax uint16, base uint8) uint16 {
	al := uint8(ax) + uint8(ax>>8)*base
	SetSZP(fl, uint16(al), false)
	return uint16(al)
}
