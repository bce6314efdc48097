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
	"math/bits"

	"github.com/jetsetilly/gopher8088/hardware/cpu/registers"
)

// Op is one of the eight arithmetic/logic operations that share an encoding
// in the first half of the opcode table and in the 0x80 to 0x83 group. The
// numbering is the same as the encoding.
type Op uint8

// List of valid Op values.
const (
	ADD Op = iota
	OR
	ADC
	SBB
	AND
	SUB
	XOR
	CMP
)

var opNames = [...]string{"ADD", "OR", "ADC", "SBB", "AND", "SUB", "XOR", "CMP"}

func (op Op) String() string {
	return opNames[op&7]
}

// masks for the width of the operation. the carry mask is the bit above the
// most significant bit of the result
func masks(wide bool) (mask uint32, sign uint32, carry uint32) {
	if wide {
		return 0xffff, 0x8000, 0x10000
	}
	return 0xff, 0x80, 0x100
}

// Parity returns true if the value has an even number of set bits. Only the
// low byte of a result is considered when setting the parity flag.
func Parity(v uint8) bool {
	return bits.OnesCount8(v)&1 == 0
}

// SetSZP sets the sign, zero and parity flags according to the result.
func SetSZP(fl *registers.Flags, res uint16, wide bool) {
	mask, sign, _ := masks(wide)
	r := uint32(res) & mask
	fl.Sign = r&sign == sign
	fl.Zero = r == 0
	fl.Parity = Parity(uint8(r))
}

// Arith performs the operation on a and b and sets the flags. The result of
// CMP is the same as SUB but the caller should not store it.
func Arith(fl *registers.Flags, op Op, a uint16, b uint16, wide bool) uint16 {
	switch op {
	case ADD:
		return Add(fl, a, b, false, wide)
	case OR:
		return Logic(fl, a|b, wide)
	case ADC:
		return Add(fl, a, b, fl.Carry, wide)
	case SBB:
		return Sub(fl, a, b, fl.Carry, wide)
	case AND:
		return Logic(fl, a&b, wide)
	case SUB, CMP:
		return Sub(fl, a, b, false, wide)
	case XOR:
		return Logic(fl, a^b, wide)
	}
	return 0
}

// Add a and b, plus one if carry is true.
func Add(fl *registers.Flags, a uint16, b uint16, carry bool, wide bool) uint16 {
	mask, sign, cm := masks(wide)
	x := uint32(a) & mask
	y := uint32(b) & mask
	res := x + y
	if carry {
		res++
	}

	fl.Carry = res&cm == cm
	fl.AuxCarry = (x^y^res)&0x10 == 0x10
	fl.Overflow = (res^x)&(res^y)&sign == sign
	SetSZP(fl, uint16(res), wide)

	return uint16(res & mask)
}

// Sub subtracts b from a, and a further one if borrow is true.
func Sub(fl *registers.Flags, a uint16, b uint16, borrow bool, wide bool) uint16 {
	mask, sign, cm := masks(wide)
	x := uint32(a) & mask
	y := uint32(b) & mask
	res := x - y
	if borrow {
		res--
	}

	fl.Carry = res&cm == cm
	fl.AuxCarry = (x^y^res)&0x10 == 0x10
	fl.Overflow = (x^y)&(x^res)&sign == sign
	SetSZP(fl, uint16(res), wide)

	return uint16(res & mask)
}

// Logic sets the flags for the result of a logical operation. Carry and
// overflow are always cleared.
func Logic(fl *registers.Flags, res uint16, wide bool) uint16 {
	mask, _, _ := masks(wide)
	fl.Carry = false
	fl.Overflow = false
	fl.AuxCarry = false
	SetSZP(fl, res, wide)
	return uint16(uint32(res) & mask)
}

// Inc adds one to a. The carry flag is not affected.
func Inc(fl *registers.Flags, a uint16, wide bool) uint16 {
	c := fl.Carry
	res := Add(fl, a, 1, false, wide)
	fl.Carry = c
	return res
}

// Dec subtracts one from a. The carry flag is not affected.
func Dec(fl *registers.Flags, a uint16, wide bool) uint16 {
	c := fl.Carry
	res := Sub(fl, a, 1, false, wide)
	fl.Carry = c
	return res
}

// Neg subtracts a from zero. The carry flag is set unless a is zero.
func Neg(fl *registers.Flags, a uint16, wide bool) uint16 {
	return Sub(fl, 0, a, false, wide)
}
