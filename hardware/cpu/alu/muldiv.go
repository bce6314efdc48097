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

// Mul performs an unsigned multiplication. For byte operations the result is
// in the low word. For word operations the result is split into a low and a
// high word.
//
// Carry and overflow are set if the high half of the result is not zero. The
// zero flag is always cleared on the 8088.
func Mul(fl *registers.Flags, a uint16, b uint16, wide bool) (lo uint16, hi uint16) {
	if wide {
		res := uint32(a) * uint32(b)
		lo, hi = uint16(res), uint16(res>>16)
		fl.Carry = hi != 0
		SetSZP(fl, lo, true)
	} else {
		res := uint16(uint8(a)) * uint16(uint8(b))
		lo = res
		fl.Carry = res&0xff00 != 0
		SetSZP(fl, res, false)
	}
	fl.Overflow = fl.Carry
	fl.Zero = false
	return lo, hi
}

// IMul performs a signed multiplication. Carry and overflow are set if the
// high half of the result is not a sign extension of the low half.
func IMul(fl *registers.Flags, a uint16, b uint16, wide bool) (lo uint16, hi uint16) {
	if wide {
		res := int32(int16(a)) * int32(int16(b))
		lo, hi = uint16(res), uint16(uint32(res)>>16)
		fl.Carry = res != int32(int16(lo))
		SetSZP(fl, lo, true)
	} else {
		res := int16(int8(a)) * int16(int8(b))
		lo = uint16(res)
		fl.Carry = res != int16(int8(lo))
		SetSZP(fl, lo, false)
	}
	fl.Overflow = fl.Carry
	fl.Zero = false
	return lo, hi
}

// Div performs an unsigned division. For byte operations the dividend is the
// low word of the dividend argument. The final return value is false if the
// divisor is zero or if the quotient does not fit in the destination. The
// flags are not affected.
func Div(dividend uint32, divisor uint16, wide bool) (quotient uint16, remainder uint16, ok bool) {
	if wide {
		if divisor == 0 {
			return 0, 0, false
		}
		q := dividend / uint32(divisor)
		if q > 0xffff {
			return 0, 0, false
		}
		return uint16(q), uint16(dividend % uint32(divisor)), true
	}

	d := uint16(dividend)
	b := uint16(uint8(divisor))
	if b == 0 {
		return 0, 0, false
	}
	q := d / b
	if q > 0xff {
		return 0, 0, false
	}
	return q, d % b, true
}

// IDiv performs a signed division. The quotient is truncated towards zero and
// the remainder has the same sign as the dividend.
//
// The 8088 cannot produce the most negative quotient. For byte operations
// the valid range of the quotient is -127 to 127 and for word operations it
// is -32767 to 32767.
func IDiv(dividend uint32, divisor uint16, wide bool) (quotient uint16, remainder uint16, ok bool) {
	if wide {
		if divisor == 0 {
			return 0, 0, false
		}
		a := int64(int32(dividend))
		b := int64(int16(divisor))
		q := a / b
		if q > 32767 || q < -32767 {
			return 0, 0, false
		}
		return uint16(q), uint16(a % b), true
	}

	a := int32(int16(dividend))
	b := int32(int8(divisor))
	if b == 0 {
		return 0, 0, false
	}
	q := a / b
	if q > 127 || q < -127 {
		return 0, 0, false
	}
	return uint16(uint8(q)), uint16(uint8(a % b)), true
}
