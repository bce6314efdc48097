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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gopher8088/curated"
	"github.com/jetsetilly/gopher8088/hardware/cpu/registers"
	"github.com/jetsetilly/gopher8088/test"
)

func TestByteViews(t *testing.T) {
	r := registers.NewRegisters()

	r.AX.Load(0x1234)
	test.ExpectEquality(t, r.Reg8(0), uint8(0x34))
	test.ExpectEquality(t, r.Reg8(4), uint8(0x12))

	r.SetReg8(4, 0xab)
	test.ExpectEquality(t, r.AX.Value(), uint16(0xab34))
	r.SetReg8(0, 0xcd)
	test.ExpectEquality(t, r.AX.Value(), uint16(0xabcd))

	// BL and BH are encodings 3 and 7
	r.BX.Load(0x0102)
	test.ExpectEquality(t, r.Reg8(3), uint8(0x02))
	test.ExpectEquality(t, r.Reg8(7), uint8(0x01))

	// the 16 bit value is always the combination of the byte values
	for n := uint8(0); n < 4; n++ {
		r.SetReg8(n, n+1)
		r.SetReg8(n+4, n+0x10)
		w := r.Reg16(n).Value()
		test.ExpectEquality(t, w, uint16(r.Reg8(n+4))<<8|uint16(r.Reg8(n)))
	}
}

func TestReset(t *testing.T) {
	r := registers.NewRegisters()
	test.ExpectEquality(t, r.CS.Value(), uint16(0xffff))
	test.ExpectEquality(t, r.IP.Value(), uint16(0))
	test.ExpectEquality(t, r.Flags.Value(), uint16(0xf002))
}

func TestSelectors(t *testing.T) {
	r := registers.NewRegisters()
	test.ExpectEquality(t, r.Reg16(4).Label(), "SP")
	test.ExpectEquality(t, r.Segment(registers.SS).Label(), "SS")
	test.ExpectEquality(t, registers.DS.String(), "DS")

	reg, ok := r.Named("bp")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, reg.Label(), "BP")
	_, ok = r.Named("XX")
	test.ExpectFailure(t, ok)
}

func TestProtocolViolation(t *testing.T) {
	r := registers.NewRegisters()

	expectPanic := func(f func()) {
		t.Helper()
		defer func() {
			t.Helper()
			v := recover()
			err, ok := v.(error)
			test.DemandSuccess(t, ok)
			test.ExpectSuccess(t, curated.Is(err, registers.ProtocolViolation))
		}()
		f()
	}

	expectPanic(func() { r.Reg16(8) })
	expectPanic(func() { r.Reg8(8) })
	expectPanic(func() { r.SetReg8(9, 0) })
	expectPanic(func() { r.Segment(4) })
}

func TestFlags(t *testing.T) {
	var fl registers.Flags
	test.ExpectEquality(t, fl.String(), "odit szapc")

	fl.Carry = true
	fl.Zero = true
	fl.Interrupt = true
	test.ExpectEquality(t, fl.String(), "odIt sZapC")
	test.ExpectEquality(t, fl.Value(), uint16(0xf243))

	fl.FromValue(0x0891)
	test.ExpectSuccess(t, fl.Overflow)
	test.ExpectSuccess(t, fl.Sign)
	test.ExpectSuccess(t, fl.AuxCarry)
	test.ExpectSuccess(t, fl.Carry)
	test.ExpectFailure(t, fl.Zero)
	test.ExpectFailure(t, fl.Interrupt)
	test.ExpectSuccess(t, fl.Get("OF"))

	// loading the low byte leaves the high flags alone
	fl.LoadLo(0x00)
	test.ExpectSuccess(t, fl.Overflow)
	test.ExpectFailure(t, fl.Carry)
}
