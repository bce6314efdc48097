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

package cpu

import (
	"github.com/jetsetilly/gopher8088/hardware/cpu/alu"
)

// arith handles the six encodings of each of the eight operations in the
// first quarter of the opcode table.
func arith(mc *CPU, ins *instruction) error {
	op := alu.Op((ins.opcode >> 3) & 0x07)
	wide := ins.opcode&0x01 == 0x01
	fl := &mc.Regs.Flags

	switch ins.opcode & 0x07 {
	case 0, 1:
		a, err := mc.readRM(ins, wide)
		if err != nil {
			return err
		}
		res := alu.Arith(fl, op, a, mc.readReg(ins, wide), wide)
		if op != alu.CMP {
			return mc.writeRM(ins, wide, res)
		}
	case 2, 3:
		b, err := mc.readRM(ins, wide)
		if err != nil {
			return err
		}
		res := alu.Arith(fl, op, mc.readReg(ins, wide), b, wide)
		if op != alu.CMP {
			mc.writeReg(ins, wide, res)
		}
	case 4:
		b, err := mc.fetch8()
		if err != nil {
			return err
		}
		res := alu.Arith(fl, op, uint16(mc.Regs.AX.Lo()), uint16(b), false)
		if op != alu.CMP {
			mc.Regs.AX.LoadLo(uint8(res))
		}
	case 5:
		b, err := mc.fetch16()
		if err != nil {
			return err
		}
		res := alu.Arith(fl, op, mc.Regs.AX.Value(), b, true)
		if op != alu.CMP {
			mc.Regs.AX.Load(res)
		}
	}

	return nil
}

// group1 is the immediate form of the eight arithmetic and logic operations.
// 0x83 sign extends a byte immediate to a word.
func group1(mc *CPU, ins *instruction) error {
	op := alu.Op(ins.reg)
	wide := ins.opcode&0x01 == 0x01

	a, err := mc.readRM(ins, wide)
	if err != nil {
		return err
	}

	var b uint16
	if ins.opcode == 0x83 {
		v, err := mc.fetch8()
		if err != nil {
			return err
		}
		b = uint16(int8(v))
	} else {
		b, err = mc.fetchImmediate(wide)
		if err != nil {
			return err
		}
	}

	res := alu.Arith(&mc.Regs.Flags, op, a, b, wide)
	if op != alu.CMP {
		return mc.writeRM(ins, wide, res)
	}
	return nil
}

func testRM(mc *CPU, ins *instruction) error {
	wide := ins.opcode&0x01 == 0x01
	a, err := mc.readRM(ins, wide)
	if err != nil {
		return err
	}
	alu.Logic(&mc.Regs.Flags, a&mc.readReg(ins, wide), wide)
	return nil
}

func testAcc(mc *CPU, ins *instruction) error {
	wide := ins.opcode&0x01 == 0x01
	b, err := mc.fetchImmediate(wide)
	if err != nil {
		return err
	}
	alu.Logic(&mc.Regs.Flags, mc.Regs.AX.Value()&b, wide)
	return nil
}

func incReg(mc *CPU, ins *instruction) error {
	r := mc.Regs.Reg16(ins.opcode & 0x07)
	r.Load(alu.Inc(&mc.Regs.Flags, r.Value(), true))
	return nil
}

func decReg(mc *CPU, ins *instruction) error {
	r := mc.Regs.Reg16(ins.opcode & 0x07)
	r.Load(alu.Dec(&mc.Regs.Flags, r.Value(), true))
	return nil
}

func daa(mc *CPU, ins *instruction) error {
	mc.Regs.AX.LoadLo(alu.DAA(&mc.Regs.Flags, mc.Regs.AX.Lo()))
	return nil
}

func das(mc *CPU, ins *instruction) error {
	mc.Regs.AX.LoadLo(alu.DAS(&mc.Regs.Flags, mc.Regs.AX.Lo()))
	return nil
}

func aaa(mc *CPU, ins *instruction) error {
	mc.Regs.AX.Load(alu.AAA(&mc.Regs.Flags, mc.Regs.AX.Value()))
	return nil
}

func aas(mc *CPU, ins *instruction) error {
	mc.Regs.AX.Load(alu.AAS(&mc.Regs.Flags, mc.Regs.AX.Value()))
	return nil
}

func aam(mc *CPU, ins *instruction) error {
	base, err := mc.fetch8()
	if err != nil {
		return err
	}
	ax, ok := alu.AAM(&mc.Regs.Flags, mc.Regs.AX.Lo(), base)
	if !ok {
		ins.softInt = vectorDivide
		return nil
	}
	mc.Regs.AX.Load(ax)
	return nil
}

func aad(mc *CPU, ins *instruction) error {
	base, err := mc.fetch8()
	if err != nil {
		return err
	}
	mc.Regs.AX.Load(alu.AAD(&mc.Regs.Flags, mc.Regs.AX.Value(), base))
	return nil
}

// salc sets AL to 0xff if the carry flag is set and to zero otherwise.
func salc(mc *CPU, ins *instruction) error {
	if mc.Regs.Flags.Carry {
		mc.Regs.AX.LoadLo(0xff)
	} else {
		mc.Regs.AX.LoadLo(0x00)
	}
	return nil
}

func cbw(mc *CPU, ins *instruction) error {
	mc.Regs.AX.Load(uint16(int8(mc.Regs.AX.Lo())))
	return nil
}

func cwd(mc *CPU, ins *instruction) error {
	if mc.Regs.AX.Value()&0x8000 == 0x8000 {
		mc.Regs.DX.Load(0xffff)
	} else {
		mc.Regs.DX.Load(0x0000)
	}
	return nil
}

// group2 is the shift and rotate group. 0xd2 and 0xd3 take the count from CL
// and take four cycles for every bit shifted.
func group2(mc *CPU, ins *instruction) error {
	wide := ins.opcode&0x01 == 0x01

	a, err := mc.readRM(ins, wide)
	if err != nil {
		return err
	}

	count := uint8(1)
	if ins.opcode&0x02 == 0x02 {
		count = mc.Regs.CX.Lo()
		ins.extra += 4 * int(count)
	}

	res := alu.Shift(&mc.Regs.Flags, alu.ShiftOp(ins.reg), a, count, wide)
	return mc.writeRM(ins, wide, res)
}

// group3 is TEST, NOT, NEG, MUL, IMUL, DIV and IDIV.
func group3(mc *CPU, ins *instruction) error {
	wide := ins.opcode&0x01 == 0x01
	fl := &mc.Regs.Flags

	a, err := mc.readRM(ins, wide)
	if err != nil {
		return err
	}

	switch ins.reg {
	case 0, 1:
		b, err := mc.fetchImmediate(wide)
		if err != nil {
			return err
		}
		alu.Logic(fl, a&b, wide)
	case 2:
		return mc.writeRM(ins, wide, ^a)
	case 3:
		return mc.writeRM(ins, wide, alu.Neg(fl, a, wide))
	case 4, 5:
		mul := alu.Mul
		if ins.reg == 5 {
			mul = alu.IMul
		}
		if wide {
			lo, hi := mul(fl, mc.Regs.AX.Value(), a, true)
			mc.Regs.AX.Load(lo)
			mc.Regs.DX.Load(hi)
		} else {
			lo, _ := mul(fl, uint16(mc.Regs.AX.Lo()), a, false)
			mc.Regs.AX.Load(lo)
		}
	case 6, 7:
		div := alu.Div
		if ins.reg == 7 {
			div = alu.IDiv
		}
		if wide {
			dividend := uint32(mc.Regs.DX.Value())<<16 | uint32(mc.Regs.AX.Value())
			q, r, ok := div(dividend, a, true)
			if !ok {
				ins.softInt = vectorDivide
				return nil
			}
			mc.Regs.AX.Load(q)
			mc.Regs.DX.Load(r)
		} else {
			q, r, ok := div(uint32(mc.Regs.AX.Value()), a, false)
			if !ok {
				ins.softInt = vectorDivide
				return nil
			}
			mc.Regs.AX.LoadLo(uint8(q))
			mc.Regs.AX.LoadHi(uint8(r))
		}
	}

	return nil
}

// group4 is INC and DEC of a byte operand.
func group4(mc *CPU, ins *instruction) error {
	a, err := mc.readRM(ins, false)
	if err != nil {
		return err
	}
	if ins.reg == 0 {
		return mc.writeRM(ins, false, alu.Inc(&mc.Regs.Flags, a, false))
	}
	return mc.writeRM(ins, false, alu.Dec(&mc.Regs.Flags, a, false))
}

// flagOp handles the instructions that only change a single flag.
func flagOp(mc *CPU, ins *instruction) error {
	fl := &mc.Regs.Flags
	switch ins.opcode {
	case 0xf5:
		fl.Carry = !fl.Carry
	case 0xf8:
		fl.Carry = false
	case 0xf9:
		fl.Carry = true
	case 0xfa:
		fl.Interrupt = false
	case 0xfb:
		fl.Interrupt = true
		mc.inhibit = true
	case 0xfc:
		fl.Direction = false
	case 0xfd:
		fl.Direction = true
	}
	return nil
}

func aluInc(mc *CPU, v uint16) uint16 {
	return alu.Inc(&mc.Regs.Flags, v, true)
}

func aluDec(mc *CPU, v uint16) uint16 {
	return alu.Dec(&mc.Regs.Flags, v, true)
}
