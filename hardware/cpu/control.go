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

// extra cycles for a conditional branch that is taken
const branchTaken = 12

// condition evaluates the condition encoded in the low nibble of the
// conditional jump opcodes.
func (mc *CPU) condition(cc uint8) bool {
	fl := mc.Regs.Flags
	var r bool
	switch cc >> 1 {
	case 0:
		r = fl.Overflow
	case 1:
		r = fl.Carry
	case 2:
		r = fl.Zero
	case 3:
		r = fl.Carry || fl.Zero
	case 4:
		r = fl.Sign
	case 5:
		r = fl.Parity
	case 6:
		r = fl.Sign != fl.Overflow
	case 7:
		r = fl.Zero || fl.Sign != fl.Overflow
	}

	// odd conditions are the negation of the preceding even condition
	if cc&0x01 == 0x01 {
		return !r
	}
	return r
}

// relative takes a signed byte displacement from the queue and returns the
// target IP.
func (mc *CPU) relative() (uint16, error) {
	d, err := mc.fetch8()
	if err != nil {
		return 0, err
	}
	return mc.Regs.IP.Value() + uint16(int8(d)), nil
}

func jcc(mc *CPU, ins *instruction) error {
	target, err := mc.relative()
	if err != nil {
		return err
	}
	if mc.condition(ins.opcode & 0x0f) {
		ins.extra += branchTaken
		ins.jump(mc.Regs.CS.Value(), target)
	}
	return nil
}

// loop handles LOOPNZ, LOOPZ, LOOP and JCXZ.
func loop(mc *CPU, ins *instruction) error {
	target, err := mc.relative()
	if err != nil {
		return err
	}

	var taken bool
	if ins.opcode == 0xe3 {
		taken = mc.Regs.CX.Value() == 0
	} else {
		mc.Regs.CX.Add(0xffff)
		taken = mc.Regs.CX.Value() != 0
		switch ins.opcode {
		case 0xe0:
			taken = taken && !mc.Regs.Flags.Zero
		case 0xe1:
			taken = taken && mc.Regs.Flags.Zero
		}
	}

	if taken {
		ins.extra += branchTaken
		ins.jump(mc.Regs.CS.Value(), target)
	}
	return nil
}

func jmpShort(mc *CPU, ins *instruction) error {
	target, err := mc.relative()
	if err != nil {
		return err
	}
	ins.jump(mc.Regs.CS.Value(), target)
	return nil
}

func jmpNear(mc *CPU, ins *instruction) error {
	d, err := mc.fetch16()
	if err != nil {
		return err
	}
	ins.jump(mc.Regs.CS.Value(), mc.Regs.IP.Value()+d)
	return nil
}

func jmpFar(mc *CPU, ins *instruction) error {
	ip, err := mc.fetch16()
	if err != nil {
		return err
	}
	cs, err := mc.fetch16()
	if err != nil {
		return err
	}
	ins.jump(cs, ip)
	return nil
}

func callNear(mc *CPU, ins *instruction) error {
	d, err := mc.fetch16()
	if err != nil {
		return err
	}
	ip := mc.Regs.IP.Value()
	if err := mc.push(ip); err != nil {
		return err
	}
	ins.jump(mc.Regs.CS.Value(), ip+d)
	return nil
}

func callFar(mc *CPU, ins *instruction) error {
	ip, err := mc.fetch16()
	if err != nil {
		return err
	}
	cs, err := mc.fetch16()
	if err != nil {
		return err
	}
	if err := mc.push(mc.Regs.CS.Value()); err != nil {
		return err
	}
	if err := mc.push(mc.Regs.IP.Value()); err != nil {
		return err
	}
	ins.jump(cs, ip)
	return nil
}

// ret includes the forms that release bytes from the stack after popping
// the return address.
func ret(mc *CPU, ins *instruction) error {
	var release uint16
	if ins.opcode&0x01 == 0x00 {
		var err error
		release, err = mc.fetch16()
		if err != nil {
			return err
		}
	}

	ip, err := mc.pop()
	if err != nil {
		return err
	}
	mc.Regs.SP.Add(release)
	ins.jump(mc.Regs.CS.Value(), ip)
	return nil
}

func retFar(mc *CPU, ins *instruction) error {
	var release uint16
	if ins.opcode&0x01 == 0x00 {
		var err error
		release, err = mc.fetch16()
		if err != nil {
			return err
		}
	}

	ip, err := mc.pop()
	if err != nil {
		return err
	}
	cs, err := mc.pop()
	if err != nil {
		return err
	}
	mc.Regs.SP.Add(release)
	ins.jump(cs, ip)
	return nil
}

func int3(mc *CPU, ins *instruction) error {
	ins.softInt = vectorBreak
	return nil
}

func intImm(mc *CPU, ins *instruction) error {
	v, err := mc.fetch8()
	if err != nil {
		return err
	}
	ins.softInt = int(v)
	return nil
}

// extra cycles for INTO when the overflow flag is set
const intoTaken = 49

func into(mc *CPU, ins *instruction) error {
	if mc.Regs.Flags.Overflow {
		ins.extra += intoTaken
		ins.softInt = vectorOverflow
	}
	return nil
}

func iret(mc *CPU, ins *instruction) error {
	ip, err := mc.pop()
	if err != nil {
		return err
	}
	cs, err := mc.pop()
	if err != nil {
		return err
	}
	fl, err := mc.pop()
	if err != nil {
		return err
	}
	mc.Regs.Flags.FromValue(fl)
	ins.jump(cs, ip)
	return nil
}

// wait repeats until the TEST input is active. interrupts are serviced
// between repeats.
func wait(mc *CPU, ins *instruction) error {
	if !mc.test {
		ins.jump(mc.Regs.CS.Value(), ins.ip)
	}
	return nil
}

func hlt(mc *CPU, ins *instruction) error {
	ins.halt = true
	return nil
}

// group5 is INC, DEC, CALL, JMP and PUSH of a word operand. the far forms of
// CALL and JMP require a memory operand.
func group5(mc *CPU, ins *instruction) error {
	if (ins.reg == 3 || ins.reg == 5) && ins.mod == 0b11 {
		return mc.decodeFault(ins, "register operand for far pointer")
	}

	switch ins.reg {
	case 0, 1, 2, 4, 6:
		v, err := mc.readRM(ins, true)
		if err != nil {
			return err
		}
		switch ins.reg {
		case 0:
			return mc.writeRM(ins, true, aluInc(mc, v))
		case 1:
			return mc.writeRM(ins, true, aluDec(mc, v))
		case 2:
			if err := mc.push(mc.Regs.IP.Value()); err != nil {
				return err
			}
			ins.jump(mc.Regs.CS.Value(), v)
		case 4:
			ins.jump(mc.Regs.CS.Value(), v)
		case 6:
			// PUSH SP pushes the value of SP after it has been decremented
			if ins.mod == 0b11 && ins.rm == 4 {
				v -= 2
			}
			return mc.push(v)
		}
	case 3, 5:
		ip, err := mc.readMem(ins.segment, ins.ea, true)
		if err != nil {
			return err
		}
		cs, err := mc.readMem(ins.segment, ins.ea+2, true)
		if err != nil {
			return err
		}
		if ins.reg == 3 {
			if err := mc.push(mc.Regs.CS.Value()); err != nil {
				return err
			}
			if err := mc.push(mc.Regs.IP.Value()); err != nil {
				return err
			}
		}
		ins.jump(cs, ip)
	}

	return nil
}
