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
	"fmt"

	"github.com/jetsetilly/gopher8088/hardware/cpu/buscycle"
	"github.com/jetsetilly/gopher8088/hardware/cpu/registers"
)

func movRM(mc *CPU, ins *instruction) error {
	wide := ins.opcode&0x01 == 0x01
	if ins.opcode&0x02 == 0x00 {
		return mc.writeRM(ins, wide, mc.readReg(ins, wide))
	}
	v, err := mc.readRM(ins, wide)
	if err != nil {
		return err
	}
	mc.writeReg(ins, wide, v)
	return nil
}

// movRMImm ignores the reg field.
func movRMImm(mc *CPU, ins *instruction) error {
	wide := ins.opcode&0x01 == 0x01
	v, err := mc.fetchImmediate(wide)
	if err != nil {
		return err
	}
	return mc.writeRM(ins, wide, v)
}

func movRegImm(mc *CPU, ins *instruction) error {
	if ins.opcode < 0xb8 {
		v, err := mc.fetch8()
		if err != nil {
			return err
		}
		mc.Regs.SetReg8(ins.opcode&0x07, v)
		return nil
	}
	v, err := mc.fetch16()
	if err != nil {
		return err
	}
	mc.Regs.Reg16(ins.opcode & 0x07).Load(v)
	return nil
}

// movAccMem moves between the accumulator and a direct memory address.
func movAccMem(mc *CPU, ins *instruction) error {
	wide := ins.opcode&0x01 == 0x01
	offset, err := mc.fetch16()
	if err != nil {
		return err
	}

	if ins.opcode&0x02 == 0x02 {
		return mc.writeMem(ins.segment, offset, wide, mc.Regs.AX.Value())
	}

	v, err := mc.readMem(ins.segment, offset, wide)
	if err != nil {
		return err
	}
	if wide {
		mc.Regs.AX.Load(v)
	} else {
		mc.Regs.AX.LoadLo(uint8(v))
	}
	return nil
}

func movFromSegment(mc *CPU, ins *instruction) error {
	if ins.reg > 3 {
		return mc.decodeFault(ins, fmt.Sprintf("segment register %d", ins.reg))
	}
	return mc.writeRM(ins, true, mc.Regs.Segment(registers.Segment(ins.reg)).Value())
}

// movToSegment loads a segment register. loading CS is a control transfer.
// interrupts are inhibited for one instruction after loading SS so that SP
// can be loaded safely.
func movToSegment(mc *CPU, ins *instruction) error {
	if ins.reg > 3 {
		return mc.decodeFault(ins, fmt.Sprintf("segment register %d", ins.reg))
	}

	v, err := mc.readRM(ins, true)
	if err != nil {
		return err
	}

	seg := registers.Segment(ins.reg)
	switch seg {
	case registers.CS:
		ins.jump(v, mc.Regs.IP.Value())
	case registers.SS:
		mc.Regs.SS.Load(v)
		mc.inhibit = true
	default:
		mc.Regs.Segment(seg).Load(v)
	}
	return nil
}

func lea(mc *CPU, ins *instruction) error {
	if ins.mod == 0b11 {
		return mc.decodeFault(ins, "register operand")
	}
	mc.writeReg(ins, true, ins.ea)
	return nil
}

// loadFarPointer is LES and LDS.
func loadFarPointer(mc *CPU, ins *instruction) error {
	if ins.mod == 0b11 {
		return mc.decodeFault(ins, "register operand")
	}

	offset, err := mc.readMem(ins.segment, ins.ea, true)
	if err != nil {
		return err
	}
	segment, err := mc.readMem(ins.segment, ins.ea+2, true)
	if err != nil {
		return err
	}

	mc.writeReg(ins, true, offset)
	if ins.opcode == 0xc4 {
		mc.Regs.ES.Load(segment)
	} else {
		mc.Regs.DS.Load(segment)
	}
	return nil
}

func xchgRM(mc *CPU, ins *instruction) error {
	wide := ins.opcode&0x01 == 0x01
	a, err := mc.readRM(ins, wide)
	if err != nil {
		return err
	}
	if err := mc.writeRM(ins, wide, mc.readReg(ins, wide)); err != nil {
		return err
	}
	mc.writeReg(ins, wide, a)
	return nil
}

// xchgAX includes NOP, which is XCHG AX,AX.
func xchgAX(mc *CPU, ins *instruction) error {
	r := mc.Regs.Reg16(ins.opcode & 0x07)
	v := r.Value()
	r.Load(mc.Regs.AX.Value())
	mc.Regs.AX.Load(v)
	return nil
}

func xlat(mc *CPU, ins *instruction) error {
	v, err := mc.readMem(ins.segment, mc.Regs.BX.Value()+uint16(mc.Regs.AX.Lo()), false)
	if err != nil {
		return err
	}
	mc.Regs.AX.LoadLo(uint8(v))
	return nil
}

func pushReg(mc *CPU, ins *instruction) error {
	r := mc.Regs.Reg16(ins.opcode & 0x07)

	// PUSH SP pushes the value of SP after it has been decremented
	if r == &mc.Regs.SP {
		return mc.push(r.Value() - 2)
	}
	return mc.push(r.Value())
}

func popReg(mc *CPU, ins *instruction) error {
	v, err := mc.pop()
	if err != nil {
		return err
	}
	mc.Regs.Reg16(ins.opcode & 0x07).Load(v)
	return nil
}

func popRM(mc *CPU, ins *instruction) error {
	if ins.reg != 0 {
		return mc.decodeFault(ins, fmt.Sprintf("no instruction for reg field %d", ins.reg))
	}
	v, err := mc.pop()
	if err != nil {
		return err
	}
	return mc.writeRM(ins, true, v)
}

func pushSegment(mc *CPU, ins *instruction) error {
	return mc.push(mc.Regs.Segment(registers.Segment(ins.opcode >> 3)).Value())
}

// popSegment includes the undocumented POP CS, which is a control transfer.
func popSegment(mc *CPU, ins *instruction) error {
	v, err := mc.pop()
	if err != nil {
		return err
	}

	seg := registers.Segment(ins.opcode >> 3)
	switch seg {
	case registers.CS:
		ins.jump(v, mc.Regs.IP.Value())
	case registers.SS:
		mc.Regs.SS.Load(v)
		mc.inhibit = true
	default:
		mc.Regs.Segment(seg).Load(v)
	}
	return nil
}

func pushf(mc *CPU, ins *instruction) error {
	return mc.push(mc.Regs.Flags.Value())
}

func popf(mc *CPU, ins *instruction) error {
	v, err := mc.pop()
	if err != nil {
		return err
	}
	mc.Regs.Flags.FromValue(v)
	return nil
}

func sahf(mc *CPU, ins *instruction) error {
	mc.Regs.Flags.LoadLo(mc.Regs.AX.Hi())
	return nil
}

func lahf(mc *CPU, ins *instruction) error {
	mc.Regs.AX.LoadHi(uint8(mc.Regs.Flags.Value()))
	return nil
}

// in reads from a port. the port is either an immediate byte or DX.
func in(mc *CPU, ins *instruction) error {
	wide := ins.opcode&0x01 == 0x01

	port := mc.Regs.DX.Value()
	if ins.opcode < 0xec {
		p, err := mc.fetch8()
		if err != nil {
			return err
		}
		port = uint16(p)
	}

	if wide {
		v, err := mc.bus.ReadWord(buscycle.ReadPort, 0, port)
		if err != nil {
			return err
		}
		mc.Regs.AX.Load(v)
		return nil
	}

	v, err := mc.bus.BeginAccess(buscycle.ReadPort, 0, port, 0)
	if err != nil {
		return err
	}
	mc.Regs.AX.LoadLo(v)
	return nil
}

// out writes to a port. the port is either an immediate byte or DX.
func out(mc *CPU, ins *instruction) error {
	wide := ins.opcode&0x01 == 0x01

	port := mc.Regs.DX.Value()
	if ins.opcode < 0xee {
		p, err := mc.fetch8()
		if err != nil {
			return err
		}
		port = uint16(p)
	}

	if wide {
		return mc.bus.WriteWord(buscycle.WritePort, 0, port, mc.Regs.AX.Value())
	}

	_, err := mc.bus.BeginAccess(buscycle.WritePort, 0, port, mc.Regs.AX.Lo())
	return err
}

func segmentOverride(mc *CPU, ins *instruction) error {
	ins.segment = registers.Segment((ins.opcode >> 3) & 0x03)
	ins.override = true
	ins.extra += ins.defn.Cycles
	return mc.decode(ins)
}

func repeat(mc *CPU, ins *instruction) error {
	ins.rep = ins.opcode
	ins.extra += ins.defn.Cycles
	return mc.decode(ins)
}

func lock(mc *CPU, ins *instruction) error {
	ins.extra += ins.defn.Cycles
	return mc.decode(ins)
}

// esc passes the instruction to a coprocessor. there is no coprocessor but
// the memory operand is still read.
func esc(mc *CPU, ins *instruction) error {
	if ins.mod != 0b11 {
		_, err := mc.readMem(ins.segment, ins.ea, true)
		return err
	}
	return nil
}
