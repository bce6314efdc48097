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

	"github.com/jetsetilly/gopher8088/curated"
	"github.com/jetsetilly/gopher8088/hardware/cpu/buscycle"
	"github.com/jetsetilly/gopher8088/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8088/hardware/cpu/registers"
	"github.com/jetsetilly/gopher8088/hardware/memory"
	"github.com/jetsetilly/gopher8088/logger"
	"github.com/jetsetilly/gopher8088/notifications"
)

// instruction is the decoded state of the instruction being executed. a new
// instance is created for every instruction.
type instruction struct {
	// clock count at the start of the instruction
	start uint64

	// IP of the first byte of the instruction, including prefixes
	ip uint16

	opcode uint8
	defn   *instructions.Definition

	// segment used for memory operands. DS unless there is an override
	// prefix or the addressing mode is based on BP
	segment  registers.Segment
	override bool

	// repeat prefix. zero if there is no prefix
	rep uint8

	mod uint8
	reg uint8
	rm  uint8

	// effective address of memory operand. only valid if mod is not 0b11
	ea uint16

	// cycles in addition to the definition
	extra int

	// control transfer performed after the instruction cycles have elapsed
	transfer bool
	cs       uint16
	target   uint16

	// software interrupt entered after the instruction. -1 for none
	softInt int

	// enter the halt state after the instruction
	halt bool
}

// jump prepares a control transfer to cs:ip.
func (ins *instruction) jump(cs uint16, ip uint16) {
	ins.transfer = true
	ins.cs = cs
	ins.target = ip
}

// execute a single instruction.
func (mc *CPU) execute() error {
	ins := instruction{
		start:   mc.clk.Count(),
		ip:      mc.Regs.IP.Value(),
		segment: registers.DS,
		softInt: -1,
	}

	if err := mc.decode(&ins); err != nil {
		return err
	}

	if err := mc.burn(ins.start, ins.defn.Cycles+ins.extra); err != nil {
		return err
	}

	if ins.transfer {
		mc.LoadCSIP(ins.cs, ins.target)
	}

	if ins.halt {
		if _, err := mc.bus.BeginAccess(buscycle.Halt, 0, 0, 0); err != nil {
			return err
		}
	}

	if ins.softInt >= 0 {
		return mc.interrupt(uint8(ins.softInt))
	}

	return nil
}

// decode the next opcode and call the handler for it. prefix handlers call
// decode() again for the next byte.
func (mc *CPU) decode(ins *instruction) error {
	op, err := mc.fetch8()
	if err != nil {
		return err
	}

	ins.opcode = op
	ins.defn = &instructions.Definitions[op]
	mc.LastResult.Defn = ins.defn
	mc.LastResult.Operator = ins.defn.Operator

	if ins.defn.Undocumented && !mc.prefs.Undocumented() {
		return mc.decodeFault(ins, "undocumented opcode")
	}

	if ins.defn.ModRM {
		if err := mc.decodeModRM(ins); err != nil {
			return err
		}

		if ins.defn.Group != instructions.NoGroup {
			m, ok := ins.defn.Member(ins.reg)
			if !ok {
				return mc.decodeFault(ins, fmt.Sprintf("no instruction for reg field %d", ins.reg))
			}
			if m.Undocumented && !mc.prefs.Undocumented() {
				return mc.decodeFault(ins, fmt.Sprintf("undocumented instruction for reg field %d", ins.reg))
			}
			mc.LastResult.Operator = m.Operator
			ins.extra += m.Cycles
		}
	}

	return operations[op](mc, ins)
}

func (mc *CPU) decodeFault(ins *instruction, detail string) error {
	err := curated.Errorf(DecodeFault, fmt.Sprintf("%02x at %04x:%04x: %s",
		ins.opcode, mc.Regs.CS.Value(), ins.ip, detail))
	logger.Log(mc.prefs, "cpu", err)
	return err
}

// fetch8 takes the next byte from the prefetch queue.
func (mc *CPU) fetch8() (uint8, error) {
	v, err := mc.bus.ReadQueue()
	if err != nil {
		return 0, err
	}
	mc.Regs.IP.Add(1)
	mc.LastResult.Bytes = append(mc.LastResult.Bytes, v)
	return v, nil
}

// fetch16 takes the next two bytes from the prefetch queue, low byte first.
func (mc *CPU) fetch16() (uint16, error) {
	lo, err := mc.fetch8()
	if err != nil {
		return 0, err
	}
	hi, err := mc.fetch8()
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// fetchImmediate takes a byte or a word from the prefetch queue.
func (mc *CPU) fetchImmediate(wide bool) (uint16, error) {
	if wide {
		return mc.fetch16()
	}
	v, err := mc.fetch8()
	return uint16(v), err
}

// effective address calculation cycles indexed by the rm field. the values
// are for the forms without a displacement
var eaCycles = [8]int{7, 8, 8, 7, 5, 5, 5, 5}

// decodeModRM takes the ModRM byte and any displacement from the prefetch
// queue and calculates the effective address.
func (mc *CPU) decodeModRM(ins *instruction) error {
	b, err := mc.fetch8()
	if err != nil {
		return err
	}

	ins.mod = b >> 6
	ins.reg = (b >> 3) & 0x07
	ins.rm = b & 0x07

	if ins.mod == 0b11 {
		return nil
	}

	var disp uint16

	switch ins.mod {
	case 0b00:
		if ins.rm == 0b110 {
			ins.ea, err = mc.fetch16()
			ins.extra += 6
			return err
		}
	case 0b01:
		d, err := mc.fetch8()
		if err != nil {
			return err
		}
		disp = uint16(int8(d))
		ins.extra += 4
	case 0b10:
		disp, err = mc.fetch16()
		if err != nil {
			return err
		}
		ins.extra += 4
	}

	var base uint16
	bp := false

	r := &mc.Regs
	switch ins.rm {
	case 0b000:
		base = r.BX.Value() + r.SI.Value()
	case 0b001:
		base = r.BX.Value() + r.DI.Value()
	case 0b010:
		base = r.BP.Value() + r.SI.Value()
		bp = true
	case 0b011:
		base = r.BP.Value() + r.DI.Value()
		bp = true
	case 0b100:
		base = r.SI.Value()
	case 0b101:
		base = r.DI.Value()
	case 0b110:
		base = r.BP.Value()
		bp = true
	case 0b111:
		base = r.BX.Value()
	}

	ins.ea = base + disp
	ins.extra += eaCycles[ins.rm]

	if bp && !ins.override {
		ins.segment = registers.SS
	}

	return nil
}

// readMem reads a byte or a word from memory.
func (mc *CPU) readMem(seg registers.Segment, offset uint16, wide bool) (uint16, error) {
	s := mc.Regs.Segment(seg).Value()
	if wide {
		return mc.bus.ReadWord(buscycle.ReadMemory, s, offset)
	}
	v, err := mc.bus.BeginAccess(buscycle.ReadMemory, s, offset, 0)
	return uint16(v), err
}

// writeMem writes a byte or a word to memory.
func (mc *CPU) writeMem(seg registers.Segment, offset uint16, wide bool, v uint16) error {
	s := mc.Regs.Segment(seg).Value()

	if _, err := mc.bus.BeginAccess(buscycle.WriteMemory, s, offset, uint8(v)); err != nil {
		return err
	}
	mc.notifyMemory(s, offset, uint8(v))

	if wide {
		if _, err := mc.bus.BeginAccess(buscycle.WriteMemory, s, offset+1, uint8(v>>8)); err != nil {
			return err
		}
		mc.notifyMemory(s, offset+1, uint8(v>>8))
	}

	return nil
}

func (mc *CPU) notifyMemory(segment uint16, offset uint16, v uint8) {
	if mc.observer == nil {
		return
	}
	mc.observer.Notify(notifications.Notification{
		Notice:  notifications.NotifyMemoryChanged,
		Label:   fmt.Sprintf("%04x:%04x", segment, offset),
		Address: memory.Linear(segment, offset),
		Value:   uint16(v),
	})
}

// readRM reads the operand selected by the mod and rm fields.
func (mc *CPU) readRM(ins *instruction, wide bool) (uint16, error) {
	if ins.mod == 0b11 {
		if wide {
			return mc.Regs.Reg16(ins.rm).Value(), nil
		}
		return uint16(mc.Regs.Reg8(ins.rm)), nil
	}
	return mc.readMem(ins.segment, ins.ea, wide)
}

// writeRM writes the operand selected by the mod and rm fields.
func (mc *CPU) writeRM(ins *instruction, wide bool, v uint16) error {
	if ins.mod == 0b11 {
		if wide {
			mc.Regs.Reg16(ins.rm).Load(v)
		} else {
			mc.Regs.SetReg8(ins.rm, uint8(v))
		}
		return nil
	}
	return mc.writeMem(ins.segment, ins.ea, wide, v)
}

// readReg reads the register selected by the reg field.
func (mc *CPU) readReg(ins *instruction, wide bool) uint16 {
	if wide {
		return mc.Regs.Reg16(ins.reg).Value()
	}
	return uint16(mc.Regs.Reg8(ins.reg))
}

// writeReg writes the register selected by the reg field.
func (mc *CPU) writeReg(ins *instruction, wide bool, v uint16) {
	if wide {
		mc.Regs.Reg16(ins.reg).Load(v)
	} else {
		mc.Regs.SetReg8(ins.reg, uint8(v))
	}
}

// push a word onto the stack. SP is decremented before the write.
func (mc *CPU) push(v uint16) error {
	mc.Regs.SP.Add(0xfffe)
	return mc.writeMem(registers.SS, mc.Regs.SP.Value(), true, v)
}

// pop a word from the stack.
func (mc *CPU) pop() (uint16, error) {
	v, err := mc.readMem(registers.SS, mc.Regs.SP.Value(), true)
	if err != nil {
		return 0, err
	}
	mc.Regs.SP.Add(2)
	return v, nil
}
